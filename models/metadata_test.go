package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func repeatedPairs(n int) Metadata {
	md := make(Metadata, 0, n)
	for i := 0; i < n; i++ {
		md = append(md, MetadataPair{Key: "key_" + strings.Repeat("x", i%10), Value: "value"})
	}
	return md
}

func TestMetadataValidate(t *testing.T) {
	tts := []struct {
		name string
		md   Metadata
		ok   bool
	}{
		{"empty", Metadata{}, true},
		{"ten pairs", repeatedPairs(10), true},
		{"eleven pairs", repeatedPairs(11), false},
		{"key at limit", Metadata{{Key: strings.Repeat("k", 40), Value: "v"}}, true},
		{"key over limit", Metadata{{Key: strings.Repeat("k", 41), Value: "v"}}, false},
		{"value at limit", Metadata{{Key: "k", Value: strings.Repeat("v", 500)}}, true},
		{"value over limit", Metadata{{Key: "k", Value: strings.Repeat("v", 501)}}, false},
	}

	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.md.Validate()

			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrValidation)
			}
		})
	}
}

func TestMetadataGet(t *testing.T) {
	md := Metadata{{Key: "order_id", Value: "6735"}}

	v, ok := md.Get("order_id")
	assert.True(t, ok)
	assert.Equal(t, "6735", v)

	_, ok = md.Get("missing")
	assert.False(t, ok)
}
