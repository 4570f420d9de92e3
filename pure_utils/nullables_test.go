package pure_utils

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNullUUID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Null[uuid.UUID]
		wantErr bool
	}{
		{
			name:  "null value",
			input: "null",
			want: Null[uuid.UUID]{
				Valid: false,
				Set:   true,
			},
		},
		{
			name:  "valid UUID",
			input: `"123e4567-e89b-12d3-a456-426614174000"`,
			want: Null[uuid.UUID]{
				value: uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
				Valid: true,
				Set:   true,
			},
		},
		{
			name:    "invalid UUID format",
			input:   `"not-a-uuid"`,
			wantErr: true,
		},
		{
			name:    "invalid JSON",
			input:   "invalid",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Null[uuid.UUID]
			err := got.UnmarshalJSON([]byte(tt.input))

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNull_MarshalJSON(t *testing.T) {
	type payload struct {
		Int Null[int] `json:"int,omitzero"`
	}

	tests := []struct {
		name  string
		input payload
		want  string
	}{
		{"absent field is omitted", payload{}, `{}`},
		{"explicit null is kept", payload{Int: NullValue[int]()}, `{"int":null}`},
		{"value", payload{Int: NullFrom(42)}, `{"int":42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.input)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestNull_RoundTrip(t *testing.T) {
	type payload struct {
		Int Null[int] `json:"int,omitzero"`
	}

	for _, raw := range []string{`{}`, `{"int":null}`, `{"int":7}`} {
		var decoded payload
		assert.NoError(t, json.Unmarshal([]byte(raw), &decoded))

		out, err := json.Marshal(decoded)
		assert.NoError(t, err)
		assert.Equal(t, raw, string(out))
	}
}

func TestNull_Accessors(t *testing.T) {
	n := NullFrom("hello")
	assert.Equal(t, "hello", n.Value())
	assert.Equal(t, "hello", *n.Ptr())

	empty := NullValue[string]()
	assert.Equal(t, "", empty.Value())
	assert.Nil(t, empty.Ptr())
	assert.True(t, empty.Set)
	assert.False(t, empty.Valid)

	var absent Null[string]
	assert.True(t, absent.IsZero())
	assert.False(t, empty.IsZero())

	assert.Equal(t, NullValue[int](), NullFromPtr[int](nil))
	assert.Equal(t, NullFrom(3), NullFromPtr(Ptr(3)))
}

func TestMapNull(t *testing.T) {
	double := func(i int) int { return i * 2 }

	assert.Equal(t, Null[int]{}, MapNull(Null[int]{}, double))
	assert.Equal(t, NullValue[int](), MapNull(NullValue[int](), double))
	assert.Equal(t, NullFrom(6), MapNull(NullFrom(3), double))
}
