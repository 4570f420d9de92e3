package models

import (
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

const (
	MetadataMaxPairs       = 10
	MetadataMaxKeyLength   = 40
	MetadataMaxValueLength = 500
)

type MetadataPair struct {
	Key   string `validate:"max=40"`
	Value string `validate:"max=500"`
}

// Metadata is the free-form key/value bag attached to most entities. The API
// serves it as a JSON object; pair order follows the document and is preserved
// through decode and encode.
type Metadata []MetadataPair

var validate = validator.New()

type metadataConstraints struct {
	Pairs []MetadataPair `validate:"max=10,dive"`
}

// Validate enforces the documented bounds: at most 10 pairs, keys of at most
// 40 characters, values of at most 500. Checked on decode and again on encode.
func (m Metadata) Validate() error {
	err := validate.Struct(metadataConstraints{Pairs: m})
	if err == nil {
		return nil
	}
	if _, ok := err.(*validator.InvalidValidationError); ok {
		return err
	}
	verrs := err.(validator.ValidationErrors)
	return errors.Wrapf(ErrValidation, "metadata: %s constraint %s=%s violated",
		verrs[0].Field(), verrs[0].Tag(), verrs[0].Param())
}

func (m Metadata) Get(key string) (string, bool) {
	for _, pair := range m {
		if pair.Key == key {
			return pair.Value, true
		}
	}
	return "", false
}
