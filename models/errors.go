package models

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Decode failure kinds. Every error returned by a decoder wraps exactly one of
// these, so callers can branch with errors.Is without string matching.
var (
	// ErrMissingField: a required field is absent from the payload.
	ErrMissingField = errors.New("missing required field")

	// ErrTypeMismatch: the field is present but carries the wrong wire type.
	ErrTypeMismatch = errors.New("wire type mismatch")

	// ErrValidation: the value is well-typed but fails a structural predicate.
	ErrValidation = errors.New("validation failed")

	// ErrUnknownEnumTag: a string tag outside the closed set for a strict enum.
	ErrUnknownEnumTag = errors.New("unknown enum tag")

	// ErrAPIError: the payload is an API error response, not the expected entity.
	ErrAPIError = errors.New("api returned an error response")

	ErrInvalidJSON = errors.New("payload is not valid json")
)

// DecodeError carries the dotted path of the failing field, e.g.
// "sources.data[2].exp_year". Decoding is all-or-nothing: the first
// DecodeError aborts the whole decode.
type DecodeError struct {
	Kind   error
	Path   string
	Reason string

	// APIError is populated only when Kind is ErrAPIError.
	APIError *APIError
}

func (e DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", e.Path, e.Kind, e.Reason)
}

func (e DecodeError) Unwrap() error {
	return e.Kind
}

func NewDecodeError(kind error, path string, format string, args ...any) DecodeError {
	return DecodeError{
		Kind:   kind,
		Path:   path,
		Reason: fmt.Sprintf(format, args...),
	}
}
