package models

import "github.com/cockroachdb/errors"

// PosInt is an integer the API documents as strictly positive.
type PosInt int64

func PosIntFrom(i int64) (PosInt, error) {
	if i <= 0 {
		return 0, errors.Wrapf(ErrValidation, "expected a positive integer, got %d", i)
	}
	return PosInt(i), nil
}

// NonNegInt is an integer the API documents as zero or greater.
type NonNegInt int64

func NonNegIntFrom(i int64) (NonNegInt, error) {
	if i < 0 {
		return 0, errors.Wrapf(ErrValidation, "expected a non-negative integer, got %d", i)
	}
	return NonNegInt(i), nil
}

func (p PosInt) Int64() int64    { return int64(p) }
func (n NonNegInt) Int64() int64 { return int64(n) }

// Validate re-checks the predicate on the way out, so that a value built by a
// caller (rather than a decoder) cannot reach the wire in an illegal state.
func (p PosInt) Validate() error {
	_, err := PosIntFrom(int64(p))
	return err
}

func (n NonNegInt) Validate() error {
	_, err := NonNegIntFrom(int64(n))
	return err
}
