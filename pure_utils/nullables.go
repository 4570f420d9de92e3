package pure_utils

import (
	"bytes"
	"encoding/json"
)

// Null wraps a value that may be absent from a payload, explicitly null, or
// present. Set reports whether the field appeared at all; Valid reports
// whether it carried a non-null value.
type Null[T any] struct {
	value T
	Valid bool
	Set   bool
}

func NullFrom[T any](value T) Null[T] {
	return Null[T]{value: value, Valid: true, Set: true}
}

// NullValue returns an explicit null: present on the wire, carrying no value.
func NullValue[T any]() Null[T] {
	return Null[T]{Set: true}
}

func NullFromPtr[T any](ptr *T) Null[T] {
	if ptr == nil {
		return Null[T]{Set: true}
	}
	return NullFrom(*ptr)
}

// Value returns the zero value of T when the field was null or absent.
func (n Null[T]) Value() T {
	if !n.Valid {
		var zero T
		return zero
	}
	return n.value
}

func (n Null[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.value
	return &v
}

// IsZero makes absent values cooperate with encoding/json's omitzero option:
// a field that was never set marshals to nothing, an explicit null to "null".
func (n Null[T]) IsZero() bool {
	return !n.Set
}

func (n *Null[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(data, &n.value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n Null[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}

// MapNull transforms the carried value while preserving the absent/null state.
func MapNull[T, U any](n Null[T], f func(T) U) Null[U] {
	if !n.Set {
		return Null[U]{}
	}
	if !n.Valid {
		return NullValue[U]()
	}
	return NullFrom(f(n.value))
}
