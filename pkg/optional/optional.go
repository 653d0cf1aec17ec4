// Package optional provides a value wrapper that distinguishes "not supplied"
// from "supplied", used by partial-update payloads.
package optional

import (
	"bytes"
	"encoding/json"
)

// Value holds a T that may or may not have been supplied. The zero Value is
// unset. A JSON null decodes to an unset Value.
type Value[T any] struct {
	v   T
	set bool
}

// Some returns a set Value holding v.
func Some[T any](v T) Value[T] {
	return Value[T]{v: v, set: true}
}

// None returns an unset Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the held value and whether it was set.
func (o Value[T]) Get() (T, bool) {
	return o.v, o.set
}

// IsSet reports whether a value was supplied.
func (o Value[T]) IsSet() bool {
	return o.set
}

// OrElse returns the held value, or fallback when unset.
func (o Value[T]) OrElse(fallback T) T {
	if o.set {
		return o.v
	}
	return fallback
}

// Ptr returns a pointer to a copy of the held value, or nil when unset.
func (o Value[T]) Ptr() *T {
	if !o.set {
		return nil
	}
	v := o.v
	return &v
}

// UnmarshalJSON implements [json.Unmarshaler].
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Value[T]{}
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// MarshalJSON implements [json.Marshaler]. An unset Value encodes as null.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.v)
}
