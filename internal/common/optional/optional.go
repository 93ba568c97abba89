// Package optional models fields of partial-update payloads, where an absent
// key, an explicit null and a concrete value mean three different things.
package optional

import (
	"bytes"
	"encoding/json"
)

var nullLiteral = []byte("null")

// Field holds a single attribute of an update payload.
// The zero value means "not supplied".
type Field[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns a supplied field carrying v.
func Some[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

// Null returns a supplied field explicitly cleared by the caller.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// Present reports whether the field carries a non-null value.
func (f Field[T]) Present() bool {
	return f.Set && !f.Null
}

// UnmarshalJSON is only invoked by encoding/json when the key exists,
// which is what lets absent keys keep Set == false.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), nullLiteral) {
		var zero T
		f.Value = zero
		f.Null = true
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Present() {
		return nullLiteral, nil
	}
	return json.Marshal(f.Value)
}

// Apply overwrites *dst when the field carries a value.
// A null on a non-nullable attribute is rejected before this point.
func (f Field[T]) Apply(dst *T) {
	if f.Present() {
		*dst = f.Value
	}
}

// ApplyNullable overwrites a nullable attribute: null clears it, a value replaces it.
func (f Field[T]) ApplyNullable(dst **T) {
	if !f.Set {
		return
	}
	if f.Null {
		*dst = nil
		return
	}
	v := f.Value
	*dst = &v
}

// Ptr returns a pointer to the value, or nil when the field is absent or null.
func (f Field[T]) Ptr() *T {
	if !f.Present() {
		return nil
	}
	v := f.Value
	return &v
}
