// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Optional distinguishes a JSON key that is absent from one that is present.
//
// When the key is present, Set is true and Value carries the decoded value;
// a JSON null yields Set == true with the zero Value. When the key is absent
// UnmarshalJSON is never invoked, so Set stays false.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns an Optional that is present with the given value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{Value: value, Set: true}
}

// Get returns the value and whether it was present.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// IsZero reports whether the value is absent. It lets `omitzero` drop
// absent fields when the structure is marshalled.
func (o Optional[T]) IsZero() bool {
	return !o.Set
}

// UnmarshalJSON marks the value as present and decodes it.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		return nil
	}

	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON encodes the wrapped value.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}
