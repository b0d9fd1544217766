// SPDX-License-Identifier: MPL-2.0

package types

// Optional represents a value that may be absent. The zero value is "none".
//
// Publish resolution needs to distinguish "flag not given" from "flag given
// with its default value": only absent fields may be filled in later from a
// publish.json overlay. A pointer would express the same thing, but Optional
// keeps the absence semantics explicit and copy-safe.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsSome reports whether a value is present.
func (o Optional[T]) IsSome() bool { return o.set }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// GetOr returns the value when present, otherwise fallback.
func (o Optional[T]) GetOr(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}

// Or returns o when present, otherwise fallback. This is the field-wise
// merge primitive used by the publish.json overlay: an explicitly supplied
// value always wins over a value read from a file.
func (o Optional[T]) Or(fallback Optional[T]) Optional[T] {
	if o.set {
		return o
	}
	return fallback
}
