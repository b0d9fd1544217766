// SPDX-License-Identifier: MPL-2.0

package types

import "testing"

func TestOptionalZeroValueIsNone(t *testing.T) {
	var o Optional[string]

	if o.IsSome() {
		t.Error("zero value Optional should be absent")
	}
	if _, ok := o.Get(); ok {
		t.Error("Get() on zero value should report absent")
	}
}

func TestOptionalSome(t *testing.T) {
	o := Some("com.example")

	if !o.IsSome() {
		t.Fatal("Some() should be present")
	}
	v, ok := o.Get()
	if !ok || v != "com.example" {
		t.Errorf("Get() = %q, %v, want %q, true", v, ok, "com.example")
	}
}

func TestOptionalGetOr(t *testing.T) {
	if got := Some(3).GetOr(7); got != 3 {
		t.Errorf("Some(3).GetOr(7) = %d, want 3", got)
	}
	if got := None[int]().GetOr(7); got != 7 {
		t.Errorf("None().GetOr(7) = %d, want 7", got)
	}
}

func TestOptionalOrPrefersExplicit(t *testing.T) {
	explicit := Some("1.0")
	fallback := Some("2.0")

	if v, _ := explicit.Or(fallback).Get(); v != "1.0" {
		t.Errorf("explicit.Or(fallback) = %q, want %q", v, "1.0")
	}
	if v, _ := None[string]().Or(fallback).Get(); v != "2.0" {
		t.Errorf("None().Or(fallback) = %q, want %q", v, "2.0")
	}
	if None[string]().Or(None[string]()).IsSome() {
		t.Error("None().Or(None()) should stay absent")
	}
}
