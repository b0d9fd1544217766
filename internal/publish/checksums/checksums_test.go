// SPDX-License-Identifier: MPL-2.0

package checksums

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Digests of the ASCII string "abc", straight from the algorithm test vectors.
const (
	abcMD5    = "900150983cd24fb0d6963f7d28e17f72"
	abcSHA1   = "a9993e364706816aba3e25717850c26c9cd0d89d"
	abcSHA256 = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{MD5, abcMD5},
		{SHA1, abcSHA1},
		{SHA256, abcSHA256},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			got, err := Compute(tt.typ, strings.NewReader("abc"))
			if err != nil {
				t.Fatalf("Compute(%s) returned error: %v", tt.typ, err)
			}
			if got != tt.want {
				t.Errorf("Compute(%s) = %s, want %s", tt.typ, got, tt.want)
			}
		})
	}
}

func TestComputeUnknownType(t *testing.T) {
	_, err := Compute(Type("crc32"), strings.NewReader("abc"))
	if !errors.Is(err, ErrInvalidType) {
		t.Errorf("Compute with unknown type = %v, want ErrInvalidType", err)
	}
}

func TestComputeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifact.jar")
	if err := os.WriteFile(path, []byte("abc"), 0o644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	got, err := ComputeFile(SHA1, path)
	if err != nil {
		t.Fatalf("ComputeFile() returned error: %v", err)
	}
	if got != abcSHA1 {
		t.Errorf("ComputeFile() = %s, want %s", got, abcSHA1)
	}
}

func TestTypeIsValid(t *testing.T) {
	for _, typ := range []Type{MD5, SHA1, SHA256} {
		if valid, errs := typ.IsValid(); !valid || len(errs) != 0 {
			t.Errorf("%s.IsValid() = %v, %v, want true, nil", typ, valid, errs)
		}
	}

	valid, errs := Type("sha-512").IsValid()
	if valid || len(errs) != 1 {
		t.Fatalf("unknown type IsValid() = %v, %v, want false and one error", valid, errs)
	}
	if !errors.Is(errs[0], ErrInvalidType) {
		t.Errorf("validation error should wrap ErrInvalidType, got %v", errs[0])
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{MD5, ".md5"},
		{SHA1, ".sha1"},
		{SHA256, ".sha256"},
	}
	for _, tt := range tests {
		if got := tt.typ.Extension(); got != tt.want {
			t.Errorf("%s.Extension() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestFormatEntry(t *testing.T) {
	got := FormatEntry(abcSHA1, "artifact.jar")
	want := abcSHA1 + "  artifact.jar\n"
	if got != want {
		t.Errorf("FormatEntry() = %q, want %q", got, want)
	}
}
