// SPDX-License-Identifier: MPL-2.0

// Package checksums computes the checksum sidecar files that accompany
// every published artifact.
package checksums

import (
	"crypto/md5"  //nolint:gosec // Maven repositories expect .md5 sidecars.
	"crypto/sha1" //nolint:gosec // Maven repositories expect .sha1 sidecars.
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
)

const (
	// MD5 is the legacy Maven checksum, still expected by most repositories.
	MD5 Type = "md5"
	// SHA1 is the default Maven checksum.
	SHA1 Type = "sha-1"
	// SHA256 is the modern checksum accepted by newer repository managers.
	SHA256 Type = "sha-256"
)

// ErrInvalidType is the sentinel error wrapped by InvalidTypeError.
var ErrInvalidType = errors.New("invalid checksum type")

type (
	// Type identifies a checksum algorithm by its user-facing name.
	Type string

	// InvalidTypeError is returned when a Type value is not recognized.
	// It wraps ErrInvalidType for errors.Is() compatibility.
	InvalidTypeError struct {
		Value Type
	}
)

// Error implements the error interface for InvalidTypeError.
func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("unsupported checksum type %q (valid: md5, sha-1, sha-256)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidTypeError) Unwrap() error { return ErrInvalidType }

// String returns the string representation of the Type.
func (t Type) String() string { return string(t) }

// IsValid returns whether the Type is one of the defined checksum types,
// and a list of validation errors if it is not.
func (t Type) IsValid() (bool, []error) {
	switch t {
	case MD5, SHA1, SHA256:
		return true, nil
	default:
		return false, []error{&InvalidTypeError{Value: t}}
	}
}

// Extension returns the sidecar file extension for the Type, including the
// leading dot (e.g., ".sha1" for sha-1).
func (t Type) Extension() string {
	switch t {
	case MD5:
		return ".md5"
	case SHA1:
		return ".sha1"
	case SHA256:
		return ".sha256"
	default:
		return ""
	}
}

// newHash returns a fresh hash.Hash for the Type.
func (t Type) newHash() (hash.Hash, error) {
	switch t {
	case MD5:
		return md5.New(), nil //nolint:gosec // Repository sidecar format, not security.
	case SHA1:
		return sha1.New(), nil //nolint:gosec // Repository sidecar format, not security.
	case SHA256:
		return sha256.New(), nil
	default:
		return nil, &InvalidTypeError{Value: t}
	}
}

// Compute returns the lowercase hex-encoded digest of r for the Type.
// It streams the input through the hash function.
func Compute(t Type, r io.Reader) (string, error) {
	h, err := t.newHash()
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("hashing content: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ComputeFile returns the lowercase hex-encoded digest of the file at path
// for the Type, streaming the file to avoid loading it into memory.
func ComputeFile(t Type, path string) (_ string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		// Read-only file handle; close errors are exotic (NFS edge cases).
		_ = f.Close()
	}()

	h, err := t.newHash()
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing file %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// FormatEntry formats a digest and filename in the coreutils *sum output
// format (two spaces between digest and filename), which is what repository
// sidecar files and local verification tools both understand.
func FormatEntry(digest, filename string) string {
	return digest + "  " + filename + "\n"
}
