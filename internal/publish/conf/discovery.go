// SPDX-License-Identifier: MPL-2.0

package conf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/przemek-pokrywka/coursier/pkg/types"
)

const (
	// PrimaryFileName is the first discovery location, relative to the
	// working directory.
	PrimaryFileName = "publish.json"
	// SecondaryFileName is the fallback discovery location.
	SecondaryFileName = "project/publish.json"
)

var (
	// ErrFileNotFound is the sentinel error wrapped by FileNotFoundError.
	ErrFileNotFound = errors.New("publish configuration file not found")
	// ErrNotAFile is the sentinel error wrapped by NotAFileError.
	ErrNotAFile = errors.New("publish configuration path is not a file")
)

type (
	// FileNotFoundError is returned when an explicit --conf path does not exist.
	// It wraps ErrFileNotFound for errors.Is() compatibility.
	FileNotFoundError struct {
		Path string
	}

	// NotAFileError is returned when an explicit --conf path exists but is
	// not a regular file. It wraps ErrNotAFile for errors.Is() compatibility.
	// Kept distinct from FileNotFoundError: pointing --conf at a directory
	// is a different user mistake than a typo in the path.
	NotAFileError struct {
		Path string
	}
)

// Error implements the error interface for FileNotFoundError.
func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("publish configuration file not found: %s", e.Path)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *FileNotFoundError) Unwrap() error { return ErrFileNotFound }

// Error implements the error interface for NotAFileError.
func (e *NotAFileError) Error() string {
	return fmt.Sprintf("publish configuration path is not a file: %s", e.Path)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *NotAFileError) Unwrap() error { return ErrNotAFile }

// Discover resolves which publish configuration file to load, if any.
// The returned path is empty when no file applies (which is not an error).
//
// An explicit path must exist and be a regular file. Without an explicit
// path, the default locations are only probed when the invocation is
// unscoped: once the operation was narrowed to a single package or to
// explicit directories, an ambient project-wide publish.json would be
// surprising, so discovery is skipped entirely.
func Discover(workdir string, explicit types.Optional[string], scoped bool) (string, error) {
	if path, ok := explicit.Get(); ok {
		if !filepath.IsAbs(path) {
			path = filepath.Join(workdir, path)
		}
		info, err := os.Stat(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return "", &FileNotFoundError{Path: path}
		case err != nil:
			return "", fmt.Errorf("failed to inspect publish configuration path %s: %w", path, err)
		case !info.Mode().IsRegular():
			return "", &NotAFileError{Path: path}
		}
		return path, nil
	}

	if scoped {
		return "", nil
	}

	for _, name := range []string{PrimaryFileName, SecondaryFileName} {
		path := filepath.Join(workdir, filepath.FromSlash(name))
		if fileExists(path) {
			return path, nil
		}
	}

	return "", nil
}

// fileExists checks if a file exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
