// SPDX-License-Identifier: MPL-2.0

package params

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPublishParams is the sentinel error wrapped by
	// InvalidPublishParamsError.
	ErrInvalidPublishParams = errors.New("invalid publish params")

	// ErrQuietVerboseConflict is the mutual-exclusion error for --quiet
	// combined with --verbose. The text is part of the CLI contract.
	ErrQuietVerboseConflict = errors.New("Cannot specify both --quiet and --verbose")
)

// InvalidPublishParamsError is returned when one or more parameter groups
// have invalid fields. It wraps ErrInvalidPublishParams for errors.Is()
// compatibility and collects field-level validation errors from all groups
// in declared-group order.
type InvalidPublishParamsError struct {
	FieldErrors []error
}

// Error implements the error interface for InvalidPublishParamsError.
func (e *InvalidPublishParamsError) Error() string {
	return fmt.Sprintf("invalid publish params: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidPublishParams for errors.Is() compatibility.
func (e *InvalidPublishParamsError) Unwrap() error { return ErrInvalidPublishParams }

// collect concatenates each group's error slice in argument order. Group
// validations never depend on each other, so adding a parameter group means
// adding one more slot here, never chaining on a previous group's result.
// The resulting order is stable: first declared group's errors first.
func collect(groups ...[]error) []error {
	var errs []error
	for _, g := range groups {
		errs = append(errs, g...)
	}
	return errs
}
