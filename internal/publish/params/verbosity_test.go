// SPDX-License-Identifier: MPL-2.0

package params

import (
	"errors"
	"testing"
)

func TestResolveVerbosity(t *testing.T) {
	tests := []struct {
		name     string
		quiet    bool
		verbose  int
		want     int
		conflict bool
	}{
		{"unset quiet, verbose 0", false, 0, 0, false},
		{"unset quiet, verbose 1", false, 1, 1, false},
		{"unset quiet, verbose 2", false, 2, 2, false},
		{"quiet, verbose 0", true, 0, -1, false},
		{"quiet, verbose 1", true, 1, 0, true},
		{"quiet, verbose 2", true, 2, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := resolveVerbosity(tt.quiet, tt.verbose)

			if tt.conflict {
				if len(errs) != 1 {
					t.Fatalf("resolveVerbosity() errors = %v, want exactly one", errs)
				}
				if !errors.Is(errs[0], ErrQuietVerboseConflict) {
					t.Errorf("error = %v, want ErrQuietVerboseConflict", errs[0])
				}
				if errs[0].Error() != "Cannot specify both --quiet and --verbose" {
					t.Errorf("error text = %q, want the exact CLI contract text", errs[0].Error())
				}
				return
			}

			if len(errs) != 0 {
				t.Fatalf("resolveVerbosity() returned unexpected errors: %v", errs)
			}
			if got != tt.want {
				t.Errorf("resolveVerbosity(%v, %d) = %d, want %d", tt.quiet, tt.verbose, got, tt.want)
			}
		})
	}
}
