// SPDX-License-Identifier: MPL-2.0

package params

// resolveVerbosity maps the --quiet flag and the -v repetition count to a
// single verbosity level:
//
//	quiet, verbose == 0  → -1
//	quiet, verbose  > 0  → ErrQuietVerboseConflict
//	otherwise            → verbose (>= 0)
//
// The conflict is invalid user input regardless of every other field, so it
// is reported as its own dedicated error, never folded into a generic
// field failure.
func resolveVerbosity(quiet bool, verbose int) (int, []error) {
	switch {
	case quiet && verbose > 0:
		return 0, []error{ErrQuietVerboseConflict}
	case quiet:
		return -1, nil
	default:
		return verbose, nil
	}
}
