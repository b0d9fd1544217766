// SPDX-License-Identifier: MPL-2.0

package params

import (
	"strings"

	"github.com/przemek-pokrywka/coursier/internal/publish/checksums"
	"github.com/przemek-pokrywka/coursier/internal/publish/options"
)

// checksumsNone disables checksum sidecars entirely.
const checksumsNone = "none"

// ChecksumParams is the validated checksum policy.
type ChecksumParams struct {
	// Types lists the sidecar checksums computed for every uploaded file,
	// in upload order. Empty means no sidecars.
	Types []checksums.Type
}

// defaultChecksumTypes matches what Maven repositories conventionally expect.
func defaultChecksumTypes() []checksums.Type {
	return []checksums.Type{checksums.SHA1, checksums.MD5}
}

// ChecksumParamsFrom validates the checksum option group. The option is a
// comma-separated list of type names, or "none".
func ChecksumParamsFrom(opts options.ChecksumOptions) (ChecksumParams, []error) {
	raw, ok := opts.Checksums.Get()
	if !ok {
		return ChecksumParams{Types: defaultChecksumTypes()}, nil
	}

	if strings.TrimSpace(raw) == checksumsNone {
		return ChecksumParams{}, nil
	}

	var errs []error
	var parsed []checksums.Type

	for _, part := range strings.Split(raw, ",") {
		t := checksums.Type(strings.TrimSpace(part))
		if valid, fieldErrs := t.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
			continue
		}
		parsed = append(parsed, t)
	}

	return ChecksumParams{Types: parsed}, errs
}
