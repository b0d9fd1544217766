// SPDX-License-Identifier: MPL-2.0

package params

import (
	"errors"
	"strings"

	"github.com/przemek-pokrywka/coursier/internal/publish/options"
	"github.com/przemek-pokrywka/coursier/pkg/types"
)

// SignatureParams is the validated signature policy. It only records the
// policy; no signer is constructed here, so a misconfigured gpg setup
// cannot prompt or fail before the rest of validation has finished.
type SignatureParams struct {
	// Gpg enables detached gpg signatures for every uploaded file.
	Gpg bool
	// GpgKey is the key id to sign with. Absent means the default key.
	GpgKey types.Optional[string]
}

// SignatureParamsFrom validates the signature option group.
// Naming a key implies enabling signing.
func SignatureParamsFrom(opts options.SignatureOptions) (SignatureParams, []error) {
	var errs []error

	if v, ok := opts.GpgKey.Get(); ok && strings.TrimSpace(v) == "" {
		errs = append(errs, errors.New("--gpg-key must not be blank when given"))
	}

	return SignatureParams{
		Gpg:    opts.Gpg || opts.GpgKey.IsSome(),
		GpgKey: opts.GpgKey,
	}, errs
}
