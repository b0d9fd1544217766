// SPDX-License-Identifier: MPL-2.0

// Package signer produces detached signatures for files staged for upload.
package signer

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/przemek-pokrywka/coursier/internal/issue"
	"github.com/przemek-pokrywka/coursier/internal/publish/mode"
)

// Signer signs a single file and returns the path of the detached
// signature it wrote next to it.
type Signer interface {
	// Sign signs the file at path. It returns the signature path, or an
	// empty path when this signer produces no signatures.
	Sign(ctx context.Context, path string) (string, error)
}

// New constructs the signer matching a mode selection.
func New(sel mode.SignerSelection) Signer {
	switch sel.Kind {
	case mode.SignerGpgKey:
		return &GPGSigner{Key: sel.Key}
	case mode.SignerGpgDefaultKey:
		return &GPGSigner{}
	default:
		return NopSigner{}
	}
}

// NopSigner signs nothing. It is the selection for runs without --gpg.
type NopSigner struct{}

func (NopSigner) Sign(ctx context.Context, path string) (string, error) {
	return "", nil
}

// GPGSigner shells out to gpg for ASCII-armored detached signatures.
// An empty Key uses gpg's configured default key.
type GPGSigner struct {
	Key string
}

func (s *GPGSigner) Sign(ctx context.Context, path string) (string, error) {
	sigPath := path + ".asc"

	args := []string{"--batch", "--yes", "--armor", "--output", sigPath, "--detach-sign"}
	if s.Key != "" {
		args = append(args, "-u", s.Key)
	}
	args = append(args, path)

	cmd := exec.CommandContext(ctx, "gpg", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", issue.NewErrorContext().
			WithOperation("sign artifact").
			WithResource(path).
			WithSuggestion("check that gpg is installed and the key is usable (gpg --list-secret-keys)").
			Wrap(fmt.Errorf("gpg failed: %w: %s", err, strings.TrimSpace(string(output)))).
			BuildError()
	}

	return sigPath, nil
}
