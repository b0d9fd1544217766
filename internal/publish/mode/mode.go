// SPDX-License-Identifier: MPL-2.0

// Package mode derives execution modes from resolved publish parameters.
//
// Mode selection is pure and lazy: it only reads the parameter aggregate
// and never constructs a signer, spawns gpg, or opens output streams.
// Construction happens later, in the command layer, from the returned
// selections. Calling a selector twice with the same input yields the
// same answer.
package mode

import (
	"os"

	"golang.org/x/term"

	"github.com/przemek-pokrywka/coursier/internal/publish/params"
	"github.com/przemek-pokrywka/coursier/pkg/types"
)

// SignerKind identifies the signer family to construct.
type SignerKind string

const (
	// SignerNop produces no signatures.
	SignerNop SignerKind = "nop"
	// SignerGpgDefaultKey signs with gpg's configured default key.
	SignerGpgDefaultKey SignerKind = "gpg-default-key"
	// SignerGpgKey signs with an explicitly named gpg key.
	SignerGpgKey SignerKind = "gpg-key"
)

// SignerSelection is the outcome of signer mode selection. Key is set
// only when Kind is SignerGpgKey.
type SignerSelection struct {
	Kind SignerKind
	Key  string
}

// SelectSigner maps the signature policy to a signer selection.
func SelectSigner(sig params.SignatureParams) SignerSelection {
	if !sig.Gpg {
		return SignerSelection{Kind: SignerNop}
	}
	if key, ok := sig.GpgKey.Get(); ok {
		return SignerSelection{Kind: SignerGpgKey, Key: key}
	}
	return SignerSelection{Kind: SignerGpgDefaultKey}
}

// LoggerKind identifies the progress logger family to construct.
type LoggerKind string

const (
	// LoggerBatch emits line-oriented progress suitable for CI logs.
	LoggerBatch LoggerKind = "batch"
	// LoggerInteractive redraws progress in place on a terminal.
	LoggerInteractive LoggerKind = "interactive"
)

// stderrIsTerminal is swapped out by tests; terminal state is ambient,
// and probing it must stay the only impure step of logger selection.
var stderrIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// SelectLogger maps the batch flag to a logger selection. When the flag
// is absent, the logger follows whether stderr is a terminal.
func SelectLogger(batch types.Optional[bool]) LoggerKind {
	if forced, ok := batch.Get(); ok {
		if forced {
			return LoggerBatch
		}
		return LoggerInteractive
	}
	if stderrIsTerminal() {
		return LoggerInteractive
	}
	return LoggerBatch
}

// Warnings returns advisory notes about parameter combinations that are
// valid but unlikely to be what the user wants. They never block the run.
func Warnings(p *params.PublishParams) []string {
	var warnings []string

	if p.Repository.Sonatype {
		if SelectSigner(p.Signature).Kind == SignerNop {
			warnings = append(warnings, "Sonatype requires signed artifacts; publishing without --gpg will be rejected at release time")
		}
		if !p.Repository.Credentials.IsSome() {
			warnings = append(warnings, "no credentials supplied for Sonatype; the upload will likely be refused (see --auth)")
		}
	}

	return warnings
}
