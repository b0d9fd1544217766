// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableErrorMessage(t *testing.T) {
	cause := errors.New("no such file or directory")
	err := NewErrorContext().
		WithOperation("load publish configuration").
		WithResource("project/publish.json").
		Wrap(cause).
		Build()

	want := "failed to load publish configuration: project/publish.json: no such file or directory"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() should match the wrapped cause")
	}
}

func TestActionableErrorFormatSuggestions(t *testing.T) {
	err := NewErrorContext().
		WithOperation("upload artifact").
		WithSuggestion("Re-run with --dummy to inspect what would be uploaded").
		WithSuggestion("Check the repository URL").
		Build()

	out := err.Format(false)
	if !strings.Contains(out, "• Re-run with --dummy") {
		t.Errorf("Format() missing first suggestion:\n%s", out)
	}
	if !strings.Contains(out, "• Check the repository URL") {
		t.Errorf("Format() missing second suggestion:\n%s", out)
	}
}

func TestActionableErrorFormatVerboseChain(t *testing.T) {
	inner := errors.New("connection refused")
	err := NewErrorContext().
		WithOperation("upload artifact").
		Wrap(WrapWithOperation(inner, "PUT request")).
		Build()

	out := err.Format(true)
	if !strings.Contains(out, "Error chain:") {
		t.Errorf("verbose Format() should include the error chain:\n%s", out)
	}
	if !strings.Contains(out, "connection refused") {
		t.Errorf("verbose Format() should include the root cause:\n%s", out)
	}
}

func TestBuildRequiresOperation(t *testing.T) {
	if err := NewErrorContext().WithResource("publish.json").BuildError(); err != nil {
		t.Errorf("BuildError() without operation should be nil, got %v", err)
	}
}

func TestIssueRegistryComplete(t *testing.T) {
	ids := []Id{
		ConfFileNotFoundId,
		ConfNotAFileId,
		ConfParseErrorId,
		InvalidParamsId,
		CredentialsMissingId,
		SigningFailedId,
		UploadFailedId,
	}
	for _, id := range ids {
		if Get(id) == nil {
			t.Errorf("registry is missing issue %d", id)
		}
	}
	if len(Values()) != len(ids) {
		t.Errorf("Values() = %d issues, want %d", len(Values()), len(ids))
	}
}
