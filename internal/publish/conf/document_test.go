// SPDX-License-Identifier: MPL-2.0

package conf

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/przemek-pokrywka/coursier/internal/issue"
	"github.com/przemek-pokrywka/coursier/internal/testutil"
)

func TestLoadFullDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "publish.json")
	testutil.MustWriteFile(t, path, []byte(`{
		"organization": "com.example",
		"version": "3.2.1",
		"homePage": "https://example.com",
		"licenses": [{"name": "Apache-2.0", "url": "https://www.apache.org/licenses/LICENSE-2.0"}],
		"developers": [{"id": "jdoe", "name": "J. Doe", "url": "https://example.com/jdoe"}]
	}`))

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if doc.Organization != "com.example" {
		t.Errorf("Organization = %q, want %q", doc.Organization, "com.example")
	}
	if doc.Version != "3.2.1" {
		t.Errorf("Version = %q, want %q", doc.Version, "3.2.1")
	}
	if doc.HomePage != "https://example.com" {
		t.Errorf("HomePage = %q, want %q", doc.HomePage, "https://example.com")
	}
	if len(doc.Licenses) != 1 || doc.Licenses[0].Name != "Apache-2.0" {
		t.Errorf("Licenses = %v, want one Apache-2.0 entry", doc.Licenses)
	}
	if len(doc.Developers) != 1 || doc.Developers[0].ID != "jdoe" {
		t.Errorf("Developers = %v, want one jdoe entry", doc.Developers)
	}
}

func TestLoadPartialDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "publish.json")
	testutil.MustWriteFile(t, path, []byte(`{"version": "3.2.1"}`))

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if doc.Version != "3.2.1" {
		t.Errorf("Version = %q, want %q", doc.Version, "3.2.1")
	}
	if doc.Organization != "" {
		t.Errorf("absent Organization should stay zero, got %q", doc.Organization)
	}
	if len(doc.Licenses) != 0 {
		t.Errorf("absent Licenses should stay empty, got %v", doc.Licenses)
	}
}

func TestLoadSyntaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "publish.json")
	testutil.MustWriteFile(t, path, []byte(`{"version": `))

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error, got nil")
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Errorf("parse errors should carry actionable context, got %T", err)
	}
}

func TestLoadSchemaViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "publish.json")
	testutil.MustWriteFile(t, path, []byte(`{"organization": 42}`))

	if _, err := Load(path); err == nil {
		t.Fatal("expected schema violation error, got nil")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "publish.json")); err == nil {
		t.Fatal("expected read error, got nil")
	}
}
