// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Publish: {
	organization?: string
	version?:      string
}
`

type testDoc struct {
	Organization string `json:"organization,omitempty"`
	Version      string `json:"version,omitempty"`
}

func TestParseAndDecodeJSON(t *testing.T) {
	data := []byte(`{"organization": "com.example", "version": "3.2.1"}`)

	result, err := ParseAndDecodeString[testDoc](testSchema, data, "#Publish",
		WithConcrete(false), WithFilename("publish.json"))
	if err != nil {
		t.Fatalf("ParseAndDecodeString() returned error: %v", err)
	}

	if result.Value.Organization != "com.example" {
		t.Errorf("Organization = %q, want %q", result.Value.Organization, "com.example")
	}
	if result.Value.Version != "3.2.1" {
		t.Errorf("Version = %q, want %q", result.Value.Version, "3.2.1")
	}
}

func TestParseAndDecodeSchemaViolation(t *testing.T) {
	data := []byte(`{"organization": 42}`)

	_, err := ParseAndDecodeString[testDoc](testSchema, data, "#Publish",
		WithConcrete(false), WithFilename("publish.json"))
	if err == nil {
		t.Fatal("expected schema violation error, got nil")
	}
	if !strings.Contains(err.Error(), "publish.json") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestParseAndDecodeSyntaxError(t *testing.T) {
	data := []byte(`{"organization": `)

	_, err := ParseAndDecodeString[testDoc](testSchema, data, "#Publish",
		WithConcrete(false), WithFilename("publish.json"))
	if err == nil {
		t.Fatal("expected syntax error, got nil")
	}
}

func TestCheckFileSize(t *testing.T) {
	if err := CheckFileSize(make([]byte, 10), 5, "publish.json"); err == nil {
		t.Error("expected size limit error, got nil")
	}
	if err := CheckFileSize(make([]byte, 5), 10, "publish.json"); err != nil {
		t.Errorf("unexpected error below limit: %v", err)
	}
}

func TestFormatPath(t *testing.T) {
	tests := []struct {
		name string
		path []string
		want string
	}{
		{"empty", nil, ""},
		{"simple", []string{"organization"}, "organization"},
		{"nested", []string{"licenses", "0", "url"}, "licenses[0].url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatPath(tt.path); got != tt.want {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
