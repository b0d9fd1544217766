// SPDX-License-Identifier: MPL-2.0

package conf

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/przemek-pokrywka/coursier/internal/issue"
	"github.com/przemek-pokrywka/coursier/pkg/cueutil"

	"github.com/spf13/viper"
)

//go:embed publish_schema.cue
var publishSchema string

type (
	// License is a persisted license entry.
	License struct {
		Name string `json:"name" mapstructure:"name"`
		URL  string `json:"url" mapstructure:"url"`
	}

	// Developer is a persisted developer entry.
	Developer struct {
		ID   string `json:"id" mapstructure:"id"`
		Name string `json:"name" mapstructure:"name"`
		URL  string `json:"url,omitempty" mapstructure:"url"`
	}

	// Document is the parsed representation of a publish.json file.
	// It is loaded once per invocation and read-only afterwards; absent
	// fields stay at their zero value.
	Document struct {
		Organization string      `json:"organization,omitempty" mapstructure:"organization"`
		Version      string      `json:"version,omitempty" mapstructure:"version"`
		HomePage     string      `json:"homePage,omitempty" mapstructure:"homePage"`
		Licenses     []License   `json:"licenses,omitempty" mapstructure:"licenses"`
		Developers   []Developer `json:"developers,omitempty" mapstructure:"developers"`
	}
)

// Load reads, validates, and decodes the publish configuration at path.
// Any failure (read, syntax, schema) is fatal to the whole resolution, so
// the returned error carries actionable context for the CLI error reporter.
func Load(path string) (*Document, error) {
	v := viper.New()
	if err := loadDocumentIntoViper(v, path); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load publish configuration").
			WithResource(path).
			WithSuggestion("Check that the file contains valid JSON").
			WithSuggestion("Known fields: organization, version, homePage, licenses, developers").
			Wrap(err).
			BuildError()
	}

	var doc Document
	if err := v.Unmarshal(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode publish configuration: %w", err)
	}

	return &doc, nil
}

// loadDocumentIntoViper parses a publish.json file, validates it against
// the #Publish schema, and merges its contents into Viper. The document
// decodes to a map rather than a struct so Viper can apply its own
// mapstructure-tagged unmarshal on top; Concrete(false) because every
// document field is optional.
func loadDocumentIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read publish configuration: %w", err)
	}

	result, err := cueutil.ParseAndDecodeString[map[string]any](publishSchema, data, "#Publish",
		cueutil.WithConcrete(false),
		cueutil.WithFilename(path),
	)
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(*result.Value); err != nil {
		return fmt.Errorf("failed to merge publish configuration: %w", err)
	}

	return nil
}
