// SPDX-License-Identifier: MPL-2.0

package params

import (
	"fmt"
	"strings"

	"github.com/przemek-pokrywka/coursier/internal/publish/options"
	"github.com/przemek-pokrywka/coursier/pkg/types"
)

type (
	// License is a validated POM license entry.
	License struct {
		Name string
		URL  string
	}

	// Developer is a validated POM developer entry.
	Developer struct {
		ID   string
		Name string
		URL  string
	}

	// MetadataParams is the validated release metadata. Fields that are
	// still absent after validation are intentionally optional: they may be
	// supplied later by the publish.json overlay, or rejected by a later
	// stage that actually needs them (e.g., single-package layout).
	MetadataParams struct {
		Organization types.Optional[string]
		Name         types.Optional[string]
		Version      types.Optional[string]
		HomePage     types.Optional[string]
		Licenses     []License
		Developers   []Developer
	}
)

// MetadataParamsFrom validates the metadata option group. Explicitly
// supplied blank values are rejected rather than treated as absent: an
// empty --organization is a user mistake, not a request for the overlay.
func MetadataParamsFrom(opts options.MetadataOptions) (MetadataParams, []error) {
	var errs []error

	p := MetadataParams{
		Organization: opts.Organization,
		Name:         opts.Name,
		Version:      opts.Version,
		HomePage:     opts.HomePage,
	}

	// A slice, not a map: error order must stay stable across runs.
	blankChecks := []struct {
		flag  string
		field types.Optional[string]
	}{
		{"--organization", opts.Organization},
		{"--name", opts.Name},
		{"--version", opts.Version},
		{"--home-page", opts.HomePage},
	}
	for _, c := range blankChecks {
		if v, ok := c.field.Get(); ok && strings.TrimSpace(v) == "" {
			errs = append(errs, fmt.Errorf("%s must not be blank when given", c.flag))
		}
	}

	for _, raw := range opts.Licenses {
		lic, err := parseLicense(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		p.Licenses = append(p.Licenses, lic)
	}

	for _, raw := range opts.Developers {
		dev, err := parseDeveloper(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		p.Developers = append(p.Developers, dev)
	}

	return p, errs
}

// parseLicense parses a "name:url" license entry.
func parseLicense(raw string) (License, error) {
	name, url, ok := strings.Cut(raw, ":")
	if !ok || strings.TrimSpace(name) == "" || strings.TrimSpace(url) == "" {
		return License{}, fmt.Errorf("malformed license %q (expected name:url)", raw)
	}
	return License{Name: name, URL: url}, nil
}

// parseDeveloper parses an "id|name|url" developer entry. The URL part is
// optional.
func parseDeveloper(raw string) (Developer, error) {
	parts := strings.Split(raw, "|")
	if len(parts) < 2 || len(parts) > 3 ||
		strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return Developer{}, fmt.Errorf("malformed developer %q (expected id|name|url)", raw)
	}

	dev := Developer{ID: parts[0], Name: parts[1]}
	if len(parts) == 3 {
		dev.URL = parts[2]
	}
	return dev, nil
}
