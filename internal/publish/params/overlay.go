// SPDX-License-Identifier: MPL-2.0

package params

import (
	"github.com/przemek-pokrywka/coursier/internal/publish/conf"
	"github.com/przemek-pokrywka/coursier/pkg/types"
)

// overlayMetadata fills the absent metadata fields from a loaded publish
// configuration document. Each field merges independently: a field that was
// explicitly supplied via options is never overwritten, and a partial
// overlay (some fields from options, some from the file) is the normal case.
func overlayMetadata(meta MetadataParams, doc *conf.Document) MetadataParams {
	meta.Organization = meta.Organization.Or(optionalString(doc.Organization))
	meta.Version = meta.Version.Or(optionalString(doc.Version))
	meta.HomePage = meta.HomePage.Or(optionalString(doc.HomePage))

	if len(meta.Licenses) == 0 {
		for _, lic := range doc.Licenses {
			meta.Licenses = append(meta.Licenses, License{Name: lic.Name, URL: lic.URL})
		}
	}
	if len(meta.Developers) == 0 {
		for _, dev := range doc.Developers {
			meta.Developers = append(meta.Developers, Developer{ID: dev.ID, Name: dev.Name, URL: dev.URL})
		}
	}

	return meta
}

// optionalString treats the document's zero value as absent; publish.json
// has no way to express an intentionally empty field.
func optionalString(v string) types.Optional[string] {
	if v == "" {
		return types.None[string]()
	}
	return types.Some(v)
}
