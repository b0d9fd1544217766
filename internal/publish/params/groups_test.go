// SPDX-License-Identifier: MPL-2.0

package params

import (
	"errors"
	"strings"
	"testing"

	"github.com/przemek-pokrywka/coursier/internal/publish/checksums"
	"github.com/przemek-pokrywka/coursier/internal/publish/options"
	"github.com/przemek-pokrywka/coursier/internal/testutil"
	"github.com/przemek-pokrywka/coursier/pkg/types"
)

func TestRepositoryParamsDefaultIsSonatype(t *testing.T) {
	p, errs := RepositoryParamsFrom(options.RepositoryOptions{})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if !p.Sonatype {
		t.Error("default target should be Sonatype")
	}
	if p.URL == "" {
		t.Error("default target should carry a deploy URL")
	}
}

func TestRepositoryParamsCustomURL(t *testing.T) {
	p, errs := RepositoryParamsFrom(options.RepositoryOptions{
		Repository: types.Some("https://repo.example.com/releases/"),
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if p.Sonatype {
		t.Error("explicit URL target should not be Sonatype")
	}
	if p.URL != "https://repo.example.com/releases" {
		t.Errorf("URL = %q, want trailing slash trimmed", p.URL)
	}
}

func TestRepositoryParamsUnrecognizedTarget(t *testing.T) {
	_, errs := RepositoryParamsFrom(options.RepositoryOptions{
		Repository: types.Some("ftp://repo.example.com"),
	})
	if len(errs) != 1 || !strings.Contains(errs[0].Error(), "unrecognized repository") {
		t.Errorf("errors = %v, want one unrecognized-repository error", errs)
	}
}

func TestRepositoryParamsCredentials(t *testing.T) {
	t.Run("inline", func(t *testing.T) {
		p, errs := RepositoryParamsFrom(options.RepositoryOptions{
			Auth: types.Some("jdoe:hunter2"),
		})
		if len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		creds, ok := p.Credentials.Get()
		if !ok || creds.User != "jdoe" || creds.Password != "hunter2" {
			t.Errorf("Credentials = %+v, %v, want jdoe/hunter2", creds, ok)
		}
	})

	t.Run("from environment", func(t *testing.T) {
		restore := testutil.MustSetenv(t, "PUBLISH_TEST_CREDS", "jdoe:hunter2")
		defer restore()

		p, errs := RepositoryParamsFrom(options.RepositoryOptions{
			Auth: types.Some("env:PUBLISH_TEST_CREDS"),
		})
		if len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		creds, _ := p.Credentials.Get()
		if creds.User != "jdoe" {
			t.Errorf("Credentials.User = %q, want jdoe", creds.User)
		}
	})

	t.Run("environment variable unset", func(t *testing.T) {
		restore := testutil.MustUnsetenv(t, "PUBLISH_TEST_CREDS")
		defer restore()

		_, errs := RepositoryParamsFrom(options.RepositoryOptions{
			Auth: types.Some("env:PUBLISH_TEST_CREDS"),
		})
		if len(errs) != 1 || !strings.Contains(errs[0].Error(), "PUBLISH_TEST_CREDS") {
			t.Errorf("errors = %v, want one error naming the variable", errs)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		_, errs := RepositoryParamsFrom(options.RepositoryOptions{
			Auth: types.Some("no-separator"),
		})
		if len(errs) != 1 || !strings.Contains(errs[0].Error(), "user:password") {
			t.Errorf("errors = %v, want one malformed-credentials error", errs)
		}
	})
}

func TestMetadataParamsParsesEntries(t *testing.T) {
	p, errs := MetadataParamsFrom(options.MetadataOptions{
		Organization: types.Some("com.example"),
		Licenses:     []string{"Apache-2.0:https://www.apache.org/licenses/LICENSE-2.0"},
		Developers:   []string{"jdoe|J. Doe|https://example.com/jdoe", "asmith|A. Smith"},
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if len(p.Licenses) != 1 || p.Licenses[0].Name != "Apache-2.0" {
		t.Errorf("Licenses = %v, want one Apache-2.0 entry", p.Licenses)
	}
	if len(p.Developers) != 2 {
		t.Fatalf("Developers = %v, want two entries", p.Developers)
	}
	if p.Developers[1].URL != "" {
		t.Errorf("two-part developer entry should have no URL, got %q", p.Developers[1].URL)
	}
}

func TestMetadataParamsAccumulatesMalformedEntries(t *testing.T) {
	_, errs := MetadataParamsFrom(options.MetadataOptions{
		Licenses:   []string{"missing-url"},
		Developers: []string{"only-id"},
	})
	if len(errs) != 2 {
		t.Fatalf("errors = %v, want both the license and the developer error", errs)
	}
	if !strings.Contains(errs[0].Error(), "license") {
		t.Errorf("first error should be the license error, got %v", errs[0])
	}
	if !strings.Contains(errs[1].Error(), "developer") {
		t.Errorf("second error should be the developer error, got %v", errs[1])
	}
}

func TestMetadataParamsRejectsBlankExplicitValues(t *testing.T) {
	_, errs := MetadataParamsFrom(options.MetadataOptions{
		Organization: types.Some("  "),
	})
	if len(errs) != 1 || !strings.Contains(errs[0].Error(), "--organization") {
		t.Errorf("errors = %v, want one blank --organization error", errs)
	}
}

func TestSinglePackageParamsArtifactRequiresPom(t *testing.T) {
	_, errs := SinglePackageParamsFrom(options.SinglePackageOptions{
		Artifact: types.Some("out/lib.jar"),
	})
	if len(errs) != 1 || !strings.Contains(errs[0].Error(), "--pom") {
		t.Errorf("errors = %v, want one artifact-requires-pom error", errs)
	}

	p, errs := SinglePackageParamsFrom(options.SinglePackageOptions{
		Pom:      types.Some("pom.xml"),
		Artifact: types.Some("out/lib.jar"),
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if !p.IsSet() {
		t.Error("IsSet() should report the selection")
	}
}

func TestChecksumParamsDefault(t *testing.T) {
	p, errs := ChecksumParamsFrom(options.ChecksumOptions{})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := []checksums.Type{checksums.SHA1, checksums.MD5}
	if len(p.Types) != len(want) || p.Types[0] != want[0] || p.Types[1] != want[1] {
		t.Errorf("Types = %v, want %v", p.Types, want)
	}
}

func TestChecksumParamsExplicitList(t *testing.T) {
	p, errs := ChecksumParamsFrom(options.ChecksumOptions{
		Checksums: types.Some("sha-256, md5"),
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(p.Types) != 2 || p.Types[0] != checksums.SHA256 || p.Types[1] != checksums.MD5 {
		t.Errorf("Types = %v, want [sha-256 md5]", p.Types)
	}
}

func TestChecksumParamsNone(t *testing.T) {
	p, errs := ChecksumParamsFrom(options.ChecksumOptions{
		Checksums: types.Some("none"),
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(p.Types) != 0 {
		t.Errorf("Types = %v, want empty for \"none\"", p.Types)
	}
}

func TestChecksumParamsUnknownType(t *testing.T) {
	_, errs := ChecksumParamsFrom(options.ChecksumOptions{
		Checksums: types.Some("sha-1,crc32"),
	})
	if len(errs) != 1 || !errors.Is(errs[0], checksums.ErrInvalidType) {
		t.Errorf("errors = %v, want one ErrInvalidType", errs)
	}
}

func TestSignatureParamsKeyImpliesGpg(t *testing.T) {
	p, errs := SignatureParamsFrom(options.SignatureOptions{
		GpgKey: types.Some("ABCD1234"),
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if !p.Gpg {
		t.Error("naming a key should imply --gpg")
	}
}

func TestCacheParamsTTL(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		p, errs := CacheParamsFrom(options.CacheOptions{Cache: types.Some("/tmp/cache")})
		if len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if p.TTL != defaultCacheTTL {
			t.Errorf("TTL = %v, want default %v", p.TTL, defaultCacheTTL)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		_, errs := CacheParamsFrom(options.CacheOptions{
			Cache: types.Some("/tmp/cache"),
			TTL:   types.Some("eventually"),
		})
		if len(errs) != 1 || !strings.Contains(errs[0].Error(), "TTL") {
			t.Errorf("errors = %v, want one malformed TTL error", errs)
		}
	})

	t.Run("non-positive", func(t *testing.T) {
		_, errs := CacheParamsFrom(options.CacheOptions{
			Cache: types.Some("/tmp/cache"),
			TTL:   types.Some("-1h"),
		})
		if len(errs) != 1 || !strings.Contains(errs[0].Error(), "positive") {
			t.Errorf("errors = %v, want one non-positive TTL error", errs)
		}
	})
}
