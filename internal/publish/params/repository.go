// SPDX-License-Identifier: MPL-2.0

package params

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/przemek-pokrywka/coursier/internal/publish/options"
	"github.com/przemek-pokrywka/coursier/pkg/types"
)

// sonatypeReleasesURL is the deploy endpoint used when the target is the
// Sonatype OSSRH service.
const sonatypeReleasesURL = "https://oss.sonatype.org/service/local/staging/deploy/maven2"

// repositorySonatype is the shorthand accepted by --repository.
const repositorySonatype = "sonatype"

type (
	// Credentials holds basic-auth credentials for the target repository.
	Credentials struct {
		User     string
		Password string
	}

	// RepositoryParams is the validated publication target.
	RepositoryParams struct {
		// URL is the deploy endpoint, without a trailing slash.
		URL string
		// Sonatype reports whether the target is the Sonatype OSSRH
		// service, which expects authenticated, signed publishing.
		Sonatype bool
		// Credentials is absent when publishing anonymously.
		Credentials types.Optional[Credentials]
	}
)

// RepositoryParamsFrom validates the repository option group. The default
// target (no --repository) is Sonatype.
func RepositoryParamsFrom(opts options.RepositoryOptions) (RepositoryParams, []error) {
	var errs []error

	p := RepositoryParams{URL: sonatypeReleasesURL, Sonatype: true}

	if raw, ok := opts.Repository.Get(); ok {
		switch {
		case raw == repositorySonatype:
			// Keep the default target.
		case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
			p = RepositoryParams{URL: strings.TrimRight(raw, "/")}
		default:
			errs = append(errs, fmt.Errorf("unrecognized repository %q (expected %q or an http(s) URL)", raw, repositorySonatype))
		}
	}

	if raw, ok := opts.Auth.Get(); ok {
		creds, err := parseCredentials(raw)
		if err != nil {
			errs = append(errs, err)
		} else {
			p.Credentials = types.Some(creds)
		}
	}

	return p, errs
}

// parseCredentials parses "user:password", or "env:VAR" naming an
// environment variable holding "user:password". The password may be empty;
// the user may not.
func parseCredentials(raw string) (Credentials, error) {
	if name, ok := strings.CutPrefix(raw, "env:"); ok {
		value, found := os.LookupEnv(name)
		if !found {
			return Credentials{}, fmt.Errorf("credentials environment variable %s is not set", name)
		}
		raw = value
	}

	user, password, ok := strings.Cut(raw, ":")
	if !ok || user == "" {
		return Credentials{}, errors.New("malformed credentials (expected user:password)")
	}

	return Credentials{User: user, Password: password}, nil
}
