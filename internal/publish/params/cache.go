// SPDX-License-Identifier: MPL-2.0

package params

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/przemek-pokrywka/coursier/internal/publish/options"
)

// defaultCacheTTL bounds how long cached repository metadata stays fresh.
const defaultCacheTTL = 24 * time.Hour

// CacheParams is the validated local cache policy.
type CacheParams struct {
	// Location is the cache directory.
	Location string
	// TTL bounds cache entry freshness.
	TTL time.Duration
}

// CacheParamsFrom validates the cache option group. Without an explicit
// location the platform user cache directory is used.
func CacheParamsFrom(opts options.CacheOptions) (CacheParams, []error) {
	var errs []error

	p := CacheParams{TTL: defaultCacheTTL}

	if loc, ok := opts.Cache.Get(); ok {
		if strings.TrimSpace(loc) == "" {
			errs = append(errs, fmt.Errorf("--cache must not be blank when given"))
		} else {
			p.Location = loc
		}
	} else {
		base, err := os.UserCacheDir()
		if err != nil {
			errs = append(errs, fmt.Errorf("cannot determine a default cache directory (set --cache): %w", err))
		} else {
			p.Location = filepath.Join(base, "coursier", "publish")
		}
	}

	if raw, ok := opts.TTL.Get(); ok {
		ttl, err := time.ParseDuration(raw)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("malformed cache TTL %q (expected a duration like 24h): %w", raw, err))
		case ttl <= 0:
			errs = append(errs, fmt.Errorf("cache TTL must be positive, got %q", raw))
		default:
			p.TTL = ttl
		}
	}

	return p, errs
}
