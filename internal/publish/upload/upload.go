// SPDX-License-Identifier: MPL-2.0

// Package upload pushes files into a Maven repository over HTTP PUT.
package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/przemek-pokrywka/coursier/internal/issue"
	"github.com/przemek-pokrywka/coursier/internal/publish/params"
	"github.com/przemek-pokrywka/coursier/pkg/types"
)

const (
	defaultTimeout = 2 * time.Minute
	userAgent      = "coursier-publish"

	// maxErrorBody bounds how much of a failed response we read back for
	// diagnostics. Repositories can return very large HTML error pages.
	maxErrorBody = 4 * 1024
)

// Uploader writes one file's content to a repository-relative path like
// "com/example/demo/1.0/demo-1.0.pom".
type Uploader interface {
	Upload(ctx context.Context, path string, content []byte) error
}

// Option configures an HTTPUploader.
type Option func(*HTTPUploader)

// WithHTTPClient sets a custom HTTP client, mainly for testing.
func WithHTTPClient(client *http.Client) Option {
	return func(u *HTTPUploader) {
		u.client = client
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(u *HTTPUploader) {
		u.userAgent = ua
	}
}

// WithCredentials sets basic-auth credentials for every request.
func WithCredentials(creds types.Optional[params.Credentials]) Option {
	return func(u *HTTPUploader) {
		u.credentials = creds
	}
}

// HTTPUploader PUTs files under a repository base URL.
type HTTPUploader struct {
	client      *http.Client
	baseURL     string
	userAgent   string
	credentials types.Optional[params.Credentials]
}

// NewHTTPUploader creates an uploader for the given repository base URL.
func NewHTTPUploader(baseURL string, opts ...Option) *HTTPUploader {
	u := &HTTPUploader{
		client:    &http.Client{Timeout: defaultTimeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *HTTPUploader) Upload(ctx context.Context, path string, content []byte) error {
	url := u.baseURL + "/" + strings.TrimLeft(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("User-Agent", u.userAgent)
	if creds, ok := u.credentials.Get(); ok {
		req.SetBasicAuth(creds.User, creds.Password)
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("upload artifact").
			WithResource(path).
			WithSuggestion("check the repository URL and your network connection").
			Wrap(err).
			BuildError()
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		ec := issue.NewErrorContext().
			WithOperation("upload artifact").
			WithResource(path).
			Wrap(fmt.Errorf("repository responded %s: %s", resp.Status, strings.TrimSpace(string(body))))
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			ec.WithSuggestion("check the credentials passed via --auth")
		case http.StatusConflict:
			ec.WithSuggestion("the version may already be released; bump --version and retry")
		}
		return ec.BuildError()
	}

	// Drain so the connection can be reused for the next file.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// DummyUploader logs what would be uploaded and writes nothing. It backs
// the --dummy flag.
type DummyUploader struct {
	logger *log.Logger

	// Paths records every destination in upload order.
	Paths []string
}

// NewDummyUploader creates a dry-run uploader reporting through logger.
func NewDummyUploader(logger *log.Logger) *DummyUploader {
	return &DummyUploader{logger: logger}
}

func (u *DummyUploader) Upload(ctx context.Context, path string, content []byte) error {
	u.Paths = append(u.Paths, path)
	u.logger.Info("would upload", "path", path, "bytes", len(content))
	return nil
}
