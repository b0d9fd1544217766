// SPDX-License-Identifier: MPL-2.0

// Package options holds the raw, already-parsed CLI input for `cs publish`.
//
// The bag is the read-only boundary between flag parsing and parameter
// resolution. Fields where "flag not given" must stay distinguishable from
// "flag given with its default" are types.Optional; the CLI layer fills
// them only when cobra reports the flag as changed.
package options

import "github.com/przemek-pokrywka/coursier/pkg/types"

type (
	// RepositoryOptions selects the publication target and its credentials.
	RepositoryOptions struct {
		// Repository is "sonatype" or an http(s) URL. Absent means Sonatype.
		Repository types.Optional[string]
		// Auth is "user:password", or "env:VAR" naming an environment
		// variable holding "user:password".
		Auth types.Optional[string]
	}

	// MetadataOptions carries POM-level release metadata. All fields may be
	// filled in later from a publish.json overlay when absent here.
	MetadataOptions struct {
		Organization types.Optional[string]
		Name         types.Optional[string]
		Version      types.Optional[string]
		HomePage     types.Optional[string]
		// Licenses are raw "name:url" entries from repeated --license flags.
		Licenses []string
		// Developers are raw "id|name|url" entries from repeated --developer flags.
		Developers []string
	}

	// SinglePackageOptions narrows the operation to one explicit package.
	SinglePackageOptions struct {
		// Pom is the path to an explicit POM file.
		Pom types.Optional[string]
		// Artifact is the path to the main artifact (e.g., a JAR).
		Artifact types.Optional[string]
	}

	// DirectoryOptions narrows the operation to explicit directories.
	DirectoryOptions struct {
		// Directories are plain directories whose files get published as-is.
		Directories []string
		// SbtDirectories are sbt project directories to stage and publish.
		SbtDirectories []string
	}

	// ChecksumOptions configures which checksum sidecar files accompany
	// every uploaded file.
	ChecksumOptions struct {
		// Checksums is a comma-separated list of checksum types, or "none".
		Checksums types.Optional[string]
	}

	// SignatureOptions configures detached PGP signatures.
	SignatureOptions struct {
		// Gpg enables signing with gpg.
		Gpg bool
		// GpgKey is the key id to sign with; implies Gpg when set.
		GpgKey types.Optional[string]
	}

	// CacheOptions configures the local metadata cache.
	CacheOptions struct {
		// Cache overrides the cache directory.
		Cache types.Optional[string]
		// TTL is a Go duration string bounding cache entry freshness.
		TTL types.Optional[string]
	}

	// PublishOptions is the complete options bag for one `cs publish`
	// invocation. It is read once by params.Assemble and never mutated.
	PublishOptions struct {
		Repository    RepositoryOptions
		Metadata      MetadataOptions
		SinglePackage SinglePackageOptions
		Directory     DirectoryOptions
		Checksum      ChecksumOptions
		Signature     SignatureOptions
		Cache         CacheOptions

		// ConfFile is the explicit --conf path. Absent triggers discovery.
		ConfFile types.Optional[string]

		// Quiet suppresses all non-error output.
		Quiet bool
		// Verbose is the count of repeated -v flags (>= 0).
		Verbose int
		// Dummy simulates uploads instead of executing them.
		Dummy bool
		// Batch forces the non-interactive logger family. Absent means
		// "decide from whether output is a terminal".
		Batch types.Optional[bool]
		// OutputFrameWidth bounds redrawn progress lines in interactive mode.
		OutputFrameWidth types.Optional[int]
	}
)
