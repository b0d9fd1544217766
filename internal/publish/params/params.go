// SPDX-License-Identifier: MPL-2.0

package params

import (
	"github.com/przemek-pokrywka/coursier/internal/publish/conf"
	"github.com/przemek-pokrywka/coursier/internal/publish/options"
	"github.com/przemek-pokrywka/coursier/pkg/types"
)

// PublishParams is the fully resolved, immutable parameter aggregate for
// one publish invocation. After Assemble returns it, it is shared read-only
// by every later pipeline stage; nothing mutates it.
type PublishParams struct {
	Repository    RepositoryParams
	Metadata      MetadataParams
	SinglePackage SinglePackageParams
	Directory     DirectoryParams
	Checksum      ChecksumParams
	Signature     SignatureParams
	Cache         CacheParams

	// Verbosity is -1 (quiet), 0 (normal), or the -v repetition count.
	Verbosity int
	// Dummy simulates uploads instead of executing them.
	Dummy bool
	// Batch forces the non-interactive logger family when present; absent
	// means "decide from whether output is a terminal", resolved lazily by
	// the mode selector, not here.
	Batch types.Optional[bool]
	// OutputFrameWidth bounds redrawn progress lines in interactive mode.
	OutputFrameWidth types.Optional[int]
}

// Scoped reports whether the invocation was narrowed to an explicit single
// package or explicit directories. Scoped operations never pick up an
// ambient publish.json via discovery.
func (p *PublishParams) Scoped() bool {
	return p.SinglePackage.IsSet() || p.Directory.Explicit()
}

// Assemble builds every parameter group from the options bag, accumulating
// all validation failures, and then resolves the publish.json overlay.
//
// Group validations are independent; their errors are concatenated in
// declared-group order (repository, metadata, single-package, directory,
// checksum, signature, cache, verbosity) and returned together — a second
// invalid group never hides behind the first. Only when every group is
// valid does resolution touch the filesystem for the single optional
// configuration read; a config error there is fatal and returned alone.
func Assemble(opts options.PublishOptions, workdir string) (*PublishParams, []error) {
	repository, repositoryErrs := RepositoryParamsFrom(opts.Repository)
	metadata, metadataErrs := MetadataParamsFrom(opts.Metadata)
	singlePackage, singlePackageErrs := SinglePackageParamsFrom(opts.SinglePackage)
	directory, directoryErrs := DirectoryParamsFrom(opts.Directory)
	checksum, checksumErrs := ChecksumParamsFrom(opts.Checksum)
	signature, signatureErrs := SignatureParamsFrom(opts.Signature)
	cache, cacheErrs := CacheParamsFrom(opts.Cache)
	verbosity, verbosityErrs := resolveVerbosity(opts.Quiet, opts.Verbose)

	errs := collect(
		repositoryErrs,
		metadataErrs,
		singlePackageErrs,
		directoryErrs,
		checksumErrs,
		signatureErrs,
		cacheErrs,
		verbosityErrs,
	)
	if len(errs) > 0 {
		return nil, errs
	}

	p := &PublishParams{
		Repository:       repository,
		Metadata:         metadata,
		SinglePackage:    singlePackage,
		Directory:        directory,
		Checksum:         checksum,
		Signature:        signature,
		Cache:            cache,
		Verbosity:        verbosity,
		Dummy:            opts.Dummy,
		Batch:            opts.Batch,
		OutputFrameWidth: opts.OutputFrameWidth,
	}

	confPath, err := conf.Discover(workdir, opts.ConfFile, p.Scoped())
	if err != nil {
		return nil, []error{err}
	}
	if confPath != "" {
		doc, err := conf.Load(confPath)
		if err != nil {
			return nil, []error{err}
		}
		p.Metadata = overlayMetadata(p.Metadata, doc)
	}

	return p, nil
}
