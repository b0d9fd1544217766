// SPDX-License-Identifier: MPL-2.0

package params

import (
	"errors"
	"fmt"
	"strings"

	"github.com/przemek-pokrywka/coursier/internal/publish/options"
	"github.com/przemek-pokrywka/coursier/pkg/types"
)

type (
	// SinglePackageParams narrows the operation to one explicit package.
	SinglePackageParams struct {
		// Pom is the path to an explicit POM file.
		Pom types.Optional[string]
		// Artifact is the path to the main artifact.
		Artifact types.Optional[string]
	}

	// DirectoryParams narrows the operation to explicit directories.
	DirectoryParams struct {
		Directories    []string
		SbtDirectories []string
	}
)

// IsSet reports whether any single-package selection was made.
func (p SinglePackageParams) IsSet() bool {
	return p.Pom.IsSome() || p.Artifact.IsSome()
}

// Explicit reports whether any directory selection was made, i.e. the
// directory selection is no longer in its default, unqualified state.
// Plain directories and sbt directories are two selection mechanisms, but
// for scoping they mean the same thing: the user pointed at something.
func (p DirectoryParams) Explicit() bool {
	return len(p.Directories) > 0 || len(p.SbtDirectories) > 0
}

// SinglePackageParamsFrom validates the single-package option group.
// An artifact without a POM has no coordinates to publish under.
func SinglePackageParamsFrom(opts options.SinglePackageOptions) (SinglePackageParams, []error) {
	var errs []error

	p := SinglePackageParams{Pom: opts.Pom, Artifact: opts.Artifact}

	if v, ok := opts.Pom.Get(); ok && strings.TrimSpace(v) == "" {
		errs = append(errs, errors.New("--pom must not be blank when given"))
	}
	if v, ok := opts.Artifact.Get(); ok && strings.TrimSpace(v) == "" {
		errs = append(errs, errors.New("--artifact must not be blank when given"))
	}
	if opts.Artifact.IsSome() && !opts.Pom.IsSome() {
		errs = append(errs, errors.New("an explicit artifact requires an accompanying POM (--pom)"))
	}

	return p, errs
}

// DirectoryParamsFrom validates the directory option group.
func DirectoryParamsFrom(opts options.DirectoryOptions) (DirectoryParams, []error) {
	var errs []error

	p := DirectoryParams{
		Directories:    opts.Directories,
		SbtDirectories: opts.SbtDirectories,
	}

	for i, dir := range opts.Directories {
		if strings.TrimSpace(dir) == "" {
			errs = append(errs, fmt.Errorf("--dir[%d] must not be blank", i))
		}
	}
	for i, dir := range opts.SbtDirectories {
		if strings.TrimSpace(dir) == "" {
			errs = append(errs, fmt.Errorf("--sbt-dir[%d] must not be blank", i))
		}
	}

	return p, errs
}
