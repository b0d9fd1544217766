// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/przemek-pokrywka/coursier/internal/issue"
	"github.com/przemek-pokrywka/coursier/internal/publish/checksums"
	"github.com/przemek-pokrywka/coursier/internal/publish/logger"
	"github.com/przemek-pokrywka/coursier/internal/publish/params"
	"github.com/przemek-pokrywka/coursier/internal/publish/signer"
	"github.com/przemek-pokrywka/coursier/internal/publish/upload"
)

// sbtStagingDir is where an sbt build stages a local repository layout
// (sbt publishM2 / publishLocal with a repository target).
const sbtStagingDir = "target/repository"

// publishFile pairs a local file with its repository-relative destination.
type publishFile struct {
	// Local is the path on disk.
	Local string
	// Dest is the destination path, e.g. "com/example/demo/1.0/demo-1.0.pom".
	Dest string
}

// collectFiles gathers everything to upload from the resolved selection:
// the explicit single package, explicit directories, or nothing.
func collectFiles(p *params.PublishParams) ([]publishFile, error) {
	if p.SinglePackage.IsSet() {
		return collectSinglePackage(p)
	}

	var files []publishFile
	for _, dir := range p.Directory.Directories {
		collected, err := collectDirectory(dir)
		if err != nil {
			return nil, err
		}
		files = append(files, collected...)
	}
	for _, dir := range p.Directory.SbtDirectories {
		staged := filepath.Join(dir, filepath.FromSlash(sbtStagingDir))
		if _, err := os.Stat(staged); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("collect staged sbt artifacts").
				WithResource(staged).
				WithSuggestion("stage the build first, e.g. sbt publishM2 with a repository target under " + sbtStagingDir).
				Wrap(err).
				BuildError()
		}
		collected, err := collectDirectory(staged)
		if err != nil {
			return nil, err
		}
		files = append(files, collected...)
	}
	return files, nil
}

// collectSinglePackage lays out the explicit POM (and artifact) under Maven
// coordinates taken from the resolved metadata.
func collectSinglePackage(p *params.PublishParams) ([]publishFile, error) {
	org, okOrg := p.Metadata.Organization.Get()
	name, okName := p.Metadata.Name.Get()
	version, okVersion := p.Metadata.Version.Get()

	var missing []string
	if !okOrg {
		missing = append(missing, "--organization")
	}
	if !okName {
		missing = append(missing, "--name")
	}
	if !okVersion {
		missing = append(missing, "--version")
	}
	if len(missing) > 0 {
		return nil, issue.NewErrorContext().
			WithOperation("derive Maven coordinates").
			WithSuggestion("pass " + strings.Join(missing, ", ") + " or provide them via publish.json").
			Wrap(fmt.Errorf("missing coordinates: %s", strings.Join(missing, ", "))).
			BuildError()
	}

	base := strings.ReplaceAll(org, ".", "/") + "/" + name + "/" + version + "/" + name + "-" + version

	pom, _ := p.SinglePackage.Pom.Get()
	files := []publishFile{{Local: pom, Dest: base + ".pom"}}

	if artifact, ok := p.SinglePackage.Artifact.Get(); ok {
		ext := filepath.Ext(artifact)
		if ext == "" {
			ext = ".jar"
		}
		files = append(files, publishFile{Local: artifact, Dest: base + ext})
	}
	return files, nil
}

// collectDirectory walks an already-laid-out local repository directory and
// publishes every regular file under its relative path.
func collectDirectory(dir string) ([]publishFile, error) {
	var files []publishFile
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, publishFile{Local: path, Dest: filepath.ToSlash(rel)})
		return nil
	})
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("collect directory contents").
			WithResource(dir).
			Wrap(err).
			BuildError()
	}
	return files, nil
}

// runPipeline uploads every collected file along with its checksum sidecars
// and, when signing is active, its detached signature. Files are processed
// sequentially; the first failure aborts the run.
func runPipeline(
	ctx context.Context,
	p *params.PublishParams,
	files []publishFile,
	uploader upload.Uploader,
	sgn signer.Signer,
	progress logger.ProgressLogger,
	diag *log.Logger,
) error {
	for _, f := range files {
		progress.Start(f.Dest)
		if err := publishOne(ctx, p, f, uploader, sgn, diag); err != nil {
			progress.Done(f.Dest, err)
			return err
		}
		progress.Done(f.Dest, nil)
	}
	return nil
}

func publishOne(
	ctx context.Context,
	p *params.PublishParams,
	f publishFile,
	uploader upload.Uploader,
	sgn signer.Signer,
	diag *log.Logger,
) error {
	content, err := os.ReadFile(f.Local)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("read artifact").
			WithResource(f.Local).
			Wrap(err).
			BuildError()
	}

	if err := uploader.Upload(ctx, f.Dest, content); err != nil {
		return err
	}

	for _, t := range p.Checksum.Types {
		digest, err := checksums.Compute(t, bytes.NewReader(content))
		if err != nil {
			return err
		}
		sidecar := checksums.FormatEntry(digest, filepath.Base(f.Local))
		diag.Debug("uploading checksum sidecar", "type", t, "dest", f.Dest+t.Extension())
		if err := uploader.Upload(ctx, f.Dest+t.Extension(), []byte(sidecar)); err != nil {
			return err
		}
	}

	sigPath, err := sgn.Sign(ctx, f.Local)
	if err != nil {
		return err
	}
	if sigPath != "" {
		sig, err := os.ReadFile(sigPath)
		if err != nil {
			return issue.NewErrorContext().
				WithOperation("read signature").
				WithResource(sigPath).
				Wrap(err).
				BuildError()
		}
		if err := uploader.Upload(ctx, f.Dest+".asc", sig); err != nil {
			return err
		}
	}

	return nil
}
