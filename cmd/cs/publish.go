// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/przemek-pokrywka/coursier/internal/issue"
	"github.com/przemek-pokrywka/coursier/internal/publish/conf"
	"github.com/przemek-pokrywka/coursier/internal/publish/logger"
	"github.com/przemek-pokrywka/coursier/internal/publish/mode"
	"github.com/przemek-pokrywka/coursier/internal/publish/options"
	"github.com/przemek-pokrywka/coursier/internal/publish/params"
	"github.com/przemek-pokrywka/coursier/internal/publish/signer"
	"github.com/przemek-pokrywka/coursier/internal/publish/upload"
	"github.com/przemek-pokrywka/coursier/pkg/cueutil"
	"github.com/przemek-pokrywka/coursier/pkg/types"
)

// publishFlags holds the raw flag storage for `cs publish`. Whether a flag
// was actually passed is read from cobra afterwards, so defaults here never
// leak into the options bag as explicit values.
type publishFlags struct {
	repository string
	auth       string

	organization string
	name         string
	version      string
	homePage     string
	licenses     []string
	developers   []string

	pom      string
	artifact string

	directories    []string
	sbtDirectories []string

	checksums string
	gpg       bool
	gpgKey    string

	cache    string
	cacheTTL string

	conf        string
	quiet       bool
	verbose     int
	dummy       bool
	batch       bool
	outputWidth int
}

var publishCmd = newPublishCmd()

func newPublishCmd() *cobra.Command {
	c, _ := newPublishCmdWithFlags()
	return c
}

// newPublishCmdWithFlags also exposes the flag storage, for tests that
// exercise the flag-to-options conversion without running the command.
func newPublishCmdWithFlags() (*cobra.Command, *publishFlags) {
	var flags publishFlags

	c := &cobra.Command{
		Use:   "publish",
		Short: "Publish artifacts to a Maven repository",
		Long: TitleStyle.Render("cs publish") + `

Publishes a single package (an explicit POM plus optional artifact),
or whole local repository directories, to a remote Maven repository.

Release metadata missing from the flags is read from a publish.json
file: either the one passed via --conf, or - for unscoped invocations -
one discovered at ` + CmdStyle.Render("publish.json") + ` or ` + CmdStyle.Render("project/publish.json") + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd, &flags)
		},
	}

	f := c.Flags()

	f.StringVar(&flags.repository, "repository", "", `target repository: "sonatype" or an http(s) URL (default sonatype)`)
	f.StringVar(&flags.auth, "auth", "", `repository credentials: "user:password" or "env:VAR"`)

	f.StringVarP(&flags.organization, "organization", "o", "", "organization / Maven groupId")
	f.StringVarP(&flags.name, "name", "n", "", "module name / Maven artifactId")
	f.StringVar(&flags.version, "version", "", "version to publish under")
	f.StringVar(&flags.homePage, "home-page", "", "project home page URL")
	f.StringArrayVar(&flags.licenses, "license", nil, `license as "name:url" (repeatable)`)
	f.StringArrayVar(&flags.developers, "developer", nil, `developer as "id|name|url" (repeatable)`)

	f.StringVar(&flags.pom, "pom", "", "path to an explicit POM file")
	f.StringVar(&flags.artifact, "artifact", "", "path to the main artifact (requires --pom)")

	f.StringArrayVar(&flags.directories, "dir", nil, "local repository directory to publish (repeatable)")
	f.StringArrayVar(&flags.sbtDirectories, "sbt-dir", nil, "sbt project directory to publish (repeatable)")

	f.StringVar(&flags.checksums, "checksum", "", `comma-separated checksum types or "none" (default "sha-1,md5")`)
	f.BoolVar(&flags.gpg, "gpg", false, "sign uploaded files with gpg")
	f.StringVar(&flags.gpgKey, "gpg-key", "", "gpg key id to sign with (implies --gpg)")

	f.StringVar(&flags.cache, "cache", "", "cache directory override")
	f.StringVar(&flags.cacheTTL, "cache-ttl", "", "cache entry time-to-live, e.g. 24h")

	f.StringVar(&flags.conf, "conf", "", "explicit publish configuration file")
	f.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress all non-error output")
	f.CountVarP(&flags.verbose, "verbose", "v", "increase verbosity (repeatable)")
	f.BoolVar(&flags.dummy, "dummy", false, "simulate uploads without sending anything")
	f.BoolVar(&flags.batch, "batch", false, "force plain line-oriented progress output")
	f.IntVar(&flags.outputWidth, "output-width", 0, "width of redrawn progress lines in interactive mode")

	return c, &flags
}

// buildPublishOptions converts the flag storage into the options bag.
// Optional fields are filled only for flags the user actually passed.
func buildPublishOptions(cmd *cobra.Command, flags *publishFlags) options.PublishOptions {
	changed := cmd.Flags().Changed

	optStr := func(name, value string) types.Optional[string] {
		if changed(name) {
			return types.Some(value)
		}
		return types.None[string]()
	}

	opts := options.PublishOptions{
		Repository: options.RepositoryOptions{
			Repository: optStr("repository", flags.repository),
			Auth:       optStr("auth", flags.auth),
		},
		Metadata: options.MetadataOptions{
			Organization: optStr("organization", flags.organization),
			Name:         optStr("name", flags.name),
			Version:      optStr("version", flags.version),
			HomePage:     optStr("home-page", flags.homePage),
			Licenses:     flags.licenses,
			Developers:   flags.developers,
		},
		SinglePackage: options.SinglePackageOptions{
			Pom:      optStr("pom", flags.pom),
			Artifact: optStr("artifact", flags.artifact),
		},
		Directory: options.DirectoryOptions{
			Directories:    flags.directories,
			SbtDirectories: flags.sbtDirectories,
		},
		Checksum: options.ChecksumOptions{
			Checksums: optStr("checksum", flags.checksums),
		},
		Signature: options.SignatureOptions{
			Gpg:    flags.gpg,
			GpgKey: optStr("gpg-key", flags.gpgKey),
		},
		Cache: options.CacheOptions{
			Cache: optStr("cache", flags.cache),
			TTL:   optStr("cache-ttl", flags.cacheTTL),
		},
		ConfFile: optStr("conf", flags.conf),
		Quiet:    flags.quiet,
		Verbose:  flags.verbose,
		Dummy:    flags.dummy,
	}

	if changed("batch") {
		opts.Batch = types.Some(flags.batch)
	}
	if changed("output-width") {
		opts.OutputFrameWidth = types.Some(flags.outputWidth)
	}

	return opts
}

func runPublish(cmd *cobra.Command, flags *publishFlags) error {
	workdir, err := os.Getwd()
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("cannot determine working directory: %w", err)}
	}

	opts := buildPublishOptions(cmd, flags)

	p, errs := params.Assemble(opts, workdir)
	if len(errs) > 0 {
		verboseErrors := flags.verbose > 0
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("error: ")+formatErrorForDisplay(e, verboseErrors))
		}
		if rendered, err := issue.Get(resolutionIssueID(errs)).Render("dark"); err == nil {
			fmt.Fprintln(os.Stderr, rendered)
		}
		return &ExitError{Code: 1, Err: &params.InvalidPublishParamsError{FieldErrors: errs}}
	}

	if p.Verbosity >= 0 {
		for _, w := range mode.Warnings(p) {
			fmt.Fprintln(os.Stderr, WarningStyle.Render("warning: ")+w)
		}
	}

	diag := newDiagnosticLogger(p.Verbosity)
	diag.Debug("resolved publish parameters",
		"repository", p.Repository.URL,
		"sonatype", p.Repository.Sonatype,
		"checksums", p.Checksum.Types,
		"dummy", p.Dummy,
	)

	files, err := collectFiles(p)
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("error: ")+formatErrorForDisplay(err, flags.verbose > 0))
		return &ExitError{Code: 1, Err: err}
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("warning: ")+"nothing to publish (pass --pom or --dir, or run inside a project)")
		return nil
	}

	uploader := newUploader(p, diag)
	progress := newProgressLogger(p)
	sgn := signer.New(mode.SelectSigner(p.Signature))

	if err := runPipeline(cmd.Context(), p, files, uploader, sgn, progress, diag); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("error: ")+formatErrorForDisplay(err, flags.verbose > 0))
		return &ExitError{Code: 1, Err: err}
	}

	if p.Verbosity >= 0 {
		fmt.Fprintln(os.Stderr, SuccessStyle.Render(fmt.Sprintf("published %d file(s)", len(files))))
	}
	return nil
}

// resolutionIssueID picks the issue card to render under a failed
// resolution. Config problems get their dedicated cards; everything else
// is the generic invalid-parameters card.
func resolutionIssueID(errs []error) issue.Id {
	if len(errs) == 1 {
		var ve *cueutil.ValidationError
		switch {
		case errors.Is(errs[0], conf.ErrFileNotFound):
			return issue.ConfFileNotFoundId
		case errors.Is(errs[0], conf.ErrNotAFile):
			return issue.ConfNotAFileId
		case errors.As(errs[0], &ve):
			return issue.ConfParseErrorId
		}
	}
	return issue.InvalidParamsId
}

// newDiagnosticLogger builds the stderr diagnostics logger, leveled by the
// resolved verbosity: -1 errors only, 0 warnings, 1 info, 2+ debug.
func newDiagnosticLogger(verbosity int) *log.Logger {
	l := log.New(os.Stderr)
	switch {
	case verbosity < 0:
		l.SetLevel(log.ErrorLevel)
	case verbosity == 0:
		l.SetLevel(log.WarnLevel)
	case verbosity == 1:
		l.SetLevel(log.InfoLevel)
	default:
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// newUploader picks the dummy or HTTP uploader from the resolved parameters.
func newUploader(p *params.PublishParams, diag *log.Logger) upload.Uploader {
	if p.Dummy {
		return upload.NewDummyUploader(diag)
	}
	return upload.NewHTTPUploader(p.Repository.URL,
		upload.WithCredentials(p.Repository.Credentials),
	)
}

// newProgressLogger picks the progress logger family. Quiet runs discard
// progress entirely; failures still surface through the pipeline error.
func newProgressLogger(p *params.PublishParams) logger.ProgressLogger {
	var out io.Writer = os.Stderr
	if p.Verbosity < 0 {
		out = io.Discard
	}
	kind := mode.SelectLogger(p.Batch)
	return logger.New(kind, out, p.OutputFrameWidth.GetOr(0))
}
