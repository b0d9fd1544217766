// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for cs.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/przemek-pokrywka/coursier/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "cs",
		Short: "Publish packages to Maven repositories",
		Long: TitleStyle.Render("cs") + SubtitleStyle.Render(" - Publish packages to Maven repositories") + `

cs publishes Maven artifacts (POMs, JARs, and whole local repository
directories) to remote repositories such as Sonatype OSSRH, with
checksum sidecars and optional gpg signatures.

Project metadata can be supplied via flags or via a publish.json file
discovered next to your build.

` + SubtitleStyle.Render("Examples:") + `
  cs publish --pom pom.xml --artifact out/lib.jar
  cs publish --dir target/repository --repository https://repo.example.com
  cs publish --dummy -v`,
	}
)

func init() {
	rootCmd.AddCommand(publishCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
