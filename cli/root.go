// SPDX-License-Identifier: MIT
// Package: slitpore/cli
//
// root.go — root command, global flags and Execute.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	logLevel  string
	logFormat string
}

// NewRootCommand returns the slitpore command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "slitpore",
		Short:         "Build periodic slit-pore structures",
		Long:          "slitpore replicates a layered lattice into two facing sheets separated by a\nslit, optionally decorates the inner surfaces and packs solvent into the box.",
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	pf.StringVar(&opts.logFormat, "log-format", "", "log format override (console, json)")

	cmd.AddCommand(newBuildCommand(opts), newVersionCommand())
	return cmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "slitpore %s\n", versionString())
			return err
		},
	}
}
