// Package main provides the entry point for the gardener CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/gardener/cmd/gardener/commands"
	"github.com/Sumatoshi-tech/gardener/pkg/version"
)

func main() {
	opts := &commands.Options{}

	rootCmd := &cobra.Command{
		Use:   "gardener",
		Short: "Gardener - contribution calendar history synthesizer",
		Long: `Gardener builds a git history matching a per-day contribution calendar,
spreads commits across languages at byte-compensated ratios, and publishes
the result to GitHub.

Commands:
  generate  Build the local repository from a calendar
  push      Generate and publish to GitHub in one run
  languages List supported languages and predict statistics
  repos     List repositories of the authenticated user
  branches  List branches of a repository`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default: .gardener.yaml in CWD or $HOME)")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress output")
	rootCmd.PersistentFlags().StringVar(&opts.LogDir, "log-dir", "", "also write a dated JSON log file into this directory")

	// Add commands.
	rootCmd.AddCommand(commands.NewGenerateCommand(opts))
	rootCmd.AddCommand(commands.NewPushCommand(opts))
	rootCmd.AddCommand(commands.NewLanguagesCommand())
	rootCmd.AddCommand(commands.NewReposCommand(opts))
	rootCmd.AddCommand(commands.NewBranchesCommand(opts))
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
