// Package cli implements the rowreduce command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rowreduce/config"
)

// Version is the build version, overridden with -ldflags "-X".
var Version = "0.1.0-dev"

// RootOptions holds global flags for all commands.
// Empty strings mean "use the configured value".
type RootOptions struct {
	ConfigPath string
	Format     string // "text" | "yaml"
	LogLevel   string // "info" | "debug" | "trace"
}

// NewRootCommand creates the root command for the rowreduce CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "rowreduce",
		Short: "rowreduce - step-by-step linear system solver",
		Long: `rowreduce solves systems of linear equations given as an augmented matrix [A | b].

It narrates every row operation of Gaussian elimination (REF with
back-substitution) or Gauss-Jordan elimination (RREF) and classifies the
system as having a unique, no, or infinitely many solutions.`,
		SilenceUsage:  true,
		SilenceErrors: true, // main prints errors
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag; empty defers to config
			if opts.Format != "" && !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, config.ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.rowreduce/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "", "output format (text|yaml)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (info|debug|trace)")

	// Add subcommands
	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rowreduce version %s\n", Version)
		},
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range config.ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
