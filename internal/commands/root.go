// Package commands wires the freedomd CLI. Commands load the profile
// snapshot from the project directory, run the pure analysis functions
// over it, and render the results; nothing here computes on its own.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/freedomd-dev/freedomd/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dir string

	rootCmd := &cobra.Command{
		Use:     "freedomd",
		Short:   "Personal cash-flow and freedom analysis",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dir, "dir", ".", "profile directory")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAnalyzeCommand(&dir))
	rootCmd.AddCommand(newFreedomCommand(&dir))
	rootCmd.AddCommand(newPaycheckCommand(&dir))
	rootCmd.AddCommand(newImportCommand(&dir))
	rootCmd.AddCommand(newServeCommand(&dir))

	return rootCmd
}
