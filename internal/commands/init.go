package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/freedomd-dev/freedomd/internal/config"
	"github.com/freedomd-dev/freedomd/internal/gitops"
	"github.com/freedomd-dev/freedomd/internal/store"
)

func newInitCommand() *cobra.Command {
	var owner string
	var noGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new freedomd project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, owner, noGit)
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "owner name (required)")
	_ = cmd.MarkFlagRequired("owner")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "skip git initialization")

	return cmd
}

func runInit(dir, owner string, noGit bool) error {
	for _, d := range []string{"logs", "import", filepath.Join("import", "processed")} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if store.Exists(dir) {
		return fmt.Errorf("profile already exists in %s", dir)
	}

	cfg := config.Default(owner)
	if noGit {
		cfg.Git.AutoCommit = false
	}
	if err := config.Save(filepath.Join(dir, "freedomd.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if err := store.Save(dir, store.Default(owner)); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}

	gitignore := "logs/\nimport/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if noGit || !cfg.Git.AutoCommit {
		fmt.Printf("Initialized freedomd project at %s\n", dir)
		return nil
	}

	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	hash, err := gitops.AutoCommit(dir, "init: "+owner, gitops.Author{
		Name:  cfg.Git.AuthorName,
		Email: cfg.Git.AuthorEmail,
	})
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Printf("Initialized freedomd project at %s (%s)\n", dir, hash)
	return nil
}
