package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/freedomd-dev/freedomd/internal/config"
	"github.com/freedomd-dev/freedomd/internal/gitops"
	"github.com/freedomd-dev/freedomd/internal/importer"
	"github.com/freedomd-dev/freedomd/internal/runlog"
	"github.com/freedomd-dev/freedomd/internal/store"
)

func newImportCommand(dir *string) *cobra.Command {
	var accountID string
	var format string

	cmd := &cobra.Command{
		Use:   "import <statement.csv>",
		Short: "Sync an account balance from a bank statement export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(*dir, accountID, format, args[0])
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "account ID to sync (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&format, "format", "chase", "statement format")

	return cmd
}

func runImport(dir, accountID, format, path string) error {
	parser := importer.DefaultRegistry().Get(format)
	if parser == nil {
		return fmt.Errorf("unknown statement format %q", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	txns, err := parser.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing statement: %w", err)
	}
	balance, err := importer.LatestBalance(txns)
	if err != nil {
		return err
	}

	p, err := store.Load(dir)
	if err != nil {
		return err
	}

	updated := false
	for i, a := range p.Accounts {
		if a.ID == accountID {
			p.Accounts[i].Balance = decimal.NewNullDecimal(balance)
			updated = true
			break
		}
	}
	if !updated {
		return fmt.Errorf("unknown account %q", accountID)
	}

	if err := store.Save(dir, p); err != nil {
		return err
	}

	if cfg, err := config.Load(filepath.Join(dir, "freedomd.yaml")); err == nil && cfg.Git.AutoCommit && gitops.IsRepo(dir) {
		msg := fmt.Sprintf("import: sync %s balance to %s", accountID, balance.StringFixed(2))
		if _, err := gitops.AutoCommit(dir, msg, gitops.Author{
			Name:  cfg.Git.AuthorName,
			Email: cfg.Git.AuthorEmail,
		}); err != nil {
			return fmt.Errorf("auto-commit: %w", err)
		}
	}

	fmt.Printf("Synced %s balance to $%s from %d transaction(s)\n",
		accountID, balance.StringFixed(2), len(txns))

	return runlog.Append(dir, runlog.Entry{
		Timestamp: time.Now(),
		Command:   "import",
		Details:   fmt.Sprintf("%s -> %s", filepath.Base(path), accountID),
	})
}
