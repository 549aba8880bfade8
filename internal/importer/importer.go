// Package importer parses bank statement exports so an account balance
// can be synced from the most recent row instead of typed in by hand.
package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/freedomd-dev/freedomd/internal/model"
)

// Parser converts a bank CSV export into BankTransactions.
type Parser interface {
	Parse(r io.Reader) ([]model.BankTransaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	return r
}

// LatestBalance returns the running balance of the most recent
// transaction that carries one. Statement exports list rows newest
// first or oldest first depending on the bank, so order by date.
func LatestBalance(txns []model.BankTransaction) (decimal.Decimal, error) {
	var (
		found   bool
		latest  model.BankTransaction
		balance decimal.Decimal
	)
	for _, t := range txns {
		if !t.Balance.Valid {
			continue
		}
		if !found || t.Date.After(latest.Date) {
			found = true
			latest = t
			balance = t.Balance.Decimal
		}
	}
	if !found {
		return decimal.Decimal{}, fmt.Errorf("no transaction carries a running balance")
	}
	return balance, nil
}
