// Package id generates identifiers for profile records, like
// "acct-1f2e3d4c". The kind prefix keeps references readable in the
// profile file and in warnings.
package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Record kinds used as ID prefixes.
const (
	KindAccount    = "acct"
	KindIncome     = "inc"
	KindObligation = "obl"
	KindDebt       = "debt"
	KindAsset      = "asset"
	KindDeduction  = "ded"
	KindDesire     = "want"
)

// New returns a fresh record ID with the given kind prefix.
func New(kind string) string {
	return kind + "-" + uuid.NewString()[:8]
}

// Kind returns the kind prefix of a record ID.
func Kind(recordID string) (string, error) {
	prefix, _, ok := strings.Cut(recordID, "-")
	if !ok || prefix == "" {
		return "", fmt.Errorf("invalid record ID %q", recordID)
	}
	return prefix, nil
}
