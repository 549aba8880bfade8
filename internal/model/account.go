package model

import "github.com/shopspring/decimal"

// AccountKind classifies bank and brokerage accounts.
type AccountKind string

const (
	AccountChecking   AccountKind = "checking"
	AccountSavings    AccountKind = "savings"
	AccountInvestment AccountKind = "investment"
)

// Account represents one bank or brokerage account in the profile.
// Balance is nullable: snapshots written by older versions may lack it,
// and analysis treats a missing balance as zero.
type Account struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Institution string              `json:"institution,omitempty"`
	Kind        AccountKind         `json:"kind"`
	Balance     decimal.NullDecimal `json:"balance"`
}

// BalanceOrZero returns the account balance, or zero when the balance
// is missing from the snapshot.
func (a Account) BalanceOrZero() decimal.Decimal {
	if !a.Balance.Valid {
		return decimal.Zero
	}
	return a.Balance.Decimal
}
