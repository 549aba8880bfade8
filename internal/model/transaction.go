package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction is a parsed bank CSV row, used by the importer to
// sync an account balance from a statement export.
type BankTransaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = outflow, positive = inflow
	Balance     decimal.NullDecimal
	Type        string // bank transaction type (ACH_DEBIT, etc.)
}
