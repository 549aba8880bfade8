package model

import "github.com/shopspring/decimal"

// Obligation category tags. Only daily_living carries special meaning
// in analysis (it feeds the daily-living allowance total); the rest are
// display groupings.
const (
	ObligationDailyLiving  = "daily_living"
	ObligationHousing      = "housing"
	ObligationUtilities    = "utilities"
	ObligationInsurance    = "insurance"
	ObligationSubscription = "subscription"
	ObligationOtherTag     = "other"
)

// Obligation is a recurring monthly expense. Amount is already a
// monthly figure. AccountID links the obligation to the account that
// pays it; empty means unassigned, which is surfaced as a warning in
// aggregate analysis rather than silently attributed to an account.
type Obligation struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category,omitempty"`
	AccountID string          `json:"accountId,omitempty"`
	Recurring bool            `json:"recurring"`
}

// Assigned reports whether the obligation is linked to an account.
func (o Obligation) Assigned() bool {
	return o.AccountID != ""
}
