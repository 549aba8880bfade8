package model

import "github.com/shopspring/decimal"

// IncomeCategory classifies an income source.
type IncomeCategory string

const (
	IncomeSalary    IncomeCategory = "salary"
	IncomeFreelance IncomeCategory = "freelance"
	IncomeBusiness  IncomeCategory = "business"
	IncomeTrading   IncomeCategory = "trading"
	IncomeOther     IncomeCategory = "other"
)

// PayFrequency is how often a periodic amount is paid. The frequency
// package owns the conversion table to monthly/annual equivalents.
type PayFrequency string

const (
	Weekly       PayFrequency = "weekly"
	Biweekly     PayFrequency = "biweekly"
	TwiceMonthly PayFrequency = "twice_monthly"
	Monthly      PayFrequency = "monthly"
	Quarterly    PayFrequency = "quarterly"
)

// IncomeSource is one recurring source of net pay. Amount is the
// per-payment amount, not a monthly figure. AccountID links the
// deposits to an account; empty means the income is not linked
// anywhere and will not count toward any account's cash flow.
type IncomeSource struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  IncomeCategory  `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Frequency PayFrequency    `json:"frequency"`
	AccountID string          `json:"accountId,omitempty"`

	// Day-of-month anchors, only meaningful for twice_monthly.
	FirstPayDay  int `json:"firstPayDay,omitempty"`
	SecondPayDay int `json:"secondPayDay,omitempty"`
}
