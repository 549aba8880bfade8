package model

import "github.com/shopspring/decimal"

// PreTaxDeduction is a paycheck deduction taken before tax
// (401k, HSA, commuter benefits, ...).
type PreTaxDeduction struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Frequency PayFrequency    `json:"frequency"`
}

// Tax is a per-paycheck tax withholding line.
type Tax struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Frequency PayFrequency    `json:"frequency"`
}

// PostTaxDeduction is a paycheck deduction taken after tax
// (Roth contributions, garnishments, ...).
type PostTaxDeduction struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Frequency PayFrequency    `json:"frequency"`
}

// FlatDeduction is the deprecated flat "paycheck deduction" record
// kept for profiles that predate the structured waterfall. It only
// feeds the legacy gross-pay estimate.
type FlatDeduction struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Frequency PayFrequency    `json:"frequency"`
}
