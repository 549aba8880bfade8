package model

import "github.com/shopspring/decimal"

// Debt is an outstanding loan or credit balance. InterestRate is
// stored as a decimal fraction (0.24 = 24% APR), but imported records
// sometimes carry whole-number percentages; Rate normalizes those.
type Debt struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Principal      decimal.Decimal `json:"principal"`
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
	InterestRate   decimal.Decimal `json:"interestRate"`
}

var one = decimal.NewFromInt(1)

// Rate returns the interest rate as a fraction. A stored value above 1
// is taken to be a whole-number percentage and divided by 100.
func (d Debt) Rate() decimal.Decimal {
	if d.InterestRate.GreaterThan(one) {
		return d.InterestRate.Div(decimal.NewFromInt(100))
	}
	return d.InterestRate
}
