// Package frequency converts periodic amounts between pay frequencies
// and monthly/annual equivalents. Every aggregation in the analysis
// engine goes through this one conversion table.
package frequency

import (
	"github.com/shopspring/decimal"

	"github.com/freedomd-dev/freedomd/internal/model"
)

var (
	twelve     = decimal.NewFromInt(12)
	fiftyTwo   = decimal.NewFromInt(52)
	twentySix  = decimal.NewFromInt(26)
	twentyFour = decimal.NewFromInt(24)
	two        = decimal.NewFromInt(2)
	three      = decimal.NewFromInt(3)
	four       = decimal.NewFromInt(4)
)

// ToMonthly converts a per-payment amount to its monthly equivalent.
// An unrecognized frequency is treated as already monthly: this runs
// inside aggregation loops where a single malformed record must not
// abort analysis of the whole portfolio.
func ToMonthly(amount decimal.Decimal, freq model.PayFrequency) decimal.Decimal {
	switch freq {
	case model.Weekly:
		return amount.Mul(fiftyTwo).Div(twelve)
	case model.Biweekly:
		return amount.Mul(twentySix).Div(twelve)
	case model.TwiceMonthly:
		return amount.Mul(two)
	case model.Monthly:
		return amount
	case model.Quarterly:
		return amount.Div(three)
	default:
		return amount
	}
}

// ToAnnual converts a per-payment amount to its annual equivalent.
func ToAnnual(amount decimal.Decimal, freq model.PayFrequency) decimal.Decimal {
	switch freq {
	case model.Weekly:
		return amount.Mul(fiftyTwo)
	case model.Biweekly:
		return amount.Mul(twentySix)
	case model.TwiceMonthly:
		return amount.Mul(twentyFour)
	case model.Monthly:
		return amount.Mul(twelve)
	case model.Quarterly:
		return amount.Mul(four)
	default:
		return amount.Mul(twelve)
	}
}
