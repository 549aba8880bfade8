package paycheck

import (
	"github.com/shopspring/decimal"

	"github.com/freedomd-dev/freedomd/internal/frequency"
	"github.com/freedomd-dev/freedomd/internal/model"
)

// MonthlyRetirement sums pre-tax retirement contributions and employer
// match across retirement assets, normalized to monthly. These are
// paycheck reductions, not obligations, and never touch an account
// balance.
func MonthlyRetirement(assets []model.Asset) (contribution, match decimal.Decimal) {
	contribution = decimal.Zero
	match = decimal.Zero
	for _, a := range assets {
		if a.Category != model.AssetRetirement || a.Retirement == nil {
			continue
		}
		monthly := frequency.ToMonthly(a.Retirement.Contribution, a.Retirement.Frequency)
		contribution = contribution.Add(monthly)
		if a.Retirement.MatchPercent.Valid {
			match = match.Add(monthly.Mul(a.Retirement.MatchPercent.Decimal))
		}
	}
	return contribution, match
}

// MonthlyFlatDeductions sums the deprecated flat paycheck deductions,
// normalized to monthly. Only the legacy waterfall mode uses them.
func MonthlyFlatDeductions(deductions []model.FlatDeduction) decimal.Decimal {
	total := decimal.Zero
	for _, d := range deductions {
		total = total.Add(frequency.ToMonthly(d.Amount, d.Frequency))
	}
	return total
}
