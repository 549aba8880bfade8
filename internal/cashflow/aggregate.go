package cashflow

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/freedomd-dev/freedomd/internal/model"
	"github.com/freedomd-dev/freedomd/internal/paycheck"
)

// HealthStatus classifies the overall portfolio.
type HealthStatus string

const (
	HealthCritical   HealthStatus = "critical"
	HealthStruggling HealthStatus = "struggling"
	HealthStable     HealthStatus = "stable"
	HealthBuilding   HealthStatus = "building"
	HealthThriving   HealthStatus = "thriving"
)

// Overall is the portfolio-wide cash-flow picture.
type Overall struct {
	TotalMonthlyIncome       decimal.Decimal    `json:"totalMonthlyIncome"`
	TotalMonthlyObligations  decimal.Decimal    `json:"totalMonthlyObligations"`
	TotalMonthlyDebtPayments decimal.Decimal    `json:"totalMonthlyDebtPayments"`
	TotalMonthlyNet          decimal.Decimal    `json:"totalMonthlyNet"`
	TotalBankBalance         decimal.Decimal    `json:"totalBankBalance"`
	LiquidAssets             decimal.Decimal    `json:"liquidAssets"`
	TotalDailyLiving         decimal.Decimal    `json:"totalDailyLiving"`
	RetirementContributions  decimal.Decimal    `json:"retirementContributions"`
	EmployerMatch            decimal.Decimal    `json:"employerMatch"`
	UnassignedObligations    []model.Obligation `json:"unassignedObligations"`
	Accounts                 []AccountAnalysis  `json:"accounts"`
	Health                   HealthStatus       `json:"health"`
	HealthMessage            string             `json:"healthMessage"`
	Recommendations          []string           `json:"recommendations"`
}

var monthsStable = decimal.NewFromInt(3)
var monthsBuilding = decimal.NewFromInt(6)
var strugglingNet = decimal.NewFromInt(500)

// AnalyzeAll runs the per-account analyzer for every account and
// derives the aggregate picture on top: portfolio totals, the broad
// liquidity figure (bank balances plus every non-retirement asset),
// retirement contributions, health classification and ranked
// recommendations.
func AnalyzeAll(p model.Profile) Overall {
	overall := Overall{
		TotalMonthlyIncome:       decimal.Zero,
		TotalMonthlyObligations:  decimal.Zero,
		TotalMonthlyDebtPayments: decimal.Zero,
		TotalBankBalance:         decimal.Zero,
		TotalDailyLiving:         decimal.Zero,
	}

	for _, acct := range p.Accounts {
		a := AnalyzeAccount(acct, p.IncomeSources, p.Obligations, p.Debts)
		overall.Accounts = append(overall.Accounts, a)
		overall.TotalMonthlyIncome = overall.TotalMonthlyIncome.Add(a.MonthlyIncome)
		overall.TotalMonthlyObligations = overall.TotalMonthlyObligations.Add(a.MonthlyObligations)
		overall.TotalBankBalance = overall.TotalBankBalance.Add(a.Balance)
	}

	// Unlike the per-account view, aggregate debt service is real:
	// every debt's monthly payment counts here.
	for _, d := range p.Debts {
		overall.TotalMonthlyDebtPayments = overall.TotalMonthlyDebtPayments.Add(d.MonthlyPayment)
	}

	overall.TotalMonthlyNet = overall.TotalMonthlyIncome.
		Sub(overall.TotalMonthlyObligations).
		Sub(overall.TotalMonthlyDebtPayments)

	// Broad liquidity: bank balances plus every asset that is not a
	// retirement account. Deliberately wider than the freedom score's
	// sellable-asset definition; keep the two separate.
	overall.LiquidAssets = overall.TotalBankBalance
	for _, a := range p.Assets {
		if a.Category != model.AssetRetirement {
			overall.LiquidAssets = overall.LiquidAssets.Add(a.Value)
		}
	}

	for _, o := range p.Obligations {
		if o.Category == model.ObligationDailyLiving {
			overall.TotalDailyLiving = overall.TotalDailyLiving.Add(o.Amount)
		}
		if !o.Assigned() {
			overall.UnassignedObligations = append(overall.UnassignedObligations, o)
		}
	}

	contribution, match := paycheck.MonthlyRetirement(p.Assets)
	overall.RetirementContributions = contribution.Add(paycheck.MonthlyFlatDeductions(p.FlatDeductions))
	overall.EmployerMatch = match

	classifyOverall(&overall, len(p.IncomeSources) > 0)

	if n := len(overall.UnassignedObligations); n > 0 {
		warning := fmt.Sprintf("%d obligation(s) are not linked to any account; assign them so account runway is accurate", n)
		overall.Recommendations = append([]string{warning}, overall.Recommendations...)
	}

	return overall
}

// classifyOverall assigns health, message and recommendations. The
// branches run top to bottom and the first match wins.
func classifyOverall(o *Overall, anyIncomeRecorded bool) {
	switch {
	case o.TotalMonthlyIncome.IsZero():
		o.Health = HealthCritical
		if anyIncomeRecorded {
			o.HealthMessage = "Income exists but is not linked to any account"
			o.Recommendations = append(o.Recommendations,
				"Link each income source to the account it pays into")
		} else {
			o.HealthMessage = "No income recorded"
			o.Recommendations = append(o.Recommendations,
				"Add your income sources to see a real cash-flow picture")
		}
	case o.TotalMonthlyNet.IsNegative():
		o.Health = HealthCritical
		o.HealthMessage = fmt.Sprintf("Spending $%s/mo more than you earn", o.TotalMonthlyNet.Neg().StringFixed(2))
		o.Recommendations = append(o.Recommendations,
			"Cut obligations or raise income; every month at this rate drains your accounts",
			"Review your largest obligations first")
	case o.TotalMonthlyNet.LessThan(strugglingNet):
		o.Health = HealthStruggling
		o.HealthMessage = fmt.Sprintf("Only $%s/mo left after obligations and debt", o.TotalMonthlyNet.StringFixed(2))
		o.Recommendations = append(o.Recommendations,
			"Build a buffer: aim for at least $500/mo of surplus",
			"Look for one obligation to cancel or renegotiate")
	default:
		months := runwayMonths(o.LiquidAssets, o.TotalMonthlyObligations.Add(o.TotalMonthlyDebtPayments))
		switch {
		case months != nil && months.LessThan(monthsStable):
			o.Health = HealthStable
			o.HealthMessage = "Positive cash flow, thin reserves"
			o.Recommendations = append(o.Recommendations,
				"Grow liquid savings to cover 3 months of spending")
		case months != nil && months.LessThan(monthsBuilding):
			o.Health = HealthBuilding
			o.HealthMessage = "Positive cash flow with a growing cushion"
			o.Recommendations = append(o.Recommendations,
				"Push reserves past 6 months, then direct surplus to income-producing assets")
		default:
			o.Health = HealthThriving
			o.HealthMessage = "Strong surplus and deep reserves"
			o.Recommendations = append(o.Recommendations,
				"Put surplus cash to work: income-producing assets move your freedom date closer")
		}
	}
}

// runwayMonths returns liquid/outflow, or nil when there is no outflow
// (infinite runway).
func runwayMonths(liquid, monthlyOutflow decimal.Decimal) *decimal.Decimal {
	if !monthlyOutflow.IsPositive() {
		return nil
	}
	m := liquid.Div(monthlyOutflow)
	return &m
}
