// Package cashflow derives per-account and portfolio-wide cash-flow
// diagnostics from a profile snapshot. Everything here is a pure
// function of its inputs; nothing is cached between calls.
package cashflow

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/freedomd-dev/freedomd/internal/frequency"
	"github.com/freedomd-dev/freedomd/internal/model"
)

// AccountStatus classifies a single account's cash-flow health.
type AccountStatus string

const (
	StatusHealthy AccountStatus = "healthy"
	StatusTight   AccountStatus = "tight"
	StatusDeficit AccountStatus = "deficit"
)

// AccountAnalysis is the derived cash-flow picture for one account.
// DaysOfRunway is meaningless when RunwayInfinite is set.
type AccountAnalysis struct {
	AccountID           string          `json:"accountId"`
	AccountName         string          `json:"accountName"`
	MonthlyIncome       decimal.Decimal `json:"monthlyIncome"`
	MonthlyObligations  decimal.Decimal `json:"monthlyObligations"`
	MonthlyDebtPayments decimal.Decimal `json:"monthlyDebtPayments"`
	MonthlyNet          decimal.Decimal `json:"monthlyNet"`
	Balance             decimal.Decimal `json:"balance"`
	DaysOfRunway        int64           `json:"daysOfRunway"`
	RunwayInfinite      bool            `json:"runwayInfinite"`
	Status              AccountStatus   `json:"status"`
	Warnings            []string        `json:"warnings"`
}

var daysPerMonth = decimal.NewFromInt(30)

// AnalyzeAccount computes the cash-flow picture for a single account
// against the full record set. Only income sources and obligations
// linked to the account count; unassigned obligations are handled at
// the aggregate level instead.
func AnalyzeAccount(acct model.Account, incomes []model.IncomeSource, obligations []model.Obligation, debts []model.Debt) AccountAnalysis {
	balance := acct.BalanceOrZero()

	income := decimal.Zero
	for _, src := range incomes {
		if src.AccountID == acct.ID {
			income = income.Add(frequency.ToMonthly(src.Amount, src.Frequency))
		}
	}

	monthlyObligations := decimal.Zero
	for _, o := range obligations {
		if o.AccountID == acct.ID {
			monthlyObligations = monthlyObligations.Add(o.Amount)
		}
	}

	// Debts carry no account link in the data model, so per-account
	// debt service is always zero; aggregate analysis sums it instead.
	debtPayments := decimal.Zero

	net := income.Sub(monthlyObligations).Sub(debtPayments)

	analysis := AccountAnalysis{
		AccountID:           acct.ID,
		AccountName:         acct.Name,
		MonthlyIncome:       income,
		MonthlyObligations:  monthlyObligations,
		MonthlyDebtPayments: debtPayments,
		MonthlyNet:          net,
		Balance:             balance,
	}

	dailyBurn := monthlyObligations.Add(debtPayments).Div(daysPerMonth)
	if dailyBurn.IsPositive() {
		days := balance.Div(dailyBurn).Floor().IntPart()
		if days < 0 {
			days = 0
		}
		analysis.DaysOfRunway = days
	} else {
		analysis.RunwayInfinite = true
	}

	analysis.Status, analysis.Warnings = classifyAccount(analysis)
	return analysis
}

// classifyAccount applies the status branches in a fixed precedence
// order. The order matters: a deficit or tight account returns before
// the positive savings note is considered, so that note only ever
// accompanies a healthy status.
func classifyAccount(a AccountAnalysis) (AccountStatus, []string) {
	hasIncome := a.MonthlyIncome.IsPositive()

	if hasIncome && a.MonthlyIncome.LessThan(a.MonthlyObligations) {
		shortfall := a.MonthlyObligations.Sub(a.MonthlyIncome)
		return StatusDeficit, []string{
			fmt.Sprintf("Spending exceeds income by $%s/mo on %s", shortfall.StringFixed(2), a.AccountName),
		}
	}

	if hasIncome && !a.RunwayInfinite && a.DaysOfRunway < 30 {
		return StatusTight, []string{
			fmt.Sprintf("Only %d days of runway left in %s", a.DaysOfRunway, a.AccountName),
		}
	}

	if hasIncome && !a.RunwayInfinite && a.DaysOfRunway < 90 {
		return StatusTight, []string{
			fmt.Sprintf("%s holds %d days of expenses; aim for 90", a.AccountName, a.DaysOfRunway),
		}
	}

	var warnings []string
	if a.MonthlyNet.IsPositive() && (a.RunwayInfinite || a.DaysOfRunway >= 90) {
		warnings = append(warnings, fmt.Sprintf("Saving $%s/mo on %s", a.MonthlyNet.StringFixed(2), a.AccountName))
	}
	return StatusHealthy, warnings
}
