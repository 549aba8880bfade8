package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/freedomd-dev/freedomd/internal/cashflow"
	"github.com/freedomd-dev/freedomd/internal/model"
	"github.com/freedomd-dev/freedomd/internal/runlog"
	"github.com/freedomd-dev/freedomd/internal/store"
)

func newAnalyzeCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Show the cash-flow picture across all accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(*dir)
			if err != nil {
				return err
			}

			overall := cashflow.AnalyzeAll(p)
			printOverall(overall)
			printDebts(p.Debts)

			return runlog.Append(*dir, runlog.Entry{
				Timestamp: time.Now(),
				Command:   "analyze",
				Health:    string(overall.Health),
				Details:   fmt.Sprintf("%d account(s)", len(overall.Accounts)),
			})
		},
	}
}

func printOverall(o cashflow.Overall) {
	fmt.Printf("Health: %s — %s\n\n", o.Health, o.HealthMessage)

	fmt.Printf("Monthly income:       $%s\n", o.TotalMonthlyIncome.StringFixed(2))
	fmt.Printf("Monthly obligations:  $%s\n", o.TotalMonthlyObligations.StringFixed(2))
	fmt.Printf("Monthly debt service: $%s\n", o.TotalMonthlyDebtPayments.StringFixed(2))
	fmt.Printf("Monthly net:          $%s\n", o.TotalMonthlyNet.StringFixed(2))
	fmt.Printf("Bank balances:        $%s\n", o.TotalBankBalance.StringFixed(2))
	fmt.Printf("Liquid assets:        $%s\n", o.LiquidAssets.StringFixed(2))
	if o.RetirementContributions.IsPositive() {
		fmt.Printf("Retirement (pre-tax): $%s + $%s match\n",
			o.RetirementContributions.StringFixed(2), o.EmployerMatch.StringFixed(2))
	}

	fmt.Println("\nAccounts:")
	for _, a := range o.Accounts {
		runway := fmt.Sprintf("%d days", a.DaysOfRunway)
		if a.RunwayInfinite {
			runway = "unlimited"
		}
		fmt.Printf("  %-20s %-8s net $%s/mo, runway %s\n",
			a.AccountName, a.Status, a.MonthlyNet.StringFixed(2), runway)
		for _, w := range a.Warnings {
			fmt.Printf("    - %s\n", w)
		}
	}

	if len(o.Recommendations) > 0 {
		fmt.Println("\nRecommendations:")
		for _, r := range o.Recommendations {
			fmt.Printf("  - %s\n", r)
		}
	}
}

func printDebts(debts []model.Debt) {
	if len(debts) == 0 {
		return
	}
	fmt.Println("\nDebts:")
	for _, d := range debts {
		rate := d.Rate().Mul(decimal.NewFromInt(100))
		fmt.Printf("  %-20s $%s principal at %s%%, $%s/mo\n",
			d.Name, d.Principal.StringFixed(2), rate.StringFixed(1), d.MonthlyPayment.StringFixed(2))
	}
}
