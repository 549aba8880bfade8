package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/freedomd-dev/freedomd/internal/paycheck"
	"github.com/freedomd-dev/freedomd/internal/store"
)

func newPaycheckCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "paycheck [income-source-id]",
		Short: "Show the gross-to-net deduction waterfall for an income source",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(*dir)
			if err != nil {
				return err
			}
			if len(p.IncomeSources) == 0 {
				return fmt.Errorf("no income sources in profile")
			}

			src := p.IncomeSources[0]
			if len(args) > 0 {
				var ok bool
				src, ok = p.IncomeSource(args[0])
				if !ok {
					return fmt.Errorf("unknown income source %q", args[0])
				}
			}

			w := paycheck.Calculate(src, p)
			printWaterfall(src.Name, w)
			return nil
		},
	}
}

func printWaterfall(name string, w paycheck.Waterfall) {
	fmt.Printf("Paycheck waterfall: %s (monthly)\n\n", name)
	fmt.Printf("Gross pay:        $%s\n", w.Gross.StringFixed(2))
	fmt.Printf("  Pre-tax:       -$%s\n", w.PreTax.StringFixed(2))

	if w.Mode == paycheck.ModeStructured {
		fmt.Printf("Taxable income:   $%s\n", w.TaxableIncome.StringFixed(2))
		fmt.Printf("  Taxes:         -$%s\n", w.Taxes.StringFixed(2))
		fmt.Printf("After tax:        $%s\n", w.AfterTax.StringFixed(2))
		fmt.Printf("  Post-tax:      -$%s\n", w.PostTax.StringFixed(2))
	}

	fmt.Printf("Net pay:          $%s\n", w.NetPay.StringFixed(2))
	if w.EmployerMatch.IsPositive() {
		fmt.Printf("Employer match:  +$%s (not part of net pay)\n", w.EmployerMatch.StringFixed(2))
	}

	if w.Mode == paycheck.ModeLegacy {
		fmt.Println("\nGross is estimated from retirement contributions only;")
		fmt.Println("add tax and deduction records for the full breakdown.")
	}
}
