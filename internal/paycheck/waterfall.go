// Package paycheck reconstructs the gross-to-net deduction waterfall
// for an income source. The income source amount is net pay; the
// waterfall works backwards from it for display, it is not an
// independent tax calculation.
package paycheck

import (
	"github.com/shopspring/decimal"

	"github.com/freedomd-dev/freedomd/internal/frequency"
	"github.com/freedomd-dev/freedomd/internal/model"
)

// Mode selects how the waterfall is built.
type Mode string

const (
	// ModeStructured uses the pre-tax / tax / post-tax records.
	ModeStructured Mode = "structured"
	// ModeLegacy estimates gross from retirement contributions and
	// deprecated flat deductions; tax stages are unknown.
	ModeLegacy Mode = "legacy"
)

// Waterfall is the monthly gross-to-net breakdown for one income
// source. In legacy mode the tax fields are zero and only the pre-tax
// and net stages are meaningful; callers should caption the output as
// incomplete.
type Waterfall struct {
	Mode          Mode            `json:"mode"`
	Gross         decimal.Decimal `json:"gross"`
	PreTax        decimal.Decimal `json:"preTax"`
	TaxableIncome decimal.Decimal `json:"taxableIncome"`
	Taxes         decimal.Decimal `json:"taxes"`
	AfterTax      decimal.Decimal `json:"afterTax"`
	PostTax       decimal.Decimal `json:"postTax"`
	NetPay        decimal.Decimal `json:"netPay"`
	// EmployerMatch is shown as an addition below net pay; it is never
	// netted into the pay figures.
	EmployerMatch decimal.Decimal `json:"employerMatch"`
}

// HasStructured reports whether any structured deduction record exists
// anywhere in the profile. The waterfall mode is this one global flag
// per analysis pass, not a per-source choice.
func HasStructured(p model.Profile) bool {
	return len(p.PreTaxDeductions) > 0 || len(p.Taxes) > 0 || len(p.PostTaxDeductions) > 0
}

// Calculate builds the waterfall for one income source against the
// profile's deduction records.
func Calculate(source model.IncomeSource, p model.Profile) Waterfall {
	net := frequency.ToMonthly(source.Amount, source.Frequency)
	contribution, match := MonthlyRetirement(p.Assets)

	if !HasStructured(p) {
		oldPreTax := contribution.Add(MonthlyFlatDeductions(p.FlatDeductions))
		return Waterfall{
			Mode:          ModeLegacy,
			Gross:         net.Add(oldPreTax),
			PreTax:        oldPreTax,
			NetPay:        net,
			EmployerMatch: match,
		}
	}

	preTax := decimal.Zero
	for _, d := range p.PreTaxDeductions {
		preTax = preTax.Add(frequency.ToMonthly(d.Amount, d.Frequency))
	}
	taxes := decimal.Zero
	for _, t := range p.Taxes {
		taxes = taxes.Add(frequency.ToMonthly(t.Amount, t.Frequency))
	}
	postTax := decimal.Zero
	for _, d := range p.PostTaxDeductions {
		postTax = postTax.Add(frequency.ToMonthly(d.Amount, d.Frequency))
	}

	gross := net.Add(preTax).Add(taxes).Add(postTax)
	taxable := gross.Sub(preTax)
	afterTax := taxable.Sub(taxes)

	return Waterfall{
		Mode:          ModeStructured,
		Gross:         gross,
		PreTax:        preTax,
		TaxableIncome: taxable,
		Taxes:         taxes,
		AfterTax:      afterTax,
		PostTax:       postTax,
		NetPay:        afterTax.Sub(postTax), // reconciles back to net
		EmployerMatch: match,
	}
}
