package frequency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/freedomd-dev/freedomd/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestToMonthly(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		freq   model.PayFrequency
		want   string
	}{
		{"weekly", "1200", model.Weekly, "5200"},          // 1200*52/12
		{"biweekly", "1200", model.Biweekly, "2600"},      // 1200*26/12
		{"twice monthly", "2000", model.TwiceMonthly, "4000"},
		{"monthly", "3500", model.Monthly, "3500"},
		{"quarterly", "300", model.Quarterly, "100"},
		{"zero amount", "0", model.Weekly, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToMonthly(dec(tt.amount), tt.freq)
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestToMonthly_UnknownFrequencyTreatedAsMonthly(t *testing.T) {
	got := ToMonthly(dec("750"), model.PayFrequency("fortnightly"))
	assert.True(t, got.Equal(dec("750")))
}

func TestToAnnual(t *testing.T) {
	tests := []struct {
		freq model.PayFrequency
		want string
	}{
		{model.Weekly, "5200"},
		{model.Biweekly, "2600"},
		{model.TwiceMonthly, "2400"},
		{model.Monthly, "1200"},
		{model.Quarterly, "400"},
		{model.PayFrequency("bogus"), "1200"},
	}
	for _, tt := range tests {
		got := ToAnnual(dec("100"), tt.freq)
		assert.True(t, got.Equal(dec(tt.want)), "%s: got %s, want %s", tt.freq, got, tt.want)
	}
}

// Monthly x12 must agree with the annual conversion for every
// frequency, within decimal division precision.
func TestMonthlyTimesTwelveMatchesAnnual(t *testing.T) {
	freqs := []model.PayFrequency{
		model.Weekly, model.Biweekly, model.TwiceMonthly, model.Monthly, model.Quarterly,
	}
	tolerance := dec("0.0001")
	for _, f := range freqs {
		monthly := ToMonthly(dec("987.65"), f).Mul(decimal.NewFromInt(12))
		annual := ToAnnual(dec("987.65"), f)
		diff := monthly.Sub(annual).Abs()
		assert.True(t, diff.LessThan(tolerance), "%s: |%s - %s| = %s", f, monthly, annual, diff)
	}
}

// ToMonthly must be linear in the amount.
func TestToMonthlyLinearity(t *testing.T) {
	a := ToMonthly(dec("100"), model.Biweekly)
	b := ToMonthly(dec("300"), model.Biweekly)
	diff := a.Mul(decimal.NewFromInt(3)).Sub(b).Abs()
	assert.True(t, diff.LessThan(dec("0.0001")))
}
