package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestDebtRate_FractionKept(t *testing.T) {
	d := Debt{InterestRate: dec("0.24")}
	assert.True(t, d.Rate().Equal(dec("0.24")))
}

func TestDebtRate_WholePercentNormalized(t *testing.T) {
	d := Debt{InterestRate: dec("24")}
	assert.True(t, d.Rate().Equal(dec("0.24")))
}

func TestDebtRate_ExactlyOne(t *testing.T) {
	// 1 means 100% as a fraction, not 1% as a whole number.
	d := Debt{InterestRate: dec("1")}
	assert.True(t, d.Rate().Equal(dec("1")))
}

func TestBalanceOrZero(t *testing.T) {
	a := Account{Balance: decimal.NewNullDecimal(dec("1500.25"))}
	assert.True(t, a.BalanceOrZero().Equal(dec("1500.25")))

	missing := Account{}
	assert.True(t, missing.BalanceOrZero().IsZero())
}

func TestDesirePurchased(t *testing.T) {
	now := time.Now()

	assert.False(t, Desire{}.Purchased(), "never bought")
	assert.True(t, Desire{PurchasedAt: &now}.Purchased(), "bought, open")
	assert.False(t, Desire{PurchasedAt: &now, CompletedAt: &now}.Purchased(), "completed")
}

func TestObligationAssigned(t *testing.T) {
	assert.True(t, Obligation{AccountID: "acct-1"}.Assigned())
	assert.False(t, Obligation{}.Assigned())
}

func TestProfileLookups(t *testing.T) {
	p := Profile{
		Accounts:      []Account{{ID: "acct-1", Name: "Checking"}},
		IncomeSources: []IncomeSource{{ID: "inc-1", Name: "Day job"}},
	}

	a, ok := p.Account("acct-1")
	assert.True(t, ok)
	assert.Equal(t, "Checking", a.Name)

	_, ok = p.Account("acct-9")
	assert.False(t, ok)

	s, ok := p.IncomeSource("inc-1")
	assert.True(t, ok)
	assert.Equal(t, "Day job", s.Name)
}
