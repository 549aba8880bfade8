package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freedomd-dev/freedomd/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	bought := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	p := model.Profile{
		Owner: "Ada",
		Accounts: []model.Account{{
			ID:      "acct-1",
			Name:    "Checking",
			Kind:    model.AccountChecking,
			Balance: decimal.NewNullDecimal(dec("2500.75")),
		}},
		IncomeSources: []model.IncomeSource{{
			ID: "inc-1", Name: "Day job", Category: model.IncomeSalary,
			Amount: dec("2000"), Frequency: model.Biweekly, AccountID: "acct-1",
		}},
		Obligations: []model.Obligation{{
			ID: "obl-1", Name: "Rent", Amount: dec("1400"),
			Category: model.ObligationHousing, AccountID: "acct-1", Recurring: true,
		}},
		Debts: []model.Debt{{
			ID: "debt-1", Name: "Card", Principal: dec("3200"),
			MonthlyPayment: dec("150"), InterestRate: dec("0.24"),
		}},
		Assets: []model.Asset{{
			ID: "asset-1", Name: "ETH", Category: model.AssetCrypto, Value: dec("9000"),
			Crypto: &model.CryptoDetail{
				Quantity: dec("3"),
				APY:      decimal.NewNullDecimal(dec("0.04")),
				Staked:   true,
			},
		}},
		Desires: []model.Desire{{
			ID: "want-1", Name: "Bike", EstimatedCost: dec("900"), PurchasedAt: &bought,
		}},
	}

	require.NoError(t, Save(dir, p))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
}

func TestLoad_MissingProfile(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoad_Corrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{nope"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, Exists(dir))

	require.NoError(t, Save(dir, model.Profile{}))
	assert.True(t, Exists(dir))
}

func TestDefault(t *testing.T) {
	p := Default("Ada")
	assert.Equal(t, "Ada", p.Owner)
	require.Len(t, p.Accounts, 1)
	assert.Equal(t, model.AccountChecking, p.Accounts[0].Kind)
	assert.True(t, p.Accounts[0].Balance.Valid)
	assert.Empty(t, p.IncomeSources)
}
