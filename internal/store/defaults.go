package store

import (
	"github.com/shopspring/decimal"

	"github.com/freedomd-dev/freedomd/internal/id"
	"github.com/freedomd-dev/freedomd/internal/model"
)

// Default returns a starter profile with one checking account and no
// records, so a fresh project produces a sensible (critical: no income)
// analysis instead of an empty file.
func Default(owner string) model.Profile {
	return model.Profile{
		Owner: owner,
		Accounts: []model.Account{
			{
				ID:      id.New(id.KindAccount),
				Name:    "Checking",
				Kind:    model.AccountChecking,
				Balance: decimal.NewNullDecimal(decimal.Zero),
			},
		},
	}
}
