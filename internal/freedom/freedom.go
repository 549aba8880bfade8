// Package freedom computes the "days of freedom" metric: how long
// sellable assets can cover the gap between daily needs and passive
// asset income. It is an independent pipeline from the cash-flow
// analyzers and deliberately uses a narrower liquidity definition.
package freedom

import (
	"github.com/shopspring/decimal"

	"github.com/freedomd-dev/freedomd/internal/model"
)

// Stage is the discrete life-stage classification of a freedom result.
type Stage string

const (
	StageDrowning   Stage = "drowning"
	StageStruggling Stage = "struggling"
	StageBreaking   Stage = "breaking"
	StageRising     Stage = "rising"
	StageEnthroned  Stage = "enthroned"
)

// Result is the freedom score. Days is meaningless when Forever is
// set. Kinged holds exactly when Forever holds: passive income covers
// needs and needs are nonzero.
type Result struct {
	Days              int64           `json:"days"`
	Forever           bool            `json:"forever"`
	Kinged            bool            `json:"kinged"`
	Label             string          `json:"label"`
	Stage             Stage           `json:"stage"`
	AnnualAssetIncome decimal.Decimal `json:"annualAssetIncome"`
	DailyAssetIncome  decimal.Decimal `json:"dailyAssetIncome"`
	DailyNeeds        decimal.Decimal `json:"dailyNeeds"`
	LiquidAssets      decimal.Decimal `json:"liquidAssets"`
}

var (
	twelve      = decimal.NewFromInt(12)
	daysPerYear = decimal.NewFromInt(365)
)

// Calculate derives the freedom score from the current snapshot.
func Calculate(p model.Profile) Result {
	assetIncome := decimal.Zero
	for _, a := range p.Assets {
		assetIncome = assetIncome.Add(AnnualAssetIncome(a))
	}

	annualSpend := decimal.Zero
	for _, o := range p.Obligations {
		annualSpend = annualSpend.Add(o.Amount.Mul(twelve))
	}
	for _, d := range p.Desires {
		if d.Purchased() {
			annualSpend = annualSpend.Add(d.EstimatedCost)
		}
	}
	for _, d := range p.Debts {
		annualSpend = annualSpend.Add(d.MonthlyPayment.Mul(twelve))
	}

	dailyNeeds := annualSpend.Div(daysPerYear)
	dailyAssetIncome := assetIncome.Div(daysPerYear)

	result := Result{
		AnnualAssetIncome: assetIncome,
		DailyAssetIncome:  dailyAssetIncome,
		DailyNeeds:        dailyNeeds,
		LiquidAssets:      sellableAssets(p.Assets),
	}

	switch {
	case dailyAssetIncome.IsZero() && dailyNeeds.IsZero():
		// Nothing tracked yet: "not started", not "already free".
	case dailyAssetIncome.GreaterThanOrEqual(dailyNeeds) && dailyNeeds.IsPositive():
		result.Forever = true
		result.Kinged = true
	default:
		dailyBurn := dailyNeeds.Sub(dailyAssetIncome)
		if dailyBurn.IsPositive() && result.LiquidAssets.IsPositive() {
			result.Days = result.LiquidAssets.Div(dailyBurn).Floor().IntPart()
		}
	}

	result.Label = FormatDays(result.Days, result.Forever)
	result.Stage = StageFor(result.Days, result.Forever)
	return result
}

// AnnualAssetIncome is the per-variant income rule. Every category is
// named in the switch; a category without its detail struct, or one
// this switch does not know, falls back to the manually entered annual
// income field rather than silently producing zero.
func AnnualAssetIncome(a model.Asset) decimal.Decimal {
	switch a.Category {
	case model.AssetCrypto, model.AssetDeFi:
		if a.Crypto != nil {
			if a.Crypto.Staked && a.Crypto.APY.Valid {
				return a.Value.Mul(a.Crypto.APY.Decimal)
			}
			return decimal.Zero
		}
		return a.AnnualIncome
	case model.AssetRealEstate:
		if a.RealEstate != nil {
			return a.RealEstate.MonthlyRent.Sub(a.RealEstate.MonthlyExpenses).Mul(twelve)
		}
		return a.AnnualIncome
	case model.AssetStocks:
		if a.Stock != nil {
			return a.Value.Mul(a.Stock.DividendYield)
		}
		return a.AnnualIncome
	case model.AssetBusiness:
		if a.Business != nil {
			return a.Business.AnnualDistributions
		}
		return a.AnnualIncome
	case model.AssetBankAccount, model.AssetRetirement, model.AssetOther:
		return a.AnnualIncome
	default:
		return a.AnnualIncome
	}
}

// sellableAssets is the freedom score's liquidity: crypto, defi and
// stocks only. Real estate and the rest are excluded because they
// cannot be sold fast; the aggregate analyzer's broader definition is
// a different policy and must stay separate.
func sellableAssets(assets []model.Asset) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		switch a.Category {
		case model.AssetCrypto, model.AssetDeFi, model.AssetStocks:
			total = total.Add(a.Value)
		}
	}
	return total
}
