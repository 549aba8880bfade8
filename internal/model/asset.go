package model

import "github.com/shopspring/decimal"

// AssetCategory is the variant tag for an Asset. Exactly one detail
// struct matches the tag; income dispatch switches exhaustively on it
// so a new category is a compile-visible gap.
type AssetCategory string

const (
	AssetCrypto      AssetCategory = "crypto"
	AssetDeFi        AssetCategory = "defi"
	AssetRealEstate  AssetCategory = "real_estate"
	AssetStocks      AssetCategory = "stocks"
	AssetBusiness    AssetCategory = "business"
	AssetBankAccount AssetCategory = "bank_account"
	AssetRetirement  AssetCategory = "retirement"
	AssetOther       AssetCategory = "other"
)

// Asset is anything of value the user holds. Value is the current
// market value. AnnualIncome is the manually entered fallback used by
// categories without a detail-specific income rule.
//
// The detail pointers form a closed sum: the one matching Category is
// set, the rest are nil. Auto-fetched holdings (e.g. staking balances)
// arrive in exactly the same shape as manual entries.
type Asset struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     AssetCategory   `json:"category"`
	Value        decimal.Decimal `json:"value"`
	AnnualIncome decimal.Decimal `json:"annualIncome"`

	Crypto     *CryptoDetail     `json:"crypto,omitempty"`
	RealEstate *RealEstateDetail `json:"realEstate,omitempty"`
	Stock      *StockDetail      `json:"stock,omitempty"`
	Business   *BusinessDetail   `json:"business,omitempty"`
	Retirement *RetirementDetail `json:"retirement,omitempty"`
}

// CryptoDetail covers both crypto and defi positions.
type CryptoDetail struct {
	Quantity decimal.Decimal     `json:"quantity"`
	APY      decimal.NullDecimal `json:"apy"`
	Staked   bool                `json:"staked"`
}

// RealEstateDetail holds rental cash flow for a property.
type RealEstateDetail struct {
	MonthlyRent     decimal.Decimal `json:"monthlyRent"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"`
}

// StockDetail holds the dividend yield as a fraction.
type StockDetail struct {
	DividendYield decimal.Decimal `json:"dividendYield"`
}

// BusinessDetail holds explicit annual owner distributions.
type BusinessDetail struct {
	AnnualDistributions decimal.Decimal `json:"annualDistributions"`
}

// RetirementDetail describes a pre-tax paycheck contribution. The
// contribution reduces gross pay before tax; it is not an obligation
// and never touches a bank account balance. MatchPercent is the
// employer match as a fraction of the contribution.
type RetirementDetail struct {
	Contribution decimal.Decimal     `json:"contribution"`
	Frequency    PayFrequency        `json:"frequency"`
	MatchPercent decimal.NullDecimal `json:"matchPercent"`
}
