package model

// Profile is the full snapshot of a user's records. Analysis functions
// take it by value, never mutate it, and recompute everything on every
// call; there is no cached derived state anywhere.
type Profile struct {
	Owner             string             `json:"owner,omitempty"`
	Accounts          []Account          `json:"accounts"`
	IncomeSources     []IncomeSource     `json:"incomeSources"`
	Obligations       []Obligation       `json:"obligations"`
	Debts             []Debt             `json:"debts"`
	Assets            []Asset            `json:"assets"`
	PreTaxDeductions  []PreTaxDeduction  `json:"preTaxDeductions,omitempty"`
	Taxes             []Tax              `json:"taxes,omitempty"`
	PostTaxDeductions []PostTaxDeduction `json:"postTaxDeductions,omitempty"`
	FlatDeductions    []FlatDeduction    `json:"flatDeductions,omitempty"`
	Desires           []Desire           `json:"desires,omitempty"`
}

// Account returns the account with the given ID.
func (p Profile) Account(id string) (Account, bool) {
	for _, a := range p.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// IncomeSource returns the income source with the given ID.
func (p Profile) IncomeSource(id string) (IncomeSource, bool) {
	for _, s := range p.IncomeSources {
		if s.ID == id {
			return s, true
		}
	}
	return IncomeSource{}, false
}
