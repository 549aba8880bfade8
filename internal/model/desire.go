package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Desire is a planned purchase. Its cost counts toward spending only
// while it has actually been bought and not yet marked completed.
type Desire struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	EstimatedCost decimal.Decimal `json:"estimatedCost"`
	PurchasedAt   *time.Time      `json:"purchasedAt,omitempty"`
	CompletedAt   *time.Time      `json:"completedAt,omitempty"`
}

// Purchased reports whether the desire currently counts as spend.
func (d Desire) Purchased() bool {
	return d.PurchasedAt != nil && d.CompletedAt == nil
}
