// Package catalog holds the published techno-economic figures for the
// modeled technologies and derives the annualized, unit-consistent
// parameter sets consumed by the optimization model.
package catalog

import (
	"github.com/Viktor-Johnsen/46770-final-project/core/finance"
)

// Assumptions are the shared financial assumptions applied to every
// capital cost in the catalog. The value is frozen at construction and
// passed by value; nothing mutates it after initialization.
type Assumptions struct {
	// DiscountRate is the annual discount rate used by the annuity factor
	DiscountRate float64 `json:"discount_rate"`

	// OverheadRate is the fixed O&M overhead as a share of the
	// annualized capital cost
	OverheadRate float64 `json:"overhead_rate"`

	// DollarToEuro converts dollar-denominated source figures
	DollarToEuro finance.FxRate `json:"dollar_to_euro"`
}

// DefaultAssumptions returns the assumptions the published figures were
// prepared with: 7% discount, 3% O&M overhead, and the snapshot
// exchange rate.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		DiscountRate: 0.07,
		OverheadRate: 0.03,
		DollarToEuro: finance.DollarToEuro,
	}
}

// Annualize spreads a one-time capital cost over an asset lifetime
// under these assumptions.
func (a Assumptions) Annualize(capitalCost, lifetimeYears float64) float64 {
	return finance.Annualize(capitalCost, lifetimeYears, a.DiscountRate, a.OverheadRate)
}
