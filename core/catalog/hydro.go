package catalog

import (
	"github.com/Viktor-Johnsen/46770-final-project/core/types"
)

// LoadHydroCost returns the annualized capital cost of hydro generation
// in EUR per MW per year. The source figure is quoted in dollars per kW
// and is scaled to euros per MW before annualization over the long
// hydro lifetime.
func (c *Catalog) LoadHydroCost() types.AnnualCost {
	costPerMW := c.Assumptions.DollarToEuro.PerMW(c.Hydro.CapitalCost)
	return types.AnnualCost(c.Assumptions.Annualize(costPerMW, c.Hydro.Lifetime))
}

// LoadHydroCost returns the annualized hydro capital cost from the
// default catalog.
func LoadHydroCost() types.AnnualCost {
	return Default().LoadHydroCost()
}
