package catalog

import (
	"github.com/Viktor-Johnsen/46770-final-project/core/types"
	"github.com/Viktor-Johnsen/46770-final-project/internal/errors"
)

// gjPerMWh converts fuel heat content between GJ and MWh. Fuel CO2
// intensities are published per GJ of fuel heat, emission factors are
// wanted per MWh.
const gjPerMWh = 3.6

// GeneratorParameters are the derived per-technology parameter sets for
// the generation fleet, keyed by the labels the caller supplied.
type GeneratorParameters struct {
	// CapitalCost is the annualized investment cost in EUR per MW per year
	CapitalCost map[types.Technology]types.AnnualCost `json:"capital_cost"`

	// MarginalCost is the fuel cost per MWh of electricity in EUR
	MarginalCost map[types.Technology]types.MarginalCost `json:"marginal_cost"`

	// Efficiency is the fuel-to-electricity conversion efficiency
	Efficiency map[types.Technology]types.Efficiency `json:"efficiency"`

	// CO2Emissions is the emission factor in tonnes CO2 per MWh of fuel heat
	CO2Emissions map[types.Technology]types.EmissionFactor `json:"co2_emissions"`
}

// LoadGeneratorData derives the generator parameter sets from the
// catalog tables. Labels are paired against the table rows in order;
// a shorter label sequence truncates the result to the leading rows
// and surplus labels are ignored.
func (c *Catalog) LoadGeneratorData(labels []types.Technology) GeneratorParameters {
	a := c.Assumptions

	capital := make([]types.AnnualCost, len(c.Generators))
	marginal := make([]types.MarginalCost, len(c.Generators))
	efficiency := make([]types.Efficiency, len(c.Generators))
	emissions := make([]types.EmissionFactor, len(c.Generators))

	for i, g := range c.Generators {
		capital[i] = types.AnnualCost(a.Annualize(g.CapitalCost, g.Lifetime))

		fuelCost := a.DollarToEuro.Convert(g.FuelCost)
		marginal[i] = types.MarginalCost(fuelCost / g.Efficiency)

		efficiency[i] = types.Efficiency(g.Efficiency)
		emissions[i] = types.EmissionFactor(g.FuelEmissions * gjPerMWh / 1000)
	}

	return GeneratorParameters{
		CapitalCost:  zipByLabel(labels, capital),
		MarginalCost: zipByLabel(labels, marginal),
		Efficiency:   zipByLabel(labels, efficiency),
		CO2Emissions: zipByLabel(labels, emissions),
	}
}

// LoadGeneratorDataStrict is the hardened variant of LoadGeneratorData.
// It rejects label sequences that do not match the table row for row,
// and catalog rows with non-positive lifetimes, instead of producing
// truncated or non-finite results.
func (c *Catalog) LoadGeneratorDataStrict(labels []types.Technology) (GeneratorParameters, error) {
	if err := c.validateLabels(labels, len(c.Generators), "generator"); err != nil {
		return GeneratorParameters{}, err
	}
	for _, g := range c.Generators {
		if g.Lifetime <= 0 {
			return GeneratorParameters{}, errors.Newf(errors.TypeValidation,
				"generator %s has non-positive lifetime %g", g.Name, g.Lifetime)
		}
	}
	return c.LoadGeneratorData(labels), nil
}

func (c *Catalog) validateLabels(labels []types.Technology, want int, kind string) error {
	if len(labels) != want {
		return errors.Newf(errors.TypeValidation,
			"expected %d %s labels, got %d", want, kind, len(labels)).
			WithContext("labels", labels)
	}
	seen := make(map[types.Technology]struct{}, len(labels))
	for _, l := range labels {
		if _, dup := seen[l]; dup {
			return errors.Newf(errors.TypeValidation, "duplicate %s label: %s", kind, l)
		}
		seen[l] = struct{}{}
	}
	return nil
}

// LoadGeneratorData derives the generator parameter sets from the
// default catalog.
func LoadGeneratorData(labels []types.Technology) GeneratorParameters {
	return Default().LoadGeneratorData(labels)
}
