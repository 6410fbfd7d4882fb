package catalog

import (
	"math"
	"testing"

	"github.com/Viktor-Johnsen/46770-final-project/core/finance"
	"github.com/Viktor-Johnsen/46770-final-project/core/types"
	"github.com/Viktor-Johnsen/46770-final-project/internal/errors"
)

var allGenerators = []types.Technology{"wind", "solar", "OCGT", "coal", "biomass", "nuclear"}

func TestLoadGeneratorDataFullTable(t *testing.T) {
	params := LoadGeneratorData(allGenerators)

	for _, m := range []int{
		len(params.CapitalCost), len(params.MarginalCost),
		len(params.Efficiency), len(params.CO2Emissions),
	} {
		if m != len(allGenerators) {
			t.Fatalf("expected %d entries per mapping, got %d", len(allGenerators), m)
		}
	}

	// carbon-free, fuel-free technologies
	for _, tech := range []types.Technology{"wind", "solar"} {
		if params.MarginalCost[tech] != 0 {
			t.Errorf("%s marginal cost = %g, want 0", tech, params.MarginalCost[tech])
		}
		if params.CO2Emissions[tech] != 0 {
			t.Errorf("%s CO2 emissions = %g, want 0", tech, params.CO2Emissions[tech])
		}
	}

	// fuel burners carry positive marginal cost and emissions
	for _, tech := range []types.Technology{"OCGT", "coal"} {
		if params.MarginalCost[tech] <= 0 {
			t.Errorf("%s marginal cost = %g, want > 0", tech, params.MarginalCost[tech])
		}
		if params.CO2Emissions[tech] <= 0 {
			t.Errorf("%s CO2 emissions = %g, want > 0", tech, params.CO2Emissions[tech])
		}
	}

	// technologies modeled without a conversion step
	for _, tech := range []types.Technology{"wind", "solar", "biomass"} {
		if params.Efficiency[tech] != 1.0 {
			t.Errorf("%s efficiency = %g, want 1.0", tech, params.Efficiency[tech])
		}
	}

	// zero-emission by assumption despite burning fuel
	for _, tech := range []types.Technology{"biomass", "nuclear"} {
		if params.CO2Emissions[tech] != 0 {
			t.Errorf("%s CO2 emissions = %g, want 0", tech, params.CO2Emissions[tech])
		}
	}

	for _, tech := range allGenerators {
		if params.CapitalCost[tech] <= 0 {
			t.Errorf("%s capital cost = %g, want > 0", tech, params.CapitalCost[tech])
		}
	}
}

// TestGeneratorCapitalCostAnnualization recomputes one capital cost by
// hand from the table row.
func TestGeneratorCapitalCostAnnualization(t *testing.T) {
	c := Default()
	params := c.LoadGeneratorData(allGenerators)

	row, ok := c.Generator("wind")
	if !ok {
		t.Fatal("wind missing from default catalog")
	}
	want := finance.Annuity(row.Lifetime, c.Assumptions.DiscountRate) * row.CapitalCost * (1 + c.Assumptions.OverheadRate)
	if got := float64(params.CapitalCost["wind"]); got != want {
		t.Errorf("wind capital cost = %g, want %g", got, want)
	}
}

// TestGeneratorCurrencyConversionIsLinear verifies the dollar-sourced
// fuel costs pass through the shared exchange rate: marginal cost times
// efficiency recovers the converted fuel price.
func TestGeneratorCurrencyConversionIsLinear(t *testing.T) {
	c := Default()
	params := c.LoadGeneratorData(allGenerators)

	for _, tech := range []types.Technology{"OCGT", "coal", "biomass", "nuclear"} {
		row, ok := c.Generator(tech)
		if !ok {
			t.Fatalf("%s missing from default catalog", tech)
		}
		fuelEUR := float64(params.MarginalCost[tech]) * float64(params.Efficiency[tech])
		want := row.FuelCost * float64(c.Assumptions.DollarToEuro)
		if math.Abs(fuelEUR-want) > 1e-9 {
			t.Errorf("%s converted fuel cost = %g, want %g (= %g USD * %g)",
				tech, fuelEUR, want, row.FuelCost, float64(c.Assumptions.DollarToEuro))
		}
	}
}

// TestGeneratorEmissionFactorNormalization checks the heat-content
// normalization of the published per-GJ intensities.
func TestGeneratorEmissionFactorNormalization(t *testing.T) {
	c := Default()
	params := c.LoadGeneratorData(allGenerators)

	row, _ := c.Generator("coal")
	want := row.FuelEmissions * 3.6 / 1000
	if got := float64(params.CO2Emissions["coal"]); math.Abs(got-want) > 1e-12 {
		t.Errorf("coal emission factor = %g, want %g t/MWh_th", got, want)
	}
}

// TestLoadGeneratorDataTruncates documents the silent-truncation policy:
// fewer labels than rows maps the leading technologies only.
func TestLoadGeneratorDataTruncates(t *testing.T) {
	params := LoadGeneratorData([]types.Technology{"wind", "solar"})

	if len(params.CapitalCost) != 2 {
		t.Fatalf("expected 2 capital cost entries, got %d", len(params.CapitalCost))
	}
	for _, tech := range []types.Technology{"wind", "solar"} {
		if _, ok := params.CapitalCost[tech]; !ok {
			t.Errorf("missing key %s after truncated load", tech)
		}
	}
	if _, ok := params.CapitalCost["OCGT"]; ok {
		t.Error("OCGT present after two-label load, want truncation")
	}
}

// TestLoadGeneratorDataIgnoresSurplusLabels documents the other half of
// the policy: labels beyond the table rows are dropped without error.
func TestLoadGeneratorDataIgnoresSurplusLabels(t *testing.T) {
	labels := append(append([]types.Technology{}, allGenerators...), "geothermal")
	params := LoadGeneratorData(labels)

	if len(params.CapitalCost) != len(allGenerators) {
		t.Fatalf("expected %d entries, got %d", len(allGenerators), len(params.CapitalCost))
	}
	if _, ok := params.CapitalCost["geothermal"]; ok {
		t.Error("surplus label geothermal mapped, want it dropped")
	}
}

func TestLoadGeneratorDataStrictRejectsMismatch(t *testing.T) {
	c := Default()

	_, err := c.LoadGeneratorDataStrict([]types.Technology{"wind", "solar"})
	if err == nil {
		t.Fatal("expected validation error for short label sequence")
	}
	if !errors.IsType(err, errors.TypeValidation) {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}

	_, err = c.LoadGeneratorDataStrict([]types.Technology{"wind", "wind", "OCGT", "coal", "biomass", "nuclear"})
	if err == nil {
		t.Fatal("expected validation error for duplicate label")
	}
}

func TestLoadGeneratorDataStrictRejectsNonPositiveLifetime(t *testing.T) {
	c := Default()
	c.Generators[0].Lifetime = 0

	_, err := c.LoadGeneratorDataStrict(allGenerators)
	if err == nil {
		t.Fatal("expected validation error for zero lifetime")
	}
	t.Logf("got expected error: %v", err)
}

func TestLoadGeneratorDataStrictMatchesPermissive(t *testing.T) {
	c := Default()
	strict, err := c.LoadGeneratorDataStrict(allGenerators)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loose := c.LoadGeneratorData(allGenerators)

	for _, tech := range allGenerators {
		if strict.CapitalCost[tech] != loose.CapitalCost[tech] {
			t.Errorf("%s: strict capital cost %g != permissive %g",
				tech, strict.CapitalCost[tech], loose.CapitalCost[tech])
		}
	}
}
