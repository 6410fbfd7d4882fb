package catalog

import (
	"github.com/Viktor-Johnsen/46770-final-project/core/types"
)

// GeneratorTech is one row of the generator data table: the published
// source figures for a single generation technology, before any
// annualization or unit conversion.
type GeneratorTech struct {
	// Name is the technology label
	Name types.Technology `json:"name"`

	// CapitalCost is the overnight investment cost in EUR per MW
	CapitalCost float64 `json:"capital_cost"`

	// Lifetime is the economic lifetime in years
	Lifetime float64 `json:"lifetime"`

	// FuelCost is the fuel price in USD per MWh of fuel heat
	FuelCost float64 `json:"fuel_cost"`

	// Efficiency is the fuel-to-electricity conversion efficiency
	Efficiency float64 `json:"efficiency"`

	// FuelEmissions is the fuel CO2 intensity in kg per GJ of fuel heat
	FuelEmissions float64 `json:"fuel_emissions"`
}

// StorageTech is one row of the storage data table.
type StorageTech struct {
	// Name is the technology label
	Name types.Technology `json:"name"`

	// EnergyCost is the investment cost in EUR per MWh of energy capacity
	EnergyCost float64 `json:"energy_cost"`

	// Lifetime is the economic lifetime in years
	Lifetime float64 `json:"lifetime"`

	// RoundTrip is the round-trip efficiency of a full cycle
	RoundTrip float64 `json:"round_trip"`

	// PowerRatio is the charge/discharge power per unit of energy
	// capacity, MW per MWh
	PowerRatio float64 `json:"power_ratio"`

	// SelfDischarge is the standing loss in percent per day
	SelfDischarge float64 `json:"self_discharge"`
}

// HydroTech is the single hydro generation row. Hydro is costed in
// dollars per kW in the source material, unlike the other generators.
type HydroTech struct {
	// CapitalCost is the overnight investment cost in USD per kW
	CapitalCost float64 `json:"capital_cost"`

	// Lifetime is the economic lifetime in years
	Lifetime float64 `json:"lifetime"`
}

// Catalog combines the financial assumptions with the ordered data
// tables. Label sequences supplied to the loaders are paired against
// the table order, so reordering rows changes which label picks up
// which figures.
type Catalog struct {
	Assumptions Assumptions     `json:"assumptions"`
	Generators  []GeneratorTech `json:"generators"`
	Storages    []StorageTech   `json:"storages"`
	Hydro       HydroTech       `json:"hydro"`
}

// Default returns a fresh catalog with the published figures. Each call
// returns an independent copy, so a caller (or a scenario file) may
// modify one catalog without affecting others.
func Default() *Catalog {
	return &Catalog{
		Assumptions: DefaultAssumptions(),
		Generators: []GeneratorTech{
			{Name: "wind", CapitalCost: 910_000, Lifetime: 30, FuelCost: 0, Efficiency: 1.0, FuelEmissions: 0},
			{Name: "solar", CapitalCost: 425_000, Lifetime: 25, FuelCost: 0, Efficiency: 1.0, FuelEmissions: 0},
			{Name: "OCGT", CapitalCost: 560_000, Lifetime: 25, FuelCost: 21.6, Efficiency: 0.39, FuelEmissions: 56.1},
			{Name: "coal", CapitalCost: 1_900_000, Lifetime: 40, FuelCost: 8.4, Efficiency: 0.33, FuelEmissions: 94.6},
			{Name: "biomass", CapitalCost: 2_500_000, Lifetime: 30, FuelCost: 25.1, Efficiency: 1.0, FuelEmissions: 0},
			{Name: "nuclear", CapitalCost: 7_940_000, Lifetime: 60, FuelCost: 3.0, Efficiency: 0.33, FuelEmissions: 0},
		},
		Storages: []StorageTech{
			{Name: "carnot", EnergyCost: 60_000, Lifetime: 25, RoundTrip: 0.45, PowerRatio: 0.125, SelfDischarge: 1.0},
			{Name: "Li-ion", EnergyCost: 142_000, Lifetime: 15, RoundTrip: 0.92, PowerRatio: 0.25, SelfDischarge: 0.1},
			{Name: "vanadium", EnergyCost: 222_000, Lifetime: 20, RoundTrip: 0.75, PowerRatio: 1.0 / 6.0, SelfDischarge: 0.2},
		},
		Hydro: HydroTech{CapitalCost: 2_250, Lifetime: 75},
	}
}

// Clone returns a deep copy of the catalog. Modifying the copy, or the
// original, leaves the other untouched.
func (c *Catalog) Clone() *Catalog {
	clone := &Catalog{
		Assumptions: c.Assumptions,
		Generators:  make([]GeneratorTech, len(c.Generators)),
		Storages:    make([]StorageTech, len(c.Storages)),
		Hydro:       c.Hydro,
	}
	copy(clone.Generators, c.Generators)
	copy(clone.Storages, c.Storages)
	return clone
}

// GeneratorLabels returns the technology labels in table order, the
// sequence callers should pass to LoadGeneratorData for a full load.
func (c *Catalog) GeneratorLabels() []types.Technology {
	labels := make([]types.Technology, len(c.Generators))
	for i, g := range c.Generators {
		labels[i] = g.Name
	}
	return labels
}

// StorageLabels returns the storage technology labels in table order.
func (c *Catalog) StorageLabels() []types.Technology {
	labels := make([]types.Technology, len(c.Storages))
	for i, s := range c.Storages {
		labels[i] = s.Name
	}
	return labels
}

// Generator looks up a generator row by label.
func (c *Catalog) Generator(name types.Technology) (*GeneratorTech, bool) {
	for i := range c.Generators {
		if c.Generators[i].Name == name {
			return &c.Generators[i], true
		}
	}
	return nil, false
}

// Storage looks up a storage row by label.
func (c *Catalog) Storage(name types.Technology) (*StorageTech, bool) {
	for i := range c.Storages {
		if c.Storages[i].Name == name {
			return &c.Storages[i], true
		}
	}
	return nil, false
}

// UpsertGenerator replaces the row with the same label or appends a new
// row at the end of the table.
func (c *Catalog) UpsertGenerator(row GeneratorTech) {
	if existing, ok := c.Generator(row.Name); ok {
		*existing = row
		return
	}
	c.Generators = append(c.Generators, row)
}

// UpsertStorage replaces the row with the same label or appends a new
// row at the end of the table.
func (c *Catalog) UpsertStorage(row StorageTech) {
	if existing, ok := c.Storage(row.Name); ok {
		*existing = row
		return
	}
	c.Storages = append(c.Storages, row)
}

// zipByLabel pairs a label sequence against a value sequence
// positionally and stops at the shorter of the two. This mirrors the
// source material's construction: a caller passing fewer labels than
// the table has rows gets the leading technologies only, and extra
// labels beyond the table are dropped without error. The strict loaders
// reject the mismatch instead.
func zipByLabel[V any](labels []types.Technology, values []V) map[types.Technology]V {
	n := len(labels)
	if len(values) < n {
		n = len(values)
	}
	m := make(map[types.Technology]V, n)
	for i := 0; i < n; i++ {
		m[labels[i]] = values[i]
	}
	return m
}
