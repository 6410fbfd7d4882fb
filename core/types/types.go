// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

// Technology identifies a generation or storage technology.
// It is used purely as a mapping key; the catalog keeps the data rows
// in a fixed order that callers are expected to mirror in their label
// sequences.
type Technology string

// String returns the string representation
func (t Technology) String() string {
	return string(t)
}

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// TechKind groups technologies by their role in the energy system
type TechKind string

const (
	KindGenerator TechKind = "generator"
	KindStorage   TechKind = "storage"
	KindHydro     TechKind = "hydro"
)

// String returns the string representation
func (k TechKind) String() string {
	return string(k)
}

// AnnualCost is an annualized capital cost in EUR per MW per year
type AnnualCost float64

// MarginalCost is a variable production cost in EUR per MWh
type MarginalCost float64

// Efficiency is a dimensionless conversion ratio in (0,1]
type Efficiency float64

// EmissionFactor is a CO2 intensity in tonnes per MWh of fuel heat
type EmissionFactor float64

// PowerRatio is a storage unit's power capacity per unit of energy
// capacity (MW per MWh), also called the c-rate
type PowerRatio float64

// LossRate is a per-unit standing loss per hour
type LossRate float64
