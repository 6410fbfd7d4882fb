package catalog

import (
	"math"

	"github.com/Viktor-Johnsen/46770-final-project/core/types"
	"github.com/Viktor-Johnsen/46770-final-project/internal/errors"
)

// StorageParameters are the derived per-technology parameter sets for
// the storage fleet, keyed by the labels the caller supplied.
type StorageParameters struct {
	// CapitalCost is the annualized investment cost in EUR per MW per year
	CapitalCost map[types.Technology]types.AnnualCost `json:"capital_cost"`

	// EffIn is the charge efficiency
	EffIn map[types.Technology]types.Efficiency `json:"eff_in"`

	// EffOut is the discharge efficiency
	EffOut map[types.Technology]types.Efficiency `json:"eff_out"`

	// PowerRatio is the charge/discharge power per MWh of energy capacity
	PowerRatio map[types.Technology]types.PowerRatio `json:"power_ratio"`

	// HourlyLoss is the standing loss per unit of stored energy per hour
	HourlyLoss map[types.Technology]types.LossRate `json:"hourly_loss"`
}

// LoadStorageUnitsData derives the storage parameter sets from the
// catalog tables. The per-MWh investment cost is scaled to a per-MW
// cost through the power ratio before annualization, the round-trip
// efficiency is split into symmetric charge and discharge legs, and
// the daily self-discharge rate is converted to a per-unit hourly loss.
// Label pairing follows the same truncating order-based policy as
// LoadGeneratorData.
func (c *Catalog) LoadStorageUnitsData(labels []types.Technology) StorageParameters {
	a := c.Assumptions

	capital := make([]types.AnnualCost, len(c.Storages))
	effIn := make([]types.Efficiency, len(c.Storages))
	effOut := make([]types.Efficiency, len(c.Storages))
	ratios := make([]types.PowerRatio, len(c.Storages))
	losses := make([]types.LossRate, len(c.Storages))

	for i, s := range c.Storages {
		costPerMW := s.EnergyCost / s.PowerRatio
		capital[i] = types.AnnualCost(a.Annualize(costPerMW, s.Lifetime))

		// losses assumed symmetric between charge and discharge
		leg := types.Efficiency(math.Sqrt(s.RoundTrip))
		effIn[i] = leg
		effOut[i] = leg

		ratios[i] = types.PowerRatio(s.PowerRatio)
		losses[i] = types.LossRate(s.SelfDischarge / 100 / 24)
	}

	return StorageParameters{
		CapitalCost: zipByLabel(labels, capital),
		EffIn:       zipByLabel(labels, effIn),
		EffOut:      zipByLabel(labels, effOut),
		PowerRatio:  zipByLabel(labels, ratios),
		HourlyLoss:  zipByLabel(labels, losses),
	}
}

// LoadStorageUnitsDataStrict is the hardened variant of
// LoadStorageUnitsData, rejecting mismatched label sequences and
// non-positive lifetimes.
func (c *Catalog) LoadStorageUnitsDataStrict(labels []types.Technology) (StorageParameters, error) {
	if err := c.validateLabels(labels, len(c.Storages), "storage"); err != nil {
		return StorageParameters{}, err
	}
	for _, s := range c.Storages {
		if s.Lifetime <= 0 {
			return StorageParameters{}, errors.Newf(errors.TypeValidation,
				"storage %s has non-positive lifetime %g", s.Name, s.Lifetime)
		}
	}
	return c.LoadStorageUnitsData(labels), nil
}

// LoadStorageUnitsData derives the storage parameter sets from the
// default catalog.
func LoadStorageUnitsData(labels []types.Technology) StorageParameters {
	return Default().LoadStorageUnitsData(labels)
}
