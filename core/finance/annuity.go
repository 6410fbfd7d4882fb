// Package finance provides the closed-form financial arithmetic used to
// annualize capital expenditure: annuity factors and currency conversion.
package finance

import "math"

// Annuity calculates the annuity factor for an asset with a lifetime of
// lifetimeYears and the given discount rate. For a positive rate the factor
// is r / (1 - (1+r)^-n); for a zero or negative rate the capital cost is
// amortized straight-line over the lifetime.
//
// The function is permissive: it does not validate its inputs and returns
// Inf or NaN for degenerate values (non-positive lifetimes, rates at or
// below -1). Callers that need guarding should use the strict catalog
// loaders instead.
func Annuity(lifetimeYears, discountRate float64) float64 {
	if discountRate > 0 {
		return discountRate / (1 - math.Pow(1+discountRate, -lifetimeYears))
	}
	return 1 / lifetimeYears
}

// Annualize converts a one-time capital cost into an equivalent annual
// payment, including a fixed O&M overhead expressed as a share of the
// annualized cost.
func Annualize(capitalCost, lifetimeYears, discountRate, overheadRate float64) float64 {
	return Annuity(lifetimeYears, discountRate) * capitalCost * (1 + overheadRate)
}
