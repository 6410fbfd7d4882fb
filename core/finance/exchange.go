package finance

// FxRate converts a dollar-denominated figure into euros. The rate is a
// point-in-time snapshot, fixed at initialization and never mutated, so
// unsynchronized concurrent reads are safe.
type FxRate float64

// DollarToEuro is the exchange-rate snapshot applied to all
// dollar-denominated source figures (fuel prices, hydro capital cost).
const DollarToEuro FxRate = 0.92

// Convert applies the rate to a dollar amount and returns euros.
func (r FxRate) Convert(dollars float64) float64 {
	return dollars * float64(r)
}

// PerMW scales a per-kW dollar figure to a per-MW euro figure.
func (r FxRate) PerMW(dollarsPerKW float64) float64 {
	return r.Convert(dollarsPerKW) * 1000
}
