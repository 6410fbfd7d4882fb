package output

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/shopspring/decimal"
)

// CLIFormatter renders a report as aligned text tables.
type CLIFormatter struct{}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the parameter tables to w.
func (f *CLIFormatter) Render(w io.Writer, report *Report) error {
	fmt.Fprintf(w, "Assumptions: discount rate %s, O&M overhead %s, USD/EUR %s\n\n",
		ratio(report.Assumptions.DiscountRate),
		ratio(report.Assumptions.OverheadRate),
		ratio(float64(report.Assumptions.DollarToEuro)))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "GENERATOR\tCAPITAL COST [EUR/MW/a]\tMARGINAL COST [EUR/MWh]\tEFFICIENCY\tCO2 [t/MWh_th]")
	for _, label := range report.GeneratorOrder {
		g := report.Generators
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			label,
			money(float64(g.CapitalCost[label])),
			money(float64(g.MarginalCost[label])),
			ratio(float64(g.Efficiency[label])),
			ratio(float64(g.CO2Emissions[label])))
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "STORAGE\tCAPITAL COST [EUR/MW/a]\tEFF IN\tEFF OUT\tC-RATE [MW/MWh]\tLOSS [1/h]")
	for _, label := range report.StorageOrder {
		s := report.Storages
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			label,
			money(float64(s.CapitalCost[label])),
			ratio(float64(s.EffIn[label])),
			ratio(float64(s.EffOut[label])),
			ratio(float64(s.PowerRatio[label])),
			ratio(float64(s.HourlyLoss[label])))
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "HYDRO\t%s EUR/MW/a\n", money(float64(report.HydroCost)))

	return tw.Flush()
}

// money renders a euro amount with two fixed decimals. Going through
// decimal keeps the rendering deterministic regardless of the float
// representation of the computed value.
func money(v float64) string {
	if !isFinite(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return decimal.NewFromFloat(v).Round(2).StringFixed(2)
}

// ratio renders a dimensionless figure with up to six decimals.
func ratio(v float64) string {
	if !isFinite(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return decimal.NewFromFloat(v).Round(6).String()
}

// isFinite reports whether v can be handed to decimal. The permissive
// loaders propagate Inf and NaN from degenerate catalog rows, and
// decimal.NewFromFloat panics on both, so non-finite figures are
// rendered literally instead.
func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
