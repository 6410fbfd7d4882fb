// Package output renders derived parameter sets for inspection.
// This package produces human and machine-readable outputs; the
// optimization model itself consumes the in-memory mappings directly.
package output

import (
	"io"

	"github.com/Viktor-Johnsen/46770-final-project/core/catalog"
	"github.com/Viktor-Johnsen/46770-final-project/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the report to w
	Render(w io.Writer, report *Report) error
}

// Report combines every derived parameter set for one catalog, together
// with the label orders needed to render the mappings deterministically.
type Report struct {
	// Assumptions documents the financial assumptions applied
	Assumptions catalog.Assumptions `json:"assumptions"`

	// GeneratorOrder is the generator label sequence in table order
	GeneratorOrder []types.Technology `json:"generator_order"`

	// Generators holds the derived generator parameter sets
	Generators catalog.GeneratorParameters `json:"generators"`

	// StorageOrder is the storage label sequence in table order
	StorageOrder []types.Technology `json:"storage_order"`

	// Storages holds the derived storage parameter sets
	Storages catalog.StorageParameters `json:"storages"`

	// HydroCost is the annualized hydro capital cost in EUR per MW per year
	HydroCost types.AnnualCost `json:"hydro_cost"`
}

// BuildReport performs a full-table load of every parameter set in the
// given catalog.
func BuildReport(c *catalog.Catalog) *Report {
	genLabels := c.GeneratorLabels()
	stoLabels := c.StorageLabels()

	return &Report{
		Assumptions:    c.Assumptions,
		GeneratorOrder: genLabels,
		Generators:     c.LoadGeneratorData(genLabels),
		StorageOrder:   stoLabels,
		Storages:       c.LoadStorageUnitsData(stoLabels),
		HydroCost:      c.LoadHydroCost(),
	}
}

// NewFormatter returns the formatter for the requested format,
// defaulting to the CLI table.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	default:
		return &CLIFormatter{}
	}
}
