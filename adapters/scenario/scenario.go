// Package scenario loads HCL scenario files that override the default
// catalog assumptions and technology rows. A scenario names only the
// figures it changes; everything else keeps the published defaults.
//
//	assumptions {
//	  discount_rate = 0.04
//	}
//
//	generator "coal" {
//	  fuel_cost = 12.3
//	}
//
//	storage "Li-ion" {
//	  energy_cost = 120000
//	}
//
// A generator or storage block naming a technology not in the catalog
// appends a new row at the end of the table.
package scenario

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/zap"

	"github.com/Viktor-Johnsen/46770-final-project/core/catalog"
	"github.com/Viktor-Johnsen/46770-final-project/core/finance"
	"github.com/Viktor-Johnsen/46770-final-project/core/types"
	"github.com/Viktor-Johnsen/46770-final-project/internal/errors"
	"github.com/Viktor-Johnsen/46770-final-project/internal/logging"
)

// Loader parses scenario files
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a scenario loader
func NewLoader() *Loader {
	return &Loader{
		parser: hclparse.NewParser(),
	}
}

// Load reads a scenario file and returns the default catalog with the
// scenario's overrides applied.
func (l *Loader) Load(path string) (*catalog.Catalog, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Scenario("reading scenario file", err).WithContext("path", path)
	}
	return l.Apply(catalog.Default(), src, path)
}

// Apply parses scenario source and applies its overrides to the given
// catalog. Application is atomic: the catalog is modified in place and
// returned on success, and left untouched when any block fails.
func (l *Loader) Apply(c *catalog.Catalog, src []byte, filename string) (*catalog.Catalog, error) {
	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	content, _, diags := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "assumptions"},
			{Type: "generator", LabelNames: []string{"name"}},
			{Type: "storage", LabelNames: []string{"name"}},
			{Type: "hydro"},
		},
	})
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	// overrides land on a copy so a failing block cannot leave the
	// caller's catalog half-applied
	work := c.Clone()

	for _, block := range content.Blocks {
		var err error
		switch block.Type {
		case "assumptions":
			err = l.applyAssumptions(work, block)
		case "generator":
			err = l.applyGenerator(work, block)
		case "storage":
			err = l.applyStorage(work, block)
		case "hydro":
			err = l.applyHydro(work, block)
		}
		if err != nil {
			return nil, err
		}
	}

	*c = *work
	return c, nil
}

func (l *Loader) applyAssumptions(c *catalog.Catalog, block *hcl.Block) error {
	fx := float64(c.Assumptions.DollarToEuro)
	err := decodeNumbers(block, map[string]*float64{
		"discount_rate":  &c.Assumptions.DiscountRate,
		"overhead_rate":  &c.Assumptions.OverheadRate,
		"dollar_to_euro": &fx,
	})
	if err != nil {
		return err
	}
	c.Assumptions.DollarToEuro = finance.FxRate(fx)
	return nil
}

func (l *Loader) applyGenerator(c *catalog.Catalog, block *hcl.Block) error {
	name := types.Technology(block.Labels[0])

	row := catalog.GeneratorTech{Name: name}
	if existing, ok := c.Generator(name); ok {
		row = *existing
	} else {
		logging.Warn("scenario defines new generator technology",
			zap.String("name", name.String()))
	}

	err := decodeNumbers(block, map[string]*float64{
		"capital_cost":   &row.CapitalCost,
		"lifetime":       &row.Lifetime,
		"fuel_cost":      &row.FuelCost,
		"efficiency":     &row.Efficiency,
		"fuel_emissions": &row.FuelEmissions,
	})
	if err != nil {
		return err
	}

	c.UpsertGenerator(row)
	return nil
}

func (l *Loader) applyStorage(c *catalog.Catalog, block *hcl.Block) error {
	name := types.Technology(block.Labels[0])

	row := catalog.StorageTech{Name: name}
	if existing, ok := c.Storage(name); ok {
		row = *existing
	} else {
		logging.Warn("scenario defines new storage technology",
			zap.String("name", name.String()))
	}

	err := decodeNumbers(block, map[string]*float64{
		"energy_cost":    &row.EnergyCost,
		"lifetime":       &row.Lifetime,
		"round_trip":     &row.RoundTrip,
		"power_ratio":    &row.PowerRatio,
		"self_discharge": &row.SelfDischarge,
	})
	if err != nil {
		return err
	}

	c.UpsertStorage(row)
	return nil
}

func (l *Loader) applyHydro(c *catalog.Catalog, block *hcl.Block) error {
	return decodeNumbers(block, map[string]*float64{
		"capital_cost": &c.Hydro.CapitalCost,
		"lifetime":     &c.Hydro.Lifetime,
	})
}

// decodeNumbers evaluates every attribute of the block and stores the
// recognized ones into the matching field. Unrecognized attributes are
// logged and skipped so a scenario written for a newer catalog version
// still loads.
func decodeNumbers(block *hcl.Block, fields map[string]*float64) error {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return diagError(block.DefRange.Filename, diags)
	}

	for name, attr := range attrs {
		dst, known := fields[name]
		if !known {
			logging.Warn("skipping unknown scenario attribute",
				zap.String("block", block.Type),
				zap.String("attribute", name),
				zap.Int("line", attr.Range.Start.Line))
			continue
		}

		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return diagError(attr.Range.Filename, diags)
		}
		if val.Type() != cty.Number {
			return errors.Newf(errors.TypeScenario,
				"attribute %s in block %s must be a number, got %s",
				name, block.Type, val.Type().FriendlyName()).
				WithContext("line", attr.Range.Start.Line)
		}

		f, _ := val.AsBigFloat().Float64()
		*dst = f
	}

	return nil
}

func diagError(filename string, diags hcl.Diagnostics) error {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		line := 0
		if diag.Subject != nil {
			line = diag.Subject.Start.Line
		}
		return errors.Newf(errors.TypeScenario, "%s: %s", diag.Summary, diag.Detail).
			WithContext("file", filename).
			WithContext("line", line)
	}
	return errors.New(errors.TypeScenario, fmt.Sprintf("invalid scenario file %s", filename))
}
