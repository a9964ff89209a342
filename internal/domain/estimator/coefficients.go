package estimator

import (
	"fmt"
	"math"

	"brickonomics/internal/domain/entities"
)

const (
	DefaultOverheadPercentage       = 0.15
	DefaultTransportationPercentage = 0.10
)

// Factor is a per-square-foot consumption factor for one category:
// material units per sqft, or labor hours per sqft.
type Factor struct {
	Category string
	PerArea  float64
}

// Table holds the ordered factors of one project type. The order of each
// slice is the display order of the estimate lines.
type Table struct {
	Materials []Factor
	Labor     []Factor
}

func (t Table) clone() Table {
	return Table{
		Materials: append([]Factor(nil), t.Materials...),
		Labor:     append([]Factor(nil), t.Labor...),
	}
}

// Coefficients is the immutable pricing model handed to an Estimator.
// Build one with NewCoefficients or DefaultCoefficients; the zero value has no tables.
type Coefficients struct {
	tables         map[entities.ProjectType]Table
	overhead       float64
	transportation float64
}

// NewCoefficients validates and copies the given tables.
func NewCoefficients(tables map[entities.ProjectType]Table, overhead, transportation float64) (Coefficients, error) {
	if !validPercentage(overhead) {
		return Coefficients{}, fmt.Errorf("invalid overhead percentage %v", overhead)
	}
	if !validPercentage(transportation) {
		return Coefficients{}, fmt.Errorf("invalid transportation percentage %v", transportation)
	}

	copied := make(map[entities.ProjectType]Table, len(tables))
	for pt, t := range tables {
		if !pt.IsValid() {
			return Coefficients{}, fmt.Errorf("unknown project type %q in coefficient tables", pt)
		}
		for _, f := range append(append([]Factor(nil), t.Materials...), t.Labor...) {
			if f.Category == "" || math.IsNaN(f.PerArea) || math.IsInf(f.PerArea, 0) || f.PerArea < 0 {
				return Coefficients{}, fmt.Errorf("invalid factor %+v for %s", f, pt)
			}
		}
		copied[pt] = t.clone()
	}

	return Coefficients{tables: copied, overhead: overhead, transportation: transportation}, nil
}

// Table returns a copy of the table for pt.
func (c Coefficients) Table(pt entities.ProjectType) (Table, bool) {
	t, ok := c.tables[pt]
	if !ok {
		return Table{}, false
	}
	return t.clone(), true
}

func (c Coefficients) OverheadPercentage() float64       { return c.overhead }
func (c Coefficients) TransportationPercentage() float64 { return c.transportation }

func validPercentage(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}

// DefaultCoefficients returns the standard model. Commercial, industrial and
// infrastructure projects scale every factor up from residential.
func DefaultCoefficients() Coefficients {
	c, err := NewCoefficients(map[entities.ProjectType]Table{
		entities.ProjectTypeResidential: {
			Materials: []Factor{
				{Category: "cement", PerArea: 0.4},      // bags
				{Category: "steel", PerArea: 3.5},       // kg
				{Category: "bricks", PerArea: 8},        // pieces
				{Category: "sand", PerArea: 0.02},       // cu.m
				{Category: "aggregate", PerArea: 0.025}, // cu.m
			},
			Labor: []Factor{
				{Category: "skilled", PerArea: 0.5},
				{Category: "unskilled", PerArea: 1.0},
				{Category: "supervisor", PerArea: 0.2},
			},
		},
		entities.ProjectTypeCommercial: {
			Materials: []Factor{
				{Category: "cement", PerArea: 0.45},
				{Category: "steel", PerArea: 4.0},
				{Category: "bricks", PerArea: 9},
				{Category: "sand", PerArea: 0.022},
				{Category: "aggregate", PerArea: 0.028},
			},
			Labor: []Factor{
				{Category: "skilled", PerArea: 0.6},
				{Category: "unskilled", PerArea: 1.2},
				{Category: "supervisor", PerArea: 0.25},
			},
		},
		entities.ProjectTypeIndustrial: {
			Materials: []Factor{
				{Category: "cement", PerArea: 0.5},
				{Category: "steel", PerArea: 4.5},
				{Category: "bricks", PerArea: 10},
				{Category: "sand", PerArea: 0.025},
				{Category: "aggregate", PerArea: 0.03},
			},
			Labor: []Factor{
				{Category: "skilled", PerArea: 0.7},
				{Category: "unskilled", PerArea: 1.4},
				{Category: "supervisor", PerArea: 0.3},
			},
		},
		entities.ProjectTypeInfrastructure: {
			Materials: []Factor{
				{Category: "cement", PerArea: 0.55},
				{Category: "steel", PerArea: 5.0},
				{Category: "bricks", PerArea: 11},
				{Category: "sand", PerArea: 0.028},
				{Category: "aggregate", PerArea: 0.032},
			},
			Labor: []Factor{
				{Category: "skilled", PerArea: 0.8},
				{Category: "unskilled", PerArea: 1.6},
				{Category: "supervisor", PerArea: 0.35},
			},
		},
	}, DefaultOverheadPercentage, DefaultTransportationPercentage)
	if err != nil {
		panic(err)
	}
	return c
}
