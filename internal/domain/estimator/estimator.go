// Package estimator computes itemized construction cost estimates from a
// linear per-square-foot model.
package estimator

import (
	"errors"
	"fmt"
	"math"

	"brickonomics/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidProjectType   = errors.New("invalid project type")
	ErrInvalidArea          = errors.New("invalid area")
	ErrMissingReferenceData = errors.New("missing reference data")
	ErrInternalComputation  = errors.New("internal computation error")
)

const moneyPlaces = 2

// ReferenceData is the catalog snapshot an estimate is priced against.
// A nil slice means the collection could not be retrieved; an empty slice
// is a valid, empty catalog.
type ReferenceData struct {
	Materials  []entities.Material
	LaborRates []entities.LaborRate
}

// Estimator prices projects against an immutable Coefficients model.
// It holds no mutable state and is safe for concurrent use.
type Estimator struct {
	coeffs Coefficients
}

// New returns an Estimator over the given coefficient tables.
func New(c Coefficients) *Estimator {
	return &Estimator{coeffs: c}
}

// NewDefault returns an Estimator over DefaultCoefficients.
func NewDefault() *Estimator {
	return New(DefaultCoefficients())
}

// Estimate computes the cost breakdown for a project of the given type and area.
//
// Categories in the coefficient table with no matching reference record are
// skipped. When several records share a category, the first one wins.
func (e *Estimator) Estimate(pt entities.ProjectType, area float64, ref ReferenceData) (entities.CostEstimate, error) {
	table, ok := e.coeffs.Table(pt)
	if !ok {
		return entities.CostEstimate{}, fmt.Errorf("%w: %q", ErrInvalidProjectType, pt)
	}
	if math.IsNaN(area) || math.IsInf(area, 0) || area <= 0 {
		return entities.CostEstimate{}, fmt.Errorf("%w: %v", ErrInvalidArea, area)
	}
	if ref.Materials == nil || ref.LaborRates == nil {
		return entities.CostEstimate{}, ErrMissingReferenceData
	}

	areaD := decimal.NewFromFloat(area)

	materials := make([]entities.MaterialLine, 0, len(table.Materials))
	materialTotal := decimal.Zero
	for _, f := range table.Materials {
		m, found := findMaterial(ref.Materials, f.Category)
		if !found {
			continue
		}
		if !finite(m.BaseRate) {
			return entities.CostEstimate{}, fmt.Errorf("%w: material %q has rate %v", ErrInternalComputation, m.Name, m.BaseRate)
		}

		quantity := decimal.NewFromFloat(f.PerArea).Mul(areaD)
		total := quantity.Mul(decimal.NewFromFloat(m.BaseRate)).Round(moneyPlaces)
		materialTotal = materialTotal.Add(total)

		materials = append(materials, entities.MaterialLine{
			Category: f.Category,
			Name:     m.Name,
			Quantity: quantity.Round(moneyPlaces).InexactFloat64(),
			Unit:     m.Unit,
			Rate:     m.BaseRate,
			Total:    total.InexactFloat64(),
		})
	}

	labor := make([]entities.LaborLine, 0, len(table.Labor))
	laborTotal := decimal.Zero
	for _, f := range table.Labor {
		l, found := findLaborRate(ref.LaborRates, f.Category)
		if !found {
			continue
		}
		if !finite(l.BaseRate) {
			return entities.CostEstimate{}, fmt.Errorf("%w: labor rate %q has rate %v", ErrInternalComputation, l.Name, l.BaseRate)
		}

		hours := decimal.NewFromFloat(f.PerArea).Mul(areaD)
		total := hours.Mul(decimal.NewFromFloat(l.BaseRate)).Round(moneyPlaces)
		laborTotal = laborTotal.Add(total)

		labor = append(labor, entities.LaborLine{
			Category: f.Category,
			Role:     l.Name,
			Hours:    hours.Round(moneyPlaces).InexactFloat64(),
			Rate:     l.BaseRate,
			Total:    total.InexactFloat64(),
		})
	}

	subtotal := materialTotal.Add(laborTotal)
	overhead := subtotal.Mul(decimal.NewFromFloat(e.coeffs.OverheadPercentage())).Round(moneyPlaces)
	transportation := subtotal.Mul(decimal.NewFromFloat(e.coeffs.TransportationPercentage())).Round(moneyPlaces)
	totalCost := subtotal.Add(overhead).Add(transportation).Round(moneyPlaces)

	return entities.CostEstimate{
		ProjectType:    pt,
		Area:           area,
		Materials:      materials,
		Labor:          labor,
		MaterialTotal:  materialTotal.InexactFloat64(),
		LaborTotal:     laborTotal.InexactFloat64(),
		Subtotal:       subtotal.InexactFloat64(),
		Overhead:       overhead.InexactFloat64(),
		Transportation: transportation.InexactFloat64(),
		TotalCost:      totalCost.InexactFloat64(),
	}, nil
}

func findMaterial(materials []entities.Material, category string) (entities.Material, bool) {
	for _, m := range materials {
		if m.Category == category {
			return m, true
		}
	}
	return entities.Material{}, false
}

func findLaborRate(rates []entities.LaborRate, category string) (entities.LaborRate, bool) {
	for _, l := range rates {
		if l.Category == category {
			return l, true
		}
	}
	return entities.LaborRate{}, false
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Round rounds v to two decimal places, half away from zero.
func Round(v float64) float64 {
	if !finite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(moneyPlaces).InexactFloat64()
}
