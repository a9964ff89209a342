// Package seed loads the default reference catalog. Running it twice is safe:
// a category that already has a record is left alone.
package seed

import (
	"context"
	"fmt"
	"time"

	"brickonomics/internal/domain/entities"
	"brickonomics/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	Skipped int
}

// DefaultMaterials is the starter material catalog, one record per estimator category.
func DefaultMaterials() []entities.Material {
	return []entities.Material{
		{Name: "Portland Cement", Category: "cement", Unit: "bag", BaseRate: 350, Description: "Standard grade Portland cement"},
		{Name: "Steel Reinforcement", Category: "steel", Unit: "kg", BaseRate: 65, Description: "Fe500 grade steel reinforcement bars"},
		{Name: "Red Clay Bricks", Category: "bricks", Unit: "piece", BaseRate: 8, Description: "Standard size red clay bricks"},
		{Name: "River Sand", Category: "sand", Unit: "cu.m", BaseRate: 2800, Description: "Fine river sand for construction"},
		{Name: "Crushed Stone Aggregate", Category: "aggregate", Unit: "cu.m", BaseRate: 2200, Description: "20mm crushed stone aggregate"},
	}
}

// DefaultLaborRates is the starter labor catalog. Rates carry no location.
func DefaultLaborRates() []entities.LaborRate {
	return []entities.LaborRate{
		{Name: "Skilled Mason", Category: "skilled", Unit: entities.DefaultLaborUnit, BaseRate: 800, Description: "Experienced mason for brick and concrete work"},
		{Name: "Unskilled Labor", Category: "unskilled", Unit: entities.DefaultLaborUnit, BaseRate: 500, Description: "General construction labor"},
		{Name: "Site Supervisor", Category: "supervisor", Unit: entities.DefaultLaborUnit, BaseRate: 1200, Description: "Construction site supervisor"},
	}
}

// Run inserts every default whose category is still empty.
func Run(ctx context.Context, materials interfaces.IMaterialRepository, laborRates interfaces.ILaborRateRepository) (Stats, error) {
	stats := Stats{}
	now := time.Now().UTC()

	// Records get increasing timestamps so list order follows declaration order.
	for i, m := range DefaultMaterials() {
		existing, err := materials.List(ctx, m.Category)
		if err != nil {
			return stats, fmt.Errorf("check %s materials: %w", m.Category, err)
		}
		if len(existing) > 0 {
			stats.Skipped++
			continue
		}

		m.ID = uuid.NewString()
		m.CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
		m.UpdatedAt = m.CreatedAt
		if _, err := materials.Create(ctx, m); err != nil {
			return stats, fmt.Errorf("insert default material %s: %w", m.Name, err)
		}
		stats.Inserts++
	}

	for i, l := range DefaultLaborRates() {
		existing, err := laborRates.List(ctx, interfaces.LaborRateFilter{Category: l.Category})
		if err != nil {
			return stats, fmt.Errorf("check %s labor rates: %w", l.Category, err)
		}
		if len(existing) > 0 {
			stats.Skipped++
			continue
		}

		l.ID = uuid.NewString()
		l.CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
		l.UpdatedAt = l.CreatedAt
		if _, err := laborRates.Create(ctx, l); err != nil {
			return stats, fmt.Errorf("insert default labor rate %s: %w", l.Name, err)
		}
		stats.Inserts++
	}

	return stats, nil
}
