package interfaces

//go:generate mockgen -source=labor_rate_repository_interface.go -destination=mocks/mock_labor_rate_repository_interface.go -package=mock_interfaces

import (
	"context"

	"brickonomics/internal/domain/entities"
)

// LaborRateFilter narrows List. Empty fields match everything; Location
// matches the stored location exactly.
type LaborRateFilter struct {
	Category string
	Location string
}

// ILaborRateRepository is the reference-data contract for labor rates.
type ILaborRateRepository interface {
	List(ctx context.Context, filter LaborRateFilter) ([]entities.LaborRate, error)
	GetByID(ctx context.Context, id string) (entities.LaborRate, error)
	Create(ctx context.Context, l entities.LaborRate) (entities.LaborRate, error)
	Update(ctx context.Context, l entities.LaborRate) (entities.LaborRate, error)
	Delete(ctx context.Context, id string) (bool, error)
}
