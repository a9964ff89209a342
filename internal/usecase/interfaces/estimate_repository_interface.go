package interfaces

//go:generate mockgen -source=estimate_repository_interface.go -destination=mocks/mock_estimate_repository_interface.go -package=mock_interfaces

import (
	"context"

	"brickonomics/internal/domain/entities"
)

// IEstimateRepository stores estimate snapshots. Snapshots are append-only.
//
// List returns every snapshot when projectType is empty, newest first.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.CostEstimate) (entities.CostEstimate, error)
	GetByID(ctx context.Context, id string) (entities.CostEstimate, error)
	List(ctx context.Context, projectType entities.ProjectType) ([]entities.CostEstimate, error)
}
