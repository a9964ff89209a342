package interfaces

//go:generate mockgen -source=material_repository_interface.go -destination=mocks/mock_material_repository_interface.go -package=mock_interfaces

import (
	"context"

	"brickonomics/internal/domain/entities"
)

// IMaterialRepository is the reference-data contract for materials.
//
// Implementations (DynamoDB, SQLite) are interchangeable. Lookups return the
// zero value, not an error, when the record does not exist.
type IMaterialRepository interface {
	List(ctx context.Context, category string) ([]entities.Material, error)
	GetByID(ctx context.Context, id string) (entities.Material, error)
	Create(ctx context.Context, m entities.Material) (entities.Material, error)
	Update(ctx context.Context, m entities.Material) (entities.Material, error)
	Delete(ctx context.Context, id string) (bool, error)
}
