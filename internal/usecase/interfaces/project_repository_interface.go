package interfaces

//go:generate mockgen -source=project_repository_interface.go -destination=mocks/mock_project_repository_interface.go -package=mock_interfaces

import (
	"context"

	"brickonomics/internal/domain/entities"
)

// IProjectRepository abstracts the relational store for projects and their
// cost analysis.
//
// CreateWithCostAnalysis must persist both rows atomically.
type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	CreateWithCostAnalysis(ctx context.Context, p entities.Project, ca entities.CostAnalysis) (entities.Project, entities.CostAnalysis, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.ProjectWithAnalysis, error)
	GetCostAnalysisByProjectID(ctx context.Context, projectID string) (entities.CostAnalysis, error)
}
