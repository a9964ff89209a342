package usecase

//go:generate mockgen -source=project_usecase.go -destination=../adapter/http/handlers/mocks/mock_project_usecase.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"brickonomics/internal/domain/entities"
	"brickonomics/internal/usecase/interfaces"
	"brickonomics/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidProject   = errors.New("invalid project")
	ErrInvalidProjectID = errors.New("invalid project id")
	ErrProjectNotFound  = errors.New("project not found")
)

// ProjectInput carries the fields of a new project.
type ProjectInput struct {
	ProjectName       string
	ProjectType       string
	TotalArea         float64
	EstimatedDuration int
	Location          string
	Requirements      string
}

type IProjectUseCase interface {
	CreateProject(ctx context.Context, in ProjectInput) (entities.Project, error)
	ListProjects(ctx context.Context) ([]entities.ProjectWithAnalysis, error)
	GetProject(ctx context.Context, id string) (entities.Project, error)
}

type ProjectUseCase struct {
	repo interfaces.IProjectRepository
	now  func() time.Time
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *ProjectUseCase) CreateProject(ctx context.Context, in ProjectInput) (entities.Project, error) {
	p, err := buildProject(in, u.now())
	if err != nil {
		return entities.Project{}, err
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	logger.L().Info("project created", zap.String("project_id", created.ID), zap.String("project_type", string(created.ProjectType)))
	return created, nil
}

func (u *ProjectUseCase) ListProjects(ctx context.Context) ([]entities.ProjectWithAnalysis, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.ProjectWithAnalysis{}
	}
	return items, nil
}

func (u *ProjectUseCase) GetProject(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

// buildProject validates in and returns a pending project with a fresh ID.
func buildProject(in ProjectInput, now time.Time) (entities.Project, error) {
	name, err := requireText("projectName", in.ProjectName)
	if err != nil {
		return entities.Project{}, fmt.Errorf("%w: %v", ErrInvalidProject, err)
	}
	pt, err := entities.ParseProjectType(in.ProjectType)
	if err != nil {
		return entities.Project{}, fmt.Errorf("%w: %w", ErrInvalidProjectType, err)
	}
	if math.IsNaN(in.TotalArea) || math.IsInf(in.TotalArea, 0) || in.TotalArea <= 0 {
		return entities.Project{}, fmt.Errorf("%w: totalArea must be greater than zero", ErrInvalidArea)
	}
	if in.EstimatedDuration <= 0 {
		return entities.Project{}, fmt.Errorf("%w: estimatedDuration must be greater than zero", ErrInvalidProject)
	}
	location := strings.TrimSpace(in.Location)
	if location == "" {
		return entities.Project{}, ErrInvalidLocation
	}

	return entities.Project{
		ID:                uuid.NewString(),
		ProjectName:       name,
		ProjectType:       pt,
		TotalArea:         in.TotalArea,
		EstimatedDuration: in.EstimatedDuration,
		Location:          location,
		Requirements:      strings.TrimSpace(in.Requirements),
		Status:            entities.ProjectStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}
