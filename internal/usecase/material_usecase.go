package usecase

//go:generate mockgen -source=material_usecase.go -destination=../adapter/http/handlers/mocks/mock_material_usecase.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"brickonomics/internal/domain/entities"
	"brickonomics/internal/usecase/interfaces"
	"brickonomics/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidMaterial   = errors.New("invalid material")
	ErrInvalidMaterialID = errors.New("invalid material id")
	ErrMaterialNotFound  = errors.New("material not found")
)

// MaterialInput carries the writable fields of a material. Category is
// stored as given (trimmed); it must match the estimator's vocabulary to be
// priced.
type MaterialInput struct {
	Name        string
	Category    string
	Unit        string
	BaseRate    float64
	Description string
}

type IMaterialUseCase interface {
	List(ctx context.Context, category string) ([]entities.Material, error)
	Get(ctx context.Context, id string) (entities.Material, error)
	Create(ctx context.Context, in MaterialInput) (entities.Material, error)
	Update(ctx context.Context, id string, in MaterialInput) (entities.Material, error)
	Delete(ctx context.Context, id string) error
}

type MaterialUseCase struct {
	repo interfaces.IMaterialRepository
	now  func() time.Time
}

var _ IMaterialUseCase = (*MaterialUseCase)(nil)

func NewMaterialUseCase(repo interfaces.IMaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *MaterialUseCase) List(ctx context.Context, category string) ([]entities.Material, error) {
	items, err := u.repo.List(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.Material{}
	}
	return items, nil
}

func (u *MaterialUseCase) Get(ctx context.Context, id string) (entities.Material, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Material{}, ErrInvalidMaterialID
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}
	if m.ID == "" {
		return entities.Material{}, ErrMaterialNotFound
	}
	return m, nil
}

func (u *MaterialUseCase) Create(ctx context.Context, in MaterialInput) (entities.Material, error) {
	m, err := buildMaterial(in)
	if err != nil {
		return entities.Material{}, err
	}

	now := u.now()
	m.ID = uuid.NewString()
	m.CreatedAt = now
	m.UpdatedAt = now

	created, err := u.repo.Create(ctx, m)
	if err != nil {
		return entities.Material{}, err
	}
	logger.L().Info("material created", zap.String("material_id", created.ID), zap.String("category", created.Category))
	return created, nil
}

func (u *MaterialUseCase) Update(ctx context.Context, id string, in MaterialInput) (entities.Material, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Material{}, ErrInvalidMaterialID
	}
	m, err := buildMaterial(in)
	if err != nil {
		return entities.Material{}, err
	}
	m.ID = id
	m.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, m)
	if err != nil {
		return entities.Material{}, err
	}
	if updated.ID == "" {
		return entities.Material{}, ErrMaterialNotFound
	}
	logger.L().Info("material updated", zap.String("material_id", updated.ID))
	return updated, nil
}

func (u *MaterialUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidMaterialID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMaterialNotFound
	}
	logger.L().Info("material deleted", zap.String("material_id", id))
	return nil
}

func buildMaterial(in MaterialInput) (entities.Material, error) {
	name, err := requireText("name", in.Name)
	if err != nil {
		return entities.Material{}, fmt.Errorf("%w: %v", ErrInvalidMaterial, err)
	}
	category, err := requireText("category", in.Category)
	if err != nil {
		return entities.Material{}, fmt.Errorf("%w: %v", ErrInvalidMaterial, err)
	}
	unit, err := requireText("unit", in.Unit)
	if err != nil {
		return entities.Material{}, fmt.Errorf("%w: %v", ErrInvalidMaterial, err)
	}
	if err := validateRate(in.BaseRate); err != nil {
		return entities.Material{}, fmt.Errorf("%w: %v", ErrInvalidMaterial, err)
	}

	return entities.Material{
		Name:        name,
		Category:    category,
		Unit:        unit,
		BaseRate:    in.BaseRate,
		Description: strings.TrimSpace(in.Description),
	}, nil
}
