package usecase

//go:generate mockgen -source=labor_rate_usecase.go -destination=../adapter/http/handlers/mocks/mock_labor_rate_usecase.go -package=mocks

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
	ErrInvalidLaborRate   = errors.New("invalid labor rate")
	ErrInvalidLaborRateID = errors.New("invalid labor rate id")
	ErrLaborRateNotFound  = errors.New("labor rate not found")
)

// LaborRateInput carries the writable fields of a labor rate. Unit defaults
// to entities.DefaultLaborUnit.
type LaborRateInput struct {
	Name        string
	Category    string
	Unit        string
	BaseRate    float64
	Location    string
	Description string
}

type ILaborRateUseCase interface {
	List(ctx context.Context, filter interfaces.LaborRateFilter) ([]entities.LaborRate, error)
	Get(ctx context.Context, id string) (entities.LaborRate, error)
	Create(ctx context.Context, in LaborRateInput) (entities.LaborRate, error)
	Update(ctx context.Context, id string, in LaborRateInput) (entities.LaborRate, error)
	Delete(ctx context.Context, id string) error
}

type LaborRateUseCase struct {
	repo interfaces.ILaborRateRepository
	now  func() time.Time
}

var _ ILaborRateUseCase = (*LaborRateUseCase)(nil)

func NewLaborRateUseCase(repo interfaces.ILaborRateRepository) *LaborRateUseCase {
	return &LaborRateUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *LaborRateUseCase) List(ctx context.Context, filter interfaces.LaborRateFilter) ([]entities.LaborRate, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	filter.Location = strings.TrimSpace(filter.Location)

	items, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.LaborRate{}
	}
	return items, nil
}

func (u *LaborRateUseCase) Get(ctx context.Context, id string) (entities.LaborRate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LaborRate{}, ErrInvalidLaborRateID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.LaborRate{}, err
	}
	if l.ID == "" {
		return entities.LaborRate{}, ErrLaborRateNotFound
	}
	return l, nil
}

func (u *LaborRateUseCase) Create(ctx context.Context, in LaborRateInput) (entities.LaborRate, error) {
	l, err := buildLaborRate(in)
	if err != nil {
		return entities.LaborRate{}, err
	}

	now := u.now()
	l.ID = uuid.NewString()
	l.CreatedAt = now
	l.UpdatedAt = now

	created, err := u.repo.Create(ctx, l)
	if err != nil {
		return entities.LaborRate{}, err
	}
	logger.L().Info("labor rate created", zap.String("labor_rate_id", created.ID), zap.String("category", created.Category))
	return created, nil
}

func (u *LaborRateUseCase) Update(ctx context.Context, id string, in LaborRateInput) (entities.LaborRate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LaborRate{}, ErrInvalidLaborRateID
	}
	l, err := buildLaborRate(in)
	if err != nil {
		return entities.LaborRate{}, err
	}
	l.ID = id
	l.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, l)
	if err != nil {
		return entities.LaborRate{}, err
	}
	if updated.ID == "" {
		return entities.LaborRate{}, ErrLaborRateNotFound
	}
	logger.L().Info("labor rate updated", zap.String("labor_rate_id", updated.ID))
	return updated, nil
}

func (u *LaborRateUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidLaborRateID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrLaborRateNotFound
	}
	logger.L().Info("labor rate deleted", zap.String("labor_rate_id", id))
	return nil
}

func buildLaborRate(in LaborRateInput) (entities.LaborRate, error) {
	name, err := requireText("name", in.Name)
	if err != nil {
		return entities.LaborRate{}, fmt.Errorf("%w: %v", ErrInvalidLaborRate, err)
	}
	category, err := requireText("category", in.Category)
	if err != nil {
		return entities.LaborRate{}, fmt.Errorf("%w: %v", ErrInvalidLaborRate, err)
	}
	if err := validateRate(in.BaseRate); err != nil {
		return entities.LaborRate{}, fmt.Errorf("%w: %v", ErrInvalidLaborRate, err)
	}

	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = entities.DefaultLaborUnit
	}

	return entities.LaborRate{
		Name:        name,
		Category:    category,
		Unit:        unit,
		BaseRate:    in.BaseRate,
		Location:    strings.TrimSpace(in.Location),
		Description: strings.TrimSpace(in.Description),
	}, nil
}
