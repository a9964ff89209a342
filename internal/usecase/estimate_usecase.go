package usecase

//go:generate mockgen -source=estimate_usecase.go -destination=../adapter/http/handlers/mocks/mock_estimate_usecase.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"brickonomics/internal/domain/entities"
	"brickonomics/internal/domain/estimator"
	"brickonomics/internal/usecase/interfaces"
	"brickonomics/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidProjectType   = estimator.ErrInvalidProjectType
	ErrInvalidArea          = estimator.ErrInvalidArea
	ErrMissingReferenceData = estimator.ErrMissingReferenceData
	ErrInternalComputation  = estimator.ErrInternalComputation
	ErrInvalidLocation      = errors.New("invalid location")
	ErrInvalidEstimateID    = errors.New("invalid estimate id")
	ErrEstimateNotFound     = errors.New("estimate not found")
)

// EstimateCommand is the input of an estimation request. Location does not
// change the coefficient tables; it selects which labor rates apply.
type EstimateCommand struct {
	ProjectType string
	Area        float64
	Location    string
}

// IEstimateUseCase exposes cost estimation and the estimate history.
type IEstimateUseCase interface {
	GenerateEstimate(ctx context.Context, cmd EstimateCommand) (entities.CostEstimate, error)
	ListEstimates(ctx context.Context, projectType string) ([]entities.CostEstimate, error)
	GetEstimate(ctx context.Context, id string) (entities.CostEstimate, error)
}

type EstimateUseCase struct {
	materials  interfaces.IMaterialRepository
	laborRates interfaces.ILaborRateRepository
	history    interfaces.IEstimateRepository
	estimator  *estimator.Estimator
	now        func() time.Time
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	materials interfaces.IMaterialRepository,
	laborRates interfaces.ILaborRateRepository,
	history interfaces.IEstimateRepository,
	est *estimator.Estimator,
) *EstimateUseCase {
	if est == nil {
		est = estimator.NewDefault()
	}
	return &EstimateUseCase{
		materials:  materials,
		laborRates: laborRates,
		history:    history,
		estimator:  est,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// GenerateEstimate prices the command and records the result in the
// estimate history. Nothing is returned unless every step succeeds.
func (u *EstimateUseCase) GenerateEstimate(ctx context.Context, cmd EstimateCommand) (entities.CostEstimate, error) {
	est, err := u.PriceEstimate(ctx, cmd)
	if err != nil {
		return entities.CostEstimate{}, err
	}

	if u.history != nil {
		saved, err := u.history.Create(ctx, est)
		if err != nil {
			logger.L().Error("store estimate snapshot failed", zap.String("estimate_id", est.ID), zap.Error(err))
			return entities.CostEstimate{}, fmt.Errorf("store estimate: %w", err)
		}
		est = saved
	}

	logger.L().Info("estimate generated",
		zap.String("estimate_id", est.ID),
		zap.String("project_type", string(est.ProjectType)),
		zap.Float64("area", est.Area),
		zap.String("location", est.Location),
		zap.Int("material_lines", len(est.Materials)),
		zap.Int("labor_lines", len(est.Labor)),
		zap.Float64("total_cost", est.TotalCost),
	)
	return est, nil
}

// PriceEstimate validates the command and prices it against the current
// reference data. It does not touch the estimate history.
func (u *EstimateUseCase) PriceEstimate(ctx context.Context, cmd EstimateCommand) (entities.CostEstimate, error) {
	pt, err := entities.ParseProjectType(cmd.ProjectType)
	if err != nil {
		return entities.CostEstimate{}, fmt.Errorf("%w: %q", ErrInvalidProjectType, cmd.ProjectType)
	}
	if math.IsNaN(cmd.Area) || math.IsInf(cmd.Area, 0) || cmd.Area <= 0 {
		return entities.CostEstimate{}, fmt.Errorf("%w: must be greater than zero", ErrInvalidArea)
	}
	location := strings.TrimSpace(cmd.Location)
	if location == "" {
		return entities.CostEstimate{}, ErrInvalidLocation
	}

	ref, err := u.fetchReferenceData(ctx, location)
	if err != nil {
		return entities.CostEstimate{}, err
	}

	est, err := u.estimator.Estimate(pt, cmd.Area, ref)
	if err != nil {
		logger.L().Error("estimate computation failed",
			zap.String("project_type", string(pt)),
			zap.Float64("area", cmd.Area),
			zap.Error(err),
		)
		return entities.CostEstimate{}, err
	}

	est.ID = uuid.NewString()
	est.Location = location
	est.CreatedAt = u.now()
	return est, nil
}

func (u *EstimateUseCase) fetchReferenceData(ctx context.Context, location string) (estimator.ReferenceData, error) {
	if u.materials == nil || u.laborRates == nil {
		return estimator.ReferenceData{}, fmt.Errorf("%w: reference store not configured", ErrMissingReferenceData)
	}

	materials, err := u.materials.List(ctx, "")
	if err != nil {
		logger.L().Error("list materials failed", zap.Error(err))
		return estimator.ReferenceData{}, fmt.Errorf("%w: list materials: %w", ErrMissingReferenceData, err)
	}
	rates, err := u.laborRates.List(ctx, interfaces.LaborRateFilter{})
	if err != nil {
		logger.L().Error("list labor rates failed", zap.Error(err))
		return estimator.ReferenceData{}, fmt.Errorf("%w: list labor rates: %w", ErrMissingReferenceData, err)
	}

	if materials == nil {
		materials = []entities.Material{}
	}
	return estimator.ReferenceData{
		Materials:  materials,
		LaborRates: rankLaborRates(rates, location),
	}, nil
}

// rankLaborRates orders rates for the estimator's first-match join: rates
// bound to location first, then location-less rates. Rates bound to other
// locations are kept only for categories nothing else covers, so a location
// never removes a category from the estimate.
func rankLaborRates(rates []entities.LaborRate, location string) []entities.LaborRate {
	local := make([]entities.LaborRate, 0, len(rates))
	global := make([]entities.LaborRate, 0, len(rates))
	var other []entities.LaborRate
	covered := make(map[string]struct{}, len(rates))
	for _, r := range rates {
		switch {
		case r.IsLocal(location):
			local = append(local, r)
			covered[r.Category] = struct{}{}
		case r.AppliesTo(location):
			global = append(global, r)
			covered[r.Category] = struct{}{}
		default:
			other = append(other, r)
		}
	}

	ranked := append(local, global...)
	for _, r := range other {
		if _, ok := covered[r.Category]; !ok {
			ranked = append(ranked, r)
		}
	}
	return ranked
}

func (u *EstimateUseCase) ListEstimates(ctx context.Context, projectType string) ([]entities.CostEstimate, error) {
	var pt entities.ProjectType
	if projectType != "" {
		parsed, err := entities.ParseProjectType(projectType)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidProjectType, projectType)
		}
		pt = parsed
	}
	if u.history == nil {
		return []entities.CostEstimate{}, nil
	}

	items, err := u.history.List(ctx, pt)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.CostEstimate{}
	}
	return items, nil
}

func (u *EstimateUseCase) GetEstimate(ctx context.Context, id string) (entities.CostEstimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CostEstimate{}, ErrInvalidEstimateID
	}
	if u.history == nil {
		return entities.CostEstimate{}, ErrEstimateNotFound
	}

	e, err := u.history.GetByID(ctx, id)
	if err != nil {
		return entities.CostEstimate{}, err
	}
	if e.ID == "" {
		return entities.CostEstimate{}, ErrEstimateNotFound
	}
	return e, nil
}
