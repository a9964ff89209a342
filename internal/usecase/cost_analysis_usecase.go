package usecase

//go:generate mockgen -source=cost_analysis_usecase.go -destination=../adapter/http/handlers/mocks/mock_cost_analysis_usecase.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"brickonomics/internal/domain/entities"
	"brickonomics/internal/domain/estimator"
	"brickonomics/internal/usecase/interfaces"
	"brickonomics/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrCostAnalysisNotFound = errors.New("cost analysis not found")

// OptimizationReport is a project, its cost analysis and the savings
// suggested for it.
type OptimizationReport struct {
	Project       entities.Project
	CostAnalysis  entities.CostAnalysis
	Optimizations []entities.Optimization
}

// ICostAnalysisUseCase creates projects together with their initial cost
// analysis and reads analyses back.
type ICostAnalysisUseCase interface {
	CreateWithProject(ctx context.Context, in ProjectInput) (entities.ProjectWithAnalysis, error)
	GetByProjectID(ctx context.Context, projectID string) (entities.ProjectWithAnalysis, error)
	Optimize(ctx context.Context, projectID string) (OptimizationReport, error)
}

// EstimatePricer prices a project without recording it in the estimate
// history. *EstimateUseCase implements it.
type EstimatePricer interface {
	PriceEstimate(ctx context.Context, cmd EstimateCommand) (entities.CostEstimate, error)
}

type CostAnalysisUseCase struct {
	projects interfaces.IProjectRepository
	pricer   EstimatePricer
	now      func() time.Time
}

var (
	_ ICostAnalysisUseCase = (*CostAnalysisUseCase)(nil)
	_ EstimatePricer       = (*EstimateUseCase)(nil)
)

func NewCostAnalysisUseCase(projects interfaces.IProjectRepository, pricer EstimatePricer) *CostAnalysisUseCase {
	return &CostAnalysisUseCase{
		projects: projects,
		pricer:   pricer,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateWithProject prices the project with the estimator and stores the
// project and its cost analysis in one transaction. The cost analysis is the
// only record written; no estimate snapshot is kept for it.
func (u *CostAnalysisUseCase) CreateWithProject(ctx context.Context, in ProjectInput) (entities.ProjectWithAnalysis, error) {
	now := u.now()
	p, err := buildProject(in, now)
	if err != nil {
		return entities.ProjectWithAnalysis{}, err
	}

	est, err := u.pricer.PriceEstimate(ctx, EstimateCommand{
		ProjectType: string(p.ProjectType),
		Area:        p.TotalArea,
		Location:    p.Location,
	})
	if err != nil {
		return entities.ProjectWithAnalysis{}, err
	}

	ca := costAnalysisFromEstimate(p.ID, est, now)
	createdProject, createdAnalysis, err := u.projects.CreateWithCostAnalysis(ctx, p, ca)
	if err != nil {
		logger.L().Error("create project with cost analysis failed", zap.String("project_id", p.ID), zap.Error(err))
		return entities.ProjectWithAnalysis{}, fmt.Errorf("create project with cost analysis: %w", err)
	}

	logger.L().Info("cost analysis created",
		zap.String("project_id", createdProject.ID),
		zap.Float64("total_cost", createdAnalysis.TotalCost),
	)
	return entities.ProjectWithAnalysis{Project: createdProject, CostAnalysis: &createdAnalysis}, nil
}

func (u *CostAnalysisUseCase) GetByProjectID(ctx context.Context, projectID string) (entities.ProjectWithAnalysis, error) {
	p, ca, err := u.load(ctx, projectID)
	if err != nil {
		return entities.ProjectWithAnalysis{}, err
	}
	return entities.ProjectWithAnalysis{Project: p, CostAnalysis: &ca}, nil
}

func (u *CostAnalysisUseCase) Optimize(ctx context.Context, projectID string) (OptimizationReport, error) {
	p, ca, err := u.load(ctx, projectID)
	if err != nil {
		return OptimizationReport{}, err
	}
	return OptimizationReport{
		Project:       p,
		CostAnalysis:  ca,
		Optimizations: estimator.Optimizations(p.ProjectType, ca),
	}, nil
}

func (u *CostAnalysisUseCase) load(ctx context.Context, projectID string) (entities.Project, entities.CostAnalysis, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Project{}, entities.CostAnalysis{}, ErrInvalidProjectID
	}

	p, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.Project{}, entities.CostAnalysis{}, err
	}
	if p.ID == "" {
		return entities.Project{}, entities.CostAnalysis{}, ErrProjectNotFound
	}

	ca, err := u.projects.GetCostAnalysisByProjectID(ctx, projectID)
	if err != nil {
		return entities.Project{}, entities.CostAnalysis{}, err
	}
	if ca.ID == "" {
		return entities.Project{}, entities.CostAnalysis{}, ErrCostAnalysisNotFound
	}
	return p, ca, nil
}

func costAnalysisFromEstimate(projectID string, est entities.CostEstimate, now time.Time) entities.CostAnalysis {
	return entities.CostAnalysis{
		ID:                 uuid.NewString(),
		ProjectID:          projectID,
		MaterialCost:       est.MaterialTotal,
		LaborCost:          est.LaborTotal,
		TransportationCost: est.Transportation,
		OverheadCost:       est.Overhead,
		TotalCost:          est.TotalCost,
		CostPerSqft:        estimator.Round(est.TotalCost / est.Area),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
