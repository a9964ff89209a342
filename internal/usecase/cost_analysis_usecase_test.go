package usecase

import (
	"context"
	"errors"
	"testing"

	"brickonomics/internal/domain/entities"
	"brickonomics/internal/usecase/interfaces"
	mock_interfaces "brickonomics/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type costAnalysisDeps struct {
	materials *mock_interfaces.MockIMaterialRepository
	rates     *mock_interfaces.MockILaborRateRepository
	history   *mock_interfaces.MockIEstimateRepository
	projects  *mock_interfaces.MockIProjectRepository
}

func newCostAnalysisUseCase(t *testing.T) (*CostAnalysisUseCase, costAnalysisDeps) {
	ctrl := gomock.NewController(t)
	d := costAnalysisDeps{
		materials: mock_interfaces.NewMockIMaterialRepository(ctrl),
		rates:     mock_interfaces.NewMockILaborRateRepository(ctrl),
		history:   mock_interfaces.NewMockIEstimateRepository(ctrl),
		projects:  mock_interfaces.NewMockIProjectRepository(ctrl),
	}
	estimates := NewEstimateUseCase(d.materials, d.rates, d.history, nil)
	return NewCostAnalysisUseCase(d.projects, estimates), d
}

func TestCostAnalysisUseCase_CreateWithProject(t *testing.T) {
	t.Run("prices project from estimator", func(t *testing.T) {
		uc, d := newCostAnalysisUseCase(t)

		d.materials.EXPECT().List(gomock.Any(), "").Return(defaultMaterials(), nil)
		d.rates.EXPECT().List(gomock.Any(), interfaces.LaborRateFilter{}).Return(defaultLaborRates(), nil)
		d.history.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
		d.projects.EXPECT().CreateWithCostAnalysis(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project, ca entities.CostAnalysis) (entities.Project, entities.CostAnalysis, error) {
				if ca.ProjectID != p.ID {
					t.Fatalf("analysis not linked to project: %q vs %q", ca.ProjectID, p.ID)
				}
				return p, ca, nil
			},
		)

		in := validProjectInput()
		in.TotalArea = 1000
		res, err := uc.CreateWithProject(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ca := res.CostAnalysis
		if ca == nil {
			t.Fatalf("expected cost analysis")
		}
		if ca.MaterialCost != 542500 || ca.LaborCost != 1140000 || ca.OverheadCost != 252375 ||
			ca.TransportationCost != 168250 || ca.TotalCost != 2103125 {
			t.Fatalf("unexpected analysis: %+v", ca)
		}
		if ca.CostPerSqft != 2103.13 {
			t.Fatalf("unexpected cost per sqft %v", ca.CostPerSqft)
		}
	})

	t.Run("invalid input never touches stores", func(t *testing.T) {
		uc, _ := newCostAnalysisUseCase(t)
		in := validProjectInput()
		in.ProjectType = "villa"
		if _, err := uc.CreateWithProject(context.Background(), in); !errors.Is(err, ErrInvalidProjectType) {
			t.Fatalf("expected ErrInvalidProjectType, got %v", err)
		}
	})

	t.Run("transaction failure leaves no estimate snapshot", func(t *testing.T) {
		uc, d := newCostAnalysisUseCase(t)

		d.materials.EXPECT().List(gomock.Any(), "").Return(defaultMaterials(), nil)
		d.rates.EXPECT().List(gomock.Any(), interfaces.LaborRateFilter{}).Return(defaultLaborRates(), nil)
		d.history.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
		d.projects.EXPECT().CreateWithCostAnalysis(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Project{}, entities.CostAnalysis{}, errors.New("tx failed"))

		res, err := uc.CreateWithProject(context.Background(), validProjectInput())
		if err == nil {
			t.Fatalf("expected error")
		}
		if res.CostAnalysis != nil || res.Project.ID != "" {
			t.Fatalf("expected no partial result, got %+v", res)
		}
	})
}

func TestCostAnalysisUseCase_Read(t *testing.T) {
	project := entities.Project{ID: "p1", ProjectType: entities.ProjectTypeCommercial}
	analysis := entities.CostAnalysis{ID: "c1", ProjectID: "p1", MaterialCost: 1000, LaborCost: 0, TotalCost: 2000}

	t.Run("project not found", func(t *testing.T) {
		uc, d := newCostAnalysisUseCase(t)
		d.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Project{}, nil)

		if _, err := uc.GetByProjectID(context.Background(), "p1"); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("analysis not found", func(t *testing.T) {
		uc, d := newCostAnalysisUseCase(t)
		d.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(project, nil)
		d.projects.EXPECT().GetCostAnalysisByProjectID(gomock.Any(), "p1").Return(entities.CostAnalysis{}, nil)

		if _, err := uc.GetByProjectID(context.Background(), "p1"); !errors.Is(err, ErrCostAnalysisNotFound) {
			t.Fatalf("expected ErrCostAnalysisNotFound, got %v", err)
		}
	})

	t.Run("optimize", func(t *testing.T) {
		uc, d := newCostAnalysisUseCase(t)
		d.projects.EXPECT().GetByID(gomock.Any(), "p1").Return(project, nil)
		d.projects.EXPECT().GetCostAnalysisByProjectID(gomock.Any(), "p1").Return(analysis, nil)

		report, err := uc.Optimize(context.Background(), "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(report.Optimizations) != 2 {
			t.Fatalf("expected material and design suggestions, got %+v", report.Optimizations)
		}
		if report.Optimizations[0].NetSavings != 100 || report.Optimizations[1].NetSavings != 140 {
			t.Fatalf("unexpected savings: %+v", report.Optimizations)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		uc, _ := newCostAnalysisUseCase(t)
		if _, err := uc.Optimize(context.Background(), ""); !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})
}
