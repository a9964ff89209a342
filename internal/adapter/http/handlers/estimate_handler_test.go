package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"brickonomics/internal/adapter/http/handlers/mocks"
	"brickonomics/internal/domain/entities"
	"brickonomics/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newEstimateRouter(uc usecase.IEstimateUseCase) *gin.Engine {
	h := NewEstimateHandler(uc)
	r := gin.New()
	r.POST("/v1/cost-estimate", h.CreateCostEstimate)
	r.GET("/v1/cost-estimates", h.ListCostEstimates)
	r.GET("/v1/cost-estimates/:id", h.GetCostEstimate)
	return r
}

func TestEstimateHandler_CreateCostEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newEstimateRouter(mocks.NewMockIEstimateUseCase(ctrl))

		w := serve(r, http.MethodPost, "/v1/cost-estimate", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "VALIDATION_ERROR" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing area", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newEstimateRouter(mocks.NewMockIEstimateUseCase(ctrl))

		w := serve(r, http.MethodPost, "/v1/cost-estimate", `{"projectType":"residential","location":"Pune"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeBody(t, w)["message"] != "area is required" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid project type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(uc)

		uc.EXPECT().GenerateEstimate(gomock.Any(), usecase.EstimateCommand{ProjectType: "luxury", Area: 100, Location: "Pune"}).
			Return(entities.CostEstimate{}, fmt.Errorf("%w: %q", usecase.ErrInvalidProjectType, "luxury"))

		w := serve(r, http.MethodPost, "/v1/cost-estimate", `{"projectType":"luxury","area":100,"location":"Pune"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if _, ok := decodeBody(t, w)["totalCost"]; ok {
			t.Fatalf("error response must not carry an estimate: %s", w.Body.String())
		}
	})

	t.Run("reference data unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(uc)

		uc.EXPECT().GenerateEstimate(gomock.Any(), gomock.Any()).
			Return(entities.CostEstimate{}, fmt.Errorf("%w: list materials: timeout", usecase.ErrMissingReferenceData))

		w := serve(r, http.MethodPost, "/v1/cost-estimate", `{"projectType":"residential","area":100,"location":"Pune"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "DATA_UNAVAILABLE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("internal error hides cause", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(uc)

		uc.EXPECT().GenerateEstimate(gomock.Any(), gomock.Any()).
			Return(entities.CostEstimate{}, errors.New("secret table name leaked"))

		w := serve(r, http.MethodPost, "/v1/cost-estimate", `{"projectType":"residential","area":100,"location":"Pune"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "secret") {
			t.Fatalf("cause leaked: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(uc)

		uc.EXPECT().GenerateEstimate(gomock.Any(), usecase.EstimateCommand{ProjectType: "residential", Area: 1000, Location: "Pune"}).
			Return(entities.CostEstimate{
				ID:          "est-1",
				ProjectType: entities.ProjectTypeResidential,
				Area:        1000,
				Materials:   []entities.MaterialLine{{Category: "cement", Name: "Portland Cement", Quantity: 400, Unit: "bag", Rate: 350, Total: 140000}},
				TotalCost:   2103125,
			}, nil)

		w := serve(r, http.MethodPost, "/v1/cost-estimate", `{"projectType":"residential","area":1000,"location":"Pune"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["totalCost"] != 2103125.0 || body["id"] != "est-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if labor, ok := body["labor"].([]any); !ok || len(labor) != 0 {
			t.Fatalf("expected empty labor array: %s", w.Body.String())
		}
	})
}

func TestEstimateHandler_History(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list filtered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(uc)

		uc.EXPECT().ListEstimates(gomock.Any(), "commercial").Return([]entities.CostEstimate{{ID: "e1"}, {ID: "e2"}}, nil)

		w := serve(r, http.MethodGet, "/v1/cost-estimates?projectType=commercial", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.HasPrefix(w.Body.String(), "[") || !strings.Contains(w.Body.String(), `"e2"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("list invalid type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(uc)

		uc.EXPECT().ListEstimates(gomock.Any(), "villa").Return(nil, usecase.ErrInvalidProjectType)

		w := serve(r, http.MethodGet, "/v1/cost-estimates?projectType=villa", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(uc)

		uc.EXPECT().GetEstimate(gomock.Any(), "missing").Return(entities.CostEstimate{}, usecase.ErrEstimateNotFound)

		w := serve(r, http.MethodGet, "/v1/cost-estimates/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "NOT_FOUND" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("get success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newEstimateRouter(uc)

		uc.EXPECT().GetEstimate(gomock.Any(), "e1").Return(entities.CostEstimate{ID: "e1"}, nil)

		w := serve(r, http.MethodGet, "/v1/cost-estimates/e1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
