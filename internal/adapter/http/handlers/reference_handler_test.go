package handlers

import (
	"net/http"
	"testing"

	"brickonomics/internal/adapter/http/handlers/mocks"
	"brickonomics/internal/domain/entities"
	"brickonomics/internal/usecase"
	"brickonomics/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newMaterialRouter(uc usecase.IMaterialUseCase) *gin.Engine {
	h := NewMaterialHandler(uc)
	r := gin.New()
	r.GET("/v1/materials", h.ListMaterials)
	r.POST("/v1/materials", h.CreateMaterial)
	r.GET("/v1/materials/:id", h.GetMaterial)
	r.PUT("/v1/materials/:id", h.UpdateMaterial)
	r.DELETE("/v1/materials/:id", h.DeleteMaterial)
	return r
}

func newLaborRateRouter(uc usecase.ILaborRateUseCase) *gin.Engine {
	h := NewLaborRateHandler(uc)
	r := gin.New()
	r.GET("/v1/labor-rates", h.ListLaborRates)
	r.POST("/v1/labor-rates", h.CreateLaborRate)
	r.GET("/v1/labor-rates/:id", h.GetLaborRate)
	r.PUT("/v1/labor-rates/:id", h.UpdateLaborRate)
	r.DELETE("/v1/labor-rates/:id", h.DeleteLaborRate)
	return r
}

func TestMaterialHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list by category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := newMaterialRouter(uc)

		uc.EXPECT().List(gomock.Any(), "cement").Return([]entities.Material{{ID: "m1", Category: "cement"}}, nil)

		w := serve(r, http.MethodGet, "/v1/materials?category=cement", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := newMaterialRouter(uc)

		uc.EXPECT().Create(gomock.Any(), usecase.MaterialInput{Name: "Sand", Category: "sand", Unit: "cu.m", BaseRate: 2800}).
			Return(entities.Material{ID: "m4", Name: "Sand", Category: "sand", Unit: "cu.m", BaseRate: 2800}, nil)

		w := serve(r, http.MethodPost, "/v1/materials", `{"name":"Sand","category":"sand","unit":"cu.m","baseRate":2800}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if decodeBody(t, w)["baseRate"] != 2800.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("create missing rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newMaterialRouter(mocks.NewMockIMaterialUseCase(ctrl))

		w := serve(r, http.MethodPost, "/v1/materials", `{"name":"Sand","category":"sand","unit":"cu.m"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeBody(t, w)["message"] != "baseRate is required" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("update not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := newMaterialRouter(uc)

		uc.EXPECT().Update(gomock.Any(), "m9", gomock.Any()).Return(entities.Material{}, usecase.ErrMaterialNotFound)

		w := serve(r, http.MethodPut, "/v1/materials/m9", `{"name":"Sand","category":"sand","unit":"cu.m","baseRate":1}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := newMaterialRouter(uc)

		uc.EXPECT().Get(gomock.Any(), "m1").Return(entities.Material{ID: "m1"}, nil)

		w := serve(r, http.MethodGet, "/v1/materials/m1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := newMaterialRouter(uc)

		uc.EXPECT().Delete(gomock.Any(), "m1").Return(nil)
		uc.EXPECT().Delete(gomock.Any(), "m2").Return(usecase.ErrMaterialNotFound)

		if w := serve(r, http.MethodDelete, "/v1/materials/m1", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if w := serve(r, http.MethodDelete, "/v1/materials/m2", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestLaborRateHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list with filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILaborRateUseCase(ctrl)
		r := newLaborRateRouter(uc)

		uc.EXPECT().List(gomock.Any(), interfaces.LaborRateFilter{Category: "skilled", Location: "Pune"}).
			Return([]entities.LaborRate{{ID: "l1"}}, nil)

		w := serve(r, http.MethodGet, "/v1/labor-rates?category=skilled&location=Pune", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("create invalid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILaborRateUseCase(ctrl)
		r := newLaborRateRouter(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.LaborRate{}, usecase.ErrInvalidLaborRate)

		w := serve(r, http.MethodPost, "/v1/labor-rates", `{"name":" ","category":"skilled","baseRate":800}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILaborRateUseCase(ctrl)
		r := newLaborRateRouter(uc)

		uc.EXPECT().Create(gomock.Any(), usecase.LaborRateInput{Name: "Mason", Category: "skilled", BaseRate: 800}).
			Return(entities.LaborRate{ID: "l1", Unit: "day"}, nil)

		w := serve(r, http.MethodPost, "/v1/labor-rates", `{"name":"Mason","category":"skilled","baseRate":800}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("get update delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILaborRateUseCase(ctrl)
		r := newLaborRateRouter(uc)

		uc.EXPECT().Get(gomock.Any(), "l1").Return(entities.LaborRate{}, usecase.ErrLaborRateNotFound)
		uc.EXPECT().Update(gomock.Any(), "l2", gomock.Any()).Return(entities.LaborRate{ID: "l2"}, nil)
		uc.EXPECT().Delete(gomock.Any(), "l3").Return(nil)

		if w := serve(r, http.MethodGet, "/v1/labor-rates/l1", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if w := serve(r, http.MethodPut, "/v1/labor-rates/l2", `{"name":"Mason","category":"skilled","baseRate":900}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := serve(r, http.MethodDelete, "/v1/labor-rates/l3", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
