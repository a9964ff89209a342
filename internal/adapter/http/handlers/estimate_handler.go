package handlers

import (
	"errors"
	"net/http"

	request "brickonomics/internal/adapter/http/dto/request"
	response "brickonomics/internal/adapter/http/dto/response"
	"brickonomics/internal/usecase"
	"brickonomics/pkg"

	"github.com/gin-gonic/gin"
)

// EstimateHandler serves cost estimation and the estimate history.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateCostEstimate godoc
// @Summary      Estimate construction cost
// @Description  Prices a project from its type, area and location against the current reference data.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        body  body      request.CostEstimateRequest  true  "Estimate input"
// @Success      200   {object}  response.CostEstimateResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /cost-estimate [post]
func (h *EstimateHandler) CreateCostEstimate(c *gin.Context) {
	var payload request.CostEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	estimate, err := h.usecase.GenerateEstimate(c.Request.Context(), payload.ToCommand())
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromCostEstimate(estimate))
}

// ListCostEstimates godoc
// @Summary      List estimate history
// @Tags         estimates
// @Produce      json
// @Param        projectType  query     string  false  "Filter by project type"
// @Success      200          {array}   response.CostEstimateResponse
// @Failure      400          {object}  pkg.HTTPError
// @Router       /cost-estimates [get]
func (h *EstimateHandler) ListCostEstimates(c *gin.Context) {
	items, err := h.usecase.ListEstimates(c.Request.Context(), c.Query("projectType"))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCostEstimates(items))
}

// GetCostEstimate godoc
// @Summary      Get one estimate snapshot
// @Tags         estimates
// @Produce      json
// @Param        id   path      string  true  "Estimate ID"
// @Success      200  {object}  response.CostEstimateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /cost-estimates/{id} [get]
func (h *EstimateHandler) GetCostEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetEstimate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCostEstimate(estimate))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectType),
		errors.Is(err, usecase.ErrInvalidArea),
		errors.Is(err, usecase.ErrInvalidLocation),
		errors.Is(err, usecase.ErrInvalidEstimateID):
		return validationError(err)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return notFound("Estimate not found")
	case errors.Is(err, usecase.ErrMissingReferenceData):
		return pkg.NewDomainError(pkg.CodeDataUnavailable, "Reference data is unavailable, try again later", err, http.StatusInternalServerError)
	default:
		return internalError(err)
	}
}
