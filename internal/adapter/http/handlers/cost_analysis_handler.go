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

// CostAnalysisHandler creates projects with their initial cost analysis and
// serves analyses and savings suggestions.
type CostAnalysisHandler struct {
	usecase usecase.ICostAnalysisUseCase
}

func NewCostAnalysisHandler(uc usecase.ICostAnalysisUseCase) *CostAnalysisHandler {
	return &CostAnalysisHandler{usecase: uc}
}

// CreateCostAnalysis godoc
// @Summary      Create a project and its cost analysis
// @Description  Project and analysis are stored in one transaction; the analysis is priced by the estimator.
// @Tags         cost-analysis
// @Accept       json
// @Produce      json
// @Param        body  body      request.ProjectRequest  true  "Project"
// @Success      201   {object}  response.ProjectWithAnalysisResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /cost-analysis [post]
func (h *CostAnalysisHandler) CreateCostAnalysis(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	res, err := h.usecase.CreateWithProject(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapCostAnalysisError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProjectWithAnalysis(res))
}

// GetCostAnalysis godoc
// @Summary      Get a project's cost analysis
// @Tags         cost-analysis
// @Produce      json
// @Param        project_id  path      string  true  "Project ID"
// @Success      200         {object}  response.ProjectWithAnalysisResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /cost-analysis/{project_id} [get]
func (h *CostAnalysisHandler) GetCostAnalysis(c *gin.Context) {
	res, err := h.usecase.GetByProjectID(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		respondError(c, mapCostAnalysisError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjectWithAnalysis(res))
}

// GetOptimizations godoc
// @Summary      Suggest cost optimizations
// @Tags         cost-analysis
// @Produce      json
// @Param        project_id  path      string  true  "Project ID"
// @Success      200         {object}  response.OptimizationReportResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /cost-analysis/{project_id}/optimizations [get]
func (h *CostAnalysisHandler) GetOptimizations(c *gin.Context) {
	report, err := h.usecase.Optimize(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		respondError(c, mapCostAnalysisError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOptimizationReport(report))
}

func mapCostAnalysisError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCostAnalysisNotFound):
		return notFound("Cost analysis not found")
	case errors.Is(err, usecase.ErrMissingReferenceData):
		return mapEstimateError(err)
	default:
		return mapProjectError(err)
	}
}
