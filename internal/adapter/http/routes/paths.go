package routes

import (
	"brickonomics/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing          = "/ping"
	PathCostEstimate  = "/cost-estimate"
	PathCostEstimates = "/cost-estimates"
	PathMaterials     = "/materials"
	PathLaborRates    = "/labor-rates"
	PathProjects      = "/projects"
	PathCostAnalysis  = "/cost-analysis"
	PathOptimizations = "/optimizations"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addEstimateRoutes(rg *gin.RouterGroup, h *handlers.EstimateHandler) {
	rg.POST(PathCostEstimate, h.CreateCostEstimate)

	estimates := rg.Group(PathCostEstimates)
	{
		estimates.GET("", h.ListCostEstimates)
		estimates.GET("/:id", h.GetCostEstimate)
	}
}

func addReferenceRoutes(rg *gin.RouterGroup, materialHandler *handlers.MaterialHandler, laborHandler *handlers.LaborRateHandler) {
	materials := rg.Group(PathMaterials)
	{
		materials.GET("", materialHandler.ListMaterials)
		materials.POST("", materialHandler.CreateMaterial)
		materials.GET("/:id", materialHandler.GetMaterial)
		materials.PUT("/:id", materialHandler.UpdateMaterial)
		materials.DELETE("/:id", materialHandler.DeleteMaterial)
	}

	labor := rg.Group(PathLaborRates)
	{
		labor.GET("", laborHandler.ListLaborRates)
		labor.POST("", laborHandler.CreateLaborRate)
		labor.GET("/:id", laborHandler.GetLaborRate)
		labor.PUT("/:id", laborHandler.UpdateLaborRate)
		labor.DELETE("/:id", laborHandler.DeleteLaborRate)
	}
}

func addProjectRoutes(rg *gin.RouterGroup, projectHandler *handlers.ProjectHandler, analysisHandler *handlers.CostAnalysisHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.GET("", projectHandler.ListProjects)
		projects.POST("", projectHandler.CreateProject)
		projects.GET("/:id", projectHandler.GetProject)
	}

	analysis := rg.Group(PathCostAnalysis)
	{
		analysis.POST("", analysisHandler.CreateCostAnalysis)
		analysis.GET("/:project_id", analysisHandler.GetCostAnalysis)
		analysis.GET("/:project_id"+PathOptimizations, analysisHandler.GetOptimizations)
	}
}
