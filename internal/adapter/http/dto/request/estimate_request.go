package request

import "brickonomics/internal/usecase"

// CostEstimateRequest is the body of POST /v1/cost-estimate.
//
// Area is a pointer so a missing field is told apart from zero; zero and
// negative values are rejected by the use case with the same 400.
type CostEstimateRequest struct {
	ProjectType string   `json:"projectType" binding:"required"`
	Area        *float64 `json:"area" binding:"required"`
	Location    string   `json:"location" binding:"required"`
}

func (r CostEstimateRequest) ToCommand() usecase.EstimateCommand {
	var area float64
	if r.Area != nil {
		area = *r.Area
	}
	return usecase.EstimateCommand{
		ProjectType: r.ProjectType,
		Area:        area,
		Location:    r.Location,
	}
}
