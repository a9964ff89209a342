package request

import "brickonomics/internal/usecase"

// ProjectRequest is shared by POST /v1/projects and POST /v1/cost-analysis.
type ProjectRequest struct {
	ProjectName       string   `json:"projectName" binding:"required,max=128"`
	ProjectType       string   `json:"projectType" binding:"required"`
	TotalArea         *float64 `json:"totalArea" binding:"required"`
	EstimatedDuration *int     `json:"estimatedDuration" binding:"required"`
	Location          string   `json:"location" binding:"required"`
	Requirements      string   `json:"requirements"`
}

func (r ProjectRequest) ToInput() usecase.ProjectInput {
	in := usecase.ProjectInput{
		ProjectName:  r.ProjectName,
		ProjectType:  r.ProjectType,
		TotalArea:    deref(r.TotalArea),
		Location:     r.Location,
		Requirements: r.Requirements,
	}
	if r.EstimatedDuration != nil {
		in.EstimatedDuration = *r.EstimatedDuration
	}
	return in
}
