package response

import (
	"time"

	"brickonomics/internal/domain/entities"
	"brickonomics/internal/usecase"
)

type ProjectResponse struct {
	ID                string    `json:"id"`
	ProjectName       string    `json:"projectName"`
	ProjectType       string    `json:"projectType"`
	TotalArea         float64   `json:"totalArea"`
	EstimatedDuration int       `json:"estimatedDuration"`
	Location          string    `json:"location"`
	Requirements      string    `json:"requirements"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type CostAnalysisResponse struct {
	ID                 string    `json:"id"`
	ProjectID          string    `json:"projectId"`
	MaterialCost       float64   `json:"materialCost"`
	LaborCost          float64   `json:"laborCost"`
	TransportationCost float64   `json:"transportationCost"`
	OverheadCost       float64   `json:"overheadCost"`
	TotalCost          float64   `json:"totalCost"`
	CostPerSqft        float64   `json:"costPerSqft"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ProjectWithAnalysisResponse embeds the project fields and nests its
// analysis, which is null for projects created without one.
type ProjectWithAnalysisResponse struct {
	ProjectResponse
	CostAnalysis *CostAnalysisResponse `json:"costAnalysis"`
}

type OptimizationResponse struct {
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	PotentialSavings   float64 `json:"potentialSavings"`
	ImplementationCost float64 `json:"implementationCost"`
	NetSavings         float64 `json:"netSavings"`
	Difficulty         string  `json:"difficulty"`
	Timeframe          string  `json:"timeframe"`
}

type OptimizationReportResponse struct {
	Project       ProjectResponse        `json:"project"`
	CostAnalysis  CostAnalysisResponse   `json:"costAnalysis"`
	Optimizations []OptimizationResponse `json:"optimizations"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:                p.ID,
		ProjectName:       p.ProjectName,
		ProjectType:       string(p.ProjectType),
		TotalArea:         p.TotalArea,
		EstimatedDuration: p.EstimatedDuration,
		Location:          p.Location,
		Requirements:      p.Requirements,
		Status:            string(p.Status),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func FromCostAnalysis(ca entities.CostAnalysis) CostAnalysisResponse {
	return CostAnalysisResponse{
		ID:                 ca.ID,
		ProjectID:          ca.ProjectID,
		MaterialCost:       ca.MaterialCost,
		LaborCost:          ca.LaborCost,
		TransportationCost: ca.TransportationCost,
		OverheadCost:       ca.OverheadCost,
		TotalCost:          ca.TotalCost,
		CostPerSqft:        ca.CostPerSqft,
		CreatedAt:          ca.CreatedAt,
		UpdatedAt:          ca.UpdatedAt,
	}
}

func FromProjectWithAnalysis(p entities.ProjectWithAnalysis) ProjectWithAnalysisResponse {
	out := ProjectWithAnalysisResponse{ProjectResponse: FromProject(p.Project)}
	if p.CostAnalysis != nil {
		ca := FromCostAnalysis(*p.CostAnalysis)
		out.CostAnalysis = &ca
	}
	return out
}

func FromProjectsWithAnalysis(items []entities.ProjectWithAnalysis) []ProjectWithAnalysisResponse {
	out := make([]ProjectWithAnalysisResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromProjectWithAnalysis(p))
	}
	return out
}

func FromOptimizationReport(r usecase.OptimizationReport) OptimizationReportResponse {
	opts := make([]OptimizationResponse, 0, len(r.Optimizations))
	for _, o := range r.Optimizations {
		opts = append(opts, OptimizationResponse{
			Title:              o.Title,
			Description:        o.Description,
			PotentialSavings:   o.PotentialSavings,
			ImplementationCost: o.ImplementationCost,
			NetSavings:         o.NetSavings,
			Difficulty:         string(o.Difficulty),
			Timeframe:          o.Timeframe,
		})
	}
	return OptimizationReportResponse{
		Project:       FromProject(r.Project),
		CostAnalysis:  FromCostAnalysis(r.CostAnalysis),
		Optimizations: opts,
	}
}

// PingResponse is the body of GET /v1/ping.
type PingResponse struct {
	Message string `json:"message"`
}
