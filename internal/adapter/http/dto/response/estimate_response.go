package response

import (
	"time"

	"brickonomics/internal/domain/entities"
)

type MaterialLineResponse struct {
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Rate     float64 `json:"rate"`
	Total    float64 `json:"total"`
}

type LaborLineResponse struct {
	Category string  `json:"category"`
	Role     string  `json:"role"`
	Hours    float64 `json:"hours"`
	Rate     float64 `json:"rate"`
	Total    float64 `json:"total"`
}

// CostEstimateResponse is the itemized estimate returned by the API. Line
// arrays are never null.
type CostEstimateResponse struct {
	ID             string                 `json:"id"`
	ProjectType    string                 `json:"projectType"`
	Area           float64                `json:"area"`
	Location       string                 `json:"location"`
	Materials      []MaterialLineResponse `json:"materials"`
	Labor          []LaborLineResponse    `json:"labor"`
	MaterialTotal  float64                `json:"materialTotal"`
	LaborTotal     float64                `json:"laborTotal"`
	Subtotal       float64                `json:"subtotal"`
	Overhead       float64                `json:"overhead"`
	Transportation float64                `json:"transportation"`
	TotalCost      float64                `json:"totalCost"`
	CreatedAt      time.Time              `json:"createdAt"`
}

func FromCostEstimate(e entities.CostEstimate) CostEstimateResponse {
	materials := make([]MaterialLineResponse, 0, len(e.Materials))
	for _, m := range e.Materials {
		materials = append(materials, MaterialLineResponse(m))
	}
	labor := make([]LaborLineResponse, 0, len(e.Labor))
	for _, l := range e.Labor {
		labor = append(labor, LaborLineResponse(l))
	}

	return CostEstimateResponse{
		ID:             e.ID,
		ProjectType:    string(e.ProjectType),
		Area:           e.Area,
		Location:       e.Location,
		Materials:      materials,
		Labor:          labor,
		MaterialTotal:  e.MaterialTotal,
		LaborTotal:     e.LaborTotal,
		Subtotal:       e.Subtotal,
		Overhead:       e.Overhead,
		Transportation: e.Transportation,
		TotalCost:      e.TotalCost,
		CreatedAt:      e.CreatedAt,
	}
}

func FromCostEstimates(items []entities.CostEstimate) []CostEstimateResponse {
	out := make([]CostEstimateResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromCostEstimate(e))
	}
	return out
}
