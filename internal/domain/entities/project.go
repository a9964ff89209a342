package entities

import "time"

// ProjectStatus tracks a project through its lifecycle.
type ProjectStatus string

const (
	ProjectStatusPending   ProjectStatus = "pending"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

// Project is a construction project persisted in the relational store.
//
// Storage model (SQLite):
//   - projects.id: uuid
//   - cost_analysis.project_id: unique FK, at most one analysis per project
type Project struct {
	ID                string        `json:"id"`
	ProjectName       string        `json:"projectName"`
	ProjectType       ProjectType   `json:"projectType"`
	TotalArea         float64       `json:"totalArea"`
	EstimatedDuration int           `json:"estimatedDuration"`
	Location          string        `json:"location"`
	Requirements      string        `json:"requirements"`
	Status            ProjectStatus `json:"status"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

// CostAnalysis is the cost summary stored alongside a project.
type CostAnalysis struct {
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

// ProjectWithAnalysis pairs a project with its cost analysis, if one exists.
type ProjectWithAnalysis struct {
	Project      Project       `json:"project"`
	CostAnalysis *CostAnalysis `json:"costAnalysis,omitempty"`
}
