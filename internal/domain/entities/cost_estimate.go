package entities

import "time"

// MaterialLine is one priced material row of an estimate.
type MaterialLine struct {
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Rate     float64 `json:"rate"`
	Total    float64 `json:"total"`
}

// LaborLine is one priced labor row of an estimate. Role is the labor rate's name.
type LaborLine struct {
	Category string  `json:"category"`
	Role     string  `json:"role"`
	Hours    float64 `json:"hours"`
	Rate     float64 `json:"rate"`
	Total    float64 `json:"total"`
}

// CostEstimate is an itemized, immutable estimate.
//
// A new estimate supersedes an older one; snapshots are never updated.
// Line order follows the coefficient table's declared category order.
type CostEstimate struct {
	ID             string         `json:"id,omitempty"`
	ProjectType    ProjectType    `json:"projectType"`
	Area           float64        `json:"area"`
	Location       string         `json:"location,omitempty"`
	Materials      []MaterialLine `json:"materials"`
	Labor          []LaborLine    `json:"labor"`
	MaterialTotal  float64        `json:"materialTotal"`
	LaborTotal     float64        `json:"laborTotal"`
	Subtotal       float64        `json:"subtotal"`
	Overhead       float64        `json:"overhead"`
	Transportation float64        `json:"transportation"`
	TotalCost      float64        `json:"totalCost"`
	CreatedAt      time.Time      `json:"createdAt,omitempty"`
}
