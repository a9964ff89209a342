package entities

import "time"

// Material is a priced construction material in the reference catalog.
//
// Category joins the material to the estimator's coefficient tables
// ("cement", "steel", "bricks", "sand", "aggregate"). It is compared exactly:
// no case folding or trimming happens at estimation time.
type Material struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Unit        string    `json:"unit"`
	BaseRate    float64   `json:"baseRate"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
