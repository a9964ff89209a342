package response

import (
	"time"

	"brickonomics/internal/domain/entities"
)

type MaterialResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Unit        string    `json:"unit"`
	BaseRate    float64   `json:"baseRate"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromMaterial(m entities.Material) MaterialResponse {
	return MaterialResponse{
		ID:          m.ID,
		Name:        m.Name,
		Category:    m.Category,
		Unit:        m.Unit,
		BaseRate:    m.BaseRate,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromMaterials(items []entities.Material) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(items))
	for _, m := range items {
		out = append(out, FromMaterial(m))
	}
	return out
}

type LaborRateResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Unit        string    `json:"unit"`
	BaseRate    float64   `json:"baseRate"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromLaborRate(l entities.LaborRate) LaborRateResponse {
	return LaborRateResponse{
		ID:          l.ID,
		Name:        l.Name,
		Category:    l.Category,
		Unit:        l.Unit,
		BaseRate:    l.BaseRate,
		Location:    l.Location,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func FromLaborRates(items []entities.LaborRate) []LaborRateResponse {
	out := make([]LaborRateResponse, 0, len(items))
	for _, l := range items {
		out = append(out, FromLaborRate(l))
	}
	return out
}
