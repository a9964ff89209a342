package request

import "brickonomics/internal/usecase"

type MaterialRequest struct {
	Name        string   `json:"name" binding:"required,max=128"`
	Category    string   `json:"category" binding:"required,max=128"`
	Unit        string   `json:"unit" binding:"required,max=128"`
	BaseRate    *float64 `json:"baseRate" binding:"required,gte=0"`
	Description string   `json:"description"`
}

func (r MaterialRequest) ToInput() usecase.MaterialInput {
	return usecase.MaterialInput{
		Name:        r.Name,
		Category:    r.Category,
		Unit:        r.Unit,
		BaseRate:    deref(r.BaseRate),
		Description: r.Description,
	}
}

// LaborRateRequest mirrors MaterialRequest; unit defaults to "day".
type LaborRateRequest struct {
	Name        string   `json:"name" binding:"required,max=128"`
	Category    string   `json:"category" binding:"required,max=128"`
	Unit        string   `json:"unit" binding:"max=128"`
	BaseRate    *float64 `json:"baseRate" binding:"required,gte=0"`
	Location    string   `json:"location" binding:"max=128"`
	Description string   `json:"description"`
}

func (r LaborRateRequest) ToInput() usecase.LaborRateInput {
	return usecase.LaborRateInput{
		Name:        r.Name,
		Category:    r.Category,
		Unit:        r.Unit,
		BaseRate:    deref(r.BaseRate),
		Location:    r.Location,
		Description: r.Description,
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
