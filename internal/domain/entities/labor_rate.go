package entities

import (
	"strings"
	"time"
)

const DefaultLaborUnit = "day"

// LaborRate is the price of one labor category ("skilled", "unskilled", "supervisor").
//
// Location is optional; an empty location means the rate applies everywhere.
type LaborRate struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Unit        string    `json:"unit,omitempty"`
	BaseRate    float64   `json:"baseRate"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AppliesTo reports whether the rate can be used for a project in location.
// Locations compare case-insensitively.
func (l LaborRate) AppliesTo(location string) bool {
	return l.Location == "" || location == "" || l.IsLocal(location)
}

// IsLocal reports whether the rate is bound to location.
func (l LaborRate) IsLocal(location string) bool {
	return l.Location != "" && strings.EqualFold(l.Location, location)
}
