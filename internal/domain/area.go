package domain

import "time"

// AreaStatus represents lifecycle states for a sales area.
type AreaStatus string

const (
	AreaStatusActive   AreaStatus = "active"
	AreaStatusInactive AreaStatus = "inactive"
	AreaStatusArchived AreaStatus = "archived"
)

// ValidAreaStatus reports whether s is a defined area status.
func ValidAreaStatus(s AreaStatus) bool {
	switch s {
	case AreaStatusActive, AreaStatusInactive, AreaStatusArchived:
		return true
	}
	return false
}

// Coordinates is a single geographic point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Polygon is a GeoJSON-style polygon: a list of rings, each ring a list of
// [longitude, latitude] positions with the first and last position equal.
type Polygon struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

// Area is the domain model for a geographic sales territory.
type Area struct {
	ID          string
	Name        string
	Description string
	Coordinates *Coordinates
	Boundaries  *Polygon
	Status      AreaStatus
	CreatedBy   string
	UpdatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
