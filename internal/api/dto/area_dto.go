package dto

import (
	"time"

	"github.com/flowlytix/distribution-service/internal/domain"
)

// CreateAreaRequest payload for creating a sales area.
type CreateAreaRequest struct {
	AreaName    string              `json:"area_name"`
	Description *string             `json:"description,omitempty"`
	Coordinates *domain.Coordinates `json:"coordinates,omitempty"`
	Boundaries  *domain.Polygon     `json:"boundaries,omitempty"`
	Status      *domain.AreaStatus  `json:"status,omitempty"`
}

// UpdateAreaRequest payload for a partial area update. Absent fields are
// left unchanged.
type UpdateAreaRequest struct {
	AreaName    *string             `json:"area_name,omitempty"`
	Description *string             `json:"description,omitempty"`
	Coordinates *domain.Coordinates `json:"coordinates,omitempty"`
	Boundaries  *domain.Polygon     `json:"boundaries,omitempty"`
	Status      *domain.AreaStatus  `json:"status,omitempty"`
}

// AreaResponse is the public shape of an area.
type AreaResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Coordinates *domain.Coordinates `json:"coordinates,omitempty"`
	Boundaries  *domain.Polygon     `json:"boundaries,omitempty"`
	Status      domain.AreaStatus   `json:"status"`
	UpdatedBy   string              `json:"updated_by"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// NewAreaResponse maps a domain area to its public shape.
func NewAreaResponse(a *domain.Area) AreaResponse {
	return AreaResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Coordinates: a.Coordinates,
		Boundaries:  a.Boundaries,
		Status:      a.Status,
		UpdatedBy:   a.UpdatedBy,
		UpdatedAt:   a.UpdatedAt,
	}
}
