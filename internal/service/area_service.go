package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/flowlytix/distribution-service/internal/command"
	"github.com/flowlytix/distribution-service/internal/domain"
	"github.com/flowlytix/distribution-service/internal/events"
	"github.com/flowlytix/distribution-service/internal/repository"
	apperrors "github.com/flowlytix/distribution-service/pkg/util"
)

// AreaService executes sales-area commands after validating them.
type AreaService struct {
	areas      repository.AreaRepository
	dispatcher events.Dispatcher
}

// NewAreaService builds the service.
func NewAreaService(areas repository.AreaRepository, dispatcher events.Dispatcher) *AreaService {
	return &AreaService{areas: areas, dispatcher: dispatcher}
}

// CreateArea validates the command and persists a new area.
func (s *AreaService) CreateArea(ctx context.Context, cmd command.CreateAreaCommand) (*domain.Area, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	status := domain.AreaStatusActive
	if cmd.Status != nil {
		status = *cmd.Status
	}

	area := &domain.Area{
		Name:        cmd.AreaName,
		Coordinates: cmd.Coordinates,
		Boundaries:  cmd.Boundaries,
		Status:      status,
		CreatedBy:   cmd.CreatedBy,
		UpdatedBy:   cmd.CreatedBy,
	}
	if cmd.Description != nil {
		area.Description = *cmd.Description
	}

	if err := s.areas.Create(ctx, area); err != nil {
		return nil, err
	}
	return area, nil
}

// UpdateArea validates the command, loads the area, and applies only the
// fields the command carries. Which fields were applied is recorded on the
// published event.
func (s *AreaService) UpdateArea(ctx context.Context, cmd command.UpdateAreaCommand) (*domain.Area, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	area, err := s.areas.GetByID(ctx, cmd.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("area", map[string]any{"area_id": cmd.ID})
		}
		return nil, err
	}

	var updated []string
	if cmd.AreaName != nil {
		area.Name = *cmd.AreaName
		updated = append(updated, "area_name")
	}
	if cmd.Description != nil {
		area.Description = *cmd.Description
		updated = append(updated, "description")
	}
	if cmd.Coordinates != nil {
		area.Coordinates = cmd.Coordinates
		updated = append(updated, "coordinates")
	}
	if cmd.Boundaries != nil {
		area.Boundaries = cmd.Boundaries
		updated = append(updated, "boundaries")
	}
	if cmd.Status != nil {
		area.Status = *cmd.Status
		updated = append(updated, "status")
	}
	area.UpdatedBy = cmd.UpdatedBy

	if err := s.areas.Update(ctx, area); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventAreaUpdated,
			SubjectID: area.ID,
			ActorID:   cmd.UpdatedBy,
			Timestamp: time.Now(),
			Payload: events.AreaUpdatedPayload{
				UpdatedBy:     cmd.UpdatedBy,
				UpdatedFields: updated,
			},
		})
	}
	return area, nil
}

// GetArea loads a single area by ID.
func (s *AreaService) GetArea(ctx context.Context, id string) (*domain.Area, error) {
	area, err := s.areas.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("area", map[string]any{"area_id": id})
		}
		return nil, err
	}
	return area, nil
}

// ListAreas returns areas, optionally filtered by status.
func (s *AreaService) ListAreas(ctx context.Context, status *domain.AreaStatus) ([]*domain.Area, error) {
	return s.areas.List(ctx, status)
}
