package command

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowlytix/distribution-service/internal/domain"
)

func strPtr(s string) *string { return &s }

func closedRing() [][]float64 {
	return [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}
}

func validUpdateArea() UpdateAreaCommand {
	return UpdateAreaCommand{
		ID:        "area-7",
		UpdatedBy: "admin-1",
	}
}

func requireMessages(t *testing.T, err error) []string {
	t.Helper()
	require.Error(t, err)

	var verrs *ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.NotEmpty(t, verrs.Messages)
	return verrs.Messages
}

func TestCreateAreaValid(t *testing.T) {
	cmd := CreateAreaCommand{AreaName: "East Kandy", CreatedBy: "admin-1"}
	require.NoError(t, cmd.Validate())
}

func TestCreateAreaCollectsAllViolations(t *testing.T) {
	cmd := CreateAreaCommand{
		AreaName:    " ",
		Coordinates: &domain.Coordinates{Latitude: -91, Longitude: 181},
	}

	msgs := requireMessages(t, cmd.Validate())
	assert.Equal(t, []string{
		"Area name must be at least 2 characters",
		"Created by is required",
		"Latitude must be between -90 and 90",
		"Longitude must be between -180 and 180",
	}, msgs)
}

func TestUpdateAreaMinimalValid(t *testing.T) {
	require.NoError(t, validUpdateArea().Validate())
}

func TestUpdateAreaFullValid(t *testing.T) {
	cmd := validUpdateArea()
	cmd.AreaName = strPtr("North Colombo")
	cmd.Description = strPtr("Coastal distribution territory")
	cmd.Coordinates = &domain.Coordinates{Latitude: 6.93, Longitude: 79.85}
	cmd.Boundaries = &domain.Polygon{Type: "Polygon", Coordinates: [][][]float64{closedRing()}}
	status := domain.AreaStatusActive
	cmd.Status = &status

	require.NoError(t, cmd.Validate())
}

func TestUpdateAreaCollectsAllViolations(t *testing.T) {
	status := domain.AreaStatus("frozen")
	cmd := UpdateAreaCommand{
		// both identity fields missing
		AreaName:    strPtr("x"),
		Description: strPtr(strings.Repeat("d", 501)),
		Coordinates: &domain.Coordinates{Latitude: 95, Longitude: -200},
		Status:      &status,
	}

	msgs := requireMessages(t, cmd.Validate())
	assert.Equal(t, []string{
		"Area ID is required",
		"Updated by is required",
		"Area name must be at least 2 characters",
		"Description must not exceed 500 characters",
		"Latitude must be between -90 and 90",
		"Longitude must be between -180 and 180",
		"Invalid area status",
	}, msgs)
}

func TestUpdateAreaNameBounds(t *testing.T) {
	cmd := validUpdateArea()
	cmd.AreaName = strPtr("  a  ")
	msgs := requireMessages(t, cmd.Validate())
	assert.Contains(t, msgs, "Area name must be at least 2 characters")

	cmd = validUpdateArea()
	cmd.AreaName = strPtr(strings.Repeat("n", 101))
	msgs = requireMessages(t, cmd.Validate())
	assert.Contains(t, msgs, "Area name must not exceed 100 characters")

	cmd = validUpdateArea()
	cmd.AreaName = strPtr(strings.Repeat("n", 100))
	require.NoError(t, cmd.Validate())
}

func TestUpdateAreaUnclosedRingReportedWithOtherViolations(t *testing.T) {
	cmd := validUpdateArea()
	cmd.Boundaries = &domain.Polygon{
		Type: "Polygon",
		// four points but first != last
		Coordinates: [][][]float64{{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
	}
	cmd.Coordinates = &domain.Coordinates{Latitude: 120, Longitude: 10}

	msgs := requireMessages(t, cmd.Validate())
	assert.Contains(t, msgs, "Boundary ring 0 must be closed (first and last points must match)")
	assert.Contains(t, msgs, "Latitude must be between -90 and 90")
}

func TestUpdateAreaPolygonTypeChecked(t *testing.T) {
	cmd := validUpdateArea()
	cmd.Boundaries = &domain.Polygon{
		Type:        "MultiPolygon",
		Coordinates: [][][]float64{closedRing()},
	}

	msgs := requireMessages(t, cmd.Validate())
	assert.Equal(t, []string{`Boundaries type must be "Polygon"`}, msgs)
}

func TestUpdateAreaPolygonNeedsRings(t *testing.T) {
	cmd := validUpdateArea()
	cmd.Boundaries = &domain.Polygon{Type: "Polygon"}

	msgs := requireMessages(t, cmd.Validate())
	assert.Contains(t, msgs, "Boundaries must contain at least one ring")
}

func TestUpdateAreaShortRing(t *testing.T) {
	cmd := validUpdateArea()
	cmd.Boundaries = &domain.Polygon{
		Type:        "Polygon",
		Coordinates: [][][]float64{{{0, 0}, {1, 1}, {0, 0}}},
	}

	msgs := requireMessages(t, cmd.Validate())
	assert.Contains(t, msgs, "Boundary ring 0 must have at least 4 points")
}

// Every malformed position is reported individually; checking does not stop
// at the first bad ring or point.
func TestUpdateAreaPolygonDoesNotShortCircuit(t *testing.T) {
	cmd := validUpdateArea()
	cmd.Boundaries = &domain.Polygon{
		Type: "Polygon",
		Coordinates: [][][]float64{
			{{0, 0}, {200, 0}, {1, 95}, {0, 1, 2}, {0, 0}},
			closedRing(),
			{{0, 0}, {-190, -95}, {1, 1}, {0, 0}},
		},
	}

	msgs := requireMessages(t, cmd.Validate())
	assert.Equal(t, []string{
		"Boundary ring 0 point 1 longitude must be between -180 and 180",
		"Boundary ring 0 point 2 latitude must be between -90 and 90",
		"Boundary ring 0 point 3 must be a [longitude, latitude] pair",
		"Boundary ring 2 point 1 longitude must be between -180 and 180",
		"Boundary ring 2 point 1 latitude must be between -90 and 90",
	}, msgs)
}

func TestUpdateAreaStatusEnum(t *testing.T) {
	for _, s := range []domain.AreaStatus{
		domain.AreaStatusActive,
		domain.AreaStatusInactive,
		domain.AreaStatusArchived,
	} {
		cmd := validUpdateArea()
		status := s
		cmd.Status = &status
		assert.NoError(t, cmd.Validate(), "status %s", s)
	}
}

func TestUpdateAreaInputNotMutated(t *testing.T) {
	cmd := validUpdateArea()
	cmd.AreaName = strPtr("North Colombo")
	cmd.Boundaries = &domain.Polygon{Type: "Polygon", Coordinates: [][][]float64{closedRing()}}

	nameBefore := *cmd.AreaName
	ringBefore := append([][]float64(nil), cmd.Boundaries.Coordinates[0]...)

	require.NoError(t, cmd.Validate())
	assert.Equal(t, nameBefore, *cmd.AreaName)
	assert.Equal(t, ringBefore, cmd.Boundaries.Coordinates[0])
}
