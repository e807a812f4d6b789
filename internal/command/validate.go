package command

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/flowlytix/distribution-service/internal/domain"
)

// emailPattern is intentionally loose: one non-space local part, an @, and a
// dotted domain. Strings of only whitespace fail format, not presence.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the command fail-fast: rules run in a fixed order and the
// first violation is returned as a *ValidationError.
func (c ChangePasswordCommand) Validate() error {
	if c.UserID == "" {
		return invalid("user_id", "User ID is required")
	}
	if c.CurrentPassword == "" {
		return invalid("current_password", "Current password is required")
	}
	if c.NewPassword == "" {
		return invalid("new_password", "New password is required")
	}
	if c.ChangedBy == "" {
		return invalid("changed_by", "Changed by is required")
	}
	if strings.TrimSpace(c.CurrentPassword) == "" {
		return invalid("current_password", "Current password cannot be empty")
	}
	if strings.TrimSpace(c.NewPassword) == "" {
		return invalid("new_password", "New password cannot be empty")
	}
	if c.CurrentPassword == c.NewPassword {
		return invalid("new_password", "New password must be different from current password")
	}
	return nil
}

// Validate checks the command fail-fast. Presence rules run before format
// rules, so a whitespace-only email reports "Invalid email format".
func (c AuthenticateUserCommand) Validate() error {
	if c.Email == "" {
		return invalid("email", "Email is required")
	}
	if c.Password == "" {
		return invalid("password", "Password is required")
	}
	if !emailPattern.MatchString(c.Email) {
		return invalid("email", "Invalid email format")
	}
	if strings.TrimSpace(c.Password) == "" {
		return invalid("password", "Password cannot be empty")
	}
	return nil
}

// Validate checks the command fail-fast in field declaration order.
func (c CreateUserCommand) Validate() error {
	if c.Email == "" {
		return invalid("email", "Email is required")
	}
	if !emailPattern.MatchString(c.Email) {
		return invalid("email", "Invalid email format")
	}
	if c.Password == "" {
		return invalid("password", "Password is required")
	}
	if c.FirstName == "" {
		return invalid("first_name", "First name is required")
	}
	if c.LastName == "" {
		return invalid("last_name", "Last name is required")
	}
	if c.Role == "" {
		return invalid("role", "Role is required")
	}
	if !domain.ValidRole(c.Role) {
		return invalid("role", "Invalid role")
	}
	if c.CreatedBy == "" {
		return invalid("created_by", "Created by is required")
	}
	if c.Status != nil && !domain.ValidUserStatus(*c.Status) {
		return invalid("status", "Invalid status")
	}
	return nil
}

// Validate checks the command collect-all: every rule is evaluated and all
// violations are returned together as a *ValidationErrors, preserving rule
// order.
func (c CreateAreaCommand) Validate() error {
	var msgs []string

	name := strings.TrimSpace(c.AreaName)
	if len(name) < 2 {
		msgs = append(msgs, "Area name must be at least 2 characters")
	}
	if len(name) > 100 {
		msgs = append(msgs, "Area name must not exceed 100 characters")
	}
	if c.CreatedBy == "" {
		msgs = append(msgs, "Created by is required")
	}

	msgs = append(msgs, validateAreaOptionals(c.Description, c.Coordinates, c.Boundaries, c.Status)...)

	if len(msgs) > 0 {
		return &ValidationErrors{Messages: msgs}
	}
	return nil
}

// Validate checks the command collect-all: every rule is evaluated and all
// violations are returned together as a *ValidationErrors, preserving rule
// order. Optional fields are only checked when present.
func (c UpdateAreaCommand) Validate() error {
	var msgs []string

	if c.ID == "" {
		msgs = append(msgs, "Area ID is required")
	}
	if c.UpdatedBy == "" {
		msgs = append(msgs, "Updated by is required")
	}

	if c.AreaName != nil {
		name := strings.TrimSpace(*c.AreaName)
		if len(name) < 2 {
			msgs = append(msgs, "Area name must be at least 2 characters")
		}
		if len(name) > 100 {
			msgs = append(msgs, "Area name must not exceed 100 characters")
		}
	}

	msgs = append(msgs, validateAreaOptionals(c.Description, c.Coordinates, c.Boundaries, c.Status)...)

	if len(msgs) > 0 {
		return &ValidationErrors{Messages: msgs}
	}
	return nil
}

func validateAreaOptionals(description *string, coordinates *domain.Coordinates, boundaries *domain.Polygon, status *domain.AreaStatus) []string {
	var msgs []string

	if description != nil && len(*description) > 500 {
		msgs = append(msgs, "Description must not exceed 500 characters")
	}

	if coordinates != nil {
		if coordinates.Latitude < -90 || coordinates.Latitude > 90 {
			msgs = append(msgs, "Latitude must be between -90 and 90")
		}
		if coordinates.Longitude < -180 || coordinates.Longitude > 180 {
			msgs = append(msgs, "Longitude must be between -180 and 180")
		}
	}

	if boundaries != nil {
		msgs = append(msgs, validatePolygon(boundaries)...)
	}

	if status != nil && !domain.ValidAreaStatus(*status) {
		msgs = append(msgs, "Invalid area status")
	}

	return msgs
}

// validatePolygon checks GeoJSON polygon shape without short-circuiting:
// every ring and every position is inspected so the caller sees all
// violations at once.
func validatePolygon(p *domain.Polygon) []string {
	var msgs []string

	if p.Type != "Polygon" {
		msgs = append(msgs, `Boundaries type must be "Polygon"`)
	}
	if len(p.Coordinates) == 0 {
		msgs = append(msgs, "Boundaries must contain at least one ring")
		return msgs
	}

	for ri, ring := range p.Coordinates {
		if len(ring) < 4 {
			msgs = append(msgs, fmt.Sprintf("Boundary ring %d must have at least 4 points", ri))
		} else if !pointsEqual(ring[0], ring[len(ring)-1]) {
			msgs = append(msgs, fmt.Sprintf("Boundary ring %d must be closed (first and last points must match)", ri))
		}

		for pi, point := range ring {
			if len(point) != 2 {
				msgs = append(msgs, fmt.Sprintf("Boundary ring %d point %d must be a [longitude, latitude] pair", ri, pi))
				continue
			}
			if point[0] < -180 || point[0] > 180 {
				msgs = append(msgs, fmt.Sprintf("Boundary ring %d point %d longitude must be between -180 and 180", ri, pi))
			}
			if point[1] < -90 || point[1] > 90 {
				msgs = append(msgs, fmt.Sprintf("Boundary ring %d point %d latitude must be between -90 and 90", ri, pi))
			}
		}
	}

	return msgs
}

func pointsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
