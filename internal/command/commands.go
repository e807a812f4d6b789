// Package command defines the write commands accepted by the service and the
// validation applied to each command before it is dispatched.
package command

import "github.com/flowlytix/distribution-service/internal/domain"

// AuthenticateUserCommand requests credential verification for a user.
type AuthenticateUserCommand struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me,omitempty"`
}

// CreateUserCommand requests creation of a new user account.
type CreateUserCommand struct {
	Email     string             `json:"email"`
	Password  string             `json:"password"`
	FirstName string             `json:"first_name"`
	LastName  string             `json:"last_name"`
	Role      domain.Role        `json:"role"`
	CreatedBy string             `json:"created_by"`
	Status    *domain.UserStatus `json:"status,omitempty"`
}

// ChangePasswordCommand requests a password change for an existing user.
type ChangePasswordCommand struct {
	UserID          string `json:"user_id"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ChangedBy       string `json:"changed_by"`
}

// CreateAreaCommand requests creation of a new sales area.
type CreateAreaCommand struct {
	AreaName    string              `json:"area_name"`
	CreatedBy   string              `json:"created_by"`
	Description *string             `json:"description,omitempty"`
	Coordinates *domain.Coordinates `json:"coordinates,omitempty"`
	Boundaries  *domain.Polygon     `json:"boundaries,omitempty"`
	Status      *domain.AreaStatus  `json:"status,omitempty"`
}

// UpdateAreaCommand requests a partial update of a sales area. Optional
// fields are pointers: nil means "leave unchanged", non-nil values are
// validated and applied.
type UpdateAreaCommand struct {
	ID          string              `json:"id"`
	UpdatedBy   string              `json:"updated_by"`
	AreaName    *string             `json:"area_name,omitempty"`
	Description *string             `json:"description,omitempty"`
	Coordinates *domain.Coordinates `json:"coordinates,omitempty"`
	Boundaries  *domain.Polygon     `json:"boundaries,omitempty"`
	Status      *domain.AreaStatus  `json:"status,omitempty"`
}
