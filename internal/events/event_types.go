package events

import (
	"time"

	"github.com/flowlytix/distribution-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserCreated       EventType = "user_created"
	EventUserAuthenticated EventType = "user_authenticated"
	EventPasswordChanged   EventType = "password_changed"
	EventAreaUpdated       EventType = "area_updated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserCreatedPayload payload.
type UserCreatedPayload struct {
	Email  string            `json:"email"`
	Role   domain.Role       `json:"role"`
	Status domain.UserStatus `json:"status"`
}

// UserAuthenticatedPayload payload.
type UserAuthenticatedPayload struct {
	Email      string `json:"email"`
	RememberMe bool   `json:"remember_me"`
	SessionID  string `json:"session_id"`
}

// PasswordChangedPayload payload.
type PasswordChangedPayload struct {
	ChangedBy string `json:"changed_by"`
}

// AreaUpdatedPayload payload describes which optional fields were applied.
type AreaUpdatedPayload struct {
	UpdatedBy     string   `json:"updated_by"`
	UpdatedFields []string `json:"updated_fields"`
}
