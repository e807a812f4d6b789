package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/flowlytix/distribution-service/internal/auth"
	"github.com/flowlytix/distribution-service/internal/command"
	"github.com/flowlytix/distribution-service/internal/config"
	"github.com/flowlytix/distribution-service/internal/domain"
	"github.com/flowlytix/distribution-service/internal/events"
	"github.com/flowlytix/distribution-service/internal/repository"
	apperrors "github.com/flowlytix/distribution-service/pkg/util"
)

// SessionManager is the slice of the session store the user service needs.
type SessionManager interface {
	Create(ctx context.Context, userID string, rememberMe bool, ttl time.Duration) (*auth.Session, error)
	Revoke(ctx context.Context, id string) error
	RevokeAll(ctx context.Context, userID string) error
}

// AuthResult bundles the outcome of a successful authentication.
type AuthResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
	SessionID string
}

// UserService executes user write commands after validating them.
type UserService struct {
	users      repository.UserRepository
	sessions   SessionManager
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	authCfg    config.AuthConfig
}

// UserDependencies encapsulates collaborators for the user service.
type UserDependencies struct {
	UserRepo   repository.UserRepository
	Sessions   SessionManager
	Dispatcher events.Dispatcher
}

// NewUserService builds the service.
func NewUserService(cfg config.Config, deps UserDependencies) *UserService {
	return &UserService{
		users:      deps.UserRepo,
		sessions:   deps.Sessions,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		dispatcher: deps.Dispatcher,
		authCfg:    cfg.Auth,
	}
}

// CreateUser validates the command, enforces email uniqueness, and persists
// the new account with a hashed password.
func (s *UserService) CreateUser(ctx context.Context, cmd command.CreateUserCommand) (*domain.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, cmd.Email); err == nil {
		return nil, apperrors.NewConflict("email already registered", map[string]any{"email": cmd.Email})
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(cmd.Password, s.authCfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	status := domain.UserStatusActive
	if cmd.Status != nil {
		status = *cmd.Status
	}

	user := &domain.User{
		Email:        cmd.Email,
		PasswordHash: hash,
		FirstName:    cmd.FirstName,
		LastName:     cmd.LastName,
		Role:         cmd.Role,
		Status:       status,
		CreatedBy:    cmd.CreatedBy,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventUserCreated, user.ID, cmd.CreatedBy, events.UserCreatedPayload{
		Email:  user.Email,
		Role:   user.Role,
		Status: user.Status,
	})
	return user, nil
}

// Authenticate validates the command and verifies credentials. A session is
// recorded in Redis; remember-me logins get the extended TTL.
func (s *UserService) Authenticate(ctx context.Context, cmd command.AuthenticateUserCommand) (*AuthResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, cmd.Password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	if user.Status != domain.UserStatusActive {
		return nil, apperrors.NewForbidden("account is not active")
	}

	session, err := s.sessions.Create(ctx, user.ID, cmd.RememberMe, s.authCfg.SessionTTL(cmd.RememberMe))
	if err != nil {
		return nil, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role, session.ID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventUserAuthenticated, user.ID, user.ID, events.UserAuthenticatedPayload{
		Email:      user.Email,
		RememberMe: cmd.RememberMe,
		SessionID:  session.ID,
	})
	return &AuthResult{User: user, Token: token, ExpiresAt: exp, SessionID: session.ID}, nil
}

// ChangePassword validates the command, verifies the current password, and
// rotates the hash. All existing sessions for the user are revoked.
func (s *UserService) ChangePassword(ctx context.Context, cmd command.ChangePasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, cmd.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("user", map[string]any{"user_id": cmd.UserID})
		}
		return err
	}

	if err := auth.ComparePassword(user.PasswordHash, cmd.CurrentPassword); err != nil {
		return apperrors.NewUnauthorized("current password is incorrect")
	}

	hash, err := auth.HashPassword(cmd.NewPassword, s.authCfg.BcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	if s.sessions != nil {
		if err := s.sessions.RevokeAll(ctx, user.ID); err != nil {
			return err
		}
	}

	s.publish(ctx, events.EventPasswordChanged, user.ID, cmd.ChangedBy, events.PasswordChangedPayload{
		ChangedBy: cmd.ChangedBy,
	})
	return nil
}

// Logout revokes the caller's session.
func (s *UserService) Logout(ctx context.Context, sessionID string) error {
	if s.sessions == nil || sessionID == "" {
		return nil
	}
	return s.sessions.Revoke(ctx, sessionID)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *UserService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *UserService) publish(ctx context.Context, eventType events.EventType, subjectID, actorID string, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		ActorID:   actorID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
