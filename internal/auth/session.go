package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned when a session is missing, expired, or revoked.
var ErrSessionNotFound = errors.New("session not found")

// Session records an issued login session. Remember-me logins get a longer TTL.
type Session struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	RememberMe bool      `json:"remember_me"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// SessionStore persists sessions in Redis keyed by session ID, with a
// per-user index so every session of a user can be revoked at once.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore builds a store over the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func sessionKey(id string) string {
	return "session:" + id
}

func userSessionsKey(userID string) string {
	return "user_sessions:" + userID
}

// Create stores a new session with the given TTL and returns it.
func (s *SessionStore) Create(ctx context.Context, userID string, rememberMe bool, ttl time.Duration) (*Session, error) {
	now := time.Now()
	session := &Session{
		ID:         uuid.NewString(),
		UserID:     userID,
		RememberMe: rememberMe,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionKey(session.ID), payload, ttl)
	pipe.SAdd(ctx, userSessionsKey(userID), session.ID)
	pipe.Expire(ctx, userSessionsKey(userID), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return session, nil
}

// Get loads a session by ID.
func (s *SessionStore) Get(ctx context.Context, id string) (*Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Revoke deletes a single session.
func (s *SessionStore) Revoke(ctx context.Context, id string) error {
	session, err := s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, sessionKey(id))
	pipe.SRem(ctx, userSessionsKey(session.UserID), id)
	_, err = pipe.Exec(ctx)
	return err
}

// RevokeAll deletes every session belonging to the user. Called after a
// password change so stolen tokens stop working.
func (s *SessionStore) RevokeAll(ctx context.Context, userID string) error {
	ids, err := s.client.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil && err != redis.Nil {
		return err
	}

	pipe := s.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, sessionKey(id))
	}
	pipe.Del(ctx, userSessionsKey(userID))
	_, err = pipe.Exec(ctx)
	return err
}
