package session

import (
	"context"
	"time"
)

// Session binds a session identifier to the user it authenticates.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Store holds live sessions. Get returns nil, nil for unknown ids and
// Remove is a no-op for them.
type Store interface {
	Put(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Remove(ctx context.Context, sessionID string) error
}
