package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/Amadavid/alx-backend-user-data/internal/logger"
	"github.com/Amadavid/alx-backend-user-data/internal/metrics"
	"github.com/Amadavid/alx-backend-user-data/internal/session"
	"github.com/Amadavid/alx-backend-user-data/internal/user"
)

// SessionOptions tunes SessionAuth.
type SessionOptions struct {
	// Duration bounds a session's lifetime. Zero means sessions live until
	// they are destroyed or the store is lost.
	Duration time.Duration
}

// SessionAuth authenticates requests by a session id cookie. Sessions are
// held in the injected Store.
type SessionAuth struct {
	store      session.Store
	users      UserFinder
	cookieName string
	duration   time.Duration
	now        func() time.Time
}

func NewSessionAuth(
	store session.Store,
	users UserFinder,
	cookieName string,
	opts SessionOptions,
) *SessionAuth {
	if cookieName == "" {
		cookieName = session.DefaultCookieName
	}
	return &SessionAuth{
		store:      store,
		users:      users,
		cookieName: cookieName,
		duration:   opts.Duration,
		now:        time.Now,
	}
}

// CookieName is the cookie carrying the session id.
func (a *SessionAuth) CookieName() string {
	return a.cookieName
}

// Duration is the configured session lifetime, zero when unbounded.
func (a *SessionAuth) Duration() time.Duration {
	return a.duration
}

func (a *SessionAuth) CreateSession(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", ErrInvalidUserID
	}

	sessionID, err := session.GenerateID()
	if err != nil {
		return "", err
	}

	if err := a.store.Put(ctx, session.Session{
		SessionID: sessionID,
		UserID:    userID,
		CreatedAt: a.now(),
	}); err != nil {
		return "", err
	}

	metrics.SessionsCreated.Inc()
	metrics.SessionsActive.Inc()
	return sessionID, nil
}

// UserIDForSessionID returns the user bound to sessionID, or "" when the
// id is empty, unknown or expired.
func (a *SessionAuth) UserIDForSessionID(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", nil
	}

	s, err := a.store.Get(ctx, sessionID)
	if err != nil || s == nil {
		return "", err
	}

	if a.expired(s) {
		if err := a.store.Remove(ctx, sessionID); err != nil {
			logger.Warn("failed to remove expired session", map[string]any{
				"error": err.Error(),
			})
		} else {
			metrics.SessionsDestroyed.WithLabelValues("expired").Inc()
			metrics.SessionsActive.Dec()
		}
		return "", nil
	}

	return s.UserID, nil
}

func (a *SessionAuth) expired(s *session.Session) bool {
	if a.duration <= 0 {
		return false
	}
	if s.CreatedAt.IsZero() {
		return true
	}
	return a.now().After(s.CreatedAt.Add(a.duration))
}

func (a *SessionAuth) CurrentUser(r *http.Request) (*user.User, error) {
	sessionID := SessionCookie(r, a.cookieName)
	if sessionID == "" {
		return nil, nil
	}

	userID, err := a.UserIDForSessionID(r.Context(), sessionID)
	if err != nil || userID == "" {
		return nil, err
	}

	if a.users == nil {
		return nil, nil
	}
	return a.users.Get(r.Context(), userID)
}

func (a *SessionAuth) DestroySession(r *http.Request) (bool, error) {
	sessionID := SessionCookie(r, a.cookieName)
	if sessionID == "" {
		return false, nil
	}

	userID, err := a.UserIDForSessionID(r.Context(), sessionID)
	if err != nil || userID == "" {
		return false, err
	}

	if err := a.store.Remove(r.Context(), sessionID); err != nil {
		return false, err
	}

	metrics.SessionsDestroyed.WithLabelValues("logout").Inc()
	metrics.SessionsActive.Dec()
	return true, nil
}
