// Package auth resolves the user behind an HTTP request. The concrete
// Authenticator (none, basic or session) is chosen once at startup.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Amadavid/alx-backend-user-data/internal/session"
	"github.com/Amadavid/alx-backend-user-data/internal/user"
)

var (
	ErrInvalidUserID = errors.New("auth: user id is empty")
	ErrUnsupported   = errors.New("auth: sessions not supported by this authenticator")
)

// Authenticator is the capability every auth variant provides.
type Authenticator interface {
	// CurrentUser returns the authenticated user, or nil when the request
	// carries no valid credentials.
	CurrentUser(r *http.Request) (*user.User, error)

	// CreateSession issues a session for userID and returns its id.
	CreateSession(ctx context.Context, userID string) (string, error)

	// DestroySession invalidates the request's session. It reports false
	// when there was no live session to destroy.
	DestroySession(r *http.Request) (bool, error)
}

// UserFinder is the subset of user.Repository the authenticators need.
type UserFinder interface {
	Get(ctx context.Context, id string) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

// Variant names accepted by New.
const (
	TypeNone    = "none"
	TypeBasic   = "basic"
	TypeSession = "session"
)

// Options configures New.
type Options struct {
	Type       string
	CookieName string
	Store      session.Store
	Users      UserFinder
	Session    SessionOptions
}

// New builds the authenticator named by opts.Type.
func New(opts Options) (Authenticator, error) {
	switch opts.Type {
	case TypeNone, "":
		return NoAuth{}, nil
	case TypeBasic:
		return NewBasicAuth(opts.Users), nil
	case TypeSession:
		if opts.Store == nil {
			return nil, errors.New("auth: session auth requires a store")
		}
		return NewSessionAuth(opts.Store, opts.Users, opts.CookieName, opts.Session), nil
	default:
		return nil, fmt.Errorf("auth: unknown auth type %q", opts.Type)
	}
}

// RequireAuth reports whether path needs authentication. Paths compare
// regardless of a trailing slash, and an excluded entry ending in "*"
// matches every path with that prefix.
func RequireAuth(path string, excludedPaths []string) bool {
	if path == "" || len(excludedPaths) == 0 {
		return true
	}

	path = withSlash(path)
	for _, excluded := range excludedPaths {
		if excluded == "" {
			continue
		}
		if prefix, ok := strings.CutSuffix(excluded, "*"); ok {
			if strings.HasPrefix(path, prefix) {
				return false
			}
			continue
		}
		if withSlash(excluded) == path {
			return false
		}
	}
	return true
}

func withSlash(p string) string {
	if strings.HasSuffix(p, "/") {
		return p
	}
	return p + "/"
}

// AuthorizationHeader returns the raw Authorization header, or "".
func AuthorizationHeader(r *http.Request) string {
	if r == nil {
		return ""
	}
	return r.Header.Get("Authorization")
}

// SessionCookie returns the value of the named session cookie, or "".
func SessionCookie(r *http.Request, name string) string {
	return session.FromRequest(r, name)
}
