package auth

import (
	"context"
	"net/http"

	"github.com/Amadavid/alx-backend-user-data/internal/user"
)

// NoAuth never authenticates anyone.
type NoAuth struct{}

func (NoAuth) CurrentUser(*http.Request) (*user.User, error) {
	return nil, nil
}

func (NoAuth) CreateSession(context.Context, string) (string, error) {
	return "", ErrUnsupported
}

func (NoAuth) DestroySession(*http.Request) (bool, error) {
	return false, nil
}
