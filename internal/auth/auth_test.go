package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Amadavid/alx-backend-user-data/internal/session"
	"github.com/Amadavid/alx-backend-user-data/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAuth(t *testing.T) {
	excluded := []string{"/status/", "/auth_session/login/", "/stat*"}

	tests := []struct {
		name     string
		path     string
		excluded []string
		want     bool
	}{
		{name: "empty path", path: "", excluded: excluded, want: true},
		{name: "no exclusions", path: "/status/", excluded: nil, want: true},
		{name: "exact match", path: "/status/", excluded: excluded, want: false},
		{name: "missing trailing slash", path: "/auth_session/login", excluded: excluded, want: false},
		{name: "wildcard prefix", path: "/stats", excluded: excluded, want: false},
		{name: "protected", path: "/users/me", excluded: excluded, want: true},
		{name: "prefix without wildcard", path: "/status/extra", excluded: []string{"/status/"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequireAuth(tt.path, tt.excluded))
		})
	}
}

func TestAuthorizationHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", AuthorizationHeader(req))

	req.Header.Set("Authorization", "Basic abc")
	assert.Equal(t, "Basic abc", AuthorizationHeader(req))
	assert.Equal(t, "", AuthorizationHeader(nil))
}

func TestNew(t *testing.T) {
	store := session.NewMemoryStore()
	users := user.NewMemoryRepository()

	a, err := New(Options{Type: TypeNone})
	require.NoError(t, err)
	assert.IsType(t, NoAuth{}, a)

	a, err = New(Options{Type: TypeBasic, Users: users})
	require.NoError(t, err)
	assert.IsType(t, &BasicAuth{}, a)

	a, err = New(Options{Type: TypeSession, Store: store, Users: users, CookieName: "sid"})
	require.NoError(t, err)
	require.IsType(t, &SessionAuth{}, a)
	assert.Equal(t, "sid", a.(*SessionAuth).CookieName())

	_, err = New(Options{Type: TypeSession})
	assert.Error(t, err)

	_, err = New(Options{Type: "jwt"})
	assert.Error(t, err)
}

func TestNoAuth(t *testing.T) {
	var a Authenticator = NoAuth{}

	u, err := a.CurrentUser(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Nil(t, u)

	_, err = a.CreateSession(context.Background(), "42")
	assert.ErrorIs(t, err, ErrUnsupported)

	ok, err := a.DestroySession(nil)
	require.NoError(t, err)
	assert.False(t, ok)
}
