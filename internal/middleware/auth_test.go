package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Amadavid/alx-backend-user-data/internal/auth"
	"github.com/Amadavid/alx-backend-user-data/internal/session"
	"github.com/Amadavid/alx-backend-user-data/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cookieName = "_my_session_id"

func setup(t *testing.T) (*AuthMiddleware, string) {
	t.Helper()
	ctx := context.Background()

	users := user.NewMemoryRepository()
	u := &user.User{Email: "a@b.com"}
	require.NoError(t, users.Create(ctx, u))

	sa := auth.NewSessionAuth(session.NewMemoryStore(), users, cookieName, auth.SessionOptions{})
	sid, err := sa.CreateSession(ctx, u.ID)
	require.NoError(t, err)

	return NewAuthMiddleware(sa, cookieName, []string{"/status/"}), sid
}

func echoUser(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	_, _ = w.Write([]byte(u.Email))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestRequireAuth_ExcludedPath(t *testing.T) {
	mw, _ := setup(t)
	rec := httptest.NewRecorder()

	mw.RequireAuth(http.HandlerFunc(echoUser)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestRequireAuth_NoCredentials(t *testing.T) {
	mw, _ := setup(t)
	rec := httptest.NewRecorder()

	mw.RequireAuth(http.HandlerFunc(echoUser)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", decodeError(t, rec))
}

func TestRequireAuth_UnknownSession(t *testing.T) {
	mw, _ := setup(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "bogus"})

	mw.RequireAuth(http.HandlerFunc(echoUser)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Forbidden", decodeError(t, rec))
}

func TestRequireAuth_ValidSession(t *testing.T) {
	mw, sid := setup(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: sid})

	mw.RequireAuth(http.HandlerFunc(echoUser)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@b.com", rec.Body.String())
}

func TestGinRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw, sid := setup(t)

	r := gin.New()
	reached := false
	r.GET("/users/me", GinRequireAuth(mw), func(c *gin.Context) {
		reached = true
		u, ok := UserFromContext(c.Request.Context())
		require.True(t, ok)
		c.String(http.StatusOK, u.Email)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: sid})
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@b.com", rec.Body.String())
	assert.True(t, reached)
}
