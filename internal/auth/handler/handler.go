package handler

import (
	"net/http"
	"time"

	"github.com/Amadavid/alx-backend-user-data/internal/auth"
	"github.com/Amadavid/alx-backend-user-data/internal/logger"
	"github.com/Amadavid/alx-backend-user-data/internal/session"
	"github.com/Amadavid/alx-backend-user-data/internal/user"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	auth       auth.Authenticator
	users      user.Repository
	cookie     session.CookieOptions
	sessionTTL time.Duration
}

// NewHandler wires the HTTP endpoints. sessionTTL sets the cookie expiry;
// zero issues a browser-session cookie.
func NewHandler(
	authenticator auth.Authenticator,
	users user.Repository,
	cookie session.CookieOptions,
	sessionTTL time.Duration,
) *Handler {
	return &Handler{
		auth:       authenticator,
		users:      users,
		cookie:     cookie,
		sessionTTL: sessionTTL,
	}
}

// RegisterRoutes mounts the public routes. Session routes accept an
// optional trailing slash.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/auth_session/login", h.Login)
	r.POST("/auth_session/login/", h.Login)
	r.DELETE("/auth_session/logout", h.Logout)
	r.DELETE("/auth_session/logout/", h.Logout)

	r.POST("/users", h.Register)
}

// RegisterProtectedRoutes mounts routes that expect the auth middleware
// to have resolved the current user.
func (h *Handler) RegisterProtectedRoutes(r gin.IRouter) {
	r.GET("/users/me", h.Me)
}

func (h *Handler) Logout(c *gin.Context) {
	ok, err := h.auth.DestroySession(c.Request)
	if err != nil {
		logger.Error("failed to destroy session", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return
	}

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	session.ClearCookie(c.Writer, h.cookie)

	logger.Info("logout", map[string]any{
		"client_ip": c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{})
}
