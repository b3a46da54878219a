package handler

import (
	"net/http"
	"time"

	"github.com/Amadavid/alx-backend-user-data/internal/logger"
	"github.com/Amadavid/alx-backend-user-data/internal/metrics"
	"github.com/Amadavid/alx-backend-user-data/internal/session"

	"github.com/gin-gonic/gin"
)

// Login authenticates form-encoded email/password and opens a session.
func (h *Handler) Login(c *gin.Context) {
	email := c.PostForm("email")
	if email == "" {
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeMissingField).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "email missing"})
		return
	}

	password := c.PostForm("password")
	if password == "" {
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeMissingField).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "password missing"})
		return
	}

	u, err := h.users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeError).Inc()
		logger.Error("user lookup failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user lookup failed"})
		return
	}

	if u == nil {
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeUnknownUser).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "no user found for this email"})
		return
	}

	if !u.IsValidPassword(password) {
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeWrongPassword).Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong password"})
		return
	}

	sessionID, err := h.auth.CreateSession(c.Request.Context(), u.ID)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeError).Inc()
		logger.Error("failed to create session", map[string]any{
			"error":   err.Error(),
			"user_id": u.ID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return
	}

	var expiresAt time.Time
	if h.sessionTTL > 0 {
		expiresAt = time.Now().Add(h.sessionTTL)
	}
	session.SetCookie(c.Writer, sessionID, expiresAt, h.cookie)

	metrics.LoginAttempts.WithLabelValues(metrics.OutcomeSuccess).Inc()
	logger.Info("login succeeded", map[string]any{
		"user_id":   u.ID,
		"client_ip": c.ClientIP(),
	})

	c.JSON(http.StatusOK, u)
}
