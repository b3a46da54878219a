package app

import (
	"context"
	"net/http"

	"github.com/Amadavid/alx-backend-user-data/internal/auth"
	"github.com/Amadavid/alx-backend-user-data/internal/auth/handler"
	"github.com/Amadavid/alx-backend-user-data/internal/config"
	"github.com/Amadavid/alx-backend-user-data/internal/metrics"
	"github.com/Amadavid/alx-backend-user-data/internal/middleware"
	"github.com/Amadavid/alx-backend-user-data/internal/session"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {
	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	router, err := newRouter(cfg, infra)
	if err != nil {
		_ = infra.Close()
		return nil, nil, err
	}

	return router, infra.Close, nil
}

// newRouter builds the engine over already-initialised infrastructure.
func newRouter(cfg config.Config, infra *Infra) (*gin.Engine, error) {
	// ----------------------------
	// Dependencies
	// ----------------------------

	authenticator, err := auth.New(auth.Options{
		Type:       cfg.AuthType,
		CookieName: cfg.SessionName,
		Store:      infra.Sessions,
		Users:      infra.Users,
		Session:    auth.SessionOptions{Duration: cfg.SessionDuration},
	})
	if err != nil {
		return nil, err
	}

	cookie := session.CookieOptions{
		Name:     cfg.SessionName,
		Secure:   cfg.SessionCookieSecure,
		SameSite: http.SameSiteLaxMode,
	}

	authHandler := handler.NewHandler(authenticator, infra.Users, cookie, cfg.SessionDuration)
	authMiddleware := middleware.NewAuthMiddleware(authenticator, cfg.SessionName, nil)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	status := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	}
	router.GET("/status", status)
	router.GET("/status/", status)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ----------------------------
	// Protected Routes
	// ----------------------------

	protected := router.Group("/")
	if cfg.AuthType != auth.TypeNone {
		protected.Use(middleware.GinRequireAuth(authMiddleware))
	}
	authHandler.RegisterProtectedRoutes(protected)

	return router, nil
}
