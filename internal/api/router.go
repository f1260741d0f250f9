package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pocketbase/dbx"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ieee-kiit/events-api/internal/api/handler"
	"github.com/ieee-kiit/events-api/internal/api/middleware"
	"github.com/ieee-kiit/events-api/internal/core/service"
	"github.com/ieee-kiit/events-api/internal/infrastructure/config"
	"github.com/ieee-kiit/events-api/internal/infrastructure/db/mysql"
	redisdb "github.com/ieee-kiit/events-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The store clients are constructed by the composition root and injected here;
// nothing below holds package-level state.
func NewRouter(db *dbx.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.IsProduction())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("events_api"))

	// --- Dependencies ---
	eventRepo := mysql.NewEventRepository(db)
	societyRepo := mysql.NewSocietyRepository(db)
	authRepo := mysql.NewAuthRepository(db)

	eventService := service.NewEventService(eventRepo, log)
	societyService := service.NewSocietyService(societyRepo, log)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, 24*time.Hour)

	eventHandler := handler.NewEventHandler(eventService)
	societyHandler := handler.NewSocietyHandler(societyService)
	authHandler := handler.NewAuthHandler(authService)

	requireAuth := middleware.Auth(cfg.JWTSecret)
	loginLimit := middleware.LoginRateLimit(redisdb.NewLoginLimiter(rdb, 0, 0), log)

	// --- API routes ---
	apiGroup := e.Group("/api")

	events := apiGroup.Group("/events")
	events.GET("", eventHandler.List)
	events.GET("/stats", eventHandler.Stats)
	events.GET("/:id", eventHandler.Get)
	events.POST("", eventHandler.Create, requireAuth)
	events.PUT("/:id", eventHandler.Update, requireAuth)
	events.DELETE("/:id", eventHandler.Delete, requireAuth)

	societies := apiGroup.Group("/societies")
	societies.GET("", societyHandler.List)
	societies.GET("/:id", societyHandler.Get)
	societies.POST("", societyHandler.Create, requireAuth)
	societies.PUT("/:id", societyHandler.Update, requireAuth)
	societies.DELETE("/:id", societyHandler.Delete, requireAuth)

	auth := apiGroup.Group("/auth")
	auth.POST("/login", authHandler.Login, loginLimit)
	auth.GET("/me", authHandler.Me, requireAuth)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
