package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hackfest/submission-portal/internal/api/handler"
	"github.com/hackfest/submission-portal/internal/api/middleware"
	"github.com/hackfest/submission-portal/internal/core/ports"
	"github.com/hackfest/submission-portal/internal/core/service"
	mongodb "github.com/hackfest/submission-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/hackfest/submission-portal/internal/infrastructure/db/redis"
)

// RouterConfig carries the settings the HTTP surface needs.
type RouterConfig struct {
	JWTSecret  string
	SessionTTL time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, identity ports.IdentityProvider, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.Secure())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	teamRepo := mongodb.NewTeamRepository(db)
	directory := redisdb.NewDirectoryCache(rdb, teamRepo, log)
	submissionStore := mongodb.NewSubmissionRepository(db)

	sessionService := service.NewSessionService(identity, directory, cfg.JWTSecret, cfg.SessionTTL)
	submissionService := service.NewSubmissionService(directory, submissionStore, log)

	authHandler := handler.NewAuthHandler(sessionService)
	submissionHandler := handler.NewSubmissionHandler(submissionService)
	authMiddleware := middleware.Auth(sessionService)
	loginLimiter := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login, loginLimiter.Middleware())
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- Submission routes (leader session required) ---
	e.POST("/submissions", submissionHandler.Submit, authMiddleware)
	e.GET("/submissions/mine", submissionHandler.Mine, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
