package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/moodfeed/feed-system/docs"
	"github.com/moodfeed/feed-system/internal/api/handler"
	"github.com/moodfeed/feed-system/internal/api/middleware"
	"github.com/moodfeed/feed-system/internal/core/service"
	"github.com/moodfeed/feed-system/internal/infrastructure/config"
	mongodb "github.com/moodfeed/feed-system/internal/infrastructure/db/mongo"
	redisdb "github.com/moodfeed/feed-system/internal/infrastructure/db/redis"
	"github.com/moodfeed/feed-system/internal/infrastructure/identity"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("feed"))

	// --- Dependencies ---
	postRepo := mongodb.NewPostRepository(db)
	limiter := redisdb.NewSlidingWindowLimiter(rdb, cfg.RateLimit.Window, cfg.RateLimit.MaxRequests)
	resolver := identity.NewClient(cfg.Identity.BaseURL, cfg.Identity.Timeout, log)
	postService := service.NewPostService(postRepo, limiter, resolver, log)
	postHandler := handler.NewPostHandler(postService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Post routes ---
	e.POST("/v1/posts", postHandler.Create, authMiddleware)
	e.GET("/v1/feed", postHandler.Feed)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
