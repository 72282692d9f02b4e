package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/Owen-Kz/bn-portfolio/internal/config"
	"github.com/Owen-Kz/bn-portfolio/internal/handler"
	"github.com/Owen-Kz/bn-portfolio/internal/middleware"
)

// Handlers collects everything the route table needs. main builds one of
// these after wiring repositories and storage.
type Handlers struct {
	Auth      *handler.AuthHandler
	Portfolio *handler.PortfolioHandler
	Dev       *handler.DevPortfolioHandler
	Public    *handler.PublicHandler
}

// Register wires the full route table. The consumed paths are flat (no
// version prefix) because the dashboard and marketing clients address them
// that way. Three tiers:
//
//   - open: health, signup, login, public listings, contact
//   - rate-limited: signup/login/contact and the two upload endpoints
//   - protected: everything touching per-user data, behind JWTAuth
func Register(e *echo.Echo, cfg config.Config, h Handlers, rdb *redis.Client) {
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	e.GET("/healthz", handler.Health)

	// Account endpoints. Login and signup sit behind the limiter so
	// credential stuffing burns out quickly.
	e.POST("/signup", h.Auth.Signup, limiter)
	e.POST("/login", h.Auth.Login, limiter)

	// Public marketing grids, cached in Redis; contents only change on
	// upload so a short TTL keeps them fresh enough.
	e.GET("/files", h.Public.GetFiles, cache)
	e.GET("/devFiles", h.Public.GetDevFiles, cache)
	e.POST("/contact", handler.Contact, limiter)

	// Serve locally stored images. With the s3 backend this route simply
	// never matches anything.
	if cfg.StorageBackend == "local" {
		e.Static("/uploads", cfg.UploadDir)
	}

	// Everything below requires a valid bearer token.
	auth := e.Group("", middleware.JWTAuth(cfg.JWTSecret))
	auth.POST("/loggedIn", h.Auth.LoggedIn)
	auth.GET("/me", h.Auth.Me)
	auth.GET("/getMyPortfolioItems", h.Portfolio.GetMyPortfolioItems)
	auth.GET("/countMyPortfolioItems", h.Portfolio.CountMyPortfolioItems)
	auth.GET("/getDevPortfolioItems", h.Dev.GetDevPortfolioItems)
	auth.POST("/uploadFiles", h.Portfolio.UploadFiles, limiter)
	auth.POST("/uploadDevFiles", h.Dev.UploadDevFiles, limiter)
}
