package main

import (
	"context"
	"log"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"

	"github.com/Owen-Kz/bn-portfolio/internal/config"
	"github.com/Owen-Kz/bn-portfolio/internal/database"
	"github.com/Owen-Kz/bn-portfolio/internal/handler"
	"github.com/Owen-Kz/bn-portfolio/internal/queue"
	"github.com/Owen-Kz/bn-portfolio/internal/repository"
	"github.com/Owen-Kz/bn-portfolio/internal/router"
	"github.com/Owen-Kz/bn-portfolio/internal/storage"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	var store storage.Store
	if cfg.StorageBackend == "s3" {
		s3store, err := storage.NewS3Store(context.Background(), cfg)
		if err != nil {
			log.Fatalf("s3 storage: %v", err)
		}
		store = s3store
	} else {
		store = storage.NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL)
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; cache and rate limiting disabled")
	}

	// Contact messages land on the broker; the consumer turns them into
	// log lines. It reconnects on its own, so one goroutine is enough.
	go func() {
		if err := queue.StartContactConsumer(); err != nil {
			log.Printf("contact consumer stopped: %v", err)
		}
	}()

	users := repository.NewUserRepo(db)
	items := repository.NewPortfolioRepo(db)
	devItems := repository.NewDevPortfolioRepo(db)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, router.Handlers{
		Auth:      handler.NewAuthHandler(cfg, users),
		Portfolio: handler.NewPortfolioHandler(items, store),
		Dev:       handler.NewDevPortfolioHandler(devItems, store),
		Public:    handler.NewPublicHandler(items, devItems),
	}, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, storage=%s)", addr, cfg.Env, cfg.StorageBackend)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
