package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/boostithub/portfolio-backend/internal/clients/ghl"
	"github.com/boostithub/portfolio-backend/internal/data/repos"
	internalhttp "github.com/boostithub/portfolio-backend/internal/http"
	"github.com/boostithub/portfolio-backend/internal/platform/logger"
	"github.com/boostithub/portfolio-backend/internal/platform/mongodb"
	"github.com/boostithub/portfolio-backend/internal/platform/rediscache"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Router   *gin.Engine
	Repos    Repos
	Services Services

	server *internalhttp.Server
	mongo  *mongodb.Service
	cache  rediscache.Cache
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using process environment")
	}
	cfg := LoadConfig()

	mongoService, err := mongodb.NewService(log, mongodb.ConfigFromEnv())
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init mongo: %w", err)
	}
	db := mongoService.Database()

	// Cache is optional: only wired when REDIS_ADDR is present, and a
	// failed init degrades to serving straight from the store.
	var cache rediscache.Cache
	if os.Getenv("REDIS_ADDR") != "" {
		c, err := rediscache.NewFromEnv(log)
		if err != nil {
			log.Warn("Redis cache init failed, continuing without cache", "error", err)
		} else {
			cache = c
		}
	}

	reposet := wireRepos(db, log)

	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	seeder := repos.NewSeeder(log, reposet.Profiles, reposet.About, reposet.Skills)
	if err := seeder.Run(seedCtx); err != nil {
		_ = mongoService.Close(context.Background())
		log.Sync()
		return nil, fmt.Errorf("seed default data: %w", err)
	}

	crm := ghl.New(log, ghl.ConfigFromEnv())

	serviceset := wireServices(log, cfg, reposet, cache, crm)
	handlerset := wireHandlers(cfg, serviceset)
	server := wireServer(cfg, handlerset)

	return &App{
		Log:      log,
		Cfg:      cfg,
		Router:   server.Engine,
		Repos:    reposet,
		Services: serviceset,
		server:   server,
		mongo:    mongoService,
		cache:    cache,
	}, nil
}

func (a *App) Run(addr string) error {
	if a == nil || a.server == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Starting HTTP server", "addr", addr)
	return a.server.Run(addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.cache != nil {
		_ = a.cache.Close()
	}
	if a.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = a.mongo.Close(ctx)
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
