package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/moruhq/moru-api/internal/api"
	apimiddleware "github.com/moruhq/moru-api/internal/api/middleware"
	"github.com/moruhq/moru-api/internal/config"
	"github.com/moruhq/moru-api/internal/platform/postgres"
	"github.com/moruhq/moru-api/internal/platform/redis"
	"github.com/moruhq/moru-api/internal/service"
	"github.com/moruhq/moru-api/internal/service/auth"
)

// application holds all the initialized dependencies of the server, wired
// together in dependency order by newApplication.
type application struct {
	config *config.Config
	logger *slog.Logger

	db          *sql.DB
	redisClient *goredis.Client

	sessionService auth.SessionService
	userService    service.UserService
	memoService    service.MemoService

	sessionMiddleware *apimiddleware.SessionMiddleware
	authHandler       *api.AuthHandler
	memoHandler       *api.MemoHandler
}

// newApplication initializes every layer of the server, from infrastructure
// (database, redis) up through stores, services, and HTTP handlers. Any
// failure aborts startup.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("database setup failed: %w", err)
	}

	if err := runMigrations(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	redisClient, err := setupRedis(ctx, cfg, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("redis setup failed: %w", err)
	}

	userStore := postgres.NewUserStore(db, logger)
	memoStore := postgres.NewMemoStore(db, logger)
	sessionStore := redis.NewSessionStore(redisClient, logger)

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	sessionMaxAge := time.Duration(cfg.Session.MaxAgeMinutes) * time.Minute
	sessionService, err := auth.NewSessionService(sessionStore, sessionMaxAge, logger)
	if err != nil {
		_ = db.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("session service setup failed: %w", err)
	}

	userService, err := service.NewUserService(userStore, hasher, logger)
	if err != nil {
		_ = db.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("user service setup failed: %w", err)
	}

	memoService, err := service.NewMemoService(memoStore, logger)
	if err != nil {
		_ = db.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("memo service setup failed: %w", err)
	}

	app := &application{
		config:            cfg,
		logger:            logger,
		db:                db,
		redisClient:       redisClient,
		sessionService:    sessionService,
		userService:       userService,
		memoService:       memoService,
		sessionMiddleware: apimiddleware.NewSessionMiddleware(sessionService, cfg.Session.CookieName),
		authHandler:       api.NewAuthHandler(userService, sessionService, cfg.Session),
		memoHandler:       api.NewMemoHandler(memoService),
	}

	return app, nil
}

// setupRedis connects to the redis instance backing the session store.
func setupRedis(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(cfg.Session.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := goredis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info("Redis connection established")
	return client, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			app.logger.Error("Failed to close redis client", slog.String("error", err.Error()))
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", slog.String("error", err.Error()))
		}
	}
}
