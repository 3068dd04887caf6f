// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

// Command api is the entry point for the Lexora HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (.env in development).
//  3. Connect to MongoDB.
//  4. Connect to Redis.
//  5. Run database migrations (idempotent index creation).
//  6. Initialize JWT signing and the S3 asset store.
//  7. Seed the configured admin account.
//  8. Wire HTTP handlers.
//  9. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nilupul/lexora/internal/admin"
	"github.com/nilupul/lexora/internal/api"
	"github.com/nilupul/lexora/internal/blog"
	"github.com/nilupul/lexora/internal/contact"
	"github.com/nilupul/lexora/internal/lawyer"
	"github.com/nilupul/lexora/internal/platform/assets"
	"github.com/nilupul/lexora/internal/platform/config"
	"github.com/nilupul/lexora/internal/platform/constants"
	"github.com/nilupul/lexora/internal/platform/migration"
	mongostore "github.com/nilupul/lexora/internal/platform/mongodb"
	redisstore "github.com/nilupul/lexora/internal/platform/redis"
	"github.com/nilupul/lexora/internal/platform/sec"
	"github.com/nilupul/lexora/internal/practice"
	"github.com/nilupul/lexora/internal/profile"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Lexora] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	// .env is a development convenience; production injects real env vars.
	if err := godotenv.Load(); err == nil {
		log.Info("loaded .env file")
	}

	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. MongoDB ────────────────────────────────────────────────────────
	mongoClient, err := mongostore.Connect(startupCtx, cfg.MongoURI, log)
	must(log, err, "connect to mongodb")
	defer mongostore.Disconnect(mongoClient, log)

	database := mongoClient.Database(cfg.MongoDatabase)

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.MongoURI, cfg.MigrationPath, log), "run migrations")

	// ── 6. Security & Assets ──────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	assetStore, err := assets.NewS3Store(assets.S3Config{
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		PublicURL: cfg.S3PublicURL,
	})
	must(log, err, "initialize asset store")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return mongostore.Ping(context.Background(), mongoClient)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	adminRepository := admin.NewMongoRepository(database)
	loginThrottle := admin.NewLoginThrottle(rdb, log)
	adminService := admin.NewService(adminRepository, jwtSvc, loginThrottle, log)
	must(log, adminService.Seed(startupCtx, cfg.AdminEmail, cfg.AdminPassword), "seed admin account")

	blogService := blog.NewService(blog.NewMongoRepository(database), assetStore, log)
	lawyerService := lawyer.NewService(lawyer.NewMongoRepository(database), assetStore, log)
	practiceService := practice.NewService(practice.NewMongoRepository(database), assetStore, log)
	profileService := profile.NewService(profile.NewMongoRepository(database), assetStore, log)
	contactService := contact.NewService(contact.NewMongoRepository(database), log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Admin:     admin.NewHandler(adminService),
		Blog:      blog.NewHandler(blogService),
		Lawyer:    lawyer.NewHandler(lawyerService),
		Practice:  practice.NewHandler(practiceService),
		Profile:   profile.NewHandler(profileService),
		Contact:   contact.NewHandler(contactService),
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
