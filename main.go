package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"portfolio/config"
	"portfolio/database"
	"portfolio/handlers"
	"portfolio/lock"
	"portfolio/logging"
	"portfolio/middleware"
	"portfolio/notify"
	"portfolio/validation"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
)

const seedLockKey = "portfolio:seed-projects"

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.LoadFromEnv(*configPath)
	if err != nil {
		logging.Fatal("failed to load config", "error", err)
	}
	logging.Setup(cfg.Log.Level)

	if err := run(cfg); err != nil {
		logging.Fatal("server stopped", "error", err)
	}
}

func run(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout())
	store, err := database.Open(ctx, cfg.Database)
	cancel()
	if err != nil {
		return err
	}
	defer store.Close()

	locker, closeLocker, err := seedLocker(cfg, store)
	if err != nil {
		return err
	}
	defer closeLocker()

	// Seeding must finish before the first request is served.
	seedCtx, cancel := context.WithTimeout(context.Background(), 2*cfg.Redis.SeedLockTTL())
	inserted, err := database.SeedProjectsIfEmpty(seedCtx, store, locker, database.DefaultProjects())
	cancel()
	if err != nil {
		return err
	}
	if inserted > 0 {
		slog.Info("project catalog seeded", "count", inserted)
	}

	renderer, err := notify.NewRenderer(cfg.Notify.SiteName)
	if err != nil {
		return err
	}
	channels, err := notify.BuildChannels(context.Background(), cfg.Notify, notify.NewHTTPClient(cfg.Notify.Timeout()))
	if err != nil {
		return err
	}
	dispatcher := notify.NewDispatcher(renderer, cfg.Notify.Timeout(), channels...)

	validator := validation.New(
		validation.WithAllowedSubjects(cfg.Contact.AllowedSubjects...),
		validation.WithMinNameLength(cfg.Contact.MinNameLength),
	)

	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}
	router := newRouter(cfg, store, validator, dispatcher)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      withCORS(router, cfg.Server.AllowedOrigins),
		ReadTimeout:  cfg.Server.ReadTimeout(),
		WriteTimeout: cfg.Server.WriteTimeout(),
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", server.Addr, "channels", dispatcher.Channels())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		slog.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
	return nil
}

func newRouter(cfg *config.Config, store database.Store, validator *validation.Validator, notifier handlers.Notifier) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	api := r.Group("/api")
	api.GET("/health", handlers.HealthCheck(store))
	api.GET("/projects", handlers.ListProjects(store))
	api.POST("/contact", handlers.SubmitContact(store, validator, notifier))

	if cfg.Auth.AdminSecret != "" {
		api.GET("/messages", middleware.AdminRequired(cfg.Auth.AdminSecret), handlers.ListMessages(store))
	} else {
		slog.Warn("ADMIN_TOKEN_SECRET not set; /api/messages is publicly readable")
		api.GET("/messages", handlers.ListMessages(store))
	}

	return r
}

func withCORS(h http.Handler, origins []string) http.Handler {
	if len(origins) == 0 {
		return h
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}).Handler(h)
}

// seedLocker picks the lock guarding the startup seed: Redis when configured,
// else a Postgres advisory lock, else a no-op for single-file SQLite.
func seedLocker(cfg *config.Config, store database.Store) (lock.Locker, func(), error) {
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout())
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		slog.Info("seed lock backend", "backend", "redis", "addr", cfg.Redis.Addr)
		return lock.NewRedis(client, seedLockKey, cfg.Redis.SeedLockTTL()), func() { _ = client.Close() }, nil
	}

	if db, ok := store.(*database.DB); ok {
		slog.Info("seed lock backend", "backend", "postgres")
		return lock.NewPGAdvisory(db.Pool, seedLockKey), func() {}, nil
	}

	return lock.Noop{}, func() {}, nil
}
