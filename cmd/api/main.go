// Package main is the entry point for the Guidebook API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/pkordes/guidebook/internal/config"
	"github.com/pkordes/guidebook/internal/handler"
	"github.com/pkordes/guidebook/internal/mockgen"
	"github.com/pkordes/guidebook/internal/repo"
	"github.com/pkordes/guidebook/internal/service"
	"github.com/pkordes/guidebook/internal/taxonomy"
	"github.com/pkordes/guidebook/migrations"
)

// sessionPurgeInterval is how often expired session rows are deleted.
const sessionPurgeInterval = time.Hour

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	if err := migrate(context.Background(), pool); err != nil {
		slog.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	// --- Services ---------------------------------------------------------
	tax := taxonomy.Default()

	users := repo.NewUserRepo(pool)
	sessions := repo.NewSessionRepo(pool)
	collections := repo.NewCollectionRepo(pool)
	saved := repo.NewSavedRepo(pool)
	shares := repo.NewShareRepo(pool)
	prefs := repo.NewPreferenceRepo(pool)
	businesses := repo.NewBusinessRepo(pool)
	plans := repo.NewPlanRepo(pool)
	cards := repo.NewGiftCardRepo(pool)
	amenities := repo.NewAmenityRepo(pool)

	authSvc := service.NewAuthService(users, sessions, cfg.SessionTTL)

	srv := handler.NewServer(handler.Services{
		Selection:   service.NewSelectionService(tax),
		Search:      service.NewSearchService(mockgen.NewRandom(cfg.SearchDelay), service.NewResultBoard()),
		Auth:        authSvc,
		Collections: service.NewCollectionService(collections, saved),
		Shares:      service.NewShareService(collections, saved, shares),
		Preferences: service.NewPreferenceService(prefs, tax),
		Admin:       service.NewAdminService(users, businesses, plans, cards, amenities),
		Businesses:  service.NewBusinessService(businesses, plans),
		Plans:       service.NewPlanService(plans),
		GiftCards:   service.NewGiftCardService(cards, businesses),
		Amenities:   service.NewAmenityService(amenities),
	}, handler.Options{
		CORSOrigins:  cfg.CORSOrigins,
		PublicOrigin: cfg.PublicOrigin,
		SignInPath:   cfg.SignInPath,
		CookieSecure: cfg.CookieSecure,
		MaxBodyBytes: cfg.MaxBodyBytes,
	}, logger)

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	bg, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	go purgeSessions(bg, authSvc, logger)

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")
	stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrate applies pending migrations through a database/sql handle
// borrowed from the pool.
func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	n, err := migrations.Up(ctx, db)
	if err != nil {
		return err
	}
	slog.Info("migrations applied", "count", n)
	return nil
}

func purgeSessions(ctx context.Context, svc *service.AuthService, log *slog.Logger) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := svc.PurgeExpired(ctx)
			if err != nil {
				log.Warn("session purge failed", "error", err)
				continue
			}
			if n > 0 {
				log.Info("expired sessions purged", "count", n)
			}
		}
	}
}
