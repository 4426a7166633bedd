// Command server runs the shop administration API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rkshop/admin-api/internal/config"
	"github.com/rkshop/admin-api/internal/platform/imagehost"
	"github.com/rkshop/admin-api/internal/platform/logger"
	"github.com/rkshop/admin-api/internal/platform/mongodb"
	"github.com/rkshop/admin-api/internal/service/auth"
	"github.com/rkshop/admin-api/internal/service/media"
	"github.com/rkshop/admin-api/internal/store"
)

const shutdownTimeout = 10 * time.Second

// application bundles the wired dependencies the router needs.
type application struct {
	config          *config.Config
	logger          *slog.Logger
	userStore       store.UserStore
	productStore    store.ProductStore
	categoryStore   store.CategoryStore
	jwtService      auth.JWTService
	passwordService *auth.BcryptService
	mediaService    *media.Service
}

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer disconnect(client, log)
	log.Info("database connected", "name", cfg.Database.Name)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to create token service: %w", err)
	}

	app := &application{
		config:          cfg,
		logger:          log,
		userStore:       mongodb.NewUserStore(db),
		productStore:    mongodb.NewProductStore(db),
		categoryStore:   mongodb.NewCategoryStore(db),
		jwtService:      jwtService,
		passwordService: auth.NewBcryptService(),
		mediaService:    media.NewService(imagehost.NewClient(cfg.Media), log),
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: app.setupRouter(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func disconnect(client *mongo.Client, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Error("failed to disconnect from database", "error", err)
	}
}
