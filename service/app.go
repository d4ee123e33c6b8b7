package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quickblog/app/config"
	"quickblog/app/images"
	"quickblog/app/logger"
	"quickblog/app/repositories"
	"quickblog/app/routes"
)

const storeConnectTimeout = 10 * time.Second

// RunAppServer starts the blog API and blocks until SIGINT or SIGTERM.
// It returns the process exit code.
func RunAppServer(args []string) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		return 1
	}
	for i := 0; i < len(args); i++ {
		if args[i] == "--port" && i+1 < len(args) {
			cfg.Port = args[i+1]
			break
		}
	}
	logger.SetLogger(logger.New(os.Stdout, cfg.LogLevel))

	if err := cfg.ValidateImageKit(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return 1
	}
	imageHost, err := images.NewClient(images.Config{
		PublicKey:    cfg.ImageKitPublicKey,
		PrivateKey:   cfg.ImageKitPrivateKey,
		URLEndpoint:  cfg.ImageKitURLEndpoint,
		UploadPrefix: cfg.ImageKitUploadPrefix,
		Timeout:      cfg.ImageKitTimeout,
	})
	if err != nil {
		logger.Error("failed to create image client", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error("failed to open store", "backend", cfg.StoreBackend, "error", err)
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close store", "error", err)
		}
	}()

	srv := newServer(cfg, routes.SetupRoutes(routes.Dependencies{
		Config:    cfg,
		Store:     store,
		ImageHost: imageHost,
	}))

	logger.Info("starting blog service", "addr", srv.Addr, "store", store.Name())
	if err := runServer(ctx, srv, cfg.ShutdownTimeout); err != nil {
		logger.Error("server error", "error", err)
		return 1
	}
	logger.Info("server stopped")
	return 0
}

// openStore opens the backend named by STORE_BACKEND.
func openStore(ctx context.Context, cfg *config.Config) (repositories.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendBadger:
		if err := os.MkdirAll(cfg.BadgerPath, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		return repositories.OpenBadger(cfg.BadgerPath)
	case config.BackendMongoDB:
		ctx, cancel := context.WithTimeout(ctx, storeConnectTimeout)
		defer cancel()
		return repositories.OpenMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func newServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// runServer serves until ctx is cancelled, then drains in-flight requests
// for at most shutdownTimeout.
func runServer(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
