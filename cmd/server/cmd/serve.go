package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"eventsapi/internal/adapters/idgen"
	delivery "eventsapi/internal/delivery/http"
	"eventsapi/internal/delivery/http/controllers"
	"eventsapi/internal/services"
	"eventsapi/internal/usecase"
)

const (
	connectTimeout  = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		repo, closeStore, err := openStore(connectCtx, cfg, logger)
		cancel()
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := closeStore(closeCtx); err != nil {
				logger.Error("close store", "err", err)
			}
		}()

		svc := services.NewEventService(repo, idgen.NewUUIDGenerator(), cfg.RequestTimeout)
		uc := usecase.NewEventUseCase(svc)

		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		handler := delivery.NewRouter(
			delivery.RouterConfig{Logger: logger, Registry: registry, AllowedOrigins: cfg.AllowedOrigins},
			controllers.NewEventController(logger, uc),
			controllers.NewHealthController(logger, repo, cfg.RequestTimeout),
		)

		server := &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      30 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			MaxHeaderBytes:    1 << 20,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("http server listening", "addr", server.Addr, "storage", cfg.StorageDriver)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	},
}
