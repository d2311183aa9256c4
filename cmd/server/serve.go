package main

import (
	"comepouco/internal/api"
	"comepouco/internal/auth"
	"comepouco/internal/model"
	"comepouco/internal/storage"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  serveCommand,
	}
}

func serveCommand(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	repo, err := model.InitRepository(&cfg)
	if err != nil {
		return fmt.Errorf("initialise repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logrus.WithError(err).Warn("failed to close repository")
		}
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	seedCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	created, err := model.SeedAdmin(seedCtx, repo, auth.NewHasher(cfg.BcryptCost, 1), cfg)
	cancel()
	if err != nil {
		logrus.WithError(err).Warn("failed to seed admin user")
	} else if !created {
		countCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		count, err := repo.CountUsers(countCtx)
		cancel()
		if err == nil && count == 0 {
			logrus.Warn("no users exist; set ADMIN_EMAIL and ADMIN_PASSWORD or run create-admin")
		}
	}

	store, err := storage.NewStorage(cfg)
	if err != nil {
		return fmt.Errorf("initialise storage: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	httpHandler, err := api.NewHTTPHandler(cfg, repo, store, api.NewMetrics(registry))
	if err != nil {
		return fmt.Errorf("initialise http handler: %w", err)
	}

	// 设置Gin模式
	gin.SetMode(gin.ReleaseMode)
	r := api.NewRouter(httpHandler)

	serverHost := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
	httpServer := &http.Server{
		Addr:              serverHost,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("host", serverHost).Info("服务器启动")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logrus.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	logrus.Info("server stopped")
	return nil
}
