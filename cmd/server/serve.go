package main

import (
	"context"
	"ctchen222/acme-store/internal/api/controller"
	"ctchen222/acme-store/internal/seed"
	"ctchen222/acme-store/internal/server"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	gin.SetMode(a.cfg.GinMode)

	if err := a.prepareSchema(ctx, a.cfg.ResetSchema); err != nil {
		return err
	}
	if a.cfg.Seed {
		// A failed seed leaves the server usable, just without sample data.
		if _, err := seed.Run(ctx, a.services); err != nil {
			slog.ErrorContext(ctx, "Failed to seed sample data", "error", err)
		}
	}

	srv := server.NewServer(server.Controllers{
		Users:     controller.NewUserController(a.services.Users),
		Products:  controller.NewProductController(a.services.Products),
		Favorites: controller.NewFavoriteController(a.services.Favorites),
	}, a.db)

	httpServer := &http.Server{
		Addr:              a.cfg.Addr(),
		Handler:           srv.Handler(a.cfg.AllowOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("HTTP server started", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	slog.Info("Server exiting")
	return nil
}
