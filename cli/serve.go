package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpLayer "quantor/http"
	"quantor/logger"
)

func NewServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator page and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(ctx context.Context, opts *RootOptions) error {
	cfg := opts.Config
	defer logger.Shutdown(context.Background())

	a, err := newApp(ctx, cfg)
	if err != nil {
		logger.ErrorWithErr(ctx, "failed to start", err)
		return err
	}
	defer a.Close()

	theme, err := a.theme.Load(ctx)
	if err != nil {
		logger.Warn(ctx, "using default theme", "error", err)
	}

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	defer rateLimiter.Stop()

	pageHandler := httpLayer.NewPageHandler(a.page, a.form, a.theme, cfg.Notification.Delay.Seconds())
	apiHandler := httpLayer.NewEOQHandler(a.form, a.theme)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      httpLayer.NewRouter(pageHandler, apiHandler, rateLimiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info(ctx, "server listening", "addr", cfg.Server.Addr, "theme", theme, "theme_store", cfg.Theme.Store)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		logger.ErrorWithErr(ctx, "error starting server", err)
		return err
	case <-quit:
		logger.Info(ctx, "shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.ErrorWithErr(ctx, "error during server shutdown", err)
		return err
	}

	logger.Info(ctx, "server exited")
	return nil
}
