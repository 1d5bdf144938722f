package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/pthm/hxtable"
	hxtableecho "github.com/pthm/hxtable/adapters/echo"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides config)")

	return cmd
}

// newServer wires the demo table, its handler and metrics into an Echo
// instance.
func newServer(cfg Config) (*echo.Echo, error) {
	logger, err := newLogger(os.Stderr, cfg.Log)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	opts := []hxtable.HandlerOption{
		hxtable.WithPrefix(cfg.Prefix),
		hxtable.WithRegisterer(reg),
	}
	if cfg.Key != "" {
		opts = append(opts, hxtable.WithKey([]byte(cfg.Key)))
	} else {
		logger.Warn("no key configured, using a random per-process key")
	}
	h := hxtable.NewHandler(newPeopleTable(logger), opts...)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Debug("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))

	hxtableecho.Mount(e, h)
	e.GET("/", func(c echo.Context) error {
		return hxtableecho.Render(c, page(h.Component()))
	})
	if cfg.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	logger.Info("hxtable demo configured", "addr", cfg.Addr, "prefix", h.Prefix(), "metrics", cfg.Metrics.Enabled)
	return e, nil
}

func serve(ctx context.Context, cfg Config) error {
	e, err := newServer(cfg)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	}
}
