package cmd

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

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/daepyo/internal/api"
	"github.com/abhisek/daepyo/internal/logging"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the lesson as a JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}
		logging.SetupJSON(os.Stderr, cfg.LogLevel)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		d, err := buildDeps(ctx, cmd, cfg)
		if err != nil {
			return err
		}
		defer d.Close()

		opts := api.DefaultOptions()
		if origins, _ := cmd.Flags().GetStringSlice("origin"); len(origins) > 0 {
			opts.AllowedOrigins = origins
		}

		if ttl, _ := cmd.Flags().GetDuration("session-ttl"); ttl > 0 {
			opts.SessionTTL = ttl
		}

		handler := api.NewServer(d.svc, opts)
		srv := &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			slog.Info("serve: listening", "addr", cfg.Addr, "remote", d.svc.Remote())
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			return handler.RunSweeper(gctx)
		})
		g.Go(func() error {
			<-gctx.Done()
			slog.Info("serve: shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides DAEPYO_ADDR, default :8080)")
	serveCmd.Flags().StringSlice("origin", nil, "Allowed CORS origin; repeatable")
	serveCmd.Flags().Duration("session-ttl", 0, "End sessions idle this long (default 30m)")
}
