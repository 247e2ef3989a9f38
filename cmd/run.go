package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/daepyo/internal/app"
	"github.com/abhisek/daepyo/internal/logging"
)

// runApp opens the store, builds dependencies, and launches the TUI. Logs go
// to a file so they do not draw over the screen.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logPath := cfg.LogFile
	if logPath == "" {
		logPath = logging.DefaultFile(cfg.DBPath)
	}
	closer, err := logging.SetupFile(logPath, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closer.Close()

	d, err := buildDeps(ctx, cmd, cfg)
	if err != nil {
		return err
	}
	defer d.Close()

	return app.Run(ctx, d.svc)
}
