package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/daepyo/internal/config"
	"github.com/abhisek/daepyo/internal/evaluate"
	"github.com/abhisek/daepyo/internal/judge"
	"github.com/abhisek/daepyo/internal/llm"
	"github.com/abhisek/daepyo/internal/session"
	"github.com/abhisek/daepyo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "daepyo",
	Short: "Which average fits? A lesson on mean, median and mode",
	Long: "daepyo is a short interactive lesson on choosing a representative value " +
		"(mean, median or mode). Answers are graded by an AI judge when an API key " +
		"is configured, and by built-in keyword rules otherwise.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadEnv()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DAEPYO_DB env var)")
	rootCmd.PersistentFlags().Bool("offline", false, "Grade with the built-in rules only, even if an API key is set")
	rootCmd.PersistentFlags().Bool("structured", false, "Ask the AI judge for a JSON verdict instead of marked prose")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides DAEPYO_LOG_LEVEL)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig merges environment settings with command-line flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		if err := store.EnsureDir(p); err != nil {
			return config.Config{}, err
		}
		cfg.DBPath = p
	}
	if off, _ := cmd.Flags().GetBool("offline"); off {
		cfg.Offline = true
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		if cfg.LogLevel, err = config.ParseLevel(lvl); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then DAEPYO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// deps is what every grading surface needs.
type deps struct {
	store *store.Store
	svc   *session.Service
}

func (d *deps) Close() error {
	return d.store.Close()
}

// buildDeps opens the event log and builds the session service. A missing
// API key is not an error: grading then runs on the local rules.
func buildDeps(ctx context.Context, cmd *cobra.Command, cfg config.Config) (*deps, error) {
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	eventRepo := st.EventRepo()

	var j *judge.Judge
	if !cfg.Offline {
		provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
		switch {
		case errors.Is(err, llm.ErrNoCredentials):
			slog.Info("cmd: no LLM credentials, grading locally")
		case err != nil:
			slog.Warn("cmd: LLM provider unavailable, grading locally", "error", err)
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		default:
			jcfg := judge.DefaultConfig()
			jcfg.Structured, _ = cmd.Flags().GetBool("structured")
			j = judge.New(provider, jcfg)
			slog.Info("cmd: AI judge enabled", "model", j.ModelID())
		}
	}

	return &deps{
		store: st,
		svc:   session.NewService(evaluate.NewService(j), eventRepo),
	}, nil
}
