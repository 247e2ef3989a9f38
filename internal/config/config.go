// Package config gathers the process-level settings that sit outside the LLM
// layer: where the event log lives, where the HTTP surface listens and how
// much is logged.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/abhisek/daepyo/internal/store"
)

// Config holds process settings. Flags override the values loaded here.
type Config struct {
	DBPath   string
	Addr     string
	Offline  bool
	LogLevel slog.Level
	LogFile  string
}

// LoadEnv reads KEY=VALUE pairs from the given .env files into the process
// environment without overriding variables that are already set. With no
// files it reads ./.env. Missing files are not an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// FromEnv builds a Config from DAEPYO_* variables.
func FromEnv() (Config, error) {
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:  dbPath,
		Addr:    envOr("DAEPYO_ADDR", ":8080"),
		Offline: parseBool(os.Getenv("DAEPYO_OFFLINE")),
		LogFile: os.Getenv("DAEPYO_LOG_FILE"),
	}

	level, err := ParseLevel(envOr("DAEPYO_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level
	return cfg, nil
}

// ParseLevel accepts debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
