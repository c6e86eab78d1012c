package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jonathan/portfolio/internal/config"
	"github.com/jonathan/portfolio/internal/content"
	"github.com/jonathan/portfolio/internal/experience"
	"github.com/jonathan/portfolio/internal/i18n"
	"github.com/jonathan/portfolio/internal/logging"
	"github.com/jonathan/portfolio/internal/profile"
	"github.com/spf13/cobra"
)

// Environment variables read by the CLI.
const (
	envConfig = "PORTFOLIO_CONFIG"
	envPort   = "PORTFOLIO_PORT"
)

var (
	configPath  string
	contentRoot string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file (defaults to $"+envConfig+")")
	rootCmd.PersistentFlags().StringVar(&contentRoot, "content-root", "", "Directory containing content/projects (default: current directory)")
}

// loadSettings builds the effective configuration: config file, then flags,
// then defaults.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	path := configPath
	if path == "" {
		path = os.Getenv(envConfig)
	}

	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("content-root") {
		cfg.ContentRoot = contentRoot
	}

	cfg = cfg.MergeWithDefaults(config.Config{ContentRoot: "."})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *slog.Logger {
	lc := logging.DefaultConfig()
	if cfg.LogLevel != "" {
		lc.Level = cfg.LogLevel
	}
	if cfg.LogFormat != "" {
		lc.Format = cfg.LogFormat
	}
	return logging.New(lc)
}

func newRepository(cfg config.Config, logger *slog.Logger, extra ...content.Option) (*content.Repository, error) {
	opts := append([]content.Option{content.WithLogger(logger)}, extra...)
	if len(cfg.ContentDirs) > 0 {
		opts = append(opts, content.WithCandidates(cfg.ContentDirs...))
	}
	return content.NewFromDir(cfg.ContentRoot, opts...)
}

func loadTimeline(cfg config.Config) (*experience.Timeline, error) {
	if cfg.ExperienceFile != "" {
		return experience.LoadTimelineFile(cfg.ExperienceFile)
	}
	return experience.Default()
}

func loadProfile(cfg config.Config) (*profile.Profile, error) {
	if cfg.ProfileFile != "" {
		return profile.LoadProfileFile(cfg.ProfileFile)
	}
	return profile.Default()
}

// resolveLocale parses a --locale value, falling back to the configured default.
func resolveLocale(flagValue string, cfg config.Config) (i18n.Locale, error) {
	if flagValue == "" {
		flagValue = cfg.DefaultLocale
	}
	return i18n.ParseLocale(flagValue)
}
