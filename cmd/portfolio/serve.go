package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jonathan/portfolio/internal/config"
	"github.com/jonathan/portfolio/internal/i18n"
	"github.com/jonathan/portfolio/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the content API server",
	Long:  `Start an HTTP server that exposes localized project and experience endpoints as JSON.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default: config, $"+envPort+", or 8080)")
	rootCmd.AddCommand(serveCmd)
}

// resolvePort applies flag, then environment, then config precedence.
func resolvePort(cmd *cobra.Command, cfg config.Config) (int, error) {
	if cmd.Flags().Changed("port") {
		return servePort, nil
	}
	if raw := os.Getenv(envPort); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port < 1 || port > 65535 {
			return 0, fmt.Errorf("invalid %s value %q", envPort, raw)
		}
		return port, nil
	}
	return cfg.Port, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	port, err := resolvePort(cmd, cfg)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)

	repo, err := newRepository(cfg, logger)
	if err != nil {
		return err
	}

	timeline, err := loadTimeline(cfg)
	if err != nil {
		return fmt.Errorf("failed to load experience timeline: %w", err)
	}

	prof, err := loadProfile(cfg)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	srv, err := server.New(server.Config{
		Port:           port,
		Projects:       repo,
		Timeline:       timeline,
		Profile:        prof,
		Logger:         logger,
		DefaultLocale:  i18n.Locale(cfg.DefaultLocale),
		FeaturedLimit:  cfg.FeaturedLimit,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(cmd.Context())
}
