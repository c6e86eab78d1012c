package main

import (
	"fmt"

	"github.com/jonathan/portfolio/internal/observability"
	"github.com/spf13/cobra"
)

var experienceCmd = &cobra.Command{
	Use:   "experience",
	Short: "Print the experience timeline",
	Args:  cobra.NoArgs,
	RunE:  runExperience,
}

var experienceLocale string

func init() {
	experienceCmd.Flags().StringVarP(&experienceLocale, "locale", "l", "", "Locale to resolve (es or en; default from config)")
	rootCmd.AddCommand(experienceCmd)
}

func runExperience(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	locale, err := resolveLocale(experienceLocale, cfg)
	if err != nil {
		return err
	}

	timeline, err := loadTimeline(cfg)
	if err != nil {
		return fmt.Errorf("failed to load experience timeline: %w", err)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintTimeline(timeline.Resolve(locale))
	return nil
}
