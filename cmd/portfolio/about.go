package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/portfolio/internal/observability"
	"github.com/spf13/cobra"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Print the about-page profile",
	Long:  "Resolves the biography, experience, education, certifications and skills for one locale. Hard skills are flattened into individual technologies.",
	Args:  cobra.NoArgs,
	RunE:  runAbout,
}

var (
	aboutLocale string
	aboutJSON   bool
)

func init() {
	aboutCmd.Flags().StringVarP(&aboutLocale, "locale", "l", "", "Locale to resolve (es or en; default from config)")
	aboutCmd.Flags().BoolVar(&aboutJSON, "json", false, "Print the resolved profile as JSON")
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	locale, err := resolveLocale(aboutLocale, cfg)
	if err != nil {
		return err
	}

	prof, err := loadProfile(cfg)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	resolved := prof.Resolve(locale)
	if aboutJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resolved)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintProfile(&resolved)
	return nil
}
