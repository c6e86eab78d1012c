package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/portfolio/internal/observability"
	"github.com/jonathan/portfolio/internal/types"
	"github.com/jonathan/portfolio/internal/views"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Long:  "Lists every project, or only featured ones with --featured, resolved for a locale.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listLocale   string
	listFeatured int
	listJSON     bool
)

func init() {
	listCmd.Flags().StringVarP(&listLocale, "locale", "l", "", "Locale to resolve (es or en; default from config)")
	listCmd.Flags().IntVar(&listFeatured, "featured", 0, "Only list up to N featured projects")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print project cards as JSON")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	locale, err := resolveLocale(listLocale, cfg)
	if err != nil {
		return err
	}

	repo, err := newRepository(cfg, newLogger(cfg))
	if err != nil {
		return err
	}

	var projects []types.Project
	title := fmt.Sprintf("PROJECTS (%s)", locale)
	if cmd.Flags().Changed("featured") {
		if listFeatured < 0 {
			return fmt.Errorf("--featured must be non-negative")
		}
		projects, err = repo.ListFeatured(listFeatured)
		title = fmt.Sprintf("FEATURED PROJECTS (%s)", locale)
	} else {
		projects, err = repo.ListAll()
	}
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	cards := views.Cards(projects, locale)

	if listJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(cards)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintProjectList(title, cards)
	return nil
}
