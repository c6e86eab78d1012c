package main

import (
	"fmt"

	"github.com/jonathan/portfolio/internal/i18n"
	"github.com/jonathan/portfolio/internal/observability"
	"github.com/jonathan/portfolio/internal/views"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show a project case study",
	Long: `Prints a project's title and body for a locale.

The locale variant (slug.<locale>.mdx) is preferred, then the base file, then the other variants.
With --base only the unsuffixed base file is considered.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var (
	showLocale  string
	showBase    bool
	showVerbose bool
)

func init() {
	showCmd.Flags().StringVarP(&showLocale, "locale", "l", "", "Locale to resolve (es or en; default from config)")
	showCmd.Flags().BoolVar(&showBase, "base", false, "Only read the base file, ignoring locale variants")
	showCmd.Flags().BoolVarP(&showVerbose, "verbose", "v", false, "Print a project summary before the body")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	locale, err := resolveLocale(showLocale, cfg)
	if err != nil {
		return err
	}

	repo, err := newRepository(cfg, newLogger(cfg))
	if err != nil {
		return err
	}

	lookup := locale
	if showBase {
		lookup = i18n.Locale("")
	}

	project, err := repo.GetBySlug(args[0], lookup)
	if err != nil {
		return err
	}

	detail := views.Detail(project, locale)
	out := cmd.OutOrStdout()

	if showVerbose {
		observability.NewPrinter(out).PrintProject(&detail)
		_, _ = fmt.Fprintf(out, "Source: %s\n\n", project.Source)
	} else {
		_, _ = fmt.Fprintf(out, "# %s\n\n", detail.Title)
	}
	_, _ = fmt.Fprint(out, detail.Body)
	return nil
}
