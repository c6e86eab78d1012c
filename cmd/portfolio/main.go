// Package main provides the portfolio CLI: the content API server and
// tools for listing, inspecting and validating project content.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Bilingual portfolio content service",
	Long: `portfolio serves and inspects the bilingual (es/en) project case studies of a personal portfolio.

Configuration can be loaded from a JSON file using --config or $PORTFOLIO_CONFIG. Command-line flags override config file values.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
