package main

import (
	"fmt"

	"github.com/jonathan/portfolio/internal/content"
	"github.com/jonathan/portfolio/internal/observability"
	"github.com/jonathan/portfolio/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every project content file",
	Long:  "Parses and schema-checks every project file variant. Exits non-zero if any file is invalid or no content directory exists.",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

var validateSchema string

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Validate against this JSON Schema file instead of the built-in project schema")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	var opts []content.Option
	if validateSchema != "" {
		v, err := schemas.LoadProjectValidator(validateSchema)
		if err != nil {
			return err
		}
		opts = append(opts, content.WithValidator(v))
	}

	repo, err := newRepository(cfg, newLogger(cfg), opts...)
	if err != nil {
		return err
	}

	files, err := repo.Files()
	if err != nil {
		return err
	}

	errs := repo.ValidateAll()
	observability.NewPrinter(cmd.OutOrStdout()).PrintValidationReport(len(files), errs)

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %d invalid file(s)", len(errs))
	}
	return nil
}
