// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Defaults used when neither the config file nor a flag sets a value.
const (
	DefaultPort          = 8080
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultLocale        = "es"
	DefaultFeaturedLimit = 3
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Server
	Port           int      `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	AllowedOrigins []string `json:"allowed_origins,omitempty" validate:"omitempty,dive,required"`

	// Content
	ContentRoot    string   `json:"content_root,omitempty"`    // Directory holding content/projects
	ContentDirs    []string `json:"content_dirs,omitempty"`    // Candidate project directories, relative to content_root
	ExperienceFile string   `json:"experience_file,omitempty"` // YAML timeline replacing the built-in one
	ProfileFile    string   `json:"profile_file,omitempty"`    // YAML about-page profile replacing the built-in one
	FeaturedLimit  int      `json:"featured_limit,omitempty" validate:"omitempty,min=1"`

	// Behavior
	DefaultLocale string `json:"default_locale,omitempty" validate:"omitempty,oneof=es en"`
	LogLevel      string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	LogFormat     string `json:"log_format,omitempty" validate:"omitempty,oneof=text json"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)

	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			fe := validationErrors[0]
			return fmt.Errorf("config error: '%s' failed '%s' validation", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	if c.ExperienceFile != "" {
		if _, err := os.Stat(c.ExperienceFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: experience file not found: %s", c.ExperienceFile)
		}
	}

	if c.ProfileFile != "" {
		if _, err := os.Stat(c.ProfileFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.ProfileFile)
		}
	}

	if c.ContentRoot != "" {
		info, err := os.Stat(c.ContentRoot)
		if err != nil {
			return fmt.Errorf("config error: content root not found: %s", c.ContentRoot)
		}
		if !info.IsDir() {
			return fmt.Errorf("config error: content root is not a directory: %s", c.ContentRoot)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.ContentRoot == "" {
		result.ContentRoot = defaults.ContentRoot
	}
	if result.ExperienceFile == "" {
		result.ExperienceFile = defaults.ExperienceFile
	}
	if result.ProfileFile == "" {
		result.ProfileFile = defaults.ProfileFile
	}
	if result.DefaultLocale == "" {
		result.DefaultLocale = firstNonEmpty(defaults.DefaultLocale, DefaultLocale)
	}
	if result.LogLevel == "" {
		result.LogLevel = firstNonEmpty(defaults.LogLevel, DefaultLogLevel)
	}
	if result.LogFormat == "" {
		result.LogFormat = firstNonEmpty(defaults.LogFormat, DefaultLogFormat)
	}

	// Slice fields
	if len(result.ContentDirs) == 0 {
		result.ContentDirs = append([]string{}, defaults.ContentDirs...)
	}
	if len(result.AllowedOrigins) == 0 {
		result.AllowedOrigins = append([]string{}, defaults.AllowedOrigins...)
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
		if result.Port == 0 {
			result.Port = DefaultPort
		}
	}
	if result.FeaturedLimit == 0 {
		result.FeaturedLimit = defaults.FeaturedLimit
		if result.FeaturedLimit == 0 {
			result.FeaturedLimit = DefaultFeaturedLimit
		}
	}

	return result
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// jsonFieldName reports struct fields by their JSON key in validation errors.
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}
