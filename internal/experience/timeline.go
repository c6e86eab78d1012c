package experience

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/portfolio/internal/i18n"
	"gopkg.in/yaml.v3"
)

//go:embed experience.yaml
var defaultTimeline []byte

// Entry is a single position in the timeline.
type Entry struct {
	Company  string             `yaml:"company" json:"company" validate:"required"`
	Title    i18n.LocalizedText `yaml:"title" json:"title" validate:"required"`
	Location i18n.LocalizedText `yaml:"location" json:"location"`
	Period   i18n.LocalizedText `yaml:"period" json:"period" validate:"required"`
	Summary  i18n.LocalizedText `yaml:"summary" json:"summary"`
	Skills   []string           `yaml:"skills" json:"skills"`
}

// Timeline is the ordered list of positions, most recent first.
type Timeline struct {
	Entries []Entry `yaml:"entries" json:"entries" validate:"required,min=1,dive"`
}

// ResolvedEntry is an Entry with every localized field resolved for one locale.
type ResolvedEntry struct {
	Company  string   `json:"company"`
	Title    string   `json:"title"`
	Location string   `json:"location,omitempty"`
	Period   string   `json:"period"`
	Summary  string   `json:"summary"`
	Skills   []string `json:"skills"`
}

// newValidator returns a validator that checks LocalizedText fields through
// their default-locale value.
func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if text, ok := field.Interface().(i18n.LocalizedText); ok {
			return text.Resolve(i18n.DefaultLocale, "")
		}
		return nil
	}, i18n.LocalizedText{})
	return validate
}

// Default returns the built-in timeline.
func Default() (*Timeline, error) {
	return LoadTimeline(defaultTimeline)
}

// LoadTimelineFile loads a timeline from a YAML file
func LoadTimelineFile(path string) (*Timeline, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return LoadTimeline(content)
}

// LoadTimeline parses, normalizes and validates timeline YAML.
func LoadTimeline(data []byte) (*Timeline, error) {
	var timeline Timeline
	if err := yaml.Unmarshal(data, &timeline); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal YAML",
			Cause:   err,
		}
	}

	NormalizeSkills(&timeline)

	if err := newValidator().Struct(&timeline); err != nil {
		return nil, &ValidationError{
			Message: describeValidation(err),
			Cause:   err,
		}
	}

	return &timeline, nil
}

// describeValidation reports the first failing field, e.g. "Entries[1].Company - required".
func describeValidation(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		field := strings.TrimPrefix(fe.Namespace(), "Timeline.")
		return fmt.Sprintf("%s - %s", field, fe.Tag())
	}
	return "invalid timeline"
}

// NormalizeSkills trims skill names and removes case-insensitive duplicates,
// keeping the first spelling seen.
func NormalizeSkills(timeline *Timeline) {
	for i := range timeline.Entries {
		entry := &timeline.Entries[i]
		normalized := make([]string, 0, len(entry.Skills))
		seen := make(map[string]struct{})

		for _, skill := range entry.Skills {
			skill = strings.TrimSpace(skill)
			if skill == "" {
				continue
			}
			key := strings.ToLower(skill)
			if _, exists := seen[key]; !exists {
				normalized = append(normalized, skill)
				seen[key] = struct{}{}
			}
		}

		entry.Skills = normalized
	}
}

// Resolve flattens every entry for locale, keeping timeline order.
func (t *Timeline) Resolve(locale i18n.Locale) []ResolvedEntry {
	resolved := make([]ResolvedEntry, 0, len(t.Entries))
	for _, e := range t.Entries {
		resolved = append(resolved, ResolvedEntry{
			Company:  e.Company,
			Title:    e.Title.Resolve(locale, ""),
			Location: e.Location.Resolve(locale, ""),
			Period:   e.Period.Resolve(locale, ""),
			Summary:  e.Summary.Resolve(locale, ""),
			Skills:   append([]string{}, e.Skills...),
		})
	}
	return resolved
}
