package profile

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

//go:embed profile.yaml
var defaultProfile []byte

// Profile is the biography behind the about page.
type Profile struct {
	Name           string             `yaml:"name" json:"name" validate:"required"`
	Title          i18n.LocalizedText `yaml:"title" json:"title" validate:"required"`
	Summary        Summary            `yaml:"summary" json:"summary"`
	Experience     []Position         `yaml:"experience" json:"experience" validate:"dive"`
	Education      []Education        `yaml:"education" json:"education" validate:"dive"`
	Certifications i18n.LocalizedList `yaml:"certifications" json:"certifications"`
	Skills         Skills             `yaml:"skills" json:"skills"`
}

// Summary is the lead paragraph block.
type Summary struct {
	Lead    i18n.LocalizedText `yaml:"lead" json:"lead" validate:"required"`
	Body    i18n.LocalizedText `yaml:"body" json:"body"`
	Bullets i18n.LocalizedList `yaml:"bullets" json:"bullets"`
}

// Position is a job with its achievement bullets.
type Position struct {
	Company  string             `yaml:"company" json:"company" validate:"required"`
	Title    i18n.LocalizedText `yaml:"title" json:"title" validate:"required"`
	Location i18n.LocalizedText `yaml:"location" json:"location"`
	Period   i18n.LocalizedText `yaml:"period" json:"period" validate:"required"`
	Bullets  i18n.LocalizedList `yaml:"bullets" json:"bullets"`
}

// Education is a degree or course of study.
type Education struct {
	School string             `yaml:"school" json:"school" validate:"required"`
	Place  i18n.LocalizedText `yaml:"place" json:"place"`
	Degree i18n.LocalizedText `yaml:"degree" json:"degree" validate:"required"`
	Notes  i18n.LocalizedText `yaml:"notes" json:"notes"`
}

// Skills splits technical from interpersonal skills. Hard skill lines may be
// grouped as "Category: a, b, c".
type Skills struct {
	Hard i18n.LocalizedList `yaml:"hard" json:"hard"`
	Soft i18n.LocalizedList `yaml:"soft" json:"soft"`
}

// Resolved is a Profile flattened for one locale.
type Resolved struct {
	Name           string              `json:"name"`
	Title          string              `json:"title"`
	Summary        ResolvedSummary     `json:"summary"`
	Experience     []ResolvedPosition  `json:"experience"`
	Education      []ResolvedEducation `json:"education"`
	Certifications []string            `json:"certifications"`
	HardSkills     []string            `json:"hard_skills"`
	SoftSkills     []string            `json:"soft_skills"`
}

type ResolvedSummary struct {
	Lead    string   `json:"lead"`
	Body    string   `json:"body,omitempty"`
	Bullets []string `json:"bullets"`
}

type ResolvedPosition struct {
	Company  string   `json:"company"`
	Title    string   `json:"title"`
	Location string   `json:"location,omitempty"`
	Period   string   `json:"period"`
	Bullets  []string `json:"bullets"`
}

type ResolvedEducation struct {
	School string `json:"school"`
	Place  string `json:"place,omitempty"`
	Degree string `json:"degree"`
	Notes  string `json:"notes,omitempty"`
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

// Default returns the built-in profile.
func Default() (*Profile, error) {
	return LoadProfile(defaultProfile)
}

// LoadProfileFile loads a profile from a YAML file
func LoadProfileFile(path string) (*Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return LoadProfile(content)
}

// LoadProfile parses and validates profile YAML.
func LoadProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal YAML",
			Cause:   err,
		}
	}

	if err := newValidator().Struct(&p); err != nil {
		return nil, &ValidationError{
			Message: describeValidation(err),
			Cause:   err,
		}
	}

	return &p, nil
}

// describeValidation reports the first failing field, e.g. "Education[0].School - required".
func describeValidation(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		field := strings.TrimPrefix(fe.Namespace(), "Profile.")
		return fmt.Sprintf("%s - %s", field, fe.Tag())
	}
	return "invalid profile"
}

// ExtractTechs flattens hard-skill lines into individual technologies. Only
// the text after the first colon of a line is used, split on commas. Empty
// items are dropped and duplicates keep their first position.
func ExtractTechs(lines []string) []string {
	techs := make([]string, 0, len(lines))
	seen := make(map[string]struct{})

	for _, line := range lines {
		if strings.Contains(line, ":") {
			line = strings.Split(line, ":")[1]
		}
		for _, item := range strings.Split(line, ",") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			if _, exists := seen[item]; !exists {
				techs = append(techs, item)
				seen[item] = struct{}{}
			}
		}
	}

	return techs
}

// Resolve flattens the profile for locale.
func (p *Profile) Resolve(locale i18n.Locale) Resolved {
	resolved := Resolved{
		Name:  p.Name,
		Title: p.Title.Resolve(locale, ""),
		Summary: ResolvedSummary{
			Lead:    p.Summary.Lead.Resolve(locale, ""),
			Body:    p.Summary.Body.Resolve(locale, ""),
			Bullets: p.Summary.Bullets.Resolve(locale),
		},
		Experience:     make([]ResolvedPosition, 0, len(p.Experience)),
		Education:      make([]ResolvedEducation, 0, len(p.Education)),
		Certifications: p.Certifications.Resolve(locale),
		HardSkills:     ExtractTechs(p.Skills.Hard.Resolve(locale)),
		SoftSkills:     p.Skills.Soft.Resolve(locale),
	}

	for _, pos := range p.Experience {
		resolved.Experience = append(resolved.Experience, ResolvedPosition{
			Company:  pos.Company,
			Title:    pos.Title.Resolve(locale, ""),
			Location: pos.Location.Resolve(locale, ""),
			Period:   pos.Period.Resolve(locale, ""),
			Bullets:  pos.Bullets.Resolve(locale),
		})
	}
	for _, edu := range p.Education {
		resolved.Education = append(resolved.Education, ResolvedEducation{
			School: edu.School,
			Place:  edu.Place.Resolve(locale, ""),
			Degree: edu.Degree.Resolve(locale, ""),
			Notes:  edu.Notes.Resolve(locale, ""),
		})
	}

	return resolved
}
