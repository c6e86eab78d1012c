// Package types provides type definitions for structured data used throughout the portfolio.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/jonathan/portfolio/internal/i18n"
)

// LinkType tags a project link with its purpose
type LinkType string

const (
	LinkTypeRepo  LinkType = "repo"
	LinkTypeDemo  LinkType = "demo"
	LinkTypeOther LinkType = "other"
)

// Link is a labeled hyperlink attached to a project
type Link struct {
	Label string   `json:"label,omitempty"`
	Href  string   `json:"href,omitempty"`
	Type  LinkType `json:"type,omitempty"`
}

// URL returns the trimmed href. A whitespace-only href yields "".
func (l Link) URL() string {
	return strings.TrimSpace(l.Href)
}

// Project is the front matter of a project case study
type Project struct {
	Title       i18n.LocalizedText  `json:"title"`
	Slug        string              `json:"slug"`
	Period      *i18n.LocalizedText `json:"period,omitempty"`
	Role        *i18n.LocalizedText `json:"role,omitempty"`
	Stack       []string            `json:"stack"`
	Description *i18n.LocalizedText `json:"description,omitempty"`
	Impact      *i18n.LocalizedList `json:"impact,omitempty"`
	Metrics     *i18n.LocalizedList `json:"metrics,omitempty"`
	Links       []Link              `json:"links,omitempty"`
	Cover       string              `json:"cover,omitempty"`
	Featured    bool                `json:"featured,omitempty"`
}

// Highlights returns the impact list for locale, or the metrics list when
// impact is absent or resolves to nothing.
func (p *Project) Highlights(locale i18n.Locale) []string {
	if impact := p.Impact.Resolve(locale); len(impact) > 0 {
		return impact
	}
	return p.Metrics.Resolve(locale)
}

// ProjectWithBody is a project together with its long-form body
type ProjectWithBody struct {
	Project
	Body string `json:"body"`
	// Source is the content file the project was read from, relative to the content root.
	Source string `json:"source"`
}
