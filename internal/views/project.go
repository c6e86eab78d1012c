// Package views flattens content records into single-locale display models.
package views

import (
	"github.com/jonathan/portfolio/internal/i18n"
	"github.com/jonathan/portfolio/internal/links"
	"github.com/jonathan/portfolio/internal/types"
)

// ProjectCard is the list representation of a project
type ProjectCard struct {
	Slug        string        `json:"slug"`
	Locale      i18n.Locale   `json:"locale"`
	Title       string        `json:"title"`
	Period      string        `json:"period,omitempty"`
	Role        string        `json:"role,omitempty"`
	Description string        `json:"description,omitempty"`
	Stack       []string      `json:"stack"`
	Cover       string        `json:"cover,omitempty"`
	Featured    bool          `json:"featured"`
	Actions     links.Actions `json:"actions"`
	Path        string        `json:"path"`
	Alternate   string        `json:"alternate"`
}

// ProjectDetail is the detail-page representation of a project
type ProjectDetail struct {
	ProjectCard
	Highlights []string `json:"highlights"`
	Body       string   `json:"body"`
}

// Card resolves p for locale.
func Card(p *types.Project, locale i18n.Locale) ProjectCard {
	stack := p.Stack
	if stack == nil {
		stack = []string{}
	}
	path := ProjectPath(locale, p.Slug)
	return ProjectCard{
		Slug:        p.Slug,
		Locale:      locale,
		Title:       p.Title.Resolve(locale, p.Slug),
		Period:      p.Period.Resolve(locale, ""),
		Role:        p.Role.Resolve(locale, ""),
		Description: p.Description.Resolve(locale, ""),
		Stack:       stack,
		Cover:       p.Cover,
		Featured:    p.Featured,
		Actions:     links.Classify(p.Links),
		Path:        path,
		Alternate:   i18n.SwitchLocalePath(path, locale),
	}
}

// Cards resolves every project for locale, keeping order.
func Cards(projects []types.Project, locale i18n.Locale) []ProjectCard {
	cards := make([]ProjectCard, 0, len(projects))
	for i := range projects {
		cards = append(cards, Card(&projects[i], locale))
	}
	return cards
}

// Detail resolves p and its body for locale.
func Detail(p *types.ProjectWithBody, locale i18n.Locale) ProjectDetail {
	return ProjectDetail{
		ProjectCard: Card(&p.Project, locale),
		Highlights:  p.Highlights(locale),
		Body:        p.Body,
	}
}

// ProjectPath returns the locale-prefixed detail path for slug.
func ProjectPath(locale i18n.Locale, slug string) string {
	return i18n.Href(locale, "/projects/"+slug)
}
