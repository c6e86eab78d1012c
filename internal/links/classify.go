// Package links picks source-code and live-demo URLs out of a project's labeled links.
package links

import (
	"regexp"

	"github.com/jonathan/portfolio/internal/types"
)

// Intent is the purpose a caller wants a link for
type Intent string

const (
	IntentRepo Intent = "repo"
	IntentDemo Intent = "demo"
)

var labelPatterns = map[Intent]*regexp.Regexp{
	IntentRepo: regexp.MustCompile(`(?i)git|repo`),
	IntentDemo: regexp.MustCompile(`(?i)demo|preview|site|app|prod|vercel|netlify`),
}

// PickLink returns the best URL for intent. A link explicitly typed with the
// intent wins; otherwise the first link whose label matches the intent's
// pattern is used. Links with an empty or whitespace-only href are never picked.
func PickLink(links []types.Link, intent Intent) (string, bool) {
	for _, l := range links {
		if string(l.Type) == string(intent) {
			if u := l.URL(); u != "" {
				return u, true
			}
		}
	}

	pattern, ok := labelPatterns[intent]
	if !ok {
		return "", false
	}
	for _, l := range links {
		if l.Label == "" || !pattern.MatchString(l.Label) {
			continue
		}
		if u := l.URL(); u != "" {
			return u, true
		}
	}

	return "", false
}

// Actions holds the call-to-action URLs of a project. Empty means no link.
type Actions struct {
	Repo string `json:"repo,omitempty"`
	Demo string `json:"demo,omitempty"`
}

// Classify picks both the repository and the demo URL.
func Classify(links []types.Link) Actions {
	repo, _ := PickLink(links, IntentRepo)
	demo, _ := PickLink(links, IntentDemo)
	return Actions{Repo: repo, Demo: demo}
}
