// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/portfolio/internal/experience"
	"github.com/jonathan/portfolio/internal/profile"
	"github.com/jonathan/portfolio/internal/schemas"
	"github.com/jonathan/portfolio/internal/views"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// pad right-pads s with spaces to n runes.
func pad(s string, n int) string {
	if count := utf8.RuneCountInString(s); count < n {
		return s + strings.Repeat(" ", n-count)
	}
	return s
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(title, boxWidth-4), boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProject outputs a human-readable summary of a resolved project.
func (p *Printer) PrintProject(detail *views.ProjectDetail) {
	if detail == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Slug:     %s\n", detail.Slug))
	sb.WriteString(fmt.Sprintf("Locale:   %s\n", detail.Locale))
	if detail.Role != "" {
		sb.WriteString(fmt.Sprintf("Role:     %s\n", detail.Role))
	}
	if detail.Period != "" {
		sb.WriteString(fmt.Sprintf("Period:   %s\n", detail.Period))
	}
	sb.WriteString(fmt.Sprintf("Featured: %t\n", detail.Featured))
	if len(detail.Stack) > 0 {
		sb.WriteString(fmt.Sprintf("Stack:    %s\n", strings.Join(detail.Stack, ", ")))
	}
	sb.WriteString("\n")

	if len(detail.Highlights) > 0 {
		sb.WriteString("Highlights:\n")
		count := min(len(detail.Highlights), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", detail.Highlights[i]))
		}
		if len(detail.Highlights) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(detail.Highlights)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Links:\n")
	sb.WriteString(fmt.Sprintf("  Repo: %s\n", orNone(detail.Actions.Repo)))
	sb.WriteString(fmt.Sprintf("  Demo: %s\n", orNone(detail.Actions.Demo)))
	sb.WriteString(fmt.Sprintf("  Alternate: %s", detail.Alternate))

	p.printBox(strings.ToUpper(detail.Title), sb.String())
}

// PrintProjectList outputs one line per project card.
func (p *Printer) PrintProjectList(title string, cards []views.ProjectCard) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total projects: %d\n", len(cards)))

	for i, card := range cards {
		marker := " "
		if card.Featured {
			marker = "★"
		}
		sb.WriteString(fmt.Sprintf("\n%s %d. %s (%s)", marker, i+1, card.Title, card.Slug))
	}

	p.printBox(title, sb.String())
}

// PrintTimeline outputs the resolved experience entries.
func (p *Printer) PrintTimeline(entries []experience.ResolvedEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	for i, e := range entries {
		sb.WriteString(fmt.Sprintf("%s @ %s\n", e.Title, e.Company))
		sb.WriteString(fmt.Sprintf("    %s", e.Period))
		if e.Location != "" {
			sb.WriteString(fmt.Sprintf(" · %s", e.Location))
		}
		if i < len(entries)-1 {
			sb.WriteString("\n\n")
		}
	}

	p.printBox("EXPERIENCE", sb.String())
}

// PrintProfile outputs the resolved about-page profile, one section per block.
func (p *Printer) PrintProfile(prof *profile.Resolved) {
	if prof == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(prof.Summary.Lead)

	if len(prof.Experience) > 0 {
		sb.WriteString("\n\nExperience:")
		for _, pos := range prof.Experience {
			sb.WriteString(fmt.Sprintf("\n  %s @ %s (%s)", pos.Title, pos.Company, pos.Period))
		}
	}
	if len(prof.Education) > 0 {
		sb.WriteString("\n\nEducation:")
		for _, edu := range prof.Education {
			sb.WriteString(fmt.Sprintf("\n  %s · %s", edu.Degree, edu.School))
		}
	}
	if len(prof.Certifications) > 0 {
		sb.WriteString("\n\nCertifications:")
		for _, c := range prof.Certifications {
			sb.WriteString(fmt.Sprintf("\n  - %s", c))
		}
	}

	sb.WriteString("\n\nHard skills:")
	for i, tech := range prof.HardSkills {
		if i >= maxItemsToShow*2 {
			sb.WriteString(fmt.Sprintf("\n  ... and %d more", len(prof.HardSkills)-i))
			break
		}
		sb.WriteString(fmt.Sprintf("\n  - %s", tech))
	}
	if len(prof.HardSkills) == 0 {
		sb.WriteString(" (none)")
	}

	sb.WriteString("\nSoft skills:")
	for _, skill := range prof.SoftSkills {
		sb.WriteString(fmt.Sprintf("\n  - %s", skill))
	}
	if len(prof.SoftSkills) == 0 {
		sb.WriteString(" (none)")
	}

	p.printBox(strings.ToUpper(prof.Title)+" · "+prof.Name, sb.String())
}

// PrintValidationReport outputs the result of validating every content file.
// Schema errors are listed field by field.
func (p *Printer) PrintValidationReport(checked int, errs []error) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Files checked: %d\n", checked))
	sb.WriteString(fmt.Sprintf("Failures:      %d", len(errs)))

	for _, err := range errs {
		sb.WriteString("\n\n")
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			sb.WriteString(fmt.Sprintf("✗ %s", orNone(validationErr.Source)))
			for _, fe := range validationErr.Errors {
				sb.WriteString(fmt.Sprintf("\n    %s: %s", fe.Field, fe.Constraint))
			}
			continue
		}
		sb.WriteString(fmt.Sprintf("✗ %s", err.Error()))
	}

	title := "CONTENT VALID"
	if len(errs) > 0 {
		title = "CONTENT INVALID"
	}
	p.printBox(title, sb.String())
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
