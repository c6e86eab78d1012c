package observability

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/portfolio/internal/experience"
	"github.com/jonathan/portfolio/internal/i18n"
	"github.com/jonathan/portfolio/internal/links"
	"github.com/jonathan/portfolio/internal/profile"
	"github.com/jonathan/portfolio/internal/schemas"
	"github.com/jonathan/portfolio/internal/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintProject(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	detail := &views.ProjectDetail{
		ProjectCard: views.ProjectCard{
			Slug:      "sigus",
			Locale:    i18n.EN,
			Title:     "Security CRM",
			Role:      "Mobile developer",
			Period:    "2025",
			Stack:     []string{"React Native", "TypeScript"},
			Featured:  true,
			Actions:   links.Actions{Repo: "https://github.com/x/sigus"},
			Alternate: "/es/projects/sigus",
		},
		Highlights: []string{"Shift tracking", "Patrol check-ins"},
	}

	p.PrintProject(detail)
	output := buf.String()

	assert.Contains(t, output, "SECURITY CRM")
	assert.Contains(t, output, "Mobile developer")
	assert.Contains(t, output, "React Native, TypeScript")
	assert.Contains(t, output, "Shift tracking")
	assert.Contains(t, output, "https://github.com/x/sigus")
	assert.Contains(t, output, "Demo: (none)")
	assert.Contains(t, output, "/es/projects/sigus")
}

func TestPrintProject_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProject(nil)

	assert.Empty(t, buf.String())
}

func TestPrintProject_TruncatesHighlights(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	detail := &views.ProjectDetail{
		ProjectCard: views.ProjectCard{Slug: "x", Title: "X"},
		Highlights:  []string{"a", "b", "c", "d", "e", "f", "g"},
	}

	p.PrintProject(detail)

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintProjectList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProjectList("PROJECTS (es)", []views.ProjectCard{
		{Slug: "alpha", Title: "Alfa", Featured: true},
		{Slug: "beta", Title: "Beta"},
	})
	output := buf.String()

	assert.Contains(t, output, "PROJECTS (es)")
	assert.Contains(t, output, "Total projects: 2")
	assert.Contains(t, output, "★ 1. Alfa (alpha)")
	assert.Contains(t, output, "2. Beta (beta)")
}

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	hard := []string{"Go", "Rust", "Docker", "React", "Next.js", "Node.js", "Expo", "REST", "SQL", "Redis", "Kafka", "gRPC"}
	p.PrintProfile(&profile.Resolved{
		Name:    "Ana",
		Title:   "About me",
		Summary: profile.ResolvedSummary{Lead: "Backend developer"},
		Experience: []profile.ResolvedPosition{
			{Company: "Acme", Title: "Engineer", Period: "2020 – 2024"},
		},
		Education:      []profile.ResolvedEducation{{School: "UNAM", Degree: "Computer Science"}},
		Certifications: []string{"CKA"},
		HardSkills:     hard,
	})
	output := buf.String()

	assert.Contains(t, output, "ABOUT ME · Ana")
	assert.Contains(t, output, "Backend developer")
	assert.Contains(t, output, "Engineer @ Acme (2020 – 2024)")
	assert.Contains(t, output, "Computer Science · UNAM")
	assert.Contains(t, output, "- CKA")
	assert.Contains(t, output, "- Redis")
	assert.Contains(t, output, "... and 2 more")
	assert.NotContains(t, output, "Kafka")
	assert.Contains(t, output, "Soft skills: (none)")
}

func TestPrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(nil)
	assert.Empty(t, buf.String())
}

func TestPrintTimeline(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTimeline([]experience.ResolvedEntry{
		{Company: "SIGUS", Title: "Mobile App Developer", Period: "Mar 2025 – Present", Location: "Remote"},
		{Company: "Freelance", Title: "Full-stack Developer", Period: "Apr 2023 – Mar 2025"},
	})
	output := buf.String()

	assert.Contains(t, output, "EXPERIENCE")
	assert.Contains(t, output, "Mobile App Developer @ SIGUS")
	assert.Contains(t, output, "Mar 2025 – Present · Remote")
	assert.Contains(t, output, "Full-stack Developer @ Freelance")
}

func TestPrintTimeline_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTimeline(nil)

	assert.Empty(t, buf.String())
}

func TestPrintValidationReport(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintValidationReport(3, nil)

		assert.Contains(t, buf.String(), "CONTENT VALID")
		assert.Contains(t, buf.String(), "Files checked: 3")
	})

	t.Run("invalid", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintValidationReport(2, []error{
			&schemas.ValidationError{
				Source: "content/projects/a.mdx",
				Errors: []schemas.FieldError{{Field: "title", Constraint: "required"}},
			},
			errors.New("failed to read b.mdx"),
		})
		output := buf.String()

		assert.Contains(t, output, "CONTENT INVALID")
		assert.Contains(t, output, "Failures:      2")
		assert.Contains(t, output, "✗ content/projects/a.mdx")
		assert.Contains(t, output, "title: required")
		assert.Contains(t, output, "✗ failed to read b.mdx")
	})
}

func TestPrintBox_LineWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", "short\n"+strings.Repeat("é", 100))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ñññ...", truncate("ñññññññ", 6))
}
