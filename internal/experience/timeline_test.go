package experience

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/portfolio/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	timeline, err := Default()
	require.NoError(t, err)
	require.Len(t, timeline.Entries, 2)

	assert.Equal(t, "SIGUS", timeline.Entries[0].Company)
	assert.Equal(t, "Freelance", timeline.Entries[1].Company)
	// duplicate "node.js" is folded into "Node.js"
	assert.Equal(t, []string{"Next.js", "Node.js", "Spring Boot"}, timeline.Entries[1].Skills)
}

func TestTimeline_Resolve(t *testing.T) {
	timeline, err := Default()
	require.NoError(t, err)

	es := timeline.Resolve(i18n.ES)
	require.Len(t, es, 2)
	assert.Equal(t, "Mobile App Developer", es[0].Title)
	assert.Equal(t, "Mar 2025 – Presente", es[0].Period)
	assert.Equal(t, "Remoto", es[0].Location)
	assert.Equal(t, "Desarrollador Full-stack", es[1].Title)

	en := timeline.Resolve(i18n.EN)
	require.Len(t, en, 2)
	assert.Equal(t, "Mar 2025 – Present", en[0].Period)
	assert.Equal(t, "Remote", en[0].Location)
	assert.Equal(t, "Full-stack Developer", en[1].Title)
}

func TestTimeline_ResolveFallsBack(t *testing.T) {
	timeline, err := LoadTimeline([]byte(`
entries:
  - company: Acme
    title: Engineer
    period:
      es: 2020 – 2021
`))
	require.NoError(t, err)

	en := timeline.Resolve(i18n.EN)
	require.Len(t, en, 1)
	assert.Equal(t, "2020 – 2021", en[0].Period)
	assert.Equal(t, "", en[0].Location)
	assert.Equal(t, "", en[0].Summary)
	assert.NotNil(t, en[0].Skills)
}

func TestLoadTimeline_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "no entries",
			yaml:    "entries: []\n",
			wantErr: "Entries - min",
		},
		{
			name: "missing company",
			yaml: `
entries:
  - title: Engineer
    period: "2020"
`,
			wantErr: "Entries[0].Company - required",
		},
		{
			name: "missing title",
			yaml: `
entries:
  - company: Acme
    period: "2020"
`,
			wantErr: "Entries[0].Title - required",
		},
		{
			name: "period without default locale value",
			yaml: `
entries:
  - company: Acme
    title: Engineer
    period:
      fr: "2020"
`,
			wantErr: "Entries[0].Period - required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTimeline([]byte(tt.yaml))
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Message, tt.wantErr)
		})
	}
}

func TestLoadTimeline_InvalidYAML(t *testing.T) {
	_, err := LoadTimeline([]byte("entries: [unclosed"))
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadTimelineFile(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "experience.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
entries:
  - company: Acme
    title: Engineer
    period: "2020"
    skills: ["  Go ", "go", ""]
`), 0o644))

		timeline, err := LoadTimelineFile(path)
		require.NoError(t, err)
		require.Len(t, timeline.Entries, 1)
		assert.Equal(t, []string{"Go"}, timeline.Entries[0].Skills)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTimelineFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)

		var loadErr *LoadError
		assert.ErrorAs(t, err, &loadErr)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
