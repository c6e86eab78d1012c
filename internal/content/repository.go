package content

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"slices"
	"sync"

	"github.com/jonathan/portfolio/internal/i18n"
	"github.com/jonathan/portfolio/internal/logging"
	"github.com/jonathan/portfolio/internal/schemas"
	"github.com/jonathan/portfolio/internal/types"
)

// Repository reads projects from the first existing candidate directory of a
// filesystem. Every call re-reads the files it needs; a Repository holds no
// content state and is safe for concurrent use.
type Repository struct {
	fsys       fs.FS
	candidates []string
	logger     *slog.Logger
	validator  *schemas.ProjectValidator
	missingDir sync.Once
}

// Option configures a Repository
type Option func(*Repository)

// WithCandidates overrides the ordered list of probed content directories.
func WithCandidates(candidates ...string) Option {
	return func(r *Repository) {
		r.candidates = append([]string{}, candidates...)
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) {
		r.logger = logging.Component(logger, "content")
	}
}

// WithValidator replaces the embedded project schema check.
func WithValidator(v *schemas.ProjectValidator) Option {
	return func(r *Repository) {
		r.validator = v
	}
}

// NewRepository creates a repository over fsys. Candidate directories are
// relative to the root of fsys.
func NewRepository(fsys fs.FS, opts ...Option) *Repository {
	r := &Repository{
		fsys:       fsys,
		candidates: append([]string{}, DefaultCandidates...),
		logger:     logging.Component(nil, "content"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewFromDir creates a repository rooted at dir on the local filesystem.
func NewFromDir(dir string, opts ...Option) (*Repository, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open content root %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content root %s is not a directory", dir)
	}
	return NewRepository(os.DirFS(dir), opts...), nil
}

// Candidates returns the probed content directories in order.
func (r *Repository) Candidates() []string {
	return append([]string{}, r.candidates...)
}

// Dir returns the content directory in use, if any.
func (r *Repository) Dir() (string, bool) {
	dir, ok := ResolveDir(r.fsys, r.candidates)
	if !ok {
		r.missingDir.Do(func() {
			r.logger.Warn("no content directory found; serving no projects", "candidates", r.candidates)
		})
	}
	return dir, ok
}

// Files lists every project file variant in the content directory, sorted by name.
// A missing content directory yields no files.
func (r *Repository) Files() ([]ProjectFile, error) {
	dir, ok := r.Dir()
	if !ok {
		return []ProjectFile{}, nil
	}
	return r.scan(dir)
}

func (r *Repository) scan(dir string) ([]ProjectFile, error) {
	entries, err := fs.ReadDir(r.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read content directory %s: %w", dir, err)
	}

	files := make([]ProjectFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		slug, locale, ok := parseFileName(entry.Name())
		if !ok {
			continue
		}
		files = append(files, ProjectFile{
			Path:   path.Join(dir, entry.Name()),
			Slug:   slug,
			Locale: locale,
		})
	}
	return files, nil
}

// ListAll returns one project per slug ordered by title in the default locale.
// When several variants share a slug the base file wins over the Spanish
// variant, which wins over the English one. Any invalid file fails the whole listing.
func (r *Repository) ListAll() ([]types.Project, error) {
	files, err := r.Files()
	if err != nil {
		return nil, err
	}

	chosen := make(map[string]ProjectFile, len(files))
	for _, f := range files {
		current, seen := chosen[f.Slug]
		if !seen || listingRank(f.Locale) < listingRank(current.Locale) {
			chosen[f.Slug] = f
		}
	}

	slugs := make([]string, 0, len(chosen))
	for slug := range chosen {
		slugs = append(slugs, slug)
	}
	slices.Sort(slugs)

	projects := make([]types.Project, 0, len(slugs))
	for _, slug := range slugs {
		loaded, err := r.load(chosen[slug])
		if err != nil {
			return nil, err
		}
		projects = append(projects, loaded.Project)
	}

	slices.SortStableFunc(projects, func(a, b types.Project) int {
		return cmp.Or(
			cmp.Compare(a.Title.Resolve(i18n.DefaultLocale, ""), b.Title.Resolve(i18n.DefaultLocale, "")),
			cmp.Compare(a.Slug, b.Slug),
		)
	})

	return projects, nil
}

// ListFeatured returns up to limit featured projects in ListAll order.
func (r *Repository) ListFeatured(limit int) ([]types.Project, error) {
	all, err := r.ListAll()
	if err != nil {
		return nil, err
	}

	featured := make([]types.Project, 0, len(all))
	for _, p := range all {
		if len(featured) >= limit {
			break
		}
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

// GetBySlug loads a project and its body. With a locale the locale variant is
// preferred, then the base file, then the remaining variants in fallback
// order. With a zero locale only the base file is considered.
func (r *Repository) GetBySlug(slug string, locale i18n.Locale) (*types.ProjectWithBody, error) {
	if !validSlug(slug) {
		return nil, &NotFoundError{Slug: slug, Locale: locale}
	}

	dir, ok := r.Dir()
	if !ok {
		return nil, &ConfigurationError{Candidates: r.Candidates()}
	}

	for _, name := range lookupOrder(slug, locale) {
		p := path.Join(dir, name)
		info, err := fs.Stat(r.fsys, p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, &ParseError{Path: p, Message: "failed to stat file", Cause: err}
		}
		if info.IsDir() {
			continue
		}

		_, variant, _ := parseFileName(name)
		r.logger.Debug("resolved project file", "slug", slug, "locale", locale, "path", p)
		return r.load(ProjectFile{Path: p, Slug: slug, Locale: variant})
	}

	return nil, &NotFoundError{Slug: slug, Locale: locale}
}

// ValidateAll loads every variant file independently and returns all failures.
// A missing content directory is reported as a ConfigurationError.
func (r *Repository) ValidateAll() []error {
	dir, ok := r.Dir()
	if !ok {
		return []error{&ConfigurationError{Candidates: r.Candidates()}}
	}

	files, err := r.scan(dir)
	if err != nil {
		return []error{err}
	}

	var errs []error
	for _, f := range files {
		if _, err := r.load(f); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// load reads, parses and validates a single content file.
func (r *Repository) load(f ProjectFile) (*types.ProjectWithBody, error) {
	raw, err := fs.ReadFile(r.fsys, f.Path)
	if err != nil {
		return nil, &ParseError{Path: f.Path, Message: "failed to read file", Cause: err}
	}

	meta, body, err := SplitFrontMatter(raw)
	if err != nil {
		return nil, &ParseError{Path: f.Path, Message: "invalid front matter", Cause: err}
	}

	validate := schemas.ValidateProject
	if r.validator != nil {
		validate = r.validator.Validate
	}

	project, err := validate(meta)
	if err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			validationErr.Source = f.Path
		}
		return nil, err
	}

	if project.Slug != f.Slug {
		return nil, &schemas.ValidationError{
			Source: f.Path,
			Errors: []schemas.FieldError{{
				Field:      "slug",
				Constraint: "mismatch",
				Message:    fmt.Sprintf("slug %q does not match file name slug %q", project.Slug, f.Slug),
			}},
		}
	}

	return &types.ProjectWithBody{
		Project: *project,
		Body:    body,
		Source:  f.Path,
	}, nil
}
