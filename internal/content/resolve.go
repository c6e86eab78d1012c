package content

import (
	"io/fs"
	"path"
	"strings"

	"github.com/jonathan/portfolio/internal/i18n"
)

// Extension is the file extension of project content files.
const Extension = ".mdx"

// DefaultCandidates are the content directories probed, in order, relative to the root.
var DefaultCandidates = []string{
	"content/projects",
	"src/content/projects",
}

// ResolveDir returns the first candidate that exists as a directory in fsys.
func ResolveDir(fsys fs.FS, candidates []string) (string, bool) {
	for _, dir := range candidates {
		info, err := fs.Stat(fsys, dir)
		if err == nil && info.IsDir() {
			return dir, true
		}
	}
	return "", false
}

// ProjectFile is one on-disk variant of a project
type ProjectFile struct {
	// Path is relative to the root of the repository filesystem.
	Path string
	Slug string
	// Locale is the variant suffix; zero for the unsuffixed base file.
	Locale i18n.Locale
}

// parseFileName splits "foo.en.mdx" into ("foo", EN). ok is false for names
// that are not content files.
func parseFileName(name string) (slug string, locale i18n.Locale, ok bool) {
	if !strings.HasSuffix(name, Extension) {
		return "", "", false
	}
	stem := strings.TrimSuffix(name, Extension)
	for _, l := range i18n.Supported {
		if s, found := strings.CutSuffix(stem, "."+string(l)); found {
			stem, locale = s, l
			break
		}
	}
	if stem == "" {
		return "", "", false
	}
	return stem, locale, true
}

// fileName builds the content file name for a slug variant.
func fileName(slug string, locale i18n.Locale) string {
	if locale.IsZero() {
		return slug + Extension
	}
	return slug + "." + string(locale) + Extension
}

// lookupOrder lists the file names tried by a direct lookup. With a locale the
// order is the locale variant, the base file, then every supported variant in
// fallback order. Without a locale only the base file is tried.
func lookupOrder(slug string, locale i18n.Locale) []string {
	if locale.IsZero() {
		return []string{fileName(slug, "")}
	}

	names := []string{fileName(slug, locale), fileName(slug, "")}
	for _, l := range i18n.Supported {
		if l != locale {
			names = append(names, fileName(slug, l))
		}
	}
	return names
}

// listingRank orders variants for aggregate listings: base, then supported
// locales in fallback order. Lower wins.
func listingRank(locale i18n.Locale) int {
	if locale.IsZero() {
		return 0
	}
	for i, l := range i18n.Supported {
		if l == locale {
			return i + 1
		}
	}
	return len(i18n.Supported) + 1
}

// validSlug rejects slugs that cannot name a single file in the content directory.
func validSlug(slug string) bool {
	if slug == "" || slug == "." || slug == ".." {
		return false
	}
	if strings.ContainsAny(slug, `/\`) {
		return false
	}
	return fs.ValidPath(path.Join("x", slug))
}
