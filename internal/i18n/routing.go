package i18n

import "strings"

// normalizePath turns "" into "/" and adds a missing leading slash.
func normalizePath(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}

// SwitchLocalePath maps path to the equivalent path under the locale other than
// current, keeping everything after the locale segment.
//
//	SwitchLocalePath("/es/projects/foo", ES) == "/en/projects/foo"
//	SwitchLocalePath("/", EN)                 == "/es"
//	SwitchLocalePath("/unknown/path", ES)     == "/en/unknown/path"
func SwitchLocalePath(path string, current Locale) string {
	p := normalizePath(path)
	segs := strings.Split(p, "/") // ["", "es", "projects", ...]
	target := Other(current)

	if len(segs) <= 2 && (segs[1] == "" || IsSupported(segs[1])) {
		return HomeOf(target)
	}

	if IsSupported(segs[1]) {
		segs[1] = string(target)
		return strings.Join(segs, "/")
	}

	return "/" + string(target) + p
}

// WithLocale forces locale as the first segment of path, replacing an existing
// locale segment or prepending one. Paths already under locale are returned unchanged.
func WithLocale(path string, locale Locale) string {
	p := normalizePath(path)
	segs := strings.Split(p, "/")

	if IsSupported(segs[1]) {
		if segs[1] == string(locale) {
			return p
		}
		segs[1] = string(locale)
		return strings.Join(segs, "/")
	}

	if p == "/" {
		return HomeOf(locale)
	}
	return "/" + string(locale) + p
}

// HomeOf returns the home path for locale ("/es" or "/en").
func HomeOf(locale Locale) string {
	if locale == EN {
		return "/en"
	}
	return "/es"
}

// Href builds a path under locale, e.g. Href(ES, "/projects") == "/es/projects".
func Href(locale Locale, subpath string) string {
	return WithLocale(subpath, locale)
}
