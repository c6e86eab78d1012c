// Package i18n provides locale handling for portfolio content: supported locales,
// localized text and list values, and locale-prefixed path routing.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported content language.
type Locale string

const (
	// ES is Spanish, the canonical content language.
	ES Locale = "es"
	// EN is English.
	EN Locale = "en"
)

// DefaultLocale is used as the first fallback when resolving localized values
// and as the sort locale for project listings.
const DefaultLocale = ES

// Supported lists the supported locales in fallback order.
var Supported = []Locale{ES, EN}

// tags mirrors Supported for the language matcher; indexes must line up.
var tags = []language.Tag{language.Spanish, language.English}

var matcher = language.NewMatcher(tags)

// String returns the locale code.
func (l Locale) String() string {
	return string(l)
}

// IsZero reports whether no locale was given.
func (l Locale) IsZero() bool {
	return l == ""
}

// IsSupported reports whether s is one of the supported locale codes.
func IsSupported(s string) bool {
	for _, l := range Supported {
		if string(l) == s {
			return true
		}
	}
	return false
}

// ParseLocale converts a locale code such as "es", "EN" or "en-US" to a Locale.
func ParseLocale(s string) (Locale, error) {
	code := strings.ToLower(strings.TrimSpace(s))
	if IsSupported(code) {
		return Locale(code), nil
	}

	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("unsupported locale %q", s)
	}
	base, _ := tag.Base()
	if IsSupported(base.String()) {
		return Locale(base.String()), nil
	}
	return "", fmt.Errorf("unsupported locale %q", s)
}

// Other returns the supported locale that is not l. Anything other than EN maps to EN.
func Other(l Locale) Locale {
	if l == EN {
		return ES
	}
	return EN
}

// Negotiate picks the best supported locale for an Accept-Language header value,
// falling back to DefaultLocale when nothing matches.
func Negotiate(acceptLanguage string) Locale {
	if strings.TrimSpace(acceptLanguage) == "" {
		return DefaultLocale
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return DefaultLocale
	}
	_, idx, confidence := matcher.Match(prefs...)
	if confidence == language.No {
		return DefaultLocale
	}
	return Supported[idx]
}
