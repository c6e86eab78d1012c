package i18n

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func localeGen() gopter.Gen {
	return gen.OneConstOf(ES, EN)
}

func TestResolverProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("plain text resolves to itself for any locale", prop.ForAll(
		func(s string, locale Locale) bool {
			v := PlainText(s)
			return ResolveText(&v, locale, "fallback") == s
		},
		gen.AnyString(),
		localeGen(),
	))

	properties.Property("per-locale text returns the requested locale when present", prop.ForAll(
		func(es, en string) bool {
			v := TextByLocale(map[Locale]string{ES: es, EN: en})
			return ResolveText(&v, ES, "x") == es && ResolveText(&v, EN, "x") == en
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.Property("spanish-only text is used for every locale", prop.ForAll(
		func(es string, locale Locale) bool {
			v := TextByLocale(map[Locale]string{ES: es})
			return ResolveText(&v, locale, "x") == es
		},
		gen.AnyString(),
		localeGen(),
	))

	properties.Property("empty per-locale text yields the fallback", prop.ForAll(
		func(fallback string, locale Locale) bool {
			v := TextByLocale(map[Locale]string{})
			return ResolveText(&v, locale, fallback) == fallback
		},
		gen.AnyString(),
		localeGen(),
	))

	properties.Property("resolved lists are never nil", prop.ForAll(
		func(locale Locale) bool {
			return ResolveList(nil, locale) != nil
		},
		localeGen(),
	))

	properties.TestingRun(t)
}

func TestRouterProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(97531)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	segment := gen.Identifier()

	properties.Property("switching twice returns to the original locale path", prop.ForAll(
		func(a, b string, locale Locale) bool {
			path := "/" + string(locale) + "/" + a + "/" + b
			return SwitchLocalePath(SwitchLocalePath(path, locale), Other(locale)) == path
		},
		segment,
		segment,
		localeGen(),
	))

	properties.Property("WithLocale is idempotent", prop.ForAll(
		func(a string, locale Locale) bool {
			once := WithLocale("/"+a, locale)
			return WithLocale(once, locale) == once
		},
		segment,
		localeGen(),
	))

	properties.Property("WithLocale always yields the locale as first segment", prop.ForAll(
		func(a string, locale Locale) bool {
			got := WithLocale(a, locale)
			return got == HomeOf(locale) || strings.HasPrefix(got, HomeOf(locale)+"/")
		},
		segment,
		localeGen(),
	))

	properties.TestingRun(t)
}
