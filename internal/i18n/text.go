package i18n

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// chain returns the lookup order for a requested locale: the requested locale,
// then every supported locale starting with DefaultLocale.
func chain(requested Locale) []Locale {
	order := make([]Locale, 0, len(Supported)+1)
	order = append(order, requested)
	return append(order, Supported...)
}

// LocalizedText is either a plain string, valid for every locale, or a set of
// per-locale strings. The zero value is an empty per-locale set.
type LocalizedText struct {
	plain   string
	isPlain bool
	values  map[Locale]string
}

// PlainText returns a LocalizedText that resolves to s for every locale.
func PlainText(s string) LocalizedText {
	return LocalizedText{plain: s, isPlain: true}
}

// TextByLocale returns a per-locale LocalizedText. Keys present in values are
// considered set even when the string is empty.
func TextByLocale(values map[Locale]string) LocalizedText {
	copied := make(map[Locale]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return LocalizedText{values: copied}
}

// IsPlain reports whether the value is a plain string.
func (t LocalizedText) IsPlain() bool {
	return t.isPlain
}

// Lookup returns the value stored for exactly locale, without fallback.
func (t LocalizedText) Lookup(locale Locale) (string, bool) {
	if t.isPlain {
		return t.plain, true
	}
	v, ok := t.values[locale]
	return v, ok
}

// Resolve returns the text for locale. Missing keys fall back along the
// supported locales and finally to fallback; a key set to "" is returned as "".
// A nil receiver resolves to fallback.
func (t *LocalizedText) Resolve(locale Locale, fallback string) string {
	if t == nil {
		return fallback
	}
	if t.isPlain {
		return t.plain
	}
	for _, l := range chain(locale) {
		if v, ok := t.values[l]; ok {
			return v
		}
	}
	return fallback
}

// ResolveText resolves v for locale, returning fallback when v is nil or has
// no value in any locale of the fallback chain.
func ResolveText(v *LocalizedText, locale Locale, fallback string) string {
	return v.Resolve(locale, fallback)
}

// UnmarshalJSON accepts a JSON string or an object keyed by locale code.
// Null members are treated as absent.
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = PlainText(s)
		return nil
	}

	var m map[string]*string
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("localized text must be a string or an object keyed by locale: %w", err)
	}
	values := make(map[Locale]string, len(m))
	for k, v := range m {
		if v != nil {
			values[Locale(k)] = *v
		}
	}
	*t = LocalizedText{values: values}
	return nil
}

// MarshalJSON writes a plain value as a string and a per-locale value as an object.
func (t LocalizedText) MarshalJSON() ([]byte, error) {
	if t.isPlain {
		return json.Marshal(t.plain)
	}
	if t.values == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(t.values)
}

// UnmarshalYAML accepts a scalar string or a mapping keyed by locale code.
func (t *LocalizedText) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*t = PlainText(s)
		return nil
	case yaml.MappingNode:
		var m map[string]*string
		if err := value.Decode(&m); err != nil {
			return err
		}
		values := make(map[Locale]string, len(m))
		for k, v := range m {
			if v != nil {
				values[Locale(k)] = *v
			}
		}
		*t = LocalizedText{values: values}
		return nil
	default:
		return fmt.Errorf("line %d: localized text must be a string or a mapping keyed by locale", value.Line)
	}
}

// LocalizedList is either a list of strings valid for every locale, or a set of
// per-locale lists.
type LocalizedList struct {
	plain   []string
	isPlain bool
	values  map[Locale][]string
}

// PlainList returns a LocalizedList that resolves to items for every locale.
func PlainList(items ...string) LocalizedList {
	return LocalizedList{plain: append([]string{}, items...), isPlain: true}
}

// ListByLocale returns a per-locale LocalizedList.
func ListByLocale(values map[Locale][]string) LocalizedList {
	copied := make(map[Locale][]string, len(values))
	for k, v := range values {
		copied[k] = append([]string{}, v...)
	}
	return LocalizedList{values: copied}
}

// Resolve returns the list for locale using the same fallback order as
// LocalizedText. An unresolvable or nil value yields an empty, non-nil slice.
func (l *LocalizedList) Resolve(locale Locale) []string {
	if l == nil {
		return []string{}
	}
	if l.isPlain {
		return append([]string{}, l.plain...)
	}
	for _, loc := range chain(locale) {
		if v, ok := l.values[loc]; ok {
			return append([]string{}, v...)
		}
	}
	return []string{}
}

// ResolveList resolves v for locale; absent values yield an empty slice.
func ResolveList(v *LocalizedList, locale Locale) []string {
	return v.Resolve(locale)
}

// UnmarshalJSON accepts a JSON array of strings or an object keyed by locale code.
func (l *LocalizedList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*l = PlainList(items...)
		return nil
	}

	var m map[string]*[]string
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("localized list must be an array or an object keyed by locale: %w", err)
	}
	values := make(map[Locale][]string, len(m))
	for k, v := range m {
		if v != nil {
			values[Locale(k)] = append([]string{}, (*v)...)
		}
	}
	*l = LocalizedList{values: values}
	return nil
}

// MarshalJSON writes a plain list as an array and a per-locale list as an object.
func (l LocalizedList) MarshalJSON() ([]byte, error) {
	if l.isPlain {
		if l.plain == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(l.plain)
	}
	if l.values == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(l.values)
}

// UnmarshalYAML accepts a sequence of strings or a mapping keyed by locale code.
func (l *LocalizedList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*l = PlainList(items...)
		return nil
	case yaml.MappingNode:
		var m map[string]*[]string
		if err := value.Decode(&m); err != nil {
			return err
		}
		values := make(map[Locale][]string, len(m))
		for k, v := range m {
			if v != nil {
				values[Locale(k)] = append([]string{}, (*v)...)
			}
		}
		*l = LocalizedList{values: values}
		return nil
	default:
		return fmt.Errorf("line %d: localized list must be a sequence or a mapping keyed by locale", value.Line)
	}
}
