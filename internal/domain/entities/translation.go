package entities

import "sitekit/internal/domain"

// Store holds the active translation set for a page: locale → key → value.
// It is supplied once by the host, replaced wholesale, never merged or
// mutated. The shape is not validated; malformed entries simply fail to
// resolve and surface as the literal key.
type Store map[string]map[string]string

// HasLocale reports whether the store carries an entry for lang.
func (s Store) HasLocale(lang string) bool {
	_, ok := s[lang]
	return ok
}

// Resolve looks up key with a strict two-level fallback: the active locale,
// then the default locale, then the key itself. A missing translation is
// rendered as the visible key, never as blank text.
func (s Store) Resolve(lang, key string) string {
	if v, ok := s[lang][key]; ok {
		return v
	}
	if v, ok := s[domain.DefaultLocale][key]; ok {
		return v
	}
	return key
}
