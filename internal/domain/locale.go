package domain

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is the locale every failure path degrades to.
const DefaultLocale = "en"

// supportedLocales is the closed set of codes the site recognizes in URLs.
// Only the baseline locales are guaranteed to have full translation data.
var supportedLocales = map[string]struct{}{
	"en": {},
	"ru": {},
	"es": {},
	"de": {},
	"fr": {},
	"zh": {},
}

// baselineLocales are always renderable, even when the active translation
// store happens to lack an entry for them.
var baselineLocales = map[string]struct{}{
	"en": {},
	"ru": {},
}

// Matches lang=<value> anywhere in a raw URL, stopping at the next
// parameter or fragment boundary.
var langParamPattern = regexp.MustCompile(`[?&]lang=([^&#]+)`)

// IsSupported reports whether code belongs to the recognized locale set.
func IsSupported(code string) bool {
	_, ok := supportedLocales[code]
	return ok
}

// IsBaseline reports whether code is one of the fully translated locales.
func IsBaseline(code string) bool {
	_, ok := baselineLocales[code]
	return ok
}

// NormalizeLocale lowercases, trims and strips a regional suffix from a raw
// language value, so "ru-RU" and " RU " both become "ru". Returns "" for
// empty input. The result is not guaranteed to be supported.
func NormalizeLocale(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return ""
	}
	if tag, err := language.Parse(raw); err == nil {
		if base, conf := tag.Base(); conf > language.No {
			return base.String()
		}
	}
	if i := strings.IndexByte(raw, '-'); i >= 0 {
		raw = raw[:i]
	}
	return raw
}

// DetectLanguage derives the page locale from rawURL's lang query parameter.
// It never fails: unsupported, malformed or absent values all resolve to
// DefaultLocale, since locale detection must never block page rendering.
func DetectLanguage(rawURL string) (locale string) {
	defer func() {
		if recover() != nil {
			locale = DefaultLocale
		}
	}()

	if u, err := url.Parse(rawURL); err == nil {
		if code := NormalizeLocale(u.Query().Get("lang")); IsSupported(code) {
			return code
		}
	}

	// Some hosts mangle or hide the query component (hash-based routing,
	// file contexts). Re-derive the parameter from the raw string.
	if m := langParamPattern.FindStringSubmatch(rawURL); m != nil {
		val := m[1]
		if dec, err := url.QueryUnescape(val); err == nil {
			val = dec
		}
		if code := NormalizeLocale(val); IsSupported(code) {
			return code
		}
	}

	return DefaultLocale
}
