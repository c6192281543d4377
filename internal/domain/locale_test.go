package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage_SupportedWithRegionalSuffix(t *testing.T) {
	cases := map[string]string{
		"https://example.com/?lang=en-US":      "en",
		"https://example.com/?lang=ru-RU":      "ru",
		"https://example.com/?lang=es-MX":      "es",
		"https://example.com/?lang=de-AT":      "de",
		"https://example.com/?lang=fr-CA":      "fr",
		"https://example.com/?lang=zh-Hans":    "zh",
		"https://example.com/page?x=1&lang=RU": "ru",
		"https://example.com/?lang=%20ru%20":   "ru",
	}
	for rawURL, want := range cases {
		assert.Equal(t, want, DetectLanguage(rawURL), "url: %s", rawURL)
	}
}

func TestDetectLanguage_UnsupportedOrMalformed_ReturnsDefault(t *testing.T) {
	cases := []string{
		"https://example.com/",
		"https://example.com/?lang=",
		"https://example.com/?lang=xx",
		"https://example.com/?lang=klingon",
		"https://example.com/?lang=日本語",
		"https://example.com/?other=ru",
		"",
		"::::not a url::::",
	}
	for _, rawURL := range cases {
		assert.NotPanics(t, func() {
			assert.Equal(t, DefaultLocale, DetectLanguage(rawURL), "url: %s", rawURL)
		})
	}
}

func TestDetectLanguage_HashRoutedURL_UsesRawStringFallback(t *testing.T) {
	// The parameter sits in the fragment, invisible to the query accessor.
	assert.Equal(t, "ru", DetectLanguage("https://example.com/#/?lang=ru"))
	assert.Equal(t, "ru", DetectLanguage("file:///site/index.html#/?lang=ru%2DRU"))
}

func TestDetectLanguage_UnparseableURL_UsesRawStringFallback(t *testing.T) {
	// url.Parse rejects this host, but the parameter is still recoverable.
	assert.Equal(t, "ru", DetectLanguage("http://[::1]:namedport/?lang=ru"))
}

func TestNormalizeLocale(t *testing.T) {
	cases := map[string]string{
		"ru-RU": "ru",
		" RU ":  "ru",
		"EN-gb": "en",
		"zh":    "zh",
		"":      "",
		"pt-BR": "pt",
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizeLocale(raw), "raw: %q", raw)
	}
}

func TestIsBaseline(t *testing.T) {
	assert.True(t, IsBaseline("en"))
	assert.True(t, IsBaseline("ru"))
	assert.False(t, IsBaseline("de"))
	assert.False(t, IsBaseline("fr"))
}

func TestIsSupported(t *testing.T) {
	for _, code := range []string{"en", "ru", "es", "de", "fr", "zh"} {
		assert.True(t, IsSupported(code), code)
	}
	assert.False(t, IsSupported("pt"))
	assert.False(t, IsSupported(""))
}
