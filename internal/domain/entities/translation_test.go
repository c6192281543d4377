package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_ActiveLocaleWins(t *testing.T) {
	store := Store{
		"en": {"greet": "Hello"},
		"ru": {"greet": "Привет"},
	}
	assert.Equal(t, "Привет", store.Resolve("ru", "greet"))
}

func TestResolve_FallsBackToEnglish(t *testing.T) {
	store := Store{
		"en": {"greet": "Hello"},
		"ru": {"bye": "Пока"},
	}
	assert.Equal(t, "Hello", store.Resolve("ru", "greet"))
}

func TestResolve_MissingEverywhere_ReturnsKey(t *testing.T) {
	store := Store{"en": {"greet": "Hello"}}
	assert.Equal(t, "form.submit", store.Resolve("ru", "form.submit"))
}

func TestResolve_NilStore(t *testing.T) {
	var store Store
	assert.Equal(t, "greet", store.Resolve("en", "greet"))
}

func TestHasLocale(t *testing.T) {
	store := Store{"en": {}, "ru": {"greet": "Привет"}}
	assert.True(t, store.HasLocale("en"))
	assert.True(t, store.HasLocale("ru"))
	assert.False(t, store.HasLocale("de"))
}
