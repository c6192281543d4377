package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT_LocalizesPerLocale(t *testing.T) {
	tr := NewTranslator("en")
	assert.Equal(t, "📮 New feedback", tr.T("en", "feedback.title", nil))
	assert.Equal(t, "📮 Новый отзыв", tr.T("ru", "feedback.title", nil))
}

func TestT_FallsBackToDefaultLocale(t *testing.T) {
	tr := NewTranslator("en")
	assert.Equal(t, "Message", tr.T("de", "feedback.field.message", nil))
	assert.Equal(t, "Type", tr.T("", "feedback.field.type", nil))
}

func TestT_UnknownKeyReturnsKey(t *testing.T) {
	tr := NewTranslator("en")
	assert.Equal(t, "missing.key", tr.T("en", "missing.key", nil))
}

func TestT_EmptyKey(t *testing.T) {
	tr := NewTranslator("en")
	assert.Empty(t, tr.T("en", "", nil))
}

func TestNewTranslator_BadDefaultLocaleFallsBackToEnglish(t *testing.T) {
	tr := NewTranslator("!!")
	assert.Equal(t, "📮 New feedback", tr.T("", "feedback.title", nil))
}
