package output

// T exposes a minimal i18n contract for the relay's own user-facing strings
// (chat captions). Page translation data does not go through this port; it
// is supplied by the host as an entities.Store.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}
