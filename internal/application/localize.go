package application

import (
	"go.uber.org/zap"

	"sitekit/internal/domain"
	"sitekit/internal/domain/entities"
	"sitekit/internal/ports/output"
	"sitekit/pkg/logger"
)

// comingSoonMarkup is the fixed panel shown for locales without translation
// data. Deliberately not localized.
const comingSoonMarkup = `<div class="coming-soon"><h1>Coming Soon</h1><p>This language version is not available yet. Please check back later.</p></div>`

// Localizer owns the state of one page render: the locale resolved from the
// page URL (computed once, immutable) and the active translation store
// (installed wholesale via Init). All methods are synchronous and are meant
// to be called from a single goroutine.
type Localizer struct {
	lang     string
	baseline bool
	store    entities.Store
	doc      output.Document
}

// NewLocalizer resolves the locale from pageURL and binds the document the
// substitution will run against.
func NewLocalizer(pageURL string, doc output.Document) *Localizer {
	lang := domain.DetectLanguage(pageURL)
	return &Localizer{
		lang:     lang,
		baseline: domain.IsBaseline(lang),
		doc:      doc,
	}
}

// Lang returns the resolved page locale.
func (l *Localizer) Lang() string { return l.lang }

// Baseline reports whether the resolved locale is one of the fully
// translated locales, renderable regardless of store contents.
func (l *Localizer) Baseline() bool { return l.baseline }

// Init installs the translation store for this page and immediately runs
// substitution. The store replaces any previous one wholesale.
func (l *Localizer) Init(store entities.Store) {
	l.store = store
	l.TranslatePage()
}

// TranslatePage mutates every marked node so its visible text reflects the
// active translation set. Re-running against an unchanged store produces the
// same document state, since key markers are never removed.
//
// When the resolved locale has no store entry and is not a baseline locale,
// the whole body is replaced with the coming-soon panel instead and the
// language attribute is left untouched.
func (l *Localizer) TranslatePage() {
	if l.doc == nil {
		return
	}

	if !l.store.HasLocale(l.lang) && !l.baseline {
		l.doc.ReplaceBody(comingSoonMarkup)
		return
	}

	for _, node := range l.doc.Nodes() {
		l.translateNode(node)
	}
	l.doc.SetLang(l.lang)
}

// translateNode applies the per-element substitution policy. A failure on
// one node must not abort the traversal for the rest.
func (l *Localizer) translateNode(node output.Node) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("localize: node substitution failed",
				zap.String("key", node.Key()),
				zap.Any("reason", r),
			)
		}
	}()

	switch node.Kind() {
	case "input", "textarea":
		value := l.store.Resolve(l.lang, node.Key())
		if node.HasAttr("placeholder") {
			node.SetAttr("placeholder", value)
		} else {
			node.SetAttr("value", value)
		}
		return
	}

	// A link-key marker translates an inline hyperlink's label without
	// disturbing the surrounding markup: only the text content changes.
	if linkKey := node.LinkKey(); linkKey != "" {
		node.SetText(l.store.Resolve(l.lang, linkKey))
		return
	}

	// Only flatten nodes whose entire content is plain text. Nested
	// element markup (icons, footer links) stays untouched.
	if !node.HasChildNodes() || node.HasSoleTextChild() {
		node.SetText(l.store.Resolve(l.lang, node.Key()))
	}
}
