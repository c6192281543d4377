package output

// Document is the minimal page capability the localization core needs:
// enumerate marked nodes, stamp the page language, swap the body markup.
// Implementations range from a parsed HTML tree to an in-memory fake.
type Document interface {
	// Nodes returns every node carrying a translation key marker, in
	// document order. Unmarked nodes are never touched.
	Nodes() []Node

	// SetLang sets the language attribute on the document root.
	SetLang(locale string)

	// ReplaceBody swaps the entire body content for the given markup.
	ReplaceBody(markup string)
}

// Node is a single translatable element.
type Node interface {
	// Kind returns the lowercase tag name ("input", "a", "p", ...).
	Kind() string

	// Key returns the node's translation key marker value.
	Key() string

	// LinkKey returns the secondary link-text key, or "" when absent.
	LinkKey() string

	HasAttr(name string) bool
	SetAttr(name, value string)

	// SetText replaces the node's text content.
	SetText(value string)

	// HasChildNodes reports whether the node has any child node at all,
	// text nodes included.
	HasChildNodes() bool

	// HasSoleTextChild reports whether the node's only content is a
	// single text node with no element children.
	HasSoleTextChild() bool
}
