// Package htmldom adapts a parsed HTML tree to the output.Document port,
// letting the localization core run server-side against real markup.
package htmldom

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"sitekit/internal/ports/output"
)

// Marker attributes recognized on translatable elements.
const (
	keyAttr     = "data-i18n"
	linkKeyAttr = "data-i18n-link"
)

var _ output.Document = (*Document)(nil)

// Document wraps a parsed HTML page.
type Document struct {
	root *html.Node
	htm  *html.Node // the <html> element
	body *html.Node
}

// Parse builds a Document from raw HTML markup.
func Parse(markup []byte) (*Document, error) {
	root, err := html.Parse(bytes.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("htmldom: parse: %w", err)
	}

	d := &Document{root: root}
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		switch n.Data {
		case "html":
			if d.htm == nil {
				d.htm = n
			}
		case "body":
			if d.body == nil {
				d.body = n
			}
		}
	})
	if d.body == nil {
		return nil, fmt.Errorf("htmldom: markup has no body element")
	}
	return d, nil
}

// Nodes returns every element carrying a translation key marker, in
// document order. The slice is rebuilt on each call so it reflects a
// replaced body.
func (d *Document) Nodes() []output.Node {
	var nodes []output.Node
	walk(d.root, func(n *html.Node) {
		if n.Type == html.ElementNode && attrValue(n, keyAttr) != "" {
			nodes = append(nodes, &Node{n: n})
		}
	})
	return nodes
}

// SetLang sets the lang attribute on the <html> element.
func (d *Document) SetLang(locale string) {
	if d.htm != nil {
		setAttr(d.htm, "lang", locale)
	}
}

// ReplaceBody swaps the body's children for the given markup fragment.
func (d *Document) ReplaceBody(markup string) {
	for d.body.FirstChild != nil {
		d.body.RemoveChild(d.body.FirstChild)
	}
	fragment, err := html.ParseFragment(strings.NewReader(markup), d.body)
	if err != nil {
		// Degrade to plain text rather than lose the panel entirely.
		d.body.AppendChild(&html.Node{Type: html.TextNode, Data: markup})
		return
	}
	for _, n := range fragment {
		d.body.AppendChild(n)
	}
}

// Render serializes the mutated document back to HTML.
func (d *Document) Render() ([]byte, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		return nil, fmt.Errorf("htmldom: render: %w", err)
	}
	return buf.Bytes(), nil
}

var _ output.Node = (*Node)(nil)

// Node is one translatable element of the page.
type Node struct {
	n *html.Node
}

// Kind returns the tag name; the parser already lowercases it.
func (n *Node) Kind() string { return n.n.Data }

func (n *Node) Key() string     { return attrValue(n.n, keyAttr) }
func (n *Node) LinkKey() string { return attrValue(n.n, linkKeyAttr) }

func (n *Node) HasAttr(name string) bool {
	for _, a := range n.n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

func (n *Node) SetAttr(name, value string) {
	setAttr(n.n, name, value)
}

// SetText replaces the element's content with a single text node.
func (n *Node) SetText(value string) {
	for n.n.FirstChild != nil {
		n.n.RemoveChild(n.n.FirstChild)
	}
	n.n.AppendChild(&html.Node{Type: html.TextNode, Data: value})
}

func (n *Node) HasChildNodes() bool {
	return n.n.FirstChild != nil
}

func (n *Node) HasSoleTextChild() bool {
	fc := n.n.FirstChild
	return fc != nil && fc.NextSibling == nil && fc.Type == html.TextNode
}

func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func attrValue(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, name, value string) {
	for i := range n.Attr {
		if n.Attr[i].Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}
