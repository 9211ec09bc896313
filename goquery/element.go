package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/scrapeo/scrapeo"
	"golang.org/x/net/html"
)

var _ scrapeo.Element = (*Element)(nil)

// Element wraps a single-node goquery selection.
type Element struct {
	sel *goquery.Selection
}

// TagName returns the element's tag name.
func (e *Element) TagName() string {
	return goquery.NodeName(e.sel)
}

// Attr returns the value of the named attribute and whether it exists.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// Text returns the combined text of all descendants with leading and
// trailing whitespace removed. Inner whitespace is kept as written.
func (e *Element) Text() string {
	return strings.TrimSpace(e.sel.Text())
}

// IsVoid reports whether the element has no children and its type is one
// the html package serializes as self-closing.
func (e *Element) IsVoid() bool {
	n := e.sel.Get(0)
	if n.FirstChild != nil {
		return false
	}
	return rendersSelfClosing(n)
}

// rendersSelfClosing asks the html renderer how it would write a childless
// copy of n. Void elements are the only ones rendered as "<tag/>"; every
// other element gets a closing tag.
func rendersSelfClosing(n *html.Node) bool {
	shell := &html.Node{
		Type:      html.ElementNode,
		Data:      n.Data,
		DataAtom:  n.DataAtom,
		Namespace: n.Namespace,
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, shell); err != nil {
		return false
	}
	return bytes.HasSuffix(buf.Bytes(), []byte("/>"))
}
