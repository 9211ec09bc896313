// Package goquery implements scrapeo.Document on top of
// github.com/PuerkitoBio/goquery and golang.org/x/net/html.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/scrapeo/scrapeo"
	"golang.org/x/net/html"
)

// Compile-time interface verification.
var (
	_ scrapeo.Parser   = (*Parser)(nil)
	_ scrapeo.Document = (*Document)(nil)
)

// Parser parses HTML into Documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse implements scrapeo.Parser.
func (p *Parser) Parse(html string) (scrapeo.Document, error) {
	return NewDocument(html)
}

// Document is a parsed HTML tree searched by tag and attribute criteria.
// It is never modified after NewDocument returns, so it is safe for
// concurrent use.
type Document struct {
	doc *goquery.Document

	// empty marks a blank input. The parser still synthesizes html, head
	// and body for it, but none of them came from the source.
	empty bool
}

// NewDocument parses html. Malformed markup is repaired the way browsers
// repair it; an error is returned only if the input cannot be read.
func NewDocument(html string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, scrapeo.Errorf(scrapeo.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc, empty: strings.TrimSpace(html) == ""}, nil
}

// Find returns the first element named tag, in depth-first document order,
// that satisfies criteria. The walk stops at the first match.
// Returns nil if no element matches or the document is empty.
func (d *Document) Find(tag string, criteria scrapeo.Criteria) scrapeo.Element {
	if d.empty {
		return nil
	}

	for _, root := range d.doc.Nodes {
		if n := findFirst(root, tag, criteria); n != nil {
			return &Element{sel: d.doc.FindNodes(n)}
		}
	}
	return nil
}

// findFirst walks the subtree below n in pre-order and returns the first
// element named tag that satisfies criteria.
func findFirst(n *html.Node, tag string, criteria scrapeo.Criteria) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag && matches(c, criteria) {
			return c
		}
		if found := findFirst(c, tag, criteria); found != nil {
			return found
		}
	}
	return nil
}

// matches reports whether n satisfies criteria. A value search compares
// against every attribute; otherwise each constraint is checked by name.
func matches(n *html.Node, criteria scrapeo.Criteria) bool {
	if criteria.IsValueSearch() {
		for _, a := range n.Attr {
			if a.Val == criteria.SearchValue {
				return true
			}
		}
		return false
	}

	for name, constraint := range criteria.Constraints {
		value, ok := attr(n, name)
		if !constraint.Match(value, ok) {
			return false
		}
	}
	return true
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}
