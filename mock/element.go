package mock

import "github.com/scrapeo/scrapeo"

var _ scrapeo.Element = (*Element)(nil)

// Element is a mock implementation of scrapeo.Element.
type Element struct {
	TagNameFn func() string
	AttrFn    func(name string) (string, bool)
	TextFn    func() string
	IsVoidFn  func() bool
}

func (e *Element) TagName() string {
	return e.TagNameFn()
}

func (e *Element) Attr(name string) (string, bool) {
	return e.AttrFn(name)
}

func (e *Element) Text() string {
	return e.TextFn()
}

func (e *Element) IsVoid() bool {
	return e.IsVoidFn()
}

var _ scrapeo.Document = (*Document)(nil)

// Document is a mock implementation of scrapeo.Document.
type Document struct {
	FindFn func(tag string, criteria scrapeo.Criteria) scrapeo.Element
}

func (d *Document) Find(tag string, criteria scrapeo.Criteria) scrapeo.Element {
	return d.FindFn(tag, criteria)
}

var _ scrapeo.Parser = (*Parser)(nil)

// Parser is a mock implementation of scrapeo.Parser.
type Parser struct {
	ParseFn func(html string) (scrapeo.Document, error)
}

func (p *Parser) Parse(html string) (scrapeo.Document, error) {
	return p.ParseFn(html)
}

var _ scrapeo.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of scrapeo.Analyzer.
type Analyzer struct {
	RelevantTextFn func(el scrapeo.Element, extractAttr string) (string, error)
}

func (a *Analyzer) RelevantText(el scrapeo.Element, extractAttr string) (string, error) {
	return a.RelevantTextFn(el, extractAttr)
}
