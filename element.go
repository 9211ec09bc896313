package scrapeo

// Element is a read-only handle to an element of a parsed document.
// It is valid for as long as the document it came from.
type Element interface {
	// TagName returns the lowercase tag name.
	TagName() string

	// Attr returns the value of the named attribute and whether it exists.
	Attr(name string) (string, bool)

	// Text returns the element's inner text with surrounding whitespace
	// trimmed.
	Text() string

	// IsVoid reports whether the element is an empty element of a type that
	// cannot hold content, as decided by the parser (e.g. meta, link, img).
	IsVoid() bool
}

// Document is a parsed HTML tree. Documents are never mutated after
// parsing and may be shared by concurrent readers.
type Document interface {
	// Find returns the first element of tag, in document order, that
	// satisfies criteria. Returns nil if no element matches.
	Find(tag string, criteria Criteria) Element
}

// Parser builds documents from raw HTML.
type Parser interface {
	Parse(html string) (Document, error)
}

// Analyzer decides which string of a matched element is relevant.
type Analyzer interface {
	// RelevantText returns the inner text of content-bearing elements, and
	// the extractAttr attribute (DefaultExtractAttr when empty) of void
	// elements. Returns ENOMATCH for a nil element and ENOATTR when the
	// attribute is missing.
	RelevantText(el Element, extractAttr string) (string, error)
}
