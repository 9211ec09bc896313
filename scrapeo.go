// Package scrapeo extracts targeted text and attribute values from HTML
// documents. A query names a tag plus attribute constraints (or a shortcut
// such as "canonical"), is resolved against a parsed document to at most one
// element, and yields either the element's inner text or one of its
// attribute values.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, http/).
package scrapeo
