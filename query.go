package scrapeo

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// DefaultTag is the tag ad-hoc queries search when none is given.
const DefaultTag = "meta"

// DefaultExtractAttr is the attribute read from void elements when a query
// carries no extraction hint.
const DefaultExtractAttr = "content"

// AdhocQueryName names the query built from explicit attribute/value input.
const AdhocQueryName = "adhoc"

// Constraint restricts the value of one attribute.
// The zero value requires the attribute to be present with an empty value.
type Constraint struct {
	Value string
	Any   bool
}

// MatchAny requires the attribute to be present with any value.
var MatchAny = Constraint{Any: true}

// Exact requires the attribute to equal value exactly.
func Exact(value string) Constraint {
	return Constraint{Value: value}
}

// Match reports whether an attribute with the given value and presence
// satisfies the constraint.
func (c Constraint) Match(value string, present bool) bool {
	if !present {
		return false
	}
	return c.Any || value == c.Value
}

// Criteria describes which element of a tag a query selects.
//
// A non-empty SearchValue with no Constraints selects the first element
// having SearchValue as the value of any attribute. Otherwise every
// constraint must hold and SearchValue is ignored. Both empty selects the
// first element of the tag.
type Criteria struct {
	SearchValue string
	Constraints map[string]Constraint
}

// IsValueSearch reports whether the criteria search attribute values
// regardless of attribute name.
func (c Criteria) IsValueSearch() bool {
	return c.SearchValue != "" && len(c.Constraints) == 0
}

// Clone returns a copy that shares no map with c.
func (c Criteria) Clone() Criteria {
	return Criteria{
		SearchValue: c.SearchValue,
		Constraints: maps.Clone(c.Constraints),
	}
}

// String renders the criteria in attribute-selector notation.
// Constraint keys are sorted so the output is stable.
func (c Criteria) String() string {
	if c.IsValueSearch() {
		return fmt.Sprintf("[*=%q]", c.SearchValue)
	}
	var b strings.Builder
	for _, name := range slices.Sorted(maps.Keys(c.Constraints)) {
		constraint := c.Constraints[name]
		if constraint.Any {
			fmt.Fprintf(&b, "[%s]", name)
			continue
		}
		fmt.Fprintf(&b, "[%s=%q]", name, constraint.Value)
	}
	return b.String()
}

// Query is one resolvable lookup: a tag, the criteria selecting an element
// of that tag, and an optional hint naming the attribute to extract from
// void elements.
type Query struct {
	Name        string
	Tag         string
	Criteria    Criteria
	ExtractAttr string
}

// String returns the query in selector-like notation, e.g.
// `link[rel="canonical"]`.
func (q Query) String() string {
	return q.Tag + q.Criteria.String()
}

// Result is the outcome of resolving one query.
// Err carries ENOMATCH or ENOATTR when no value was produced.
type Result struct {
	Query Query
	Value string
	Err   error
}

// Found reports whether the query produced a value.
func (r Result) Found() bool {
	return r.Err == nil
}

// Report is the outcome of resolving queries against one source document.
// Err is set when the source could not be loaded or parsed, in which case
// Results is empty.
type Report struct {
	Source  string
	Results []Result
	Err     error
}

// Resolver resolves queries against a single parsed document.
type Resolver interface {
	// ResolveText returns the relevant text for the query.
	// Returns ENOMATCH if no element matches and ENOATTR if the matched
	// void element lacks the attribute to extract.
	ResolveText(q Query) (string, error)

	// ResolveAll resolves each query independently, preserving input order.
	ResolveAll(queries []Query) []Result
}
