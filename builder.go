package scrapeo

import "strings"

// QueryInput is the raw search input supplied by a caller such as a CLI.
type QueryInput struct {
	// Tag is the tag ad-hoc queries search. Defaults to DefaultTag.
	Tag string

	// Attribute and Value are the ad-hoc criteria; either may be empty.
	Attribute string
	Value     string

	// ExtractAttr names the attribute read from a matched void element
	// for the ad-hoc query.
	ExtractAttr string

	// Shortcuts holds the active state of each shortcut by name.
	Shortcuts map[string]bool
}

// QueryBuilder turns raw input into an ordered list of queries.
// It is safe for concurrent use.
type QueryBuilder struct {
	shortcuts []Shortcut
}

// NewQueryBuilder returns a builder over the given shortcut table.
// Returns EINVALID if the table fails ValidateShortcuts.
func NewQueryBuilder(shortcuts []Shortcut) (*QueryBuilder, error) {
	if err := ValidateShortcuts(shortcuts); err != nil {
		return nil, err
	}
	table := make([]Shortcut, len(shortcuts))
	for i, s := range shortcuts {
		s.Criteria = s.Criteria.Clone()
		table[i] = s
	}
	return &QueryBuilder{shortcuts: table}, nil
}

// Build returns the ad-hoc query, if any, followed by each active shortcut
// in table order. Each shortcut appears at most once.
//
// Ad-hoc criteria are disambiguated as follows:
//   - value only: match any attribute equal to the value
//   - attribute only: match the attribute present with any value
//   - both: match the attribute equal to the value
//   - neither: no ad-hoc query
func (b *QueryBuilder) Build(in QueryInput) []Query {
	var queries []Query

	if q, ok := adhocQuery(in); ok {
		queries = append(queries, q)
	}

	for _, s := range b.shortcuts {
		if in.Shortcuts[s.Name] {
			queries = append(queries, s.Query())
		}
	}

	return queries
}

// Shortcut returns the shortcut with the given name.
func (b *QueryBuilder) Shortcut(name string) (Shortcut, bool) {
	for _, s := range b.shortcuts {
		if s.Name == name {
			return s, true
		}
	}
	return Shortcut{}, false
}

// Shortcuts returns the shortcut table in declared order.
func (b *QueryBuilder) Shortcuts() []Shortcut {
	out := make([]Shortcut, len(b.shortcuts))
	for i, s := range b.shortcuts {
		s.Criteria = s.Criteria.Clone()
		out[i] = s
	}
	return out
}

func adhocQuery(in QueryInput) (Query, bool) {
	// HTML parsers lowercase element and attribute names.
	attr := strings.ToLower(strings.TrimSpace(in.Attribute))

	var criteria Criteria
	switch {
	case attr == "" && in.Value == "":
		return Query{}, false
	case attr == "":
		criteria.SearchValue = in.Value
	case in.Value == "":
		criteria.Constraints = map[string]Constraint{attr: MatchAny}
	default:
		criteria.Constraints = map[string]Constraint{attr: Exact(in.Value)}
	}

	tag := strings.ToLower(strings.TrimSpace(in.Tag))
	if tag == "" {
		tag = DefaultTag
	}

	return Query{
		Name:        AdhocQueryName,
		Tag:         tag,
		Criteria:    criteria,
		ExtractAttr: strings.ToLower(strings.TrimSpace(in.ExtractAttr)),
	}, true
}
