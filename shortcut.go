package scrapeo

import "regexp"

// Shortcut is a named, predefined query for a common SEO lookup.
type Shortcut struct {
	Name        string
	Tag         string
	Criteria    Criteria
	ExtractAttr string
}

// Query returns the shortcut's query. The returned query shares no state
// with the shortcut.
func (s Shortcut) Query() Query {
	return Query{
		Name:        s.Name,
		Tag:         s.Tag,
		Criteria:    s.Criteria.Clone(),
		ExtractAttr: s.ExtractAttr,
	}
}

// Shortcut names in the default table.
const (
	ShortcutMetaDescription = "meta_description"
	ShortcutRobotsMeta      = "robots_meta"
	ShortcutTitleTag        = "title_tag"
	ShortcutCanonical       = "canonical"
)

// DefaultShortcuts returns the built-in shortcut table in declared order.
// Expanded queries follow this order.
func DefaultShortcuts() []Shortcut {
	return []Shortcut{
		{
			Name:     ShortcutMetaDescription,
			Tag:      "meta",
			Criteria: Criteria{Constraints: map[string]Constraint{"name": Exact("description")}},
		},
		{
			Name:     ShortcutRobotsMeta,
			Tag:      "meta",
			Criteria: Criteria{Constraints: map[string]Constraint{"name": Exact("robots")}},
		},
		{
			Name: ShortcutTitleTag,
			Tag:  "title",
		},
		{
			Name:        ShortcutCanonical,
			Tag:         "link",
			Criteria:    Criteria{Constraints: map[string]Constraint{"rel": Exact("canonical")}},
			ExtractAttr: "href",
		},
	}
}

var tagNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidateShortcuts returns EINVALID if any shortcut in the table cannot
// produce a well-formed query.
func ValidateShortcuts(shortcuts []Shortcut) error {
	seen := make(map[string]bool, len(shortcuts))
	for i, s := range shortcuts {
		if s.Name == "" {
			return Errorf(EINVALID, "shortcut %d: name required", i)
		}
		if seen[s.Name] {
			return Errorf(EINVALID, "shortcut %q: defined more than once", s.Name)
		}
		seen[s.Name] = true

		if !tagNamePattern.MatchString(s.Tag) {
			return Errorf(EINVALID, "shortcut %q: invalid tag %q", s.Name, s.Tag)
		}
		for name := range s.Criteria.Constraints {
			if name == "" {
				return Errorf(EINVALID, "shortcut %q: empty attribute name", s.Name)
			}
		}
		// A value search is silently dropped once constraints exist.
		if s.Criteria.SearchValue != "" && len(s.Criteria.Constraints) > 0 {
			return Errorf(EINVALID, "shortcut %q: search value cannot be combined with attribute constraints", s.Name)
		}
	}
	return nil
}
