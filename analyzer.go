package scrapeo

var _ Analyzer = TextAnalyzer{}

// TextAnalyzer is the default Analyzer.
//
// The branch is keyed on Element.IsVoid, never on the tag name: void
// elements carry their payload in attributes, everything else in text.
type TextAnalyzer struct{}

// RelevantText implements Analyzer.
func (TextAnalyzer) RelevantText(el Element, extractAttr string) (string, error) {
	if el == nil {
		return "", Errorf(ENOMATCH, "no matching element")
	}

	if !el.IsVoid() {
		return el.Text(), nil
	}

	name := extractAttr
	if name == "" {
		name = DefaultExtractAttr
	}
	value, ok := el.Attr(name)
	if !ok {
		return "", Errorf(ENOATTR, "<%s> has no %q attribute", el.TagName(), name)
	}
	return value, nil
}
