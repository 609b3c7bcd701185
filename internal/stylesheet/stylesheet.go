// Package stylesheet holds the small CSS subset used by the editor panels: class and id selectors
// and flat declarations, resolved into a ComputedStyle.
package stylesheet

import (
	"slices"
	"strings"
)

// Selector is a compound selector: an optional id and any number of classes, all of which must match.
type Selector struct {
	ID      string
	Classes []string
}

// ParseSelector parses "#id", ".a", ".a.b" or "#id.a". Anything else (element names,
// combinators, pseudo-classes) is rejected.
func ParseSelector(s string) (Selector, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || (s[0] != '.' && s[0] != '#') {
		return Selector{}, false
	}
	var sel Selector
	for len(s) > 0 {
		kind := s[0]
		if kind != '.' && kind != '#' {
			return Selector{}, false
		}
		s = s[1:]
		end := strings.IndexAny(s, ".#")
		if end == -1 {
			end = len(s)
		}
		name := s[:end]
		s = s[end:]
		if name == "" || strings.ContainsAny(name, " \t\n>+~:[") {
			return Selector{}, false
		}
		if kind == '#' {
			if sel.ID != "" {
				return Selector{}, false
			}
			sel.ID = name
		} else {
			sel.Classes = append(sel.Classes, name)
		}
	}
	return sel, true
}

// Matches reports whether an element with id and classes is selected.
func (sel Selector) Matches(id string, classes []string) bool {
	if sel.ID != "" && sel.ID != id {
		return false
	}
	for _, c := range sel.Classes {
		if !slices.Contains(classes, c) {
			return false
		}
	}
	return true
}

// specificity orders rules the CSS way: ids outweigh classes.
func (sel Selector) specificity() int {
	n := len(sel.Classes)
	if sel.ID != "" {
		n += 100
	}
	return n
}

// Rule is one selector with its raw property values.
type Rule struct {
	Selector Selector
	Props    map[string]string
}

// Stylesheet is a list of rules in source order.
type Stylesheet struct {
	Rules []Rule
}

// Props merges the properties of every matching rule. Higher specificity wins and, among equal
// specificity, the later rule wins.
func (s *Stylesheet) Props(id string, classes []string) map[string]string {
	merged := make(map[string]string)
	if s == nil {
		return merged
	}
	var matched []Rule
	for _, r := range s.Rules {
		if r.Selector.Matches(id, classes) {
			matched = append(matched, r)
		}
	}
	slices.SortStableFunc(matched, func(a, b Rule) int {
		return a.Selector.specificity() - b.Selector.specificity()
	})
	for _, r := range matched {
		for k, v := range r.Props {
			merged[k] = v
		}
	}
	return merged
}

// Resolve is Props followed by ResolveProps.
func (s *Stylesheet) Resolve(id string, classes []string) ComputedStyle {
	return ResolveProps(s.Props(id, classes))
}
