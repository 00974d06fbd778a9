package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Categories returns the distinct categories in order of first appearance.
func Categories(icons []Icon) []string {
	var out []string
	seen := make(map[string]bool)
	for _, ic := range icons {
		if !seen[ic.Category] {
			seen[ic.Category] = true
			out = append(out, ic.Category)
		}
	}
	return out
}

// CategoryCounts returns how many icons each category holds.
func CategoryCounts(icons []Icon) map[string]int {
	counts := make(map[string]int)
	for _, ic := range icons {
		counts[ic.Category]++
	}
	return counts
}

// Filter keeps icons whose category is selected (all when nothing is
// selected) and whose name contains query, ignoring case. The result is
// sorted by name using a locale-aware collation.
func Filter(icons []Icon, query string, selected []string) []Icon {
	q := strings.ToLower(query)
	out := make([]Icon, 0, len(icons))
	for _, ic := range icons {
		if len(selected) > 0 && !slices.Contains(selected, ic.Category) {
			continue
		}
		if !strings.Contains(strings.ToLower(ic.Name), q) {
			continue
		}
		out = append(out, ic)
	}

	col := collate.New(language.Und)
	slices.SortStableFunc(out, func(a, b Icon) int {
		return col.CompareString(a.Name, b.Name)
	})
	return out
}

// Selection is the ordered set of toggled categories.
type Selection struct {
	items []string
}

// Toggle adds cat when absent and removes it otherwise.
func (s *Selection) Toggle(cat string) {
	if i := slices.Index(s.items, cat); i >= 0 {
		s.items = slices.Delete(s.items, i, i+1)
		return
	}
	s.items = append(s.items, cat)
}

// Has reports whether cat is selected.
func (s *Selection) Has(cat string) bool {
	return slices.Contains(s.items, cat)
}

// Items returns a copy of the selection in toggle order.
func (s *Selection) Items() []string {
	return slices.Clone(s.items)
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.items = nil
}
