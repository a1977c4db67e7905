// Package category holds the category vocabulary helpers: a pure text
// normalization applied on read and by the batch cleanup.
package category

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Indonesian)

// Normalize canonicalizes a raw category spelling: hyphens become spaces,
// repeated whitespace collapses, the result is trimmed and title-cased.
// "olahan-susu" and "olahan   susu" both normalize to "Olahan Susu".
// Normalizing an already-normalized value returns it unchanged.
func Normalize(raw string) string {
	clean := strings.ReplaceAll(raw, "-", " ")
	clean = strings.Join(strings.Fields(clean), " ")
	return titleCaser.String(clean)
}

// Count is a normalized category with the number of products carrying it.
type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// MergeCounts normalizes raw category/count pairs and merges entries that
// collapse to the same canonical spelling, most-used first.
func MergeCounts(raw []Count) []Count {
	totals := map[string]int{}
	for _, c := range raw {
		name := Normalize(c.Name)
		if name == "" {
			continue
		}
		totals[name] += c.Count
	}

	merged := make([]Count, 0, len(totals))
	for name, count := range totals {
		merged = append(merged, Count{Name: name, Count: count})
	}
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Count != merged[j].Count {
			return merged[i].Count > merged[j].Count
		}
		return merged[i].Name < merged[j].Name
	})
	return merged
}
