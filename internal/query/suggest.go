package query

import (
	"strings"

	"folio/internal/model"
)

const DefaultSuggestionLimit = 5

// Suggestions collects titles, technologies, tags and categories that
// contain term without being equal to it, in first-seen order.
func Suggestions[T model.Record](records []T, term string, limit int) []string {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return []string{}
	}
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	out := make([]string, 0, limit)
	seen := map[string]struct{}{}
	add := func(s string) bool {
		lower := strings.ToLower(s)
		if lower == term || !strings.Contains(lower, term) {
			return false
		}
		if _, ok := seen[s]; ok {
			return false
		}
		seen[s] = struct{}{}
		out = append(out, s)
		return len(out) == limit
	}

	for _, r := range records {
		f := r.Fields()
		if add(f.Title) {
			return out
		}
		for _, t := range f.Technologies {
			if add(t) {
				return out
			}
		}
		for _, t := range f.Tags {
			if add(t) {
				return out
			}
		}
		if add(f.Category) {
			return out
		}
	}
	return out
}
