package query

import (
	"strings"

	"folio/internal/model"
)

// Run answers a list query. With a non-blank search term the records are
// ranked by relevance first and the other constraints are applied on top,
// keeping relevance order; otherwise the filter runs over the records in
// their given order. A non-nil sort replaces whichever order resulted.
func Run[T model.Record](records []T, f Filter, sort *SortSpec) []T {
	var out []T
	switch {
	case f.IsEmpty():
		out = append(make([]T, 0, len(records)), records...)
	case strings.TrimSpace(f.Search) != "":
		out = Apply(SearchRanked(records, f.Search), f.WithoutSearch())
	default:
		out = Apply(records, f)
	}
	if sort != nil {
		out = Sort(out, *sort)
	}
	return out
}
