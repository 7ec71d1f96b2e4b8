package query

import (
	"slices"
	"strings"

	"folio/internal/model"
)

// Stats aggregates a result set.
type Stats struct {
	Total         int            `json:"total"`
	ByCategory    map[string]int `json:"by_category"`
	ByStatus      map[string]int `json:"by_status"`
	ByTag         map[string]int `json:"by_tag"`
	ByTechnology  map[string]int `json:"by_technology"`
	FeaturedCount int            `json:"featured_count"`
}

func Aggregate[T model.Record](records []T) Stats {
	st := Stats{
		Total:        len(records),
		ByCategory:   map[string]int{},
		ByStatus:     map[string]int{},
		ByTag:        map[string]int{},
		ByTechnology: map[string]int{},
	}
	for _, r := range records {
		f := r.Fields()
		st.ByCategory[f.Category]++
		if f.Status != "" {
			st.ByStatus[f.Status]++
		}
		for _, t := range f.Tags {
			st.ByTag[t]++
		}
		for _, t := range f.Technologies {
			st.ByTechnology[t]++
		}
		if f.Featured {
			st.FeaturedCount++
		}
	}
	return st
}

// Facets lists the distinct values present in a record set, sorted.
type Facets struct {
	Categories   []string `json:"categories"`
	Tags         []string `json:"tags"`
	Technologies []string `json:"technologies"`
}

func CollectFacets[T model.Record](records []T) Facets {
	cats := map[string]struct{}{}
	tags := map[string]struct{}{}
	techs := map[string]struct{}{}
	for _, r := range records {
		f := r.Fields()
		cats[f.Category] = struct{}{}
		for _, t := range f.Tags {
			tags[t] = struct{}{}
		}
		for _, t := range f.Technologies {
			techs[t] = struct{}{}
		}
	}
	return Facets{
		Categories:   sortedKeys(cats),
		Tags:         sortedKeys(tags),
		Technologies: sortedKeys(techs),
	}
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return keys
}
