package query

import (
	"slices"
	"strings"

	"folio/internal/model"
)

// Field weights for relevance scoring.
const (
	WeightTitle           = 10
	WeightDescription     = 5
	WeightLongDescription = 3
	WeightCategory        = 3
	WeightTag             = 4
	WeightTechnology      = 4
	WeightClient          = 2
	WeightRole            = 2
	FeaturedBonus         = 1
)

// Score computes the relevance of r for term. Zero means r is not a
// candidate. The featured bonus is only added on top of a real match.
func Score(r model.Record, term string) int {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return 0
	}
	f := r.Fields()
	has := func(s string) bool {
		return s != "" && strings.Contains(strings.ToLower(s), term)
	}

	score := 0
	if has(f.Title) {
		score += WeightTitle
	}
	if has(f.Description) {
		score += WeightDescription
	}
	if has(f.LongDescription) {
		score += WeightLongDescription
	}
	if has(f.Category) {
		score += WeightCategory
	}
	for _, tag := range f.Tags {
		if has(tag) {
			score += WeightTag
		}
	}
	for _, tech := range f.Technologies {
		if has(tech) {
			score += WeightTechnology
		}
	}
	if has(f.Client) {
		score += WeightClient
	}
	if has(f.Role) {
		score += WeightRole
	}
	if f.Featured && score > 0 {
		score += FeaturedBonus
	}
	return score
}

type scored[T any] struct {
	record T
	score  int
}

// SearchRanked returns the records scoring above zero for term, best first.
// Equal scores keep their input order. A blank term returns the input
// order unchanged.
func SearchRanked[T model.Record](records []T, term string) []T {
	if strings.TrimSpace(term) == "" {
		return slices.Clone(records)
	}

	hits := make([]scored[T], 0, len(records))
	for _, r := range records {
		if s := Score(r, term); s > 0 {
			hits = append(hits, scored[T]{record: r, score: s})
		}
	}
	slices.SortStableFunc(hits, func(a, b scored[T]) int {
		return b.score - a.score
	})

	out := make([]T, len(hits))
	for i, h := range hits {
		out[i] = h.record
	}
	return out
}
