package query

import (
	"slices"
	"strings"

	"folio/internal/model"
)

const (
	RelatedSameCategory = 3
	RelatedSharedTag    = 1
)

// Related ranks the other records by how much they share with ref: a
// matching category and every common tag or technology. Records sharing
// nothing are dropped. Ties go to the more recent record, then to store
// order.
func Related[T model.Record](records []T, ref T, limit int) []T {
	if limit <= 0 {
		return []T{}
	}
	rf := ref.Fields()
	refTags := lowerSet(rf.Tags)
	refTech := lowerSet(rf.Technologies)

	type candidate struct {
		record T
		score  int
		start  int64
	}
	cands := make([]candidate, 0, len(records))
	for _, r := range records {
		if r.RecordID() == ref.RecordID() {
			continue
		}
		f := r.Fields()
		score := 0
		if f.Category != "" && strings.EqualFold(f.Category, rf.Category) {
			score += RelatedSameCategory
		}
		score += RelatedSharedTag * countShared(refTags, f.Tags)
		score += RelatedSharedTag * countShared(refTech, f.Technologies)
		if score == 0 {
			continue
		}
		cands = append(cands, candidate{record: r, score: score, start: f.Start.UnixNano()})
	}

	slices.SortStableFunc(cands, func(a, b candidate) int {
		if a.score != b.score {
			return b.score - a.score
		}
		switch {
		case a.start > b.start:
			return -1
		case a.start < b.start:
			return 1
		}
		return 0
	})

	n := min(limit, len(cands))
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = cands[i].record
	}
	return out
}

func lowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = struct{}{}
	}
	return set
}

func countShared(set map[string]struct{}, values []string) int {
	n := 0
	for _, v := range values {
		if _, ok := set[strings.ToLower(v)]; ok {
			n++
		}
	}
	return n
}
