package query

import (
	"strings"

	"folio/internal/model"
)

// Filter describes coarse inclusion criteria. Empty sets impose no
// constraint; set membership is OR within a set, and every active
// constraint is ANDed.
type Filter struct {
	Categories   []string `json:"categories,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Statuses     []string `json:"statuses,omitempty"`
	FeaturedOnly bool     `json:"featured_only,omitempty"`
	Search       string   `json:"search,omitempty"`
}

// WithoutSearch returns a copy with the free-text term cleared.
func (f Filter) WithoutSearch() Filter {
	f.Search = ""
	return f
}

// ActiveCount counts the individual constraints a user has switched on.
func (f Filter) ActiveCount() int {
	n := len(f.Categories) + len(f.Tags) + len(f.Technologies) + len(f.Statuses)
	if strings.TrimSpace(f.Search) != "" {
		n++
	}
	if f.FeaturedOnly {
		n++
	}
	return n
}

func (f Filter) IsEmpty() bool {
	return f.ActiveCount() == 0
}

// Matches reports whether r passes every active constraint of f.
func Matches(r model.Record, f Filter) bool {
	fields := r.Fields()

	if term := strings.TrimSpace(f.Search); term != "" {
		if !strings.Contains(searchable(fields), strings.ToLower(term)) {
			return false
		}
	}
	if len(f.Categories) > 0 && !containsFold(f.Categories, fields.Category) {
		return false
	}
	if len(f.Tags) > 0 && !overlapsFold(f.Tags, fields.Tags) {
		return false
	}
	if len(f.Technologies) > 0 && !overlapsFold(f.Technologies, fields.Technologies) {
		return false
	}
	if len(f.Statuses) > 0 && !containsFold(f.Statuses, fields.Status) {
		return false
	}
	if f.FeaturedOnly && !fields.Featured {
		return false
	}
	return true
}

// Apply keeps the records that match f, preserving their order.
func Apply[T model.Record](records []T, f Filter) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if Matches(r, f) {
			out = append(out, r)
		}
	}
	return out
}

// searchable joins every text field with newlines so a term can never
// match across two fields.
func searchable(f model.Fields) string {
	parts := make([]string, 0, 6+len(f.Tags)+len(f.Technologies))
	parts = append(parts, f.Title, f.Description, f.LongDescription)
	parts = append(parts, f.Tags...)
	parts = append(parts, f.Technologies...)
	parts = append(parts, f.Category, f.Client, f.Role)
	return strings.ToLower(strings.Join(parts, "\n"))
}

func containsFold(set []string, v string) bool {
	if v == "" {
		return false
	}
	for _, s := range set {
		if strings.EqualFold(strings.TrimSpace(s), v) {
			return true
		}
	}
	return false
}

func overlapsFold(set, values []string) bool {
	for _, v := range values {
		if containsFold(set, v) {
			return true
		}
	}
	return false
}
