package query

import (
	"testing"

	"folio/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestMatches_EmptyFilterAdmitsEverything(t *testing.T) {
	for _, p := range portfolio() {
		assert.True(t, Matches(p, Filter{}), p.ID)
		assert.True(t, Matches(p, Filter{Categories: []string{}, Tags: []string{}}), p.ID)
	}
}

func TestApply_TagsUseOrSemantics(t *testing.T) {
	articles := []*model.Article{
		article("a1", "2024-03-01", "react"),
		article("a2", "2024-02-01", "vue"),
		article("a3", "2024-01-01", "react", "vue"),
	}
	got := Apply(articles, Filter{Tags: []string{"react"}})
	assert.Equal(t, []string{"a1", "a3"}, ids(got))

	got = Apply(articles, Filter{Tags: []string{"React", "svelte"}})
	assert.Equal(t, []string{"a1", "a3"}, ids(got))
}

func TestApply_ConstraintsAreAnded(t *testing.T) {
	p := portfolio()

	got := Apply(p, Filter{Technologies: []string{"react", "python"}})
	assert.Equal(t, []string{"tasks", "bias"}, ids(got))

	got = Apply(p, Filter{
		Technologies: []string{"react", "python"},
		Statuses:     []string{string(model.StatusMaintenance)},
	})
	assert.Equal(t, []string{"bias"}, ids(got))

	got = Apply(p, Filter{FeaturedOnly: true})
	assert.Equal(t, []string{"docs"}, ids(got))

	got = Apply(p, Filter{Categories: []string{"web-app", "mobile-app"}})
	assert.Equal(t, []string{"tasks", "fit"}, ids(got))
}

func TestMatches_SearchCoversAllTextFields(t *testing.T) {
	p := portfolio()

	assert.Equal(t, []string{"tasks"}, ids(Apply(p, Filter{Search: "palace corp"})))
	assert.Equal(t, []string{"bias"}, ids(Apply(p, Filter{Search: "LEAD"})))
	assert.Equal(t, []string{"docs"}, ids(Apply(p, Filter{Search: "mdx"})))
	assert.Equal(t, []string{"bias"}, ids(Apply(p, Filter{Search: "dashboard"})))
	assert.Empty(t, Apply(p, Filter{Search: "kubernetes"}))
}

func TestMatches_SearchDoesNotSpanFields(t *testing.T) {
	p := &model.Project{ID: "x", Title: "Go", Description: "Lang"}
	assert.False(t, Matches(p, Filter{Search: "go lang"}))
	assert.False(t, Matches(p, Filter{Search: "golang"}))
	assert.True(t, Matches(p, Filter{Search: "  go "}))
}

func TestMatches_StatusNeverMatchesArticles(t *testing.T) {
	a := article("a", "2024-01-01")
	assert.False(t, Matches(a, Filter{Statuses: []string{"completed"}}))
}

func TestFilter_ActiveCount(t *testing.T) {
	f := Filter{
		Categories:   []string{"api"},
		Technologies: []string{"Go", "Rust"},
		FeaturedOnly: true,
		Search:       "cli",
	}
	assert.Equal(t, 5, f.ActiveCount())
	assert.Equal(t, 4, f.WithoutSearch().ActiveCount())
	assert.True(t, Filter{Search: "   "}.IsEmpty())
}
