package query

import (
	"testing"

	"folio/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestRun_FilterOnlyKeepsStoreOrder(t *testing.T) {
	articles := []*model.Article{
		article("a1", "2024-03-01", "react"),
		article("a2", "2024-02-01", "vue"),
		article("a3", "2024-01-01", "react", "vue"),
	}
	got := Run(articles, Filter{Tags: []string{"react"}}, nil)
	assert.Equal(t, []string{"a1", "a3"}, ids(got))
}

func TestRun_SearchThenFilterKeepsRelevanceOrder(t *testing.T) {
	p := portfolio()
	got := Run(p, Filter{Search: "react"}, nil)
	assert.Equal(t, []string{"fit", "tasks"}, ids(got))

	got = Run(p, Filter{Search: "react", Statuses: []string{"in-progress"}}, nil)
	assert.Equal(t, []string{"tasks"}, ids(got))
}

func TestRun_ExplicitSortOverridesRelevance(t *testing.T) {
	p := portfolio()
	sort := SortSpec{Field: SortStart, Direction: Desc}
	got := Run(p, Filter{Search: "react"}, &sort)
	assert.Equal(t, []string{"tasks", "fit"}, ids(got))
}

func TestRun_Deterministic(t *testing.T) {
	p := portfolio()
	sort := DefaultSort
	f := Filter{Search: "a", Categories: []string{"web-app", "dashboard", "documentation"}}
	assert.Equal(t, ids(Run(p, f, &sort)), ids(Run(p, f, &sort)))
	assert.Equal(t, ids(Run(p, f, nil)), ids(Run(p, f, nil)))
}

func TestRun_EmptyStore(t *testing.T) {
	assert.Empty(t, Run([]*model.Project{}, Filter{Search: "x"}, &DefaultSort))
	assert.Empty(t, Run[*model.Article](nil, Filter{}, nil))
}

func TestAggregate(t *testing.T) {
	st := Aggregate(portfolio())
	assert.Equal(t, 4, st.Total)
	assert.Equal(t, 1, st.FeaturedCount)
	assert.Equal(t, 1, st.ByCategory["dashboard"])
	assert.Equal(t, 1, st.ByStatus["archived"])
	assert.Equal(t, 1, st.ByTechnology["React"])
	assert.Equal(t, 1, st.ByTag["docs"])

	empty := Aggregate([]*model.Article{})
	assert.Zero(t, empty.Total)
	assert.NotNil(t, empty.ByCategory)
}

func TestSuggestions(t *testing.T) {
	p := portfolio()
	got := Suggestions(p, "react", 0)
	assert.Equal(t, []string{"React Native"}, got)

	got = Suggestions(p, "a", 3)
	assert.Len(t, got, 3)
	assert.Equal(t, "Documentation Hub", got[0])

	assert.Empty(t, Suggestions(p, "  ", 5))
}

func TestCollectFacets(t *testing.T) {
	f := CollectFacets(portfolio())
	assert.Equal(t, []string{"dashboard", "documentation", "mobile-app", "web-app"}, f.Categories)
	assert.Contains(t, f.Technologies, "D3.js")
	assert.Equal(t, []string{"docs", "realtime", "search"}, f.Tags)
}

func TestRun_EmptyFilterReturnsCopy(t *testing.T) {
	p := portfolio()
	got := Run(p, Filter{}, nil)
	assert.Equal(t, ids(p), ids(got))

	got[0] = got[len(got)-1]
	assert.NotEqual(t, ids(p), ids(got), "input must not share the result's backing array")
	assert.NotNil(t, Run([]*model.Project{}, Filter{}, nil))
}
