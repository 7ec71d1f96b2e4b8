package fulltext

import (
	"testing"

	"folio/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_BuildAndSearch(t *testing.T) {
	articles := []*model.Article{
		{ID: "k8s", Title: "Operators", Body: "Writing kubernetes operators in Go", Category: model.CategoryTutorial},
		{ID: "css", Title: "Grid layouts", Body: "Modern CSS grid tricks", Category: model.CategoryBlog, Tags: []string{"css"}},
	}
	idx, err := Build(articles)
	require.NoError(t, err)
	defer idx.Close()

	n, err := idx.Count()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), n)

	hits, err := idx.Search("kubernetes", 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "k8s", hits[0].ID)
	assert.Equal(t, "Operators", hits[0].Title)
	assert.NotEmpty(t, hits[0].Fragments["Body"])

	hits, err = idx.Search("zzzyzzz", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestIndex_Empty(t *testing.T) {
	idx, err := Build(nil)
	require.NoError(t, err)
	defer idx.Close()

	hits, err := idx.Search("anything", 0)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
