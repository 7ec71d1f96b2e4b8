package query

import (
	"testing"

	"folio/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestSort_FeaturedDesc(t *testing.T) {
	a := &model.Project{ID: "A", Featured: true, StartDate: day("2023-01-01")}
	b := &model.Project{ID: "B", Featured: false, StartDate: day("2024-01-01")}

	got := Sort([]*model.Project{a, b}, SortSpec{Field: SortFeatured, Direction: Desc})
	assert.Equal(t, []string{"A", "B"}, ids(got))

	got = Sort([]*model.Project{a, b}, SortSpec{Field: SortFeatured, Direction: Asc})
	assert.Equal(t, []string{"B", "A"}, ids(got))
}

func TestSort_FeaturedTieBreaksOnNewestStart(t *testing.T) {
	older := &model.Project{ID: "older", StartDate: day("2020-01-01")}
	newer := &model.Project{ID: "newer", StartDate: day("2022-01-01")}
	star := &model.Project{ID: "star", Featured: true, StartDate: day("2019-01-01")}

	for _, dir := range []Direction{Asc, Desc} {
		got := Sort([]*model.Project{older, star, newer}, SortSpec{Field: SortFeatured, Direction: dir})
		if dir == Desc {
			assert.Equal(t, []string{"star", "newer", "older"}, ids(got))
		} else {
			assert.Equal(t, []string{"newer", "older", "star"}, ids(got))
		}
	}
}

func TestSort_TiesKeepInputOrderInBothDirections(t *testing.T) {
	same := day("2023-03-03")
	x := &model.Project{ID: "x", Featured: true, StartDate: same}
	y := &model.Project{ID: "y", Featured: true, StartDate: same}
	z := &model.Project{ID: "z", StartDate: day("2024-01-01")}

	asc := Sort([]*model.Project{x, y, z}, SortSpec{Field: SortFeatured, Direction: Asc})
	desc := Sort([]*model.Project{x, y, z}, SortSpec{Field: SortFeatured, Direction: Desc})

	assert.Equal(t, []string{"z", "x", "y"}, ids(asc))
	assert.Equal(t, []string{"x", "y", "z"}, ids(desc))
}

func TestSort_StartDate(t *testing.T) {
	p := portfolio()
	asc := Sort(p, SortSpec{Field: SortStart, Direction: Asc})
	assert.Equal(t, []string{"fit", "bias", "docs", "tasks"}, ids(asc))

	desc := Sort(p, SortSpec{Field: SortStart, Direction: Desc})
	assert.Equal(t, []string{"tasks", "docs", "bias", "fit"}, ids(desc))
}

func TestSort_EndDateTreatsOngoingAsNow(t *testing.T) {
	p := portfolio()
	got := sortAt(p, SortSpec{Field: SortEnd, Direction: Desc}, day("2025-01-01"))
	assert.Equal(t, []string{"tasks", "docs", "bias", "fit"}, ids(got))
}

func TestSort_TitleIgnoresCaseAndAccents(t *testing.T) {
	recs := []*model.Project{
		{ID: "zeta", Title: "zeta"},
		{ID: "abeja", Title: "abeja"},
		{ID: "abaco", Title: "Ábaco"},
		{ID: "beta", Title: "Beta"},
	}
	got := Sort(recs, SortSpec{Field: SortTitle, Direction: Asc, Locale: language.Spanish})
	assert.Equal(t, []string{"abaco", "abeja", "beta", "zeta"}, ids(got))

	got = Sort(recs, SortSpec{Field: SortTitle, Direction: Desc})
	assert.Equal(t, []string{"zeta", "beta", "abeja", "abaco"}, ids(got))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	p := portfolio()
	before := ids(p)
	_ = Sort(p, SortSpec{Field: SortTitle, Direction: Asc})
	assert.Equal(t, before, ids(p))
}

func TestParseSort(t *testing.T) {
	spec, err := ParseSort("publishedAt:desc")
	require.NoError(t, err)
	assert.Equal(t, SortSpec{Field: SortStart, Direction: Desc}, spec)

	spec, err = ParseSort("Title")
	require.NoError(t, err)
	assert.Equal(t, SortSpec{Field: SortTitle, Direction: Asc}, spec)

	_, err = ParseSort("popularity")
	assert.ErrorIs(t, err, ErrInvalidSort)

	_, err = ParseSort("title:sideways")
	assert.ErrorIs(t, err, ErrInvalidSort)
}

func TestSort_TitleDefaultsToSpanishCollation(t *testing.T) {
	recs := []*model.Project{
		{ID: "oso", Title: "Oso"},
		{ID: "nandu", Title: "Ñandú"},
		{ID: "nube", Title: "nube"},
	}
	got := Sort(recs, SortSpec{Field: SortTitle, Direction: Asc})
	assert.Equal(t, []string{"nube", "nandu", "oso"}, ids(got))

	got = Sort(recs, SortSpec{Field: SortTitle, Direction: Asc, Locale: language.English})
	assert.Equal(t, []string{"nandu", "nube", "oso"}, ids(got))
}
