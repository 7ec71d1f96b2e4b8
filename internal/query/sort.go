package query

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"folio/internal/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortField string

const (
	SortTitle    SortField = "title"
	SortStart    SortField = "startDate"
	SortEnd      SortField = "endDate"
	SortFeatured SortField = "featured"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

var ErrInvalidSort = errors.New("invalid sort")

// DefaultLocale collates titles when a SortSpec names no locale. Under it
// "ñ" is a letter of its own, sorting after "n".
var DefaultLocale = language.Spanish

// SortSpec selects an ordering. Locale drives title collation; the zero
// tag means DefaultLocale.
type SortSpec struct {
	Field     SortField    `json:"field"`
	Direction Direction    `json:"direction"`
	Locale    language.Tag `json:"-"`
}

// DefaultSort is newest first. Loaded articles are stored in this order.
var DefaultSort = SortSpec{Field: SortStart, Direction: Desc}

var fieldAliases = map[string]SortField{
	"title":       SortTitle,
	"startdate":   SortStart,
	"start":       SortStart,
	"publishedat": SortStart,
	"published":   SortStart,
	"enddate":     SortEnd,
	"end":         SortEnd,
	"updatedat":   SortEnd,
	"updated":     SortEnd,
	"featured":    SortFeatured,
}

// ParseSort reads "field" or "field:direction". Direction defaults to asc.
func ParseSort(s string) (SortSpec, error) {
	name, dir, _ := strings.Cut(strings.TrimSpace(s), ":")
	field, ok := fieldAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return SortSpec{}, fmt.Errorf("%w: unknown field %q", ErrInvalidSort, name)
	}
	spec := SortSpec{Field: field, Direction: Asc}
	switch strings.ToLower(strings.TrimSpace(dir)) {
	case "", "asc":
	case "desc":
		spec.Direction = Desc
	default:
		return SortSpec{}, fmt.Errorf("%w: unknown direction %q", ErrInvalidSort, dir)
	}
	return spec, nil
}

func (s SortSpec) String() string {
	return string(s.Field) + ":" + string(s.Direction)
}

// Sort returns a new slice ordered by spec. The sort is stable and desc
// negates the comparator rather than reversing the result, so records
// that compare equal keep their input order in both directions.
func Sort[T model.Record](records []T, spec SortSpec) []T {
	return sortAt(records, spec, time.Now())
}

func sortAt[T model.Record](records []T, spec SortSpec, now time.Time) []T {
	out := slices.Clone(records)
	cmp := comparator(spec, now)
	sign := 1
	if spec.Direction == Desc {
		sign = -1
	}
	slices.SortStableFunc(out, func(a, b T) int {
		primary, tie := cmp(a.Fields(), b.Fields())
		if primary != 0 {
			return sign * primary
		}
		return tie
	})
	return out
}

// comparator returns the base (ascending) comparison and a direction
// independent tie-break.
func comparator(spec SortSpec, now time.Time) func(a, b model.Fields) (int, int) {
	switch spec.Field {
	case SortTitle:
		loc := spec.Locale
		if loc == language.Und {
			loc = DefaultLocale
		}
		col := collate.New(loc, collate.IgnoreCase, collate.IgnoreDiacritics)
		return func(a, b model.Fields) (int, int) {
			return col.CompareString(a.Title, b.Title), 0
		}
	case SortStart:
		return func(a, b model.Fields) (int, int) {
			return a.Start.Compare(b.Start), 0
		}
	case SortEnd:
		end := func(f model.Fields) time.Time {
			if f.End == nil {
				return now
			}
			return *f.End
		}
		return func(a, b model.Fields) (int, int) {
			return end(a).Compare(end(b)), 0
		}
	case SortFeatured:
		return func(a, b model.Fields) (int, int) {
			return boolInt(a.Featured) - boolInt(b.Featured), b.Start.Compare(a.Start)
		}
	default:
		return func(model.Fields, model.Fields) (int, int) { return 0, 0 }
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
