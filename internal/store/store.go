package store

import (
	"errors"
	"fmt"

	"folio/internal/model"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Store is an immutable collection of one record kind, kept in load order
// and indexed by id.
type Store[T model.Record] struct {
	records []T
	byID    map[string]int
}

type sourced interface {
	SourceName() string
}

// New indexes records. The slice is owned by the store afterwards and must
// not be modified by the caller.
func New[T model.Record](records []T) (*Store[T], error) {
	byID := make(map[string]int, len(records))
	for i, r := range records {
		id := r.RecordID()
		if prev, ok := byID[id]; ok {
			return nil, &model.DuplicateIDError{
				ID:     id,
				First:  sourceOf(records[prev], prev),
				Second: sourceOf(r, i),
			}
		}
		byID[id] = i
	}
	if records == nil {
		records = []T{}
	}
	return &Store[T]{records: records, byID: byID}, nil
}

func sourceOf(r model.Record, pos int) string {
	if s, ok := r.(sourced); ok && s.SourceName() != "" {
		return s.SourceName()
	}
	return fmt.Sprintf("entry #%d", pos)
}

// Get looks a record up by id.
func (s *Store[T]) Get(id string) (T, error) {
	i, ok := s.byID[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.records[i], nil
}

// All returns the records in store order. The slice is shared; callers
// must treat it as read-only.
func (s *Store[T]) All() []T {
	return s.records
}

func (s *Store[T]) Len() int {
	return len(s.records)
}
