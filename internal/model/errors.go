package model

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord is matched by every *MalformedRecordError.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrDuplicateID is matched by every *DuplicateIDError.
	ErrDuplicateID = errors.New("duplicate record id")

	ErrMissingField = errors.New("missing required field")
	ErrInvalidEnum  = errors.New("value not in allowed set")
	ErrInvalidTime  = errors.New("unparsable timestamp")
)

// MalformedRecordError reports a source entry that failed validation.
type MalformedRecordError struct {
	Source string
	Field  string
	Err    error
}

func (e *MalformedRecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed record %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("malformed record %s: field %q: %v", e.Source, e.Field, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

func (e *MalformedRecordError) Is(target error) bool { return target == ErrMalformedRecord }

// DuplicateIDError reports two source entries sharing one id.
type DuplicateIDError struct {
	ID     string
	First  string
	Second string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate id %q in %s and %s", e.ID, e.First, e.Second)
}

func (e *DuplicateIDError) Is(target error) bool { return target == ErrDuplicateID }
