package model

import "time"

// Kind identifies which schema a record follows.
type Kind string

const (
	KindArticle Kind = "article"
	KindProject Kind = "project"
)

// Fields is the uniform view the query engine reads from any record.
// Fields that a kind does not carry are left empty.
type Fields struct {
	Title           string
	Description     string
	LongDescription string
	Category        string
	Tags            []string
	Technologies    []string
	Client          string
	Role            string
	Status          string
	Featured        bool
	Start           time.Time
	End             *time.Time
}

// Record is implemented by *Article and *Project.
type Record interface {
	RecordID() string
	Kind() Kind
	Fields() Fields
}
