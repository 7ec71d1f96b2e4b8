// Package enrich turns raw source entries into validated, immutable records
// and derives their computed fields. Every function here is pure.
package enrich

import (
	"fmt"
	"strings"
	"time"

	"folio/internal/model"
)

// WordsPerMinute is the editorial reading speed used for reading time.
const WordsPerMinute = 200

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// RawArticle is the front matter block of an article file.
type RawArticle struct {
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Category    string        `yaml:"category"`
	Tags        []string      `yaml:"tags"`
	Featured    bool          `yaml:"featured"`
	PublishedAt string        `yaml:"publishedAt"`
	UpdatedAt   string        `yaml:"updatedAt"`
	Author      *model.Author `yaml:"author"`
}

// RawProject is a catalog entry before validation.
type RawProject struct {
	ID              string   `yaml:"id"`
	Title           string   `yaml:"title"`
	Description     string   `yaml:"description"`
	LongDescription string   `yaml:"longDescription"`
	Category        string   `yaml:"category"`
	Technologies    []string `yaml:"technologies"`
	Tags            []string `yaml:"tags"`
	Status          string   `yaml:"status"`
	Featured        bool     `yaml:"featured"`
	StartDate       string   `yaml:"startDate"`
	EndDate         string   `yaml:"endDate"`
	Client          string   `yaml:"client"`
	Role            string   `yaml:"role"`
	URL             string   `yaml:"url"`
	Repository      string   `yaml:"github"`
	Image           string   `yaml:"image"`
}

// ReadingTime counts whitespace-delimited words and rounds minutes up.
func ReadingTime(body string) model.ReadingTime {
	words := len(strings.Fields(body))
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	return model.ReadingTime{
		Minutes: minutes,
		Words:   words,
		Text:    fmt.Sprintf("%d min read", minutes),
	}
}

// Tags trims entries, drops blanks and removes case-insensitive duplicates.
// The first spelling of a tag is kept.
func Tags(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

// Article validates raw front matter and builds the enriched article.
func Article(source, id string, raw RawArticle, body string) (*model.Article, error) {
	malformed := func(field string, err error) error {
		return &model.MalformedRecordError{Source: source, Field: field, Err: err}
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, malformed("id", model.ErrMissingField)
	}
	title := strings.TrimSpace(raw.Title)
	if title == "" {
		return nil, malformed("title", model.ErrMissingField)
	}
	if strings.TrimSpace(raw.Category) == "" {
		return nil, malformed("category", model.ErrMissingField)
	}
	category, ok := model.ParseArticleCategory(raw.Category)
	if !ok {
		return nil, malformed("category", fmt.Errorf("%w: %q", model.ErrInvalidEnum, raw.Category))
	}
	published, err := requiredTime(raw.PublishedAt)
	if err != nil {
		return nil, malformed("publishedAt", err)
	}
	updated, err := optionalTime(raw.UpdatedAt)
	if err != nil {
		return nil, malformed("updatedAt", err)
	}

	return &model.Article{
		ID:          id,
		Title:       title,
		Description: strings.TrimSpace(raw.Description),
		Body:        body,
		Category:    category,
		Tags:        Tags(raw.Tags),
		Featured:    raw.Featured,
		PublishedAt: published,
		UpdatedAt:   updated,
		Author:      raw.Author,
		ReadingTime: ReadingTime(body),
		Source:      source,
	}, nil
}

// Project validates a raw catalog entry.
func Project(source string, raw RawProject) (*model.Project, error) {
	malformed := func(field string, err error) error {
		return &model.MalformedRecordError{Source: source, Field: field, Err: err}
	}

	id := strings.TrimSpace(raw.ID)
	if id == "" {
		return nil, malformed("id", model.ErrMissingField)
	}
	title := strings.TrimSpace(raw.Title)
	if title == "" {
		return nil, malformed("title", model.ErrMissingField)
	}
	category, ok := model.ParseProjectCategory(raw.Category)
	if !ok {
		if strings.TrimSpace(raw.Category) == "" {
			return nil, malformed("category", model.ErrMissingField)
		}
		return nil, malformed("category", fmt.Errorf("%w: %q", model.ErrInvalidEnum, raw.Category))
	}
	status, ok := model.ParseProjectStatus(raw.Status)
	if !ok {
		if strings.TrimSpace(raw.Status) == "" {
			return nil, malformed("status", model.ErrMissingField)
		}
		return nil, malformed("status", fmt.Errorf("%w: %q", model.ErrInvalidEnum, raw.Status))
	}
	start, err := requiredTime(raw.StartDate)
	if err != nil {
		return nil, malformed("startDate", err)
	}
	end, err := optionalTime(raw.EndDate)
	if err != nil {
		return nil, malformed("endDate", err)
	}

	return &model.Project{
		ID:              id,
		Title:           title,
		Description:     strings.TrimSpace(raw.Description),
		LongDescription: strings.TrimSpace(raw.LongDescription),
		Category:        category,
		Technologies:    Tags(raw.Technologies),
		Tags:            Tags(raw.Tags),
		Status:          status,
		Featured:        raw.Featured,
		StartDate:       start,
		EndDate:         end,
		Client:          strings.TrimSpace(raw.Client),
		Role:            strings.TrimSpace(raw.Role),
		URL:             raw.URL,
		Repository:      raw.Repository,
		Image:           raw.Image,
		Source:          source,
	}, nil
}

func requiredTime(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, model.ErrMissingField
	}
	return parseTime(s)
}

func optionalTime(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := parseTime(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", model.ErrInvalidTime, s)
}
