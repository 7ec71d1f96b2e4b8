package model

import (
	"strings"
	"time"
)

type ArticleCategory string

const (
	CategoryBlog      ArticleCategory = "blog"
	CategoryTutorial  ArticleCategory = "tutorial"
	CategoryGuide     ArticleCategory = "guide"
	CategoryCaseStudy ArticleCategory = "case-study"
	CategoryOpinion   ArticleCategory = "opinion"
	CategoryNews      ArticleCategory = "news"
)

// ArticleCategories lists every accepted article category.
var ArticleCategories = []ArticleCategory{
	CategoryBlog,
	CategoryTutorial,
	CategoryGuide,
	CategoryCaseStudy,
	CategoryOpinion,
	CategoryNews,
}

// ParseArticleCategory matches s case-insensitively against ArticleCategories.
func ParseArticleCategory(s string) (ArticleCategory, bool) {
	s = strings.TrimSpace(s)
	for _, c := range ArticleCategories {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

// ReadingTime is computed once when an article is loaded.
type ReadingTime struct {
	Minutes int    `json:"minutes"`
	Words   int    `json:"words"`
	Text    string `json:"text"`
}

type SocialLink struct {
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
}

type Author struct {
	Name   string       `json:"name" yaml:"name"`
	Avatar string       `json:"avatar,omitempty" yaml:"avatar"`
	Bio    string       `json:"bio,omitempty" yaml:"bio"`
	Social []SocialLink `json:"social,omitempty" yaml:"social"`
}

// Article is a blog post read from a front-matter file.
type Article struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Body        string          `json:"body,omitempty"`
	Category    ArticleCategory `json:"category"`
	Tags        []string        `json:"tags"`
	Featured    bool            `json:"featured"`
	PublishedAt time.Time       `json:"published_at"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
	Author      *Author         `json:"author,omitempty"`
	ReadingTime ReadingTime     `json:"reading_time"`
	Source      string          `json:"-"`
}

func (a *Article) RecordID() string { return a.ID }

func (a *Article) Kind() Kind { return KindArticle }

func (a *Article) SourceName() string { return a.Source }

// Fields maps the body onto the long description slot so full-text
// matching and scoring reach it.
func (a *Article) Fields() Fields {
	return Fields{
		Title:           a.Title,
		Description:     a.Description,
		LongDescription: a.Body,
		Category:        string(a.Category),
		Tags:            a.Tags,
		Featured:        a.Featured,
		Start:           a.PublishedAt,
		End:             a.UpdatedAt,
	}
}

// Summary returns a copy without the body, for list responses.
func (a *Article) Summary() Article {
	s := *a
	s.Body = ""
	return s
}
