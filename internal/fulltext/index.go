// Package fulltext keeps an in-memory bleve index over article bodies for
// phrase, boolean and fuzzy queries the substring engine cannot express.
package fulltext

import (
	"fmt"

	"folio/internal/model"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
)

// Index wraps a memory-only bleve index.
type Index struct {
	index bleve.Index
}

// IndexedArticle is the document shape stored in the index.
type IndexedArticle struct {
	ID          string
	Title       string
	Description string
	Body        string
	Category    string
	Tags        []string
}

// Hit is one search result with highlighted fragments.
type Hit struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	Score     float64             `json:"score"`
	Fragments map[string][]string `json:"fragments,omitempty"`
}

func buildMapping() mapping.IndexMapping {
	text := bleve.NewTextFieldMapping()

	keyword := bleve.NewTextFieldMapping()
	keyword.Analyzer = "keyword"

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("ID", keyword)
	doc.AddFieldMappingsAt("Title", text)
	doc.AddFieldMappingsAt("Description", text)
	doc.AddFieldMappingsAt("Body", text)
	doc.AddFieldMappingsAt("Category", keyword)
	doc.AddFieldMappingsAt("Tags", text)

	m := bleve.NewIndexMapping()
	m.AddDocumentMapping("_default", doc)
	return m
}

// Build indexes every article in one batch.
func Build(articles []*model.Article) (*Index, error) {
	idx, err := bleve.NewMemOnly(buildMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	batch := idx.NewBatch()
	for _, a := range articles {
		doc := IndexedArticle{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Body:        a.Body,
			Category:    string(a.Category),
			Tags:        a.Tags,
		}
		if err := batch.Index(a.ID, doc); err != nil {
			idx.Close()
			return nil, fmt.Errorf("batch index %s: %w", a.ID, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		idx.Close()
		return nil, fmt.Errorf("commit batch: %w", err)
	}
	return &Index{index: idx}, nil
}

// Search runs a query-string query (quotes, +/-, fuzzy ~) and returns at
// most limit hits, best first.
func (i *Index) Search(queryStr string, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = 10
	}
	q := bleve.NewQueryStringQuery(queryStr)
	req := bleve.NewSearchRequestOptions(q, limit, 0, false)
	req.Highlight = bleve.NewHighlightWithStyle("html")
	req.Fields = []string{"Title"}

	res, err := i.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		hit := Hit{ID: h.ID, Score: h.Score, Fragments: h.Fragments}
		if title, ok := h.Fields["Title"].(string); ok {
			hit.Title = title
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

func (i *Index) Count() (uint64, error) {
	return i.index.DocCount()
}

func (i *Index) Close() error {
	return i.index.Close()
}
