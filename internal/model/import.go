package model

import (
	"time"

	"github.com/google/uuid"
)

type ImportStatus string

const (
	ImportPending ImportStatus = "pending"
	ImportDone    ImportStatus = "imported"
	ImportFailed  ImportStatus = "failed"
)

// ImportJob tracks a web page queued for conversion into an article draft.
type ImportJob struct {
	ID           uuid.UUID       `json:"id"`
	URL          string          `json:"url"`
	Category     ArticleCategory `json:"category"`
	Status       ImportStatus    `json:"status"`
	ArticleID    string          `json:"article_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
	ErrorMessage string          `json:"error_message,omitempty"`
}

// NewImportJob creates a pending job for rawURL.
func NewImportJob(rawURL string, category ArticleCategory) ImportJob {
	return ImportJob{
		ID:        uuid.New(),
		URL:       rawURL,
		Category:  category,
		Status:    ImportPending,
		CreatedAt: time.Now(),
	}
}
