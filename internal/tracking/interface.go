// Package tracking holds the side-effecting collaborators that sit beside
// the pure query engine: CV download counters, recent search history and
// the article import queue.
package tracking

import (
	"context"
	"errors"

	"folio/internal/model"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("import job not found")
	ErrUnknownFormat = errors.New("unknown cv format")
	ErrNoDisk        = errors.New("badgerdb is not initialized")
)

// HistoryLimit is how many recent search terms are remembered.
const HistoryLimit = 5

type DownloadCounter interface {
	RecordDownload(ctx context.Context, format model.CVFormat) (int64, error)
	Downloads(ctx context.Context) (map[model.CVFormat]int64, error)
}

type SearchHistory interface {
	AddSearch(ctx context.Context, term string) error
	RecentSearches(ctx context.Context) ([]string, error)
	ClearSearches(ctx context.Context) error
}

type ImportQueue interface {
	Enqueue(ctx context.Context, job *model.ImportJob) error
	SaveJob(ctx context.Context, job *model.ImportJob) error
	GetJob(ctx context.Context, id uuid.UUID) (*model.ImportJob, error)
	PopQueue(ctx context.Context) (uuid.UUID, error)
}
