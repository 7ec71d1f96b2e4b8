package worker

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"folio/internal/metrics"
	"folio/internal/model"
	"folio/internal/tracking"

	"github.com/go-shiori/go-readability"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Scraper defines the interface for downloading web pages.
// This allows us to mock the "Download" step in tests.
type Scraper interface {
	Scrape(url string, timeout time.Duration) (*readability.Article, error)
}

// DefaultScraper is the real implementation that uses the internet
type DefaultScraper struct{}

func (s *DefaultScraper) Scrape(url string, timeout time.Duration) (*readability.Article, error) {
	art, err := readability.FromURL(url, timeout)
	return &art, err
}

// Worker turns queued import jobs into article files and asks the site to
// reload once a file is written.
type Worker struct {
	queue      tracking.ImportQueue
	logger     *zap.Logger
	scraper    Scraper
	contentDir string
	onImported func(ctx context.Context) error
	metrics    *metrics.Metrics
	timeout    time.Duration
}

// NewWorker initializes the worker with the DefaultScraper. onImported may
// be nil.
func NewWorker(queue tracking.ImportQueue, contentDir string, onImported func(ctx context.Context) error, logger *zap.Logger, m *metrics.Metrics) *Worker {
	return &Worker{
		queue:      queue,
		logger:     logger,
		scraper:    &DefaultScraper{},
		contentDir: contentDir,
		onImported: onImported,
		metrics:    m,
		timeout:    30 * time.Second,
	}
}

// Start runs the worker loop
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Import worker started. Waiting for jobs...")

	for {
		// Wait for job (Blocking call to Redis)
		id, err := w.queue.PopQueue(ctx)
		if err != nil {
			if ctx.Err() != nil {
				w.logger.Info("Import worker shutting down")
				return
			}
			w.logger.Error("Queue error", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		w.processJob(ctx, id)
	}
}

func (w *Worker) processJob(ctx context.Context, id uuid.UUID) {
	logger := w.logger.With(zap.String("job_id", id.String()))
	logger.Info("Processing started")

	job, err := w.queue.GetJob(ctx, id)
	if err != nil {
		logger.Error("Job failed: import job not found", zap.Error(err))
		return
	}

	logger.Info("Downloading", zap.String("url", job.URL))
	page, err := w.scraper.Scrape(job.URL, w.timeout)
	if err != nil {
		logger.Error("Scraping failed", zap.Error(err))
		w.failJob(ctx, job, err.Error())
		return
	}

	category := job.Category
	if category == "" {
		category = model.CategoryBlog
	}
	title := strings.TrimSpace(page.Title)
	if title == "" {
		title = TitleFromURL(job.URL)
	}
	articleID, err := WriteDraft(w.contentDir, Draft{
		Title:       title,
		Description: strings.TrimSpace(page.Excerpt),
		Byline:      strings.TrimSpace(page.Byline),
		Body:        page.TextContent,
		Category:    category,
		SourceURL:   job.URL,
		PublishedAt: time.Now(),
	})
	if err != nil {
		logger.Error("Writing draft failed", zap.Error(err))
		w.failJob(ctx, job, err.Error())
		return
	}

	// A draft the site cannot reload with is taken back out, so it never
	// blocks later loads.
	if w.onImported != nil {
		if err := w.onImported(ctx); err != nil {
			logger.Error("Reload after import failed", zap.Error(err))
			if rmErr := os.Remove(filepath.Join(w.contentDir, articleID+".md")); rmErr != nil {
				logger.Error("Removing draft failed", zap.Error(rmErr))
			}
			w.failJob(ctx, job, "reload after import: "+err.Error())
			return
		}
	}
	w.count("ok")

	now := time.Now()
	job.Status = model.ImportDone
	job.ArticleID = articleID
	job.CompletedAt = &now
	if err := w.queue.SaveJob(ctx, job); err != nil {
		logger.Error("Failed to save result", zap.Error(err))
	}
	logger.Info("Import complete", zap.String("article_id", articleID))
}

func (w *Worker) failJob(ctx context.Context, job *model.ImportJob, msg string) {
	w.count("error")
	job.Status = model.ImportFailed
	job.ErrorMessage = msg
	if err := w.queue.SaveJob(ctx, job); err != nil {
		w.logger.Error("Failed to save failed job", zap.Error(err))
	}
}

func (w *Worker) count(result string) {
	if w.metrics != nil {
		w.metrics.ImportsTotal.WithLabelValues(result).Inc()
	}
}
