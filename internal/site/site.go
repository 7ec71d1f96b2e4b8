// Package site owns the loaded content and swaps it atomically on reload.
package site

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"folio/internal/catalog"
	"folio/internal/content"
	"folio/internal/fulltext"
	"folio/internal/metrics"
	"folio/internal/model"
	"folio/internal/store"

	"go.uber.org/zap"
)

// retireDelay lets in-flight full-text searches finish on a replaced
// snapshot before its index is closed.
const retireDelay = 30 * time.Second

// Snapshot is one fully built, immutable generation of content.
type Snapshot struct {
	Articles *store.Store[*model.Article]
	Projects *store.Store[*model.Project]
	Fulltext *fulltext.Index
	LoadedAt time.Time
}

type Options struct {
	ArticlesDir string
	CatalogPath string
	PoolSize    int
}

// Build loads both collections and the full-text index. Any failure
// returns an error and no snapshot.
func Build(ctx context.Context, opts Options, logger *zap.Logger) (*Snapshot, error) {
	var loaderOpts []content.Option
	if opts.PoolSize > 0 {
		loaderOpts = append(loaderOpts, content.WithPoolSize(opts.PoolSize))
	}
	rawArticles, err := content.NewLoader(opts.ArticlesDir, logger, loaderOpts...).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load articles: %w", err)
	}
	articles, err := store.New(rawArticles)
	if err != nil {
		return nil, fmt.Errorf("index articles: %w", err)
	}

	rawProjects, err := catalog.Load(opts.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	projects, err := store.New(rawProjects)
	if err != nil {
		return nil, fmt.Errorf("index projects: %w", err)
	}

	ft, err := fulltext.Build(rawArticles)
	if err != nil {
		return nil, fmt.Errorf("build full-text index: %w", err)
	}

	return &Snapshot{
		Articles: articles,
		Projects: projects,
		Fulltext: ft,
		LoadedAt: time.Now(),
	}, nil
}

// Site serves the current snapshot to readers without locking.
type Site struct {
	opts    Options
	logger  *zap.Logger
	metrics *metrics.Metrics

	current atomic.Pointer[Snapshot]
	reload  sync.Mutex
}

// Open builds the first snapshot. The site is unusable if it fails.
func Open(ctx context.Context, opts Options, logger *zap.Logger, m *metrics.Metrics) (*Site, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Site{opts: opts, logger: logger, metrics: m}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Current returns the snapshot in effect. It never returns nil once Open
// has succeeded.
func (s *Site) Current() *Snapshot {
	return s.current.Load()
}

// Reload builds a new snapshot and replaces the current one only if the
// build succeeded. Concurrent reloads are serialized.
func (s *Site) Reload(ctx context.Context) error {
	s.reload.Lock()
	defer s.reload.Unlock()

	start := time.Now()
	snap, err := Build(ctx, s.opts, s.logger)
	if err != nil {
		s.metrics.ObserveReload(err, 0, 0)
		s.logger.Error("Reload failed, keeping previous content", zap.Error(err))
		return err
	}

	old := s.current.Swap(snap)
	s.metrics.ObserveReload(nil, snap.Articles.Len(), snap.Projects.Len())
	s.logger.Info("Content loaded",
		zap.Int("articles", snap.Articles.Len()),
		zap.Int("projects", snap.Projects.Len()),
		zap.Duration("took", time.Since(start)))

	if old != nil {
		time.AfterFunc(retireDelay, func() {
			if err := old.Fulltext.Close(); err != nil {
				s.logger.Warn("Closing retired index failed", zap.Error(err))
			}
		})
	}
	return nil
}

// Close releases the current snapshot's index.
func (s *Site) Close() error {
	if snap := s.current.Load(); snap != nil {
		return snap.Fulltext.Close()
	}
	return nil
}
