// Package server exposes the content index and its collaborators as a
// JSON API.
package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"folio/internal/metrics"
	"folio/internal/model"
	"folio/internal/site"
	"folio/internal/tracking"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Content is the snapshot source the handlers read from. *site.Site
// satisfies it.
type Content interface {
	Current() *site.Snapshot
	Reload(ctx context.Context) error
}

// Tracker bundles the side-effecting collaborators. *tracking.HybridStore
// satisfies it.
type Tracker interface {
	tracking.DownloadCounter
	tracking.SearchHistory
	tracking.ImportQueue
}

type Server struct {
	content        Content
	tracker        Tracker
	logger         *zap.Logger
	metrics        *metrics.Metrics
	importCategory model.ArticleCategory
	router         *mux.Router
	server         *http.Server
}

type Option func(*Server)

// WithTracker enables search history, CV download and import routes.
// Without it those routes answer 503.
func WithTracker(t Tracker) Option {
	return func(s *Server) { s.tracker = t }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithImportCategory sets the category used when an import request does
// not name one.
func WithImportCategory(c model.ArticleCategory) Option {
	return func(s *Server) { s.importCategory = c }
}

func NewServer(content Content, logger *zap.Logger, opts ...Option) *Server {
	s := &Server{
		content:        content,
		logger:         logger,
		importCategory: model.CategoryBlog,
		router:         mux.NewRouter(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(s.instrument)

	api := s.router.PathPrefix("/api").Subrouter()

	// Articles. Fixed paths are registered before {id}.
	api.HandleFunc("/articles", s.handleListArticles).Methods("GET")
	api.HandleFunc("/articles/search", s.handleSearchArticles).Methods("GET")
	api.HandleFunc("/articles/fulltext", s.handleFulltext).Methods("GET")
	api.HandleFunc("/articles/stats", s.handleArticleStats).Methods("GET")
	api.HandleFunc("/articles/facets", s.handleArticleFacets).Methods("GET")
	api.HandleFunc("/articles/{id}", s.handleGetArticle).Methods("GET")
	api.HandleFunc("/articles/{id}/related", s.handleRelatedArticles).Methods("GET")

	// Projects
	api.HandleFunc("/projects", s.handleListProjects).Methods("GET")
	api.HandleFunc("/projects/search", s.handleSearchProjects).Methods("GET")
	api.HandleFunc("/projects/suggestions", s.handleProjectSuggestions).Methods("GET")
	api.HandleFunc("/projects/stats", s.handleProjectStats).Methods("GET")
	api.HandleFunc("/projects/facets", s.handleProjectFacets).Methods("GET")
	api.HandleFunc("/projects/{id}", s.handleGetProject).Methods("GET")
	api.HandleFunc("/projects/{id}/related", s.handleRelatedProjects).Methods("GET")

	// Collaborators
	api.HandleFunc("/search-history", s.handleListHistory).Methods("GET")
	api.HandleFunc("/search-history", s.handleAddHistory).Methods("POST")
	api.HandleFunc("/search-history", s.handleClearHistory).Methods("DELETE")
	api.HandleFunc("/cv/downloads", s.handleDownloadReport).Methods("GET")
	api.HandleFunc("/cv/{format}/downloads", s.handleRecordDownload).Methods("POST")
	api.HandleFunc("/imports", s.handleCreateImport).Methods("POST")
	api.HandleFunc("/imports/{id}", s.handleGetImport).Methods("GET")

	api.HandleFunc("/reload", s.handleReload).Methods("POST")

	if s.metrics != nil {
		s.router.Handle("/metrics", s.metrics.Handler()).Methods("GET")
	}
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start launches the HTTP server
func (s *Server) Start(addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	s.logger.Info("Web server listening", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument records request counts and latency per route template.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.metrics == nil {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		s.metrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(rec.code)).Inc()
		s.metrics.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
