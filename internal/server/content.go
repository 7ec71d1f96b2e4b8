package server

import (
	"net/http"
	"strings"
	"time"

	"folio/internal/metrics"
	"folio/internal/model"
	"folio/internal/query"
	"folio/internal/store"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	defaultRelatedLimit  = 3
	defaultFulltextLimit = 10
)

type listResponse[T any] struct {
	Items         []T `json:"items"`
	Total         int `json:"total"`
	ActiveFilters int `json:"active_filters"`
}

func newList[T any](items []T, f query.Filter) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Items: items, Total: len(items), ActiveFilters: f.ActiveCount()}
}

// runQuery applies the request's filter and sort to records.
func runQuery[T model.Record](r *http.Request, records []T) ([]T, query.Filter, error) {
	f, err := filterFromRequest(r)
	if err != nil {
		return nil, f, err
	}
	spec, err := sortFromRequest(r)
	if err != nil {
		return nil, f, err
	}
	return query.Run(records, f, spec), f, nil
}

// related ranks the records sharing most with the {id} record and counts
// the query under that record's kind.
func related[T model.Record](r *http.Request, st *store.Store[T], m *metrics.Metrics) ([]T, error) {
	ref, err := st.Get(mux.Vars(r)["id"])
	if err != nil {
		return nil, err
	}
	limit, err := intParam(r, "limit", defaultRelatedLimit)
	if err != nil {
		return nil, err
	}
	items := query.Related(st.All(), ref, limit)
	m.ObserveQuery(string(ref.Kind()), "related", len(items))
	return items, nil
}

// rememberSearch stores a non-blank term in the search history. Failures
// only cost the history entry.
func (s *Server) rememberSearch(r *http.Request, term string) {
	if s.tracker == nil || strings.TrimSpace(term) == "" {
		return
	}
	if err := s.tracker.AddSearch(r.Context(), term); err != nil {
		s.logger.Warn("Failed to record search", zap.Error(err))
	}
}

func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	items, f, err := runQuery(r, s.content.Current().Articles.All())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.metrics.ObserveQuery("article", "list", len(items))
	s.writeJSON(w, http.StatusOK, newList(summaries(items), f))
}

func (s *Server) handleSearchArticles(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	items := query.SearchRanked(s.content.Current().Articles.All(), term)
	s.rememberSearch(r, term)
	s.metrics.ObserveQuery("article", "search", len(items))
	s.writeJSON(w, http.StatusOK, newList(summaries(items), query.Filter{Search: term}))
}

func (s *Server) handleFulltext(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	if term == "" {
		s.writeError(w, r, badRequest("q is required"))
		return
	}
	limit, err := intParam(r, "limit", defaultFulltextLimit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if limit == 0 {
		s.writeError(w, r, badRequest("limit must be at least 1"))
		return
	}
	hits, err := s.content.Current().Fulltext.Search(term, limit)
	if err != nil {
		s.writeError(w, r, badRequest("%v", err))
		return
	}
	s.rememberSearch(r, term)
	s.metrics.ObserveQuery("article", "fulltext", len(hits))
	s.writeJSON(w, http.StatusOK, map[string]any{"hits": hits, "total": len(hits)})
}

func (s *Server) handleArticleStats(w http.ResponseWriter, r *http.Request) {
	items, _, err := runQuery(r, s.content.Current().Articles.All())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, query.Aggregate(items))
}

func (s *Server) handleArticleFacets(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, query.CollectFacets(s.content.Current().Articles.All()))
}

func (s *Server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	a, err := s.content.Current().Articles.Get(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleRelatedArticles(w http.ResponseWriter, r *http.Request) {
	items, err := related(r, s.content.Current().Articles, s.metrics)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newList(summaries(items), query.Filter{}))
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	items, f, err := runQuery(r, s.content.Current().Projects.All())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.metrics.ObserveQuery("project", "list", len(items))
	s.writeJSON(w, http.StatusOK, newList(items, f))
}

func (s *Server) handleSearchProjects(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	items := query.SearchRanked(s.content.Current().Projects.All(), term)
	s.rememberSearch(r, term)
	s.metrics.ObserveQuery("project", "search", len(items))
	s.writeJSON(w, http.StatusOK, newList(items, query.Filter{Search: term}))
}

func (s *Server) handleProjectSuggestions(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", query.DefaultSuggestionLimit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := query.Suggestions(s.content.Current().Projects.All(), r.URL.Query().Get("q"), limit)
	if out == nil {
		out = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"suggestions": out})
}

func (s *Server) handleProjectStats(w http.ResponseWriter, r *http.Request) {
	items, _, err := runQuery(r, s.content.Current().Projects.All())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, query.Aggregate(items))
}

func (s *Server) handleProjectFacets(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, query.CollectFacets(s.content.Current().Projects.All()))
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	p, err := s.content.Current().Projects.Get(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleRelatedProjects(w http.ResponseWriter, r *http.Request) {
	items, err := related(r, s.content.Current().Projects, s.metrics)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newList(items, query.Filter{}))
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := s.content.Reload(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	snap := s.content.Current()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"articles":  snap.Articles.Len(),
		"projects":  snap.Projects.Len(),
		"loaded_at": snap.LoadedAt.Format(time.RFC3339),
	})
}
