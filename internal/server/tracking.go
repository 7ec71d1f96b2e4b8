package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"folio/internal/model"
	"folio/internal/tracking"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

var errNoTracker = errors.New("tracking store is not configured")

func (s *Server) requireTracker(w http.ResponseWriter, r *http.Request) bool {
	if s.tracker == nil {
		s.writeError(w, r, errNoTracker)
		return false
	}
	return true
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return badRequest("invalid JSON body: %v", err)
	}
	return nil
}

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	if !s.requireTracker(w, r) {
		return
	}
	terms, err := s.tracker.RecentSearches(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if terms == nil {
		terms = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"searches": terms})
}

func (s *Server) handleAddHistory(w http.ResponseWriter, r *http.Request) {
	if !s.requireTracker(w, r) {
		return
	}
	var body struct {
		Term string `json:"term"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	if strings.TrimSpace(body.Term) == "" {
		s.writeError(w, r, badRequest("term is required"))
		return
	}
	if err := s.tracker.AddSearch(r.Context(), body.Term); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if !s.requireTracker(w, r) {
		return
	}
	if err := s.tracker.ClearSearches(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRecordDownload(w http.ResponseWriter, r *http.Request) {
	if !s.requireTracker(w, r) {
		return
	}
	format := model.CVFormat(mux.Vars(r)["format"])
	n, err := s.tracker.RecordDownload(r.Context(), format)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if s.metrics != nil {
		s.metrics.DownloadsTotal.WithLabelValues(string(format)).Inc()
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"format": format, "downloads": n})
}

func (s *Server) handleDownloadReport(w http.ResponseWriter, r *http.Request) {
	if !s.requireTracker(w, r) {
		return
	}
	counts, err := s.tracker.Downloads(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, tracking.Report(counts))
}

// ValidateImportURL accepts absolute http(s) URLs only.
func ValidateImportURL(raw string) error {
	u, err := url.ParseRequestURI(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return badRequest("url must be an absolute http(s) URL, got %q", raw)
	}
	return nil
}

func (s *Server) handleCreateImport(w http.ResponseWriter, r *http.Request) {
	if !s.requireTracker(w, r) {
		return
	}
	var body struct {
		URL      string `json:"url"`
		Category string `json:"category"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := ValidateImportURL(body.URL); err != nil {
		s.writeError(w, r, err)
		return
	}
	category := s.importCategory
	if body.Category != "" {
		c, ok := model.ParseArticleCategory(body.Category)
		if !ok {
			s.writeError(w, r, badRequest("unknown category %q", body.Category))
			return
		}
		category = c
	}

	job := model.NewImportJob(strings.TrimSpace(body.URL), category)
	if err := s.tracker.Enqueue(r.Context(), &job); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("Import queued", zap.String("id", job.ID.String()), zap.String("url", job.URL))
	s.writeJSON(w, http.StatusAccepted, job)
}

func (s *Server) handleGetImport(w http.ResponseWriter, r *http.Request) {
	if !s.requireTracker(w, r) {
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, badRequest("invalid import id"))
		return
	}
	job, err := s.tracker.GetJob(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, job)
}
