package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"folio/internal/model"
	"folio/internal/query"
	"folio/internal/store"
	"folio/internal/tracking"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var errBadRequest = errors.New("bad request")

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("Failed to encode response", zap.Error(err))
	}
}

// writeError maps err onto a status code. Server-side failures are logged,
// client mistakes are not.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, tracking.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errBadRequest), errors.Is(err, query.ErrInvalidSort), errors.Is(err, tracking.ErrUnknownFormat):
		code = http.StatusBadRequest
	case errors.Is(err, tracking.ErrNoDisk), errors.Is(err, errNoTracker):
		code = http.StatusServiceUnavailable
	}
	if code >= http.StatusInternalServerError {
		s.logger.Error("Request failed",
			zap.String("path", r.URL.Path),
			zap.Int("code", code),
			zap.Error(err))
	}
	s.writeJSON(w, code, map[string]string{"error": err.Error()})
}

// listParam collects repeated and comma-separated values of key.
func listParam(r *http.Request, key string) []string {
	var out []string
	for _, raw := range r.URL.Query()[key] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func filterFromRequest(r *http.Request) (query.Filter, error) {
	q := r.URL.Query()
	f := query.Filter{
		Categories:   listParam(r, "category"),
		Tags:         listParam(r, "tag"),
		Technologies: listParam(r, "technology"),
		Statuses:     listParam(r, "status"),
		Search:       q.Get("q"),
	}
	if raw := q.Get("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return query.Filter{}, badRequest("featured must be a boolean, got %q", raw)
		}
		f.FeaturedOnly = featured
	}
	return f, nil
}

// sortFromRequest returns nil when no sort was requested.
func sortFromRequest(r *http.Request) (*query.SortSpec, error) {
	raw := r.URL.Query().Get("sort")
	if raw == "" {
		return nil, nil
	}
	spec, err := query.ParseSort(raw)
	if err != nil {
		return nil, err
	}
	if lang := r.URL.Query().Get("lang"); lang != "" {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, badRequest("unknown language %q", lang)
		}
		spec.Locale = tag
	}
	return &spec, nil
}

func intParam(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, badRequest("%s must be a non-negative integer, got %q", key, raw)
	}
	return n, nil
}

func summaries(articles []*model.Article) []model.Article {
	out := make([]model.Article, len(articles))
	for i, a := range articles {
		out[i] = a.Summary()
	}
	return out
}
