package metrics

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_IndependentRegistries(t *testing.T) {
	a := New()
	b := New()

	a.ObserveQuery("article", "search", 3)
	a.ObserveQuery("article", "search", 2)

	assert.Equal(t, 2.0, testutil.ToFloat64(a.QueriesTotal.WithLabelValues("article", "search")))
	assert.Equal(t, 5.0, testutil.ToFloat64(a.ResultsTotal.WithLabelValues("article", "search")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.QueriesTotal.WithLabelValues("article", "search")))
}

func TestMetrics_ObserveReload(t *testing.T) {
	m := New()
	m.ObserveReload(nil, 4, 6)
	m.ObserveReload(errors.New("boom"), 0, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReloadsTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReloadsTotal.WithLabelValues("error")))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.RecordsLoaded.WithLabelValues("project")))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveQuery("project", "list", 1)
	m.ObserveReload(nil, 1, 1)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveQuery("project", "list", 1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "folio_queries_total")
}
