package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"folio/internal/content"
	"folio/internal/metrics"
	"folio/internal/model"
	"folio/internal/tracking"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-shiori/go-readability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockScraper struct {
	MockTitle   string
	MockContent string
	ShouldFail  bool
}

// Scrape simulates article scraping
func (m *MockScraper) Scrape(url string, timeout time.Duration) (*readability.Article, error) {
	if m.ShouldFail {
		return nil, fmt.Errorf("simulated 404 error")
	}
	return &readability.Article{
		Title:       m.MockTitle,
		Byline:      "Jane Doe",
		TextContent: m.MockContent,
		Excerpt:     "A short summary",
	}, nil
}

func newQueue(t *testing.T) *tracking.HybridStore {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	st, err := tracking.NewHybridStore(mr.Addr(), "")
	require.NoError(t, err)
	t.Cleanup(st.Close)
	return st
}

func runUntil(t *testing.T, w *Worker, st *tracking.HybridStore, job *model.ImportJob, want model.ImportStatus) *model.ImportJob {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	var got *model.ImportJob
	require.Eventually(t, func() bool {
		j, err := st.GetJob(context.Background(), job.ID)
		if err != nil || j.Status != want {
			return false
		}
		got = j
		return true
	}, 2*time.Second, 10*time.Millisecond)
	return got
}

func TestWorker_ProcessJob(t *testing.T) {
	st := newQueue(t)
	dir := t.TempDir()

	var reloads atomic.Int32
	m := metrics.New()
	w := NewWorker(st, dir, func(context.Context) error {
		reloads.Add(1)
		return nil
	}, zap.NewNop(), m)
	w.scraper = &MockScraper{
		MockTitle:   "Mocked Título",
		MockContent: "This is fake content",
	}

	job := model.NewImportJob("http://fake-url.com", model.CategoryTutorial)
	require.NoError(t, st.Enqueue(context.Background(), &job))

	done := runUntil(t, w, st, &job, model.ImportDone)
	assert.Equal(t, "mocked-titulo", done.ArticleID)
	assert.NotNil(t, done.CompletedAt)
	assert.Equal(t, int32(1), reloads.Load())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ImportsTotal.WithLabelValues("ok")))

	data, err := os.ReadFile(filepath.Join(dir, "mocked-titulo.md"))
	require.NoError(t, err)
	a, err := content.ParseArticle("mocked-titulo.md", "mocked-titulo", data)
	require.NoError(t, err)
	assert.Equal(t, "Mocked Título", a.Title)
	assert.Equal(t, model.CategoryTutorial, a.Category)
	assert.Equal(t, "A short summary", a.Description)
	assert.Equal(t, "This is fake content", strings.TrimSpace(a.Body))
	require.NotNil(t, a.Author)
	assert.Equal(t, "Jane Doe", a.Author.Name)
}

func TestWorker_HandlesScrapeFailure(t *testing.T) {
	st := newQueue(t)
	dir := t.TempDir()

	m := metrics.New()
	w := NewWorker(st, dir, nil, zap.NewNop(), m)
	w.scraper = &MockScraper{ShouldFail: true}

	job := model.NewImportJob("http://bad-url.com", model.CategoryBlog)
	require.NoError(t, st.Enqueue(context.Background(), &job))

	failed := runUntil(t, w, st, &job, model.ImportFailed)
	assert.Equal(t, "simulated 404 error", failed.ErrorMessage)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ImportsTotal.WithLabelValues("error")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello, World!":            "hello-world",
		"  Café con Leche  ":       "cafe-con-leche",
		"Go 1.24 -- what's new?":   "go-1-24-what-s-new",
		"!!!":                      "",
		"Diseño de APIs en España": "diseno-de-apis-en-espana",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestWriteDraft_NeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	d := Draft{Title: "Same Title", Category: model.CategoryBlog, Body: "one", PublishedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}

	first, err := WriteDraft(dir, d)
	require.NoError(t, err)
	d.Body = "two"
	second, err := WriteDraft(dir, d)
	require.NoError(t, err)

	assert.Equal(t, "same-title", first)
	assert.Equal(t, "same-title-2", second)

	data, err := os.ReadFile(filepath.Join(dir, "same-title.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "one")
	assert.Contains(t, string(data), "2024-05-01")
}

func TestWriteDraft_RejectsUnloadableDraft(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteDraft(dir, Draft{Category: model.CategoryNews, Body: "some text", PublishedAt: time.Now()})
	assert.ErrorIs(t, err, model.ErrMalformedRecord)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	articles, err := content.NewLoader(dir, zap.NewNop()).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestWriteDraft_PunctuationTitleGetsDefaultID(t *testing.T) {
	dir := t.TempDir()
	id, err := WriteDraft(dir, Draft{Title: "!!!", Category: model.CategoryNews, PublishedAt: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, "imported", id)

	articles, err := content.NewLoader(dir, zap.NewNop()).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "!!!", articles[0].Title)
}

func TestTitleFromURL(t *testing.T) {
	assert.Equal(t, "example.com/hello", TitleFromURL("https://example.com/posts/hello"))
	assert.Equal(t, "example.com/hello", TitleFromURL("https://example.com/posts/hello/"))
	assert.Equal(t, "example.com", TitleFromURL("https://example.com"))
	assert.Equal(t, "", TitleFromURL("not a url"))
}

func TestWorker_UntitledPageUsesURL(t *testing.T) {
	st := newQueue(t)
	dir := t.TempDir()

	w := NewWorker(st, dir, nil, zap.NewNop(), nil)
	w.scraper = &MockScraper{MockContent: "Body without a heading"}

	job := model.NewImportJob("https://example.com/posts/untitled", model.CategoryNews)
	require.NoError(t, st.Enqueue(context.Background(), &job))

	done := runUntil(t, w, st, &job, model.ImportDone)
	assert.Equal(t, "example-com-untitled", done.ArticleID)

	articles, err := content.NewLoader(dir, zap.NewNop()).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "example.com/untitled", articles[0].Title)
}

func TestWorker_FailedReloadFailsJobAndRemovesDraft(t *testing.T) {
	st := newQueue(t)
	dir := t.TempDir()

	m := metrics.New()
	w := NewWorker(st, dir, func(context.Context) error {
		return fmt.Errorf("index rebuild failed")
	}, zap.NewNop(), m)
	w.scraper = &MockScraper{MockTitle: "Fine Title", MockContent: "text"}

	job := model.NewImportJob("https://example.com/fine", model.CategoryBlog)
	require.NoError(t, st.Enqueue(context.Background(), &job))

	failed := runUntil(t, w, st, &job, model.ImportFailed)
	assert.Contains(t, failed.ErrorMessage, "index rebuild failed")
	assert.Empty(t, failed.ArticleID)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ImportsTotal.WithLabelValues("error")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
