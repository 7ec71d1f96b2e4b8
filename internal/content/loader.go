// Package content loads articles from a directory of front-matter files.
package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"folio/internal/enrich"
	"folio/internal/model"
	"folio/internal/query"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Extensions are the file suffixes treated as articles.
var Extensions = []string{".md", ".mdx"}

type Loader struct {
	dir      string
	logger   *zap.Logger
	poolSize int
}

type Option func(*Loader)

// WithPoolSize bounds how many files are parsed at once.
func WithPoolSize(n int) Option {
	return func(l *Loader) {
		if n < 1 {
			n = 1
		}
		l.poolSize = n
	}
}

func NewLoader(dir string, logger *zap.Logger, opts ...Option) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Loader{
		dir:      dir,
		logger:   logger,
		poolSize: max(1, runtime.NumCPU()/2),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads every article in the directory. Any malformed file fails the
// whole load. The result is ordered newest first, file name breaking ties.
func (l *Loader) Load(ctx context.Context) ([]*model.Article, error) {
	names, err := l.list()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return []*model.Article{}, nil
	}

	pool, err := ants.NewPool(l.poolSize)
	if err != nil {
		return nil, fmt.Errorf("create parse pool: %w", err)
	}
	defer pool.Release()

	articles := make([]*model.Article, len(names))
	errs := make([]error, len(names))
	var wg sync.WaitGroup

	for i, name := range names {
		i, name := i, name
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			articles[i], errs[i] = l.parseFile(name)
		})
		if submitErr != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("schedule %s: %w", name, submitErr)
		}
	}
	wg.Wait()

	// Report the first failure in file order so the error is stable.
	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}

	articles = query.Sort(articles, query.DefaultSort)

	l.logger.Info("Articles loaded", zap.String("dir", l.dir), zap.Int("count", len(articles)))
	return articles, nil
}

func (l *Loader) list() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Warn("Article directory does not exist", zap.String("dir", l.dir))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read article dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !isArticleFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names, nil
}

func (l *Loader) parseFile(name string) (*model.Article, error) {
	data, err := os.ReadFile(filepath.Join(l.dir, name))
	if err != nil {
		return nil, &model.MalformedRecordError{Source: name, Err: err}
	}
	return ParseArticle(name, Slug(name), data)
}

// ParseArticle decodes one article file.
func ParseArticle(source, id string, data []byte) (*model.Article, error) {
	front, body, err := SplitFrontMatter(data)
	if err != nil {
		return nil, &model.MalformedRecordError{Source: source, Err: err}
	}

	var raw enrich.RawArticle
	if err := yaml.Unmarshal(front, &raw); err != nil {
		return nil, &model.MalformedRecordError{Source: source, Err: fmt.Errorf("decode front matter: %w", err)}
	}
	return enrich.Article(source, id, raw, string(body))
}

// Slug derives the article id from its file name.
func Slug(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func isArticleFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return slices.Contains(Extensions, ext)
}
