package worker

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"folio/internal/content"
	"folio/internal/model"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// draftFrontMatter mirrors the keys the content loader reads, plus the
// page the draft came from.
type draftFrontMatter struct {
	Title       string        `yaml:"title"`
	Description string        `yaml:"description,omitempty"`
	Category    string        `yaml:"category"`
	Tags        []string      `yaml:"tags"`
	PublishedAt string        `yaml:"publishedAt"`
	Author      *model.Author `yaml:"author,omitempty"`
	Source      string        `yaml:"source"`
}

// Draft is a scraped page ready to be written as an article file.
type Draft struct {
	Title       string
	Description string
	Byline      string
	Body        string
	Category    model.ArticleCategory
	SourceURL   string
	PublishedAt time.Time
}

// Slugify lowercases s, strips accents and joins words with dashes.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(plain) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// TitleFromURL names a page that has no title of its own: the host plus
// the last path segment, so "https://example.com/posts/hello" becomes
// "example.com/hello".
func TitleFromURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return ""
	}
	parts := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' })
	if len(parts) == 0 {
		return u.Host
	}
	return u.Host + "/" + parts[len(parts)-1]
}

// WriteDraft writes d into dir and returns the new article id. An existing
// file is never overwritten; the id gets a numeric suffix instead. The
// draft is parsed the way the content loader parses it before anything is
// written, so a draft that could not be loaded never reaches dir.
func WriteDraft(dir string, d Draft) (string, error) {
	base := Slugify(d.Title)
	if base == "" {
		base = "imported"
	}

	fm := draftFrontMatter{
		Title:       d.Title,
		Description: d.Description,
		Category:    string(d.Category),
		Tags:        []string{},
		PublishedAt: d.PublishedAt.UTC().Format("2006-01-02"),
		Source:      d.SourceURL,
	}
	if d.Byline != "" {
		fm.Author = &model.Author{Name: d.Byline}
	}
	header, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("encode front matter: %w", err)
	}
	data := "---\n" + string(header) + "---\n" + strings.TrimSpace(d.Body) + "\n"
	if _, err := content.ParseArticle(base+".md", base, []byte(data)); err != nil {
		return "", fmt.Errorf("invalid draft: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	for n := 1; n < 1000; n++ {
		id := base
		if n > 1 {
			id = fmt.Sprintf("%s-%d", base, n)
		}
		f, err := os.OpenFile(filepath.Join(dir, id+".md"), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		if _, err := f.WriteString(data); err != nil {
			f.Close()
			return "", err
		}
		return id, f.Close()
	}
	return "", fmt.Errorf("no free file name for %q", base)
}
