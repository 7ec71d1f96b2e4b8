package config

import (
	"os"
	"path/filepath"
	"testing"

	"folio/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCfg() *Config {
	return &Config{
		Content: ContentConfig{ArticlesDir: "content/blog", PoolSize: 4},
		Redis:   RedisConfig{Addr: "localhost:6379"},
		API:     APIConfig{ListenAddr: ":8080"},
		Import:  ImportConfig{DefaultCategory: "blog"},
		Logging: LoggingConfig{Level: "info"},
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("content", "blog"), cfg.Content.ArticlesDir)
	assert.Empty(t, cfg.Content.CatalogPath)
	assert.Equal(t, DefaultPoolSize, cfg.Content.PoolSize)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "./badger-data", cfg.Badger.Path)
	assert.Equal(t, ":8080", cfg.API.ListenAddr)
	assert.Equal(t, model.CategoryBlog, cfg.ImportCategory())
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FOLIO_REDIS_ADDR", "redis:6380")
	t.Setenv("FOLIO_CONTENT_POOL_SIZE", "2")
	t.Setenv("FOLIO_IMPORT_DEFAULT_CATEGORY", "tutorial")

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "redis:6380", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Content.PoolSize)
	assert.Equal(t, model.CategoryTutorial, cfg.ImportCategory())
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "folio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
content:
  articles_dir: /srv/posts
  catalog_path: /srv/projects.yaml
api:
  listen_addr: ":9000"
`), 0o644))

	v := New()
	v.SetConfigFile(path)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "/srv/posts", cfg.Content.ArticlesDir)
	assert.Equal(t, "/srv/projects.yaml", cfg.Content.CatalogPath)
	assert.Equal(t, ":9000", cfg.API.ListenAddr)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoad_BrokenConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("content: [unclosed"), 0o644))

	v := New()
	v.SetConfigFile(path)
	_, err := Load(v)
	assert.ErrorContains(t, err, "reading config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty articles dir", func(c *Config) { c.Content.ArticlesDir = "" }, "articles_dir"},
		{"zero pool", func(c *Config) { c.Content.PoolSize = 0 }, "pool_size"},
		{"empty redis", func(c *Config) { c.Redis.Addr = "" }, "redis.addr"},
		{"empty listen", func(c *Config) { c.API.ListenAddr = "" }, "listen_addr"},
		{"bad category", func(c *Config) { c.Import.DefaultCategory = "poetry" }, "default_category"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
	}

	require.NoError(t, validCfg().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validCfg()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}
