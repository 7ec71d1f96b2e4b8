package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"folio/internal/model"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultPoolSize is how many article files are parsed at once.
	DefaultPoolSize = 8

	// EnvPrefix prefixes every environment override, e.g. FOLIO_REDIS_ADDR.
	EnvPrefix = "FOLIO"
)

// Config holds all configuration for folio.
type Config struct {
	Content ContentConfig `mapstructure:"content"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Badger  BadgerConfig  `mapstructure:"badger"`
	API     APIConfig     `mapstructure:"api"`
	Import  ImportConfig  `mapstructure:"import"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ContentConfig points at the article directory and the project catalog.
// An empty CatalogPath serves the built-in catalog.
type ContentConfig struct {
	ArticlesDir string `mapstructure:"articles_dir"`
	CatalogPath string `mapstructure:"catalog_path"`
	PoolSize    int    `mapstructure:"pool_size"`
}

type RedisConfig struct {
	Addr string `mapstructure:"addr"`
}

// BadgerConfig holds the download counter database location. An empty
// path runs without persistent counters.
type BadgerConfig struct {
	Path string `mapstructure:"path"`
}

type APIConfig struct {
	ListenAddr string `mapstructure:"listen_addr"`
}

type ImportConfig struct {
	DefaultCategory string `mapstructure:"default_category"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// New returns a viper instance carrying folio's defaults, config file
// search paths and environment bindings. Callers may bind flags to it
// before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("content.articles_dir", filepath.Join("content", "blog"))
	v.SetDefault("content.catalog_path", "")
	v.SetDefault("content.pool_size", DefaultPoolSize)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("badger.path", "./badger-data")

	v.SetDefault("api.listen_addr", ":8080")
	v.SetDefault("import.default_category", string(model.CategoryBlog))
	v.SetDefault("logging.level", "info")

	v.SetConfigName("folio")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join(homeDir(), ".folio"))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file (if any) into v and decodes the result.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that required fields are set and consistent.
func (c *Config) Validate() error {
	if c.Content.ArticlesDir == "" {
		return fmt.Errorf("content.articles_dir must not be empty")
	}
	if c.Content.PoolSize <= 0 {
		return fmt.Errorf("content.pool_size must be greater than 0")
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr must not be empty")
	}
	if c.API.ListenAddr == "" {
		return fmt.Errorf("api.listen_addr must not be empty")
	}
	if _, ok := model.ParseArticleCategory(c.Import.DefaultCategory); !ok {
		return fmt.Errorf("import.default_category %q is not an article category", c.Import.DefaultCategory)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// ImportCategory returns the validated default category for imports.
func (c *Config) ImportCategory() model.ArticleCategory {
	cat, _ := model.ParseArticleCategory(c.Import.DefaultCategory)
	return cat
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
