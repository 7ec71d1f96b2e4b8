package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"folio/internal/config"
	"folio/internal/site"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	v      = config.New()
	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	var cfgFile string
	rootCmd := &cobra.Command{
		Use:           "folio",
		Short:         "folio - portfolio content index and query engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
			}
			var err error
			cfg, err = config.Load(v)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			logger, err = newLogger(cfg.Logging.Level)
			return err
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Path to a folio.yaml config file")
	flags.String("articles", "", "Directory of article front-matter files")
	flags.String("catalog", "", "YAML project catalog (built-in catalog when empty)")
	flags.String("redis", "", "Address of Redis server")
	flags.String("badger", "", "Path to BadgerDB data directory")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	bindFlag(flags.Lookup("articles"), "content.articles_dir")
	bindFlag(flags.Lookup("catalog"), "content.catalog_path")
	bindFlag(flags.Lookup("redis"), "redis.addr")
	bindFlag(flags.Lookup("badger"), "badger.path")
	bindFlag(flags.Lookup("log-level"), "logging.level")

	rootCmd.AddCommand(
		serveCmd(),
		checkCmd(),
		articlesCmd(),
		projectsCmd(),
		importCmd(),
		downloadsCmd(),
	)
	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// bindFlag makes a flag override key when it is set on the command line.
func bindFlag(f *pflag.Flag, key string) {
	if err := v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zc.Level = lvl
	return zc.Build()
}

func siteOptions() site.Options {
	return site.Options{
		ArticlesDir: cfg.Content.ArticlesDir,
		CatalogPath: cfg.Content.CatalogPath,
		PoolSize:    cfg.Content.PoolSize,
	}
}

// openSite builds a snapshot for one-shot commands.
func openSite(ctx context.Context) (*site.Site, error) {
	return site.Open(ctx, siteOptions(), logger, nil)
}
