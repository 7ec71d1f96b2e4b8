package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"folio/internal/metrics"
	"folio/internal/server"
	"folio/internal/site"
	"folio/internal/tracking"
	"folio/internal/worker"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	var noTracking bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON API and the import worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			m := metrics.New()
			st, err := site.Open(ctx, siteOptions(), logger, m)
			if err != nil {
				return fmt.Errorf("serve: loading content: %w", err)
			}
			defer st.Close()

			opts := []server.Option{
				server.WithMetrics(m),
				server.WithImportCategory(cfg.ImportCategory()),
			}

			if !noTracking {
				// Full mode: Redis for history and the queue, Badger for counters.
				hs, err := tracking.NewHybridStore(cfg.Redis.Addr, cfg.Badger.Path)
				if err != nil {
					return fmt.Errorf("serve: init tracking store: %w", err)
				}
				defer hs.Close()
				opts = append(opts, server.WithTracker(hs))

				w := worker.NewWorker(hs, cfg.Content.ArticlesDir, st.Reload, logger, m)
				go w.Start(ctx)
			} else {
				logger.Warn("Tracking disabled; history, downloads and imports answer 503")
			}

			srv := server.NewServer(st, logger, opts...)
			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start(cfg.API.ListenAddr)
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("serve: %w", err)
				}
			case <-ctx.Done():
				logger.Info("Shutting down...")
				shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
				defer stop()
				if err := srv.Stop(shutdownCtx); err != nil {
					logger.Warn("Shutdown was not clean", zap.Error(err))
				}
			}
			logger.Info("Goodbye!")
			return nil
		},
	}

	cmd.Flags().String("listen", "", "HTTP listen address")
	bindFlag(cmd.Flags().Lookup("listen"), "api.listen_addr")
	cmd.Flags().BoolVar(&noTracking, "no-tracking", false, "run without Redis and Badger")
	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load all content once and report problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := site.Build(cmd.Context(), siteOptions(), logger)
			if err != nil {
				return fmt.Errorf("check: %w", err)
			}
			defer snap.Fulltext.Close()

			indexed, err := snap.Fulltext.Count()
			if err != nil {
				return fmt.Errorf("check: count indexed articles: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d articles (%d indexed), %d projects\n",
				snap.Articles.Len(), indexed, snap.Projects.Len())
			return nil
		},
	}
}
