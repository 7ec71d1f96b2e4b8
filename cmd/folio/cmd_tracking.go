package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"folio/internal/model"
	"folio/internal/server"
	"folio/internal/tracking"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func importCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "import [url]",
		Short: "Queue a web page to be imported as an article draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := strings.TrimSpace(args[0])
			if err := server.ValidateImportURL(url); err != nil {
				return err
			}
			cat := cfg.ImportCategory()
			if category != "" {
				c, ok := model.ParseArticleCategory(category)
				if !ok {
					return fmt.Errorf("unknown category %q", category)
				}
				cat = c
			}

			// Client mode: Redis only, so a running server keeps the Badger lock.
			st, err := tracking.NewHybridStore(cfg.Redis.Addr, "")
			if err != nil {
				return fmt.Errorf("import: init store: %w", err)
			}
			defer st.Close()

			job := model.NewImportJob(url, cat)
			if err := st.Enqueue(cmd.Context(), &job); err != nil {
				return fmt.Errorf("import: queue job: %w", err)
			}

			logger.Info("Import queued",
				zap.String("id", job.ID.String()),
				zap.String("url", url),
				zap.String("category", string(cat)))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "article category for the draft")
	return cmd
}

func downloadsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "downloads",
		Short: "Show CV download counts, most downloaded first",
		Long:  "Reads the Badger counters directly, so the server must not be running against the same path.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := tracking.NewHybridStore(cfg.Redis.Addr, cfg.Badger.Path)
			if err != nil {
				return fmt.Errorf("downloads: init store: %w", err)
			}
			defer st.Close()

			counts, err := st.Downloads(cmd.Context())
			if err != nil {
				return fmt.Errorf("downloads: %w", err)
			}
			report := tracking.Report(counts)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, f := range report.Formats {
				fmt.Fprintf(tw, "%s\t%d\t%.1f%%\n", f.Format, f.Downloads, f.Percentage)
			}
			fmt.Fprintf(tw, "total\t%d\t\n", report.Total)
			return tw.Flush()
		},
	}
}
