package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"folio/internal/model"
	"folio/internal/query"
	"folio/internal/site"
	"folio/internal/store"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// recordKind describes how one record kind is picked from a snapshot and
// printed.
type recordKind[T model.Record] struct {
	name  string
	short string
	pick  func(*site.Snapshot) *store.Store[T]
	row   func(T) []string
	view  func(T) any
}

type filterFlags struct {
	categories   []string
	tags         []string
	technologies []string
	statuses     []string
	featured     bool
	search       string
	sort         string
	lang         string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.categories, "category", nil, "only these categories")
	cmd.Flags().StringSliceVar(&f.tags, "tag", nil, "only records with any of these tags")
	cmd.Flags().StringSliceVar(&f.technologies, "technology", nil, "only records using any of these technologies")
	cmd.Flags().StringSliceVar(&f.statuses, "status", nil, "only these statuses")
	cmd.Flags().BoolVar(&f.featured, "featured", false, "only featured records")
	cmd.Flags().StringVarP(&f.search, "query", "q", "", "free-text search, ranked by relevance")
}

func (f *filterFlags) registerSort(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.sort, "sort", "", "field[:asc|desc] (title, startDate, endDate, featured)")
	cmd.Flags().StringVar(&f.lang, "lang", "", "collation language for title sorting, e.g. es")
}

func (f *filterFlags) filter() query.Filter {
	return query.Filter{
		Categories:   f.categories,
		Tags:         f.tags,
		Technologies: f.technologies,
		Statuses:     f.statuses,
		FeaturedOnly: f.featured,
		Search:       f.search,
	}
}

func (f *filterFlags) sortSpec() (*query.SortSpec, error) {
	if f.sort == "" {
		return nil, nil
	}
	spec, err := query.ParseSort(f.sort)
	if err != nil {
		return nil, err
	}
	if f.lang != "" {
		tag, err := language.Parse(f.lang)
		if err != nil {
			return nil, fmt.Errorf("--lang: %w", err)
		}
		spec.Locale = tag
	}
	return &spec, nil
}

func articlesCmd() *cobra.Command {
	return recordCmd(recordKind[*model.Article]{
		name:  "articles",
		short: "Query blog articles",
		pick:  func(s *site.Snapshot) *store.Store[*model.Article] { return s.Articles },
		row: func(a *model.Article) []string {
			return []string{a.ID, a.PublishedAt.Format("2006-01-02"), string(a.Category), a.ReadingTime.Text, a.Title}
		},
		view: func(a *model.Article) any { return a.Summary() },
	})
}

func projectsCmd() *cobra.Command {
	return recordCmd(recordKind[*model.Project]{
		name:  "projects",
		short: "Query portfolio projects",
		pick:  func(s *site.Snapshot) *store.Store[*model.Project] { return s.Projects },
		row: func(p *model.Project) []string {
			return []string{p.ID, p.StartDate.Format("2006-01-02"), string(p.Category), string(p.Status), p.Title}
		},
		view: func(p *model.Project) any { return p },
	})
}

func recordCmd[T model.Record](k recordKind[T]) *cobra.Command {
	var asJSON bool

	// withStore loads content once and hands the kind's store to fn.
	withStore := func(cmd *cobra.Command, fn func(st *store.Store[T]) error) error {
		s, err := openSite(cmd.Context())
		if err != nil {
			return fmt.Errorf("%s: loading content: %w", k.name, err)
		}
		defer s.Close()
		return fn(k.pick(s.Current()))
	}

	printRecords := func(out io.Writer, records []T) error {
		if asJSON {
			views := make([]any, len(records))
			for i, r := range records {
				views[i] = k.view(r)
			}
			return printJSON(out, views)
		}
		if len(records) == 0 {
			fmt.Fprintln(out, "No results found.")
			return nil
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, r := range records {
			fmt.Fprintln(tw, strings.Join(k.row(r), "\t"))
		}
		return tw.Flush()
	}

	cmd := &cobra.Command{
		Use:   k.name,
		Short: k.short,
	}
	cmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	var lf filterFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List records matching the filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := lf.sortSpec()
			if err != nil {
				return err
			}
			return withStore(cmd, func(st *store.Store[T]) error {
				return printRecords(cmd.OutOrStdout(), query.Run(st.All(), lf.filter(), spec))
			})
		},
	}
	lf.register(list)
	lf.registerSort(list)

	search := &cobra.Command{
		Use:   "search [term]",
		Short: "Rank records by relevance to term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(st *store.Store[T]) error {
				return printRecords(cmd.OutOrStdout(), query.SearchRanked(st.All(), args[0]))
			})
		},
	}

	var limit int
	related := &cobra.Command{
		Use:   "related [id]",
		Short: "Show records related to id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(st *store.Store[T]) error {
				ref, err := st.Get(args[0])
				if err != nil {
					return err
				}
				return printRecords(cmd.OutOrStdout(), query.Related(st.All(), ref, limit))
			})
		},
	}
	related.Flags().IntVar(&limit, "limit", 3, "max related records")

	get := &cobra.Command{
		Use:   "get [id]",
		Short: "Print one record as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(st *store.Store[T]) error {
				r, err := st.Get(args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), r)
			})
		},
	}

	var sf filterFlags
	stats := &cobra.Command{
		Use:   "stats",
		Short: "Aggregate counts over the matching records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(st *store.Store[T]) error {
				s := query.Aggregate(query.Run(st.All(), sf.filter(), nil))
				if asJSON {
					return printJSON(cmd.OutOrStdout(), s)
				}
				printStats(cmd.OutOrStdout(), s)
				return nil
			})
		},
	}
	sf.register(stats)

	var suggestLimit int
	suggest := &cobra.Command{
		Use:   "suggest [term]",
		Short: "Suggest titles, tags and technologies containing term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(st *store.Store[T]) error {
				for _, s := range query.Suggestions(st.All(), args[0], suggestLimit) {
					fmt.Fprintln(cmd.OutOrStdout(), s)
				}
				return nil
			})
		},
	}
	suggest.Flags().IntVar(&suggestLimit, "limit", query.DefaultSuggestionLimit, "max suggestions")

	cmd.AddCommand(list, search, related, get, stats, suggest)
	return cmd
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printStats(out io.Writer, s query.Stats) {
	fmt.Fprintf(out, "Total: %d (featured %d)\n", s.Total, s.FeaturedCount)
	for _, group := range []struct {
		title  string
		counts map[string]int
	}{
		{"Categories", s.ByCategory},
		{"Statuses", s.ByStatus},
		{"Technologies", s.ByTechnology},
		{"Tags", s.ByTag},
	} {
		if len(group.counts) == 0 {
			continue
		}
		fmt.Fprintf(out, "%s:\n", group.title)
		keys := make([]string, 0, len(group.counts))
		for k := range group.counts {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if group.counts[keys[i]] != group.counts[keys[j]] {
				return group.counts[keys[i]] > group.counts[keys[j]]
			}
			return keys[i] < keys[j]
		})
		for _, k := range keys {
			fmt.Fprintf(out, "  %-24s %d\n", k, group.counts[k])
		}
	}
}
