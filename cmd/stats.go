package cmd

import (
	"context"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KaramelBytes/propmap-cli/internal/dataset"
	"github.com/KaramelBytes/propmap-cli/internal/filter"
	"github.com/KaramelBytes/propmap-cli/internal/report"
)

var statsCriteria filter.Criteria

var statsCmd = &cobra.Command{
	Use:   "stats [sources or globs...]",
	Short: "Show min, max, range, mean and median assessed values",
	Long: `Load one or more sources concurrently and report value statistics for each,
optionally narrowed by filter criteria. Records without an assessed value are
counted but excluded from the statistics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sources := expandSources(args)
		if len(sources) == 0 {
			src, _, err := sourceArgs(nil, 0)
			if err != nil {
				return err
			}
			sources = []string{src}
		}

		sets, err := loadAll(cmd.Context(), sources)
		if err != nil {
			return err
		}
		out := &report.SummarySet{}
		for _, ds := range sets {
			sub, desc, err := applyCriteria(ds, statsCriteria)
			if err != nil {
				return err
			}
			out.Summaries = append(out.Summaries, report.NewSummary(sub, ds.Source(), desc))
		}
		if len(out.Summaries) == 1 {
			return emit(cmd, out.Summaries[0])
		}
		return emit(cmd, out)
	},
}

// expandSources resolves glob patterns, keeping literal names that match
// nothing so the loader can apply its extension rule and report them.
func expandSources(args []string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, arg := range args {
		matches, _ := filepath.Glob(arg)
		if len(matches) == 0 {
			matches = []string{arg}
		}
		sort.Strings(matches)
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	return out
}

// loadAll loads sources in parallel, keeping argument order. The first
// failure cancels the rest.
func loadAll(ctx context.Context, sources []string) ([]*dataset.Dataset, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	sets := make([]*dataset.Dataset, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ds, err := openSource(src)
			if err != nil {
				return err
			}
			sets[i] = ds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}

func init() {
	rootCmd.AddCommand(statsCmd)
	addCriteriaFlags(statsCmd, &statsCriteria)
}
