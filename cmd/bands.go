package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/propmap-cli/internal/dataset"
	"github.com/KaramelBytes/propmap-cli/internal/report"
)

var (
	bandsCenter int64
	bandsValues []string
)

var bandsCmd = &cobra.Command{
	Use:   "bands [source]",
	Short: "Show value bands around a center, with counts when a source is given",
	Long: `Print the band table for a center value: each band's upper bound and colour.
With a source, the number of valued properties in each band is included and the
center defaults to the configured center or the roll's median value. Ad hoc
values can be classified with --value.`,
	Example: `  propmap bands --center 400000 --value 390000 --value 1,000,000
  propmap bands roll.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ds *dataset.Dataset
		source := cfg.DataSource
		if len(args) == 1 {
			source = args[0]
		}
		// A center alone is enough to print the table.
		if source != "" && (len(args) == 1 || !cmd.Flags().Changed("center")) {
			d, err := openSource(source)
			if err != nil {
				return err
			}
			ds = d
		}
		center, err := resolveCenter(cmd, bandsCenter, ds)
		if err != nil {
			return err
		}

		var out *report.Bands
		if ds != nil {
			out = report.NewBands(center, ds.BandCounts(center))
			out.Source = ds.Source()
		} else {
			out = report.NewBands(center, nil)
		}
		for _, s := range bandsValues {
			v, err := parseInt64(s)
			if err != nil {
				return fmt.Errorf("invalid --value %q: %w", s, err)
			}
			out.Classify(v)
		}
		return emit(cmd, out)
	},
}

func init() {
	rootCmd.AddCommand(bandsCmd)
	bandsCmd.Flags().Int64Var(&bandsCenter, "center", 0, "center value (default: config, then roll median)")
	bandsCmd.Flags().StringArrayVar(&bandsValues, "value", nil, "value to classify (repeatable)")
}
