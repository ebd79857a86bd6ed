package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/propmap-cli/internal/filter"
	"github.com/KaramelBytes/propmap-cli/internal/report"
)

var (
	filterCriteria filter.Criteria
	filterLimit    int
	filterCenter   int64
	filterBanded   bool
)

var filterCmd = &cobra.Command{
	Use:   "filter [source]",
	Short: "List properties matching all given criteria",
	Example: `  propmap filter roll.csv --neighborhood DOWNTOWN --garage yes
  propmap filter roll.csv --ward "O-day'min" --value-op under --value 400000
  propmap filter roll.csv --near-lat 53.5461 --near-lng -113.4938 --radius-km 1 --banded`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, _, err := sourceArgs(args, 0)
		if err != nil {
			return err
		}
		ds, err := openSource(source)
		if err != nil {
			return err
		}
		sub, desc, err := applyCriteria(ds, filterCriteria)
		if err != nil {
			return err
		}
		if desc == "" {
			desc = filterCriteria.Describe()
		}
		limit := cfg.MaxListRows
		if cmd.Flags().Changed("limit") {
			limit = filterLimit
		}
		listing := report.NewListing(sub.Records(), ds.Source(), desc, limit)
		if filterBanded || cmd.Flags().Changed("center") {
			// Without an explicit center the bands re-center on the matches.
			center, err := resolveCenter(cmd, filterCenter, sub)
			if err != nil {
				return err
			}
			for i, v := range listing.Properties {
				listing.Properties[i] = v.WithBand(center)
			}
		}
		return emit(cmd, listing)
	},
}

func init() {
	rootCmd.AddCommand(filterCmd)
	addCriteriaFlags(filterCmd, &filterCriteria)
	filterCmd.Flags().IntVar(&filterLimit, "limit", 0, "maximum rows to list (0 = unlimited; default from config)")
	filterCmd.Flags().Int64Var(&filterCenter, "center", 0, "band each property around this center")
	filterCmd.Flags().BoolVar(&filterBanded, "banded", false, "band each property (center from config or the median of the matches)")
}
