package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/propmap-cli/internal/report"
)

var distinctCmd = &cobra.Command{
	Use:       "distinct [source] <neighborhood|ward|class>",
	Short:     "List the distinct neighbourhoods, wards or assessment classes",
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{"neighborhood", "ward", "class"},
	RunE: func(cmd *cobra.Command, args []string) error {
		source, rest, err := sourceArgs(args, 1)
		if err != nil {
			return err
		}
		ds, err := openSource(source)
		if err != nil {
			return err
		}
		values, err := ds.Distinct(rest[0])
		if err != nil {
			return err
		}
		return emit(cmd, &report.Distinct{Field: rest[0], Values: values})
	},
}

func init() {
	rootCmd.AddCommand(distinctCmd)
}
