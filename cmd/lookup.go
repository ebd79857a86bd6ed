package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/propmap-cli/internal/report"
)

var lookupCenter int64

var lookupCmd = &cobra.Command{
	Use:   "lookup [source] <account>",
	Short: "Show one property by account number",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, rest, err := sourceArgs(args, 1)
		if err != nil {
			return err
		}
		ds, err := openSource(source)
		if err != nil {
			return err
		}
		rec, err := ds.FindByAccountID(rest[0])
		if err != nil {
			return err
		}
		view := report.NewPropertyView(rec)
		if cmd.Flags().Changed("center") || cfg.Center > 0 {
			center, err := resolveCenter(cmd, lookupCenter, ds)
			if err != nil {
				return err
			}
			view = view.WithBand(center)
		}
		return emit(cmd, &report.Detail{Property: view})
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().Int64Var(&lookupCenter, "center", 0, "also classify the value into a band around this center")
}
