package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/propmap-cli/internal/dataset"
	"github.com/KaramelBytes/propmap-cli/internal/filter"
)

// addCriteriaFlags binds the filter criteria flags shared by stats and filter.
func addCriteriaFlags(cmd *cobra.Command, c *filter.Criteria) {
	f := cmd.Flags()
	f.StringVar(&c.Neighborhood, "neighborhood", "", "exact neighbourhood name")
	f.StringVar(&c.Ward, "ward", "", "ward name substring")
	f.StringVar(&c.AssessmentClass, "class", "", "assessment class in any of the three slots")
	f.StringVar(&c.Garage, "garage", "", "garage: yes | no | all")
	f.StringVar(&c.ValueOp, "value-op", "", "compare assessed value: less | equal | greater")
	f.Int64Var(&c.Value, "value", 0, "assessed value threshold used with --value-op")
	f.Float64Var(&c.NearLat, "near-lat", 0, "latitude of the proximity center")
	f.Float64Var(&c.NearLng, "near-lng", 0, "longitude of the proximity center")
	f.Float64Var(&c.RadiusKm, "radius-km", 0, "proximity radius in km (0 = off)")
}

// applyCriteria returns ds narrowed by c and a description for the report.
func applyCriteria(ds *dataset.Dataset, c filter.Criteria) (*dataset.Dataset, string, error) {
	if c.IsZero() {
		return ds, "", nil
	}
	keep, err := c.Build()
	if err != nil {
		return nil, "", err
	}
	sub := ds.Filter(keep)
	logger.Debugf("criteria %q kept %d of %d records", c.Describe(), sub.Count(), ds.Count())
	return sub, c.Describe(), nil
}
