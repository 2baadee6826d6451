package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AayushY02/Parking-MapAI/core/scenario"
	"github.com/AayushY02/Parking-MapAI/core/simulation"
	"github.com/AayushY02/Parking-MapAI/pkg/export"
)

func newSeriesCmd(opts *rootOptions) *cobra.Command {
	var name, format string
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Print the per-slot before/after figures for a scenario",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("scenario") {
				name = cfg.Run.Scenario
			}
			id, err := scenario.Parse(name)
			if err != nil {
				return err
			}
			base, err := simulation.NewBaseline(simulation.DefaultConfig())
			if err != nil {
				return err
			}
			series, err := base.Series(id)
			if err != nil {
				return err
			}
			switch format {
			case "csv":
				return export.WriteSeriesCSV(cmd.OutOrStdout(), series)
			case "json":
				return export.WriteJSON(cmd.OutOrStdout(), series)
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}
	cmd.Flags().StringVarP(&name, "scenario", "s", "", "scenario id or \"baseline\" (default from run.scenario)")
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "output format: csv or json")
	return cmd
}
