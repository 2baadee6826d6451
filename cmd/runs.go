package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/AayushY02/Parking-MapAI/core/runlog"
	infrarunlog "github.com/AayushY02/Parking-MapAI/infra/runlog"
)

func newRunsCmd(opts *rootOptions) *cobra.Command {
	var q runlog.Query
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Query the run log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			store, err := infrarunlog.Open(cfg.Logging.RunLog)
			if err != nil {
				return err
			}
			if store == nil {
				return fmt.Errorf("run log disabled (logging.runlog.backend=%s)", cfg.Logging.RunLog.Backend)
			}
			defer func() { _ = store.Close() }()
			recs, err := store.Query(contextOf(cmd), q)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RUN\tTIME\tSCENARIO\tSLOT\tPEAK\tDROP\tOCCUPANCY\tPRICE")
			for _, r := range recs {
				im := r.Impact
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d->%d\t%d%%\t%d%%->%d%%\t%d->%d\n",
					r.RunID, r.Timestamp.Format("2006-01-02 15:04:05"), r.Scenario, r.Slot,
					im.PeakBefore, im.PeakAfter, im.PeakDropPct,
					im.OccupancyBefore, im.OccupancyAfter, im.PriceBefore, im.PriceAfter)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&q.RunID, "run-id", "", "only records of this run")
	cmd.Flags().StringVarP(&q.Scenario, "scenario", "s", "", "only records of this scenario (\"baseline\" for none)")
	cmd.Flags().IntVarP(&q.Limit, "limit", "n", 0, "maximum number of records (0 = all)")
	return cmd
}
