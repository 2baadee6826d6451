package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AayushY02/Parking-MapAI/core/scenario"
	"github.com/AayushY02/Parking-MapAI/pkg/export"
)

func newScenariosCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List the scenario catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch format {
			case "yaml":
				return export.WriteCatalogYAML(cmd.OutOrStdout(), scenario.Catalog())
			case "json":
				return export.WriteJSON(cmd.OutOrStdout(), scenario.Catalog())
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or json")
	return cmd
}
