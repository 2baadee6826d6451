package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AayushY02/Parking-MapAI/core/scenario"
	"github.com/AayushY02/Parking-MapAI/core/simulation"
	"github.com/AayushY02/Parking-MapAI/infra/logger"
	"github.com/AayushY02/Parking-MapAI/pkg/export"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog, every series and every snapshot to a directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := opts.load(cmd); err != nil {
				return err
			}
			n, err := exportAll(cmd, outDir)
			if err != nil {
				return err
			}
			logger.New("export").Infof("wrote %d files to %s", n, outDir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "export", "output directory")
	return cmd
}

// exportAll writes catalog.yaml, series/<scenario>.csv and
// snapshots/<scenario>/<HHMM>.geojson under dir.
func exportAll(cmd *cobra.Command, dir string) (int, error) {
	base, err := simulation.NewBaseline(simulation.DefaultConfig())
	if err != nil {
		return 0, err
	}
	engine := simulation.NewEngine(base)
	snaps, err := engine.Sweep(contextOf(cmd))
	if err != nil {
		return 0, err
	}

	written := 0
	write := func(rel string, fn func(io.Writer) error) error {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := fn(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("write %s: %w", rel, err)
		}
		written++
		return f.Close()
	}

	if err := write("catalog.yaml", func(w io.Writer) error {
		return export.WriteCatalogYAML(w, scenario.Catalog())
	}); err != nil {
		return written, err
	}
	for _, id := range simulation.Scenarios() {
		series, err := base.Series(id)
		if err != nil {
			return written, err
		}
		if err := write(filepath.Join("series", id.String()+".csv"), func(w io.Writer) error {
			return export.WriteSeriesCSV(w, series)
		}); err != nil {
			return written, err
		}
	}
	for _, s := range snaps {
		name := strings.ReplaceAll(s.Slot, ":", "") + ".geojson"
		if err := write(filepath.Join("snapshots", s.Scenario.String(), name), func(w io.Writer) error {
			return export.WriteGeoJSON(w, s)
		}); err != nil {
			return written, err
		}
	}
	return written, nil
}
