package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/AayushY02/Parking-MapAI/app"
	"github.com/AayushY02/Parking-MapAI/config"
	"github.com/AayushY02/Parking-MapAI/infra/logger"
)

const defaultConfigPath = "config.yaml"

type rootOptions struct {
	cfgPath string
}

// NewRootCmd builds the mapai command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "mapai",
		Short:         "Crowd mesh and parking scenario simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.serve(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&opts.cfgPath, "config", "c", defaultConfigPath, "configuration file")
	root.AddCommand(
		newServeCmd(opts),
		newSnapshotCmd(opts),
		newSeriesCmd(opts),
		newScenariosCmd(),
		newExportCmd(opts),
		newRunsCmd(opts),
	)
	return root
}

// Execute runs the CLI.
func Execute() error { return NewRootCmd().Execute() }

// load reads the configuration. A missing default config file is not an
// error; defaults and environment overrides still apply.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, error) {
	path := o.cfgPath
	if !cmd.Root().PersistentFlags().Changed("config") {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			path = ""
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Sweep every slot and scenario, record and publish them, then serve metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.serve(cmd)
		},
	}
}

func (o *rootOptions) serve(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := o.load(cmd)
	if err != nil {
		return err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	return svc.Run(ctx)
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
