package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/plexgraph/graph-bridge/marshal"
	"github.com/plexgraph/graph-bridge/registry"
)

type app struct {
	cfg     config
	reg     *registry.Registry
	logger  *zap.Logger
	color   bool
	verbose bool
	cfgPath string
	noColor bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "bridge",
		Short:         "Exercise the graph host/native conversion layer",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "path to TOML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable styled output")

	root.AddCommand(newConvertCmd(a))
	root.AddCommand(newTypesCmd(a))
	root.AddCommand(newInfoCmd(a))

	return root
}

func (a *app) setup() error {
	cfg, err := loadConfig(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = zap.NewNop()
	if a.verbose || cfg.LogLevel == "debug" {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		a.logger = logger
	}
	marshal.SetLogger(a.logger)

	a.color = a.colorEnabled()

	a.reg = registry.New()
	if err := marshal.RegisterStandard(a.reg); err != nil {
		return err
	}
	a.reg.Seal()

	a.logger.Debug("registry sealed", zap.Int("converters", a.reg.Len()))
	return nil
}
