// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcat/internal/config"
)

// app is the state shared by all subcommands after PersistentPreRunE.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	color  bool

	// flag values
	configPath string
	colorMode  string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "lvcat",
		Short:         "Finite categories, diagrams and their morphisms",
		Long:          `lvcat builds finite categories and diagram categories and verifies the category laws over them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to "+config.FileName+" (default: ./"+config.FileName+" if present)")
	root.PersistentFlags().StringVar(&a.colorMode, "color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug|info|warn|error)")

	root.AddCommand(newLawsCmd(a))
	root.AddCommand(newShapesCmd(a))

	return root
}

// setup loads the config file, lets explicitly set flags override it, and
// builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	path, optional := a.configPath, false
	if path == "" {
		path, optional = config.FileName, true
	}
	cfg, err := config.Load(path, optional)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Output.Color = a.colorMode
	}
	if flags.Changed("log-level") {
		cfg.Output.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := config.ParseLevel(cfg.Output.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.color = useColor(cfg.Output.Color, cmd.OutOrStdout())
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("configuration loaded", "path", path, "jobs", cfg.Laws.Jobs, "color", cfg.Output.Color)

	return nil
}
