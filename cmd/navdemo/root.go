package main

import (
	"context"
	"os"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/spf13/cobra"
)

// Options stores global CLI options shared between commands.
type Options struct {
	ConfigPath string
	LogLevel   string
	Lang       string

	config  navstack.Config
	catalog *Catalog
}

// Execute builds the root command and runs it with args.
func Execute(args []string) error {
	cmd := newRootCommand(&Options{})
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func newRootCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "navdemo",
		Short:         "navdemo exercises the navstack router",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := navstack.LoadConfig(opts.ConfigPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = opts.LogLevel
			}
			opts.config = cfg

			navstack.Init(cfg.Options())
			logger := navstack.GetLogger()
			if len(cfg.UnknownKeys) > 0 {
				logger.Warn("Ignoring unknown config keys", "path", opts.ConfigPath, "keys", cfg.UnknownKeys)
			}
			logger.Debug("navdemo configured", "config", opts.ConfigPath, "lang", opts.Lang)

			opts.catalog, err = newCatalog(opts.Lang)
			return err
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			navstack.Close()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", os.Getenv(constants.ConfigPathEnvVar), "Path to a navstack TOML config file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.Lang, "lang", "en", "Language for screen titles (en, es)")

	cmd.AddCommand(
		newReplayCommand(opts),
		newTUICommand(opts),
		newWindowCommand(opts),
	)

	return cmd
}
