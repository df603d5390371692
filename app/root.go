// Package app implements the objid commands.
package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/objid/objid/internal/config"
	"github.com/objid/objid/internal/logger"
)

// options are shared by all commands of one command tree.
type options struct {
	configPath string // directory holding main.toml, empty uses config.Default
	logLevel   string // overrides Log.LogLevel of the config

	cfg config.Config
}

// NewRootCmd builds the objid command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}

	rootCmd := &cobra.Command{
		Use:   "objid",
		Short: "objid generates secure, URL-friendly random ids",
		Long: `objid generates short random ids from a cryptographically secure
random source, using either the URL-safe default alphabet (A-Za-z0-9_-)
or a custom alphabet of up to 256 characters.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return o.setup()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&o.configPath, "config", "c", "", "directory containing main.toml")
	rootCmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(newGenerateCmd(o), newConfigCmd(o))

	return rootCmd
}

// setup reads the config and initializes the logger.
func (o *options) setup() error {
	var err error

	if o.configPath == "" {
		o.cfg = config.Default()
	} else if o.cfg, err = config.ReadConfig(o.configPath); err != nil {
		return err
	}

	if o.logLevel != "" {
		o.cfg.Log.LogLevel = o.logLevel
	}

	if err = logger.Init(o.cfg.Log); err != nil {
		return err
	}

	log.Debug().Str("config", o.configPath).Msg("config loaded")

	return nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
