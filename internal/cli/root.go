// Package cli implements the simplerdf command line.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aleksaelezovic/simplerdf/internal/config"
	"github.com/aleksaelezovic/simplerdf/internal/logging"
)

// RootOptions holds global flags for all commands, plus the configuration
// and logger built from them before any subcommand runs.
type RootOptions struct {
	ConfigPath string
	JSONLogs   bool

	Config *config.Config
	Logger *zap.Logger
}

// NewRootCommand creates the root command for the simplerdf CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "simplerdf",
		Short: "simplerdf - in-memory RDF datasets",
		Long:  "Build, query and transform in-memory RDF datasets of quads.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	cmd.PersistentFlags().BoolVar(&opts.JSONLogs, "json-logs", false, "log as JSON (overrides log.json)")

	// Add subcommands
	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewExpandCommand(opts))
	cmd.AddCommand(NewShortenCommand(opts))

	return cmd
}

func (o *RootOptions) init(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.Log.JSON = o.JSONLogs
	}

	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	o.Config = cfg
	o.Logger = logger
	return nil
}
