package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/config"
	"github.com/alexisbeaulieu97/folio/internal/logger"
)

type rootFlags struct {
	configPath string
	logLevel   string
	humanLogs  bool
	verbose    bool
}

func newRootCmd(app *AppContext) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "folio",
		Short:         "Folio renders section-based posts, articles and prompt pages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, app, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the configuration file (default $FOLIO_CONFIG or the user config dir)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().BoolVar(&flags.humanLogs, "human-logs", false, "Write human readable logs instead of JSON")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newViewCmd(app))
	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newIconsCmd())
	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func setup(cmd *cobra.Command, app *AppContext, flags *rootFlags) error {
	path, explicit := flags.configPath, flags.configPath != ""
	if !explicit {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		return newCommandError("load configuration", path, err, "Fix the configuration file or pass --config with another path.")
	}

	level := cfg.Log.Level
	switch {
	case flags.logLevel != "":
		level = flags.logLevel
	case flags.verbose:
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: flags.humanLogs || cfg.Log.Human,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return newCommandError("configure logging", level, err, "Use one of debug, info, warn or error.")
	}

	app.Config = cfg
	app.Logger = log
	return nil
}
