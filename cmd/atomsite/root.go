package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zoobzio/loadz/internal/config"
)

type application struct {
	configPath string
	logLevel   string

	cfg config.Config
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	app := &application{log: logrus.New()}

	cmd := &cobra.Command{
		Use:               "atomsite",
		Short:             "Serve and browse the Atom Institute content catalog",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.load,
	}

	cmd.PersistentFlags().StringVarP(&app.configPath, "config", "c", "", "path to TOML config file")
	cmd.PersistentFlags().StringVar(&app.logLevel, "log-level", "", "override the configured log level")

	cmd.AddCommand(newServeCommand(app), newBrowseCommand(app))
	return cmd
}

func (a *application) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.logLevel != "" {
		cfg.LogLevel, err = logrus.ParseLevel(a.logLevel)
		if err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	a.cfg = cfg

	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetLevel(cfg.LogLevel)
	hookSignals(a.log)
	return nil
}
