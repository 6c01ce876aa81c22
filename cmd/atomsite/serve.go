package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zoobzio/loadz/content"
	"github.com/zoobzio/loadz/server"
)

const shutdownTimeout = 5 * time.Second

type serveCommand struct {
	app *application

	Address     string
	CatalogPath string
	Quiet       bool
}

func newServeCommand(app *application) *cobra.Command {
	serveCmd := &serveCommand{app: app}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the content API",
		RunE:  serveCmd.serve,
	}

	cmd.Flags().StringVarP(&serveCmd.Address, "address", "a", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&serveCmd.CatalogPath, "catalog", "", "catalog file to serve and watch (overrides config)")
	cmd.Flags().BoolVarP(&serveCmd.Quiet, "quiet", "q", false, "disable request logs")

	return cmd
}

func (s *serveCommand) serve(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := s.app.cfg
	if s.Address != "" {
		cfg.Address = s.Address
	}
	if s.CatalogPath != "" {
		cfg.CatalogPath = s.CatalogPath
	}

	catalog := content.NewFallbacks(content.DefaultCatalog())
	if cfg.CatalogPath != "" {
		if err := catalog.WatchFile(ctx, cfg.CatalogPath); err != nil {
			return fmt.Errorf("failed to watch catalog: %w", err)
		}
		s.app.log.WithField("path", cfg.CatalogPath).Info("watching catalog file")
	}

	srv := server.NewServer(&server.Options{
		Address:        cfg.Address,
		Catalog:        catalog,
		DisableReqLogs: s.Quiet,
		Debug:          cfg.LogLevel >= logrus.DebugLevel,
	})

	errc := make(chan error, 1)
	go func() { errc <- srv.Start() }()
	s.app.log.Infof("serving content API on %s", cfg.Address)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.app.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Stop(shutdownCtx)
}
