package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gorewood/blockgen/internal/catalog"
	"github.com/gorewood/blockgen/internal/config"
	"github.com/gorewood/blockgen/internal/logging"
	"github.com/gorewood/blockgen/internal/output"
)

// app bundles what every command needs: settings, logger and catalog.
type app struct {
	settings config.Settings
	logger   *zap.Logger
	catalog  *catalog.Catalog
}

// loadApp reads settings, builds the logger and loads template overrides.
func loadApp(cmd *cobra.Command) (*app, error) {
	location := config.Locate()
	settings, err := config.Load(location.Dir)
	if err != nil {
		return nil, output.Classify(err)
	}

	logger, err := logging.New(settings.LogLevel, boolFlag(cmd, "verbose"))
	if err != nil {
		return nil, output.NewUserError(err.Error())
	}

	opts := catalog.DefaultLoadOptions()
	opts.Aliases = settings.Aliases
	cat, err := catalog.Load(opts)
	if err != nil {
		return nil, output.Classify(err)
	}

	logger.Debug("configuration loaded",
		zap.String("config_dir", location.Dir),
		zap.String("config_dir_from", location.Source),
		zap.String("global_templates", opts.GlobalPath),
		zap.String("project_templates", opts.ProjectPath))

	return &app{settings: settings, logger: logger, catalog: cat}, nil
}

// close flushes the logger.
func (a *app) close() {
	_ = a.logger.Sync()
}
