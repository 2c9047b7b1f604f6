package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/config"
	"github.com/alexisbeaulieu97/folio/internal/logger"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config *config.Config
	Logger *logger.Logger
}

func newAppContext() *AppContext {
	cfg := config.Default()
	return &AppContext{Config: &cfg, Logger: logger.Discard()}
}

// CommandContext returns the command's context carrying a fresh correlation
// id, and a logger tagged with that id and the command name.
func (a *AppContext) CommandContext(cmd *cobra.Command, name string) (context.Context, *logger.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	id := logger.NewCorrelationID()
	ctx = logger.ContextWithCorrelationID(ctx, id)
	log := a.Logger.WithCorrelationID(id).WithFields(map[string]any{"command": name})
	return ctx, log
}
