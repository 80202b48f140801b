package main

import (
	"context"

	"github.com/dmitrijs2005/esgportal/internal/server"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:                "migrate",
	Short:              "Apply pending database migrations",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, app *server.App) error {
			return app.Migrate(ctx)
		})
	},
}
