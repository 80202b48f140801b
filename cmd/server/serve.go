package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/esgportal/internal/buildinfo"
	"github.com/dmitrijs2005/esgportal/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the database and serve the identity API",
	Long: `Migrates the database and serves the gRPC identity API and the
Prometheus metrics endpoint until interrupted. Usage:

	esgportal-server serve -a :50051 -m :9090 -d postgres://...
`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		buildinfo.PrintBuildData(os.Stdout)
		return withApp(cmd.Context(), func(ctx context.Context, app *server.App) error {
			return app.Run(ctx)
		})
	},
}
