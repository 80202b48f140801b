package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/esgportal/internal/logging"
	"github.com/dmitrijs2005/esgportal/internal/server"
	"github.com/dmitrijs2005/esgportal/internal/server/config"
	"github.com/spf13/cobra"
)

// Flags are read by config.LoadConfig from os.Args, so cobra leaves them
// alone.
var rootCmd = &cobra.Command{
	Use:                "esgportal-server",
	Short:              "ESG portal identity server",
	DisableFlagParsing: true,
	SilenceUsage:       true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, grantAdminCmd, revokeAdminCmd)
}

// positionalArgs drops flags and their values from args.
func positionalArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			out = append(out, arg)
			continue
		}
		if !strings.Contains(arg, "=") && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
		}
	}
	return out
}

// withApp loads the configuration, builds the app and runs fn with it.
func withApp(ctx context.Context, fn func(context.Context, *server.App) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return err
	}
	logger := logging.NewJSONLogger(os.Stdout, cfg.LogLevel)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start server: %v\n", err)
		return err
	}
	defer app.Close()

	if err := fn(ctx, app); err != nil {
		logger.Error(ctx, err.Error())
		return err
	}
	return nil
}
