package main

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/esgportal/internal/server"
	"github.com/spf13/cobra"
)

var grantAdminCmd = &cobra.Command{
	Use:                "grant-admin <uid>",
	Short:              "Mark a user's profile as admin",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setAdmin(cmd, args, true)
	},
}

var revokeAdminCmd = &cobra.Command{
	Use:                "revoke-admin <uid>",
	Short:              "Clear the admin mark on a user's profile",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setAdmin(cmd, args, false)
	},
}

func setAdmin(cmd *cobra.Command, args []string, admin bool) error {
	uids := positionalArgs(args)
	if len(uids) != 1 {
		return fmt.Errorf("%s: expected exactly one uid, got %d", cmd.Name(), len(uids))
	}
	return withApp(cmd.Context(), func(ctx context.Context, app *server.App) error {
		return app.SetAdmin(ctx, uids[0], admin)
	})
}
