package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/esgportal/internal/dbx"
	"github.com/dmitrijs2005/esgportal/internal/profiles"
	"github.com/dmitrijs2005/esgportal/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/esgportal/internal/server/repositories/actioncodes"
	"github.com/dmitrijs2005/esgportal/internal/server/repositories/federated"
	"github.com/dmitrijs2005/esgportal/internal/server/repositories/refreshtokens"
)

// ProfileStore is the profile document store plus the admin switch used by
// maintenance commands.
type ProfileStore interface {
	profiles.Store
	profiles.AdminStore
}

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	FederatedIdentities(db dbx.DBTX) federated.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	ActionCodes(db dbx.DBTX) actioncodes.Repository
	Profiles(db dbx.DBTX) ProfileStore
}
