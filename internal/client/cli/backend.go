package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/esgportal/internal/client/client"
	"github.com/dmitrijs2005/esgportal/internal/client/config"
	"github.com/dmitrijs2005/esgportal/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/esgportal/internal/filex"
	"github.com/dmitrijs2005/esgportal/internal/identity"
	"github.com/dmitrijs2005/esgportal/internal/logging"
	"github.com/dmitrijs2005/esgportal/internal/profiles"
)

// DemoCode is the authorization code memory mode accepts for every
// federated provider.
const DemoCode = "demo"

type pinger interface {
	Ping(ctx context.Context) error
}

type avatarUploader interface {
	AvatarUploadURL(ctx context.Context, contentType string) (uploadURL, photoURL string, err error)
}

// actionCodes applies the codes sent by email.
type actionCodes interface {
	ConfirmPasswordReset(ctx context.Context, code, password string) error
	VerifyEmail(ctx context.Context, code string) error
}

// backend is what the CLI runs against. Optional parts are nil when the
// backend has no server behind it.
type backend struct {
	provider identity.Provider
	store    profiles.Store

	meta    metadata.Repository
	pinger  pinger
	avatars avatarUploader
	codes   actionCodes

	restore func(ctx context.Context) error
	close   func() error
}

func newGRPCBackend(ctx context.Context, c *config.Config, logger logging.Logger, flow identity.FederatedFlow) (*backend, error) {
	dir, err := filex.EnsureDir(filepath.Dir(c.DatabasePath))
	if err != nil {
		return nil, err
	}
	db, err := client.InitDatabase(ctx, filepath.Join(dir, filepath.Base(c.DatabasePath)))
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	meta := metadata.NewSQLiteRepository(db)
	gc := client.NewGRPCClient(client.Options{
		Endpoint:    c.ServerEndpointAddr,
		Metadata:    meta,
		Flow:        flow,
		Logger:      logger,
		CallTimeout: c.CallTimeout,
	})

	return &backend{
		provider: gc,
		store:    gc,
		meta:     meta,
		pinger:   gc,
		avatars:  gc,
		codes:    gc,
		restore:  gc.Restore,
		close: func() error {
			return errors.Join(gc.Close(), db.Close())
		},
	}, nil
}

func newMemoryBackend(flow identity.FederatedFlow) *backend {
	p := identity.NewMemoryProvider(flow)
	for _, tag := range identity.FederatedProviders {
		p.RegisterExternalAccount(tag, DemoCode, identity.ExternalAccount{
			Subject: "demo",
			Email:   "demo@" + string(tag),
			Name:    "Demo User",
		})
	}

	return &backend{
		provider: p,
		store:    profiles.NewMemoryStore(),
		restore:  func(context.Context) error { return nil },
		close:    func() error { return nil },
	}
}
