package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/esgportal/internal/autherr"
	"github.com/dmitrijs2005/esgportal/internal/common"
	"github.com/dmitrijs2005/esgportal/internal/logging"
	"github.com/dmitrijs2005/esgportal/internal/profiles"
	"github.com/dmitrijs2005/esgportal/internal/server/auth"
	"github.com/dmitrijs2005/esgportal/internal/server/repositories/repomanager"
)

// ProfileService guards the profile document store. Callers read and write
// only their own record; admins may read any. The admin flag and roles are
// never writable here.
type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewProfileService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *ProfileService {
	return &ProfileService{db: db, repomanager: m, logger: l.With("module", "profiles")}
}

func (s *ProfileService) store() profiles.Store {
	return s.repomanager.Profiles(s.db)
}

func requireOwner(p auth.Principal, uid string) error {
	if uid == "" {
		return autherr.New(autherr.CodeInvalidArgument, "uid is required")
	}
	if p.UserID != uid {
		return autherr.New(autherr.CodePermissionDenied, "not your record")
	}
	return nil
}

// Get returns the record of uid. Not-found is passed through as
// common.ErrorNotFound.
func (s *ProfileService) Get(ctx context.Context, p auth.Principal, uid string) (*profiles.Record, error) {
	if uid == "" {
		return nil, autherr.New(autherr.CodeInvalidArgument, "uid is required")
	}
	if uid != p.UserID {
		caller, err := s.store().Get(ctx, p.UserID)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("error loading caller record: %w", err)
		}
		if caller == nil || !caller.IsAdmin {
			return nil, autherr.New(autherr.CodePermissionDenied, "not your record")
		}
	}
	return s.store().Get(ctx, uid)
}

// Create stores the caller's first record. Whatever the caller sends,
// the record starts without admin rights and with the default role.
func (s *ProfileService) Create(ctx context.Context, p auth.Principal, rec *profiles.Record) (*profiles.Record, error) {
	if rec == nil {
		return nil, autherr.New(autherr.CodeInvalidArgument, "record is required")
	}
	if err := requireOwner(p, rec.UID); err != nil {
		return nil, err
	}

	clean := profiles.NewUserRecord(rec.UID, rec.Email, rec.DisplayName, rec.PhotoURL, rec.EmailVerified, rec.Extensions)
	out, err := s.store().Create(ctx, clean)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "profile created", "uid", out.UID, "collection", common.ProfilesCollection)
	return out, nil
}

// Update applies patch to the caller's record.
func (s *ProfileService) Update(ctx context.Context, p auth.Principal, uid string, patch profiles.Patch) (*profiles.Record, error) {
	if err := requireOwner(p, uid); err != nil {
		return nil, err
	}
	if patch.Empty() {
		return s.store().Get(ctx, uid)
	}
	return s.store().Update(ctx, uid, patch)
}

func (s *ProfileService) TouchLastLogin(ctx context.Context, p auth.Principal, uid string) error {
	if err := requireOwner(p, uid); err != nil {
		return err
	}
	return s.store().TouchLastLogin(ctx, uid)
}

func (s *ProfileService) Delete(ctx context.Context, p auth.Principal, uid string) error {
	if err := requireOwner(p, uid); err != nil {
		return err
	}
	return s.store().Delete(ctx, uid)
}

// SetAdmin grants or revokes admin rights. It is reached only from the
// maintenance commands.
func (s *ProfileService) SetAdmin(ctx context.Context, uid string, admin bool) error {
	if err := s.repomanager.Profiles(s.db).SetAdmin(ctx, uid, admin); err != nil {
		return err
	}
	s.logger.Info(ctx, "admin flag changed", "uid", uid, "admin", admin)
	return nil
}
