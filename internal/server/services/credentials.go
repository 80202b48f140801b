package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/esgportal/internal/autherr"
	"github.com/dmitrijs2005/esgportal/internal/common"
	"github.com/dmitrijs2005/esgportal/internal/cryptox"
	"github.com/dmitrijs2005/esgportal/internal/dbx"
	"github.com/dmitrijs2005/esgportal/internal/identity"
	"github.com/dmitrijs2005/esgportal/internal/server/auth"
	"github.com/dmitrijs2005/esgportal/internal/server/models"
)

// LinkCredential adds a login method to the caller's account.
func (s *AccountService) LinkCredential(ctx context.Context, p auth.Principal, cred identity.Credential) (*identity.Identity, error) {
	if cred.Provider == identity.ProviderPassword {
		return s.linkPassword(ctx, p, cred)
	}
	return s.linkFederated(ctx, p, cred)
}

func (s *AccountService) linkPassword(ctx context.Context, p auth.Principal, cred identity.Credential) (*identity.Identity, error) {
	email, err := identity.NormalizeEmail(cred.Email)
	if err != nil {
		return nil, err
	}
	if err := identity.CheckPassword(cred.Password, identity.MinPasswordLength); err != nil {
		return nil, err
	}
	salt, verifier := cryptox.HashPassword(cred.Password)

	var ident *identity.Identity
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		accounts := s.repomanager.Accounts(tx)

		acc, err := s.account(ctx, tx, p)
		if err != nil {
			return err
		}
		if acc.HasPassword() {
			return autherr.New(autherr.CodeCredentialAlreadyInUse, "password already linked")
		}
		switch acc.Email {
		case email:
		case "":
			acc, err = accounts.UpdateEmail(ctx, acc.ID, email)
			if err != nil {
				if errors.Is(err, common.ErrorAlreadyExists) {
					return autherr.New(autherr.CodeEmailAlreadyInUse, email)
				}
				return fmt.Errorf("error setting email: %w", err)
			}
		default:
			return autherr.New(autherr.CodeInvalidArgument, "email does not match the account")
		}

		if err := accounts.SetPassword(ctx, acc.ID, salt, verifier); err != nil {
			return fmt.Errorf("error setting password: %w", err)
		}
		acc.Salt, acc.Verifier = salt, verifier

		ident, err = s.identityOf(ctx, tx, acc)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ident, nil
}

func (s *AccountService) linkFederated(ctx context.Context, p auth.Principal, cred identity.Credential) (*identity.Identity, error) {
	provider := string(cred.Provider)
	profile, err := s.exchange(ctx, provider, cred.State, cred.Code)
	if err != nil {
		return nil, err
	}

	links := s.repomanager.FederatedIdentities(s.db)

	existing, err := links.Find(ctx, provider, profile.Subject)
	switch {
	case err == nil && existing.AccountID != p.UserID:
		return nil, autherr.ErrCredentialAlreadyInUse
	case err == nil:
		return s.Identity(ctx, p)
	case !errors.Is(err, common.ErrorNotFound):
		return nil, fmt.Errorf("error finding federated identity: %w", err)
	}

	acc, err := s.account(ctx, s.db, p)
	if err != nil {
		return nil, err
	}
	current, err := links.ListByAccount(ctx, acc.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing linked providers: %w", err)
	}
	if slices.ContainsFunc(current, func(l models.FederatedIdentity) bool { return l.Provider == provider }) {
		return nil, autherr.New(autherr.CodeCredentialAlreadyInUse, provider+" already linked")
	}

	err = links.Link(ctx, &models.FederatedIdentity{
		Provider:  provider,
		Subject:   profile.Subject,
		AccountID: acc.ID,
		Email:     profile.Email,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, autherr.ErrCredentialAlreadyInUse
		}
		return nil, fmt.Errorf("error linking federated identity: %w", err)
	}

	s.logger.Info(ctx, "credential linked", "uid", acc.ID, "provider", provider)
	return s.identityOf(ctx, s.db, acc)
}

// Reauthenticate proves the caller's identity again and returns tokens
// whose auth time is now.
func (s *AccountService) Reauthenticate(ctx context.Context, p auth.Principal, cred identity.Credential) (*AuthResult, error) {
	acc, err := s.account(ctx, s.db, p)
	if err != nil {
		return nil, err
	}

	if cred.Provider == identity.ProviderPassword {
		email, err := identity.NormalizeEmail(cred.Email)
		if err != nil || email != acc.Email {
			return nil, autherr.ErrInvalidCredentials
		}
		if err := s.throttle(ctx, email); err != nil {
			return nil, err
		}
		if !acc.HasPassword() || !cryptox.CheckPassword(cred.Password, acc.Salt, acc.Verifier) {
			return nil, autherr.ErrInvalidCredentials
		}
	} else {
		provider := string(cred.Provider)
		profile, err := s.exchange(ctx, provider, cred.State, cred.Code)
		if err != nil {
			return nil, err
		}
		link, err := s.repomanager.FederatedIdentities(s.db).Find(ctx, provider, profile.Subject)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil, autherr.ErrInvalidCredentials
			}
			return nil, fmt.Errorf("error finding federated identity: %w", err)
		}
		if link.AccountID != acc.ID {
			return nil, autherr.New(autherr.CodeInvalidCredentials, "credential belongs to another user")
		}
	}

	return s.startSession(ctx, s.db, acc, false)
}
