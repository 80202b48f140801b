package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/esgportal/internal/autherr"
	"github.com/dmitrijs2005/esgportal/internal/common"
	"github.com/dmitrijs2005/esgportal/internal/dbx"
	"github.com/dmitrijs2005/esgportal/internal/identity"
	"github.com/dmitrijs2005/esgportal/internal/server/auth"
	"github.com/dmitrijs2005/esgportal/internal/server/federation"
	"github.com/dmitrijs2005/esgportal/internal/server/models"
)

// stateValidity bounds how long the user may take on the consent screen.
const stateValidity = 10 * time.Minute

func (s *AccountService) provider(tag string) (federation.Provider, error) {
	p, ok := s.providers.Get(identity.ProviderTag(tag))
	if !ok {
		return nil, autherr.New(autherr.CodeUnsupportedProvider, tag)
	}
	return p, nil
}

// FederatedStart returns the consent URL for provider and the state value
// the finishing call must present.
func (s *AccountService) FederatedStart(ctx context.Context, provider string) (authURL, state string, err error) {
	p, err := s.provider(provider)
	if err != nil {
		return "", "", err
	}

	nonce, err := common.MakeRandHexString(16)
	if err != nil {
		return "", "", fmt.Errorf("error generating nonce: %w", err)
	}
	state, err = auth.GenerateStateToken(provider, nonce, s.jwtSecret, stateValidity)
	if err != nil {
		return "", "", fmt.Errorf("error generating state: %w", err)
	}
	return p.AuthCodeURL(state), state, nil
}

// exchange checks state and trades code for the provider's profile.
func (s *AccountService) exchange(ctx context.Context, provider, state, code string) (*federation.Profile, error) {
	p, err := s.provider(provider)
	if err != nil {
		return nil, err
	}
	if code == "" {
		return nil, autherr.ErrPopupClosedByUser
	}
	if err := auth.CheckStateToken(state, provider, s.jwtSecret); err != nil {
		return nil, autherr.New(autherr.CodeInvalidCredentials, "consent state rejected")
	}

	profile, err := p.Exchange(ctx, code)
	if err != nil {
		if errors.Is(err, federation.ErrExchange) {
			return nil, autherr.New(autherr.CodeInvalidCredentials, "authorization code rejected")
		}
		return nil, autherr.Wrap(autherr.CodeServiceUnavailable, err)
	}
	return profile, nil
}

// FederatedFinish completes a federated sign-in. A first sign-in creates
// the account; an existing account with the same email but another login
// method is not taken over.
func (s *AccountService) FederatedFinish(ctx context.Context, provider, state, code string) (*AuthResult, error) {
	profile, err := s.exchange(ctx, provider, state, code)
	if err != nil {
		return nil, err
	}

	var result *AuthResult
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		accounts := s.repomanager.Accounts(tx)
		links := s.repomanager.FederatedIdentities(tx)

		link, err := links.Find(ctx, provider, profile.Subject)
		switch {
		case err == nil:
			acc, err := accounts.GetByID(ctx, link.AccountID)
			if err != nil {
				return fmt.Errorf("error loading linked account: %w", err)
			}
			result, err = s.startSession(ctx, tx, acc, false)
			return err
		case !errors.Is(err, common.ErrorNotFound):
			return fmt.Errorf("error finding federated identity: %w", err)
		}

		acc, err := accounts.Create(ctx, &models.Account{
			Email:         profile.Email,
			DisplayName:   profile.Name,
			PhotoURL:      profile.PictureURL,
			EmailVerified: profile.EmailVerified,
			ProviderID:    provider,
		})
		if err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return autherr.New(autherr.CodeEmailAlreadyInUse, "account exists with a different sign-in method")
			}
			return fmt.Errorf("error creating account: %w", err)
		}
		err = links.Link(ctx, &models.FederatedIdentity{
			Provider:  provider,
			Subject:   profile.Subject,
			AccountID: acc.ID,
			Email:     profile.Email,
		})
		if err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return autherr.ErrCredentialAlreadyInUse
			}
			return fmt.Errorf("error linking federated identity: %w", err)
		}

		result, err = s.startSession(ctx, tx, acc, true)
		return err
	})
	if err != nil {
		return nil, err
	}

	if result.IsNewUser {
		s.metrics.RecordSignUp(provider)
		s.logger.Info(ctx, "account created", "uid", result.Identity.UID, "provider", provider)
	}
	return result, nil
}
