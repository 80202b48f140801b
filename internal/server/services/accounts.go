// Package services contains the server-side business logic: accounts and
// their sessions, federated sign-in, action codes, profile documents and
// avatar uploads.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/esgportal/internal/autherr"
	"github.com/dmitrijs2005/esgportal/internal/common"
	"github.com/dmitrijs2005/esgportal/internal/cryptox"
	"github.com/dmitrijs2005/esgportal/internal/dbx"
	"github.com/dmitrijs2005/esgportal/internal/identity"
	"github.com/dmitrijs2005/esgportal/internal/logging"
	"github.com/dmitrijs2005/esgportal/internal/server/auth"
	"github.com/dmitrijs2005/esgportal/internal/server/config"
	"github.com/dmitrijs2005/esgportal/internal/server/federation"
	"github.com/dmitrijs2005/esgportal/internal/server/metrics"
	"github.com/dmitrijs2005/esgportal/internal/server/models"
	"github.com/dmitrijs2005/esgportal/internal/server/repositories/repomanager"
)

const refreshTokenSize = 32

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthResult is returned by every operation that starts or renews a session.
type AuthResult struct {
	Identity  *identity.Identity
	Tokens    *TokenPair
	IsNewUser bool
}

// AccountService owns accounts, their login methods and their sessions.
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
	jwtSecret   []byte
	providers   federation.Registry
	mailer      Mailer
	limiter     *KeyedLimiter
	metrics     metrics.Recorder
	logger      logging.Logger
	now         func() time.Time
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config,
	providers federation.Registry, mailer Mailer, limiter *KeyedLimiter, rec metrics.Recorder, l logging.Logger) *AccountService {
	return &AccountService{
		db:          db,
		repomanager: m,
		config:      cfg,
		jwtSecret:   []byte(cfg.SecretKey),
		providers:   providers,
		mailer:      mailer,
		limiter:     limiter,
		metrics:     rec,
		logger:      l.With("module", "accounts"),
		now:         time.Now,
	}
}

// issueTokens mints an access token and stores a fresh refresh token.
// authTime is carried in both.
func (s *AccountService) issueTokens(ctx context.Context, db dbx.DBTX, userID string, authTime time.Time) (*TokenPair, error) {
	accessToken, err := auth.GenerateToken(userID, authTime, s.jwtSecret, s.config.AccessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("error generating access token: %w", err)
	}

	refreshToken, err := common.MakeRandHexString(refreshTokenSize)
	if err != nil {
		return nil, fmt.Errorf("error generating refresh token: %w", err)
	}

	err = s.repomanager.RefreshTokens(db).Create(ctx, userID, refreshToken, s.config.RefreshTokenValidityDuration, authTime)
	if err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// identityOf builds the wire identity of acc, listing every linked login
// method.
func (s *AccountService) identityOf(ctx context.Context, db dbx.DBTX, acc *models.Account) (*identity.Identity, error) {
	links, err := s.repomanager.FederatedIdentities(db).ListByAccount(ctx, acc.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing linked providers: %w", err)
	}

	ident := &identity.Identity{
		UID:           acc.ID,
		Email:         acc.Email,
		DisplayName:   acc.DisplayName,
		PhotoURL:      acc.PhotoURL,
		EmailVerified: acc.EmailVerified,
		ProviderID:    identity.ProviderTag(acc.ProviderID),
		CreatedAt:     acc.CreatedAt,
		LastLoginAt:   acc.LastLoginAt,
	}
	if acc.HasPassword() {
		ident.Providers = append(ident.Providers, identity.ProviderPassword)
	}
	for _, l := range links {
		ident.Providers = append(ident.Providers, identity.ProviderTag(l.Provider))
	}
	return ident, nil
}

// startSession records the login and issues tokens for acc.
func (s *AccountService) startSession(ctx context.Context, db dbx.DBTX, acc *models.Account, isNew bool) (*AuthResult, error) {
	now := s.now()
	if !isNew {
		if err := s.repomanager.Accounts(db).TouchLastLogin(ctx, acc.ID); err != nil {
			return nil, fmt.Errorf("error touching last login: %w", err)
		}
		acc.LastLoginAt = now
	}

	tokens, err := s.issueTokens(ctx, db, acc.ID, now)
	if err != nil {
		return nil, err
	}
	ident, err := s.identityOf(ctx, db, acc)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Identity: ident, Tokens: tokens, IsNewUser: isNew}, nil
}

// SignUp creates a password account and signs it in.
func (s *AccountService) SignUp(ctx context.Context, email, password string) (*AuthResult, error) {
	email, err := identity.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if err := identity.CheckPassword(password, identity.MinPasswordLength); err != nil {
		return nil, err
	}

	salt, verifier := cryptox.HashPassword(password)

	var result *AuthResult
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		acc, err := s.repomanager.Accounts(tx).Create(ctx, &models.Account{
			Email:      email,
			Salt:       salt,
			Verifier:   verifier,
			ProviderID: string(identity.ProviderPassword),
		})
		if err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return autherr.New(autherr.CodeEmailAlreadyInUse, email)
			}
			return fmt.Errorf("error creating account: %w", err)
		}

		result, err = s.startSession(ctx, tx, acc, true)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordSignUp(string(identity.ProviderPassword))
	s.logger.Info(ctx, "account created", "uid", result.Identity.UID, "provider", identity.ProviderPassword)
	return result, nil
}

// checkPassword loads the account behind email and verifies password. Every
// mismatch is reported as invalid credentials.
func (s *AccountService) checkPassword(ctx context.Context, email, password string) (*models.Account, error) {
	acc, err := s.repomanager.Accounts(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, autherr.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading account: %w", err)
	}
	if !acc.HasPassword() || !cryptox.CheckPassword(password, acc.Salt, acc.Verifier) {
		return nil, autherr.ErrInvalidCredentials
	}
	return acc, nil
}

// throttle refuses the attempt when email is over its sign-in budget.
func (s *AccountService) throttle(ctx context.Context, email string) error {
	if s.limiter.Allow(email) {
		return nil
	}
	s.metrics.RecordSignInThrottled()
	s.logger.Warn(ctx, "sign-in rate limit exceeded", "email", email)
	return autherr.ErrTooManyRequests
}

// SignIn checks an email/password pair and starts a session.
func (s *AccountService) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	email, err := identity.NormalizeEmail(email)
	if err != nil {
		return nil, autherr.ErrInvalidCredentials
	}
	if err := s.throttle(ctx, email); err != nil {
		return nil, err
	}

	acc, err := s.checkPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return s.startSession(ctx, s.db, acc, false)
}

// Refresh redeems a refresh token for a new token pair. The auth time of
// the old session carries over.
func (s *AccountService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	if refreshToken == "" {
		return nil, autherr.New(autherr.CodeNotAuthenticated, "missing refresh token")
	}

	var result *AuthResult
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		token, err := s.repomanager.RefreshTokens(tx).Take(ctx, refreshToken)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return autherr.New(autherr.CodeNotAuthenticated, "refresh token revoked")
			}
			return fmt.Errorf("error redeeming refresh token: %w", err)
		}
		if token.Expires.Before(s.now()) {
			return autherr.New(autherr.CodeNotAuthenticated, common.ErrRefreshTokenExpired.Error())
		}

		acc, err := s.repomanager.Accounts(tx).GetByID(ctx, token.UserID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return autherr.New(autherr.CodeNotAuthenticated, "account deleted")
			}
			return fmt.Errorf("error loading account: %w", err)
		}

		tokens, err := s.issueTokens(ctx, tx, acc.ID, token.AuthTime)
		if err != nil {
			return err
		}
		ident, err := s.identityOf(ctx, tx, acc)
		if err != nil {
			return err
		}
		result = &AuthResult{Identity: ident, Tokens: tokens}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SignOut revokes refreshToken. Unknown tokens are ignored.
func (s *AccountService) SignOut(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.repomanager.RefreshTokens(s.db).Delete(ctx, refreshToken); err != nil {
		return fmt.Errorf("error deleting refresh token: %w", err)
	}
	return nil
}

// account loads the caller's account.
func (s *AccountService) account(ctx context.Context, db dbx.DBTX, p auth.Principal) (*models.Account, error) {
	acc, err := s.repomanager.Accounts(db).GetByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, autherr.New(autherr.CodeUserNotFound, p.UserID)
		}
		return nil, fmt.Errorf("error loading account: %w", err)
	}
	return acc, nil
}

// Identity returns the caller's current identity.
func (s *AccountService) Identity(ctx context.Context, p auth.Principal) (*identity.Identity, error) {
	acc, err := s.account(ctx, s.db, p)
	if err != nil {
		return nil, err
	}
	return s.identityOf(ctx, s.db, acc)
}

func (s *AccountService) requireRecentLogin(p auth.Principal) error {
	if !p.AuthenticatedSince(s.now(), s.config.RecentLoginWindow) {
		return autherr.ErrRequiresRecentLogin
	}
	return nil
}

// UpdateProfile changes the display name and/or photo URL.
func (s *AccountService) UpdateProfile(ctx context.Context, p auth.Principal, displayName, photoURL *string) (*identity.Identity, error) {
	repo := s.repomanager.Accounts(s.db)

	if displayName == nil && photoURL == nil {
		return s.Identity(ctx, p)
	}
	acc, err := repo.UpdateProfile(ctx, p.UserID, displayName, photoURL)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, autherr.New(autherr.CodeUserNotFound, p.UserID)
		}
		return nil, fmt.Errorf("error updating profile: %w", err)
	}
	return s.identityOf(ctx, s.db, acc)
}

// UpdateEmail changes the address, which then needs verifying again.
// Pending verification codes for the old address are voided.
func (s *AccountService) UpdateEmail(ctx context.Context, p auth.Principal, email string) (*identity.Identity, error) {
	if err := s.requireRecentLogin(p); err != nil {
		return nil, err
	}
	email, err := identity.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	var ident *identity.Identity
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		acc, err := s.repomanager.Accounts(tx).UpdateEmail(ctx, p.UserID, email)
		if err != nil {
			switch {
			case errors.Is(err, common.ErrorAlreadyExists):
				return autherr.New(autherr.CodeEmailAlreadyInUse, email)
			case errors.Is(err, common.ErrorNotFound):
				return autherr.New(autherr.CodeUserNotFound, p.UserID)
			}
			return fmt.Errorf("error updating email: %w", err)
		}
		if err := s.repomanager.ActionCodes(tx).DeleteByAccount(ctx, p.UserID, models.PurposeVerifyEmail); err != nil {
			return fmt.Errorf("error voiding verification codes: %w", err)
		}
		ident, err = s.identityOf(ctx, tx, acc)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ident, nil
}

// UpdatePassword sets a new password. Accounts without an email cannot
// have one.
func (s *AccountService) UpdatePassword(ctx context.Context, p auth.Principal, password string) error {
	if err := s.requireRecentLogin(p); err != nil {
		return err
	}
	if err := identity.CheckPassword(password, identity.MinPasswordLength); err != nil {
		return err
	}

	acc, err := s.account(ctx, s.db, p)
	if err != nil {
		return err
	}
	if acc.Email == "" {
		return autherr.New(autherr.CodeInvalidArgument, "account has no email")
	}

	salt, verifier := cryptox.HashPassword(password)
	if err := s.repomanager.Accounts(s.db).SetPassword(ctx, acc.ID, salt, verifier); err != nil {
		return fmt.Errorf("error setting password: %w", err)
	}
	return nil
}

// DeleteUser removes the account together with its profile record, links,
// tokens and codes.
func (s *AccountService) DeleteUser(ctx context.Context, p auth.Principal) error {
	if err := s.requireRecentLogin(p); err != nil {
		return err
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Profiles(tx).Delete(ctx, p.UserID); err != nil {
			return fmt.Errorf("error deleting profile: %w", err)
		}
		if err := s.repomanager.Accounts(tx).Delete(ctx, p.UserID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return autherr.New(autherr.CodeUserNotFound, p.UserID)
			}
			return fmt.Errorf("error deleting account: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "account deleted", "uid", p.UserID)
	return nil
}
