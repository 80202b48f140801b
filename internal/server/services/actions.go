package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/esgportal/internal/autherr"
	"github.com/dmitrijs2005/esgportal/internal/common"
	"github.com/dmitrijs2005/esgportal/internal/cryptox"
	"github.com/dmitrijs2005/esgportal/internal/dbx"
	"github.com/dmitrijs2005/esgportal/internal/identity"
	"github.com/dmitrijs2005/esgportal/internal/server/auth"
	"github.com/dmitrijs2005/esgportal/internal/server/models"
)

const actionCodeSize = 20

// sendActionCode replaces pending codes of the same purpose with a new one
// and mails it.
func (s *AccountService) sendActionCode(ctx context.Context, acc *models.Account, purpose string) error {
	value, err := common.MakeRandHexString(actionCodeSize)
	if err != nil {
		return fmt.Errorf("error generating action code: %w", err)
	}
	code := &models.ActionCode{
		Code:      value,
		AccountID: acc.ID,
		Purpose:   purpose,
		Email:     acc.Email,
		Expires:   s.now().Add(s.config.ActionCodeValidityDuration),
	}

	repo := s.repomanager.ActionCodes(s.db)
	if err := repo.DeleteByAccount(ctx, acc.ID, purpose); err != nil {
		return fmt.Errorf("error voiding action codes: %w", err)
	}
	if err := repo.Create(ctx, code); err != nil {
		return fmt.Errorf("error storing action code: %w", err)
	}
	if err := s.mailer.SendActionCode(ctx, code); err != nil {
		return autherr.Wrap(autherr.CodeServiceUnavailable, err)
	}
	return nil
}

// takeActionCode redeems code. Unknown, used and expired codes all count as
// expired.
func (s *AccountService) takeActionCode(ctx context.Context, tx dbx.DBTX, code, purpose string) (*models.ActionCode, error) {
	ac, err := s.repomanager.ActionCodes(tx).Take(ctx, code, purpose)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, autherr.New(autherr.CodeExpiredActionCode, "unknown or used code")
		}
		return nil, fmt.Errorf("error redeeming action code: %w", err)
	}
	if ac.Expires.Before(s.now()) {
		return nil, autherr.New(autherr.CodeExpiredActionCode, common.ErrActionCodeExpired.Error())
	}
	return ac, nil
}

// SendPasswordReset mails a reset code. Unknown addresses succeed silently
// so the call cannot be used to probe for accounts.
func (s *AccountService) SendPasswordReset(ctx context.Context, email string) error {
	email, err := identity.NormalizeEmail(email)
	if err != nil {
		return err
	}

	acc, err := s.repomanager.Accounts(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Debug(ctx, "password reset for unknown email", "email", email)
			return nil
		}
		return fmt.Errorf("error loading account: %w", err)
	}

	return s.sendActionCode(ctx, acc, models.PurposeResetPassword)
}

// ConfirmPasswordReset sets a new password with a reset code and revokes
// every session of the account.
func (s *AccountService) ConfirmPasswordReset(ctx context.Context, code, password string) error {
	if err := identity.CheckPassword(password, identity.MinPasswordLength); err != nil {
		return err
	}
	salt, verifier := cryptox.HashPassword(password)

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		ac, err := s.takeActionCode(ctx, tx, code, models.PurposeResetPassword)
		if err != nil {
			return err
		}

		acc, err := s.repomanager.Accounts(tx).GetByID(ctx, ac.AccountID)
		if err != nil {
			return fmt.Errorf("error loading account: %w", err)
		}
		if acc.Email != ac.Email {
			return autherr.New(autherr.CodeExpiredActionCode, "email changed since the code was sent")
		}

		if err := s.repomanager.Accounts(tx).SetPassword(ctx, acc.ID, salt, verifier); err != nil {
			return fmt.Errorf("error setting password: %w", err)
		}
		if err := s.repomanager.RefreshTokens(tx).DeleteByUser(ctx, acc.ID); err != nil {
			return fmt.Errorf("error revoking sessions: %w", err)
		}
		return nil
	})
}

// SendEmailVerification mails a verification code for the caller's
// current address. Verified addresses need nothing.
func (s *AccountService) SendEmailVerification(ctx context.Context, p auth.Principal) error {
	acc, err := s.account(ctx, s.db, p)
	if err != nil {
		return err
	}
	if acc.Email == "" {
		return autherr.New(autherr.CodeInvalidArgument, "account has no email")
	}
	if acc.EmailVerified {
		return nil
	}
	return s.sendActionCode(ctx, acc, models.PurposeVerifyEmail)
}

// VerifyEmail marks the address a verification code was sent to as
// verified. A code for an address the account no longer has is void.
func (s *AccountService) VerifyEmail(ctx context.Context, code string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		ac, err := s.takeActionCode(ctx, tx, code, models.PurposeVerifyEmail)
		if err != nil {
			return err
		}

		err = s.repomanager.Accounts(tx).SetEmailVerified(ctx, ac.AccountID, ac.Email)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return autherr.New(autherr.CodeExpiredActionCode, "email changed since the code was sent")
			}
			return fmt.Errorf("error verifying email: %w", err)
		}
		return nil
	})
}
