// Package accounts provides a PostgreSQL-backed repository for the
// identities known to the server.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/esgportal/internal/common"
	"github.com/dmitrijs2005/esgportal/internal/dbx"
	"github.com/dmitrijs2005/esgportal/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const accountColumns = `id, COALESCE(email, ''), display_name, photo_url, email_verified, salt, verifier, provider_id, created_at, last_login_at`

func scanAccount(row *sql.Row) (*models.Account, error) {
	a := &models.Account{}
	err := row.Scan(&a.ID, &a.Email, &a.DisplayName, &a.PhotoURL, &a.EmailVerified,
		&a.Salt, &a.Verifier, &a.ProviderID, &a.CreatedAt, &a.LastLoginAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

// Create inserts account. A taken email yields common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	query :=
		`INSERT INTO accounts (email, display_name, photo_url, email_verified, salt, verifier, provider_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING ` + accountColumns

	a, err := scanAccount(r.db.QueryRowContext(ctx, query,
		nullIfEmpty(account.Email), account.DisplayName, account.PhotoURL, account.EmailVerified,
		account.Salt, account.Verifier, account.ProviderID))
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, err
	}
	return a, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`
	return scanAccount(r.db.QueryRowContext(ctx, query, email))
}

// UpdateProfile changes the non-nil fields among display name and photo URL.
func (r *PostgresRepository) UpdateProfile(ctx context.Context, id string, displayName, photoURL *string) (*models.Account, error) {
	query :=
		`UPDATE accounts SET
		   display_name = COALESCE($2, display_name),
		   photo_url = COALESCE($3, photo_url)
		 WHERE id = $1
		 RETURNING ` + accountColumns

	return scanAccount(r.db.QueryRowContext(ctx, query, id, nullString(displayName), nullString(photoURL)))
}

// UpdateEmail replaces the email and marks it unverified.
func (r *PostgresRepository) UpdateEmail(ctx context.Context, id, email string) (*models.Account, error) {
	query :=
		`UPDATE accounts SET email = $2, email_verified = FALSE
		 WHERE id = $1
		 RETURNING ` + accountColumns

	a, err := scanAccount(r.db.QueryRowContext(ctx, query, id, email))
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, err
	}
	return a, nil
}

func (r *PostgresRepository) SetPassword(ctx context.Context, id string, salt, verifier []byte) error {
	query := `UPDATE accounts SET salt = $2, verifier = $3 WHERE id = $1`
	return r.exec(ctx, query, id, salt, verifier)
}

// SetEmailVerified marks the email verified, provided it is still email.
func (r *PostgresRepository) SetEmailVerified(ctx context.Context, id, email string) error {
	query := `UPDATE accounts SET email_verified = TRUE WHERE id = $1 AND email = $2`
	return r.exec(ctx, query, id, email)
}

func (r *PostgresRepository) TouchLastLogin(ctx context.Context, id string) error {
	query := `UPDATE accounts SET last_login_at = now() WHERE id = $1`
	return r.exec(ctx, query, id)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM accounts WHERE id = $1`
	return r.exec(ctx, query, id)
}

// exec runs a statement that must touch exactly one account.
func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}
