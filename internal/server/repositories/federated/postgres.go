// Package federated provides a PostgreSQL-backed repository of external
// provider subjects linked to accounts.
package federated

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

// Find returns the link for provider and subject, or common.ErrorNotFound.
func (r *PostgresRepository) Find(ctx context.Context, provider, subject string) (*models.FederatedIdentity, error) {
	query :=
		`SELECT provider, subject, account_id, email
		 FROM federated_identities
		 WHERE provider = $1 AND subject = $2`

	fi := &models.FederatedIdentity{}
	err := r.db.QueryRowContext(ctx, query, provider, subject).Scan(&fi.Provider, &fi.Subject, &fi.AccountID, &fi.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return fi, nil
}

// Link stores fi. The subject being linked elsewhere, or the account
// already having a link for the provider, yields common.ErrorAlreadyExists.
func (r *PostgresRepository) Link(ctx context.Context, fi *models.FederatedIdentity) error {
	query :=
		`INSERT INTO federated_identities (provider, subject, account_id, email)
		 VALUES ($1, $2, $3, $4)`

	if _, err := r.db.ExecContext(ctx, query, fi.Provider, fi.Subject, fi.AccountID, fi.Email); err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByAccount(ctx context.Context, accountID string) ([]models.FederatedIdentity, error) {
	query :=
		`SELECT provider, subject, account_id, email
		 FROM federated_identities
		 WHERE account_id = $1
		 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.FederatedIdentity
	for rows.Next() {
		var fi models.FederatedIdentity
		if err := rows.Scan(&fi.Provider, &fi.Subject, &fi.AccountID, &fi.Email); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, fi)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
