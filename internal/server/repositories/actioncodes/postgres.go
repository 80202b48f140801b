// Package actioncodes provides a PostgreSQL-backed repository for the
// single-use codes sent by email: verification and password reset.
package actioncodes

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

func (r *PostgresRepository) Create(ctx context.Context, code *models.ActionCode) error {
	query :=
		`INSERT INTO action_codes (code, account_id, purpose, email, expires_at)
		 VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.ExecContext(ctx, query, code.Code, code.AccountID, code.Purpose, code.Email, code.Expires); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Take deletes and returns the code. Unknown codes, and codes issued for
// another purpose, yield common.ErrorNotFound.
func (r *PostgresRepository) Take(ctx context.Context, code, purpose string) (*models.ActionCode, error) {
	query :=
		`DELETE FROM action_codes
		 WHERE code = $1 AND purpose = $2
		 RETURNING code, account_id, purpose, email, expires_at`

	ac := &models.ActionCode{}
	err := r.db.QueryRowContext(ctx, query, code, purpose).Scan(&ac.Code, &ac.AccountID, &ac.Purpose, &ac.Email, &ac.Expires)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ac, nil
}

func (r *PostgresRepository) DeleteByAccount(ctx context.Context, accountID, purpose string) error {
	query := `DELETE FROM action_codes WHERE account_id = $1 AND purpose = $2`

	if _, err := r.db.ExecContext(ctx, query, accountID, purpose); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
