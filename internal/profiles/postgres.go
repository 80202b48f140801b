package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/esgportal/internal/common"
	"github.com/dmitrijs2005/esgportal/internal/dbx"
)

// PostgresStore keeps records in the profiles table. Timestamps come from
// now() on the database side.
type PostgresStore struct {
	db dbx.DBTX
}

func NewPostgresStore(db dbx.DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

const recordColumns = `uid, email, display_name, photo_url, email_verified, is_admin, roles, extensions, created_at, updated_at, last_login_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	rec := &Record{}
	var roles, ext []byte
	err := row.Scan(&rec.UID, &rec.Email, &rec.DisplayName, &rec.PhotoURL, &rec.EmailVerified,
		&rec.IsAdmin, &roles, &ext, &rec.CreatedAt, &rec.UpdatedAt, &rec.LastLoginAt)
	if err != nil {
		return nil, err
	}
	if len(roles) > 0 {
		if err := json.Unmarshal(roles, &rec.Roles); err != nil {
			return nil, fmt.Errorf("decode roles: %w", err)
		}
	}
	rec.Roles = NormalizeRoles(rec.Roles)
	if len(ext) > 0 && string(ext) != "{}" && string(ext) != "null" {
		if err := json.Unmarshal(ext, &rec.Extensions); err != nil {
			return nil, fmt.Errorf("decode extensions: %w", err)
		}
	}
	return rec, nil
}

func (s *PostgresStore) Get(ctx context.Context, uid string) (*Record, error) {
	query := `SELECT ` + recordColumns + ` FROM profiles WHERE uid = $1`

	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, uid))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rec, nil
}

func (s *PostgresStore) Create(ctx context.Context, rec *Record) (*Record, error) {
	if rec == nil || rec.UID == "" {
		return nil, common.ErrorValidation
	}

	roles, err := json.Marshal(NormalizeRoles(rec.Roles))
	if err != nil {
		return nil, err
	}
	ext := []byte("{}")
	if len(rec.Extensions) > 0 {
		if ext, err = json.Marshal(rec.Extensions); err != nil {
			return nil, err
		}
	}

	query :=
		`INSERT INTO profiles (uid, email, display_name, photo_url, email_verified, is_admin, roles, extensions)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (uid) DO NOTHING
		 RETURNING ` + recordColumns

	out, err := scanRecord(s.db.QueryRowContext(ctx, query,
		rec.UID, rec.Email, rec.DisplayName, rec.PhotoURL, rec.EmailVerified, rec.IsAdmin, string(roles), string(ext)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Update(ctx context.Context, uid string, patch Patch) (*Record, error) {
	var ext any
	if len(patch.Extensions) > 0 {
		b, err := json.Marshal(patch.Extensions)
		if err != nil {
			return nil, err
		}
		ext = string(b)
	}

	query :=
		`UPDATE profiles SET
		   email = COALESCE($2, email),
		   display_name = COALESCE($3, display_name),
		   photo_url = COALESCE($4, photo_url),
		   email_verified = COALESCE($5, email_verified),
		   extensions = extensions || COALESCE($6::jsonb, '{}'::jsonb),
		   updated_at = now()
		 WHERE uid = $1
		 RETURNING ` + recordColumns

	rec, err := scanRecord(s.db.QueryRowContext(ctx, query,
		uid, nullString(patch.Email), nullString(patch.DisplayName), nullString(patch.PhotoURL),
		nullBool(patch.EmailVerified), ext))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rec, nil
}

func (s *PostgresStore) TouchLastLogin(ctx context.Context, uid string) error {
	query :=
		`UPDATE profiles SET last_login_at = now(), updated_at = now()
		 WHERE uid = $1`

	res, err := s.db.ExecContext(ctx, query, uid)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func (s *PostgresStore) Delete(ctx context.Context, uid string) error {
	query := `DELETE FROM profiles WHERE uid = $1`

	if _, err := s.db.ExecContext(ctx, query, uid); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// SetAdmin sets is_admin and keeps the "admin" role in step with it.
func (s *PostgresStore) SetAdmin(ctx context.Context, uid string, admin bool) error {
	query :=
		`UPDATE profiles SET
		   is_admin = $2,
		   roles = CASE WHEN $2
		             THEN (roles - 'admin') || '["admin"]'::jsonb
		             ELSE COALESCE(NULLIF(roles - 'admin', '[]'::jsonb), '["user"]'::jsonb)
		           END,
		   updated_at = now()
		 WHERE uid = $1`

	res, err := s.db.ExecContext(ctx, query, uid, admin)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func nullBool(p *bool) sql.NullBool {
	if p == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *p, Valid: true}
}
