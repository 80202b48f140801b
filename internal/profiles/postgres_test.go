package profiles

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/esgportal/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreWithMock(t *testing.T) (*PostgresStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresStore(db), mock, db
}

var columns = []string{"uid", "email", "display_name", "photo_url", "email_verified", "is_admin",
	"roles", "extensions", "created_at", "updated_at", "last_login_at"}

func TestPostgresGet_Found(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	q := `(?s)^SELECT\s+uid,\s*email,.*last_login_at\s+FROM\s+profiles\s+WHERE\s+uid\s*=\s*\$1$`
	mock.ExpectQuery(q).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("u1", "a@x.com", "Ann", "", true, true, []byte(`["user","admin"]`), []byte(`{"sector":"energy"}`), ts, ts, ts))

	rec, err := store.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", rec.Email)
	assert.True(t, rec.IsAdmin)
	assert.Equal(t, []string{"admin", "user"}, rec.Roles)
	assert.JSONEq(t, `"energy"`, string(rec.Extensions["sector"]))
	assert.Equal(t, ts, rec.LastLoginAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGet_EmptyRolesFallBackToDefault(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	ts := time.Now()
	mock.ExpectQuery(`FROM\s+profiles`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("u1", "", "", "", false, false, []byte(`[]`), []byte(`{}`), ts, ts, ts))

	rec, err := store.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"user"}, rec.Roles)
	assert.Nil(t, rec.Extensions)
}

func TestPostgresGet_NotFound(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+profiles`).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := store.Get(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestPostgresGet_DBError(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+profiles`).WithArgs("u1").WillReturnError(errors.New("db down"))

	_, err := store.Get(context.Background(), "u1")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestPostgresCreate(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	ts := time.Now().UTC()
	q := `(?s)^INSERT\s+INTO\s+profiles\s*\(uid,.*\)\s*VALUES\s*\(\$1,.*\$8\)\s*ON\s+CONFLICT\s+\(uid\)\s+DO\s+NOTHING\s+RETURNING\s+uid,`
	mock.ExpectQuery(q).
		WithArgs("u1", "a@x.com", "", "", false, false, `["user"]`, `{}`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("u1", "a@x.com", "", "", false, false, []byte(`["user"]`), []byte(`{}`), ts, ts, ts))

	rec, err := store.Create(context.Background(), NewUserRecord("u1", "a@x.com", "", "", false, nil))
	require.NoError(t, err)
	assert.Equal(t, ts, rec.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreate_Conflict(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+profiles`).WillReturnError(sql.ErrNoRows)

	_, err := store.Create(context.Background(), NewUserRecord("u1", "a@x.com", "", "", false, nil))
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestPostgresUpdate(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	ts := time.Now().UTC()
	email, verified := "b@x.com", false
	q := `(?s)^UPDATE\s+profiles\s+SET.*email\s*=\s*COALESCE\(\$2,\s*email\).*updated_at\s*=\s*now\(\)\s+WHERE\s+uid\s*=\s*\$1\s+RETURNING`
	mock.ExpectQuery(q).
		WithArgs("u1", email, nil, nil, verified, nil).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("u1", email, "", "", false, false, []byte(`["user"]`), []byte(`{}`), ts, ts, ts))

	rec, err := store.Update(context.Background(), "u1", Patch{Email: &email, EmailVerified: &verified})
	require.NoError(t, err)
	assert.Equal(t, email, rec.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdate_NotFound(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE\s+profiles`).WillReturnError(sql.ErrNoRows)

	name := "x"
	_, err := store.Update(context.Background(), "ghost", Patch{DisplayName: &name})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPostgresTouchLastLogin(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+profiles\s+SET\s+last_login_at\s*=\s*now\(\),\s*updated_at\s*=\s*now\(\)\s+WHERE\s+uid\s*=\s*\$1$`
	mock.ExpectExec(q).WithArgs("u1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("ghost").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.TouchLastLogin(context.Background(), "u1"))
	assert.ErrorIs(t, store.TouchLastLogin(context.Background(), "ghost"), common.ErrorNotFound)
}

func TestPostgresDelete(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	q := `^DELETE\s+FROM\s+profiles\s+WHERE\s+uid\s*=\s*\$1$`
	mock.ExpectExec(q).WithArgs("u1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(q).WithArgs("u2").WillReturnError(errors.New("db err"))

	require.NoError(t, store.Delete(context.Background(), "u1"))

	err := store.Delete(context.Background(), "u2")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestPostgresSetAdmin(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+profiles\s+SET\s+is_admin\s*=\s*\$2,.*WHERE\s+uid\s*=\s*\$1$`
	mock.ExpectExec(q).WithArgs("u1", true).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("ghost", false).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.SetAdmin(context.Background(), "u1", true))
	assert.ErrorIs(t, store.SetAdmin(context.Background(), "ghost", false), common.ErrorNotFound)
}
