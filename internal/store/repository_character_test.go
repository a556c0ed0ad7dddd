// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/agent-portal/internal/logger"
	"github.com/MKhiriev/agent-portal/migrations"
	"github.com/MKhiriev/agent-portal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	insertSQL          = regexp.QuoteMeta("INSERT INTO characters (id,name,description,picture_url) VALUES (?,?,?,?)")
	insertOrIgnoreSQL  = regexp.QuoteMeta("INSERT OR IGNORE INTO characters (id,name,description,picture_url) VALUES (?,?,?,?)")
	insertOnConflict   = regexp.QuoteMeta("INSERT INTO characters (id,name,description,picture_url) VALUES ($1,$2,$3,$4) ON CONFLICT (id) DO NOTHING")
	selectAllSQL       = regexp.QuoteMeta("SELECT id, name, description, picture_url FROM characters ORDER BY name ASC, id ASC")
	deleteAllSQL       = regexp.QuoteMeta("DELETE FROM characters")
	savepointSQL       = regexp.QuoteMeta(createSavepoint)
	releaseSQL         = regexp.QuoteMeta(releaseSavepoint)
	rollbackToSQL      = regexp.QuoteMeta(rollbackToSavepoint)
	characterTableCols = []string{"id", "name", "description", "picture_url"}
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestRepo(t *testing.T, dialect string) (CharacterRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock := newTestDB(t)

	var classifier ErrorClassificator = NewSQLiteErrorClassifier()
	if dialect == migrations.DialectPostgres {
		classifier = NewPostgresErrorClassifier()
	}

	return NewCharacterRepository(newDB(conn, dialect, classifier, logger.Nop()), logger.Nop()), mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// ── GetAllCharacters ──────────────────────────────────────────────────────────

func TestGetAllCharacters_Success(t *testing.T) {
	repo, mock := newTestRepo(t, migrations.DialectSQLite)

	mock.ExpectQuery(selectAllSQL).WillReturnRows(
		sqlmock.NewRows(characterTableCols).
			AddRow(int64(2), "A", "", "http://img/2.jpg").
			AddRow(int64(1), "B", "desc", "http://img/1.png"),
	)

	got, err := repo.GetAllCharacters(testContext())
	require.NoError(t, err)
	assert.Equal(t, []models.Character{
		{ID: 2, Name: "A", PictureURL: "http://img/2.jpg"},
		{ID: 1, Name: "B", Description: "desc", PictureURL: "http://img/1.png"},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllCharacters_Empty(t *testing.T) {
	repo, mock := newTestRepo(t, migrations.DialectSQLite)
	mock.ExpectQuery(selectAllSQL).WillReturnRows(sqlmock.NewRows(characterTableCols))

	got, err := repo.GetAllCharacters(testContext())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetAllCharacters_QueryError(t *testing.T) {
	repo, mock := newTestRepo(t, migrations.DialectSQLite)
	mock.ExpectQuery(selectAllSQL).WillReturnError(errors.New("disk I/O error"))

	_, err := repo.GetAllCharacters(testContext())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetAllCharacters_ScanError(t *testing.T) {
	repo, mock := newTestRepo(t, migrations.DialectSQLite)
	mock.ExpectQuery(selectAllSQL).WillReturnRows(
		sqlmock.NewRows(characterTableCols).AddRow("not-a-number", "A", "", ""),
	)

	_, err := repo.GetAllCharacters(testContext())
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestGetAllCharacters_RowsError(t *testing.T) {
	repo, mock := newTestRepo(t, migrations.DialectSQLite)
	mock.ExpectQuery(selectAllSQL).WillReturnRows(
		sqlmock.NewRows(characterTableCols).
			AddRow(int64(1), "A", "", "").
			RowError(0, errors.New("row broke")),
	)

	_, err := repo.GetAllCharacters(testContext())
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── DeleteAllCharacters ───────────────────────────────────────────────────────

func TestDeleteAllCharacters_Success(t *testing.T) {
	repo, mock := newTestRepo(t, migrations.DialectSQLite)

	mock.ExpectBegin()
	mock.ExpectExec(deleteAllSQL).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteAllCharacters(testContext()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAllCharacters_ExecError(t *testing.T) {
	repo, mock := newTestRepo(t, migrations.DialectSQLite)

	mock.ExpectBegin()
	mock.ExpectExec(deleteAllSQL).WillReturnError(errors.New("locked"))
	mock.ExpectRollback()

	err := repo.DeleteAllCharacters(testContext())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAllCharacters_BeginError(t *testing.T) {
	repo, mock := newTestRepo(t, migrations.DialectSQLite)
	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := repo.DeleteAllCharacters(testContext())
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

// ── characterTx ───────────────────────────────────────────────────────────────

func TestCharacterTx_InsertAndCommit(t *testing.T) {
	repo, mock := newTestRepo(t, migrations.DialectSQLite)
	target := models.Character{ID: 1, Name: "Spectrum", PictureURL: "http://img/1.jpg"}
	associate := models.Character{ID: 2, Name: "X"}

	mock.ExpectBegin()
	mock.ExpectExec(savepointSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(insertSQL).
		WithArgs(target.ID, target.Name, target.Description, target.PictureURL).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(releaseSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(insertOrIgnoreSQL).
		WithArgs(associate.ID, associate.Name, associate.Description, associate.PictureURL).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	ctx := testContext()
	tx, err := repo.Begin(ctx)
	require.NoError(t, err)

	require.NoError(t, tx.InsertCharacter(ctx, target))
	require.NoError(t, tx.InsertCharacterOrIgnore(ctx, associate))
	require.NoError(t, tx.Commit())
	require.NoError(t, tx.Rollback(), "rollback after commit is a no-op")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCharacterTx_InsertDuplicateSQLite(t *testing.T) {
	repo, mock := newTestRepo(t, migrations.DialectSQLite)

	mock.ExpectBegin()
	mock.ExpectExec(savepointSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(insertSQL).WillReturnError(sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintPrimaryKey,
	})
	mock.ExpectExec(rollbackToSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(insertOrIgnoreSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	ctx := testContext()
	tx, err := repo.Begin(ctx)
	require.NoError(t, err)

	err = tx.InsertCharacter(ctx, models.Character{ID: 1, Name: "Spectrum"})
	assert.ErrorIs(t, err, ErrCharacterAlreadyExists)

	// the transaction stays usable after the duplicate
	require.NoError(t, tx.InsertCharacterOrIgnore(ctx, models.Character{ID: 1, Name: "Spectrum"}))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCharacterTx_InsertDuplicatePostgres(t *testing.T) {
	repo, mock := newTestRepo(t, migrations.DialectPostgres)

	mock.ExpectBegin()
	mock.ExpectExec(savepointSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO characters (id,name,description,picture_url) VALUES ($1,$2,$3,$4)")).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectExec(rollbackToSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(insertOnConflict).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	ctx := testContext()
	tx, err := repo.Begin(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, tx.InsertCharacter(ctx, models.Character{ID: 1}), ErrCharacterAlreadyExists)
	require.NoError(t, tx.InsertCharacterOrIgnore(ctx, models.Character{ID: 2}))
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCharacterTx_InsertOtherError(t *testing.T) {
	repo, mock := newTestRepo(t, migrations.DialectSQLite)

	mock.ExpectBegin()
	mock.ExpectExec(savepointSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(insertSQL).WillReturnError(errors.New("disk full"))
	mock.ExpectExec(rollbackToSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	ctx := testContext()
	tx, err := repo.Begin(ctx)
	require.NoError(t, err)

	err = tx.InsertCharacter(ctx, models.Character{ID: 1})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrCharacterAlreadyExists)
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCharacterTx_InsertOrIgnoreError(t *testing.T) {
	repo, mock := newTestRepo(t, migrations.DialectSQLite)

	mock.ExpectBegin()
	mock.ExpectExec(insertOrIgnoreSQL).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	ctx := testContext()
	tx, err := repo.Begin(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, tx.InsertCharacterOrIgnore(ctx, models.Character{ID: 1}), ErrExecutingStatement)
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCharacterTx_CommitError(t *testing.T) {
	repo, mock := newTestRepo(t, migrations.DialectSQLite)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	tx, err := repo.Begin(testContext())
	require.NoError(t, err)

	assert.ErrorIs(t, tx.Commit(), ErrCommitingTransaction)
}

func TestBegin_Error(t *testing.T) {
	repo, mock := newTestRepo(t, migrations.DialectSQLite)
	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	_, err := repo.Begin(testContext())
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}
