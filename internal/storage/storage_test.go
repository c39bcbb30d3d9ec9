package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockKV(t *testing.T) (*SQLiteKV, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSQLiteKV(sqlx.NewDb(db, "sqlmock")), mock
}

func TestGet_Found(t *testing.T) {
	kv, mock := newMockKV(t)

	mock.ExpectQuery(`SELECT value FROM kv WHERE key = ?`).
		WithArgs(KeyToken).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("tok-123"))

	value, found, err := kv.Get(context.Background(), KeyToken)

	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "tok-123", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_Missing(t *testing.T) {
	kv, mock := newMockKV(t)

	mock.ExpectQuery(`SELECT value FROM kv WHERE key = ?`).
		WithArgs(KeyUser).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	value, found, err := kv.Get(context.Background(), KeyUser)

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestGet_QueryError(t *testing.T) {
	kv, mock := newMockKV(t)

	mock.ExpectQuery(`SELECT value FROM kv WHERE key = ?`).
		WithArgs(KeyToken).
		WillReturnError(errors.New("disk I/O error"))

	_, _, err := kv.Get(context.Background(), KeyToken)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read key")
}

func TestSet_Upserts(t *testing.T) {
	kv, mock := newMockKV(t)

	mock.ExpectExec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`).
		WithArgs(KeyToken, "tok-456").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := kv.Set(context.Background(), KeyToken, "tok-456")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	kv, mock := newMockKV(t)

	mock.ExpectExec(`DELETE FROM kv WHERE key = ?`).
		WithArgs(KeyUser).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := kv.Delete(context.Background(), KeyUser)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_MissingKeyIsNotAnError(t *testing.T) {
	kv, mock := newMockKV(t)

	mock.ExpectExec(`DELETE FROM kv WHERE key = ?`).
		WithArgs("nope").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, kv.Delete(context.Background(), "nope"))
}
