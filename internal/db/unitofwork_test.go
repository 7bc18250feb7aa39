package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/danielgrube/chronostaff/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countSettings(t *testing.T, q db.DBTX, key string) int {
	t.Helper()
	var n int
	require.NoError(t, q.QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM settings WHERE key = ?`, key).Scan(&n))
	return n
}

func TestUnitOfWork_CommitsOnSuccess(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()
	uow := db.NewSQLiteUnitOfWork(database)

	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO settings (key, value) VALUES ('uow_commit_key', 'yes')`)
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, 1, countSettings(t, database, "uow_commit_key"))
}

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()
	uow := db.NewSQLiteUnitOfWork(database)

	boom := errors.New("merge failed")
	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO settings (key, value) VALUES ('uow_doomed_key', 'no')`); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, 0, countSettings(t, database, "uow_doomed_key"))
}

func TestUnitOfWork_RollsBackOnPanic(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()
	uow := db.NewSQLiteUnitOfWork(database)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO settings (key, value) VALUES ('uow_panic_key', 'no')`); err != nil {
				return err
			}
			panic("mid-transaction failure")
		})
	})

	assert.Equal(t, 0, countSettings(t, database, "uow_panic_key"))
}
