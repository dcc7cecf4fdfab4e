package migration

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func expectCount(mock sqlmock.Sqlmock, table string, n int64) {
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM ` + table).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(n))
}

func TestMigrate(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS warehouses`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Migrate(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeed_EmptyDatabase(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	expectCount(mock, "warehouses", 0)
	mock.ExpectExec(`INSERT INTO warehouses`).WillReturnResult(sqlmock.NewResult(2, 2))
	expectCount(mock, "locations", 0)
	mock.ExpectExec(`INSERT INTO locations`).WillReturnResult(sqlmock.NewResult(2, 2))
	expectCount(mock, "users", 0)
	for _, u := range []string{"admin", "op_a", "op_b"} {
		mock.ExpectExec(`INSERT INTO users`).
			WithArgs(u, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	expectCount(mock, "products", 0)
	mock.ExpectExec(`INSERT INTO products`).WillReturnResult(sqlmock.NewResult(3, 3))
	expectCount(mock, "inventory", 0)
	mock.ExpectExec(`INSERT INTO inventory`).WithArgs(1, 50, 10, sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`INSERT INTO inventory`).WithArgs(2, 20, 5, sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, Seed(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeed_AlreadySeeded(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	for _, table := range []string{"warehouses", "locations", "users", "products", "inventory"} {
		expectCount(mock, table, 2)
	}
	mock.ExpectCommit()

	require.NoError(t, Seed(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeed_RollsBackOnFailure(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	expectCount(mock, "warehouses", 0)
	mock.ExpectExec(`INSERT INTO warehouses`).WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	require.Error(t, Seed(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())
}
