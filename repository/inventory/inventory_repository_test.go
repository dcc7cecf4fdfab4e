package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms/constant"
	"github.com/muhammadheryan/wms/model"
	cerr "github.com/muhammadheryan/wms/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var balanceCols = []string{"id", "warehouse_id", "product_id", "available_qty", "locked_qty", "warning_threshold", "updated_at"}

func newMockRepo(t *testing.T) (InventoryRepository, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewInventoryRepository(db), db, mock
}

func beginTx(t *testing.T, db *sqlx.DB, mock sqlmock.Sqlmock) *sqlx.Tx {
	t.Helper()
	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)
	return tx
}

const lockQuery = `SELECT .* FROM inventory WHERE warehouse_id = \? AND product_id = \? FOR UPDATE`

func expectLock(mock sqlmock.Sqlmock, wh, product uint64, available, locked int64) {
	mock.ExpectQuery(lockQuery).
		WithArgs(wh, product).
		WillReturnRows(sqlmock.NewRows(balanceCols).AddRow(11, wh, product, available, locked, 10, time.Now()))
}

func TestAdjustTx(t *testing.T) {
	t.Run("reserve moves available to locked", func(t *testing.T) {
		repo, db, mock := newMockRepo(t)
		tx := beginTx(t, db, mock)

		expectLock(mock, 1, 1, 50, 0)
		mock.ExpectExec(`UPDATE inventory SET available_qty = \?, locked_qty = \?, updated_at = \? WHERE id = \?`).
			WithArgs(int64(45), int64(5), sqlmock.AnyArg(), uint64(11)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		change, err := repo.AdjustTx(context.Background(), tx, &model.AdjustRequest{
			WarehouseID: 1, ProductID: 1, DeltaAvailable: -5, DeltaLocked: 5,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(50), change.Before.AvailableQty)
		assert.Equal(t, int64(45), change.After.AvailableQty)
		assert.Equal(t, int64(5), change.After.LockedQty)
		assert.Equal(t, change.Before.OnHand(), change.After.OnHand())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative available is rejected without update", func(t *testing.T) {
		repo, db, mock := newMockRepo(t)
		tx := beginTx(t, db, mock)

		expectLock(mock, 1, 1, 40, 0)

		change, err := repo.AdjustTx(context.Background(), tx, &model.AdjustRequest{
			WarehouseID: 1, ProductID: 1, DeltaAvailable: -100,
		})
		assert.Nil(t, change)
		assert.True(t, cerr.Is(err, constant.ErrInsufficientStock))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative locked is rejected", func(t *testing.T) {
		repo, db, mock := newMockRepo(t)
		tx := beginTx(t, db, mock)

		expectLock(mock, 1, 1, 40, 2)

		_, err := repo.AdjustTx(context.Background(), tx, &model.AdjustRequest{
			WarehouseID: 1, ProductID: 1, DeltaLocked: -3,
		})
		assert.True(t, cerr.Is(err, constant.ErrInsufficientStock))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lock wait timeout surfaces as conflict", func(t *testing.T) {
		repo, db, mock := newMockRepo(t)
		tx := beginTx(t, db, mock)

		mock.ExpectQuery(`FOR UPDATE`).
			WithArgs(uint64(1), uint64(1)).
			WillReturnError(&mysql.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded; try restarting transaction"})

		_, err := repo.AdjustTx(context.Background(), tx, &model.AdjustRequest{
			WarehouseID: 1, ProductID: 1, DeltaAvailable: 10,
		})
		assert.True(t, cerr.Is(err, constant.ErrConflict))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLockBalanceTx(t *testing.T) {
	t.Run("existing row is locked without insert", func(t *testing.T) {
		repo, db, mock := newMockRepo(t)
		tx := beginTx(t, db, mock)

		expectLock(mock, 2, 1, 20, 0)

		b, err := repo.LockBalanceTx(context.Background(), tx, model.BalanceKey{WarehouseID: 2, ProductID: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(20), b.AvailableQty)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is created then locked", func(t *testing.T) {
		repo, db, mock := newMockRepo(t)
		tx := beginTx(t, db, mock)

		mock.ExpectQuery(lockQuery).
			WithArgs(uint64(1), uint64(4)).
			WillReturnRows(sqlmock.NewRows(balanceCols))
		mock.ExpectExec(`INSERT IGNORE INTO inventory`).
			WithArgs(uint64(1), uint64(4), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(12, 1))
		expectLock(mock, 1, 4, 0, 0)

		b, err := repo.LockBalanceTx(context.Background(), tx, model.BalanceKey{WarehouseID: 1, ProductID: 4})
		require.NoError(t, err)
		assert.Equal(t, int64(0), b.OnHand())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deadlock on create surfaces as conflict", func(t *testing.T) {
		repo, db, mock := newMockRepo(t)
		tx := beginTx(t, db, mock)

		mock.ExpectQuery(lockQuery).
			WithArgs(uint64(1), uint64(4)).
			WillReturnRows(sqlmock.NewRows(balanceCols))
		mock.ExpectExec(`INSERT IGNORE INTO inventory`).
			WithArgs(uint64(1), uint64(4), sqlmock.AnyArg()).
			WillReturnError(&mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"})

		_, err := repo.LockBalanceTx(context.Background(), tx, model.BalanceKey{WarehouseID: 1, ProductID: 4})
		assert.True(t, cerr.Is(err, constant.ErrConflict))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestList_ScopedAndParameterized(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	viewCols := []string{"id", "warehouse_id", "product_id", "sku", "product_name", "available_qty", "locked_qty", "warning_threshold"}
	mock.ExpectQuery(`WHERE true AND i.warehouse_id IN \(\?, \?\) AND p.sku LIKE \? ORDER BY`).
		WithArgs(uint64(1), uint64(2), `%50\%%`).
		WillReturnRows(sqlmock.NewRows(viewCols).AddRow(1, 1, 1, "SKU-50%", "Widget", 50, 0, 10))

	got, err := repo.List(context.Background(), &model.InventoryFilter{
		SKU:          "50%",
		WarehouseIDs: []uint64{1, 2},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "SKU-50%", got[0].SKU)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_EmptyScopeShortCircuits(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	got, err := repo.List(context.Background(), &model.InventoryFilter{WarehouseIDs: []uint64{}})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
