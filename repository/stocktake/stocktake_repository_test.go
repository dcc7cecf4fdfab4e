package stocktake

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms/constant"
	"github.com/muhammadheryan/wms/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stocktakeCols = []string{"id", "warehouse_id", "status", "created_by", "created_at", "submitted_at"}

func newMockRepo(t *testing.T) (StocktakeRepository, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewStocktakeRepository(db), db, mock
}

func beginTx(t *testing.T, db *sqlx.DB, mock sqlmock.Sqlmock) *sqlx.Tx {
	t.Helper()
	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)
	return tx
}

func TestGetForUpdateTx(t *testing.T) {
	t.Run("locks a draft", func(t *testing.T) {
		repo, db, mock := newMockRepo(t)
		tx := beginTx(t, db, mock)

		mock.ExpectQuery(`SELECT .* FROM stocktakes WHERE id = \? FOR UPDATE`).
			WithArgs(uint64(4)).
			WillReturnRows(sqlmock.NewRows(stocktakeCols).AddRow(4, 1, "DRAFT", 7, time.Now(), nil))

		st, err := repo.GetForUpdateTx(context.Background(), tx, 4)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), st.WarehouseID)
		assert.Nil(t, st.SubmittedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing stocktake is nil", func(t *testing.T) {
		repo, db, mock := newMockRepo(t)
		tx := beginTx(t, db, mock)

		mock.ExpectQuery(`FROM stocktakes WHERE id = \? FOR UPDATE`).
			WithArgs(uint64(4)).
			WillReturnRows(sqlmock.NewRows(stocktakeCols))

		st, err := repo.GetForUpdateTx(context.Background(), tx, 4)
		require.NoError(t, err)
		assert.Nil(t, st)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSubmitTx(t *testing.T) {
	repo, db, mock := newMockRepo(t)
	tx := beginTx(t, db, mock)
	at := time.Now().UTC()

	mock.ExpectExec(`UPDATE stocktakes SET status = \?, submitted_at = \? WHERE id = \?`).
		WithArgs(string(constant.StocktakeStatusSubmitted), at, uint64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SubmitTx(context.Background(), tx, 4, at))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertItemTx(t *testing.T) {
	repo, db, mock := newMockRepo(t)
	tx := beginTx(t, db, mock)

	mock.ExpectExec(`INSERT INTO stocktake_items \(stocktake_id, product_id, counted_qty\) VALUES \(\?, \?, \?\)`).
		WithArgs(uint64(4), uint64(1), int64(30)).
		WillReturnResult(sqlmock.NewResult(17, 1))

	item := &model.StocktakeItem{ProductID: 1, SKU: "SKU-001", CountedQty: 30}
	require.NoError(t, repo.InsertItemTx(context.Background(), tx, 4, item))
	assert.Equal(t, uint64(17), item.ID)
	assert.Equal(t, uint64(4), item.StocktakeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_LoadsItems(t *testing.T) {
	repo, _, mock := newMockRepo(t)
	submitted := time.Now()

	mock.ExpectQuery(`FROM stocktakes WHERE id = \?`).
		WithArgs(uint64(4)).
		WillReturnRows(sqlmock.NewRows(stocktakeCols).AddRow(4, 1, "SUBMITTED", 7, submitted, submitted))
	mock.ExpectQuery(`(?s)FROM stocktake_items i.*WHERE i.stocktake_id = \?`).
		WithArgs(uint64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "stocktake_id", "product_id", "sku", "counted_qty"}).
			AddRow(17, 4, 1, "SKU-001", 30))

	st, err := repo.Get(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, constant.StocktakeStatusSubmitted, st.Status)
	require.Len(t, st.Items, 1)
	assert.Equal(t, int64(30), st.Items[0].CountedQty)
	assert.NoError(t, mock.ExpectationsWereMet())
}
