package stocktake

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms/constant"
	"github.com/muhammadheryan/wms/model"
	txrepo "github.com/muhammadheryan/wms/repository/tx"
)

type SQL struct {
	conn *sqlx.DB
}

type StocktakeRepository interface {
	Insert(ctx context.Context, st *model.Stocktake) (uint64, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, st *model.Stocktake) (uint64, error)
	InsertItemTx(ctx context.Context, tx *sqlx.Tx, stocktakeID uint64, item *model.StocktakeItem) error
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, stocktakeID uint64) (*model.Stocktake, error)
	SubmitTx(ctx context.Context, tx *sqlx.Tx, stocktakeID uint64, submittedAt time.Time) error
	Get(ctx context.Context, stocktakeID uint64) (*model.Stocktake, error)
}

func NewStocktakeRepository(conn *sqlx.DB) StocktakeRepository {
	return &SQL{conn: conn}
}

const (
	stocktakeColumns = `id, warehouse_id, status, created_by, created_at, submitted_at`

	insertStocktakeQuery = `INSERT INTO stocktakes (warehouse_id, status, created_by, created_at, submitted_at) VALUES (?, ?, ?, ?, ?)`
	insertItemQuery      = `INSERT INTO stocktake_items (stocktake_id, product_id, counted_qty) VALUES (?, ?, ?)`
	submitQuery          = `UPDATE stocktakes SET status = ?, submitted_at = ? WHERE id = ?`
	getStocktakeQuery    = `SELECT ` + stocktakeColumns + ` FROM stocktakes WHERE id = ?`
	lockStocktakeQuery   = getStocktakeQuery + ` FOR UPDATE`

	getItemsQuery = `SELECT i.id, i.stocktake_id, i.product_id, p.sku, i.counted_qty
FROM stocktake_items i
JOIN products p ON p.id = i.product_id
WHERE i.stocktake_id = ? ORDER BY i.id`
)

// Insert creates a stocktake outside of any transaction (drafts).
func (r *SQL) Insert(ctx context.Context, st *model.Stocktake) (uint64, error) {
	res, err := r.conn.ExecContext(ctx, insertStocktakeQuery, st.WarehouseID, st.Status, st.CreatedBy, st.CreatedAt, st.SubmittedAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, st *model.Stocktake) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertStocktakeQuery, st.WarehouseID, st.Status, st.CreatedBy, st.CreatedAt, st.SubmittedAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertItemTx(ctx context.Context, tx *sqlx.Tx, stocktakeID uint64, item *model.StocktakeItem) error {
	res, err := tx.ExecContext(ctx, insertItemQuery, stocktakeID, item.ProductID, item.CountedQty)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	item.ID = uint64(id)
	item.StocktakeID = stocktakeID
	return nil
}

// GetForUpdateTx locks the stocktake header; nil means it does not exist.
func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, stocktakeID uint64) (*model.Stocktake, error) {
	var st model.Stocktake
	if err := tx.GetContext(ctx, &st, lockStocktakeQuery, stocktakeID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, txrepo.MapLockError(err)
	}
	return &st, nil
}

func (r *SQL) SubmitTx(ctx context.Context, tx *sqlx.Tx, stocktakeID uint64, submittedAt time.Time) error {
	_, err := tx.ExecContext(ctx, submitQuery, constant.StocktakeStatusSubmitted, submittedAt, stocktakeID)
	return txrepo.MapLockError(err)
}

func (r *SQL) Get(ctx context.Context, stocktakeID uint64) (*model.Stocktake, error) {
	var st model.Stocktake
	if err := r.conn.GetContext(ctx, &st, getStocktakeQuery, stocktakeID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	items := make([]model.StocktakeItem, 0)
	if err := r.conn.SelectContext(ctx, &items, getItemsQuery, stocktakeID); err != nil {
		return nil, err
	}
	st.Items = items
	return &st, nil
}
