package inbound

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

type InboundRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, order *model.InboundOrder) (uint64, error)
	InsertItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.InboundOrderItem) error
	ReplaceItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.InboundOrderItem) error
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.InboundOrder, error)
	GetItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.InboundOrderItem, error)
	ConfirmTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, confirmedAt time.Time) error
	Get(ctx context.Context, orderID uint64) (*model.InboundOrder, error)
	List(ctx context.Context, filter *model.OrderFilter) ([]model.InboundOrder, error)
}

func NewInboundRepository(conn *sqlx.DB) InboundRepository {
	return &SQL{conn: conn}
}

const (
	orderColumns = `id, warehouse_id, status, created_by, created_at, confirmed_at`
	itemColumns  = `i.id, i.inbound_order_id, i.product_id, p.sku, i.quantity, i.unit_price`

	insertOrderQuery = `INSERT INTO inbound_orders (warehouse_id, status, created_by, created_at) VALUES (?, ?, ?, ?)`
	insertItemQuery  = `INSERT INTO inbound_order_items (inbound_order_id, product_id, quantity, unit_price) VALUES (?, ?, ?, ?)`
	deleteItemsQuery = `DELETE FROM inbound_order_items WHERE inbound_order_id = ?`
	confirmQuery     = `UPDATE inbound_orders SET status = ?, confirmed_at = ? WHERE id = ?`
	getOrderQuery    = `SELECT ` + orderColumns + ` FROM inbound_orders WHERE id = ?`
	lockOrderQuery   = getOrderQuery + ` FOR UPDATE`
	listOrdersBase   = `SELECT ` + orderColumns + ` FROM inbound_orders WHERE true`

	getItemsQuery = `SELECT ` + itemColumns + `
FROM inbound_order_items i
JOIN products p ON p.id = i.product_id
WHERE i.inbound_order_id = ? ORDER BY i.id`
)

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, order *model.InboundOrder) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertOrderQuery, order.WarehouseID, order.Status, order.CreatedBy, order.CreatedAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.InboundOrderItem) error {
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, insertItemQuery, orderID, it.ProductID, it.Quantity, it.UnitPrice); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) ReplaceItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.InboundOrderItem) error {
	if _, err := tx.ExecContext(ctx, deleteItemsQuery, orderID); err != nil {
		return txrepo.MapLockError(err)
	}
	return r.InsertItemsTx(ctx, tx, orderID, items)
}

// GetForUpdateTx locks the order header; nil means the order does not exist.
func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.InboundOrder, error) {
	var order model.InboundOrder
	if err := tx.GetContext(ctx, &order, lockOrderQuery, orderID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, txrepo.MapLockError(err)
	}
	return &order, nil
}

func (r *SQL) GetItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.InboundOrderItem, error) {
	items := make([]model.InboundOrderItem, 0)
	if err := tx.SelectContext(ctx, &items, getItemsQuery, orderID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) ConfirmTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, confirmedAt time.Time) error {
	_, err := tx.ExecContext(ctx, confirmQuery, constant.InboundStatusConfirmed, confirmedAt, orderID)
	return txrepo.MapLockError(err)
}

func (r *SQL) Get(ctx context.Context, orderID uint64) (*model.InboundOrder, error) {
	var order model.InboundOrder
	if err := r.conn.GetContext(ctx, &order, getOrderQuery, orderID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	items := make([]model.InboundOrderItem, 0)
	if err := r.conn.SelectContext(ctx, &items, getItemsQuery, orderID); err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

// List returns headers only, newest first.
func (r *SQL) List(ctx context.Context, filter *model.OrderFilter) ([]model.InboundOrder, error) {
	query := listOrdersBase
	args := make([]any, 0, 2)

	if filter.WarehouseIDs != nil {
		if len(filter.WarehouseIDs) == 0 {
			return []model.InboundOrder{}, nil
		}
		query += " AND warehouse_id IN (?)"
		args = append(args, filter.WarehouseIDs)
	}
	if filter.WarehouseID != 0 {
		query += " AND warehouse_id = ?"
		args = append(args, filter.WarehouseID)
	}
	query += " ORDER BY id DESC"

	q, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, err
	}
	out := make([]model.InboundOrder, 0)
	if err := r.conn.SelectContext(ctx, &out, r.conn.Rebind(q), args...); err != nil {
		return nil, err
	}
	return out, nil
}
