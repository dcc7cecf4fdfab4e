package outbound

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

type OutboundRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, order *model.OutboundOrder) (uint64, error)
	InsertItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OutboundOrderItem) error
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OutboundOrder, error)
	GetItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OutboundOrderItem, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OutboundStatus, at time.Time) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) error
	Get(ctx context.Context, orderID uint64) (*model.OutboundOrder, error)
	List(ctx context.Context, filter *model.OrderFilter) ([]model.OutboundOrder, error)
}

func NewOutboundRepository(conn *sqlx.DB) OutboundRepository {
	return &SQL{conn: conn}
}

const (
	orderColumns = `id, warehouse_id, status, created_by, created_at, picked_at, shipped_at`
	itemColumns  = `i.id, i.outbound_order_id, i.product_id, p.sku, i.quantity`

	insertOrderQuery = `INSERT INTO outbound_orders (warehouse_id, status, created_by, created_at) VALUES (?, ?, ?, ?)`
	insertItemQuery  = `INSERT INTO outbound_order_items (outbound_order_id, product_id, quantity) VALUES (?, ?, ?)`
	markPickedQuery  = `UPDATE outbound_orders SET status = ?, picked_at = ? WHERE id = ?`
	markShippedQuery = `UPDATE outbound_orders SET status = ?, shipped_at = ? WHERE id = ?`
	deleteItemsQuery = `DELETE FROM outbound_order_items WHERE outbound_order_id = ?`
	deleteOrderQuery = `DELETE FROM outbound_orders WHERE id = ?`
	getOrderQuery    = `SELECT ` + orderColumns + ` FROM outbound_orders WHERE id = ?`
	lockOrderQuery   = getOrderQuery + ` FOR UPDATE`
	listOrdersBase   = `SELECT ` + orderColumns + ` FROM outbound_orders WHERE true`

	itemsBase = `SELECT ` + itemColumns + `
FROM outbound_order_items i
JOIN products p ON p.id = i.product_id`
	getItemsQuery  = itemsBase + ` WHERE i.outbound_order_id = ? ORDER BY i.id`
	listItemsQuery = itemsBase + ` WHERE i.outbound_order_id IN (?) ORDER BY i.outbound_order_id, i.id`
)

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, order *model.OutboundOrder) (uint64, error) {
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

func (r *SQL) InsertItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OutboundOrderItem) error {
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, insertItemQuery, orderID, it.ProductID, it.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// GetForUpdateTx locks the order header; nil means the order does not exist.
func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OutboundOrder, error) {
	var order model.OutboundOrder
	if err := tx.GetContext(ctx, &order, lockOrderQuery, orderID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, txrepo.MapLockError(err)
	}
	return &order, nil
}

func (r *SQL) GetItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OutboundOrderItem, error) {
	items := make([]model.OutboundOrderItem, 0)
	if err := tx.SelectContext(ctx, &items, getItemsQuery, orderID); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatusTx moves the order to PICKED or SHIPPED and stamps the matching timestamp.
func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OutboundStatus, at time.Time) error {
	query := markPickedQuery
	if status == constant.OutboundStatusShipped {
		query = markShippedQuery
	}
	_, err := tx.ExecContext(ctx, query, status, at, orderID)
	return txrepo.MapLockError(err)
}

func (r *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) error {
	if _, err := tx.ExecContext(ctx, deleteItemsQuery, orderID); err != nil {
		return txrepo.MapLockError(err)
	}
	_, err := tx.ExecContext(ctx, deleteOrderQuery, orderID)
	return txrepo.MapLockError(err)
}

func (r *SQL) Get(ctx context.Context, orderID uint64) (*model.OutboundOrder, error) {
	var order model.OutboundOrder
	if err := r.conn.GetContext(ctx, &order, getOrderQuery, orderID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	items := make([]model.OutboundOrderItem, 0)
	if err := r.conn.SelectContext(ctx, &items, getItemsQuery, orderID); err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

// List loads the headers, then every item of the page in a single query.
func (r *SQL) List(ctx context.Context, filter *model.OrderFilter) ([]model.OutboundOrder, error) {
	query := listOrdersBase
	args := make([]any, 0, 2)

	if filter.WarehouseIDs != nil {
		if len(filter.WarehouseIDs) == 0 {
			return []model.OutboundOrder{}, nil
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
	orders := make([]model.OutboundOrder, 0)
	if err := r.conn.SelectContext(ctx, &orders, r.conn.Rebind(q), args...); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]uint64, 0, len(orders))
	byID := make(map[uint64]int, len(orders))
	for i := range orders {
		orders[i].Items = make([]model.OutboundOrderItem, 0)
		ids = append(ids, orders[i].ID)
		byID[orders[i].ID] = i
	}

	q, args, err = sqlx.In(listItemsQuery, ids)
	if err != nil {
		return nil, err
	}
	items := make([]model.OutboundOrderItem, 0)
	if err := r.conn.SelectContext(ctx, &items, r.conn.Rebind(q), args...); err != nil {
		return nil, err
	}
	for _, it := range items {
		if idx, ok := byID[it.OutboundOrderID]; ok {
			orders[idx].Items = append(orders[idx].Items, it)
		}
	}
	return orders, nil
}
