package audit

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms/model"
	txrepo "github.com/muhammadheryan/wms/repository/tx"
)

const defaultListLimit = 200

type SQL struct {
	conn *sqlx.DB
}

type AuditRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, entry *model.AuditLog) error
	List(ctx context.Context, filter *model.AuditFilter) ([]model.AuditLog, error)
}

func NewAuditRepository(conn *sqlx.DB) AuditRepository {
	return &SQL{conn: conn}
}

const (
	insertAuditQuery = `INSERT INTO inventory_audit_logs (warehouse_id, operator_id, action, sku, old_qty, new_qty, delta, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	listAuditBase = `SELECT id, warehouse_id, operator_id, action, sku, old_qty, new_qty, delta, created_at
FROM inventory_audit_logs WHERE true`
)

// InsertTx writes one audit row inside the same transaction as the balance change it describes.
func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, entry *model.AuditLog) error {
	res, err := tx.ExecContext(ctx, insertAuditQuery,
		entry.WarehouseID, entry.OperatorID, entry.Action, entry.SKU,
		entry.OldQty, entry.NewQty, entry.Delta, entry.CreatedAt)
	if err != nil {
		return txrepo.MapLockError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	entry.ID = uint64(id)
	return nil
}

// List returns the newest entries first.
func (r *SQL) List(ctx context.Context, filter *model.AuditFilter) ([]model.AuditLog, error) {
	query := listAuditBase
	args := make([]any, 0, 4)

	if filter.WarehouseIDs != nil {
		if len(filter.WarehouseIDs) == 0 {
			return []model.AuditLog{}, nil
		}
		query += " AND warehouse_id IN (?)"
		args = append(args, filter.WarehouseIDs)
	}
	if filter.WarehouseID != 0 {
		query += " AND warehouse_id = ?"
		args = append(args, filter.WarehouseID)
	}
	if filter.SKU != "" {
		query += " AND sku = ?"
		args = append(args, filter.SKU)
	}
	if filter.Action != "" {
		query += " AND action = ?"
		args = append(args, filter.Action)
	}

	limit := filter.Limit
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	q, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, err
	}
	out := make([]model.AuditLog, 0)
	if err := r.conn.SelectContext(ctx, &out, r.conn.Rebind(q), args...); err != nil {
		return nil, err
	}
	return out, nil
}
