package inventory

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms/constant"
	"github.com/muhammadheryan/wms/model"
	txrepo "github.com/muhammadheryan/wms/repository/tx"
	"github.com/muhammadheryan/wms/utils/errors"
)

type InventoryRepository interface {
	GetBalance(ctx context.Context, warehouseID, productID uint64) (*model.Balance, error)
	LockBalanceTx(ctx context.Context, tx *sqlx.Tx, key model.BalanceKey) (*model.Balance, error)
	AdjustTx(ctx context.Context, tx *sqlx.Tx, req *model.AdjustRequest) (*model.BalanceChange, error)
	List(ctx context.Context, filter *model.InventoryFilter) ([]model.BalanceView, error)
	ListLowStock(ctx context.Context, warehouseIDs []uint64) ([]model.BalanceView, error)
	SetWarningThreshold(ctx context.Context, warehouseID, productID uint64, threshold int64) error
	SumOnHandByProduct(ctx context.Context, productID uint64) (int64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

const (
	balanceColumns = `id, warehouse_id, product_id, available_qty, locked_qty, warning_threshold, updated_at`
	getBalance     = `SELECT ` + balanceColumns + ` FROM inventory WHERE warehouse_id = ? AND product_id = ?`
	lockBalance    = getBalance + ` FOR UPDATE`
	updateBalance  = `UPDATE inventory SET available_qty = ?, locked_qty = ?, updated_at = ? WHERE id = ?`
	sumOnHand      = `SELECT COALESCE(SUM(available_qty + locked_qty), 0) FROM inventory WHERE product_id = ?`

	createBalance = `INSERT IGNORE INTO inventory (warehouse_id, product_id, available_qty, locked_qty, warning_threshold, updated_at)
VALUES (?, ?, 0, 0, 0, ?)`

	upsertThreshold = `INSERT INTO inventory (warehouse_id, product_id, available_qty, locked_qty, warning_threshold, updated_at)
VALUES (?, ?, 0, 0, ?, ?) ON DUPLICATE KEY UPDATE warning_threshold = VALUES(warning_threshold), updated_at = VALUES(updated_at)`

	listBalancesBase = `SELECT i.id, i.warehouse_id, i.product_id, p.sku, p.name AS product_name,
i.available_qty, i.locked_qty, i.warning_threshold
FROM inventory i
JOIN products p ON p.id = i.product_id
WHERE true`
)

func (r *SQL) GetBalance(ctx context.Context, warehouseID, productID uint64) (*model.Balance, error) {
	var b model.Balance
	if err := r.conn.GetContext(ctx, &b, getBalance, warehouseID, productID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// LockBalanceTx locks the row until tx ends, creating it first when the pair has
// no balance yet. Existing rows are locked by a plain record lock so pairs that
// are neighbours in the unique index do not block each other.
func (r *SQL) LockBalanceTx(ctx context.Context, tx *sqlx.Tx, key model.BalanceKey) (*model.Balance, error) {
	b, err := r.selectForUpdate(ctx, tx, key)
	if err != nil || b != nil {
		return b, err
	}
	if _, err := tx.ExecContext(ctx, createBalance, key.WarehouseID, key.ProductID, time.Now().UTC()); err != nil {
		return nil, txrepo.MapLockError(err)
	}
	b, err = r.selectForUpdate(ctx, tx, key)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, stderrors.New("inventory row missing after insert")
	}
	return b, nil
}

func (r *SQL) selectForUpdate(ctx context.Context, tx *sqlx.Tx, key model.BalanceKey) (*model.Balance, error) {
	var b model.Balance
	if err := tx.GetContext(ctx, &b, lockBalance, key.WarehouseID, key.ProductID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, txrepo.MapLockError(err)
	}
	return &b, nil
}

// AdjustTx applies both deltas to one row. A row already locked by LockBalanceTx
// is re-read under its existing lock without another insert. Nothing is written
// when either resulting quantity would be negative.
func (r *SQL) AdjustTx(ctx context.Context, tx *sqlx.Tx, req *model.AdjustRequest) (*model.BalanceChange, error) {
	before, err := r.LockBalanceTx(ctx, tx, model.BalanceKey{WarehouseID: req.WarehouseID, ProductID: req.ProductID})
	if err != nil {
		return nil, err
	}

	after := *before
	after.AvailableQty += req.DeltaAvailable
	after.LockedQty += req.DeltaLocked
	if after.AvailableQty < 0 || after.LockedQty < 0 {
		return nil, errors.SetCustomError(constant.ErrInsufficientStock)
	}
	after.UpdatedAt = time.Now().UTC()

	if _, err := tx.ExecContext(ctx, updateBalance, after.AvailableQty, after.LockedQty, after.UpdatedAt, before.ID); err != nil {
		return nil, txrepo.MapLockError(err)
	}
	return &model.BalanceChange{Before: *before, After: after}, nil
}

func (r *SQL) List(ctx context.Context, filter *model.InventoryFilter) ([]model.BalanceView, error) {
	query := listBalancesBase
	args := make([]any, 0, 3)

	if filter.WarehouseIDs != nil {
		if len(filter.WarehouseIDs) == 0 {
			return []model.BalanceView{}, nil
		}
		query += " AND i.warehouse_id IN (?)"
		args = append(args, filter.WarehouseIDs)
	}
	if filter.WarehouseID != 0 {
		query += " AND i.warehouse_id = ?"
		args = append(args, filter.WarehouseID)
	}
	if filter.SKU != "" {
		query += " AND p.sku LIKE ?"
		args = append(args, "%"+escapeLike(filter.SKU)+"%")
	}
	query += " ORDER BY i.warehouse_id, p.sku"

	return r.selectViews(ctx, query, args...)
}

func (r *SQL) ListLowStock(ctx context.Context, warehouseIDs []uint64) ([]model.BalanceView, error) {
	query := listBalancesBase + " AND i.warning_threshold > 0 AND i.available_qty <= i.warning_threshold"
	args := make([]any, 0, 1)
	if warehouseIDs != nil {
		if len(warehouseIDs) == 0 {
			return []model.BalanceView{}, nil
		}
		query += " AND i.warehouse_id IN (?)"
		args = append(args, warehouseIDs)
	}
	query += " ORDER BY i.warehouse_id, p.sku"

	return r.selectViews(ctx, query, args...)
}

func (r *SQL) SetWarningThreshold(ctx context.Context, warehouseID, productID uint64, threshold int64) error {
	_, err := r.conn.ExecContext(ctx, upsertThreshold, warehouseID, productID, threshold, time.Now().UTC())
	return err
}

func (r *SQL) SumOnHandByProduct(ctx context.Context, productID uint64) (int64, error) {
	var total int64
	err := r.conn.GetContext(ctx, &total, sumOnHand, productID)
	return total, err
}

func (r *SQL) selectViews(ctx context.Context, query string, args ...any) ([]model.BalanceView, error) {
	q, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, err
	}
	out := make([]model.BalanceView, 0)
	if err := r.conn.SelectContext(ctx, &out, r.conn.Rebind(q), args...); err != nil {
		return nil, err
	}
	return out, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
