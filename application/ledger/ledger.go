package ledger

import (
	"context"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms/constant"
	"github.com/muhammadheryan/wms/model"
	"github.com/muhammadheryan/wms/repository/audit"
	"github.com/muhammadheryan/wms/repository/inventory"
)

// AuditColumn selects the balance quantity an audit row records.
type AuditColumn int

const (
	AuditAvailable AuditColumn = iota
	// AuditOnHand records available + locked, for moves that only touch locked stock.
	AuditOnHand
)

func (c AuditColumn) qty(b model.Balance) int64 {
	if c == AuditOnHand {
		return b.OnHand()
	}
	return b.AvailableQty
}

// Entry is one balance movement. An empty Action marks a reservation move
// (available <-> locked) which keeps on-hand stock unchanged and is not audited.
type Entry struct {
	WarehouseID    uint64
	ProductID      uint64
	SKU            string
	DeltaAvailable int64
	DeltaLocked    int64
	Action         constant.AuditAction
	Audit          AuditColumn
	OperatorID     uint64
}

func (e *Entry) Key() model.BalanceKey {
	return model.BalanceKey{WarehouseID: e.WarehouseID, ProductID: e.ProductID}
}

// Ledger is the only way workflows change inventory balances.
type Ledger interface {
	Adjust(ctx context.Context, tx *sqlx.Tx, entry *Entry) (*model.BalanceChange, error)
	LockAll(ctx context.Context, tx *sqlx.Tx, keys []model.BalanceKey) (map[model.BalanceKey]*model.Balance, error)
	Count(ctx context.Context, tx *sqlx.Tx, entry *Entry, counted int64) (*model.BalanceChange, error)
}

type ledgerImpl struct {
	inventoryRepo inventory.InventoryRepository
	auditRepo     audit.AuditRepository
	now           func() time.Time
}

func NewLedger(inventoryRepo inventory.InventoryRepository, auditRepo audit.AuditRepository) Ledger {
	return &ledgerImpl{
		inventoryRepo: inventoryRepo,
		auditRepo:     auditRepo,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Adjust applies the entry to its locked balance row and, for audited actions,
// appends the audit row in the same transaction.
func (l *ledgerImpl) Adjust(ctx context.Context, tx *sqlx.Tx, entry *Entry) (*model.BalanceChange, error) {
	change, err := l.inventoryRepo.AdjustTx(ctx, tx, &model.AdjustRequest{
		WarehouseID:    entry.WarehouseID,
		ProductID:      entry.ProductID,
		DeltaAvailable: entry.DeltaAvailable,
		DeltaLocked:    entry.DeltaLocked,
	})
	if err != nil {
		return nil, err
	}
	if entry.Action == "" {
		return change, nil
	}

	oldQty := entry.Audit.qty(change.Before)
	newQty := entry.Audit.qty(change.After)
	if err := l.auditRepo.InsertTx(ctx, tx, &model.AuditLog{
		WarehouseID: entry.WarehouseID,
		OperatorID:  entry.OperatorID,
		Action:      entry.Action,
		SKU:         entry.SKU,
		OldQty:      oldQty,
		NewQty:      newQty,
		Delta:       newQty - oldQty,
		CreatedAt:   l.now(),
	}); err != nil {
		return nil, err
	}
	return change, nil
}

// LockAll locks every distinct key in (warehouse, product) order. Callers lock up
// front so concurrent multi-row operations always acquire rows in the same order.
func (l *ledgerImpl) LockAll(ctx context.Context, tx *sqlx.Tx, keys []model.BalanceKey) (map[model.BalanceKey]*model.Balance, error) {
	sorted := make([]model.BalanceKey, 0, len(keys))
	seen := make(map[model.BalanceKey]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		sorted = append(sorted, k)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	locked := make(map[model.BalanceKey]*model.Balance, len(sorted))
	for _, k := range sorted {
		b, err := l.inventoryRepo.LockBalanceTx(ctx, tx, k)
		if err != nil {
			return nil, err
		}
		locked[k] = b
	}
	return locked, nil
}

// Count overwrites available stock with a physical count.
func (l *ledgerImpl) Count(ctx context.Context, tx *sqlx.Tx, entry *Entry, counted int64) (*model.BalanceChange, error) {
	b, err := l.inventoryRepo.LockBalanceTx(ctx, tx, entry.Key())
	if err != nil {
		return nil, err
	}
	e := *entry
	e.DeltaAvailable = counted - b.AvailableQty
	e.DeltaLocked = 0
	e.Action = constant.AuditActionStocktake
	e.Audit = AuditAvailable
	return l.Adjust(ctx, tx, &e)
}
