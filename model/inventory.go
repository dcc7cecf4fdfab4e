package model

import (
	"time"

	"github.com/muhammadheryan/wms/constant"
)

// BalanceKey identifies one inventory row.
type BalanceKey struct {
	WarehouseID uint64
	ProductID   uint64
}

// Less orders keys by warehouse then product; rows are always locked in this order.
func (k BalanceKey) Less(o BalanceKey) bool {
	if k.WarehouseID != o.WarehouseID {
		return k.WarehouseID < o.WarehouseID
	}
	return k.ProductID < o.ProductID
}

type Balance struct {
	ID               uint64    `db:"id" json:"id"`
	WarehouseID      uint64    `db:"warehouse_id" json:"warehouse_id"`
	ProductID        uint64    `db:"product_id" json:"product_id"`
	AvailableQty     int64     `db:"available_qty" json:"available_qty"`
	LockedQty        int64     `db:"locked_qty" json:"locked_qty"`
	WarningThreshold int64     `db:"warning_threshold" json:"warning_threshold"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

func (b *Balance) Key() BalanceKey {
	return BalanceKey{WarehouseID: b.WarehouseID, ProductID: b.ProductID}
}

// OnHand is the physical quantity in the warehouse, reserved or not.
func (b *Balance) OnHand() int64 {
	return b.AvailableQty + b.LockedQty
}

func (b *Balance) BelowThreshold() bool {
	return b.WarningThreshold > 0 && b.AvailableQty <= b.WarningThreshold
}

type AdjustRequest struct {
	WarehouseID    uint64
	ProductID      uint64
	DeltaAvailable int64
	DeltaLocked    int64
}

type BalanceChange struct {
	Before Balance
	After  Balance
}

// BalanceView is a balance joined with its product, as listed to clients.
type BalanceView struct {
	ID               uint64 `db:"id" json:"id"`
	WarehouseID      uint64 `db:"warehouse_id" json:"warehouse_id"`
	ProductID        uint64 `db:"product_id" json:"product_id"`
	SKU              string `db:"sku" json:"sku"`
	ProductName      string `db:"product_name" json:"product_name"`
	AvailableQty     int64  `db:"available_qty" json:"available_qty"`
	LockedQty        int64  `db:"locked_qty" json:"locked_qty"`
	WarningThreshold int64  `db:"warning_threshold" json:"warning_threshold"`
}

type InventoryFilter struct {
	WarehouseID  uint64
	SKU          string
	WarehouseIDs []uint64 // nil means unrestricted
}

type AuditLog struct {
	ID          uint64               `db:"id" json:"id"`
	WarehouseID uint64               `db:"warehouse_id" json:"warehouse_id"`
	OperatorID  uint64               `db:"operator_id" json:"operator_id"`
	Action      constant.AuditAction `db:"action" json:"action"`
	SKU         string               `db:"sku" json:"sku"`
	OldQty      int64                `db:"old_qty" json:"old_qty"`
	NewQty      int64                `db:"new_qty" json:"new_qty"`
	Delta       int64                `db:"delta" json:"delta"`
	CreatedAt   time.Time            `db:"created_at" json:"created_at"`
}

type AuditFilter struct {
	WarehouseID  uint64
	SKU          string
	Action       constant.AuditAction
	WarehouseIDs []uint64
	Limit        int
}

type TransferRequest struct {
	FromWarehouseID uint64 `json:"from_warehouse_id" validate:"required"`
	ToWarehouseID   uint64 `json:"to_warehouse_id" validate:"required"`
	SKU             string `json:"sku" validate:"required,max=32"`
	Quantity        int64  `json:"quantity" validate:"required,gt=0"`
}

type TransferResponse struct {
	SKU    string      `json:"sku"`
	From   BalanceView `json:"from"`
	To     BalanceView `json:"to"`
	Amount int64       `json:"quantity"`
}

type WarningThresholdRequest struct {
	WarehouseID      uint64 `json:"warehouse_id" validate:"required"`
	SKU              string `json:"sku" validate:"required,max=32"`
	WarningThreshold int64  `json:"warning_threshold" validate:"gte=0"`
}
