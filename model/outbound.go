package model

import (
	"time"

	"github.com/muhammadheryan/wms/constant"
)

type OutboundOrder struct {
	ID          uint64                  `db:"id" json:"id"`
	WarehouseID uint64                  `db:"warehouse_id" json:"warehouse_id"`
	Status      constant.OutboundStatus `db:"status" json:"status"`
	CreatedBy   uint64                  `db:"created_by" json:"created_by"`
	CreatedAt   time.Time               `db:"created_at" json:"created_at"`
	PickedAt    *time.Time              `db:"picked_at" json:"picked_at"`
	ShippedAt   *time.Time              `db:"shipped_at" json:"shipped_at"`
	Items       []OutboundOrderItem     `db:"-" json:"items"`
}

type OutboundOrderItem struct {
	ID              uint64 `db:"id" json:"-"`
	OutboundOrderID uint64 `db:"outbound_order_id" json:"-"`
	ProductID       uint64 `db:"product_id" json:"product_id"`
	SKU             string `db:"sku" json:"sku"`
	Quantity        int64  `db:"quantity" json:"quantity"`
}

type OutboundItemRequest struct {
	SKU      string `json:"sku" validate:"required,max=32"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
}

type CreateOutboundRequest struct {
	WarehouseID uint64                `json:"warehouse_id" validate:"required"`
	Items       []OutboundItemRequest `json:"items" validate:"required,min=1,dive"`
}

type ShipRequest struct {
	SimulateFail bool
}

// Shipment is what gets handed to the carrier when an order ships.
type Shipment struct {
	OrderID      uint64
	WarehouseID  uint64
	Items        []OutboundOrderItem
	SimulateFail bool
}

type OrderFilter struct {
	WarehouseID  uint64
	WarehouseIDs []uint64
}
