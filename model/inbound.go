package model

import (
	"time"

	"github.com/muhammadheryan/wms/constant"
	"github.com/shopspring/decimal"
)

type InboundOrder struct {
	ID          uint64                 `db:"id" json:"id"`
	WarehouseID uint64                 `db:"warehouse_id" json:"warehouse_id"`
	Status      constant.InboundStatus `db:"status" json:"status"`
	CreatedBy   uint64                 `db:"created_by" json:"created_by"`
	CreatedAt   time.Time              `db:"created_at" json:"created_at"`
	ConfirmedAt *time.Time             `db:"confirmed_at" json:"confirmed_at"`
	Items       []InboundOrderItem     `db:"-" json:"items,omitempty"`
}

type InboundOrderItem struct {
	ID             uint64          `db:"id" json:"-"`
	InboundOrderID uint64          `db:"inbound_order_id" json:"-"`
	ProductID      uint64          `db:"product_id" json:"product_id"`
	SKU            string          `db:"sku" json:"sku"`
	Quantity       int64           `db:"quantity" json:"quantity"`
	UnitPrice      decimal.Decimal `db:"unit_price" json:"unit_price"`
}

type InboundItemRequest struct {
	SKU       string          `json:"sku" validate:"required,max=32"`
	Quantity  int64           `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type CreateInboundRequest struct {
	WarehouseID uint64               `json:"warehouse_id" validate:"required"`
	Items       []InboundItemRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdateInboundRequest struct {
	Items []InboundItemRequest `json:"items" validate:"required,min=1,dive"`
}
