package model

import (
	"time"

	"github.com/muhammadheryan/wms/constant"
)

type Stocktake struct {
	ID          uint64                   `db:"id" json:"id"`
	WarehouseID uint64                   `db:"warehouse_id" json:"warehouse_id"`
	Status      constant.StocktakeStatus `db:"status" json:"status"`
	CreatedBy   uint64                   `db:"created_by" json:"created_by"`
	CreatedAt   time.Time                `db:"created_at" json:"created_at"`
	SubmittedAt *time.Time               `db:"submitted_at" json:"submitted_at"`
	Items       []StocktakeItem          `db:"-" json:"items,omitempty"`
}

type StocktakeItem struct {
	ID          uint64 `db:"id" json:"-"`
	StocktakeID uint64 `db:"stocktake_id" json:"-"`
	ProductID   uint64 `db:"product_id" json:"product_id"`
	SKU         string `db:"sku" json:"sku"`
	CountedQty  int64  `db:"counted_qty" json:"counted_qty"`
}

type StocktakeItemRequest struct {
	SKU        string `json:"sku" validate:"required,max=32"`
	CountedQty int64  `json:"counted_qty" validate:"gte=0"`
}

type SubmitStocktakeRequest struct {
	WarehouseID uint64                 `json:"warehouse_id" validate:"required"`
	StocktakeID *uint64                `json:"stocktake_id"`
	Items       []StocktakeItemRequest `json:"items" validate:"required,min=1,dive"`
}

type CreateStocktakeRequest struct {
	WarehouseID uint64 `json:"warehouse_id" validate:"required"`
}

type StocktakeLine struct {
	SKU    string `json:"sku"`
	OldQty int64  `json:"old_qty"`
	NewQty int64  `json:"new_qty"`
	Delta  int64  `json:"delta"`
}

type SubmitStocktakeResponse struct {
	StocktakeID uint64                   `json:"stocktake_id"`
	Status      constant.StocktakeStatus `json:"status"`
	Lines       []StocktakeLine          `json:"lines"`
}
