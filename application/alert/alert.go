package alert

import (
	"context"

	"github.com/muhammadheryan/wms/model"
	inventoryrepo "github.com/muhammadheryan/wms/repository/inventory"
	"github.com/muhammadheryan/wms/utils/errors"
	"github.com/muhammadheryan/wms/utils/logger"
	"go.uber.org/zap"
)

// LowStockApp evaluates warning thresholds outside a user request: the scheduler,
// the stock-event consumer and the internal scan endpoint all land here.
type LowStockApp interface {
	Scan(ctx context.Context, warehouseID uint64) ([]model.BalanceView, error)
}

type lowStockAppImpl struct {
	inventoryRepo inventoryrepo.InventoryRepository
}

func NewLowStockApp(inventoryRepo inventoryrepo.InventoryRepository) LowStockApp {
	return &lowStockAppImpl{inventoryRepo: inventoryRepo}
}

// Scan logs one warning per balance at or below its threshold. warehouseID 0 scans every warehouse.
func (s *lowStockAppImpl) Scan(ctx context.Context, warehouseID uint64) ([]model.BalanceView, error) {
	var scope []uint64
	if warehouseID != 0 {
		scope = []uint64{warehouseID}
	}

	low, err := s.inventoryRepo.ListLowStock(ctx, scope)
	if err != nil {
		return nil, errors.Internal("[LowStockScan] list low stock", err)
	}

	log := logger.FromContext(ctx)
	for _, b := range low {
		log.Warn("[LowStockScan] stock below warning threshold",
			zap.Uint64("warehouse_id", b.WarehouseID),
			zap.String("sku", b.SKU),
			zap.Int64("available_qty", b.AvailableQty),
			zap.Int64("warning_threshold", b.WarningThreshold),
		)
	}
	log.Info("[LowStockScan] scan finished", zap.Uint64("warehouse_id", warehouseID), zap.Int("low_stock", len(low)))
	return low, nil
}
