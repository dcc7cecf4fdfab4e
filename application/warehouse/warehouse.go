package warehouse

import (
	"context"

	"github.com/muhammadheryan/wms/constant"
	"github.com/muhammadheryan/wms/model"
	warehouserepo "github.com/muhammadheryan/wms/repository/warehouse"
	utilsContext "github.com/muhammadheryan/wms/utils/context"
	"github.com/muhammadheryan/wms/utils/errors"
	"github.com/muhammadheryan/wms/utils/logger"
	"go.uber.org/zap"
)

type WarehouseApp interface {
	ListWarehouses(ctx context.Context) ([]model.Warehouse, error)
	ListLocations(ctx context.Context) ([]model.Location, error)
	GetLocation(ctx context.Context, id uint64) (*model.Location, error)
}

type warehouseAppImpl struct {
	warehouseRepo warehouserepo.WarehouseRepository
}

func NewWarehouseApp(warehouseRepo warehouserepo.WarehouseRepository) WarehouseApp {
	return &warehouseAppImpl{
		warehouseRepo: warehouseRepo,
	}
}

// ListWarehouses returns the warehouses visible to the caller.
func (s *warehouseAppImpl) ListWarehouses(ctx context.Context) ([]model.Warehouse, error) {
	p, err := utilsContext.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.warehouseRepo.ListWarehouses(ctx, p.ScopedWarehouses())
	if err != nil {
		logger.Error("[ListWarehouses] list warehouses failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return result, nil
}

func (s *warehouseAppImpl) ListLocations(ctx context.Context) ([]model.Location, error) {
	p, err := utilsContext.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.warehouseRepo.ListLocations(ctx, p.ScopedWarehouses())
	if err != nil {
		logger.Error("[ListLocations] list locations failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return result, nil
}

// GetLocation hides locations of other warehouses behind NotFound.
func (s *warehouseAppImpl) GetLocation(ctx context.Context, id uint64) (*model.Location, error) {
	p, err := utilsContext.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	location, err := s.warehouseRepo.GetLocationByID(ctx, id)
	if err != nil {
		logger.Error("[GetLocation] get location failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if location == nil || !p.CanAccess(location.WarehouseID) {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return location, nil
}
