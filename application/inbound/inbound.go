package inbound

import (
	"context"
	"time"

	"github.com/muhammadheryan/wms/application/ledger"
	"github.com/muhammadheryan/wms/constant"
	"github.com/muhammadheryan/wms/model"
	inboundrepo "github.com/muhammadheryan/wms/repository/inbound"
	productrepo "github.com/muhammadheryan/wms/repository/product"
	txrepo "github.com/muhammadheryan/wms/repository/tx"
	warehouserepo "github.com/muhammadheryan/wms/repository/warehouse"
	"github.com/muhammadheryan/wms/thirdparty/rabbitmq"
	utilsContext "github.com/muhammadheryan/wms/utils/context"
	"github.com/muhammadheryan/wms/utils/errors"
	"github.com/muhammadheryan/wms/utils/logger"
	"go.uber.org/zap"
)

type InboundApp interface {
	Create(ctx context.Context, req *model.CreateInboundRequest) (*model.InboundOrder, error)
	Get(ctx context.Context, orderID uint64) (*model.InboundOrder, error)
	List(ctx context.Context, warehouseID uint64) ([]model.InboundOrder, error)
	UpdateItems(ctx context.Context, orderID uint64, req *model.UpdateInboundRequest) (*model.InboundOrder, error)
	Confirm(ctx context.Context, orderID uint64) (*model.InboundOrder, error)
}

type inboundAppImpl struct {
	txRepo        txrepo.TxRepository
	inboundRepo   inboundrepo.InboundRepository
	productRepo   productrepo.ProductRepository
	warehouseRepo warehouserepo.WarehouseRepository
	ledger        ledger.Ledger
	publisher     *rabbitmq.Publisher
}

func NewInboundApp(txRepo txrepo.TxRepository, inboundRepo inboundrepo.InboundRepository, productRepo productrepo.ProductRepository,
	warehouseRepo warehouserepo.WarehouseRepository, ledger ledger.Ledger, publisher *rabbitmq.Publisher) InboundApp {
	return &inboundAppImpl{
		txRepo:        txRepo,
		inboundRepo:   inboundRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		ledger:        ledger,
		publisher:     publisher,
	}
}

func (s *inboundAppImpl) Create(ctx context.Context, req *model.CreateInboundRequest) (*model.InboundOrder, error) {
	principal, err := utilsContext.Authorize(ctx, req.WarehouseID)
	if err != nil {
		return nil, err
	}
	if err := validateItems(req.Items); err != nil {
		return nil, err
	}

	wh, err := s.warehouseRepo.GetWarehouseByID(ctx, req.WarehouseID)
	if err != nil {
		return nil, errors.Internal("[CreateInbound] get warehouse", err)
	}
	if wh == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	items, err := s.resolveItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateInbound] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order := &model.InboundOrder{
		WarehouseID: req.WarehouseID,
		Status:      constant.InboundStatusPending,
		CreatedBy:   principal.UserID,
		CreatedAt:   time.Now().UTC(),
	}
	orderID, err := s.inboundRepo.InsertTx(ctx, tx, order)
	if err != nil {
		return nil, errors.Internal("[CreateInbound] insert order", err)
	}
	if err := s.inboundRepo.InsertItemsTx(ctx, tx, orderID, items); err != nil {
		return nil, errors.Internal("[CreateInbound] insert items", err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		return nil, errors.Internal("[CreateInbound] commit tx", err)
	}
	committed = true

	order.ID = orderID
	order.Items = items
	return order, nil
}

func (s *inboundAppImpl) Get(ctx context.Context, orderID uint64) (*model.InboundOrder, error) {
	order, err := s.inboundRepo.Get(ctx, orderID)
	if err != nil {
		return nil, errors.Internal("[GetInbound] get order", err)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if _, err := utilsContext.Authorize(ctx, order.WarehouseID); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *inboundAppImpl) List(ctx context.Context, warehouseID uint64) ([]model.InboundOrder, error) {
	principal, err := utilsContext.Authorize(ctx)
	if err != nil {
		return nil, err
	}
	if warehouseID != 0 && !principal.CanAccess(warehouseID) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	orders, err := s.inboundRepo.List(ctx, &model.OrderFilter{
		WarehouseID:  warehouseID,
		WarehouseIDs: principal.ScopedWarehouses(),
	})
	if err != nil {
		return nil, errors.Internal("[ListInbound] list orders", err)
	}
	return orders, nil
}

// UpdateItems replaces the item list of a PENDING order. SKUs are resolved only
// after the caller is known to have access to the order's warehouse.
func (s *inboundAppImpl) UpdateItems(ctx context.Context, orderID uint64, req *model.UpdateInboundRequest) (*model.InboundOrder, error) {
	if _, err := utilsContext.Authorize(ctx); err != nil {
		return nil, err
	}
	if err := validateItems(req.Items); err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateInbound] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.inboundRepo.GetForUpdateTx(ctx, tx, orderID)
	if err != nil {
		return nil, errors.Internal("[UpdateInbound] lock order", err)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if _, err := utilsContext.Authorize(ctx, order.WarehouseID); err != nil {
		return nil, err
	}
	if !order.Status.Editable() {
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}

	items, err := s.resolveItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	if err := s.inboundRepo.ReplaceItemsTx(ctx, tx, orderID, items); err != nil {
		return nil, errors.Internal("[UpdateInbound] replace items", err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		return nil, errors.Internal("[UpdateInbound] commit tx", err)
	}
	committed = true

	order.Items = items
	return order, nil
}

// Confirm books every item into the ledger and moves the order to CONFIRMED, all or nothing.
func (s *inboundAppImpl) Confirm(ctx context.Context, orderID uint64) (*model.InboundOrder, error) {
	principal, err := utilsContext.Authorize(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ConfirmInbound] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.inboundRepo.GetForUpdateTx(ctx, tx, orderID)
	if err != nil {
		return nil, errors.Internal("[ConfirmInbound] lock order", err)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !principal.CanAccess(order.WarehouseID) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	if !order.Status.CanTransitionTo(constant.InboundStatusConfirmed) {
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}

	items, err := s.inboundRepo.GetItemsTx(ctx, tx, orderID)
	if err != nil {
		return nil, errors.Internal("[ConfirmInbound] get items", err)
	}

	keys := make([]model.BalanceKey, 0, len(items))
	for _, it := range items {
		keys = append(keys, model.BalanceKey{WarehouseID: order.WarehouseID, ProductID: it.ProductID})
	}
	if _, err := s.ledger.LockAll(ctx, tx, keys); err != nil {
		return nil, errors.Internal("[ConfirmInbound] lock balances", err)
	}

	for _, it := range items {
		if _, err := s.ledger.Adjust(ctx, tx, &ledger.Entry{
			WarehouseID:    order.WarehouseID,
			ProductID:      it.ProductID,
			SKU:            it.SKU,
			DeltaAvailable: it.Quantity,
			Action:         constant.AuditActionInbound,
			OperatorID:     principal.UserID,
		}); err != nil {
			return nil, errors.Internal("[ConfirmInbound] adjust balance", err)
		}
	}

	confirmedAt := time.Now().UTC()
	if err := s.inboundRepo.ConfirmTx(ctx, tx, orderID, confirmedAt); err != nil {
		return nil, errors.Internal("[ConfirmInbound] update status", err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		return nil, errors.Internal("[ConfirmInbound] commit tx", err)
	}
	committed = true

	s.notifyStockChanged(ctx, order.WarehouseID, keys)

	order.Status = constant.InboundStatusConfirmed
	order.ConfirmedAt = &confirmedAt
	order.Items = items
	return order, nil
}

func validateItems(reqs []model.InboundItemRequest) error {
	if len(reqs) == 0 {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	for _, r := range reqs {
		if r.Quantity <= 0 || r.UnitPrice.IsNegative() {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}
	return nil
}

func (s *inboundAppImpl) resolveItems(ctx context.Context, reqs []model.InboundItemRequest) ([]model.InboundOrderItem, error) {
	items := make([]model.InboundOrderItem, 0, len(reqs))
	for _, r := range reqs {
		p, err := s.productRepo.GetBySKU(ctx, r.SKU)
		if err != nil {
			return nil, errors.Internal("[Inbound] get product by sku", err)
		}
		if p == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		items = append(items, model.InboundOrderItem{
			ProductID: p.ID,
			SKU:       p.SKU,
			Quantity:  r.Quantity,
			UnitPrice: r.UnitPrice,
		})
	}
	return items, nil
}

func (s *inboundAppImpl) notifyStockChanged(ctx context.Context, warehouseID uint64, keys []model.BalanceKey) {
	productIDs := make([]uint64, 0, len(keys))
	for _, k := range keys {
		productIDs = append(productIDs, k.ProductID)
	}
	msg := rabbitmq.StockChangedMessage{
		WarehouseID: warehouseID,
		ProductIDs:  productIDs,
		Reason:      string(constant.AuditActionInbound),
		OccurredAt:  time.Now().UTC(),
	}
	if err := s.publisher.PublishStockChanged(ctx, msg); err != nil {
		logger.Warn("[ConfirmInbound] publish stock changed", zap.String("error", err.Error()))
	}
}
