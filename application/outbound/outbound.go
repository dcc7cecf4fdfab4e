package outbound

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms/application/ledger"
	"github.com/muhammadheryan/wms/constant"
	"github.com/muhammadheryan/wms/model"
	outboundrepo "github.com/muhammadheryan/wms/repository/outbound"
	productrepo "github.com/muhammadheryan/wms/repository/product"
	txrepo "github.com/muhammadheryan/wms/repository/tx"
	warehouserepo "github.com/muhammadheryan/wms/repository/warehouse"
	"github.com/muhammadheryan/wms/thirdparty/carrier"
	"github.com/muhammadheryan/wms/thirdparty/rabbitmq"
	utilsContext "github.com/muhammadheryan/wms/utils/context"
	"github.com/muhammadheryan/wms/utils/errors"
	"github.com/muhammadheryan/wms/utils/logger"
	"go.uber.org/zap"
)

type OutboundApp interface {
	Create(ctx context.Context, req *model.CreateOutboundRequest) (*model.OutboundOrder, error)
	Get(ctx context.Context, orderID uint64) (*model.OutboundOrder, error)
	List(ctx context.Context, warehouseID uint64) ([]model.OutboundOrder, error)
	Pick(ctx context.Context, orderID uint64) (*model.OutboundOrder, error)
	Ship(ctx context.Context, orderID uint64, req *model.ShipRequest) (*model.OutboundOrder, error)
	Delete(ctx context.Context, orderID uint64) error
}

type outboundAppImpl struct {
	txRepo        txrepo.TxRepository
	outboundRepo  outboundrepo.OutboundRepository
	productRepo   productrepo.ProductRepository
	warehouseRepo warehouserepo.WarehouseRepository
	ledger        ledger.Ledger
	carrier       carrier.Client
	publisher     *rabbitmq.Publisher
}

func NewOutboundApp(txRepo txrepo.TxRepository, outboundRepo outboundrepo.OutboundRepository, productRepo productrepo.ProductRepository,
	warehouseRepo warehouserepo.WarehouseRepository, ledger ledger.Ledger, carrier carrier.Client, publisher *rabbitmq.Publisher) OutboundApp {
	return &outboundAppImpl{
		txRepo:        txRepo,
		outboundRepo:  outboundRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		ledger:        ledger,
		carrier:       carrier,
		publisher:     publisher,
	}
}

// Create stores the order and reserves every line (available -> locked) in one
// transaction. A single short line fails the whole order.
func (s *outboundAppImpl) Create(ctx context.Context, req *model.CreateOutboundRequest) (*model.OutboundOrder, error) {
	principal, err := utilsContext.Authorize(ctx, req.WarehouseID)
	if err != nil {
		return nil, err
	}

	wh, err := s.warehouseRepo.GetWarehouseByID(ctx, req.WarehouseID)
	if err != nil {
		return nil, errors.Internal("[CreateOutbound] get warehouse", err)
	}
	if wh == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	items := make([]model.OutboundOrderItem, 0, len(req.Items))
	keys := make([]model.BalanceKey, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		p, err := s.productRepo.GetBySKU(ctx, it.SKU)
		if err != nil {
			return nil, errors.Internal("[CreateOutbound] get product by sku", err)
		}
		if p == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		items = append(items, model.OutboundOrderItem{ProductID: p.ID, SKU: p.SKU, Quantity: it.Quantity})
		keys = append(keys, model.BalanceKey{WarehouseID: req.WarehouseID, ProductID: p.ID})
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateOutbound] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if _, err := s.ledger.LockAll(ctx, tx, keys); err != nil {
		return nil, errors.Internal("[CreateOutbound] lock balances", err)
	}

	order := &model.OutboundOrder{
		WarehouseID: req.WarehouseID,
		Status:      constant.OutboundStatusPendingPick,
		CreatedBy:   principal.UserID,
		CreatedAt:   time.Now().UTC(),
	}
	orderID, err := s.outboundRepo.InsertTx(ctx, tx, order)
	if err != nil {
		return nil, errors.Internal("[CreateOutbound] insert order", err)
	}
	if err := s.outboundRepo.InsertItemsTx(ctx, tx, orderID, items); err != nil {
		return nil, errors.Internal("[CreateOutbound] insert items", err)
	}

	// reserve per item
	for _, it := range items {
		if _, err := s.ledger.Adjust(ctx, tx, &ledger.Entry{
			WarehouseID:    req.WarehouseID,
			ProductID:      it.ProductID,
			SKU:            it.SKU,
			DeltaAvailable: -it.Quantity,
			DeltaLocked:    it.Quantity,
			OperatorID:     principal.UserID,
		}); err != nil {
			if errors.Is(err, constant.ErrInsufficientStock) {
				logger.Info("[CreateOutbound] insufficient stock", zap.String("sku", it.SKU), zap.Int64("need", it.Quantity))
			}
			return nil, errors.Internal("[CreateOutbound] reserve stock", err)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		return nil, errors.Internal("[CreateOutbound] commit tx", err)
	}
	committed = true

	s.notifyStockChanged(ctx, req.WarehouseID, items, "RESERVE")

	order.ID = orderID
	order.Items = items
	return order, nil
}

func (s *outboundAppImpl) Get(ctx context.Context, orderID uint64) (*model.OutboundOrder, error) {
	order, err := s.outboundRepo.Get(ctx, orderID)
	if err != nil {
		return nil, errors.Internal("[GetOutbound] get order", err)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if _, err := utilsContext.Authorize(ctx, order.WarehouseID); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *outboundAppImpl) List(ctx context.Context, warehouseID uint64) ([]model.OutboundOrder, error) {
	principal, err := utilsContext.Authorize(ctx)
	if err != nil {
		return nil, err
	}
	if warehouseID != 0 && !principal.CanAccess(warehouseID) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	orders, err := s.outboundRepo.List(ctx, &model.OrderFilter{
		WarehouseID:  warehouseID,
		WarehouseIDs: principal.ScopedWarehouses(),
	})
	if err != nil {
		return nil, errors.Internal("[ListOutbound] list orders", err)
	}
	return orders, nil
}

// Pick is a pure status change; the reservation made at creation stays as is.
func (s *outboundAppImpl) Pick(ctx context.Context, orderID uint64) (*model.OutboundOrder, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[PickOutbound] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.lockOrder(ctx, tx, orderID, "[PickOutbound]")
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(constant.OutboundStatusPicked) {
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}

	pickedAt := time.Now().UTC()
	if err := s.outboundRepo.UpdateStatusTx(ctx, tx, orderID, constant.OutboundStatusPicked, pickedAt); err != nil {
		return nil, errors.Internal("[PickOutbound] update status", err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		return nil, errors.Internal("[PickOutbound] commit tx", err)
	}
	committed = true

	order.Status = constant.OutboundStatusPicked
	order.PickedAt = &pickedAt
	return order, nil
}

// Ship consumes the reservation (locked -= q) with an OUTBOUND audit entry per
// line and hands the shipment to the carrier before committing. A carrier
// failure rolls everything back and leaves the order PICKED.
func (s *outboundAppImpl) Ship(ctx context.Context, orderID uint64, req *model.ShipRequest) (*model.OutboundOrder, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ShipOutbound] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.lockOrder(ctx, tx, orderID, "[ShipOutbound]")
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(constant.OutboundStatusShipped) {
		return nil, errors.SetCustomError(constant.ErrInvalidState)
	}
	principal, _ := utilsContext.GetPrincipal(ctx)

	items, err := s.outboundRepo.GetItemsTx(ctx, tx, orderID)
	if err != nil {
		return nil, errors.Internal("[ShipOutbound] get items", err)
	}
	if _, err := s.ledger.LockAll(ctx, tx, itemKeys(order.WarehouseID, items)); err != nil {
		return nil, errors.Internal("[ShipOutbound] lock balances", err)
	}

	for _, it := range items {
		if _, err := s.ledger.Adjust(ctx, tx, &ledger.Entry{
			WarehouseID: order.WarehouseID,
			ProductID:   it.ProductID,
			SKU:         it.SKU,
			DeltaLocked: -it.Quantity,
			Action:      constant.AuditActionOutbound,
			Audit:       ledger.AuditOnHand,
			OperatorID:  principal.UserID,
		}); err != nil {
			return nil, errors.Internal("[ShipOutbound] consume reservation", err)
		}
	}

	if err := s.carrier.Dispatch(ctx, &model.Shipment{
		OrderID:      order.ID,
		WarehouseID:  order.WarehouseID,
		Items:        items,
		SimulateFail: req.SimulateFail,
	}); err != nil {
		logger.Warn("[ShipOutbound] carrier dispatch failed", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrShipFailed)
	}

	shippedAt := time.Now().UTC()
	if err := s.outboundRepo.UpdateStatusTx(ctx, tx, orderID, constant.OutboundStatusShipped, shippedAt); err != nil {
		return nil, errors.Internal("[ShipOutbound] update status", err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		return nil, errors.Internal("[ShipOutbound] commit tx", err)
	}
	committed = true

	s.notifyStockChanged(ctx, order.WarehouseID, items, string(constant.AuditActionOutbound))

	order.Status = constant.OutboundStatusShipped
	order.ShippedAt = &shippedAt
	order.Items = items
	return order, nil
}

// Delete drops a PENDING_PICK order and gives its reservation back to available.
func (s *outboundAppImpl) Delete(ctx context.Context, orderID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteOutbound] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.lockOrder(ctx, tx, orderID, "[DeleteOutbound]")
	if err != nil {
		return err
	}
	if !order.Status.Deletable() {
		return errors.SetCustomError(constant.ErrInvalidState)
	}
	principal, _ := utilsContext.GetPrincipal(ctx)

	items, err := s.outboundRepo.GetItemsTx(ctx, tx, orderID)
	if err != nil {
		return errors.Internal("[DeleteOutbound] get items", err)
	}
	if _, err := s.ledger.LockAll(ctx, tx, itemKeys(order.WarehouseID, items)); err != nil {
		return errors.Internal("[DeleteOutbound] lock balances", err)
	}

	// release reservations
	for _, it := range items {
		if _, err := s.ledger.Adjust(ctx, tx, &ledger.Entry{
			WarehouseID:    order.WarehouseID,
			ProductID:      it.ProductID,
			SKU:            it.SKU,
			DeltaAvailable: it.Quantity,
			DeltaLocked:    -it.Quantity,
			OperatorID:     principal.UserID,
		}); err != nil {
			return errors.Internal("[DeleteOutbound] release reservation", err)
		}
	}

	if err := s.outboundRepo.DeleteTx(ctx, tx, orderID); err != nil {
		return errors.Internal("[DeleteOutbound] delete order", err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		return errors.Internal("[DeleteOutbound] commit tx", err)
	}
	committed = true

	s.notifyStockChanged(ctx, order.WarehouseID, items, "RELEASE")
	return nil
}

// lockOrder loads the order FOR UPDATE and checks the caller may touch its warehouse.
func (s *outboundAppImpl) lockOrder(ctx context.Context, tx *sqlx.Tx, orderID uint64, op string) (*model.OutboundOrder, error) {
	order, err := s.outboundRepo.GetForUpdateTx(ctx, tx, orderID)
	if err != nil {
		return nil, errors.Internal(op+" lock order", err)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if _, err := utilsContext.Authorize(ctx, order.WarehouseID); err != nil {
		return nil, err
	}
	return order, nil
}

func itemKeys(warehouseID uint64, items []model.OutboundOrderItem) []model.BalanceKey {
	keys := make([]model.BalanceKey, 0, len(items))
	for _, it := range items {
		keys = append(keys, model.BalanceKey{WarehouseID: warehouseID, ProductID: it.ProductID})
	}
	return keys
}

func (s *outboundAppImpl) notifyStockChanged(ctx context.Context, warehouseID uint64, items []model.OutboundOrderItem, reason string) {
	productIDs := make([]uint64, 0, len(items))
	for _, it := range items {
		productIDs = append(productIDs, it.ProductID)
	}
	msg := rabbitmq.StockChangedMessage{
		WarehouseID: warehouseID,
		ProductIDs:  productIDs,
		Reason:      reason,
		OccurredAt:  time.Now().UTC(),
	}
	if err := s.publisher.PublishStockChanged(ctx, msg); err != nil {
		logger.Warn("[Outbound] publish stock changed", zap.String("error", err.Error()))
	}
}
