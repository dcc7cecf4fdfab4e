package inventory

import (
	"context"
	"time"

	"github.com/muhammadheryan/wms/application/ledger"
	"github.com/muhammadheryan/wms/constant"
	"github.com/muhammadheryan/wms/model"
	auditrepo "github.com/muhammadheryan/wms/repository/audit"
	inventoryrepo "github.com/muhammadheryan/wms/repository/inventory"
	productrepo "github.com/muhammadheryan/wms/repository/product"
	stocktakerepo "github.com/muhammadheryan/wms/repository/stocktake"
	txrepo "github.com/muhammadheryan/wms/repository/tx"
	warehouserepo "github.com/muhammadheryan/wms/repository/warehouse"
	"github.com/muhammadheryan/wms/thirdparty/rabbitmq"
	utilsContext "github.com/muhammadheryan/wms/utils/context"
	"github.com/muhammadheryan/wms/utils/errors"
	"github.com/muhammadheryan/wms/utils/logger"
	"go.uber.org/zap"
)

type InventoryApp interface {
	ListBalances(ctx context.Context, filter *model.InventoryFilter) ([]model.BalanceView, error)
	UpdateWarningThreshold(ctx context.Context, req *model.WarningThresholdRequest) error
	ListLowStock(ctx context.Context, warehouseID uint64) ([]model.BalanceView, error)
	ListAuditLogs(ctx context.Context, filter *model.AuditFilter) ([]model.AuditLog, error)
	Transfer(ctx context.Context, req *model.TransferRequest) (*model.TransferResponse, error)
	CreateStocktake(ctx context.Context, req *model.CreateStocktakeRequest) (*model.Stocktake, error)
	GetStocktake(ctx context.Context, stocktakeID uint64) (*model.Stocktake, error)
	SubmitStocktake(ctx context.Context, req *model.SubmitStocktakeRequest) (*model.SubmitStocktakeResponse, error)
}

type inventoryAppImpl struct {
	txRepo        txrepo.TxRepository
	inventoryRepo inventoryrepo.InventoryRepository
	auditRepo     auditrepo.AuditRepository
	productRepo   productrepo.ProductRepository
	warehouseRepo warehouserepo.WarehouseRepository
	stocktakeRepo stocktakerepo.StocktakeRepository
	ledger        ledger.Ledger
	publisher     *rabbitmq.Publisher
}

func NewInventoryApp(txRepo txrepo.TxRepository, inventoryRepo inventoryrepo.InventoryRepository, auditRepo auditrepo.AuditRepository,
	productRepo productrepo.ProductRepository, warehouseRepo warehouserepo.WarehouseRepository, stocktakeRepo stocktakerepo.StocktakeRepository,
	ledger ledger.Ledger, publisher *rabbitmq.Publisher) InventoryApp {
	return &inventoryAppImpl{
		txRepo:        txRepo,
		inventoryRepo: inventoryRepo,
		auditRepo:     auditRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		stocktakeRepo: stocktakeRepo,
		ledger:        ledger,
		publisher:     publisher,
	}
}

func (s *inventoryAppImpl) ListBalances(ctx context.Context, filter *model.InventoryFilter) ([]model.BalanceView, error) {
	principal, err := utilsContext.Authorize(ctx)
	if err != nil {
		return nil, err
	}
	if filter.WarehouseID != 0 && !principal.CanAccess(filter.WarehouseID) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	filter.WarehouseIDs = principal.ScopedWarehouses()

	out, err := s.inventoryRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Internal("[ListBalances] list inventory", err)
	}
	return out, nil
}

func (s *inventoryAppImpl) UpdateWarningThreshold(ctx context.Context, req *model.WarningThresholdRequest) error {
	if _, err := utilsContext.Authorize(ctx, req.WarehouseID); err != nil {
		return err
	}
	if req.WarningThreshold < 0 {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	p, err := s.resolveProduct(ctx, req.SKU)
	if err != nil {
		return err
	}
	wh, err := s.warehouseRepo.GetWarehouseByID(ctx, req.WarehouseID)
	if err != nil {
		return errors.Internal("[UpdateWarningThreshold] get warehouse", err)
	}
	if wh == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.inventoryRepo.SetWarningThreshold(ctx, req.WarehouseID, p.ID, req.WarningThreshold); err != nil {
		return errors.Internal("[UpdateWarningThreshold] set threshold", err)
	}
	return nil
}

func (s *inventoryAppImpl) ListLowStock(ctx context.Context, warehouseID uint64) ([]model.BalanceView, error) {
	principal, err := utilsContext.Authorize(ctx)
	if err != nil {
		return nil, err
	}
	scope := principal.ScopedWarehouses()
	if warehouseID != 0 {
		if !principal.CanAccess(warehouseID) {
			return nil, errors.SetCustomError(constant.ErrForbidden)
		}
		scope = []uint64{warehouseID}
	}

	out, err := s.inventoryRepo.ListLowStock(ctx, scope)
	if err != nil {
		return nil, errors.Internal("[ListLowStock] list low stock", err)
	}
	return out, nil
}

func (s *inventoryAppImpl) ListAuditLogs(ctx context.Context, filter *model.AuditFilter) ([]model.AuditLog, error) {
	principal, err := utilsContext.Authorize(ctx)
	if err != nil {
		return nil, err
	}
	if filter.WarehouseID != 0 && !principal.CanAccess(filter.WarehouseID) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	filter.WarehouseIDs = principal.ScopedWarehouses()

	out, err := s.auditRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Internal("[ListAuditLogs] list audit logs", err)
	}
	return out, nil
}

// Transfer moves available stock of one product between two warehouses. Everything
// that can be rejected is checked before the transaction starts; both sides and
// their audit rows then commit together.
func (s *inventoryAppImpl) Transfer(ctx context.Context, req *model.TransferRequest) (*model.TransferResponse, error) {
	principal, err := utilsContext.Authorize(ctx)
	if err != nil {
		return nil, err
	}
	if req.Quantity <= 0 || req.FromWarehouseID == req.ToWarehouseID {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if !principal.CanAccess(req.FromWarehouseID) || !principal.CanAccess(req.ToWarehouseID) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	for _, id := range []uint64{req.FromWarehouseID, req.ToWarehouseID} {
		wh, err := s.warehouseRepo.GetWarehouseByID(ctx, id)
		if err != nil {
			return nil, errors.Internal("[Transfer] get warehouse", err)
		}
		if wh == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
	}
	p, err := s.resolveProduct(ctx, req.SKU)
	if err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Transfer] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	from := model.BalanceKey{WarehouseID: req.FromWarehouseID, ProductID: p.ID}
	to := model.BalanceKey{WarehouseID: req.ToWarehouseID, ProductID: p.ID}
	locked, err := s.ledger.LockAll(ctx, tx, []model.BalanceKey{from, to})
	if err != nil {
		return nil, errors.Internal("[Transfer] lock balances", err)
	}
	if src := locked[from]; src == nil || src.AvailableQty < req.Quantity {
		return nil, errors.SetCustomError(constant.ErrInsufficientStock)
	}

	debit, err := s.ledger.Adjust(ctx, tx, &ledger.Entry{
		WarehouseID:    req.FromWarehouseID,
		ProductID:      p.ID,
		SKU:            p.SKU,
		DeltaAvailable: -req.Quantity,
		Action:         constant.AuditActionTransfer,
		OperatorID:     principal.UserID,
	})
	if err != nil {
		return nil, errors.Internal("[Transfer] debit source", err)
	}
	credit, err := s.ledger.Adjust(ctx, tx, &ledger.Entry{
		WarehouseID:    req.ToWarehouseID,
		ProductID:      p.ID,
		SKU:            p.SKU,
		DeltaAvailable: req.Quantity,
		Action:         constant.AuditActionTransfer,
		OperatorID:     principal.UserID,
	})
	if err != nil {
		return nil, errors.Internal("[Transfer] credit destination", err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		return nil, errors.Internal("[Transfer] commit tx", err)
	}
	committed = true

	s.notifyStockChanged(ctx, req.FromWarehouseID, []uint64{p.ID}, constant.AuditActionTransfer)
	s.notifyStockChanged(ctx, req.ToWarehouseID, []uint64{p.ID}, constant.AuditActionTransfer)

	return &model.TransferResponse{
		SKU:    p.SKU,
		From:   view(&debit.After, p),
		To:     view(&credit.After, p),
		Amount: req.Quantity,
	}, nil
}

func (s *inventoryAppImpl) CreateStocktake(ctx context.Context, req *model.CreateStocktakeRequest) (*model.Stocktake, error) {
	principal, err := utilsContext.Authorize(ctx, req.WarehouseID)
	if err != nil {
		return nil, err
	}
	wh, err := s.warehouseRepo.GetWarehouseByID(ctx, req.WarehouseID)
	if err != nil {
		return nil, errors.Internal("[CreateStocktake] get warehouse", err)
	}
	if wh == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	st := &model.Stocktake{
		WarehouseID: req.WarehouseID,
		Status:      constant.StocktakeStatusDraft,
		CreatedBy:   principal.UserID,
		CreatedAt:   time.Now().UTC(),
	}
	id, err := s.stocktakeRepo.Insert(ctx, st)
	if err != nil {
		return nil, errors.Internal("[CreateStocktake] insert stocktake", err)
	}
	st.ID = id
	st.Items = []model.StocktakeItem{}
	return st, nil
}

func (s *inventoryAppImpl) GetStocktake(ctx context.Context, stocktakeID uint64) (*model.Stocktake, error) {
	st, err := s.stocktakeRepo.Get(ctx, stocktakeID)
	if err != nil {
		return nil, errors.Internal("[GetStocktake] get stocktake", err)
	}
	if st == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if _, err := utilsContext.Authorize(ctx, st.WarehouseID); err != nil {
		return nil, err
	}
	return st, nil
}

// SubmitStocktake overwrites available stock with the counted quantities. A draft
// referenced by id is submitted; without an id a new stocktake is recorded as
// already submitted.
func (s *inventoryAppImpl) SubmitStocktake(ctx context.Context, req *model.SubmitStocktakeRequest) (*model.SubmitStocktakeResponse, error) {
	principal, err := utilsContext.Authorize(ctx, req.WarehouseID)
	if err != nil {
		return nil, err
	}
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	products := make([]*model.Product, 0, len(req.Items))
	keys := make([]model.BalanceKey, 0, len(req.Items))
	for _, it := range req.Items {
		if it.CountedQty < 0 {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		p, err := s.resolveProduct(ctx, it.SKU)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
		keys = append(keys, model.BalanceKey{WarehouseID: req.WarehouseID, ProductID: p.ID})
	}

	wh, err := s.warehouseRepo.GetWarehouseByID(ctx, req.WarehouseID)
	if err != nil {
		return nil, errors.Internal("[SubmitStocktake] get warehouse", err)
	}
	if wh == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[SubmitStocktake] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	now := time.Now().UTC()
	var stocktakeID uint64
	if req.StocktakeID != nil {
		st, err := s.stocktakeRepo.GetForUpdateTx(ctx, tx, *req.StocktakeID)
		if err != nil {
			return nil, errors.Internal("[SubmitStocktake] lock stocktake", err)
		}
		if st == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		if st.WarehouseID != req.WarehouseID {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		if !st.Status.CanTransitionTo(constant.StocktakeStatusSubmitted) {
			return nil, errors.SetCustomError(constant.ErrInvalidState)
		}
		if err := s.stocktakeRepo.SubmitTx(ctx, tx, st.ID, now); err != nil {
			return nil, errors.Internal("[SubmitStocktake] submit stocktake", err)
		}
		stocktakeID = st.ID
	} else {
		stocktakeID, err = s.stocktakeRepo.InsertTx(ctx, tx, &model.Stocktake{
			WarehouseID: req.WarehouseID,
			Status:      constant.StocktakeStatusSubmitted,
			CreatedBy:   principal.UserID,
			CreatedAt:   now,
			SubmittedAt: &now,
		})
		if err != nil {
			return nil, errors.Internal("[SubmitStocktake] insert stocktake", err)
		}
	}

	if _, err := s.ledger.LockAll(ctx, tx, keys); err != nil {
		return nil, errors.Internal("[SubmitStocktake] lock balances", err)
	}

	lines := make([]model.StocktakeLine, 0, len(req.Items))
	productIDs := make([]uint64, 0, len(req.Items))
	for i, it := range req.Items {
		p := products[i]
		change, err := s.ledger.Count(ctx, tx, &ledger.Entry{
			WarehouseID: req.WarehouseID,
			ProductID:   p.ID,
			SKU:         p.SKU,
			OperatorID:  principal.UserID,
		}, it.CountedQty)
		if err != nil {
			return nil, errors.Internal("[SubmitStocktake] apply count", err)
		}
		if err := s.stocktakeRepo.InsertItemTx(ctx, tx, stocktakeID, &model.StocktakeItem{
			ProductID:  p.ID,
			SKU:        p.SKU,
			CountedQty: it.CountedQty,
		}); err != nil {
			return nil, errors.Internal("[SubmitStocktake] insert item", err)
		}
		lines = append(lines, model.StocktakeLine{
			SKU:    p.SKU,
			OldQty: change.Before.AvailableQty,
			NewQty: change.After.AvailableQty,
			Delta:  change.After.AvailableQty - change.Before.AvailableQty,
		})
		productIDs = append(productIDs, p.ID)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		return nil, errors.Internal("[SubmitStocktake] commit tx", err)
	}
	committed = true

	s.notifyStockChanged(ctx, req.WarehouseID, productIDs, constant.AuditActionStocktake)

	return &model.SubmitStocktakeResponse{
		StocktakeID: stocktakeID,
		Status:      constant.StocktakeStatusSubmitted,
		Lines:       lines,
	}, nil
}

func (s *inventoryAppImpl) resolveProduct(ctx context.Context, sku string) (*model.Product, error) {
	p, err := s.productRepo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, errors.Internal("[Inventory] get product by sku", err)
	}
	if p == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return p, nil
}

func (s *inventoryAppImpl) notifyStockChanged(ctx context.Context, warehouseID uint64, productIDs []uint64, action constant.AuditAction) {
	msg := rabbitmq.StockChangedMessage{
		WarehouseID: warehouseID,
		ProductIDs:  productIDs,
		Reason:      string(action),
		OccurredAt:  time.Now().UTC(),
	}
	if err := s.publisher.PublishStockChanged(ctx, msg); err != nil {
		logger.Warn("[Inventory] publish stock changed", zap.String("error", err.Error()))
	}
}

func view(b *model.Balance, p *model.Product) model.BalanceView {
	return model.BalanceView{
		ID:               b.ID,
		WarehouseID:      b.WarehouseID,
		ProductID:        b.ProductID,
		SKU:              p.SKU,
		ProductName:      p.Name,
		AvailableQty:     b.AvailableQty,
		LockedQty:        b.LockedQty,
		WarningThreshold: b.WarningThreshold,
	}
}
