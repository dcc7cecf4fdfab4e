package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appinventory "github.com/muhammadheryan/wms/application/inventory"
	"github.com/muhammadheryan/wms/application/ledger"
	"github.com/muhammadheryan/wms/constant"
	ledgermocks "github.com/muhammadheryan/wms/mocks/application/ledger"
	auditmocks "github.com/muhammadheryan/wms/mocks/repository/audit"
	inventorymocks "github.com/muhammadheryan/wms/mocks/repository/inventory"
	productmocks "github.com/muhammadheryan/wms/mocks/repository/product"
	stocktakemocks "github.com/muhammadheryan/wms/mocks/repository/stocktake"
	txmocks "github.com/muhammadheryan/wms/mocks/repository/tx"
	warehousemocks "github.com/muhammadheryan/wms/mocks/repository/warehouse"
	"github.com/muhammadheryan/wms/model"
	utilsContext "github.com/muhammadheryan/wms/utils/context"
	cerr "github.com/muhammadheryan/wms/utils/errors"
	"github.com/stretchr/testify/mock"
)

var sku1 = &model.Product{ID: 1, SKU: "SKU-001", Name: "Widget"}

func adminCtx() context.Context {
	return utilsContext.WithPrincipal(context.Background(), &model.Principal{UserID: 1, Role: constant.RoleAdmin})
}

func operatorCtx(warehouseIDs ...uint64) context.Context {
	return utilsContext.WithPrincipal(context.Background(), &model.Principal{
		UserID:       7,
		Role:         constant.RoleOperator,
		WarehouseIDs: warehouseIDs,
	})
}

type fields struct {
	txRepo        *txmocks.TxRepository
	inventoryRepo *inventorymocks.InventoryRepository
	auditRepo     *auditmocks.AuditRepository
	productRepo   *productmocks.ProductRepository
	warehouseRepo *warehousemocks.WarehouseRepository
	stocktakeRepo *stocktakemocks.StocktakeRepository
	ledger        *ledgermocks.Ledger
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:        txmocks.NewTxRepository(t),
		inventoryRepo: inventorymocks.NewInventoryRepository(t),
		auditRepo:     auditmocks.NewAuditRepository(t),
		productRepo:   productmocks.NewProductRepository(t),
		warehouseRepo: warehousemocks.NewWarehouseRepository(t),
		stocktakeRepo: stocktakemocks.NewStocktakeRepository(t),
		ledger:        ledgermocks.NewLedger(t),
	}
}

func (f fields) app() appinventory.InventoryApp {
	return appinventory.NewInventoryApp(f.txRepo, f.inventoryRepo, f.auditRepo, f.productRepo, f.warehouseRepo, f.stocktakeRepo, f.ledger, nil)
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T (%v), want CustomError", err, err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestInventoryApp_Transfer(t *testing.T) {
	from := model.BalanceKey{WarehouseID: 1, ProductID: 1}
	to := model.BalanceKey{WarehouseID: 2, ProductID: 1}
	bothExist := func(f fields) {
		f.productRepo.On("GetBySKU", mock.Anything, "SKU-001").Return(sku1, nil).Once()
		f.warehouseRepo.On("GetWarehouseByID", mock.Anything, uint64(1)).Return(&model.Warehouse{ID: 1}, nil).Once()
		f.warehouseRepo.On("GetWarehouseByID", mock.Anything, uint64(2)).Return(&model.Warehouse{ID: 2}, nil).Once()
	}

	tests := []struct {
		name     string
		ctx      context.Context
		req      *model.TransferRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: 50/20 becomes 40/30 with two opposite audit entries",
			ctx:  adminCtx(),
			req:  &model.TransferRequest{FromWarehouseID: 1, ToWarehouseID: 2, SKU: "SKU-001", Quantity: 10},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				bothExist(f)
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.ledger.On("LockAll", mock.Anything, tx, []model.BalanceKey{from, to}).Return(map[model.BalanceKey]*model.Balance{
					from: {WarehouseID: 1, ProductID: 1, AvailableQty: 50},
					to:   {WarehouseID: 2, ProductID: 1, AvailableQty: 20},
				}, nil).Once()
				f.ledger.On("Adjust", mock.Anything, tx, &ledger.Entry{
					WarehouseID: 1, ProductID: 1, SKU: "SKU-001", DeltaAvailable: -10,
					Action: constant.AuditActionTransfer, OperatorID: 1,
				}).Return(&model.BalanceChange{
					Before: model.Balance{WarehouseID: 1, ProductID: 1, AvailableQty: 50},
					After:  model.Balance{WarehouseID: 1, ProductID: 1, AvailableQty: 40},
				}, nil).Once()
				f.ledger.On("Adjust", mock.Anything, tx, &ledger.Entry{
					WarehouseID: 2, ProductID: 1, SKU: "SKU-001", DeltaAvailable: 10,
					Action: constant.AuditActionTransfer, OperatorID: 1,
				}).Return(&model.BalanceChange{
					Before: model.Balance{WarehouseID: 2, ProductID: 1, AvailableQty: 20},
					After:  model.Balance{WarehouseID: 2, ProductID: 1, AvailableQty: 30},
				}, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name:    "error: zero quantity",
			ctx:     adminCtx(),
			req:     &model.TransferRequest{FromWarehouseID: 1, ToWarehouseID: 2, SKU: "SKU-001", Quantity: 0},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: same warehouse",
			ctx:     adminCtx(),
			req:     &model.TransferRequest{FromWarehouseID: 1, ToWarehouseID: 1, SKU: "SKU-001", Quantity: 1},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: unknown sku",
			ctx:  adminCtx(),
			req:  &model.TransferRequest{FromWarehouseID: 1, ToWarehouseID: 2, SKU: "NOPE", Quantity: 1},
			mockCall: func(f fields) {
				f.warehouseRepo.On("GetWarehouseByID", mock.Anything, uint64(1)).Return(&model.Warehouse{ID: 1}, nil).Once()
				f.warehouseRepo.On("GetWarehouseByID", mock.Anything, uint64(2)).Return(&model.Warehouse{ID: 2}, nil).Once()
				f.productRepo.On("GetBySKU", mock.Anything, "NOPE").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: destination missing is caught before any balance is touched",
			ctx:  adminCtx(),
			req:  &model.TransferRequest{FromWarehouseID: 1, ToWarehouseID: 99, SKU: "SKU-001", Quantity: 10},
			mockCall: func(f fields) {
				f.warehouseRepo.On("GetWarehouseByID", mock.Anything, uint64(1)).Return(&model.Warehouse{ID: 1}, nil).Once()
				f.warehouseRepo.On("GetWarehouseByID", mock.Anything, uint64(99)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: insufficient stock at source",
			ctx:  adminCtx(),
			req:  &model.TransferRequest{FromWarehouseID: 1, ToWarehouseID: 2, SKU: "SKU-001", Quantity: 100},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				bothExist(f)
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.ledger.On("LockAll", mock.Anything, tx, mock.Anything).Return(map[model.BalanceKey]*model.Balance{
					from: {WarehouseID: 1, ProductID: 1, AvailableQty: 40},
					to:   {WarehouseID: 2, ProductID: 1, AvailableQty: 30},
				}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: credit failure rolls back the debit",
			ctx:  adminCtx(),
			req:  &model.TransferRequest{FromWarehouseID: 1, ToWarehouseID: 2, SKU: "SKU-001", Quantity: 10},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				bothExist(f)
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.ledger.On("LockAll", mock.Anything, tx, mock.Anything).Return(map[model.BalanceKey]*model.Balance{
					from: {WarehouseID: 1, ProductID: 1, AvailableQty: 50},
				}, nil).Once()
				f.ledger.On("Adjust", mock.Anything, tx, mock.Anything).Return(&model.BalanceChange{}, nil).Once()
				f.ledger.On("Adjust", mock.Anything, tx, mock.Anything).Return(nil, cerr.SetCustomError(constant.ErrConflict)).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name:    "error: operator without access to destination",
			ctx:     operatorCtx(1),
			req:     &model.TransferRequest{FromWarehouseID: 1, ToWarehouseID: 2, SKU: "SKU-001", Quantity: 10},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:    "error: out of scope warehouse id reads as forbidden, not missing",
			ctx:     operatorCtx(1),
			req:     &model.TransferRequest{FromWarehouseID: 1, ToWarehouseID: 99, SKU: "SKU-001", Quantity: 10},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().Transfer(tt.ctx, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Transfer() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.From.AvailableQty != 40 || got.To.AvailableQty != 30 || got.Amount != 10 {
				t.Fatalf("Transfer() = %+v", got)
			}
		})
	}
}

func TestInventoryApp_SubmitStocktake(t *testing.T) {
	draftID := uint64(4)
	items := []model.StocktakeItemRequest{{SKU: "SKU-001", CountedQty: 30}}
	key := model.BalanceKey{WarehouseID: 1, ProductID: 1}

	tests := []struct {
		name     string
		req      *model.SubmitStocktakeRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: new stocktake overwrites 45 with 30",
			req:  &model.SubmitStocktakeRequest{WarehouseID: 1, Items: items},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.productRepo.On("GetBySKU", mock.Anything, "SKU-001").Return(sku1, nil).Once()
				f.warehouseRepo.On("GetWarehouseByID", mock.Anything, uint64(1)).Return(&model.Warehouse{ID: 1}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.stocktakeRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(st *model.Stocktake) bool {
					return st.Status == constant.StocktakeStatusSubmitted && st.SubmittedAt != nil
				})).Return(uint64(4), nil).Once()
				f.ledger.On("LockAll", mock.Anything, tx, []model.BalanceKey{key}).Return(map[model.BalanceKey]*model.Balance{}, nil).Once()
				f.ledger.On("Count", mock.Anything, tx, &ledger.Entry{
					WarehouseID: 1, ProductID: 1, SKU: "SKU-001", OperatorID: 1,
				}, int64(30)).Return(&model.BalanceChange{
					Before: model.Balance{AvailableQty: 45},
					After:  model.Balance{AvailableQty: 30},
				}, nil).Once()
				f.stocktakeRepo.On("InsertItemTx", mock.Anything, tx, uint64(4), mock.MatchedBy(func(it *model.StocktakeItem) bool {
					return it.ProductID == 1 && it.CountedQty == 30
				})).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name: "success: draft is submitted",
			req:  &model.SubmitStocktakeRequest{WarehouseID: 1, StocktakeID: &draftID, Items: items},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.productRepo.On("GetBySKU", mock.Anything, "SKU-001").Return(sku1, nil).Once()
				f.warehouseRepo.On("GetWarehouseByID", mock.Anything, uint64(1)).Return(&model.Warehouse{ID: 1}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.stocktakeRepo.On("GetForUpdateTx", mock.Anything, tx, draftID).
					Return(&model.Stocktake{ID: 4, WarehouseID: 1, Status: constant.StocktakeStatusDraft}, nil).Once()
				f.stocktakeRepo.On("SubmitTx", mock.Anything, tx, draftID, mock.Anything).Return(nil).Once()
				f.ledger.On("LockAll", mock.Anything, tx, mock.Anything).Return(map[model.BalanceKey]*model.Balance{}, nil).Once()
				f.ledger.On("Count", mock.Anything, tx, mock.Anything, int64(30)).Return(&model.BalanceChange{
					Before: model.Balance{AvailableQty: 45},
					After:  model.Balance{AvailableQty: 30},
				}, nil).Once()
				f.stocktakeRepo.On("InsertItemTx", mock.Anything, tx, draftID, mock.Anything).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name: "error: resubmitting a submitted stocktake",
			req:  &model.SubmitStocktakeRequest{WarehouseID: 1, StocktakeID: &draftID, Items: items},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.productRepo.On("GetBySKU", mock.Anything, "SKU-001").Return(sku1, nil).Once()
				f.warehouseRepo.On("GetWarehouseByID", mock.Anything, uint64(1)).Return(&model.Warehouse{ID: 1}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.stocktakeRepo.On("GetForUpdateTx", mock.Anything, tx, draftID).
					Return(&model.Stocktake{ID: 4, WarehouseID: 1, Status: constant.StocktakeStatusSubmitted}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidState,
		},
		{
			name: "error: stocktake of another warehouse",
			req:  &model.SubmitStocktakeRequest{WarehouseID: 1, StocktakeID: &draftID, Items: items},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.productRepo.On("GetBySKU", mock.Anything, "SKU-001").Return(sku1, nil).Once()
				f.warehouseRepo.On("GetWarehouseByID", mock.Anything, uint64(1)).Return(&model.Warehouse{ID: 1}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.stocktakeRepo.On("GetForUpdateTx", mock.Anything, tx, draftID).
					Return(&model.Stocktake{ID: 4, WarehouseID: 2, Status: constant.StocktakeStatusDraft}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: unknown sku",
			req:  &model.SubmitStocktakeRequest{WarehouseID: 1, Items: []model.StocktakeItemRequest{{SKU: "NOPE", CountedQty: 1}}},
			mockCall: func(f fields) {
				f.warehouseRepo.On("GetWarehouseByID", mock.Anything, uint64(1)).Return(&model.Warehouse{ID: 1}, nil).Once()
				f.warehouseRepo.On("GetWarehouseByID", mock.Anything, uint64(2)).Return(&model.Warehouse{ID: 2}, nil).Once()
				f.productRepo.On("GetBySKU", mock.Anything, "NOPE").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:    "error: negative count",
			req:     &model.SubmitStocktakeRequest{WarehouseID: 1, Items: []model.StocktakeItemRequest{{SKU: "SKU-001", CountedQty: -1}}},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().SubmitStocktake(adminCtx(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SubmitStocktake() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.StocktakeID != 4 || got.Status != constant.StocktakeStatusSubmitted || len(got.Lines) != 1 {
				t.Fatalf("SubmitStocktake() = %+v", got)
			}
			if line := got.Lines[0]; line.OldQty != 45 || line.NewQty != 30 || line.Delta != -15 {
				t.Fatalf("SubmitStocktake() line = %+v", line)
			}
		})
	}
}

func TestInventoryApp_ListBalances_ScopesOperator(t *testing.T) {
	f := newFields(t)
	f.inventoryRepo.On("List", mock.Anything, &model.InventoryFilter{SKU: "SKU", WarehouseIDs: []uint64{1}}).
		Return([]model.BalanceView{{WarehouseID: 1, SKU: "SKU-001"}}, nil).Once()

	got, err := f.app().ListBalances(operatorCtx(1), &model.InventoryFilter{SKU: "SKU"})
	if err != nil {
		t.Fatalf("ListBalances() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ListBalances() = %+v", got)
	}

	_, err = f.app().ListBalances(operatorCtx(1), &model.InventoryFilter{WarehouseID: 2})
	assertErrCode(t, err, constant.ErrForbidden)
}
