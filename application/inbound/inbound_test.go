package inbound_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appinbound "github.com/muhammadheryan/wms/application/inbound"
	"github.com/muhammadheryan/wms/application/ledger"
	"github.com/muhammadheryan/wms/constant"
	ledgermocks "github.com/muhammadheryan/wms/mocks/application/ledger"
	inboundmocks "github.com/muhammadheryan/wms/mocks/repository/inbound"
	productmocks "github.com/muhammadheryan/wms/mocks/repository/product"
	txmocks "github.com/muhammadheryan/wms/mocks/repository/tx"
	warehousemocks "github.com/muhammadheryan/wms/mocks/repository/warehouse"
	"github.com/muhammadheryan/wms/model"
	utilsContext "github.com/muhammadheryan/wms/utils/context"
	cerr "github.com/muhammadheryan/wms/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func operatorCtx(warehouseIDs ...uint64) context.Context {
	return utilsContext.WithPrincipal(context.Background(), &model.Principal{
		UserID:       7,
		Role:         constant.RoleOperator,
		WarehouseIDs: warehouseIDs,
	})
}

type fields struct {
	txRepo        *txmocks.TxRepository
	inboundRepo   *inboundmocks.InboundRepository
	productRepo   *productmocks.ProductRepository
	warehouseRepo *warehousemocks.WarehouseRepository
	ledger        *ledgermocks.Ledger
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:        txmocks.NewTxRepository(t),
		inboundRepo:   inboundmocks.NewInboundRepository(t),
		productRepo:   productmocks.NewProductRepository(t),
		warehouseRepo: warehousemocks.NewWarehouseRepository(t),
		ledger:        ledgermocks.NewLedger(t),
	}
}

func (f fields) app() appinbound.InboundApp {
	return appinbound.NewInboundApp(f.txRepo, f.inboundRepo, f.productRepo, f.warehouseRepo, f.ledger, nil)
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

func TestInboundApp_Create(t *testing.T) {
	sku1 := &model.Product{ID: 1, SKU: "SKU-001"}
	tests := []struct {
		name     string
		ctx      context.Context
		req      *model.CreateInboundRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: pending order with resolved items",
			ctx:  operatorCtx(1),
			req: &model.CreateInboundRequest{
				WarehouseID: 1,
				Items:       []model.InboundItemRequest{{SKU: "SKU-001", Quantity: 10, UnitPrice: decimal.RequireFromString("2.50")}},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.warehouseRepo.On("GetWarehouseByID", mock.Anything, uint64(1)).Return(&model.Warehouse{ID: 1, Name: "WH-A"}, nil).Once()
				f.productRepo.On("GetBySKU", mock.Anything, "SKU-001").Return(sku1, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.inboundRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(o *model.InboundOrder) bool {
					return o.WarehouseID == 1 && o.Status == constant.InboundStatusPending && o.CreatedBy == 7
				})).Return(uint64(11), nil).Once()
				f.inboundRepo.On("InsertItemsTx", mock.Anything, tx, uint64(11), mock.MatchedBy(func(items []model.InboundOrderItem) bool {
					return len(items) == 1 && items[0].ProductID == 1 && items[0].Quantity == 10 && items[0].UnitPrice.String() == "2.5"
				})).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name: "error: empty items",
			ctx:  operatorCtx(1),
			req:     &model.CreateInboundRequest{WarehouseID: 1},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: negative unit price",
			ctx:  operatorCtx(1),
			req: &model.CreateInboundRequest{
				WarehouseID: 1,
				Items:       []model.InboundItemRequest{{SKU: "SKU-001", Quantity: 1, UnitPrice: decimal.NewFromInt(-1)}},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: zero quantity",
			ctx:  operatorCtx(1),
			req: &model.CreateInboundRequest{
				WarehouseID: 1,
				Items:       []model.InboundItemRequest{{SKU: "SKU-001", Quantity: 0}},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: negative quantity in a later item",
			ctx:  operatorCtx(1),
			req: &model.CreateInboundRequest{
				WarehouseID: 1,
				Items: []model.InboundItemRequest{
					{SKU: "SKU-001", Quantity: 3},
					{SKU: "SKU-002", Quantity: -2},
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: unknown sku",
			ctx:  operatorCtx(1),
			req: &model.CreateInboundRequest{
				WarehouseID: 1,
				Items:       []model.InboundItemRequest{{SKU: "NOPE", Quantity: 1}},
			},
			mockCall: func(f fields) {
				f.warehouseRepo.On("GetWarehouseByID", mock.Anything, uint64(1)).Return(&model.Warehouse{ID: 1}, nil).Once()
				f.productRepo.On("GetBySKU", mock.Anything, "NOPE").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: unknown warehouse",
			ctx:  operatorCtx(9),
			req: &model.CreateInboundRequest{
				WarehouseID: 9,
				Items:       []model.InboundItemRequest{{SKU: "SKU-001", Quantity: 1}},
			},
			mockCall: func(f fields) {
				f.warehouseRepo.On("GetWarehouseByID", mock.Anything, uint64(9)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: warehouse outside operator scope",
			ctx:  operatorCtx(2),
			req: &model.CreateInboundRequest{
				WarehouseID: 1,
				Items:       []model.InboundItemRequest{{SKU: "SKU-001", Quantity: 1}},
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:    "error: no principal",
			ctx:     context.Background(),
			req:     &model.CreateInboundRequest{WarehouseID: 1},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().Create(tt.ctx, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.ID != 11 || got.Status != constant.InboundStatusPending || len(got.Items) != 1 {
				t.Fatalf("Create() = %+v", got)
			}
		})
	}
}

func TestInboundApp_Confirm(t *testing.T) {
	items := []model.InboundOrderItem{
		{ID: 1, InboundOrderID: 5, ProductID: 1, SKU: "SKU-001", Quantity: 10},
		{ID: 2, InboundOrderID: 5, ProductID: 2, SKU: "SKU-002", Quantity: 3},
	}
	tests := []struct {
		name     string
		ctx      context.Context
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: every item adds stock with an INBOUND entry",
			ctx:  operatorCtx(1),
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.inboundRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(&model.InboundOrder{ID: 5, WarehouseID: 1, Status: constant.InboundStatusPending}, nil).Once()
				f.inboundRepo.On("GetItemsTx", mock.Anything, tx, uint64(5)).Return(items, nil).Once()
				f.ledger.On("LockAll", mock.Anything, tx, []model.BalanceKey{
					{WarehouseID: 1, ProductID: 1}, {WarehouseID: 1, ProductID: 2},
				}).Return(map[model.BalanceKey]*model.Balance{}, nil).Once()
				f.ledger.On("Adjust", mock.Anything, tx, &ledger.Entry{
					WarehouseID: 1, ProductID: 1, SKU: "SKU-001", DeltaAvailable: 10,
					Action: constant.AuditActionInbound, OperatorID: 7,
				}).Return(&model.BalanceChange{}, nil).Once()
				f.ledger.On("Adjust", mock.Anything, tx, &ledger.Entry{
					WarehouseID: 1, ProductID: 2, SKU: "SKU-002", DeltaAvailable: 3,
					Action: constant.AuditActionInbound, OperatorID: 7,
				}).Return(&model.BalanceChange{}, nil).Once()
				f.inboundRepo.On("ConfirmTx", mock.Anything, tx, uint64(5), mock.Anything).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name: "error: already confirmed has no ledger effect",
			ctx:  operatorCtx(1),
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.inboundRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(&model.InboundOrder{ID: 5, WarehouseID: 1, Status: constant.InboundStatusConfirmed}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidState,
		},
		{
			name: "error: order not found",
			ctx:  operatorCtx(1),
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.inboundRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(5)).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: lock conflict rolls back without status change",
			ctx:  operatorCtx(1),
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.inboundRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(&model.InboundOrder{ID: 5, WarehouseID: 1, Status: constant.InboundStatusPending}, nil).Once()
				f.inboundRepo.On("GetItemsTx", mock.Anything, tx, uint64(5)).Return(items, nil).Once()
				f.ledger.On("LockAll", mock.Anything, tx, mock.Anything).Return(map[model.BalanceKey]*model.Balance{}, nil).Once()
				f.ledger.On("Adjust", mock.Anything, tx, mock.Anything).Return(&model.BalanceChange{}, nil).Once()
				f.ledger.On("Adjust", mock.Anything, tx, mock.Anything).Return(nil, cerr.SetCustomError(constant.ErrConflict)).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name: "error: operator of another warehouse",
			ctx:  operatorCtx(2),
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.inboundRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(&model.InboundOrder{ID: 5, WarehouseID: 1, Status: constant.InboundStatusPending}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
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

			got, err := f.app().Confirm(tt.ctx, 5)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Confirm() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.Status != constant.InboundStatusConfirmed || got.ConfirmedAt == nil {
				t.Fatalf("Confirm() status = %s, confirmed_at = %v", got.Status, got.ConfirmedAt)
			}
		})
	}
}

func TestInboundApp_UpdateItems(t *testing.T) {
	pending := &model.InboundOrder{ID: 5, WarehouseID: 1, Status: constant.InboundStatusPending}
	tests := []struct {
		name     string
		ctx      context.Context
		items    []model.InboundItemRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: pending order items replaced",
			ctx:   operatorCtx(1),
			items: []model.InboundItemRequest{{SKU: "SKU-002", Quantity: 4, UnitPrice: decimal.NewFromInt(3)}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.inboundRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(5)).Return(pending, nil).Once()
				f.productRepo.On("GetBySKU", mock.Anything, "SKU-002").Return(&model.Product{ID: 2, SKU: "SKU-002"}, nil).Once()
				f.inboundRepo.On("ReplaceItemsTx", mock.Anything, tx, uint64(5), mock.MatchedBy(func(items []model.InboundOrderItem) bool {
					return len(items) == 1 && items[0].ProductID == 2 && items[0].Quantity == 4
				})).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name:  "error: confirmed order is not editable",
			ctx:   operatorCtx(1),
			items: []model.InboundItemRequest{{SKU: "SKU-001", Quantity: 4}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.inboundRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(&model.InboundOrder{ID: 5, WarehouseID: 1, Status: constant.InboundStatusConfirmed}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidState,
		},
		{
			name:    "error: zero quantity rejected before any lookup",
			ctx:     operatorCtx(1),
			items:   []model.InboundItemRequest{{SKU: "SKU-001", Quantity: 0}},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: empty items",
			ctx:     operatorCtx(1),
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:  "error: other warehouse is forbidden before sku lookup",
			ctx:   operatorCtx(2),
			items: []model.InboundItemRequest{{SKU: "SKU-001", Quantity: 4}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.inboundRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(5)).Return(pending, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:  "error: unknown sku rolls back",
			ctx:   operatorCtx(1),
			items: []model.InboundItemRequest{{SKU: "NOPE", Quantity: 4}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.inboundRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(5)).Return(pending, nil).Once()
				f.productRepo.On("GetBySKU", mock.Anything, "NOPE").Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:    "error: no principal",
			ctx:     context.Background(),
			items:   []model.InboundItemRequest{{SKU: "SKU-001", Quantity: 4}},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().UpdateItems(tt.ctx, 5, &model.UpdateInboundRequest{Items: tt.items})
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateItems() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.Status != constant.InboundStatusPending || len(got.Items) != 1 || got.Items[0].SKU != "SKU-002" {
				t.Fatalf("UpdateItems() = %+v", got)
			}
		})
	}
}
