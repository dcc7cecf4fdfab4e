package transport_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/muhammadheryan/wms/constant"
	alertmocks "github.com/muhammadheryan/wms/mocks/application/alert"
	inventorymocks "github.com/muhammadheryan/wms/mocks/application/inventory"
	outboundmocks "github.com/muhammadheryan/wms/mocks/application/outbound"
	usermocks "github.com/muhammadheryan/wms/mocks/application/user"
	"github.com/muhammadheryan/wms/model"
	"github.com/muhammadheryan/wms/transport"
	cerr "github.com/muhammadheryan/wms/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const internalKey = "internal-test-key"

type deps struct {
	userApp      *usermocks.UserApp
	outboundApp  *outboundmocks.OutboundApp
	inventoryApp *inventorymocks.InventoryApp
	lowStockApp  *alertmocks.LowStockApp
}

func newServer(t *testing.T) (http.Handler, deps) {
	d := deps{
		userApp:      usermocks.NewUserApp(t),
		outboundApp:  outboundmocks.NewOutboundApp(t),
		inventoryApp: inventorymocks.NewInventoryApp(t),
		lowStockApp:  alertmocks.NewLowStockApp(t),
	}
	h := transport.NewTransport(&transport.RestHandler{
		UserApp:      d.userApp,
		OutboundApp:  d.outboundApp,
		InventoryApp: d.inventoryApp,
		LowStockApp:  d.lowStockApp,
	}, transport.Options{
		CORSOrigins:    []string{"http://localhost:5173"},
		InternalAPIKey: internalKey,
	})
	return h, d
}

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func authed(d deps, role constant.Role, warehouseIDs ...uint64) {
	d.userApp.On("ValidateToken", mock.Anything, "good-token").Return(&model.Principal{
		UserID:       1,
		SessionID:    "s1",
		Role:         role,
		WarehouseIDs: warehouseIDs,
	}, nil)
}

func bearer(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer good-token")
	return req
}

func TestHealth_NoTokenNeeded(t *testing.T) {
	h, _ := newServer(t)

	rec, env := do(t, h, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", env.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestLogging_RequestID(t *testing.T) {
	h, _ := newServer(t)

	rec, _ := do(t, h, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "trace-42")
	rec, _ = do(t, h, req)
	assert.Equal(t, "trace-42", rec.Header().Get("X-Request-ID"))
}

func TestAuth_MissingAndInvalidToken(t *testing.T) {
	h, d := newServer(t)

	rec, env := do(t, h, httptest.NewRequest(http.MethodGet, "/api/outbound", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", env.Code)
	assert.Contains(t, rec.Body.String(), `"data":null`)

	d.userApp.On("ValidateToken", mock.Anything, "stale").Return(nil, errors.New("invalid or expired session")).Once()
	req := httptest.NewRequest(http.MethodGet, "/api/outbound", nil)
	req.Header.Set("Authorization", "Bearer stale")
	rec, env = do(t, h, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", env.Code)
}

func TestAdminRoute_RejectsOperator(t *testing.T) {
	h, d := newServer(t)
	authed(d, constant.RoleOperator, 1)

	rec, env := do(t, h, bearer(httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", env.Code)
}

func TestAdminRoute_AllowsAdmin(t *testing.T) {
	h, d := newServer(t)
	authed(d, constant.RoleAdmin)
	d.userApp.On("ListUsers", mock.Anything).Return([]model.UserResponse{{ID: 1, Username: "admin", Role: constant.RoleAdmin}}, nil).Once()

	rec, env := do(t, h, bearer(httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", env.Code)
	assert.Contains(t, string(env.Data), `"username":"admin"`)
}

func TestShipOutbound_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		mockCall   func(d deps)
		wantStatus int
		wantCode   string
	}{
		{
			name: "carrier failure",
			url:  "/api/outbound/7/ship?simulate_fail=true",
			mockCall: func(d deps) {
				d.outboundApp.On("Ship", mock.Anything, uint64(7), &model.ShipRequest{SimulateFail: true}).
					Return(nil, cerr.SetCustomError(constant.ErrShipFailed)).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantCode:   "SHIP_FAILED",
		},
		{
			name: "ship before pick",
			url:  "/api/outbound/7/ship",
			mockCall: func(d deps) {
				d.outboundApp.On("Ship", mock.Anything, uint64(7), &model.ShipRequest{}).
					Return(nil, cerr.SetCustomError(constant.ErrInvalidState)).Once()
			},
			wantStatus: http.StatusConflict,
			wantCode:   "INVALID_STATE",
		},
		{
			name: "unexpected error is hidden",
			url:  "/api/outbound/7/ship",
			mockCall: func(d deps) {
				d.outboundApp.On("Ship", mock.Anything, uint64(7), &model.ShipRequest{}).
					Return(nil, errors.New("driver: bad connection")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
		{
			name:       "bad flag",
			url:        "/api/outbound/7/ship?simulate_fail=maybe",
			mockCall:   func(d deps) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "bad id",
			url:        "/api/outbound/abc/ship",
			mockCall:   func(d deps) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, d := newServer(t)
			authed(d, constant.RoleOperator, 1)
			tt.mockCall(d)

			rec, env := do(t, h, bearer(httptest.NewRequest(http.MethodPut, tt.url, nil)))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, env.Code)
			assert.NotContains(t, env.Message, "driver")
		})
	}
}

func TestCreateOutbound_ValidationRejectsBeforeApp(t *testing.T) {
	h, d := newServer(t)
	authed(d, constant.RoleOperator, 1)

	body := `{"warehouse_id":1,"items":[{"sku":"SKU-001","quantity":0}]}`
	rec, env := do(t, h, bearer(httptest.NewRequest(http.MethodPost, "/api/outbound", strings.NewReader(body))))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Code)
	assert.Contains(t, string(env.Data), "Quantity")

	rec, env = do(t, h, bearer(httptest.NewRequest(http.MethodPost, "/api/outbound", strings.NewReader(`{"warehouse_id":"one"}`))))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Code)
}

func TestTransfer_InsufficientStock(t *testing.T) {
	h, d := newServer(t)
	authed(d, constant.RoleAdmin)
	d.inventoryApp.On("Transfer", mock.Anything, &model.TransferRequest{
		FromWarehouseID: 1, ToWarehouseID: 2, SKU: "SKU-001", Quantity: 500,
	}).Return(nil, cerr.SetCustomError(constant.ErrInsufficientStock)).Once()

	body := `{"from_warehouse_id":1,"to_warehouse_id":2,"sku":"SKU-001","quantity":500}`
	rec, env := do(t, h, bearer(httptest.NewRequest(http.MethodPost, "/api/inventory/transfer", strings.NewReader(body))))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INSUFFICIENT_STOCK", env.Code)
}

func TestInternalScan_RequiresAPIKey(t *testing.T) {
	h, d := newServer(t)

	rec, env := do(t, h, httptest.NewRequest(http.MethodPost, "/internal/v1/inventory/low-stock/scan", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", env.Code)

	d.lowStockApp.On("Scan", mock.Anything, uint64(1)).
		Return([]model.BalanceView{{WarehouseID: 1, SKU: "SKU-001", AvailableQty: 3, WarningThreshold: 10}}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/internal/v1/inventory/low-stock/scan?warehouse_id=1", nil)
	req.Header.Set("Authorization", "Bearer "+internalKey)
	rec, env = do(t, h, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"sku":"SKU-001"`)
}

func TestCORS_Preflight(t *testing.T) {
	h, _ := newServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/outbound", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/outbound", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRoute_Envelope(t *testing.T) {
	h, _ := newServer(t)

	rec, env := do(t, h, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", env.Code)
}
