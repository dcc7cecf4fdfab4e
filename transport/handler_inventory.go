package transport

import (
	"net/http"

	"github.com/muhammadheryan/wms/constant"
	"github.com/muhammadheryan/wms/model"
	"github.com/muhammadheryan/wms/utils/errors"
)

// ListInventory handler
// @Summary List inventory balances
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param warehouse_id query int false "warehouse"
// @Param sku query string false "sku contains"
// @Success 200 {object} model.Envelope{data=[]model.BalanceView}
// @Router /api/inventory [get]
func (s *RestHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	warehouseID, err := queryUint64(r, "warehouse_id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.InventoryApp.ListBalances(r.Context(), &model.InventoryFilter{
		WarehouseID: warehouseID,
		SKU:         r.URL.Query().Get("sku"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateWarningThreshold handler
// @Summary Set warning threshold
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.WarningThresholdRequest true "Threshold"
// @Success 200 {object} model.Envelope
// @Router /api/inventory/warning-threshold [put]
func (s *RestHandler) UpdateWarningThreshold(w http.ResponseWriter, r *http.Request) {
	var req model.WarningThresholdRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := s.InventoryApp.UpdateWarningThreshold(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, true)
}

// ListLowStock handler
// @Summary List balances at or below their warning threshold
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param warehouse_id query int false "warehouse"
// @Success 200 {object} model.Envelope{data=[]model.BalanceView}
// @Router /api/inventory/low-stock [get]
func (s *RestHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	warehouseID, err := queryUint64(r, "warehouse_id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.InventoryApp.ListLowStock(r.Context(), warehouseID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListAuditLogs handler
// @Summary List inventory audit log
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param warehouse_id query int false "warehouse"
// @Param sku query string false "sku"
// @Param action query string false "INBOUND, OUTBOUND, TRANSFER or STOCKTAKE"
// @Param limit query int false "max rows, default 200"
// @Success 200 {object} model.Envelope{data=[]model.AuditLog}
// @Router /api/inventory/audit-logs [get]
func (s *RestHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	warehouseID, err := queryUint64(r, "warehouse_id")
	if err != nil {
		writeError(w, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, err)
		return
	}

	action := constant.AuditAction(r.URL.Query().Get("action"))
	switch action {
	case "", constant.AuditActionInbound, constant.AuditActionOutbound, constant.AuditActionTransfer, constant.AuditActionStocktake:
	default:
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.ListAuditLogs(r.Context(), &model.AuditFilter{
		WarehouseID: warehouseID,
		SKU:         r.URL.Query().Get("sku"),
		Action:      action,
		Limit:       limit,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Transfer handler
// @Summary Transfer stock between warehouses
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.TransferRequest true "Transfer"
// @Success 200 {object} model.Envelope{data=model.TransferResponse}
// @Failure 409 {object} model.Envelope
// @Router /api/inventory/transfer [post]
func (s *RestHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req model.TransferRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	res, err := s.InventoryApp.Transfer(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateStocktake handler
// @Summary Open a draft stocktake
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateStocktakeRequest true "Stocktake"
// @Success 200 {object} model.Envelope{data=model.Stocktake}
// @Router /api/inventory/stocktakes [post]
func (s *RestHandler) CreateStocktake(w http.ResponseWriter, r *http.Request) {
	var req model.CreateStocktakeRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	res, err := s.InventoryApp.CreateStocktake(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetStocktake handler
// @Summary Get stocktake
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param id path int true "stocktake id"
// @Success 200 {object} model.Envelope{data=model.Stocktake}
// @Router /api/inventory/stocktakes/{id} [get]
func (s *RestHandler) GetStocktake(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.InventoryApp.GetStocktake(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SubmitStocktake handler
// @Summary Submit stocktake counts
// @Description Overwrites available quantities with the counted ones. Passing stocktake_id submits an open draft.
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.SubmitStocktakeRequest true "Counts"
// @Success 200 {object} model.Envelope{data=model.SubmitStocktakeResponse}
// @Failure 409 {object} model.Envelope
// @Router /api/inventory/stocktake [post]
func (s *RestHandler) SubmitStocktake(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitStocktakeRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	res, err := s.InventoryApp.SubmitStocktake(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ScanLowStock handler
// @Summary Trigger a low-stock scan
// @Description Internal service endpoint, authenticated with the static API key
// @Tags Internal
// @Produce json
// @Param warehouse_id query int false "warehouse, all when omitted"
// @Success 200 {object} model.Envelope{data=[]model.BalanceView}
// @Router /internal/v1/inventory/low-stock/scan [post]
func (s *RestHandler) ScanLowStock(w http.ResponseWriter, r *http.Request) {
	warehouseID, err := queryUint64(r, "warehouse_id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.LowStockApp.Scan(r.Context(), warehouseID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
