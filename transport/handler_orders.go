package transport

import (
	"net/http"

	"github.com/muhammadheryan/wms/model"
)

// ListInbound handler
// @Summary List inbound orders
// @Tags Inbound
// @Produce json
// @Security BearerAuth
// @Param warehouse_id query int false "warehouse"
// @Success 200 {object} model.Envelope{data=[]model.InboundOrder}
// @Router /api/inbound [get]
func (s *RestHandler) ListInbound(w http.ResponseWriter, r *http.Request) {
	warehouseID, err := queryUint64(r, "warehouse_id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.InboundApp.List(r.Context(), warehouseID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateInbound handler
// @Summary Create inbound order
// @Tags Inbound
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateInboundRequest true "Inbound order"
// @Success 200 {object} model.Envelope{data=model.InboundOrder}
// @Router /api/inbound [post]
func (s *RestHandler) CreateInbound(w http.ResponseWriter, r *http.Request) {
	var req model.CreateInboundRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	res, err := s.InboundApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetInbound handler
// @Summary Get inbound order
// @Tags Inbound
// @Produce json
// @Security BearerAuth
// @Param id path int true "order id"
// @Success 200 {object} model.Envelope{data=model.InboundOrder}
// @Router /api/inbound/{id} [get]
func (s *RestHandler) GetInbound(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.InboundApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateInbound handler
// @Summary Replace the items of a pending inbound order
// @Tags Inbound
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "order id"
// @Param request body model.UpdateInboundRequest true "Items"
// @Success 200 {object} model.Envelope{data=model.InboundOrder}
// @Failure 409 {object} model.Envelope
// @Router /api/inbound/{id} [put]
func (s *RestHandler) UpdateInbound(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.UpdateInboundRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	res, err := s.InboundApp.UpdateItems(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ConfirmInbound handler
// @Summary Confirm inbound order
// @Description Adds every item to available stock and writes one INBOUND audit row per item
// @Tags Inbound
// @Produce json
// @Security BearerAuth
// @Param id path int true "order id"
// @Success 200 {object} model.Envelope{data=model.InboundOrder}
// @Failure 409 {object} model.Envelope
// @Router /api/inbound/{id}/confirm [put]
func (s *RestHandler) ConfirmInbound(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.InboundApp.Confirm(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListOutbound handler
// @Summary List outbound orders
// @Tags Outbound
// @Produce json
// @Security BearerAuth
// @Param warehouse_id query int false "warehouse"
// @Success 200 {object} model.Envelope{data=[]model.OutboundOrder}
// @Router /api/outbound [get]
func (s *RestHandler) ListOutbound(w http.ResponseWriter, r *http.Request) {
	warehouseID, err := queryUint64(r, "warehouse_id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OutboundApp.List(r.Context(), warehouseID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateOutbound handler
// @Summary Create outbound order
// @Description Reserves the requested quantities; fails as a whole when any item is short
// @Tags Outbound
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateOutboundRequest true "Outbound order"
// @Success 200 {object} model.Envelope{data=model.OutboundOrder}
// @Failure 409 {object} model.Envelope
// @Router /api/outbound [post]
func (s *RestHandler) CreateOutbound(w http.ResponseWriter, r *http.Request) {
	var req model.CreateOutboundRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	res, err := s.OutboundApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetOutbound handler
// @Summary Get outbound order
// @Tags Outbound
// @Produce json
// @Security BearerAuth
// @Param id path int true "order id"
// @Success 200 {object} model.Envelope{data=model.OutboundOrder}
// @Router /api/outbound/{id} [get]
func (s *RestHandler) GetOutbound(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OutboundApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// PickOutbound handler
// @Summary Mark outbound order picked
// @Tags Outbound
// @Produce json
// @Security BearerAuth
// @Param id path int true "order id"
// @Success 200 {object} model.Envelope{data=model.OutboundOrder}
// @Router /api/outbound/{id}/pick [put]
func (s *RestHandler) PickOutbound(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OutboundApp.Pick(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ShipOutbound handler
// @Summary Ship outbound order
// @Description Consumes the reservation. A carrier failure leaves the order PICKED and stock untouched.
// @Tags Outbound
// @Produce json
// @Security BearerAuth
// @Param id path int true "order id"
// @Param simulate_fail query bool false "make the carrier reject the shipment"
// @Success 200 {object} model.Envelope{data=model.OutboundOrder}
// @Failure 502 {object} model.Envelope
// @Router /api/outbound/{id}/ship [put]
func (s *RestHandler) ShipOutbound(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	simulateFail, err := queryBool(r, "simulate_fail")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OutboundApp.Ship(r.Context(), id, &model.ShipRequest{SimulateFail: simulateFail})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteOutbound handler
// @Summary Delete outbound order
// @Description Only while PENDING_PICK; releases the reservation
// @Tags Outbound
// @Produce json
// @Security BearerAuth
// @Param id path int true "order id"
// @Success 200 {object} model.Envelope
// @Router /api/outbound/{id} [delete]
func (s *RestHandler) DeleteOutbound(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.OutboundApp.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, true)
}
