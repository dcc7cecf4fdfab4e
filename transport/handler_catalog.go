package transport

import (
	"net/http"

	"github.com/muhammadheryan/wms/model"
)

// ListProducts handler
// @Summary List products
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param q query string false "name or sku contains"
// @Param category query string false "category"
// @Param page query int false "page, from 1"
// @Param page_size query int false "page size, max 100"
// @Param order_by query string false "id, sku, name, category or created_at"
// @Success 200 {object} model.Envelope{data=model.ProductListResponse}
// @Router /api/products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		writeError(w, err)
		return
	}
	pageSize, err := queryInt(r, "page_size")
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	res, err := s.ProductApp.ListProducts(r.Context(), &model.ProductFilter{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		OrderBy:  q.Get("order_by"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateProduct handler
// @Summary Create product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateProductRequest true "Product"
// @Success 200 {object} model.Envelope{data=model.Product}
// @Failure 409 {object} model.Envelope
// @Router /api/products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProductRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	res, err := s.ProductApp.CreateProduct(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Get product
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path int true "product id"
// @Success 200 {object} model.Envelope{data=model.Product}
// @Failure 404 {object} model.Envelope
// @Router /api/products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateProduct handler
// @Summary Update product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "product id"
// @Param request body model.UpdateProductRequest true "Fields to change"
// @Success 200 {object} model.Envelope{data=model.Product}
// @Router /api/products/{id} [put]
func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.UpdateProductRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	res, err := s.ProductApp.UpdateProduct(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteProduct handler
// @Summary Delete product
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path int true "product id"
// @Success 200 {object} model.Envelope
// @Failure 409 {object} model.Envelope
// @Router /api/products/{id} [delete]
func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ProductApp.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, true)
}

// ListWarehouses handler
// @Summary List warehouses
// @Tags Warehouses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Envelope{data=[]model.Warehouse}
// @Router /api/warehouses [get]
func (s *RestHandler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	res, err := s.WarehouseApp.ListWarehouses(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListLocations handler
// @Summary List locations
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Envelope{data=[]model.Location}
// @Router /api/locations [get]
func (s *RestHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	res, err := s.WarehouseApp.ListLocations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetLocation handler
// @Summary Get location
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Param id path int true "location id"
// @Success 200 {object} model.Envelope{data=model.Location}
// @Router /api/locations/{id} [get]
func (s *RestHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.WarehouseApp.GetLocation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
