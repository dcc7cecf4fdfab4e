package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/wms/application/alert"
	inboundapp "github.com/muhammadheryan/wms/application/inbound"
	inventoryapp "github.com/muhammadheryan/wms/application/inventory"
	outboundapp "github.com/muhammadheryan/wms/application/outbound"
	productapp "github.com/muhammadheryan/wms/application/product"
	userapp "github.com/muhammadheryan/wms/application/user"
	warehouseapp "github.com/muhammadheryan/wms/application/warehouse"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp      userapp.UserApp
	ProductApp   productapp.ProductApp
	WarehouseApp warehouseapp.WarehouseApp
	InventoryApp inventoryapp.InventoryApp
	InboundApp   inboundapp.InboundApp
	OutboundApp  outboundapp.OutboundApp
	LowStockApp  alert.LowStockApp
}

type Options struct {
	CORSOrigins    []string
	InternalAPIKey string
}

func NewTransport(rh *RestHandler, opts Options) http.Handler {
	router := mux.NewRouter()

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	// auth
	api.HandleFunc("/auth/login", rh.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", rh.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", rh.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", rh.Me).Methods(http.MethodGet)

	// catalog
	api.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	api.HandleFunc("/products", rh.CreateProduct).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", rh.UpdateProduct).Methods(http.MethodPut)
	api.HandleFunc("/products/{id}", rh.DeleteProduct).Methods(http.MethodDelete)

	api.HandleFunc("/warehouses", rh.ListWarehouses).Methods(http.MethodGet)
	api.HandleFunc("/locations", rh.ListLocations).Methods(http.MethodGet)
	api.HandleFunc("/locations/{id}", rh.GetLocation).Methods(http.MethodGet)

	// inventory
	api.HandleFunc("/inventory", rh.ListInventory).Methods(http.MethodGet)
	api.HandleFunc("/inventory/warning-threshold", rh.UpdateWarningThreshold).Methods(http.MethodPut)
	api.HandleFunc("/inventory/low-stock", rh.ListLowStock).Methods(http.MethodGet)
	api.HandleFunc("/inventory/audit-logs", rh.ListAuditLogs).Methods(http.MethodGet)
	api.HandleFunc("/inventory/transfer", rh.Transfer).Methods(http.MethodPost)
	api.HandleFunc("/inventory/stocktake", rh.SubmitStocktake).Methods(http.MethodPost)
	api.HandleFunc("/inventory/stocktakes", rh.CreateStocktake).Methods(http.MethodPost)
	api.HandleFunc("/inventory/stocktakes/{id}", rh.GetStocktake).Methods(http.MethodGet)

	// inbound
	api.HandleFunc("/inbound", rh.ListInbound).Methods(http.MethodGet)
	api.HandleFunc("/inbound", rh.CreateInbound).Methods(http.MethodPost)
	api.HandleFunc("/inbound/{id}", rh.GetInbound).Methods(http.MethodGet)
	api.HandleFunc("/inbound/{id}", rh.UpdateInbound).Methods(http.MethodPut)
	api.HandleFunc("/inbound/{id}/confirm", rh.ConfirmInbound).Methods(http.MethodPut)

	// outbound
	api.HandleFunc("/outbound", rh.ListOutbound).Methods(http.MethodGet)
	api.HandleFunc("/outbound", rh.CreateOutbound).Methods(http.MethodPost)
	api.HandleFunc("/outbound/{id}", rh.GetOutbound).Methods(http.MethodGet)
	api.HandleFunc("/outbound/{id}", rh.DeleteOutbound).Methods(http.MethodDelete)
	api.HandleFunc("/outbound/{id}/pick", rh.PickOutbound).Methods(http.MethodPut)
	api.HandleFunc("/outbound/{id}/ship", rh.ShipOutbound).Methods(http.MethodPut)

	// admin
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(AdminMiddleware())
	admin.HandleFunc("/users", rh.ListUsers).Methods(http.MethodGet)

	// internal service calls
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(opts.InternalAPIKey))
	internal.HandleFunc("/inventory/low-stock/scan", rh.ScanLowStock).Methods(http.MethodPost)

	router.NotFoundHandler = http.HandlerFunc(rh.NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(rh.MethodNotAllowed)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(rh.UserApp))

	return CORSMiddleware(opts.CORSOrigins)(router)
}

// Health handler
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} model.Envelope
// @Router /api/health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}

func (s *RestHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSONStatus(w, http.StatusNotFound, "NOT_FOUND", "route not found")
}

func (s *RestHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSONStatus(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
}
