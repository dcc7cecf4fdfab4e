package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrInvalidPassword
	ErrInvalidState
	ErrInsufficientStock
	ErrConflict
	ErrSKUExists
	ErrSKUAmbiguous
	ErrProductHasStock
	ErrProductInUse
	ErrShipFailed
	ErrNotImplemented
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:           "ok",
	ErrInternal:          "error internal",
	ErrNotFound:          "data not found",
	ErrInvalidRequest:    "invalid request",
	ErrUnauthorize:       "unauthorize request",
	ErrForbidden:         "forbidden",
	ErrInvalidPassword:   "invalid username or password",
	ErrInvalidState:      "operation not allowed in current status",
	ErrInsufficientStock: "insufficient stock",
	ErrConflict:          "concurrent update, please retry",
	ErrSKUExists:         "sku already exists",
	ErrSKUAmbiguous:      "sku matches more than one product",
	ErrProductHasStock:   "product has stock",
	ErrProductInUse:      "product is referenced by orders",
	ErrShipFailed:        "carrier error",
	ErrNotImplemented:    "not implemented",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:           http.StatusOK,
	ErrInternal:          http.StatusInternalServerError,
	ErrNotFound:          http.StatusNotFound,
	ErrInvalidRequest:    http.StatusUnprocessableEntity,
	ErrUnauthorize:       http.StatusUnauthorized,
	ErrForbidden:         http.StatusForbidden,
	ErrInvalidPassword:   http.StatusUnauthorized,
	ErrInvalidState:      http.StatusConflict,
	ErrInsufficientStock: http.StatusConflict,
	ErrConflict:          http.StatusConflict,
	ErrSKUExists:         http.StatusConflict,
	ErrSKUAmbiguous:      http.StatusConflict,
	ErrProductHasStock:   http.StatusConflict,
	ErrProductInUse:      http.StatusConflict,
	ErrShipFailed:        http.StatusBadGateway,
	ErrNotImplemented:    http.StatusNotImplemented,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:           "OK",
	ErrInternal:          "INTERNAL_ERROR",
	ErrNotFound:          "NOT_FOUND",
	ErrInvalidRequest:    "VALIDATION_ERROR",
	ErrUnauthorize:       "UNAUTHORIZED",
	ErrForbidden:         "FORBIDDEN",
	ErrInvalidPassword:   "UNAUTHORIZED",
	ErrInvalidState:      "INVALID_STATE",
	ErrInsufficientStock: "INSUFFICIENT_STOCK",
	ErrConflict:          "CONFLICT",
	ErrSKUExists:         "SKU_EXISTS",
	ErrSKUAmbiguous:      "SKU_AMBIGUOUS",
	ErrProductHasStock:   "PRODUCT_HAS_STOCK",
	ErrProductInUse:      "PRODUCT_IN_USE",
	ErrShipFailed:        "SHIP_FAILED",
	ErrNotImplemented:    "NOT_IMPLEMENTED",
}
