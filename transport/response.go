package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/wms/constant"
	"github.com/muhammadheryan/wms/model"
	"github.com/muhammadheryan/wms/utils/errors"
	validatorx "github.com/muhammadheryan/wms/utils/validator"
)

func writeJSON(w http.ResponseWriter, status int, body model.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, model.Envelope{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

// writeError maps the error kind to its status and code. Anything that is not a
// CustomError is reported as an internal error.
func writeError(w http.ResponseWriter, err error) {
	ce, ok := errors.As(err)
	if !ok {
		ce = errors.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, ce.ErrorHTTPCode(), model.Envelope{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
	})
}

// writeValidationError reports the offending fields in data.
func writeValidationError(w http.ResponseWriter, err error) {
	ce := errors.SetCustomError(constant.ErrInvalidRequest)
	writeJSON(w, ce.ErrorHTTPCode(), model.Envelope{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
		Data:    validatorx.Fields(err),
	})
}

// decodeRequest parses a JSON body and runs struct validation, writing the error
// envelope itself when either step fails.
func decodeRequest(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return false
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return false
	}
	return true
}

func writeJSONStatus(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, model.Envelope{Code: code, Message: message})
}
