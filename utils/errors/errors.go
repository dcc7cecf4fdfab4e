package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/wms/constant"
	"github.com/muhammadheryan/wms/utils/logger"
	"go.uber.org/zap"
)

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// As unwraps err into a CustomError if it carries one.
func As(err error) (CustomError, bool) {
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return CustomError{}, false
}

// Is reports whether err carries a CustomError of the given type.
func Is(err error, errorType constant.ErrorType) bool {
	ce, ok := As(err)
	return ok && ce.errType == errorType
}

// Internal passes CustomErrors through untouched. Anything else is logged under
// op and replaced by ErrInternal so driver details never reach the client.
func Internal(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}
	logger.Error(op, zap.String("error", err.Error()))
	return SetCustomError(constant.ErrInternal)
}
