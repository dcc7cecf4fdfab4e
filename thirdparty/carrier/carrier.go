package carrier

import (
	"context"
	stderrors "errors"

	"github.com/muhammadheryan/wms/model"
	"github.com/muhammadheryan/wms/utils/logger"
	"go.uber.org/zap"
)

// ErrDispatchFailed is what the simulated carrier returns when asked to fail.
var ErrDispatchFailed = stderrors.New("carrier rejected shipment")

// Client hands a shipped order over to the carrier. Dispatch runs inside the
// ship transaction, so an error rolls the whole shipment back.
type Client interface {
	Dispatch(ctx context.Context, shipment *model.Shipment) error
}

type simulated struct{}

// NewSimulated returns a carrier that accepts every shipment unless SimulateFail is set.
func NewSimulated() Client {
	return &simulated{}
}

func (s *simulated) Dispatch(ctx context.Context, shipment *model.Shipment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if shipment.SimulateFail {
		return ErrDispatchFailed
	}
	logger.Debug("[Carrier] shipment dispatched",
		zap.Uint64("order_id", shipment.OrderID),
		zap.Uint64("warehouse_id", shipment.WarehouseID),
		zap.Int("lines", len(shipment.Items)))
	return nil
}
