package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/muhammadheryan/wms/application/alert"
	"github.com/muhammadheryan/wms/utils/logger"
	"go.uber.org/zap"
)

const lowStockJobName = "low-stock-scan"

type Scheduler struct {
	scheduler gocron.Scheduler
	lowStock  alert.LowStockApp
}

// New registers the periodic low-stock scan. A non-positive interval disables it.
func New(lowStock alert.LowStockApp, interval time.Duration) (*Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	js := &Scheduler{scheduler: s, lowStock: lowStock}
	if interval <= 0 {
		logger.Warn("low-stock scan disabled", zap.Duration("interval", interval))
		return js, nil
	}

	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(js.scanLowStock),
		gocron.WithName(lowStockJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("register %s: %w", lowStockJobName, err)
	}

	logger.Info("scheduled job registered", zap.String("job", lowStockJobName), zap.Duration("interval", interval))
	return js, nil
}

func (js *Scheduler) Start() {
	js.scheduler.Start()
}

func (js *Scheduler) Stop() error {
	return js.scheduler.Shutdown()
}

func (js *Scheduler) scanLowStock() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := js.lowStock.Scan(ctx, 0); err != nil {
		logger.Error("[Scheduler] low-stock scan failed", zap.String("error", err.Error()))
	}
}
