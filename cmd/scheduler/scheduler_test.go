package scheduler

import (
	"testing"
	"time"

	alertmocks "github.com/muhammadheryan/wms/mocks/application/alert"
	"github.com/muhammadheryan/wms/model"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsLowStockScan(t *testing.T) {
	app := alertmocks.NewLowStockApp(t)
	ran := make(chan struct{}, 1)
	app.On("Scan", mock.Anything, uint64(0)).
		Run(func(mock.Arguments) {
			select {
			case ran <- struct{}{}:
			default:
			}
		}).
		Return([]model.BalanceView{}, nil)

	s, err := New(app, 50*time.Millisecond)
	require.NoError(t, err)
	s.Start()
	defer func() { require.NoError(t, s.Stop()) }()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatalf("low-stock scan did not run")
	}
}

func TestScheduler_DisabledInterval(t *testing.T) {
	app := alertmocks.NewLowStockApp(t)

	s, err := New(app, 0)
	require.NoError(t, err)
	s.Start()
	require.NoError(t, s.Stop())
	require.Empty(t, s.scheduler.Jobs())
}
