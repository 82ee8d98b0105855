package jobs

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// Scheduler runs the periodic jobs. Currently that is only the low-stock
// sweep.
type Scheduler struct {
	scheduler gocron.Scheduler
	alertSvc  *StockAlertService
	logger    *zap.Logger
}

func NewScheduler(alertSvc *StockAlertService, interval time.Duration, logger *zap.Logger) (*Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	s := &Scheduler{
		scheduler: scheduler,
		alertSvc:  alertSvc,
		logger:    logger,
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.runLowStockSweep),
		gocron.WithName("low-stock-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.logger.Info("starting background job scheduler")
	s.scheduler.Start()
}

func (s *Scheduler) Stop() error {
	s.logger.Info("stopping background job scheduler")
	return s.scheduler.Shutdown()
}

func (s *Scheduler) runLowStockSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	alerts, err := s.alertSvc.CheckLowStock(ctx)
	if err != nil {
		s.logger.Error("low stock sweep failed", zap.Error(err))
		return
	}
	s.alertSvc.LogAlerts(alerts)
}
