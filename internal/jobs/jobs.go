package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/collabotree/collabotree/internal/config"
)

type OrderService interface {
	CompleteOverdue(ctx context.Context, olderThan time.Duration) error
}

// Scheduler runs the periodic maintenance jobs, currently the
// auto-completion of delivered orders the buyer never confirmed.
type Scheduler struct {
	cron              *cron.Cron
	orderService      OrderService
	autoCompleteAfter time.Duration
}

func New(cfg *config.Config, orderService OrderService) *Scheduler {
	return &Scheduler{
		cron:              cron.New(),
		orderService:      orderService,
		autoCompleteAfter: cfg.AutoCompleteAfter,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc("@hourly", func() {
		if err := s.orderService.CompleteOverdue(ctx, s.autoCompleteAfter); err != nil {
			zap.L().Error("Failed to auto-complete overdue orders", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	zap.L().Info("Job scheduler started", zap.Duration("autoCompleteAfter", s.autoCompleteAfter))

	go func() {
		<-ctx.Done()
		s.cron.Stop()
	}()

	return nil
}
