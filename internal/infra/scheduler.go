package infra

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/cryptovai/tradingjournal/internal/usecase"
)

// StatsScheduler periodically snapshots platform-wide statistics so the
// operator has a daily trail of journal activity in the logs.
type StatsScheduler struct {
	cron     *cron.Cron
	adminSvc *usecase.AdminService
	log      *zap.Logger
}

// NewStatsScheduler creates a new StatsScheduler
func NewStatsScheduler(adminSvc *usecase.AdminService, log *zap.Logger) *StatsScheduler {
	return &StatsScheduler{
		cron:     cron.New(),
		adminSvc: adminSvc,
		log:      log,
	}
}

// Start registers the daily snapshot job (midnight) and starts the cron loop
func (s *StatsScheduler) Start() error {
	_, err := s.cron.AddFunc("0 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.RunNow(ctx); err != nil {
			s.log.Error("stats snapshot failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info("stats scheduler started", zap.String("schedule", "daily at midnight"))
	return nil
}

// RunNow takes a snapshot immediately
func (s *StatsScheduler) RunNow(ctx context.Context) error {
	platform, err := s.adminSvc.PlatformStats(ctx)
	if err != nil {
		return err
	}

	global, err := s.adminSvc.GlobalStats(ctx)
	if err != nil {
		return err
	}

	s.log.Info("platform stats snapshot",
		zap.Int("total_users", platform.TotalUsers),
		zap.Int("total_trades", platform.TotalTrades),
		zap.Int("active_users_30d", platform.ActiveUsers),
		zap.Int("closed_trades", global.ClosedTrades),
		zap.Float64("total_pnl", global.TotalPnL),
		zap.Float64("win_rate", global.WinRate),
	)

	return nil
}

// Stop stops the scheduler gracefully
func (s *StatsScheduler) Stop() {
	s.cron.Stop()
	s.log.Info("stats scheduler stopped")
}
