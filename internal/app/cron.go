package app

import (
	"context"
	"time"

	"github.com/thelucius7/site-core/internal/modules/background"
	pkgcron "github.com/thelucius7/site-core/internal/pkg/cron"
	"go.uber.org/zap"
)

// registerCronJobs registers the periodic background jobs.
func registerCronJobs(sched *pkgcron.Scheduler, m *background.Manager, logger *zap.Logger) {
	cronLogger := logger.Named("CronService")

	sched.Register(pkgcron.Job{
		Name:        "season_check",
		Description: "按季节重新选择背景",
		Interval:    time.Hour,
		Fn: func(ctx context.Context) error {
			if m.Refresh() {
				cronLogger.Info("背景随季节切换", zap.String("mode", string(m.Mode())))
			}
			return nil
		},
	})
}
