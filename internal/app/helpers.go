package app

import (
	"github.com/thelucius7/site-core/internal/config"
	"go.uber.org/zap"
)

// applyConfig carries a reloaded config into the running background. Only
// the theme and the requested mode take effect without a restart.
func (a *App) applyConfig(cfg *config.AppConfig) {
	a.mu.Lock()
	m := a.manager
	a.mu.Unlock()
	if m == nil {
		return
	}

	changed := m.SetRequested(cfg.BackgroundMode())
	if m.Reconcile(cfg.Theme) {
		changed = true
	}
	if changed {
		a.logger.Info("background follows config", zap.String("mode", string(m.Mode())))
	}
	if restartNeeded(a.cfg, cfg) {
		a.logger.Warn("surface and gateway changes apply after restart")
	}
}

func restartNeeded(running, next *config.AppConfig) bool {
	return running.Background.Surface != next.Background.Surface ||
		running.Background.FPS != next.Background.FPS ||
		running.Gateway.Enable != next.Gateway.Enable ||
		running.Gateway.Channel != next.Gateway.Channel ||
		running.Gateway.Redis.URLValue() != next.Gateway.Redis.URLValue()
}
