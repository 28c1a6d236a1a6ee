package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/thelucius7/site-core/internal/config"
	"github.com/thelucius7/site-core/internal/modules/activity"
	"github.com/thelucius7/site-core/internal/modules/background"
	"github.com/thelucius7/site-core/internal/modules/background/surface"
	"github.com/thelucius7/site-core/internal/modules/gateway/feed"
	pkgcron "github.com/thelucius7/site-core/internal/pkg/cron"
	pkgredis "github.com/thelucius7/site-core/internal/pkg/redis"
	"go.uber.org/zap"
)

// App holds the running site: the activity store, the gateway feed that
// fills it and the animated background that shows it.
type App struct {
	cfg        *config.AppConfig
	configPath string
	logger     *zap.Logger

	store   *activity.Store
	redis   *pkgredis.Client
	loop    *background.Loop
	overlay *surface.Overlay
	sched   *pkgcron.Scheduler

	mu      sync.Mutex
	manager *background.Manager

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New wires the application: config → Redis → gateway feed → background.
// Nothing is drawn until Run.
func New(logger *zap.Logger, cfg *config.AppConfig, configPath string) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		cfg:        cfg,
		configPath: configPath,
		logger:     logger,
		store:      activity.Default,
		sched:      pkgcron.New(),
		ctx:        ctx,
		cancel:     cancel,
	}

	if cfg.Gateway.Enable {
		rc, err := pkgredis.Connect(ctx, cfg.Gateway.Redis.URLValue())
		if err != nil {
			cancel()
			return nil, fmt.Errorf("redis: %w", err)
		}
		a.redis = rc
		f := feed.New(rc, a.store, cfg.Gateway.Channel, logger.Named("GatewayFeed"))
		a.goRun(func(ctx context.Context) {
			if err := f.Run(ctx); err != nil {
				logger.Error("gateway feed stopped", zap.Error(err))
			}
		})
	}

	bg := cfg.Background
	a.loop = background.NewLoop(float64(bg.Width), float64(bg.Height), bg.FPS, logger.Named("Background"))
	a.overlay = surface.NewOverlay(a.store, "")
	return a, nil
}

// Store is the activity store the app shows.
func (a *App) Store() *activity.Store { return a.store }

// Run mounts the background and blocks on the configured surface until it
// closes or ctx is done.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-ctx.Done():
		case <-a.ctx.Done():
			cancel()
		}
	}()

	switch a.cfg.Background.Surface {
	case config.SurfaceWindow:
		return a.runWindow(ctx)
	default:
		return a.runTerminal(ctx)
	}
}

// start picks the first mode and begins following config and calendar
// changes. capable is false when the surface cannot animate.
func (a *App) start(capable bool) *background.Manager {
	env := background.Environment{Capable: capable, Theme: a.cfg.Theme}
	m := background.NewManager(a.cfg.BackgroundMode(), env, a.loop, a.logger.Named("Background"))

	a.mu.Lock()
	a.manager = m
	a.mu.Unlock()

	registerCronJobs(a.sched, m, a.logger)
	a.sched.Start(a.ctx)

	a.goRun(func(ctx context.Context) {
		if err := config.Watch(ctx, a.configPath, a.logger.Named("Config"), a.applyConfig); err != nil {
			a.logger.Warn("config watcher stopped", zap.Error(err))
		}
	})
	return m
}

func (a *App) goRun(fn func(ctx context.Context)) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		fn(a.ctx)
	}()
}

// Shutdown stops background goroutines and closes connections.
func (a *App) Shutdown() {
	a.cancel()
	a.wg.Wait()
	for _, job := range a.sched.List() {
		a.logger.Info("cron job stopped",
			zap.String("name", job.Name),
			zap.String("status", string(job.Status)),
			zap.Time("last_run", job.LastRunAt),
		)
	}
	a.overlay.Close()
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("redis close failed", zap.Error(err))
		}
	}
}
