package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/thelucius7/site-core/internal/app"
	"github.com/thelucius7/site-core/internal/config"
	"github.com/thelucius7/site-core/internal/pkg/nativelog"
	"github.com/thelucius7/site-core/internal/pkg/proctitle"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fallback, _ := zap.NewProduction()
		fallback.Fatal("failed to load config", zap.Error(err))
	}

	// The terminal surface owns stdout, so only the window mirrors logs there.
	logger, err := nativelog.NewZapLogger(nativelog.Options{
		Dir:    cfg.LogDir(),
		Stdout: cfg.Background.Surface == config.SurfaceWindow,
		Debug:  cfg.IsDev(),
	})
	if err != nil {
		logger, _ = zap.NewProduction()
		logger.Warn("native log pipeline unavailable, fallback to zap production logger", zap.Error(err))
	}
	defer logger.Sync()

	if err := proctitle.Set(proctitle.Title("site", cfg.Background.Surface)); err != nil {
		logger.Debug("process title not set", zap.Error(err))
	}

	application, err := app.New(logger, cfg, *configPath)
	if err != nil {
		logger.Fatal("failed to initialize app", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("site starting",
		zap.String("surface", cfg.Background.Surface),
		zap.String("theme", cfg.Theme),
		zap.Bool("gateway", cfg.Gateway.Enable),
	)
	runErr := application.Run(ctx)

	logger.Info("shutting down...")
	application.Shutdown()
	if runErr != nil {
		logger.Fatal("surface error", zap.Error(runErr))
	}
	logger.Info("site exited")
}
