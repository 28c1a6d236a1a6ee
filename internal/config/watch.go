package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// reloadDelay collapses the burst of events an editor save produces.
const reloadDelay = 150 * time.Millisecond

// Watch reloads the config whenever the file changes and hands the result to
// onChange. An edit that fails to load is logged and the previous config
// stays in effect. Watch blocks until ctx is done.
func Watch(ctx context.Context, configPath string, logger *zap.Logger, onChange func(*AppConfig)) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path %q: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file rather than write it.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %q: %w", filepath.Dir(abs), err)
	}
	logger.Info("watching config", zap.String("path", abs))

	timer := time.NewTimer(reloadDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			timer.Reset(reloadDelay)
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error", zap.Error(werr))
		case <-timer.C:
			cfg, err := Load(abs)
			if err != nil {
				logger.Warn("config reload rejected", zap.Error(err))
				continue
			}
			logger.Info("config reloaded", zap.String("theme", cfg.Theme), zap.String("mode", cfg.Background.Mode))
			onChange(cfg)
		}
	}
}
