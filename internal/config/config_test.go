package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelucius7/site-core/internal/modules/background"
	"go.uber.org/zap"
)

func TestDefaults(t *testing.T) {
	cfg, err := parse("config.yml", nil)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "auto", cfg.Background.Mode)
	assert.Equal(t, background.ModeAuto, cfg.BackgroundMode())
	assert.Equal(t, SurfaceTerminal, cfg.Background.Surface)
	assert.Equal(t, 60, cfg.Background.FPS)
	assert.Equal(t, 1280, cfg.Background.Width)
	assert.Equal(t, 720, cfg.Background.Height)
	assert.False(t, cfg.Gateway.Enable)
	assert.Equal(t, "mx:gateway:public", cfg.Gateway.Channel)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Gateway.Redis.URLValue())
}

func TestParseFull(t *testing.T) {
	content := []byte(`
env: Production
theme: Dark
background:
  mode: physics
  surface: window
  fps: 30
  width: 1920
  height: 1080
gateway:
  enable: true
  channel: mx:gateway:custom
  redis:
    host: cache.internal
    port: 6380
    password: secret
    db: 2
    params:
      dial_timeout: 3s
site:
  owner: Lucius
  web_url: https://blog.example.com/
paths:
  logs: /var/log/site
`)
	cfg, err := parse("config.yml", content)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, background.ModeDrift, cfg.BackgroundMode())
	assert.Equal(t, SurfaceWindow, cfg.Background.Surface)
	assert.Equal(t, 30, cfg.Background.FPS)
	assert.Equal(t, 1920, cfg.Background.Width)
	assert.True(t, cfg.Gateway.Enable)
	assert.Equal(t, "mx:gateway:custom", cfg.Gateway.Channel)
	assert.Equal(t, "redis://:secret@cache.internal:6380/2?dial_timeout=3s", cfg.Gateway.Redis.URLValue())
	assert.Equal(t, "Lucius", cfg.Site.Owner)
	assert.Equal(t, "https://blog.example.com", cfg.Site.WebURL)
	assert.Equal(t, "/var/log/site", cfg.LogDir())
}

func TestParseLegacyKeys(t *testing.T) {
	content := []byte(`
node_env: production
color_mode: dark
redis_url: 10.0.0.5:6379/1
web_url: https://legacy.example.com
log_dir: /tmp/site-logs
site:
  name: Someone
`)
	cfg, err := parse("config.yml", content)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "redis://10.0.0.5:6379/1", cfg.Gateway.Redis.URLValue())
	assert.Equal(t, "https://legacy.example.com", cfg.Site.WebURL)
	assert.Equal(t, "Someone", cfg.Site.Owner)
	assert.Equal(t, "/tmp/site-logs", cfg.LogDir())
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown field", "port: 2333\n"},
		{"unknown mode", "background:\n  mode: rain\n"},
		{"unknown surface", "background:\n  surface: canvas\n"},
		{"fps out of range", "background:\n  fps: 1000\n"},
		{"bad redis port", "gateway:\n  redis:\n    port: 70000\n"},
		{"negative redis db", "gateway:\n  redis:\n    db: -1\n"},
		{"not yaml", "background: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse("config.yml", []byte(tt.content))
			assert.Error(t, err)
		})
	}

	_, err := parse("config.yml", []byte("background:\n  mode: rain\n"))
	assert.ErrorIs(t, err, background.ErrUnknownMode)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SITE_THEME", "Dark")
	t.Setenv("SITE_BACKGROUND_MODE", "fireflies")
	t.Setenv("SITE_GATEWAY_ENABLE", "true")
	t.Setenv("SITE_REDIS_URL", "rediss://remote:6379/3")
	t.Setenv("SITE_FPS", "24")
	t.Setenv("SITE_WEB_URL", "https://env.example.com/")

	cfg, err := parse("config.yml", []byte("theme: light\nbackground:\n  mode: snow\n"))
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, background.ModeFireflies, cfg.BackgroundMode())
	assert.True(t, cfg.Gateway.Enable)
	assert.Equal(t, "rediss://remote:6379/3", cfg.Gateway.Redis.URLValue())
	assert.Equal(t, 24, cfg.Background.FPS)
	assert.Equal(t, "https://env.example.com", cfg.Site.WebURL)
}

func TestEnvOverrideInvalid(t *testing.T) {
	t.Setenv("SITE_FPS", "fast")
	_, err := parse("config.yml", nil)
	assert.Error(t, err)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("theme: dark\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
}

func TestRedisURLValue(t *testing.T) {
	tests := []struct {
		name   string
		cfg    RedisRuntimeConfig
		expect string
	}{
		{"explicit url", RedisRuntimeConfig{URL: "redis://a:1/0", Host: "ignored"}, "redis://a:1/0"},
		{"bare url", RedisRuntimeConfig{URL: "a:1/0"}, "redis://a:1/0"},
		{"defaults", RedisRuntimeConfig{}, "redis://localhost:6379/0"},
		{"tls", RedisRuntimeConfig{Host: "h", Port: 1, TLS: true}, "rediss://h:1/0"},
		{"user and password", RedisRuntimeConfig{Host: "h", Port: 1, Username: "u", Password: "p", DB: 4}, "redis://u:p@h:1/4"},
		{"bad scheme", RedisRuntimeConfig{Host: "h", Port: 1, Scheme: "http"}, "redis://h:1/0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.cfg.URLValue())
		})
	}
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "/abs/logs", resolvePath("/etc/site", "/abs/logs/", "logs"))
	assert.Equal(t, filepath.Join("/etc/site", "logs"), resolvePath("/etc/site", "", "logs"))
	assert.Equal(t, filepath.Join("/etc/site", "var", "log"), resolvePath("/etc/site", " var/log ", "logs"))
	assert.Equal(t, "logs", resolvePath("", "", "logs"))
}

func TestLogDirFollowsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("paths:\n  logs: runtime/logs\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "runtime", "logs"), cfg.LogDir())

	cfg, err = Load(filepath.Join(dir, "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "logs"), cfg.LogDir())

	var none *AppConfig
	assert.Equal(t, "logs", none.LogDir())
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("theme: light\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *AppConfig, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, zap.NewNop(), func(cfg *AppConfig) { changes <- cfg })
	}()

	deadline := time.After(10 * time.Second)
	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case cfg := <-changes:
			if cfg.Theme != "dark" {
				continue
			}
			cancel()
			require.NoError(t, <-done)
			return
		case <-tick.C:
			// Keep writing until the watcher is registered and sees it.
			require.NoError(t, os.WriteFile(path, []byte("theme: dark\n"), 0o644))
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}
