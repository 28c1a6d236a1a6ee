package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelucius7/site-core/internal/config"
	"github.com/thelucius7/site-core/internal/modules/background"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestApp(t *testing.T) (*App, *config.AppConfig) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	cfg, err := config.Load(path)
	require.NoError(t, err)

	a, err := New(zap.NewNop(), cfg, path)
	require.NoError(t, err)
	t.Cleanup(a.Shutdown)
	return a, cfg
}

func TestNewRejectsNilConfig(t *testing.T) {
	_, err := New(zap.NewNop(), nil, "")
	assert.Error(t, err)
}

func TestApplyConfigBeforeStart(t *testing.T) {
	a, cfg := newTestApp(t)
	assert.NotPanics(t, func() { a.applyConfig(cfg) })
}

func TestApplyConfigFollowsMode(t *testing.T) {
	a, cfg := newTestApp(t)
	m := a.start(true)
	assert.NotEqual(t, background.ModeNone, m.Mode())

	next := *cfg
	next.Background.Mode = "off"
	a.applyConfig(&next)
	assert.Equal(t, background.ModeNone, m.Mode())

	next.Background.Mode = "fireflies"
	a.applyConfig(&next)
	assert.Equal(t, background.ModeFireflies, m.Mode())
}

func TestStartIncapable(t *testing.T) {
	a, _ := newTestApp(t)
	m := a.start(false)
	assert.Equal(t, background.ModeNone, m.Mode())
}

func TestRestartNeeded(t *testing.T) {
	_, cfg := newTestApp(t)

	next := *cfg
	next.Theme = "dark"
	next.Background.Mode = "snow"
	assert.False(t, restartNeeded(cfg, &next))

	next.Background.Surface = config.SurfaceWindow
	assert.True(t, restartNeeded(cfg, &next))

	next = *cfg
	next.Gateway.Redis.Host = "elsewhere"
	assert.True(t, restartNeeded(cfg, &next))
}

func TestShutdownReportsCronJobs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	cfg, err := config.Load(path)
	require.NoError(t, err)

	core, logs := observer.New(zapcore.InfoLevel)
	a, err := New(zap.New(core), cfg, path)
	require.NoError(t, err)
	a.start(true)
	a.Shutdown()

	stopped := logs.FilterMessage("cron job stopped").All()
	require.Len(t, stopped, 1)
	assert.Equal(t, "season_check", stopped[0].ContextMap()["name"])
	assert.Equal(t, "idle", stopped[0].ContextMap()["status"])
}
