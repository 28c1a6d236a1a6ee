package background

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Manager decides which mode the loop should run and asks it to remount
// when the decision changes. Its methods are safe to call from any
// goroutine.
type Manager struct {
	mu        sync.Mutex
	requested Mode
	env       Environment
	current   Mode
	clock     func() time.Time

	loop   *Loop
	logger *zap.Logger
}

// NewManager selects the initial mode and asks loop to mount it. A zero
// env.Now reads the wall clock on every decision; otherwise the date is
// pinned to env.Now.
func NewManager(requested Mode, env Environment, loop *Loop, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Manager{
		requested: requested,
		env:       env,
		clock:     time.Now,
		loop:      loop,
		logger:    logger,
	}
	if pinned := env.Now; !pinned.IsZero() {
		m.clock = func() time.Time { return pinned }
	}
	m.mu.Lock()
	m.selectLocked()
	m.mu.Unlock()
	return m
}

// Mode returns the mode most recently handed to the loop.
func (m *Manager) Mode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Reconcile re-runs selection for a new theme. It reports whether the loop
// was asked to remount.
func (m *Manager) Reconcile(theme string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.env.Theme = theme
	return m.selectLocked()
}

// SetRequested changes the configured mode, remounting if the outcome
// differs.
func (m *Manager) SetRequested(mode Mode) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requested = mode
	return m.selectLocked()
}

// Refresh re-runs selection against the current date, so a running
// process enters and leaves winter on its own.
func (m *Manager) Refresh() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selectLocked()
}

func (m *Manager) selectLocked() bool {
	env := m.env
	env.Now = m.clock()
	next := Select(m.requested, env)
	if next == m.current {
		return false
	}
	m.logger.Info("background mode selected",
		zap.String("from", string(m.current)),
		zap.String("to", string(next)),
		zap.String("theme", env.Theme))
	m.current = next
	m.loop.Mount(next)
	return true
}
