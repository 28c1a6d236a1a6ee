package background

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/thelucius7/site-core/internal/modules/background/particle"
)

// Mode names a background animation.
type Mode string

const (
	// ModeNone renders nothing.
	ModeNone      Mode = "none"
	ModeAuto      Mode = "auto"
	ModeDrift     Mode = "drift"
	ModeSnow      Mode = "snow"
	ModeFireflies Mode = "fireflies"
)

// ThemeDark is the colour scheme that turns winter auto mode into snow.
const ThemeDark = "dark"

var ErrUnknownMode = errors.New("unknown background mode")

// ParseMode reads a configured mode. Empty selects auto and "physics" is the
// old name for drift.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "auto":
		return ModeAuto, nil
	case "drift", "physics":
		return ModeDrift, nil
	case "snow":
		return ModeSnow, nil
	case "fireflies":
		return ModeFireflies, nil
	case "none", "off":
		return ModeNone, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, raw)
}

// Spec returns the particle mode to run, or nil for auto and none.
func (m Mode) Spec() *particle.Spec {
	switch m {
	case ModeDrift:
		return particle.Drift
	case ModeSnow:
		return particle.Snow
	case ModeFireflies:
		return particle.Fireflies
	}
	return nil
}

// Environment is what auto selection looks at.
type Environment struct {
	// Capable is false when the surface cannot draw at all.
	Capable bool
	Theme   string
	Now     time.Time
	// Random is the session's coin toss. Empty uses SessionMode.
	Random Mode
}

// Select resolves the mode to mount.
func Select(requested Mode, env Environment) Mode {
	if !env.Capable {
		return ModeNone
	}
	if requested != ModeAuto && requested != "" {
		return requested
	}
	if isWinter(env.Now) && env.Theme == ThemeDark {
		return ModeSnow
	}
	if env.Random != "" {
		return env.Random
	}
	return SessionMode()
}

func isWinter(t time.Time) bool {
	switch t.Month() {
	case time.December, time.January, time.February:
		return true
	}
	return false
}

// SessionMode is drift or fireflies with equal odds, fixed for the life of
// the process.
var SessionMode = sync.OnceValue(func() Mode {
	if rand.IntN(2) == 0 {
		return ModeDrift
	}
	return ModeFireflies
})
