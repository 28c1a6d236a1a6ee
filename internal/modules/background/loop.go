package background

import (
	"context"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// InputKind tags a surface input.
type InputKind int

const (
	// InputScroll carries the page scroll offset in Y.
	InputScroll InputKind = iota
	// InputPointer carries a centred, y-up pointer position.
	InputPointer
	InputLeave
	InputClick
	// InputResize carries the new surface width and height in X and Y.
	InputResize
)

// Input is one event from a surface, applied between frames.
type Input struct {
	Kind InputKind
	X, Y float64
}

func Scroll(offsetY float64) Input       { return Input{Kind: InputScroll, Y: offsetY} }
func Pointer(x, y float64) Input         { return Input{Kind: InputPointer, X: x, Y: y} }
func Leave() Input                       { return Input{Kind: InputLeave} }
func Click() Input                       { return Input{Kind: InputClick} }
func Resize(width, height float64) Input { return Input{Kind: InputResize, X: width, Y: height} }

// Presenter draws a frame. It runs on the loop goroutine and must not keep
// the instance past the call.
type Presenter interface {
	Present(in *Instance)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(in *Instance)

func (f PresenterFunc) Present(in *Instance) { f(in) }

const (
	DefaultFPS   = 60
	inputBacklog = 256
)

// Loop owns the mounted instance. Everything that touches it, inputs and
// remounts included, runs on whichever goroutine drives the loop: Run for
// ticker surfaces, Step for surfaces with their own frame callback.
type Loop struct {
	interval time.Duration
	inputs   chan Input
	mounts   chan Mode
	logger   *zap.Logger

	inst          *Instance
	width, height float64

	newRand func() *rand.Rand
}

// NewLoop prepares a loop for a surface of the given size. Nothing is
// mounted until the first mount request arrives.
func NewLoop(width, height float64, fps int, logger *zap.Logger) *Loop {
	if fps <= 0 {
		fps = DefaultFPS
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{
		interval: time.Second / time.Duration(fps),
		inputs:   make(chan Input, inputBacklog),
		mounts:   make(chan Mode, 1),
		logger:   logger,
		width:    width,
		height:   height,
		newRand:  func() *rand.Rand { return nil },
	}
}

// Interval is the time between ticks in Run.
func (l *Loop) Interval() time.Duration { return l.interval }

// Send queues an input for the next frame. It never blocks; when the
// backlog is full the input is dropped and Send reports false.
func (l *Loop) Send(ev Input) bool {
	select {
	case l.inputs <- ev:
		return true
	default:
		l.logger.Debug("background input dropped", zap.Int("kind", int(ev.Kind)))
		return false
	}
}

// Mount asks the loop to run mode, replacing whatever runs now. Only the
// latest request is kept; a request for the running mode is ignored.
func (l *Loop) Mount(mode Mode) {
	for {
		select {
		case l.mounts <- mode:
			return
		default:
		}
		select {
		case <-l.mounts:
		default:
		}
	}
}

// Instance returns the mounted instance, or nil before the first mount.
// Only call it from the loop goroutine.
func (l *Loop) Instance() *Instance { return l.inst }

func (l *Loop) apply(ev Input) {
	if ev.Kind == InputResize {
		l.width, l.height = ev.X, ev.Y
	}
	if l.inst != nil {
		l.inst.Apply(ev)
	}
}

func (l *Loop) remount(mode Mode) {
	if l.inst != nil {
		if l.inst.Mode() == mode {
			return
		}
		l.inst.Unmount()
	}
	l.inst = Mount(mode, l.width, l.height, l.newRand(), l.logger)
	l.logger.Info("background mode", zap.String("mode", string(mode)), zap.String("id", l.inst.ID()))
}

func (l *Loop) drain() {
	for {
		select {
		case mode := <-l.mounts:
			l.remount(mode)
		case ev := <-l.inputs:
			l.apply(ev)
		default:
			return
		}
	}
}

// Step applies queued inputs and advances by dt seconds.
func (l *Loop) Step(dt float64) {
	l.drain()
	if l.inst != nil {
		l.inst.Advance(dt)
	}
}

// Run ticks until ctx is done, presenting a frame per tick. The ticker is
// stopped before the instance is unmounted.
func (l *Loop) Run(ctx context.Context, p Presenter) {
	ticker := time.NewTicker(l.interval)
	defer l.Close()
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case mode := <-l.mounts:
			l.remount(mode)
		case ev := <-l.inputs:
			l.apply(ev)
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			l.Step(dt)
			if l.inst != nil {
				p.Present(l.inst)
			}
		}
	}
}

// Close unmounts the current instance.
func (l *Loop) Close() {
	if l.inst != nil {
		l.inst.Unmount()
	}
}
