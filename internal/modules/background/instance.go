package background

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/thelucius7/site-core/internal/modules/background/particle"
	"go.uber.org/zap"
)

// Instance is one mounted background. It stays inert, holding no buffers,
// until it has a mode to run and a non-zero size.
type Instance struct {
	id     string
	mode   Mode
	logger *zap.Logger
	rng    *rand.Rand

	engine        *particle.Engine
	width, height float64
	unmounted     bool
}

// Mount creates an instance for the given surface size. A nil rng seeds
// one at random.
func Mount(mode Mode, width, height float64, rng *rand.Rand, logger *zap.Logger) *Instance {
	if logger == nil {
		logger = zap.NewNop()
	}
	in := &Instance{
		id:     uuid.NewString(),
		mode:   mode,
		rng:    rng,
		width:  width,
		height: height,
	}
	in.logger = logger.With(zap.String("background", in.id), zap.String("mode", string(mode)))
	in.attach()
	return in
}

func (in *Instance) attach() {
	spec := in.mode.Spec()
	if spec == nil || in.width <= 0 || in.height <= 0 {
		return
	}
	in.engine = particle.New(spec, in.width, in.height, in.rng)
	in.logger.Debug("background mounted",
		zap.Float64("width", in.width),
		zap.Float64("height", in.height),
		zap.Int("particles", in.engine.Buffer().Count))
}

func (in *Instance) ID() string   { return in.id }
func (in *Instance) Mode() Mode   { return in.mode }
func (in *Instance) Active() bool { return in.engine != nil }

// Engine returns the running simulation, or nil while inert.
func (in *Instance) Engine() *particle.Engine { return in.engine }

// Size returns the last surface size seen.
func (in *Instance) Size() (width, height float64) { return in.width, in.height }

// Resize follows the surface. The first non-zero size mounts the engine.
func (in *Instance) Resize(width, height float64) {
	if in.unmounted {
		return
	}
	in.width, in.height = width, height
	if in.engine == nil {
		in.attach()
		return
	}
	if width <= 0 || height <= 0 {
		in.engine.Release()
		in.engine = nil
		return
	}
	in.engine.Resize(width, height)
}

// Advance steps the simulation by dt seconds.
func (in *Instance) Advance(dt float64) {
	if in.engine != nil {
		in.engine.Advance(dt)
	}
}

// Apply hands one surface input to the simulation.
func (in *Instance) Apply(ev Input) {
	if ev.Kind == InputResize {
		in.Resize(ev.X, ev.Y)
		return
	}
	e := in.engine
	if e == nil {
		return
	}
	switch ev.Kind {
	case InputScroll:
		e.ScrollTo(ev.Y)
	case InputPointer:
		e.PointerMove(ev.X, ev.Y)
	case InputLeave:
		e.PointerLeave()
	case InputClick:
		e.Click()
	}
}

// Unmount releases the buffers. Later calls do nothing.
func (in *Instance) Unmount() {
	if in.unmounted {
		return
	}
	in.unmounted = true
	if in.engine != nil {
		in.engine.Release()
		in.engine = nil
	}
	in.logger.Debug("background unmounted")
}
