package particle

import (
	"math"
	"math/rand/v2"
)

const (
	// scrollDecay fades a scroll burst over the following frames.
	scrollDecay = 0.9
	// clickDecay fades the firefly click boost.
	clickDecay = 0.9

	cameraFOV  = 60.0
	cameraZ    = 600.0
	cameraNear = 1.0
	cameraFar  = 2000.0
)

// Pointer is the last known pointer position in viewport-centred
// coordinates (y up).
type Pointer struct {
	X, Y   float64
	Active bool
}

// Engine runs one particle simulation. It is not safe for concurrent use:
// the goroutine driving Advance owns it, and inputs must be delivered on
// that goroutine too.
type Engine struct {
	spec *Spec
	rng  *rand.Rand
	buf  *Buffer

	width, height float64
	elapsed       float64

	lastScrollY    float64
	scrollVelocity float64

	pointer    Pointer
	clickBoost float64
}

// New allocates and seeds an engine for a width x height viewport.
// A nil rng uses a randomly seeded source.
func New(spec *Spec, width, height float64, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	e := &Engine{spec: spec, rng: rng}
	e.Resize(width, height)
	return e
}

// Spec returns the mode the engine runs.
func (e *Engine) Spec() *Spec { return e.spec }

// Buffer returns the live particle buffer, or nil after Release.
func (e *Engine) Buffer() *Buffer { return e.buf }

// Size returns the viewport the buffer was sized for.
func (e *Engine) Size() (width, height float64) { return e.width, e.height }

// Elapsed returns the simulated seconds so far.
func (e *Engine) Elapsed() float64 { return e.elapsed }

// ScrollVelocity returns the current, decaying scroll velocity.
func (e *Engine) ScrollVelocity() float64 { return e.scrollVelocity }

// ClickBoost returns the current, decaying click boost.
func (e *Engine) ClickBoost() float64 { return e.clickBoost }

// Pointer returns the last pointer state.
func (e *Engine) Pointer() Pointer { return e.pointer }

// Resize reallocates every array for the new viewport and reseeds.
func (e *Engine) Resize(width, height float64) {
	e.width = math.Max(width, 0)
	e.height = math.Max(height, 0)
	e.buf = newBuffer(e.spec, Count(e.spec, e.width, e.height))
	e.spec.reset(e)
}

// Advance steps the simulation by dt seconds of wall-clock time.
func (e *Engine) Advance(dt float64) {
	if e.buf == nil {
		return
	}
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	e.elapsed += dt
	e.spec.update(e, frame{delta: float32(dt * 60), time: e.elapsed})

	e.scrollVelocity *= scrollDecay
	e.clickBoost *= clickDecay
}

// ScrollTo records the page's vertical scroll offset. The difference from
// the previous offset becomes the scroll velocity.
func (e *Engine) ScrollTo(offsetY float64) {
	e.scrollVelocity = offsetY - e.lastScrollY
	e.lastScrollY = offsetY
}

// PointerMove records the pointer in viewport-centred coordinates.
func (e *Engine) PointerMove(x, y float64) {
	e.pointer = Pointer{X: x, Y: y, Active: true}
}

// PointerLeave marks the pointer as gone, keeping its last position.
func (e *Engine) PointerLeave() {
	e.pointer.Active = false
}

// Click starts a full-strength repulsion boost.
func (e *Engine) Click() {
	e.clickBoost = 1
}

// Release drops the buffer. Advance becomes a no-op.
func (e *Engine) Release() {
	e.buf = nil
}

// CenterPointer converts a surface pixel position into the centred, y-up
// coordinates PointerMove expects.
func CenterPointer(px, py, width, height float64) (x, y float64) {
	return px - width/2, -(py - height/2)
}

// Project maps a world position onto a width x height surface through the
// background camera. scale is the size multiplier at that depth; ok is false
// when the point is outside the camera's depth range.
func Project(x, y, z, width, height float64) (sx, sy, scale float64, ok bool) {
	depth := cameraZ - z
	if depth < cameraNear || depth > cameraFar || height <= 0 {
		return 0, 0, 0, false
	}
	focal := (height / 2) / math.Tan(cameraFOV*math.Pi/360)
	scale = focal / depth
	return width/2 + x*scale, height/2 - y*scale, scale, true
}
