package particle

import "math"

// Spec describes one particle mode: how many particles a viewport gets,
// how they look, and how they are seeded and stepped.
type Spec struct {
	Name string

	MinCount        int
	MaxCount        int
	AreaPerParticle float64

	PointSize float32
	Opacity   float32
	Additive  bool

	withOrigins bool
	withPhases  bool

	reset  func(e *Engine)
	update func(e *Engine, f frame)
}

type frame struct {
	// delta is the elapsed wall-clock time in 60 fps frames.
	delta float32
	// time is the seconds since the engine was created.
	time float64
}

var (
	// Drift particles rest at an origin and are agitated by page scrolling.
	Drift = &Spec{
		Name:            "drift",
		MinCount:        1400,
		MaxCount:        3200,
		AreaPerParticle: 900,
		PointSize:       2.1,
		Opacity:         0.7,
		withOrigins:     true,
		reset:           resetDrift,
		update:          updateDrift,
	}

	// Snow falls with turbulence and respawns at the top.
	Snow = &Spec{
		Name:            "snow",
		MinCount:        1000,
		MaxCount:        2400,
		AreaPerParticle: 1100,
		PointSize:       6,
		Opacity:         0.85,
		Additive:        true,
		reset:           resetSnow,
		update:          updateSnow,
	}

	// Fireflies wander, pulse and flee the pointer.
	Fireflies = &Spec{
		Name:            "fireflies",
		MinCount:        700,
		MaxCount:        1600,
		AreaPerParticle: 1400,
		PointSize:       5,
		Opacity:         0.9,
		Additive:        true,
		withPhases:      true,
		reset:           resetFireflies,
		update:          updateFireflies,
	}
)

// Count returns the particle count for a viewport, clamped to the spec's range.
func Count(spec *Spec, width, height float64) int {
	area := width * height
	if width <= 0 || height <= 0 || math.IsNaN(area) {
		return spec.MinCount
	}
	n := math.Floor(area / spec.AreaPerParticle)
	if n >= float64(spec.MaxCount) || math.IsInf(n, 1) {
		return spec.MaxCount
	}
	return clampInt(int(n), spec.MinCount, spec.MaxCount)
}
