package particle

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	fireflyRepelRadius = 140
	fireflyDamping     = 0.9
	fireflyWrapMargin  = 60
	fireflyDriftGain   = 0.02
)

var fireflyPalette = []colorful.Color{
	mustHex("#c7ff6b"),
	mustHex("#6dff8a"),
	mustHex("#8fd8ff"),
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// repulsion returns the velocity change pushing a particle at offset
// (dx, dy) from the pointer away from it. Particles outside the radius, or
// sitting exactly on the pointer, are not pushed.
func repulsion(dx, dy, strength float64) (fx, fy float64) {
	dist := math.Hypot(dx, dy)
	if dist >= fireflyRepelRadius || dist <= 0.01 {
		return 0, 0
	}
	force := (fireflyRepelRadius - dist) / fireflyRepelRadius * strength
	return dx / dist * force, dy / dist * force
}

// repelStrength is the repulsion at the current click boost.
func repelStrength(boost float64) float64 {
	return 0.4 + boost*0.8
}

func resetFireflies(e *Engine) {
	b := e.buf
	halfW, halfH := e.width/2, e.height/2

	for i := 0; i < b.Count; i++ {
		idx := i * 3
		b.Positions[idx] = float32(randomBetween(e.rng, -halfW, halfW))
		b.Positions[idx+1] = float32(randomBetween(e.rng, -halfH, halfH))
		b.Positions[idx+2] = float32(randomBetween(e.rng, -120, 120))
		b.Velocities[idx] = float32(randomBetween(e.rng, -0.04, 0.04))
		b.Velocities[idx+1] = float32(randomBetween(e.rng, -0.04, 0.04))
		b.Velocities[idx+2] = 0

		c := fireflyPalette[e.rng.IntN(len(fireflyPalette))]
		b.BaseColors[idx] = float32(c.R)
		b.BaseColors[idx+1] = float32(c.G)
		b.BaseColors[idx+2] = float32(c.B)
		copy(b.Colors[idx:idx+3], b.BaseColors[idx:idx+3])

		b.Phases[i] = float32(randomBetween(e.rng, 0, 2*math.Pi))
	}
}

func updateFireflies(e *Engine, f frame) {
	b := e.buf
	t := f.time
	strength := repelStrength(e.clickBoost)
	ptr := e.pointer
	edgeX := float32(e.width/2 + fireflyWrapMargin)
	edgeY := float32(e.height/2 + fireflyWrapMargin)

	for i := 0; i < b.Count; i++ {
		idx := i * 3
		phase := float64(b.Phases[i])

		driftX := math.Sin(t*0.6+phase)*0.2 + math.Sin(t*0.2+phase*2)*0.15
		driftY := math.Cos(t*0.5+phase) * 0.2
		b.Velocities[idx] += float32(driftX * fireflyDriftGain)
		b.Velocities[idx+1] += float32(driftY * fireflyDriftGain)

		if ptr.Active {
			fx, fy := repulsion(float64(b.Positions[idx])-ptr.X, float64(b.Positions[idx+1])-ptr.Y, strength)
			b.Velocities[idx] += float32(fx)
			b.Velocities[idx+1] += float32(fy)
		}

		b.Positions[idx] += b.Velocities[idx] * f.delta
		b.Positions[idx+1] += b.Velocities[idx+1] * f.delta
		b.Velocities[idx] *= fireflyDamping
		b.Velocities[idx+1] *= fireflyDamping

		if b.Positions[idx] > edgeX {
			b.Positions[idx] = -edgeX
		}
		if b.Positions[idx] < -edgeX {
			b.Positions[idx] = edgeX
		}
		if b.Positions[idx+1] > edgeY {
			b.Positions[idx+1] = -edgeY
		}
		if b.Positions[idx+1] < -edgeY {
			b.Positions[idx+1] = edgeY
		}

		pulse := 0.5 + 0.5*math.Sin(t*2+phase)
		intensity := float32(0.35 + pulse*0.65)
		b.Colors[idx] = b.BaseColors[idx] * intensity
		b.Colors[idx+1] = b.BaseColors[idx+1] * intensity
		b.Colors[idx+2] = b.BaseColors[idx+2] * intensity
	}
}
