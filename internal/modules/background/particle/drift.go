package particle

import "math"

const (
	driftScrollGain = 0.025
	driftDamping    = 0.85
	driftSettle     = 0.02
	// driftCalmScroll is the scroll speed below which particles settle home.
	driftCalmScroll = 0.1
	driftWrapMargin = 120
)

func resetDrift(e *Engine) {
	b := e.buf
	halfW, halfH := e.width/2, e.height/2
	exclusionHalf := math.Min(450, halfW-40)

	for i := 0; i < b.Count; i++ {
		idx := i * 3

		x := randomBetween(e.rng, -halfW, halfW)
		// Keep most particles out of the centre column where the content sits.
		if e.rng.Float64() < 0.8 && exclusionHalf > 20 {
			if e.rng.Float64() < 0.5 {
				x = randomBetween(e.rng, -halfW, -exclusionHalf)
			} else {
				x = randomBetween(e.rng, exclusionHalf, halfW)
			}
		}
		y := randomBetween(e.rng, -halfH, halfH)
		z := randomBetween(e.rng, -200, 200)

		b.Positions[idx] = float32(x)
		b.Positions[idx+1] = float32(y)
		b.Positions[idx+2] = float32(z)
		copy(b.Origins[idx:idx+3], b.Positions[idx:idx+3])
		b.Velocities[idx] = 0
		b.Velocities[idx+1] = 0
		b.Velocities[idx+2] = 0

		brightness := float32(randomBetween(e.rng, 0.6, 1))
		b.Colors[idx] = 0.6 * brightness
		b.Colors[idx+1] = 0.7 * brightness
		b.Colors[idx+2] = 0.9 * brightness
	}
}

func updateDrift(e *Engine, f frame) {
	b := e.buf
	kick := float32(e.scrollVelocity * driftScrollGain)
	settle := math.Abs(e.scrollVelocity) < driftCalmScroll
	edge := float32(e.height/2 + driftWrapMargin)

	for i := 0; i < b.Count; i++ {
		idx := i * 3
		b.Velocities[idx+1] += kick

		for axis := 0; axis < 3; axis++ {
			b.Positions[idx+axis] += b.Velocities[idx+axis] * f.delta
			b.Velocities[idx+axis] *= driftDamping
			if settle {
				b.Positions[idx+axis] = lerp(b.Positions[idx+axis], b.Origins[idx+axis], driftSettle)
			}
		}

		if b.Positions[idx+1] < -edge {
			b.Positions[idx+1] = edge
		} else if b.Positions[idx+1] > edge {
			b.Positions[idx+1] = -edge
		}
	}
}
