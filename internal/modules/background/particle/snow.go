package particle

import "math"

const (
	snowWind        = 0.01
	snowGravity     = 0.02
	snowTurbulence  = 0.15
	snowDampX       = 0.96
	snowDampY       = 0.98
	snowRespawnEdge = 40
)

func resetSnow(e *Engine) {
	b := e.buf
	halfW, halfH := e.width/2, e.height/2

	for i := 0; i < b.Count; i++ {
		idx := i * 3
		z := randomBetween(e.rng, -300, 120)

		b.Positions[idx] = float32(randomBetween(e.rng, -halfW, halfW))
		b.Positions[idx+1] = float32(randomBetween(e.rng, -halfH, halfH))
		b.Positions[idx+2] = float32(z)
		b.Velocities[idx] = float32(randomBetween(e.rng, -0.05, 0.05))
		b.Velocities[idx+1] = float32(randomBetween(e.rng, -0.15, -0.6))
		b.Velocities[idx+2] = 0

		// Nearer flakes are brighter.
		brightness := float32(clamp((z+300)/420, 0.35, 1))
		b.Colors[idx] = brightness
		b.Colors[idx+1] = brightness
		b.Colors[idx+2] = brightness
	}
}

func updateSnow(e *Engine, f frame) {
	b := e.buf
	halfW := e.width / 2
	top := float32(e.height/2 + snowRespawnEdge)
	side := float32(halfW + snowRespawnEdge)

	for i := 0; i < b.Count; i++ {
		idx := i * 3
		x, z := b.Positions[idx], b.Positions[idx+2]

		turbulence := float32(math.Sin(f.time+float64(x)*0.01+float64(z)*0.02)) * snowTurbulence
		b.Velocities[idx] += snowWind + turbulence
		b.Velocities[idx+1] -= snowGravity

		b.Positions[idx] += b.Velocities[idx] * f.delta
		b.Positions[idx+1] += b.Velocities[idx+1] * f.delta

		b.Velocities[idx] *= snowDampX
		b.Velocities[idx+1] *= snowDampY

		if b.Positions[idx+1] < -top {
			b.Positions[idx+1] = top
			b.Positions[idx] = float32(randomBetween(e.rng, -halfW, halfW))
			b.Velocities[idx] = float32(randomBetween(e.rng, -0.05, 0.05))
			b.Velocities[idx+1] = float32(randomBetween(e.rng, -0.2, -0.6))
		}

		if b.Positions[idx] > side {
			b.Positions[idx] = -side
		}
		if b.Positions[idx] < -side {
			b.Positions[idx] = side
		}
	}
}
