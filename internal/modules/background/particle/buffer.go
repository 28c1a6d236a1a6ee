package particle

// Buffer is the struct-of-arrays particle store for one engine. Every
// slice is sized from the same Count and replaced as a whole on resize.
type Buffer struct {
	Count int

	Positions  []float32 // x, y, z
	Velocities []float32 // x, y, z
	Colors     []float32 // r, g, b in [0, 1]

	Origins    []float32 // drift: rest positions
	Phases     []float32 // fireflies: one per particle
	BaseColors []float32 // fireflies: colour before pulsing
}

func newBuffer(spec *Spec, count int) *Buffer {
	b := &Buffer{
		Count:      count,
		Positions:  make([]float32, count*3),
		Velocities: make([]float32, count*3),
		Colors:     make([]float32, count*3),
	}
	if spec.withOrigins {
		b.Origins = make([]float32, count*3)
	}
	if spec.withPhases {
		b.Phases = make([]float32, count)
		b.BaseColors = make([]float32, count*3)
	}
	return b
}

// Position returns particle i's position.
func (b *Buffer) Position(i int) (x, y, z float32) {
	idx := i * 3
	return b.Positions[idx], b.Positions[idx+1], b.Positions[idx+2]
}

// Color returns particle i's colour.
func (b *Buffer) Color(i int) (r, g, bl float32) {
	idx := i * 3
	return b.Colors[idx], b.Colors[idx+1], b.Colors[idx+2]
}
