package particle

import "math/rand/v2"

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(start, end, alpha float32) float32 {
	return start + (end-start)*alpha
}

// randomBetween returns a uniform value in [lo, hi), or (hi, lo] when the
// bounds are given in descending order.
func randomBetween(rng *rand.Rand, lo, hi float64) float64 {
	return rng.Float64()*(hi-lo) + lo
}
