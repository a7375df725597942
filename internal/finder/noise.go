package finder

import "math"

// Seeded value noise underlying the biome classifier.
//
// Every operation here is fixed-width and wraps on overflow. The exact bit
// pattern of the intermediate int32 values is part of the placement
// contract, so none of this can be widened or replaced with a different
// noise algorithm without changing every classification result.

// valueNoise returns a deterministic pseudo-random value in roughly [-1, 1]
// derived from the seed and one integer coordinate.
func valueNoise(seed int64, x int32) float64 {
	n := x*374761393 + int32(seed)*668265263
	n = (n ^ (n >> 13)) * 1274126177
	return float64(n) / float64(math.MaxInt32)
}

// fieldNoise combines three valueNoise samples, keyed on x, z and x+z with
// offset seeds, into one 2-D field value.
func fieldNoise(seed int64, x, z int32) float64 {
	n1 := valueNoise(seed, x)
	n2 := valueNoise(seed+12345, z)
	n3 := valueNoise(seed+67890, x+z)
	return (n1 + n2 + n3) / 3.0
}

// octaveField sums fieldNoise over four octaves with halved amplitude and
// doubled frequency per octave, then remaps the result to [0, 1]. The
// octave index shifts the seed by 1000 per layer.
func octaveField(seed int64, nx, nz float64) float64 {
	sum := 0.0
	amplitude := 1.0
	frequency := 1.0

	for i := int64(0); i < 4; i++ {
		sum += fieldNoise(seed+i*1000, int32(nx*frequency), int32(nz*frequency)) * amplitude
		amplitude *= 0.5
		frequency *= 2.0
	}

	return (sum + 1.0) / 2.0
}
