package finder

import "math"

// BiomeMatch is the nearest sampled occurrence of a requested biome.
type BiomeMatch struct {
	Biome    BiomeKind
	X, Z     int32
	Distance float64
}

// searchStep picks the grid sampling interval for a target biome. Rarer
// biomes form smaller patches and need a denser scan.
func searchStep(b BiomeKind) int32 {
	switch r := b.Rarity(); {
	case r > 0.8:
		return 64
	case r > 0.5:
		return 128
	default:
		return 256
	}
}

// FindNearestBiome scans a 2*radius square around the center on a grid and
// returns the closest sample classified as the target biome. The scan is a
// heuristic: occurrences smaller than the step can be missed. An unknown
// target name reports ok=false, the same as no occurrence found.
func FindNearestBiome(seed int64, centerX, centerZ, radius int32, target string) (BiomeMatch, bool) {
	kind, ok := ParseBiomeKind(target)
	if !ok {
		return BiomeMatch{}, false
	}

	step := searchStep(kind)
	samplesPerAxis := radius * 2 / step
	if samplesPerAxis < 1 {
		samplesPerAxis = 1
	}

	radiusSq := int64(radius) * int64(radius)

	var best BiomeMatch
	found := false
	for i := int32(0); i < samplesPerAxis; i++ {
		for j := int32(0); j < samplesPerAxis; j++ {
			x := centerX - radius + i*step
			z := centerZ - radius + j*step

			dx := int64(x - centerX)
			dz := int64(z - centerZ)
			distSq := dx*dx + dz*dz
			if distSq > radiusSq {
				continue
			}

			if BiomeAt(seed, x, z) != kind {
				continue
			}

			distance := math.Sqrt(float64(distSq))
			if !found || distance < best.Distance {
				best = BiomeMatch{Biome: kind, X: x, Z: z, Distance: distance}
				found = true
			}
		}
	}
	return best, found
}
