package finder

// Nether fortresses and bastion remnants compete for the same grid: each
// 480×480-block quadrant holds exactly one of the two. A quadrant-level
// roll picks the kind (roughly 33% fortress, 67% bastion) and two further
// draws fix the position inside the quadrant.

const (
	quadrantSize = 480
	netherSalt   = 30084232
)

type quadrantPos struct {
	X, Z int32
}

// checkpointOffsets are the fixed in-quadrant probe positions used to
// decide whether a quadrant intersects the query radius.
var checkpointOffsets = [3]int32{100, 200, 300}

// FindNetherStructures returns the nether structures within radius blocks
// of the center, at most one per quadrant. The first checkpoint falling
// inside the radius resolves its whole quadrant; the resolved set makes
// the one-per-quadrant invariant independent of loop-exit ordering.
func FindNetherStructures(seed int64, centerX, centerZ, radius int32) []Structure {
	minQX := (centerX-radius)/quadrantSize - 1
	maxQX := (centerX+radius)/quadrantSize + 1
	minQZ := (centerZ-radius)/quadrantSize - 1
	maxQZ := (centerZ+radius)/quadrantSize + 1

	radiusSq := int64(radius) * int64(radius)
	resolved := make(map[quadrantPos]bool)

	var results []Structure
	for qx := minQX; qx <= maxQX; qx++ {
		for qz := minQZ; qz <= maxQZ; qz++ {
			q := quadrantPos{X: qx, Z: qz}

		checkpoints:
			for _, offsetX := range checkpointOffsets {
				for _, offsetZ := range checkpointOffsets {
					if resolved[q] {
						break checkpoints
					}

					blockX := qx*quadrantSize + offsetX
					blockZ := qz*quadrantSize + offsetZ
					dx := int64(blockX - centerX)
					dz := int64(blockZ - centerZ)
					if dx*dx+dz*dz > radiusSq {
						continue
					}

					state := regionSeed(seed, qx, qz, netherSalt)
					kind := BastionRemnant
					if nextInt(&state, 100) < 33 {
						kind = NetherFortress
					}

					// Draw order is fixed: x offset, then z offset.
					finalX := qx*quadrantSize + nextInt(&state, 280) + 100
					finalZ := qz*quadrantSize + nextInt(&state, 280) + 100
					resolved[q] = true

					fdx := int64(finalX - centerX)
					fdz := int64(finalZ - centerZ)
					if fdx*fdx+fdz*fdz <= radiusSq {
						results = append(results, Structure{Kind: kind, X: finalX, Z: finalZ})
					}
				}
			}
		}
	}
	return results
}
