package finder

// Bedrock slime chunks are seed-independent: a chunk is a slime chunk
// purely as a function of its coordinates. All arithmetic is uint32 and
// wraps.

// SlimeChunk is the block-space center of a slime chunk.
type SlimeChunk struct {
	X, Z int32
}

// IsSlimeChunk reports whether the chunk at the given chunk coordinates
// spawns slimes.
func IsSlimeChunk(cx, cz int32) bool {
	v := uint32(cx)*uint32(cx)*4987142 +
		uint32(cx)*5947611 +
		uint32(cz)*uint32(cz)*4392871 +
		uint32(cz)*389711
	v = (v >> 17) ^ v
	return v%10 == 0
}

// floorDiv is floored integer division; plain / truncates toward zero and
// would map negative block coordinates to the wrong chunk.
func floorDiv(a, b int32) int32 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// FindSlimeChunks returns the slime chunks in the square of chunk radius
// radius/16 around the center, in scan order.
func FindSlimeChunks(centerX, centerZ, radius int32) []SlimeChunk {
	chunkCX := floorDiv(centerX, 16)
	chunkCZ := floorDiv(centerZ, 16)
	chunkRadius := radius / 16

	var out []SlimeChunk
	for dx := -chunkRadius; dx <= chunkRadius; dx++ {
		for dz := -chunkRadius; dz <= chunkRadius; dz++ {
			cx := chunkCX + dx
			cz := chunkCZ + dz
			if IsSlimeChunk(cx, cz) {
				out = append(out, SlimeChunk{X: cx*16 + 8, Z: cz*16 + 8})
			}
		}
	}
	return out
}
