package finder

// Per-region pseudo-random stream used for structure placement. The
// derivation formula and LCG step must match Bedrock world generation
// exactly, including int64 overflow wrapping.

// regionSeed derives the initial generator state for a region from the
// world seed, the region coordinates and a per-kind salt.
func regionSeed(worldSeed int64, regionX, regionZ int32, salt int64) int64 {
	return worldSeed + int64(regionX)*341873128712 + int64(regionZ)*132897987541 + salt
}

// nextInt advances the generator state and returns a draw in [0, bound).
// Draw order matters: callers take the x offset first, then the z offset.
// bound must be >= 1; the structure kind table guarantees this before any
// query reaches here.
func nextInt(state *int64, bound int32) int32 {
	*state = *state*6364136223846793005 + 1442695040888963407
	bits := int64(int32(*state >> 17))
	if bits < 0 {
		bits = -bits
	}
	return int32(bits % int64(bound))
}
