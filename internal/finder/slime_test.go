package finder

import "testing"

func TestIsSlimeChunkDeterministic(t *testing.T) {
	for cx := int32(-50); cx < 50; cx++ {
		for cz := int32(-50); cz < 50; cz++ {
			if IsSlimeChunk(cx, cz) != IsSlimeChunk(cx, cz) {
				t.Fatalf("IsSlimeChunk not deterministic at (%d, %d)", cx, cz)
			}
		}
	}
}

func TestSlimeChunkDensity(t *testing.T) {
	// Roughly one chunk in ten; allow a generous band.
	count := 0
	total := 0
	for cx := int32(-100); cx < 100; cx++ {
		for cz := int32(-100); cz < 100; cz++ {
			total++
			if IsSlimeChunk(cx, cz) {
				count++
			}
		}
	}
	ratio := float64(count) / float64(total)
	if ratio < 0.05 || ratio > 0.15 {
		t.Fatalf("slime chunk ratio %f outside [0.05, 0.15]", ratio)
	}
}

func TestFindSlimeChunksMatchPredicate(t *testing.T) {
	for _, c := range FindSlimeChunks(-1000, 2000, 800) {
		cx := floorDiv(c.X-8, 16)
		cz := floorDiv(c.Z-8, 16)
		if !IsSlimeChunk(cx, cz) {
			t.Fatalf("(%d,%d) reported but chunk (%d,%d) is not a slime chunk", c.X, c.Z, cx, cz)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	cases := []struct{ a, b, want int32 }{
		{0, 16, 0},
		{15, 16, 0},
		{16, 16, 1},
		{-1, 16, -1},
		{-16, 16, -1},
		{-17, 16, -2},
		{-380, 480, -1},
		{380, 480, 0},
	}
	for _, tc := range cases {
		if got := floorDiv(tc.a, tc.b); got != tc.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
