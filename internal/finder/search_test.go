package finder

import "testing"

func TestSearchStepByRarity(t *testing.T) {
	cases := []struct {
		biome BiomeKind
		want  int32
	}{
		{BiomeMushroom, 64},  // rarity 0.95
		{BiomeIceSpikes, 64}, // rarity 0.85
		{BiomeMesa, 128},     // rarity exactly 0.8: not > 0.8
		{BiomeJungle, 128},   // rarity 0.6
		{BiomeSnowyTaiga, 256},
		{BiomePlains, 256},
	}
	for _, tc := range cases {
		if got := searchStep(tc.biome); got != tc.want {
			t.Errorf("searchStep(%s) = %d, want %d", tc.biome, got, tc.want)
		}
	}
}

func TestFindNearestBiomeUnknownTarget(t *testing.T) {
	if _, ok := FindNearestBiome(12345, 0, 0, 10000, "not_a_biome"); ok {
		t.Fatal("unknown biome name should report not found")
	}
}

func TestFindNearestBiomeDeterministic(t *testing.T) {
	a, okA := FindNearestBiome(12345, 0, 0, 10000, "forest")
	b, okB := FindNearestBiome(12345, 0, 0, 10000, "forest")
	if okA != okB || a != b {
		t.Fatalf("identical searches diverged: (%+v,%v) vs (%+v,%v)", a, okA, b, okB)
	}
}

func TestFindNearestBiomeMatchClassifies(t *testing.T) {
	// Any returned coordinate must actually classify as the target.
	targets := []string{"jungle", "desert", "taiga", "ocean", "plains"}
	for _, target := range targets {
		m, ok := FindNearestBiome(12345, 0, 0, 10000, target)
		if !ok {
			continue
		}
		want, _ := ParseBiomeKind(target)
		if got := BiomeAt(12345, m.X, m.Z); got != want {
			t.Errorf("target %s: match (%d,%d) classifies as %s", target, m.X, m.Z, got)
		}
	}
}

func TestFindNearestBiomeRadiusContainment(t *testing.T) {
	m, ok := FindNearestBiome(555, 1000, -2000, 8000, "forest")
	if !ok {
		t.Skip("no forest sample within 8000 blocks for this seed")
	}
	dx := int64(m.X - 1000)
	dz := int64(m.Z - -2000)
	if dx*dx+dz*dz > 8000*8000 {
		t.Fatalf("match (%d,%d) outside radius", m.X, m.Z)
	}
	if m.Distance < 0 || m.Distance > 8000 {
		t.Fatalf("reported distance %f outside [0, 8000]", m.Distance)
	}
}

func TestFindNearestBiomeIsNearestSample(t *testing.T) {
	// Re-scan the same grid and confirm no matching sample is closer.
	const (
		seed    = 424242
		centerX = int32(0)
		centerZ = int32(0)
		radius  = int32(6000)
		target  = "taiga"
	)
	m, ok := FindNearestBiome(seed, centerX, centerZ, radius, target)
	if !ok {
		t.Skip("no taiga sample for this seed")
	}
	kind, _ := ParseBiomeKind(target)
	step := searchStep(kind)
	samples := radius * 2 / step
	for i := int32(0); i < samples; i++ {
		for j := int32(0); j < samples; j++ {
			x := centerX - radius + i*step
			z := centerZ - radius + j*step
			dx := int64(x - centerX)
			dz := int64(z - centerZ)
			distSq := dx*dx + dz*dz
			if distSq > int64(radius)*int64(radius) {
				continue
			}
			if BiomeAt(seed, x, z) != kind {
				continue
			}
			if float64(distSq) < m.Distance*m.Distance-1e-6 {
				t.Fatalf("sample (%d,%d) closer than reported match (%d,%d)", x, z, m.X, m.Z)
			}
		}
	}
}

func TestFindNearestBiomeTinyRadius(t *testing.T) {
	// Even a radius below one step samples at least the corner point.
	_, _ = FindNearestBiome(9, 0, 0, 10, "plains")
}
