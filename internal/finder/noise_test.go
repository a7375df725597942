package finder

import (
	"math"
	"testing"
)

func TestValueNoiseDeterministic(t *testing.T) {
	for i := int32(-100); i < 100; i++ {
		if valueNoise(12345, i) != valueNoise(12345, i) {
			t.Fatalf("valueNoise not deterministic at x=%d", i)
		}
	}
}

func TestValueNoiseRange(t *testing.T) {
	for i := 0; i < 10000; i++ {
		x := int32(i*7919 - 500000)
		v := valueNoise(42, x)
		if v < -1.0000001 || v > 1.0000001 {
			t.Fatalf("valueNoise(42, %d) = %f, out of range", x, v)
		}
	}
}

func TestValueNoiseSeedSensitivity(t *testing.T) {
	// Different seeds should not produce the same sequence.
	same := 0
	for i := int32(0); i < 100; i++ {
		if valueNoise(1, i) == valueNoise(2, i) {
			same++
		}
	}
	if same == 100 {
		t.Fatal("valueNoise ignores the seed")
	}
}

func TestFieldNoiseRange(t *testing.T) {
	for i := 0; i < 10000; i++ {
		x := int32(i*31 - 150000)
		z := int32(i*57 - 280000)
		v := fieldNoise(99, x, z)
		if v < -1.0000001 || v > 1.0000001 {
			t.Fatalf("fieldNoise(99, %d, %d) = %f, out of range", x, z, v)
		}
	}
}

func TestOctaveFieldDeterministic(t *testing.T) {
	for i := 0; i < 1000; i++ {
		nx := float64(i)*0.37 - 180
		nz := float64(i)*0.53 - 260
		a := octaveField(7, nx, nz)
		b := octaveField(7, nx, nz)
		if a != b {
			t.Fatalf("octaveField not deterministic at (%f, %f): %f vs %f", nx, nz, a, b)
		}
	}
}

func TestOctaveFieldFinite(t *testing.T) {
	// Four octaves with halving amplitude sum to at most 1.875 before the
	// [0,1] remap, so values stay within a known envelope.
	for i := 0; i < 5000; i++ {
		nx := float64(i)*1.7 - 4000
		nz := float64(i)*2.3 - 6000
		v := octaveField(-31337, nx, nz)
		if math.IsNaN(v) || v < -0.5 || v > 1.5 {
			t.Fatalf("octaveField(-31337, %f, %f) = %f, out of envelope", nx, nz, v)
		}
	}
}
