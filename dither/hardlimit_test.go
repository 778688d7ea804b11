// SPDX-License-Identifier: EPL-2.0

package dither

import (
	"math"
	"testing"
)

func TestHardLimit_PassThroughBelowKnee(t *testing.T) {
	t.Parallel()

	for x := -0.5; x <= 0.5; x += 1.0 / 64 {
		if got := HardLimit(x, 1); got != x {
			t.Errorf("HardLimit(%v, 1) = %v, want unchanged", x, got)
		}
	}

	if got := HardLimit(0.2, 2); got != 0.4 {
		t.Errorf("HardLimit(0.2, 2) = %v, want 0.4", got)
	}
}

func TestHardLimit_BoundedAndMonotonic(t *testing.T) {
	t.Parallel()

	prev := math.Inf(-1)
	for i := -2000; i <= 2000; i++ {
		x := float64(i) / 1000
		got := HardLimit(x, 1)

		if got <= -1 || got >= 1 {
			t.Fatalf("HardLimit(%v) = %v, not strictly inside (-1, 1)", x, got)
		}
		if got < prev {
			t.Fatalf("HardLimit not monotonic at %v: %v < %v", x, got, prev)
		}
		if math.Abs(got) > math.Abs(x) {
			t.Fatalf("HardLimit(%v) = %v amplified the sample", x, got)
		}
		prev = got
	}
}

func TestHardLimit_Symmetric(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{0.1, 0.5, 0.75, 1, 1.5, 100} {
		if a, b := HardLimit(x, 1), HardLimit(-x, 1); a != -b {
			t.Errorf("HardLimit(%v) = %v, HardLimit(%v) = %v", x, a, -x, b)
		}
	}
}

func TestHardLimit_Curve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x     float64
		scale float64
		want  float64
	}{
		{0.75, 1, 0.5 + 0.5*math.Tanh(0.5)},
		{1, 1, 0.5 + 0.5*math.Tanh(1)},
		{0.5, 2, 0.5 + 0.5*math.Tanh(1)},
		{-1, 1, -0.5 - 0.5*math.Tanh(1)},
	}

	for _, tt := range tests {
		if got := HardLimit(tt.x, tt.scale); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("HardLimit(%v, %v) = %v, want %v", tt.x, tt.scale, got, tt.want)
		}
	}
}

func TestHardLimit_Float32Storage(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{10, 1e6, math.Inf(1)} {
		if got := float32(HardLimit(x, 1)); got >= 1 {
			t.Errorf("float32(HardLimit(%v)) = %v, reached 1", x, got)
		}
		if got := float32(HardLimit(-x, 1)); got <= -1 {
			t.Errorf("float32(HardLimit(%v)) = %v, reached -1", -x, got)
		}
	}
}
