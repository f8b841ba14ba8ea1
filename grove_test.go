package grove

import (
	"math/rand/v2"
	"testing"
)

// newTestRand returns a deterministic rng shared by tests that need one.
func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b9))
}

func TestRangeSample(t *testing.T) {
	rng := newTestRand(1)
	r := Range{Min: 2, Max: 5}
	for i := 0; i < 100; i++ {
		v := r.Sample(rng)
		if v < 2 || v > 5 {
			t.Fatalf("Sample = %v, want in [2, 5]", v)
		}
	}
}

func TestRangeSampleDegenerate(t *testing.T) {
	rng := newTestRand(1)
	r := Range{Min: 3, Max: 3}
	if v := r.Sample(rng); v != 3 {
		t.Errorf("Sample = %v, want 3", v)
	}
}

func TestIntRangeSample(t *testing.T) {
	rng := newTestRand(2)
	r := IntRange{Min: 2, Max: 4}
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		v := r.Sample(rng)
		if v < 2 || v > 4 {
			t.Fatalf("Sample = %d, want in [2, 4]", v)
		}
		seen[v] = true
	}
	for want := 2; want <= 4; want++ {
		if !seen[want] {
			t.Errorf("Sample never produced %d over 200 draws", want)
		}
	}
	if v := (IntRange{Min: 7, Max: 7}).Sample(rng); v != 7 {
		t.Errorf("degenerate Sample = %d, want 7", v)
	}
}

func TestClamp(t *testing.T) {
	if v := clamp(-0.5, 0, 1); v != 0 {
		t.Errorf("clamp(-0.5) = %v, want 0", v)
	}
	if v := clamp(1.5, 0, 1); v != 1 {
		t.Errorf("clamp(1.5) = %v, want 1", v)
	}
	if v := clamp(0.25, 0, 1); v != 0.25 {
		t.Errorf("clamp(0.25) = %v, want 0.25", v)
	}
}

func TestLerpColor(t *testing.T) {
	a := Color{R: 0, G: 0.2, B: 1, A: 1}
	b := Color{R: 1, G: 0.8, B: 0, A: 0.5}
	mid := lerpColor(a, b, 0.5)
	want := Color{R: 0.5, G: 0.5, B: 0.5, A: 0.75}
	if mid != want {
		t.Errorf("lerpColor = %+v, want %+v", mid, want)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	if !r.Contains(10, 10) {
		t.Error("edge point should be inside")
	}
	if !r.Contains(25, 25) {
		t.Error("interior point should be inside")
	}
	if r.Contains(31, 15) {
		t.Error("outside point should not be inside")
	}
}
