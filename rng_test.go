package seedpaint

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestRNGMatchesPCGStream(t *testing.T) {
	r := NewRNG(12)
	ref := rand.NewPCG(12, rngStream)
	for i := 0; i < 100; i++ {
		got, err := r.Float(0, 1)
		if err != nil {
			t.Fatal(err)
		}
		want := float64(ref.Uint64()>>11) / (1 << 53)
		if got != want {
			t.Fatalf("draw %d = %v, want %v", i, got, want)
		}
	}
}

func TestRNGDeterminism(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 1000; i++ {
		va, _ := a.Float(-3, 7)
		vb, _ := b.Float(-3, 7)
		if math.Float64bits(va) != math.Float64bits(vb) {
			t.Fatalf("draw %d differs: %v vs %v", i, va, vb)
		}
	}
}

func TestRNGReseedRestartsStream(t *testing.T) {
	r := NewRNG(5)
	first := make([]float64, 10)
	for i := range first {
		first[i], _ = r.Float(0, 1)
	}
	r.Reseed(5)
	if r.Draws() != 0 {
		t.Errorf("Draws after Reseed = %d, want 0", r.Draws())
	}
	for i, want := range first {
		got, _ := r.Float(0, 1)
		if got != want {
			t.Fatalf("draw %d after reseed = %v, want %v", i, got, want)
		}
	}
}

func TestRNGSeedSensitivity(t *testing.T) {
	a, b := NewRNG(1), NewRNG(2)
	same := 0
	for i := 0; i < 64; i++ {
		va, _ := a.Float(0, 1)
		vb, _ := b.Float(0, 1)
		if va == vb {
			same++
		}
	}
	if same == 64 {
		t.Error("seeds 1 and 2 produced identical streams")
	}
}

func TestCanonicalSeed(t *testing.T) {
	minusOne := int64(-1)
	minInt := int64(math.MinInt64)
	tests := []struct {
		in   float64
		want uint64
	}{
		{0, 0},
		{12, 12},
		{12.7, 12},
		{-0.5, uint64(minusOne)},
		{math.NaN(), 0},
		{math.Inf(1), math.MaxInt64},
		{math.Inf(-1), uint64(minInt)},
		{1e300, math.MaxInt64},
	}
	for _, tt := range tests {
		if got := CanonicalSeed(tt.in); got != tt.want {
			t.Errorf("CanonicalSeed(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRNGFractionalSeedMatchesFloor(t *testing.T) {
	a, b := NewRNG(12.9), NewRNG(12)
	va, _ := a.Float(0, 1)
	vb, _ := b.Float(0, 1)
	if va != vb {
		t.Errorf("seed 12.9 drew %v, seed 12 drew %v", va, vb)
	}
	if a.Seed() != 12 {
		t.Errorf("Seed() = %d, want 12", a.Seed())
	}
}

func TestRNGFloatRange(t *testing.T) {
	r := NewRNG(99)
	for i := 0; i < 10000; i++ {
		v, err := r.Float(0.05, 0.95)
		if err != nil {
			t.Fatal(err)
		}
		if v < 0.05 || v >= 0.95 {
			t.Fatalf("Float(0.05, 0.95) = %v, out of [0.05, 0.95)", v)
		}
	}
}

func TestRNGFloatEqualBounds(t *testing.T) {
	r := NewRNG(1)
	v, err := r.Float(3, 3)
	if err != nil || v != 3 {
		t.Errorf("Float(3, 3) = %v, %v; want 3, nil", v, err)
	}
	if r.Draws() != 1 {
		t.Errorf("Draws = %d, want 1", r.Draws())
	}
}

func TestRNGInvalidRange(t *testing.T) {
	r := NewRNG(1)
	cases := [][2]float64{
		{2, 1},
		{math.NaN(), 1},
		{0, math.Inf(1)},
		{-1e308, 1e308},
		{-math.MaxFloat64, 0.5 * math.MaxFloat64},
	}
	for _, c := range cases {
		if _, err := r.Float(c[0], c[1]); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("Float(%v, %v) err = %v, want ErrInvalidRange", c[0], c[1], err)
		}
	}
	for _, c := range [][2]int{{5, 4}, {0, 1 << 53}, {math.MinInt64, math.MaxInt64}, {-1 << 62, 1 << 62}} {
		if _, err := r.Int(c[0], c[1]); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("Int(%d, %d) err = %v, want ErrInvalidRange", c[0], c[1], err)
		}
	}
	if _, err := r.FloatEased(-1e308, 1e308, nil); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("FloatEased(-1e308, 1e308) err = %v, want ErrInvalidRange", err)
	}
	if _, err := r.Bool(1.5); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Bool(1.5) err = %v, want ErrInvalidRange", err)
	}
	if _, err := r.FloatEased(1, 0, ease.InQuad); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("FloatEased(1, 0) err = %v, want ErrInvalidRange", err)
	}
	if r.Draws() != 0 {
		t.Errorf("rejected calls advanced the stream: Draws = %d", r.Draws())
	}
}

func TestRNGIntInclusive(t *testing.T) {
	r := NewRNG(7)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v, err := r.Int(5, 8)
		if err != nil {
			t.Fatal(err)
		}
		if v < 5 || v > 8 {
			t.Fatalf("Int(5, 8) = %d", v)
		}
		seen[v] = true
	}
	for v := 5; v <= 8; v++ {
		if !seen[v] {
			t.Errorf("Int(5, 8) never returned %d", v)
		}
	}
	if r.Draws() != 2000 {
		t.Errorf("Draws = %d, want one per call", r.Draws())
	}
}

func TestRNGWideRanges(t *testing.T) {
	r := NewRNG(9)
	for i := 0; i < 200; i++ {
		f, err := r.Float(-1e307, 1e307)
		if err != nil {
			t.Fatal(err)
		}
		if math.IsNaN(f) || f < -1e307 || f >= 1e307 {
			t.Fatalf("Float(-1e307, 1e307) = %v", f)
		}
		n, err := r.Int(math.MinInt64, math.MinInt64+(1<<53-1))
		if err != nil {
			t.Fatal(err)
		}
		if n < math.MinInt64 || n > math.MinInt64+(1<<53-1) {
			t.Fatalf("Int near MinInt64 = %d", n)
		}
		if _, err := r.Int(-(1 << 52), 1<<52-1); err != nil {
			t.Fatalf("Int over a 2^53 span: %v", err)
		}
	}
}

func TestRNGBoolEdges(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 100; i++ {
		if v, _ := r.Bool(0); v {
			t.Fatal("Bool(0) returned true")
		}
		if v, _ := r.Bool(1); !v {
			t.Fatal("Bool(1) returned false")
		}
	}
}

func TestRNGFloatEased(t *testing.T) {
	r := NewRNG(11)
	for _, fn := range []ease.TweenFunc{nil, ease.InQuad, ease.OutBack, ease.InOutElastic} {
		for i := 0; i < 500; i++ {
			v, err := r.FloatEased(10, 20, fn)
			if err != nil {
				t.Fatal(err)
			}
			if v < 10 || v >= 20 {
				t.Fatalf("FloatEased = %v, out of [10, 20)", v)
			}
		}
	}
}

func TestRNGFloatEasedBias(t *testing.T) {
	r := NewRNG(21)
	var sum float64
	const n = 4000
	for i := 0; i < n; i++ {
		v, _ := r.FloatEased(0, 1, ease.InQuad)
		sum += v
	}
	// The mean of u^2 for uniform u is 1/3.
	if mean := sum / n; !approxEqual(mean, 1.0/3, 0.03) {
		t.Errorf("mean of InQuad draws = %v, want ~0.333", mean)
	}
}

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func BenchmarkRNGFloat(b *testing.B) {
	r := NewRNG(1)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = r.Float(0, 1)
	}
}
