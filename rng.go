package seedpaint

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/tanema/gween/ease"
)

// rngStream selects the PCG stream. It is part of the output format: changing
// it changes every image ever rendered from a seed.
const rngStream = 0x5eed9a1d7c3b4e21

// RNG is a reseedable deterministic number stream. Identical seeds produce
// identical sequences on every platform, because the underlying generator is
// math/rand/v2's PCG, whose output is fixed by the Go standard library.
//
// Each draw method consumes exactly one 64-bit step of the stream, so the
// sequence a generator sees depends only on the seed and on the order and
// number of draws it issues. An RNG is not safe for concurrent use; give every
// concurrent generation its own instance.
type RNG struct {
	pcg   *rand.PCG
	seed  uint64
	draws int
}

// NewRNG returns an RNG already reseeded with seed.
func NewRNG(seed float64) *RNG {
	r := &RNG{pcg: rand.NewPCG(0, rngStream)}
	r.Reseed(seed)
	return r
}

// Reseed discards the current stream position and restarts the stream from
// seed. Any real number is accepted; see CanonicalSeed for how it is reduced
// to the 64-bit state.
func (r *RNG) Reseed(seed float64) {
	r.seed = CanonicalSeed(seed)
	r.pcg.Seed(r.seed, rngStream)
	r.draws = 0
}

// Seed returns the canonical seed of the current stream.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// Draws returns the number of steps consumed since the last Reseed.
func (r *RNG) Draws() int {
	return r.draws
}

// CanonicalSeed reduces a real-valued seed to the 64-bit PCG seed: NaN maps to
// 0, the value is floored toward negative infinity, values outside the int64
// range saturate, and the int64 is reinterpreted as uint64.
func CanonicalSeed(seed float64) uint64 {
	switch {
	case math.IsNaN(seed):
		return 0
	case seed >= math.MaxInt64:
		return math.MaxInt64
	case seed <= math.MinInt64:
		lo := int64(math.MinInt64)
		return uint64(lo)
	}
	return uint64(int64(math.Floor(seed)))
}

// next advances the stream one step and returns a uniform value in [0, 1).
func (r *RNG) next() float64 {
	r.draws++
	return float64(r.pcg.Uint64()>>11) / (1 << 53)
}

// checkRange rejects NaN and infinite bounds, reversed bounds, and spans too
// wide to represent as a float64.
func checkRange(min, max float64) error {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || min > max {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, min, max)
	}
	if math.IsInf(max-min, 0) {
		return fmt.Errorf("%w: span of [%g, %g] overflows", ErrInvalidRange, min, max)
	}
	return nil
}

// Float returns a value uniformly distributed over the half-open interval
// [min, max). When min == max it returns min. A rejected call does not advance
// the stream.
func (r *RNG) Float(min, max float64) (float64, error) {
	if err := checkRange(min, max); err != nil {
		return 0, err
	}
	return scale(r.next(), min, max), nil
}

// scale maps u in [0, 1) onto [min, max), guarding against rounding up to max.
func scale(u, min, max float64) float64 {
	if min == max {
		return min
	}
	// The conversion keeps the compiler from fusing this into an FMA, which
	// some architectures would round differently.
	v := min + float64((max-min)*u)
	if v >= max {
		v = math.Nextafter(max, min)
	}
	return v
}

// maxIntSpan is the widest Int interval, max-min, that one 53-bit step covers
// exactly.
const maxIntSpan = 1<<53 - 1

// Int returns an integer uniformly distributed over the closed interval
// [min, max]. Intervals with max-min above 2^53-1 fail with ErrInvalidRange.
func (r *RNG) Int(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, min, max)
	}
	// Two's complement subtraction is exact in uint64 for any min <= max.
	span := uint64(max) - uint64(min)
	if span > maxIntSpan {
		return 0, fmt.Errorf("%w: [%d, %d] is wider than 2^53", ErrInvalidRange, min, max)
	}
	off := uint64(r.next() * float64(span+1))
	if off > span {
		off = span
	}
	return min + int(off), nil
}

// Bool returns true with probability p, which must lie in [0, 1].
func (r *RNG) Bool(p float64) (bool, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return false, fmt.Errorf("%w: probability %g", ErrInvalidRange, p)
	}
	return r.next() < p, nil
}

// FloatEased draws one uniform step and shapes it through an easing curve
// before mapping it onto [min, max). A nil fn is linear. Curves that overshoot
// (back, elastic) are clamped to the interval. Eased values are computed in
// float32, as the curves are.
func (r *RNG) FloatEased(min, max float64, fn ease.TweenFunc) (float64, error) {
	if err := checkRange(min, max); err != nil {
		return 0, err
	}
	if fn == nil {
		fn = ease.Linear
	}
	t := float64(fn(float32(r.next()), 0, 1, 1))
	if t < 0 || math.IsNaN(t) {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return scale(t, min, max), nil
}
