// Package rng provides the seeded pseudo-random stream used to populate a
// board reproducibly.
package rng

import "math"

const (
	multiplier = 9301
	increment  = 49297
	modulus    = 233280
)

// Source yields values in [0, 1)
type Source interface {
	Float64() float64
}

// LCG is the linear congruential stream s' = (s*9301 + 49297) mod 233280.
// The state is kept as a float64 so the remainder takes the sign of the
// dividend and large seeds lose precision exactly as IEEE doubles do; for
// non-negative seeds every draw lies in [0, 1).
type LCG struct {
	state float64
}

// New creates a stream starting from seed
func New(seed int64) *LCG {
	return &LCG{state: float64(seed)}
}

// Float64 advances the stream and returns state/233280
func (l *LCG) Float64() float64 {
	l.state = math.Mod(l.state*multiplier+increment, modulus)
	return l.state / modulus
}

// State returns the current integer state of the stream
func (l *LCG) State() int64 {
	return int64(l.state)
}
