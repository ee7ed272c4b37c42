// SPDX-License-Identifier: MIT

package dataset

import "math"

// Generator defaults.
const (
	DefaultAmplitude = 1.0
	DefaultFrequency = 0.2 // cycles per unit input
	DefaultChirpEnd  = 1.0 // final Chirp frequency
	DefaultSpanEnd   = 10.0
)

// Option configures Sinusoid and Chirp.
type Option func(*genOptions)

type genOptions struct {
	seed   uint64
	amp    float64
	f0, f1 float64
	sigma  float64
	trend  float64
	phase  float64
	lo, hi float64
	drop   float64
}

func gatherOptions(opts ...Option) genOptions {
	o := genOptions{
		amp: DefaultAmplitude,
		f0:  DefaultFrequency,
		f1:  DefaultChirpEnd,
		hi:  DefaultSpanEnd,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithSeed selects the random stream for noise and dropped points.
func WithSeed(seed uint64) Option {
	return func(o *genOptions) { o.seed = seed }
}

// WithAmplitude sets the wave amplitude. Panics unless a > 0.
func WithAmplitude(a float64) Option {
	if !(a > 0) || math.IsInf(a, 1) {
		panic("dataset: WithAmplitude(a<=0)")
	}

	return func(o *genOptions) { o.amp = a }
}

// WithFrequency sets the Sinusoid frequency, which is also the starting
// frequency of a Chirp. Panics unless f > 0.
func WithFrequency(f float64) Option {
	if !(f > 0) || math.IsInf(f, 1) {
		panic("dataset: WithFrequency(f<=0)")
	}

	return func(o *genOptions) { o.f0 = f }
}

// WithSweep sets the start and end frequency of a Chirp. Panics unless both
// are positive.
func WithSweep(f0, f1 float64) Option {
	if !(f0 > 0) || !(f1 > 0) {
		panic("dataset: WithSweep requires positive frequencies")
	}

	return func(o *genOptions) { o.f0, o.f1 = f0, f1 }
}

// WithPhase shifts the wave by p cycles.
func WithPhase(p float64) Option {
	return func(o *genOptions) { o.phase = p }
}

// WithNoise adds N(0, σ²) noise to every output. Panics if σ < 0.
func WithNoise(sigma float64) Option {
	if !(sigma >= 0) {
		panic("dataset: WithNoise(sigma<0)")
	}

	return func(o *genOptions) { o.sigma = sigma }
}

// WithTrend adds slope·x to every output.
func WithTrend(slope float64) Option {
	return func(o *genOptions) { o.trend = slope }
}

// WithSpan sets the input interval [lo, hi]. Panics unless lo < hi.
func WithSpan(lo, hi float64) Option {
	if !(lo < hi) {
		panic("dataset: WithSpan requires lo < hi")
	}

	return func(o *genOptions) { o.lo, o.hi = lo, hi }
}

// WithDrop removes the fraction frac of the grid points at random, which
// makes the sampling irregular. Panics unless 0 ≤ frac < 1.
func WithDrop(frac float64) Option {
	if !(frac >= 0 && frac < 1) {
		panic("dataset: WithDrop requires 0 <= frac < 1")
	}

	return func(o *genOptions) { o.drop = frac }
}
