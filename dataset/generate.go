// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

const tau = 2 * math.Pi

// Sinusoid samples y = A·sin(2π(f·x + phase)) + trend·x + noise on n grid
// points over the span (fewer with WithDrop).
func Sinusoid(n int, opts ...Option) (Channel, error) {
	o := gatherOptions(opts...)

	return generate("Sinusoid", n, o, func(x float64) float64 {
		return tau * (o.f0*x + o.phase)
	})
}

// Chirp samples a linear frequency sweep from f0 at the start of the span
// to f1 at its end:
//
//	y = A·sin(2π(f0·t + (f1-f0)·t²/(2L) + phase)) + trend·x + noise,  t = x - lo, L = hi - lo.
func Chirp(n int, opts ...Option) (Channel, error) {
	o := gatherOptions(opts...)
	L := o.hi - o.lo

	return generate("Chirp", n, o, func(x float64) float64 {
		t := x - o.lo
		return tau * (o.f0*t + (o.f1-o.f0)*t*t/(2*L) + o.phase)
	})
}

// generate lays out the grid, drops points and evaluates the wave with
// phase theta(x).
func generate(op string, n int, o genOptions, theta func(x float64) float64) (Channel, error) {
	if n < 2 {
		return Channel{}, datasetErrorf(op, fmt.Errorf("n=%d: %w", n, ErrEmpty))
	}
	rng := rand.New(rand.NewPCG(o.seed, uint64(n)))
	x := floats.Span(make([]float64, n), o.lo, o.hi)
	if drop := int(o.drop * float64(n)); drop > 0 {
		keep := rng.Perm(n)[:max(n-drop, 2)]
		sort.Ints(keep)
		grid := x
		x = make([]float64, len(keep))
		for a, i := range keep {
			x[a] = grid[i]
		}
	}

	noise := distuv.Normal{Mu: 0, Sigma: o.sigma, Src: rng}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = o.amp*math.Sin(theta(xi)) + o.trend*xi
		if o.sigma > 0 {
			y[i] += noise.Rand()
		}
	}

	return FromSlice(x, y)
}
