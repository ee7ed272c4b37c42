// SPDX-License-Identifier: MIT

package multioutput_test

import (
	"math/rand/v2"

	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/multioutput"
	"github.com/katalvlaran/mogp/parameter"
)

// augmented builds n rows over outputDims channels (row r in channel
// r % outputDims) with D inputs in [0, 4).
func augmented(rng *rand.Rand, outputDims, n, D int) *matrix.Dense {
	X, _ := matrix.NewDense(n, D+1)
	for r := 0; r < n; r++ {
		row := X.RawRow(r)
		row[0] = float64(r % outputDims)
		for d := 1; d <= D; d++ {
			row[d] = 4 * rng.Float64()
		}
	}

	return X
}

// inputs returns n rows of D inputs in [0, 4).
func inputs(rng *rand.Rand, n, D int) *matrix.Dense {
	X, _ := matrix.NewDense(n, D)
	for i := range X.Data() {
		X.Data()[i] = 4 * rng.Float64()
	}

	return X
}

// randomize assigns every parameter of k a random value: bounded ones in
// [0.1, 1.5), unbounded ones in [-1, 1).
func randomize(rng *rand.Rand, k multioutput.Kernel) error {
	for _, p := range k.Parameters() {
		if err := randomizeParameter(rng, p); err != nil {
			return err
		}
	}

	return nil
}

func randomizeParameter(rng *rand.Rand, p *parameter.Parameter) error {
	v := make([]float64, p.Len())
	for i := range v {
		if p.Lower() != nil {
			v[i] = 0.1 + 1.4*rng.Float64()
		} else {
			v[i] = 2*rng.Float64() - 1
		}
	}

	return p.Assign(v)
}

func names(ps []*parameter.Parameter) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name()
	}

	return out
}

// diagonal reads the main diagonal of a square K.
func diagonal(K *matrix.Dense) []float64 {
	d := make([]float64, K.Rows())
	for i := range d {
		d[i] = K.RawRow(i)[i]
	}

	return d
}
