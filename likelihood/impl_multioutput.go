// SPDX-License-Identifier: MIT

package likelihood

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mogp/channel"
	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/parameter"
)

// MultiOutput routes every row of a channel-augmented input to the
// likelihood of its channel and writes results back at the original row
// positions. Channel index sets are disjoint, so no row ever mixes two
// families.
type MultiOutput struct {
	name string
	ls   []Likelihood
}

// NewMultiOutput wraps one likelihood per channel, in channel order.
//
// Errors:
//   - ErrNoLikelihoods when ls is empty.
//   - ErrNilLikelihood when an element is nil.
//   - ErrNestedMultiOutput when an element is itself a MultiOutput.
func NewMultiOutput(ls ...Likelihood) (*MultiOutput, error) {
	if len(ls) == 0 {
		return nil, likelihoodErrorf("MultiOutput", ErrNoLikelihoods)
	}
	names := make([]string, len(ls))
	for c, l := range ls {
		if l == nil {
			return nil, likelihoodErrorf("MultiOutput", fmt.Errorf("channel %d: %w", c, ErrNilLikelihood))
		}
		if _, ok := l.(*MultiOutput); ok {
			return nil, likelihoodErrorf("MultiOutput", fmt.Errorf("channel %d: %w", c, ErrNestedMultiOutput))
		}
		names[c] = l.Name()
	}

	return &MultiOutput{
		name: "MultiOutput[" + strings.Join(names, ", ") + "]",
		ls:   append([]Likelihood(nil), ls...),
	}, nil
}

// Name lists the wrapped families.
func (m *MultiOutput) Name() string { return m.name }

// OutputDims is the number of channels.
func (m *MultiOutput) OutputDims() int { return len(m.ls) }

// Likelihood returns the likelihood of channel c.
func (m *MultiOutput) Likelihood(c int) Likelihood { return m.ls[c] }

// Parameters concatenates the channel parameters in channel order.
func (m *MultiOutput) Parameters() []*parameter.Parameter {
	var out []*parameter.Parameter
	for _, l := range m.ls {
		out = append(out, l.Parameters()...)
	}

	return out
}

// direct reports whether calls can skip routing: a single channel and no
// channel column to read.
func (m *MultiOutput) direct(X *matrix.Dense) bool { return len(m.ls) == 1 && X == nil }

// partition splits X by channel and checks it against n rows.
func (m *MultiOutput) partition(X *matrix.Dense, n int) (channel.Partition, error) {
	if X == nil || X.Rows() != n {
		return nil, likelihoodErrorf(m.name, ErrShape)
	}
	part, err := channel.Indices(X, len(m.ls))
	if err != nil {
		return nil, likelihoodErrorf(m.name, err)
	}

	return part, nil
}

// rows gathers the rows idx of every non-nil matrix.
func rows(idx []int, ms ...*matrix.Dense) ([]*matrix.Dense, error) {
	out := make([]*matrix.Dense, len(ms))
	for k, M := range ms {
		if M == nil {
			continue
		}
		var err error
		if out[k], err = M.Induced(idx, nil); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// ValidateY checks each channel's observations against its family.
func (m *MultiOutput) ValidateY(y []float64, X *matrix.Dense) error {
	if m.direct(X) {
		return m.ls[0].ValidateY(y, nil)
	}
	part, err := m.partition(X, len(y))
	if err != nil {
		return err
	}
	for _, c := range part.Present() {
		Xc, err := X.Induced(part[c], nil)
		if err != nil {
			return likelihoodErrorf(m.name, err)
		}
		if err = m.ls[c].ValidateY(channel.GatherVec(y, part[c]), Xc); err != nil {
			return likelihoodErrorf(m.name, fmt.Errorf("channel %d: %w", c, err))
		}
	}

	return nil
}

// perRow applies fn per channel to the rows of f and scatters the result.
func (m *MultiOutput) perRow(f, X *matrix.Dense, fn func(c int, idx []int, fc, Xc *matrix.Dense) (*matrix.Dense, error)) (*matrix.Dense, error) {
	if f == nil {
		return nil, likelihoodErrorf(m.name, ErrShape)
	}
	part, err := m.partition(X, f.Rows())
	if err != nil {
		return nil, err
	}
	out, err := matrix.NewDense(f.Rows(), f.Cols())
	if err != nil {
		return nil, likelihoodErrorf(m.name, err)
	}
	for _, c := range part.Present() {
		sub, err := rows(part[c], f, X)
		if err != nil {
			return nil, likelihoodErrorf(m.name, err)
		}
		res, err := fn(c, part[c], sub[0], sub[1])
		if err != nil {
			return nil, likelihoodErrorf(m.name, fmt.Errorf("channel %d: %w", c, err))
		}
		if err = matrix.ScatterRows(out, part[c], res); err != nil {
			return nil, likelihoodErrorf(m.name, err)
		}
	}

	return out, nil
}

// LogProb routes every row of f to its channel's family.
func (m *MultiOutput) LogProb(y []float64, f, X *matrix.Dense) (*matrix.Dense, error) {
	if m.direct(X) {
		return m.ls[0].LogProb(y, f, nil)
	}
	if f == nil || len(y) != f.Rows() {
		return nil, likelihoodErrorf(m.name, ErrShape)
	}

	return m.perRow(f, X, func(c int, idx []int, fc, Xc *matrix.Dense) (*matrix.Dense, error) {
		return m.ls[c].LogProb(channel.GatherVec(y, idx), fc, Xc)
	})
}

// VariationalExpectation sums the per-channel expectations.
func (m *MultiOutput) VariationalExpectation(y, mu, v []float64, X *matrix.Dense) (float64, error) {
	if m.direct(X) {
		return m.ls[0].VariationalExpectation(y, mu, v, nil)
	}
	if len(y) != len(mu) || len(mu) != len(v) {
		return 0, likelihoodErrorf(m.name, ErrShape)
	}
	part, err := m.partition(X, len(y))
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, c := range part.Present() {
		idx := part[c]
		Xc, err := X.Induced(idx, nil)
		if err != nil {
			return 0, likelihoodErrorf(m.name, err)
		}
		ve, err := m.ls[c].VariationalExpectation(
			channel.GatherVec(y, idx), channel.GatherVec(mu, idx), channel.GatherVec(v, idx), Xc)
		if err != nil {
			return 0, likelihoodErrorf(m.name, fmt.Errorf("channel %d: %w", c, err))
		}
		sum += ve
	}

	return sum, nil
}

// Mean routes every row of f to its channel's family.
func (m *MultiOutput) Mean(f, X *matrix.Dense) (*matrix.Dense, error) {
	if m.direct(X) {
		return m.ls[0].Mean(f, nil)
	}

	return m.perRow(f, X, func(c int, _ []int, fc, Xc *matrix.Dense) (*matrix.Dense, error) {
		return m.ls[c].Mean(fc, Xc)
	})
}

// Variance routes every row of f to its channel's family.
func (m *MultiOutput) Variance(f, X *matrix.Dense) (*matrix.Dense, error) {
	if m.direct(X) {
		return m.ls[0].Variance(f, nil)
	}

	return m.perRow(f, X, func(c int, _ []int, fc, Xc *matrix.Dense) (*matrix.Dense, error) {
		return m.ls[c].Variance(fc, Xc)
	})
}

// Sample routes every row of f to its channel's family.
func (m *MultiOutput) Sample(f, X *matrix.Dense) (*matrix.Dense, error) {
	if m.direct(X) {
		return m.ls[0].Sample(f, nil)
	}

	return m.perRow(f, X, func(c int, _ []int, fc, Xc *matrix.Dense) (*matrix.Dense, error) {
		return m.ls[c].Sample(fc, Xc)
	})
}

// Predict routes every point to its channel's family and reassembles the
// mean and bounds in row order.
func (m *MultiOutput) Predict(mu, v []float64, X *matrix.Dense, opts ...PredictOption) (Prediction, error) {
	if m.direct(X) {
		return m.ls[0].Predict(mu, v, nil, opts...)
	}
	if len(mu) != len(v) {
		return Prediction{}, likelihoodErrorf(m.name, ErrShape)
	}
	part, err := m.partition(X, len(mu))
	if err != nil {
		return Prediction{}, err
	}
	pred := Prediction{Mean: make([]float64, len(mu))}
	if gatherPredictOptions(opts...).interval() {
		pred.Lower = make([]float64, len(mu))
		pred.Upper = make([]float64, len(mu))
	}
	for _, c := range part.Present() {
		idx := part[c]
		Xc, err := X.Induced(idx, nil)
		if err != nil {
			return Prediction{}, likelihoodErrorf(m.name, err)
		}
		pc, err := m.ls[c].Predict(channel.GatherVec(mu, idx), channel.GatherVec(v, idx), Xc, opts...)
		if err != nil {
			return Prediction{}, likelihoodErrorf(m.name, fmt.Errorf("channel %d: %w", c, err))
		}
		channel.ScatterVec(pred.Mean, idx, pc.Mean)
		if pred.Lower != nil {
			channel.ScatterVec(pred.Lower, idx, pc.Lower)
			channel.ScatterVec(pred.Upper, idx, pc.Upper)
		}
	}

	return pred, nil
}

var _ Likelihood = (*MultiOutput)(nil)
