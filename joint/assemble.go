// SPDX-License-Identifier: MIT

package joint

import (
	"sync"

	"github.com/katalvlaran/mogp/channel"
	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/multioutput"
	"go.uber.org/zap"
)

// side is one operand of the assembly: its partition and per-channel inputs.
type side struct {
	part   channel.Partition
	inputs []*matrix.Dense // nil for absent channels
	rows   int
}

func split(X *matrix.Dense, outputDims int) (side, error) {
	part, err := channel.Indices(X, outputDims)
	if err != nil {
		return side{}, err
	}
	in, err := channel.Inputs(X)
	if err != nil {
		return side{}, err
	}
	s := side{part: part, inputs: make([]*matrix.Dense, outputDims), rows: X.Rows()}
	for _, c := range part.Present() {
		if s.inputs[c], err = in.Induced(part[c], nil); err != nil {
			return side{}, err
		}
	}

	return s, nil
}

// block is one (i, j) channel pair of the joint matrix.
type block struct{ i, j int }

// K returns the joint covariance of k between the channel-augmented inputs
// X1 and X2 (X2 == nil means X1). Entry (a, b) is the covariance between row
// a of X1 and row b of X2. Only pairs of present channels are evaluated;
// with X2 == nil each diagonal block receives a nil second argument, so
// kernels that distinguish "same set" (White) see it.
//
// Errors:
//   - ErrNilKernel for a nil kernel.
//   - channel.ErrChannelIndex / channel.ErrInputShape for malformed inputs.
//   - Any error returned by Ksub.
//
// Complexity: O(|X1|·|X2|·D) kernel work plus O(|X1|·|X2|) scatter.
func K(k multioutput.Kernel, X1, X2 *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	if k == nil {
		return nil, jointErrorf("K", ErrNilKernel)
	}
	o := gatherOptions(opts...)
	s1, err := split(X1, k.OutputDims())
	if err != nil {
		return nil, jointErrorf("K", err)
	}
	s2 := s1
	if X2 != nil {
		if s2, err = split(X2, k.OutputDims()); err != nil {
			return nil, jointErrorf("K", err)
		}
	}
	out, err := matrix.NewDense(s1.rows, s2.rows)
	if err != nil {
		return nil, jointErrorf("K", err)
	}

	var jobs []block
	for _, i := range s1.part.Present() {
		for _, j := range s2.part.Present() {
			jobs = append(jobs, block{i, j})
		}
	}
	compute := func(b block) error {
		var rhs *matrix.Dense
		if X2 != nil || b.i != b.j {
			rhs = s2.inputs[b.j]
		}
		sub, err := k.Ksub(b.i, b.j, s1.inputs[b.i], rhs)
		if err != nil {
			return err
		}
		return matrix.SetBlock(out, s1.part[b.i], s2.part[b.j], sub)
	}

	errs := make([]error, len(jobs))
	workers := min(o.workers, len(jobs))
	if workers <= 1 {
		for n, b := range jobs {
			errs[n] = compute(b)
		}
	} else {
		// Blocks cover disjoint regions of out, so writes need no locking.
		var wg sync.WaitGroup
		perWorker := (len(jobs) + workers - 1) / workers
		for w := 0; w < workers; w++ {
			start := w * perWorker
			if start >= len(jobs) {
				break
			}
			end := min(start+perWorker, len(jobs))
			wg.Add(1)
			go func(start, end int) {
				defer wg.Done()
				for n := start; n < end; n++ {
					errs[n] = compute(jobs[n])
				}
			}(start, end)
		}
		wg.Wait()
	}
	for _, e := range errs {
		if e != nil {
			return nil, jointErrorf("K", e)
		}
	}
	o.cfg.Logger().Debug("joint covariance assembled",
		zap.String("kernel", k.Name()),
		zap.Int("rows", s1.rows),
		zap.Int("cols", s2.rows),
		zap.Int("blocks", len(jobs)),
		zap.Int("workers", max(workers, 1)))

	return out, nil
}

// KDiag returns the diagonal of K(k, X, nil) without building the matrix.
func KDiag(k multioutput.Kernel, X *matrix.Dense) ([]float64, error) {
	if k == nil {
		return nil, jointErrorf("KDiag", ErrNilKernel)
	}
	s, err := split(X, k.OutputDims())
	if err != nil {
		return nil, jointErrorf("KDiag", err)
	}
	out := make([]float64, s.rows)
	for _, c := range s.part.Present() {
		d, err := k.KsubDiag(c, s.inputs[c])
		if err != nil {
			return nil, jointErrorf("KDiag", err)
		}
		channel.ScatterVec(out, s.part[c], d)
	}

	return out, nil
}
