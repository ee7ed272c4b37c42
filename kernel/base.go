// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mogp/config"
	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/parameter"
	"go.uber.org/zap"
)

// Base carries what every kernel shares: name, input and active
// dimensions, the parameter registry and the numeric context.
// Concrete kernels embed it.
type Base struct {
	name       string
	inputDims  int
	activeDims []int
	params     *parameter.Set
	cfg        *config.Config
	logger     *zap.Logger
}

// NewBase resolves opts into a Base named defaultName unless WithName is set.
// Errors: ErrDims when inputDims < 1 or the active dimensions count differs
// from inputDims.
func NewBase(defaultName string, inputDims int, opts ...Option) (Base, error) {
	o := Resolve(opts...)
	name := defaultName
	if o.name != "" {
		name = o.name
	}
	name += o.suffix
	if inputDims < 1 {
		return Base{}, kernelErrorf(name, fmt.Errorf("input dims %d: %w", inputDims, ErrDims))
	}
	if o.activeDims != nil && len(o.activeDims) != inputDims {
		return Base{}, kernelErrorf(name, fmt.Errorf("%d active dims for %d input dims: %w", len(o.activeDims), inputDims, ErrDims))
	}

	return Base{
		name:       name,
		inputDims:  inputDims,
		activeDims: o.activeDims,
		params:     parameter.NewSet(name),
		cfg:        o.cfg,
		logger:     o.cfg.Logger().Named("kernel." + strings.ToLower(name)),
	}, nil
}

// Name returns the kernel name.
func (b *Base) Name() string { return b.name }

// InputDims returns the number of consumed input dimensions.
func (b *Base) InputDims() int { return b.inputDims }

// ActiveDims returns a copy of the active columns, nil meaning all.
func (b *Base) ActiveDims() []int { return append([]int(nil), b.activeDims...) }

// Parameters lists the registered parameters in registration order.
func (b *Base) Parameters() []*parameter.Parameter { return b.params.All() }

// Config returns the numeric context.
func (b *Base) Config() *config.Config { return b.cfg }

// Logger returns the kernel-scoped logger.
func (b *Base) Logger() *zap.Logger { return b.logger }

// NewParameter creates a parameter and registers it under name.
func (b *Base) NewParameter(name string, value []float64, shape []int, opts ...parameter.Option) (*parameter.Parameter, error) {
	opts = append([]parameter.Option{parameter.WithLogger(b.logger)}, opts...)
	p, err := parameter.New(value, shape, opts...)
	if err != nil {
		return nil, kernelErrorf(b.name, err)
	}
	if err = b.params.Register(name, p); err != nil {
		return nil, kernelErrorf(b.name, err)
	}

	return p, nil
}

// NewPositive creates a parameter bounded below by the positive minimum.
func (b *Base) NewPositive(name string, value []float64, shape []int) (*parameter.Parameter, error) {
	return b.NewParameter(name, value, shape, parameter.WithLower(b.cfg.PositiveMinimum()))
}

// ActiveInput restricts X to the active dimensions. Without active
// dimensions X must have exactly InputDims columns.
func (b *Base) ActiveInput(X *matrix.Dense) (*matrix.Dense, error) {
	if X == nil {
		return nil, kernelErrorf(b.name, ErrNilInput)
	}
	if b.activeDims == nil {
		if X.Cols() != b.inputDims {
			return nil, kernelErrorf(b.name, fmt.Errorf("input has %d columns, want %d: %w", X.Cols(), b.inputDims, ErrDims))
		}
		return X, nil
	}
	for _, d := range b.activeDims {
		if d >= X.Cols() {
			return nil, kernelErrorf(b.name, fmt.Errorf("active dim %d beyond %d columns: %w", d, X.Cols(), ErrDims))
		}
	}

	return X.Induced(nil, b.activeDims)
}

// ActivePair restricts both inputs; a nil X2 resolves to X1.
func (b *Base) ActivePair(X1, X2 *matrix.Dense) (a1, a2 *matrix.Dense, err error) {
	if a1, err = b.ActiveInput(X1); err != nil {
		return nil, nil, err
	}
	if X2 == nil {
		return a1, a1, nil
	}
	if a2, err = b.ActiveInput(X2); err != nil {
		return nil, nil, err
	}

	return a1, a2, nil
}

// Pairwise evaluates fn over every row pair: out[i,j] = fn(X1[i], X2[j]).
// Rows are passed as slices aliasing storage and must not be retained.
func Pairwise(X1, X2 *matrix.Dense, fn func(x, y []float64) float64) *matrix.Dense {
	n, m := X1.Rows(), X2.Rows()
	out, _ := matrix.NewDense(n, m)
	data := out.Data()
	for i := 0; i < n; i++ {
		x := X1.RawRow(i)
		row := data[i*m : (i+1)*m]
		for j := 0; j < m; j++ {
			row[j] = fn(x, X2.RawRow(j))
		}
	}

	return out
}

// Filled returns a slice of n copies of v.
func Filled(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}
