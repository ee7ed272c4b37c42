// SPDX-License-Identifier: MIT

package parameter

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
)

// Parameter is a learnable tensor with optional per-element bounds.
type Parameter struct {
	name      string
	shape     []int
	value     []float64
	lower     []float64 // nil when unbounded below
	upper     []float64 // nil when unbounded above
	trainable bool
	logger    *zap.Logger
}

// New creates a parameter holding a copy of value with the given shape.
// A nil shape means a vector of len(value). The initial value is clamped
// into the bounds.
//
// Errors:
//   - ErrShape when the product of shape differs from len(value), or a bound
//     has neither one element nor one per value element.
//   - ErrBounds when a lower bound exceeds its upper bound or is NaN.
func New(value []float64, shape []int, opts ...Option) (*Parameter, error) {
	o := options{trainable: true, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if shape == nil {
		shape = []int{len(value)}
	}
	size := 1
	for _, d := range shape {
		if d < 0 {
			return nil, parameterErrorf(o.name, ErrShape)
		}
		size *= d
	}
	if size != len(value) {
		return nil, parameterErrorf(o.name, ErrShape)
	}

	p := &Parameter{
		name:      o.name,
		shape:     append([]int(nil), shape...),
		value:     append([]float64(nil), value...),
		trainable: o.trainable,
		logger:    o.logger,
	}
	var err error
	if p.lower, err = broadcast(o.lower, size); err != nil {
		return nil, parameterErrorf(o.name, err)
	}
	if p.upper, err = broadcast(o.upper, size); err != nil {
		return nil, parameterErrorf(o.name, err)
	}
	if err = p.checkBounds(); err != nil {
		return nil, parameterErrorf(o.name, err)
	}
	p.clamp()

	return p, nil
}

// Scalar creates a rank-0 parameter.
func Scalar(v float64, opts ...Option) (*Parameter, error) {
	return New([]float64{v}, []int{}, opts...)
}

// Filled creates a parameter of the given shape with every element set to v.
func Filled(v float64, shape []int, opts ...Option) (*Parameter, error) {
	size := 1
	for _, d := range shape {
		size *= max(d, 0)
	}
	data := make([]float64, size)
	for i := range data {
		data[i] = v
	}

	return New(data, shape, opts...)
}

// broadcast expands a bound to size elements. nil stays nil.
func broadcast(b []float64, size int) ([]float64, error) {
	switch len(b) {
	case 0:
		return nil, nil
	case 1:
		out := make([]float64, size)
		for i := range out {
			out[i] = b[0]
		}
		return out, nil
	case size:
		return append([]float64(nil), b...), nil
	default:
		return nil, ErrShape
	}
}

func (p *Parameter) checkBounds() error {
	for i := range p.value {
		if p.lower != nil && math.IsNaN(p.lower[i]) {
			return ErrBounds
		}
		if p.upper != nil && math.IsNaN(p.upper[i]) {
			return ErrBounds
		}
		if p.lower != nil && p.upper != nil && p.lower[i] > p.upper[i] {
			return ErrBounds
		}
	}

	return nil
}

// clamp moves every element into its bounds and reports how many moved.
func (p *Parameter) clamp() int {
	moved := 0
	for i, v := range p.value {
		if p.lower != nil && v < p.lower[i] {
			p.value[i] = p.lower[i]
			moved++
		}
		if p.upper != nil && v > p.upper[i] {
			p.value[i] = p.upper[i]
			moved++
		}
	}

	return moved
}

// Name returns the (possibly owner-qualified) name.
func (p *Parameter) Name() string { return p.name }

// Shape returns a copy of the shape.
func (p *Parameter) Shape() []int { return append([]int(nil), p.shape...) }

// Len is the number of elements.
func (p *Parameter) Len() int { return len(p.value) }

// Trainable reports whether an optimizer should update the parameter.
func (p *Parameter) Trainable() bool { return p.trainable }

// SetTrainable toggles optimizer participation.
func (p *Parameter) SetTrainable(on bool) { p.trainable = on }

// Value returns a copy of the flat row-major value.
func (p *Parameter) Value() []float64 { return append([]float64(nil), p.value...) }

// Scalar returns the first element; intended for rank-0 parameters.
func (p *Parameter) Scalar() float64 { return p.value[0] }

// At returns the element at a multi-index. It panics on a wrong index count
// or an out-of-range index, as slice indexing does.
func (p *Parameter) At(idx ...int) float64 {
	if len(idx) != len(p.shape) {
		panic(fmt.Sprintf("parameter %s: At with %d indices on rank %d", p.name, len(idx), len(p.shape)))
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= p.shape[k] {
			panic(fmt.Sprintf("parameter %s: index %d out of range [0,%d)", p.name, i, p.shape[k]))
		}
		off = off*p.shape[k] + i
	}

	return p.value[off]
}

// Row returns a copy of the i-th slice along the first axis.
func (p *Parameter) Row(i int) []float64 {
	if len(p.shape) == 0 {
		return p.Value()
	}
	stride := len(p.value) / max(p.shape[0], 1)

	return append([]float64(nil), p.value[i*stride:(i+1)*stride]...)
}

// Lower returns a copy of the lower bound, nil when unbounded.
func (p *Parameter) Lower() []float64 { return append([]float64(nil), p.lower...) }

// Upper returns a copy of the upper bound, nil when unbounded.
func (p *Parameter) Upper() []float64 { return append([]float64(nil), p.upper...) }

// Assign overwrites the value and, through AssignLower/AssignUpper, the
// bounds. value may be nil (bounds only), a single element (broadcast) or
// one element per entry. The result is clamped into the bounds.
// On error nothing is modified.
func (p *Parameter) Assign(value []float64, opts ...AssignOption) error {
	var ao assignOptions
	for _, opt := range opts {
		opt(&ao)
	}
	size := len(p.value)

	next := append([]float64(nil), p.value...)
	if value != nil {
		v, err := broadcast(value, size)
		if err != nil || v == nil {
			return parameterErrorf(p.name, ErrShape)
		}
		next = v
	}
	lower, upper := p.lower, p.upper
	var err error
	if ao.setLower {
		if lower, err = broadcast(ao.lower, size); err != nil {
			return parameterErrorf(p.name, err)
		}
	}
	if ao.setUpper {
		if upper, err = broadcast(ao.upper, size); err != nil {
			return parameterErrorf(p.name, err)
		}
	}
	cand := Parameter{value: next, lower: lower, upper: upper}
	if err = cand.checkBounds(); err != nil {
		return parameterErrorf(p.name, err)
	}

	p.value, p.lower, p.upper = next, lower, upper
	if moved := p.clamp(); moved > 0 {
		p.logger.Debug("parameter clamped into bounds",
			zap.String("parameter", p.name),
			zap.Int("elements", moved))
	}

	return nil
}

// Unconstrained returns the optimizer-space view of the value.
func (p *Parameter) Unconstrained() []float64 {
	out := make([]float64, len(p.value))
	for i, x := range p.value {
		lo, hi := p.bounds(i)
		switch {
		case !math.IsInf(lo, -1) && !math.IsInf(hi, 1):
			out[i] = logit((x - lo) / (hi - lo))
		case !math.IsInf(lo, -1):
			out[i] = softplusInv(x - lo)
		case !math.IsInf(hi, 1):
			out[i] = softplusInv(hi - x)
		default:
			out[i] = x
		}
	}

	return out
}

// SetUnconstrained assigns the value from its optimizer-space view.
func (p *Parameter) SetUnconstrained(u []float64) error {
	if len(u) != len(p.value) {
		return parameterErrorf(p.name, ErrShape)
	}
	x := make([]float64, len(u))
	for i, ui := range u {
		lo, hi := p.bounds(i)
		switch {
		case !math.IsInf(lo, -1) && !math.IsInf(hi, 1):
			x[i] = lo + (hi-lo)*sigmoid(ui)
		case !math.IsInf(lo, -1):
			x[i] = lo + softplus(ui)
		case !math.IsInf(hi, 1):
			x[i] = hi - softplus(ui)
		default:
			x[i] = ui
		}
	}

	return p.Assign(x)
}

func (p *Parameter) bounds(i int) (lo, hi float64) {
	lo, hi = math.Inf(-1), math.Inf(1)
	if p.lower != nil {
		lo = p.lower[i]
	}
	if p.upper != nil {
		hi = p.upper[i]
	}

	return lo, hi
}

// String renders "name shape=[..] value=[..]".
func (p *Parameter) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s shape=%v value=%v", p.name, p.shape, p.value)
	if !p.trainable {
		sb.WriteString(" (fixed)")
	}

	return sb.String()
}

// transformFloor keeps inverse transforms finite at the bounds.
const transformFloor = 1e-300

func softplus(u float64) float64 {
	if u > 30 {
		return u
	}

	return math.Log1p(math.Exp(u))
}

func softplusInv(y float64) float64 {
	y = math.Max(y, transformFloor)
	if y > 30 {
		return y
	}

	return y + math.Log(-math.Expm1(-y))
}

func sigmoid(u float64) float64 { return 1 / (1 + math.Exp(-u)) }

func logit(p float64) float64 {
	p = math.Min(math.Max(p, transformFloor), 1-1e-16)

	return math.Log(p) - math.Log1p(-p)
}
