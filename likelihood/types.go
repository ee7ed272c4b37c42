// SPDX-License-Identifier: MIT

package likelihood

import (
	"github.com/katalvlaran/mogp/matrix"
	"github.com/katalvlaran/mogp/parameter"
)

// Likelihood is p(y|f) for one family. X is the channel-augmented input;
// single-channel families ignore it and accept nil.
type Likelihood interface {
	// Name identifies the family.
	Name() string

	// ValidateY rejects observations outside the support with ErrSupport.
	ValidateY(y []float64, X *matrix.Dense) error

	// LogProb returns log p(y_n | f[n,m]) for every entry of f.
	LogProb(y []float64, f, X *matrix.Dense) (*matrix.Dense, error)

	// VariationalExpectation returns Σ_n ∫ log p(y_n|f) N(f; μ_n, σ²_n) df.
	VariationalExpectation(y, mu, v []float64, X *matrix.Dense) (float64, error)

	// Mean returns E[y | f[n,m]] for every entry of f; NaN where undefined.
	Mean(f, X *matrix.Dense) (*matrix.Dense, error)

	// Variance returns Var[y | f[n,m]] for every entry of f; NaN where undefined.
	Variance(f, X *matrix.Dense) (*matrix.Dense, error)

	// Sample draws one observation per entry of f.
	Sample(f, X *matrix.Dense) (*matrix.Dense, error)

	// Predict maps the latent posterior N(μ, σ²) to the predictive mean
	// and, when requested, interval bounds.
	Predict(mu, v []float64, X *matrix.Dense, opts ...PredictOption) (Prediction, error)

	// Parameters lists the learnable parameters.
	Parameters() []*parameter.Parameter
}

// Prediction is the output of Predict. Lower and Upper are nil unless an
// interval was requested.
type Prediction struct {
	Mean  []float64
	Lower []float64
	Upper []float64
}
