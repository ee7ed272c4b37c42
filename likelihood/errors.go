// SPDX-License-Identifier: MIT

package likelihood

import (
	"errors"
	"fmt"
)

var (
	// ErrSupport indicates observations outside the likelihood's support.
	ErrSupport = errors.New("likelihood: y outside support")

	// ErrNotImplemented indicates an operation the family does not provide.
	ErrNotImplemented = errors.New("likelihood: not implemented")

	// ErrShape indicates inconsistent lengths of y, f, μ or σ².
	ErrShape = errors.New("likelihood: shape mismatch")

	// ErrVariance indicates a negative or NaN latent variance.
	ErrVariance = errors.New("likelihood: invalid latent variance")

	// ErrNoLikelihoods indicates a MultiOutput without likelihoods.
	ErrNoLikelihoods = errors.New("likelihood: no likelihoods")

	// ErrNilLikelihood indicates a nil likelihood passed to MultiOutput.
	ErrNilLikelihood = errors.New("likelihood: nil likelihood")

	// ErrNestedMultiOutput indicates a MultiOutput wrapping another MultiOutput.
	ErrNestedMultiOutput = errors.New("likelihood: nested MultiOutput")

	// ErrUnknownLink indicates an unrecognised link name.
	ErrUnknownLink = errors.New("likelihood: unknown link")
)

func likelihoodErrorf(name string, err error) error {
	return fmt.Errorf("%s: %w", name, err)
}
