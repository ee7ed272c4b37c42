// SPDX-License-Identifier: MIT

package likelihood

import (
	"fmt"
	"math"
)

// Link maps an unconstrained latent value into a family's parameter domain.
type Link int

const (
	// Identity is h(f) = f.
	Identity Link = iota
	// Square is h(f) = f².
	Square
	// Exp is h(f) = eᶠ.
	Exp
	// InverseProbit is the standard normal CDF squeezed into [1e-3, 1-1e-3].
	InverseProbit
	// Logistic is h(f) = 1/(1+e⁻ᶠ).
	Logistic
)

// probitJitter keeps InverseProbit away from 0 and 1.
const probitJitter = 1e-3

var linkNames = [...]string{"identity", "square", "exp", "inverse-probit", "logistic"}

// String returns the link name.
func (l Link) String() string {
	if l < 0 || int(l) >= len(linkNames) {
		return fmt.Sprintf("Link(%d)", int(l))
	}

	return linkNames[l]
}

// Valid reports whether l is one of the declared links.
func (l Link) Valid() bool { return l >= Identity && l <= Logistic }

// ParseLink parses a link name as printed by String.
func ParseLink(s string) (Link, error) {
	for i, name := range linkNames {
		if name == s {
			return Link(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownLink)
}

// Apply evaluates h(f).
func (l Link) Apply(f float64) float64 {
	switch l {
	case Square:
		return f * f
	case Exp:
		return math.Exp(f)
	case InverseProbit:
		return 0.5*(1+math.Erf(f/math.Sqrt2))*(1-2*probitJitter) + probitJitter
	case Logistic:
		return 1 / (1 + math.Exp(-f))
	default:
		return f
	}
}

// Log evaluates log h(f); for Exp this is f itself.
func (l Link) Log(f float64) float64 {
	if l == Exp {
		return f
	}

	return math.Log(l.Apply(f))
}
