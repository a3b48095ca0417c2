// SPDX-License-Identifier: MIT
// Package cartan: Gauss hypergeometric kernel for the deformation map.
//
// Gauss2F1NegOne evaluates ₂F₁(1, −a; b; −1). The defining series at z=−1
// converges only conditionally (when at all), so the kernel first applies
// the Euler transformation z → z/(z−1):
//
//	₂F₁(1, −a; b; −1) = ½ · ₂F₁(1, a+b; b; ½)
//	                  = ½ · Σ_{n≥0} (a+b)ₙ/(b)ₙ · 2⁻ⁿ
//
// The transformed series has term ratio (a+b+n)/(b+n)·½ → ½, so it
// converges for every parameter pair except the poles of (b)ₙ (b a
// non-positive value reached exactly by the recurrence). For small |b| the
// early terms are huge before the geometric decay takes over — exactly the
// instability the deformation map is defined to exhibit; blow-ups surface
// as very large (or +Inf) finite sums, not as errors.
//
// Complexity: O(hypMaxTerms) float64 operations per call, usually far less.

package cartan

import (
	"errors"
	"math"
)

// hypMaxTerms caps the transformed series. The decay ratio is ½ once the
// growth phase ends, so the cap is only reachable for adversarial
// parameters, in which case the evaluation errors out.
const hypMaxTerms = 512

// hypTol is the relative termination tolerance of the series.
const hypTol = 1e-16

var (
	// ErrHypPole indicates that the series denominator (b)ₙ reached an
	// exact zero — the hypergeometric function has a pole there.
	ErrHypPole = errors.New("cartan: hypergeometric pole in series denominator")

	// ErrHypDomain indicates non-finite parameters.
	ErrHypDomain = errors.New("cartan: hypergeometric parameters out of domain")

	// ErrHypNoConvergence indicates the series cap was exceeded.
	ErrHypNoConvergence = errors.New("cartan: hypergeometric series did not converge")
)

// Gauss2F1NegOne evaluates ₂F₁(1, −a; b; −1) for real a, b.
// A +Inf result is a legitimate blow-up, not an error; errors cover poles,
// non-finite parameters, and (theoretical) non-convergence only.
func Gauss2F1NegOne(a, b float64) (float64, error) {
	// 1. Domain guard: the transform is undefined for non-finite input.
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		return 0, ErrHypDomain
	}
	// b == 0 is the n=0 pole of (b)ₙ.
	if b == 0 {
		return 0, ErrHypPole
	}

	// 2. Transformed series: term₀ carries the ½ prefactor; the running
	//    recurrence is termₙ₊₁ = termₙ · (a+b+n)/(b+n) · ½.
	term := 0.5
	sum := term
	var denom float64
	for n := 0; n < hypMaxTerms; n++ {
		denom = b + float64(n)
		if denom == 0 {
			return 0, ErrHypPole
		}
		term *= (a + b + float64(n)) / denom * 0.5
		if math.IsNaN(term) {
			return 0, ErrHypDomain
		}
		sum += term

		// Overflow is a defined blow-up of the map; surface it as ±Inf.
		if math.IsInf(sum, 0) {
			return sum, nil
		}
		// Converged once the term is negligible against the sum.
		if math.Abs(term) <= hypTol*(1+math.Abs(sum)) {
			return sum, nil
		}
	}

	return 0, ErrHypNoConvergence
}
