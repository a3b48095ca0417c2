// SPDX-License-Identifier: MIT
// Package cartan: the deformation stage and the three-stage Analyze driver.

package cartan

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultClampThreshold bounds the magnitude of safe deformation entries.
const DefaultClampThreshold = 1e10

// frobeniusNorm selects the Frobenius norm in mat.Norm.
const frobeniusNorm = 2

// ErrShapeMismatch indicates that the embedded basis and the target
// eigenvector matrix disagree in shape.
var ErrShapeMismatch = errors.New("cartan: dimension mismatch")

// Option configures the deformation stage. Use with Analyze or DeformSafe.
type Option func(*Options)

// Options holds configurable deformation parameters.
type Options struct {
	// Clamp is the magnitude bound applied by the safe variant.
	Clamp float64
}

// DefaultOptions returns the deformation defaults:
//   - Clamp = DefaultClampThreshold
func DefaultOptions() Options {
	return Options{Clamp: DefaultClampThreshold}
}

// WithClampThreshold overrides the safe variant's magnitude bound.
// Non-positive or non-finite bounds are programmer errors and panic.
func WithClampThreshold(v float64) Option {
	if !(v > 0) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("cartan.WithClampThreshold: bound must be positive and finite, got %g", v))
	}

	return func(o *Options) {
		o.Clamp = v
	}
}

// Deformation is the immutable result of one Analyze run.
type Deformation struct {
	// E6 and E7 hold the two spectra (eigenvalues ascending).
	E6, E7 *Decomposition

	// Embedded is the E6 eigenvector basis zero-padded to E7Rank.
	Embedded *mat.Dense

	// Standard is the unregularized deformation matrix, or nil when the
	// whole pass aborted. Entries may be arbitrarily large, ±Inf or NaN.
	Standard *mat.Dense

	// StandardNorm is the Frobenius norm of Standard. Valid only when
	// StandardAvailable; a non-finite norm marks the pass unavailable.
	StandardNorm      float64
	StandardAvailable bool

	// Safe is the clamped deformation matrix; never nil, always finite.
	Safe *mat.Dense

	// SafeNorm is the Frobenius norm of Safe, always finite.
	SafeNorm float64

	// Diagnostics records the per-cell fallbacks of the safe pass, one
	// message per failing cell, in deterministic (i,j) order.
	Diagnostics []string
}

// DeformStandard computes the unregularized deformation of target by the
// embedded basis: cell (i,j) is ₂F₁(1, −a; b; −1) with a = embedded(i,j)
// and b = target(i,j). Per-cell evaluation failures fall back to 0
// silently; no overflow protection is applied, so blow-ups survive into
// the matrix. Matrix-level failures (nil operands, shape disagreement)
// abort the whole pass with an error.
func DeformStandard(embedded, target *mat.Dense) (*mat.Dense, error) {
	// 1. Matrix-level validation: an error here voids the entire variant.
	if err := validatePair(embedded, target); err != nil {
		return nil, fmt.Errorf("DeformStandard: %w", err)
	}

	// 2. Independent per-cell evaluation in fixed i→j order.
	r, c := target.Dims()
	out := mat.NewDense(r, c, nil)
	var v float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err = Gauss2F1NegOne(embedded.At(i, j), target.At(i, j))
			if err != nil {
				// Silent zero fallback; the cell simply drops out.
				continue
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// DeformSafe computes the same deformation with element-level recovery:
// per-cell failures fall back to 0 and are recorded as diagnostics naming
// the failing cell; any result whose magnitude exceeds the clamp bound
// (including ±Inf) is clamped sign-preserving to ±bound. The returned
// matrix is always fully populated and finite.
func DeformSafe(embedded, target *mat.Dense, opts ...Option) (*mat.Dense, []string, error) {
	// 1. Matrix-level validation mirrors the standard pass.
	if err := validatePair(embedded, target); err != nil {
		return nil, nil, fmt.Errorf("DeformSafe: %w", err)
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Per-cell evaluation with diagnostics and clamping.
	r, c := target.Dims()
	out := mat.NewDense(r, c, nil)
	var diags []string
	var v float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err = Gauss2F1NegOne(embedded.At(i, j), target.At(i, j))
			if err != nil || math.IsNaN(v) {
				if err == nil {
					err = ErrHypDomain
				}
				diags = append(diags, fmt.Sprintf("cell (%d,%d): %v — using 0", i, j, err))

				continue
			}
			// Sign-preserving clamp for blow-ups (±Inf included).
			if math.Abs(v) > o.Clamp {
				v = math.Copysign(o.Clamp, v)
			}
			out.Set(i, j, v)
		}
	}

	return out, diags, nil
}

// Analyze runs the three stages once: decompose E6 and E7, embed the E6
// eigenvector basis into E7's dimensionality, and compute both deformation
// variants with their Frobenius norms. A failed standard pass (or a
// non-finite standard norm) leaves StandardAvailable false; the safe side
// is always populated, so the consistency check can proceed regardless.
func Analyze(opts ...Option) (*Deformation, error) {
	// 1. Decompose both fixed Cartan matrices.
	d6, err := Decompose(E6())
	if err != nil {
		return nil, fmt.Errorf("Analyze: E6: %w", err)
	}
	d7, err := Decompose(E7())
	if err != nil {
		return nil, fmt.Errorf("Analyze: E7: %w", err)
	}

	// 2. Embed the E6 basis into the E7 coordinate space.
	embedded, err := Embed(d6.Vectors, E7Rank)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}

	res := &Deformation{E6: d6, E7: d7, Embedded: embedded}

	// 3a. Standard pass: a matrix-level failure marks the variant
	//     unavailable without aborting the analysis.
	if std, stdErr := DeformStandard(embedded, d7.Vectors); stdErr == nil {
		res.Standard = std
		norm := mat.Norm(std, frobeniusNorm)
		if !math.IsNaN(norm) && !math.IsInf(norm, 0) {
			res.StandardNorm = norm
			res.StandardAvailable = true
		}
	}

	// 3b. Safe pass: shape guards cannot fire here (both operands are
	//     E7Rank square by construction), so an error is a programmer bug.
	safe, diags, err := DeformSafe(embedded, d7.Vectors, opts...)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	res.Safe = safe
	res.SafeNorm = mat.Norm(safe, frobeniusNorm)
	res.Diagnostics = diags

	return res, nil
}

// validatePair checks both deformation operands: non-nil and same shape.
func validatePair(embedded, target *mat.Dense) error {
	if embedded == nil || target == nil {
		return ErrNilMatrix
	}
	er, ec := embedded.Dims()
	tr, tc := target.Dims()
	if er != tr || ec != tc {
		return ErrShapeMismatch
	}

	return nil
}
