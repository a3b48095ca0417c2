// SPDX-License-Identifier: MIT
// Package consistency: cross-validation of anomaly metrics against the
// hypergeometric deformation norms.

package consistency

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/adelith/anomaly"
	"github.com/katalvlaran/adelith/cartan"
)

// DefaultNormBound is the ceiling on the safe Frobenius norm below which
// the deformation counts as consistent.
const DefaultNormBound = 1e5

// CorrelationFloor keeps the deviation logarithm defined when the balanced
// product matches unity exactly.
const CorrelationFloor = 1e-15

// ErrNilDeformation indicates a nil *cartan.Deformation input.
var ErrNilDeformation = errors.New("consistency: nil deformation")

// Report is the terminal scoring record of one run. Immutable.
type Report struct {
	// DeformationConsistent is SafeNorm < DefaultNormBound.
	DeformationConsistent bool

	// Correlation is the absolute log₁₀ gap between the safe norm and the
	// floored product deviation; 0 when the safe norm is not finite.
	Correlation float64

	// SystemConsistent is DeformationConsistent && !QuantumAnomaly.
	SystemConsistent bool

	// Score is 1/(1+Correlation) for nonzero Correlation, else exactly 0.
	// The zero-correlation case scoring 0 (not 1) is contractual.
	Score float64
}

// Validation bundles the per-run structural and numeric flags consumed by
// the reporter: convergence of the balanced product, hierarchy validity,
// poset acyclicity, and the named metric map. Created once per run.
type Validation struct {
	Converged      bool
	HierarchyValid bool
	PosetAcyclic   bool
	Metrics        map[string]float64
}

// NewValidation assembles the Validation record from the detector metrics
// and the structural flags. Convergence means the balanced product stayed
// within the detector's deviation tolerance.
func NewValidation(m anomaly.Metrics, acyclic, hierarchy bool) Validation {
	return Validation{
		Converged:      m.ProductDeviation <= anomaly.DeviationTolerance,
		HierarchyValid: hierarchy,
		PosetAcyclic:   acyclic,
		Metrics: map[string]float64{
			"log_spectral_std":  m.LogSpectralStd,
			"expected_std":      m.ExpectedStd,
			"allowed_std":       m.AllowedStd,
			"product_deviation": m.ProductDeviation,
		},
	}
}

// Validate derives the cross-system report from one run's metrics and
// deformation. The safe norm drives both the boundedness flag and the
// correlation; an all-zero safe matrix pushes the correlation to +Inf and
// the score to 0, exactly as the heuristic defines.
func Validate(m anomaly.Metrics, d *cartan.Deformation) (Report, error) {
	// 1. Validate input shape.
	if d == nil {
		return Report{}, fmt.Errorf("Validate: %w", ErrNilDeformation)
	}

	// 2. Boundedness of the regularized deformation.
	rep := Report{
		DeformationConsistent: d.SafeNorm < DefaultNormBound,
	}

	// 3. Log-domain correlation, defined only for a finite safe norm.
	if !math.IsNaN(d.SafeNorm) && !math.IsInf(d.SafeNorm, 0) {
		rep.Correlation = math.Abs(
			math.Log10(d.SafeNorm) - math.Log10(m.ProductDeviation+CorrelationFloor),
		)
	}

	// 4. Combined flag and the inverted-boundary score.
	rep.SystemConsistent = rep.DeformationConsistent && !m.QuantumAnomaly
	if rep.Correlation != 0 {
		rep.Score = 1 / (1 + rep.Correlation)
	}

	return rep, nil
}
