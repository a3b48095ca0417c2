// SPDX-License-Identifier: MIT
// Package report: console rendering of a run summary.

package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/adelith/adelic"
	"github.com/katalvlaran/adelith/anomaly"
	"github.com/katalvlaran/adelith/cartan"
	"github.com/katalvlaran/adelith/consistency"
)

// componentDisplayLimit truncates the per-prime component listing.
const componentDisplayLimit = 10

// floatDigits is the display precision for high-precision values.
const floatDigits = 12

// ErrNilSummary indicates a nil summary passed to Render.
var ErrNilSummary = errors.New("report: nil summary")

// Summary collects every artifact of one analysis run for rendering.
type Summary struct {
	Digits      int
	Integral    *adelic.Integral
	Validation  consistency.Validation
	Metrics     anomaly.Metrics
	Deformation *cartan.Deformation
	Report      consistency.Report
}

// Render writes the full human-readable report to w.
// Rendering never fails on the data itself — an unavailable standard norm
// prints as "Failed to compute" — only on a nil summary or writer errors.
func Render(w io.Writer, s *Summary) error {
	if s == nil || s.Integral == nil || s.Deformation == nil {
		return ErrNilSummary
	}

	p := func(format string, args ...any) error {
		_, err := fmt.Fprintf(w, format, args...)

		return err
	}

	// Header and the balance section.
	if err := p("=== Adelic balance (%d primes, %d digits) ===\n",
		len(s.Integral.Primes), s.Digits); err != nil {
		return err
	}
	_ = p("Lambda = %g\n", s.Integral.Lambda)
	_ = p("dx     = %s\n", s.Integral.Dx.Text('g', floatDigits))
	_ = p("real   = %s\n", s.Integral.RealFactor.Text('g', floatDigits))
	_ = p("p-adic = %s\n", s.Integral.PAdicFactor.Text('g', floatDigits))

	// Truncated component prefix in input order.
	limit := len(s.Integral.Primes)
	if limit > componentDisplayLimit {
		limit = componentDisplayLimit
	}
	_ = p("components (first %d of %d):\n", limit, len(s.Integral.Primes))
	for _, prime := range s.Integral.Primes[:limit] {
		key := adelic.ReciprocalPrefix + strconv.Itoa(prime)
		if v, ok := s.Integral.Components[key]; ok {
			_ = p("  %-6s = %s\n", key, v.Text('g', floatDigits))
		}
	}

	// Structural and anomaly section.
	_ = p("\n=== Structural & anomaly checks ===\n")
	_ = p("poset acyclic    : %t\n", s.Validation.PosetAcyclic)
	_ = p("mobius hierarchy : %t\n", s.Validation.HierarchyValid)
	_ = p("converged        : %t\n", s.Validation.Converged)
	_ = p("log spectral std : %.6f (allowed %.6f)\n",
		s.Metrics.LogSpectralStd, s.Metrics.AllowedStd)
	_ = p("expected std     : %.6f\n", s.Metrics.ExpectedStd)
	_ = p("product deviation: %.3e\n", s.Metrics.ProductDeviation)
	_ = p("quantum anomaly  : %t\n", s.Metrics.QuantumAnomaly)

	// Lie-algebra section.
	_ = p("\n=== E6/E7 deformation ===\n")
	_ = p("E6 eigenvalues: %v\n", s.Deformation.E6.Values)
	_ = p("E7 eigenvalues: %v\n", s.Deformation.E7.Values)
	if s.Deformation.StandardAvailable {
		_ = p("standard norm : %.6e\n", s.Deformation.StandardNorm)
	} else {
		_ = p("standard norm : Failed to compute\n")
	}
	_ = p("safe norm     : %.6e\n", s.Deformation.SafeNorm)
	for _, d := range s.Deformation.Diagnostics {
		_ = p("  note: %s\n", d)
	}

	// Cross-validation section.
	_ = p("\n=== Cross-validation ===\n")
	_ = p("deformation consistent: %t\n", s.Report.DeformationConsistent)
	_ = p("correlation           : %.6f\n", s.Report.Correlation)
	_ = p("system consistent     : %t\n", s.Report.SystemConsistent)

	return p("consistency score     : %.6f\n", s.Report.Score)
}
