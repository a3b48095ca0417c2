// Package consistency combines the anomaly metrics and the Lie-algebra
// deformation into heuristic cross-system scores.
//
// 🚀 What is validated?
//
//	• DeformationConsistent — the safe Frobenius norm stays below
//	  DefaultNormBound
//	• Correlation — |log₁₀(safe norm) − log₁₀(product deviation + floor)|
//	  when the safe norm is finite, else 0
//	• SystemConsistent — deformation bounded AND no quantum anomaly
//	• Score — 1/(1+Correlation) when Correlation ≠ 0, else exactly 0
//
// The Score boundary is intentional and preserved: a run whose correlation
// is exactly zero scores 0, not 1. The behavior is contractual (and pinned
// by a test); do not "fix" it.
//
// The package also bundles the per-run Validation record: the convergence,
// hierarchy and acyclicity flags plus the named metric map consumed by the
// reporter. All outputs are advisory — nothing here halts a run.
package consistency
