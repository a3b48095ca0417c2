// Package report renders one adelith analysis run as a human-readable
// console report: Λ and dx, a truncated component prefix, the structural
// flags, the anomaly metrics, the Lie-algebra norms, and the cross-system
// scores. Pure presentation — no data logic lives here, and the output is
// not intended to be machine-parseable.
package report
