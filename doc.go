// Package adelith is a numeric exploration toolkit for adelic balance
// products and their heuristic cross-check against the spectra of the
// exceptional Cartan matrices E6 and E7.
//
// 🚀 What is adelith?
//
//	A deterministic, single-process analysis pipeline that brings together:
//		• Precision core: explicit arbitrary-precision contexts (≥100 digits)
//		• Adelic engine: Euler-product and p-adic factors over a prime list,
//		  plus the fourth-root normalization dx that balances them to 1
//		• Structural check: a fixed diamond poset validated for acyclicity
//		  and exact three-generation layering
//		• Anomaly detector: log-domain spread of the prime contributions
//		  against a linear threshold rule
//		• Lie analyzer: E6/E7 eigen-decomposition, zero-padded embedding and
//		  a regularized Gauss ₂F₁ deformation map with Frobenius norms
//		• Cross-validator: heuristic consistency scores tying both worlds
//
// ✨ Why adelith?
//
//   - Fully deterministic – fixed iteration orders, no randomness, identical
//     reports across repeated runs
//   - Explicit numerics – every literal crosses into high precision through a
//     precision.Context; downcasts happen once, at component boundaries
//   - Fail-fast inputs – sentinel errors for invalid prime lists, silent
//     per-cell fallbacks only where the deformation map is defined to have them
//
// Under the hood, everything is organized under focused subpackages:
//
//	precision/   — big.Float contexts, Ln/Sqrt/Root4 kernels
//	adelic/      — balance factors, component map, Λ and dx
//	poset/       — diamond DAG, cycle detection, topological generations
//	anomaly/     — log-spectral statistics and the anomaly flag
//	cartan/      — E6/E7 spectra, embedding, ₂F₁ deformation (standard/safe)
//	consistency/ — deformation bound, log-correlation, consistency score
//	report/      — human-readable run summaries
//	cmd/adelith  — the one-shot analysis driver
//
// Quick ASCII picture of the structural check:
//
//	    x0
//	   /  \
//	  x1   x2
//	   \  /
//	    x3
//
//	a diamond poset with exactly three topological generations.
//
// Run the full analysis with:
//
//	go run github.com/katalvlaran/adelith/cmd/adelith
package adelith
