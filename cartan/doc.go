// Package cartan analyzes the spectra of the exceptional Cartan matrices E6
// and E7 and derives a heuristic hypergeometric deformation between them.
//
// 🚀 The three-stage analyzer:
//
//	1️⃣ Decompose — symmetric eigen-decomposition of the fixed E6 (6×6) and
//	   E7 (7×7) Cartan matrices; eigenvalues ascending, eigenvectors as
//	   matching columns (gonum mat.EigenSym)
//	2️⃣ Embed — zero-pad the E6 eigenvector matrix into 7×7: the original
//	   basis occupies the top-left block, everything else is exactly zero
//	3️⃣ Deform — per cell (i,j), evaluate the Gauss hypergeometric value
//	   ₂F₁(1, −a; b; −1) with a from the embedded basis and b from the E7
//	   eigenvector matrix
//
// The deformation map is deliberately unstable — for the arguments that
// arise it routinely blows up — so stage 3 exists in two explicitly named
// variants rather than one function with a flag:
//
//   - DeformStandard: per-cell failures fall back to 0 silently; no
//     overflow protection, so ±Inf/NaN may appear and propagate only as far
//     as the Frobenius norm, which is then reported unavailable
//   - DeformSafe: identical evaluation, but finite blow-ups are clamped
//     sign-preserving to ±threshold (default DefaultClampThreshold) and each
//     per-cell fallback is recorded as a diagnostic naming the failing cell;
//     this variant always yields a usable matrix and a finite norm
//
// Analyze runs all three stages once and packages both variants with their
// Frobenius norms.
//
// Errors:
//
//   - ErrEigenFailed     — the symmetric eigensolver did not converge
//   - ErrNilMatrix       — nil matrix operand
//   - ErrShapeMismatch   — embedded/target shape disagreement
//   - ErrBadShape        — embedding target smaller than the source
//   - ErrHypPole         — ₂F₁ series hit a pole of (b)ₙ
//   - ErrHypDomain       — non-finite ₂F₁ parameters
//   - ErrHypNoConvergence — ₂F₁ series cap exceeded
package cartan
