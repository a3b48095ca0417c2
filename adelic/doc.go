// Package adelic computes the balance factors of a finite adelic product
// over an ordered list of primes.
//
// 🚀 What is the adelic engine?
//
//	For primes p₁…p_k it forms, entirely in high precision:
//	  • the real (Euler-product) factor   Π 1/(1−1/p)
//	  • the p-adic factor                 Π 1/p
//	  • the normalization                 dx = (1/(real·p_adic))^¼
//	and a component map labelling "real", "p_adic" and every "1/p" value.
//
// By construction real·p_adic·dx⁴ == 1, so the returned Λ is the fixed
// constant 1.0 — a design property of the balance, not a computed check.
//
// ⚙️ Usage:
//
//	ctx := precision.New(precision.DefaultDigits)
//	in, err := adelic.ComputeIntegral(ctx, adelic.DefaultPrimes())
//	if err != nil { ... }
//	_ = in.Dx // high-precision fourth-root normalization
//
// Determinism:
//
//	Factors accumulate by iterative multiplication in input order; the
//	component map preserves nothing order-sensitive (sums and products over
//	it are order-independent), while Integral.Primes keeps the input order
//	for display truncation downstream.
//
// Errors:
//
//   - ErrNoPrimes     — empty prime list
//   - ErrInvalidPrime — a listed value below 2 (primality itself is the
//     caller's responsibility and is deliberately not verified)
package adelic
