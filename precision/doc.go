// Package precision provides explicit arbitrary-precision contexts for the
// adelith numeric pipeline.
//
// 🚀 What is precision?
//
//	A thin, deterministic layer over math/big.Float that makes the working
//	precision an explicit value instead of ambient global state:
//	  • Context — carries the mantissa width (built from decimal digits)
//	  • Constructors — Int, Float, One, Inv: every literal crosses into
//	    high precision here, before any arithmetic touches it
//	  • Kernels — Ln (argument reduction + atanh series), Sqrt, Root4
//
// ✨ Why an explicit context?
//
//   - No package mutates global precision; two contexts with different digit
//     counts coexist safely in one process
//   - Mixing native float64 with high-precision values mid-computation would
//     silently truncate to 53 bits; the constructors keep the conversion at
//     the boundary where it belongs
//   - Product accumulation over dozens of primes compared against 1 at 1e-12
//     needs well over native precision to avoid catastrophic cancellation
//
// ⚙️ Usage:
//
//	ctx := precision.New(precision.DefaultDigits) // 100 significant digits
//	x := ctx.Int(7)
//	inv, err := ctx.Inv(x)       // 1/7 at full precision
//	l, err := ctx.Ln(inv)        // natural log, high precision
//	f := precision.Float64(l)    // explicit downcast at the boundary
//
// Errors:
//
//   - ErrNilValue      — a nil *big.Float operand
//   - ErrDivisionByZero — Inv/Quo with a zero divisor
//   - ErrNonPositive   — Ln of x ≤ 0
//   - ErrNegative      — Sqrt/Root4 of x < 0
//   - ErrNoConvergence — the Ln series exceeded its iteration cap
package precision
