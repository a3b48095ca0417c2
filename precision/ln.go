// SPDX-License-Identifier: MIT
// Package precision: natural logarithm kernel.
//
// Ln computes ln(x) for x > 0 at the context's precision via classic
// argument reduction and the inverse hyperbolic tangent series:
//
//	x = m · 2^e with m ∈ [0.5, 1)   (big.Float.MantExp)
//	ln x = e·ln 2 + 2·atanh((m−1)/(m+1))
//	ln 2 = 2·atanh(1/3)
//
// For m ∈ [0.5, 1) the series argument satisfies |z| ≤ 1/3, so every term
// shrinks by at least z² ≤ 1/9 and the series converges in O(prec) terms.
//
// Complexity:
//
//   - Time:   O(prec²·M) where M is big.Float multiplication cost
//   - Memory: O(prec) for the handful of working values

package precision

import "math/big"

// maxLnTerms caps the atanh series; |z| ≤ 1/3 needs roughly prec/3 terms,
// so this cap is generous for any realistic digit count.
const maxLnTerms = 4096

// termGuardBits is the slack below the working precision at which a series
// term is considered negligible relative to the accumulated sum.
const termGuardBits = 4

// Ln returns the natural logarithm of x at the context's precision.
// Returns ErrNilValue for nil x, ErrNonPositive for x ≤ 0, and
// ErrNoConvergence if the series cap is hit (not reachable for |z| ≤ 1/3).
func (c Context) Ln(x *big.Float) (*big.Float, error) {
	// 1. Validate input: the logarithm is defined only for x > 0.
	if x == nil {
		return nil, precisionErrorf("Ln", ErrNilValue)
	}
	if x.Sign() <= 0 {
		return nil, precisionErrorf("Ln", ErrNonPositive)
	}

	// 2. Work at extended precision so rounding in the reduction and the
	//    series does not leak into the context's advertised digits.
	wp := c.prec + guardBits

	// 3. Reduce: x = mant·2^exp with mant ∈ [0.5, 1).
	mant := new(big.Float).SetPrec(wp)
	exp := x.MantExp(mant)

	// 4. ln(mant) = 2·atanh((mant−1)/(mant+1)); |z| ≤ 1/3 on [0.5, 1).
	one := new(big.Float).SetPrec(wp).SetInt64(1)
	num := new(big.Float).SetPrec(wp).Sub(mant, one)
	den := new(big.Float).SetPrec(wp).Add(mant, one)
	z := new(big.Float).SetPrec(wp).Quo(num, den)

	lnMant, err := atanhTimes2(z, wp)
	if err != nil {
		return nil, precisionErrorf("Ln", ErrNoConvergence)
	}

	// 5. ln 2 = 2·atanh(1/3), computed at the same working precision.
	third := new(big.Float).SetPrec(wp).Quo(
		new(big.Float).SetPrec(wp).SetInt64(1),
		new(big.Float).SetPrec(wp).SetInt64(3),
	)
	ln2, err := atanhTimes2(third, wp)
	if err != nil {
		return nil, precisionErrorf("Ln", ErrNoConvergence)
	}

	// 6. Recombine: ln x = exp·ln2 + ln(mant), then round to context width.
	e := new(big.Float).SetPrec(wp).SetInt64(int64(exp))
	res := new(big.Float).SetPrec(wp).Mul(e, ln2)
	res.Add(res, lnMant)

	return c.NewFloat().Set(res), nil
}

// atanhTimes2 evaluates 2·atanh(z) = 2·(z + z³/3 + z⁵/5 + …) at working
// precision wp. The caller guarantees |z| ≤ 1/3; termination is reached when
// a term falls termGuardBits below the sum at the working precision, or the
// term underflows to zero.
func atanhTimes2(z *big.Float, wp uint) (*big.Float, error) {
	// Zero argument short-circuits to zero (atanh(0) = 0).
	if z.Sign() == 0 {
		return new(big.Float).SetPrec(wp), nil
	}

	// Running power z^(2k+1), squared step, and accumulated sum.
	term := new(big.Float).SetPrec(wp).Set(z)
	zz := new(big.Float).SetPrec(wp).Mul(z, z)
	sum := new(big.Float).SetPrec(wp).Set(z)

	contrib := new(big.Float).SetPrec(wp)
	div := new(big.Float).SetPrec(wp)

	var k int64
	for k = 1; k <= maxLnTerms; k++ {
		// Next odd power of z.
		term.Mul(term, zz)
		if term.Sign() == 0 {
			// Underflow: remaining terms are exactly zero at this precision.
			return sum.Mul(sum, div.SetInt64(2)), nil
		}

		// contrib = z^(2k+1) / (2k+1).
		div.SetInt64(2*k + 1)
		contrib.Quo(term, div)
		sum.Add(sum, contrib)

		// Stop once the contribution is negligible relative to the sum.
		if contrib.MantExp(nil) < sum.MantExp(nil)-int(wp)-termGuardBits {
			return sum.Mul(sum, div.SetInt64(2)), nil
		}
	}

	return nil, ErrNoConvergence
}
