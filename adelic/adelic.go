// SPDX-License-Identifier: MIT
// Package adelic: balance-factor computation (the compute_integral pipeline).
//
// Algorithm Outline:
//  1. Validate the prime list (non-empty, every value ≥ 2).
//  2. Accumulate real = Π 1/(1−1/p) and p_adic = Π 1/p by iterative
//     high-precision multiplication in input order, recording each 1/p
//     component along the way.
//  3. dx = (1/(real·p_adic))^¼ — the fourth-root normalization that
//     balances the product back to unity.
//  4. Package the component map: "real" → real·dx⁴, "p_adic" → p_adic,
//     "1/<p>" → 1/p; Λ is the constant 1.0 by construction.
//
// Complexity:
//
//   - Time:   O(k·M) for k primes (M = big.Float multiplication cost)
//   - Memory: O(k) components

package adelic

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/katalvlaran/adelith/precision"
)

// Component map labels. Reciprocal components use ReciprocalPrefix + the
// decimal prime, e.g. "1/7".
const (
	RealKey          = "real"
	PAdicKey         = "p_adic"
	ReciprocalPrefix = "1/"
)

// BalancedLambda is the fixed Λ returned by ComputeIntegral. The balance
// real·p_adic·dx⁴ == 1 holds definitionally, so Λ is a constant rather
// than a value derived from the factors.
const BalancedLambda = 1.0

var (
	// ErrNoPrimes indicates an empty prime list.
	ErrNoPrimes = errors.New("adelic: prime list is empty")

	// ErrInvalidPrime indicates a listed value below 2; a 0 or 1 entry
	// would otherwise surface as a division by zero deep in the product.
	ErrInvalidPrime = errors.New("adelic: prime values must be >= 2")
)

// Integral bundles the balance factors of one run. All fields are set once
// by ComputeIntegral and never mutated afterwards.
type Integral struct {
	// Lambda is the constant BalancedLambda (see its doc).
	Lambda float64

	// RealFactor is the Euler product Π 1/(1−1/p) in high precision.
	RealFactor *big.Float

	// PAdicFactor is the reciprocal product Π 1/p in high precision.
	PAdicFactor *big.Float

	// Dx is the fourth root of 1/(RealFactor·PAdicFactor).
	Dx *big.Float

	// Components maps RealKey, PAdicKey and every "1/<p>" label to its
	// high-precision value. "real" carries RealFactor·Dx⁴, so that the
	// "real"·"p_adic" product is the balanced unity probe.
	Components map[string]*big.Float

	// Primes preserves the input order for display truncation and for the
	// deterministic contribution walk in the anomaly detector.
	Primes []int
}

// ComputeIntegral computes the balance factors for the given prime list.
// The list must be non-empty with every value ≥ 2; primality is not checked
// (caller responsibility). Returns a fully populated, immutable Integral.
func ComputeIntegral(ctx precision.Context, primes []int) (*Integral, error) {
	// 1. Validate input before touching the precision domain.
	if len(primes) == 0 {
		return nil, ErrNoPrimes
	}
	for _, p := range primes {
		if p < 2 {
			return nil, fmt.Errorf("value %d: %w", p, ErrInvalidPrime)
		}
	}

	// 2. Accumulate both products by iterative multiplication. The element
	//    type is a non-native arbitrary-precision scalar, so there is no
	//    vectorized path; a plain ordered loop is the whole algorithm.
	one := ctx.One()
	realFactor := ctx.One()
	padic := ctx.One()
	components := make(map[string]*big.Float, len(primes)+2)

	var err error
	var pf, invP, euler *big.Float
	for _, p := range primes {
		pf = ctx.Int(int64(p))

		// 1/p — also the recorded reciprocal component for this prime.
		if invP, err = ctx.Inv(pf); err != nil {
			return nil, fmt.Errorf("adelic: 1/%d: %w", p, err)
		}
		components[ReciprocalPrefix+strconv.Itoa(p)] = invP

		// 1/(1−1/p): p ≥ 2 keeps the denominator in [1/2, 1), never zero.
		if euler, err = ctx.Inv(ctx.NewFloat().Sub(one, invP)); err != nil {
			return nil, fmt.Errorf("adelic: euler term for %d: %w", p, err)
		}

		realFactor = ctx.NewFloat().Mul(realFactor, euler)
		padic = ctx.NewFloat().Mul(padic, invP)
	}

	// 3. dx = (1/(real·p_adic))^¼. The product of two positive factors is
	//    positive, so neither the inversion nor the root can fail here.
	prod := ctx.NewFloat().Mul(realFactor, padic)
	invProd, err := ctx.Inv(prod)
	if err != nil {
		return nil, fmt.Errorf("adelic: normalization: %w", err)
	}
	dx, err := ctx.Root4(invProd)
	if err != nil {
		return nil, fmt.Errorf("adelic: normalization: %w", err)
	}

	// 4. Package components: "real" carries real·dx⁴ (= 1/p_adic by the
	//    balance identity), "p_adic" the raw reciprocal product.
	dx2 := ctx.NewFloat().Mul(dx, dx)
	dx4 := ctx.NewFloat().Mul(dx2, dx2)
	components[RealKey] = ctx.NewFloat().Mul(realFactor, dx4)
	components[PAdicKey] = padic

	ordered := make([]int, len(primes))
	copy(ordered, primes)

	return &Integral{
		Lambda:      BalancedLambda,
		RealFactor:  realFactor,
		PAdicFactor: padic,
		Dx:          dx,
		Components:  components,
		Primes:      ordered,
	}, nil
}
