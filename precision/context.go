// SPDX-License-Identifier: MIT
// Package precision: explicit big.Float contexts and boundary conversions.
// This file defines the Context value, its constructors, and the elementary
// guarded operations (Inv, Quo, Sqrt, Root4). The logarithm kernel lives in
// ln.go. All operations are pure and deterministic; no global state exists.

package precision

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// DefaultDigits is the decimal precision used across the adelith pipeline.
// One hundred significant digits keep iterated prime products comparable to
// 1 at tolerances as tight as 1e-12 without catastrophic cancellation.
const DefaultDigits = 100

// bitsPerDecimalDigit converts decimal digits to mantissa bits (log2 10).
const bitsPerDecimalDigit = 3.3219280948873623

// guardBits is the extra mantissa width kept beyond the requested digits so
// that rounding in iterated products never eats into the advertised digits.
const guardBits = 32

var (
	// ErrNilValue is returned when a nil *big.Float operand is supplied.
	ErrNilValue = errors.New("precision: nil operand")

	// ErrDivisionByZero is returned by Inv and Quo for a zero divisor.
	ErrDivisionByZero = errors.New("precision: division by zero")

	// ErrNegative is returned by Sqrt and Root4 for negative input.
	ErrNegative = errors.New("precision: negative operand")

	// ErrNonPositive is returned by Ln for input ≤ 0.
	ErrNonPositive = errors.New("precision: non-positive operand")

	// ErrNoConvergence is returned when a series kernel exceeds its
	// iteration cap without meeting the termination criterion.
	ErrNoConvergence = errors.New("precision: series did not converge")
)

// precisionErrorf wraps an underlying error with kernel context.
func precisionErrorf(op string, err error) error {
	return fmt.Errorf("precision.%s: %w", op, err)
}

// Context carries the mantissa precision for one family of computations.
// The zero value is not usable; construct via New. Context is a small value
// type: pass it by value, never store it in package-level variables.
type Context struct {
	prec uint // mantissa width in bits, guard included
}

// New returns a Context that carries at least the requested number of
// significant decimal digits. digits < 1 is a programmer error and panics,
// mirroring option validation elsewhere in the module.
func New(digits int) Context {
	if digits < 1 {
		panic(fmt.Sprintf("precision.New: digits must be >= 1, got %d", digits))
	}

	// Convert decimal digits to bits and add guard bits for iterated products.
	bits := uint(math.Ceil(float64(digits)*bitsPerDecimalDigit)) + guardBits

	return Context{prec: bits}
}

// Prec reports the mantissa width in bits carried by the context.
func (c Context) Prec() uint {
	return c.prec
}

// NewFloat returns a fresh zero *big.Float at the context's precision.
// Every intermediate in a high-precision expression must be allocated here
// (or via the typed constructors below) so no operation truncates silently.
func (c Context) NewFloat() *big.Float {
	return new(big.Float).SetPrec(c.prec)
}

// Int converts an integer literal into the context's precision.
func (c Context) Int(n int64) *big.Float {
	return c.NewFloat().SetInt64(n)
}

// Float converts a native float64 literal into the context's precision.
// The conversion is exact (float64 values are dyadic rationals); use this
// only at ingestion boundaries, never mid-computation.
func (c Context) Float(f float64) *big.Float {
	return c.NewFloat().SetFloat64(f)
}

// One returns the multiplicative identity at the context's precision.
func (c Context) One() *big.Float {
	return c.Int(1)
}

// Inv returns 1/x at the context's precision.
// Returns ErrNilValue for nil x and ErrDivisionByZero for x == 0.
func (c Context) Inv(x *big.Float) (*big.Float, error) {
	if x == nil {
		return nil, precisionErrorf("Inv", ErrNilValue)
	}
	if x.Sign() == 0 {
		return nil, precisionErrorf("Inv", ErrDivisionByZero)
	}

	return c.NewFloat().Quo(c.One(), x), nil
}

// Quo returns x/y at the context's precision.
// Returns ErrNilValue for nil operands and ErrDivisionByZero for y == 0.
func (c Context) Quo(x, y *big.Float) (*big.Float, error) {
	if x == nil || y == nil {
		return nil, precisionErrorf("Quo", ErrNilValue)
	}
	if y.Sign() == 0 {
		return nil, precisionErrorf("Quo", ErrDivisionByZero)
	}

	return c.NewFloat().Quo(x, y), nil
}

// Mul returns x*y at the context's precision.
// Nil operands are a programmer error and return ErrNilValue.
func (c Context) Mul(x, y *big.Float) (*big.Float, error) {
	if x == nil || y == nil {
		return nil, precisionErrorf("Mul", ErrNilValue)
	}

	return c.NewFloat().Mul(x, y), nil
}

// Sub returns x−y at the context's precision.
func (c Context) Sub(x, y *big.Float) (*big.Float, error) {
	if x == nil || y == nil {
		return nil, precisionErrorf("Sub", ErrNilValue)
	}

	return c.NewFloat().Sub(x, y), nil
}

// Sqrt returns √x at the context's precision.
// Returns ErrNegative for x < 0; √0 is 0.
func (c Context) Sqrt(x *big.Float) (*big.Float, error) {
	if x == nil {
		return nil, precisionErrorf("Sqrt", ErrNilValue)
	}
	if x.Sign() < 0 {
		return nil, precisionErrorf("Sqrt", ErrNegative)
	}

	return c.NewFloat().Sqrt(x), nil
}

// Root4 returns the principal fourth root of x (two nested square roots).
// Returns ErrNegative for x < 0.
func (c Context) Root4(x *big.Float) (*big.Float, error) {
	// First square root (validates sign and nil).
	s, err := c.Sqrt(x)
	if err != nil {
		return nil, precisionErrorf("Root4", errors.Unwrap(err))
	}

	// Second square root: s ≥ 0 by construction, cannot fail.
	return c.NewFloat().Sqrt(s), nil
}

// Float64 downcasts a high-precision value to native float64.
// This is the single sanctioned conversion out of the precision domain;
// callers use it exactly once, at their component boundary.
func Float64(x *big.Float) float64 {
	if x == nil {
		return math.NaN()
	}
	f, _ := x.Float64()

	return f
}
