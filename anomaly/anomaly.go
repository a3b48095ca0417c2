// SPDX-License-Identifier: MIT
// Package anomaly: log-spectral statistics over the adelic components.
//
// Algorithm Outline:
//  1. Walk the prime list in input order and take ln of each "1/p"
//     component in high precision.
//  2. std = sqrt(mean(x²) − mean(x)²) over those logs (population form).
//  3. expected = sqrt(mean(ln(p)²)) over the primes — an RMS kept under
//     its historical "expected std" name.
//  4. deviation = |1 − real·p_adic| from the balanced components.
//  5. Downcast once, apply the linear threshold rule, package Metrics.
//
// Complexity:
//
//   - Time:   O(k·L) for k primes (L = high-precision Ln cost)
//   - Memory: O(1) beyond the accumulators

package anomaly

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/katalvlaran/adelith/adelic"
	"github.com/katalvlaran/adelith/precision"
)

// Threshold rule: allowed = ThresholdBase + ThresholdSlope·ExpectedStd.
// The coefficients are part of the detector's fixed contract.
const (
	ThresholdBase  = 0.9
	ThresholdSlope = 0.15
)

// DeviationTolerance bounds how far the balanced real·p_adic product may
// drift from unity before the anomaly flag raises.
const DeviationTolerance = 1e-12

var (
	// ErrNilIntegral indicates a nil *adelic.Integral input.
	ErrNilIntegral = errors.New("anomaly: nil integral")

	// ErrNoPrimes indicates an empty prime list inside the input record.
	ErrNoPrimes = errors.New("anomaly: prime list is empty")

	// ErrNoContributions indicates that a "1/p" component expected from
	// the prime list is missing from the component map.
	ErrNoContributions = errors.New("anomaly: missing prime contribution")
)

// Metrics is the immutable result record of one detector run. All values
// are native float64, downcast exactly once from the precision domain.
type Metrics struct {
	// LogSpectralStd is the population standard deviation of the natural
	// logs of the "1/p" components.
	LogSpectralStd float64

	// ExpectedStd is the root-mean-square of ln(p) over the prime list.
	// Historical name: the detector's rule calls it a std/variance while
	// computing an RMS; the formula is contractual and left as-is.
	ExpectedStd float64

	// AllowedStd is the evaluated linear threshold
	// ThresholdBase + ThresholdSlope·ExpectedStd.
	AllowedStd float64

	// ProductDeviation is |1 − real·p_adic| over the balanced components.
	ProductDeviation float64

	// QuantumAnomaly raises when LogSpectralStd exceeds AllowedStd or
	// ProductDeviation exceeds DeviationTolerance. Advisory only.
	QuantumAnomaly bool
}

// Check computes the detector metrics for one adelic run.
// The walk over contributions follows in.Primes order, so results are
// deterministic; sums themselves are order-insensitive.
func Check(ctx precision.Context, in *adelic.Integral) (Metrics, error) {
	// 1. Validate input shape before any arithmetic.
	if in == nil {
		return Metrics{}, ErrNilIntegral
	}
	if len(in.Primes) == 0 {
		return Metrics{}, ErrNoPrimes
	}

	// 2. Accumulate Σx and Σx² over ln("1/p") in the precision domain.
	n := ctx.Int(int64(len(in.Primes)))
	sum := ctx.NewFloat()
	sumSq := ctx.NewFloat()
	expSq := ctx.NewFloat() // Σ ln(p)² for the expected RMS

	var l, lp *big.Float
	var err error
	for _, p := range in.Primes {
		v, ok := in.Components[adelic.ReciprocalPrefix+strconv.Itoa(p)]
		if !ok {
			return Metrics{}, fmt.Errorf("prime %d: %w", p, ErrNoContributions)
		}
		if l, err = ctx.Ln(v); err != nil {
			return Metrics{}, fmt.Errorf("anomaly: ln(1/%d): %w", p, err)
		}
		sum.Add(sum, l)
		sumSq.Add(sumSq, ctx.NewFloat().Mul(l, l))

		if lp, err = ctx.Ln(ctx.Int(int64(p))); err != nil {
			return Metrics{}, fmt.Errorf("anomaly: ln(%d): %w", p, err)
		}
		expSq.Add(expSq, ctx.NewFloat().Mul(lp, lp))
	}

	// 3. Population variance mean(x²) − mean(x)², clamped at zero: the
	//    difference of two rounded means may undershoot by one ulp.
	mean := ctx.NewFloat().Quo(sum, n)
	meanSq := ctx.NewFloat().Quo(sumSq, n)
	variance := ctx.NewFloat().Sub(meanSq, ctx.NewFloat().Mul(mean, mean))
	if variance.Sign() < 0 {
		variance = ctx.NewFloat()
	}
	stdLog, err := ctx.Sqrt(variance)
	if err != nil {
		return Metrics{}, fmt.Errorf("anomaly: std: %w", err)
	}

	// 4. Expected RMS of log-primes.
	expected, err := ctx.Sqrt(ctx.NewFloat().Quo(expSq, n))
	if err != nil {
		return Metrics{}, fmt.Errorf("anomaly: expected std: %w", err)
	}

	// 5. Deviation of the balanced product from unity.
	realC, okR := in.Components[adelic.RealKey]
	padicC, okP := in.Components[adelic.PAdicKey]
	if !okR || !okP {
		return Metrics{}, fmt.Errorf("balanced components: %w", ErrNoContributions)
	}
	product := ctx.NewFloat().Mul(realC, padicC)
	deviation := ctx.NewFloat().Sub(ctx.One(), product)
	deviation.Abs(deviation)

	// 6. Downcast once at the metric boundary, then apply the rules.
	m := Metrics{
		LogSpectralStd:   precision.Float64(stdLog),
		ExpectedStd:      precision.Float64(expected),
		ProductDeviation: precision.Float64(deviation),
	}
	m.AllowedStd = ThresholdBase + ThresholdSlope*m.ExpectedStd
	m.QuantumAnomaly = m.LogSpectralStd > m.AllowedStd ||
		m.ProductDeviation > DeviationTolerance

	return m, nil
}
