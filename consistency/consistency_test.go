package consistency_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adelith/anomaly"
	"github.com/katalvlaran/adelith/cartan"
	"github.com/katalvlaran/adelith/consistency"
)

// TestValidate_NilDeformation covers the input guard.
func TestValidate_NilDeformation(t *testing.T) {
	_, err := consistency.Validate(anomaly.Metrics{}, nil)
	assert.ErrorIs(t, err, consistency.ErrNilDeformation)
}

// TestValidate_CorrelationValue pins the correlation formula on crafted
// numbers: |log₁₀(norm) − log₁₀(deviation + floor)|.
func TestValidate_CorrelationValue(t *testing.T) {
	m := anomaly.Metrics{ProductDeviation: 1e-3}
	d := &cartan.Deformation{SafeNorm: 100}

	rep, err := consistency.Validate(m, d)
	require.NoError(t, err)

	want := math.Abs(math.Log10(100) - math.Log10(1e-3+consistency.CorrelationFloor))
	assert.InDelta(t, want, rep.Correlation, 1e-12)
	assert.InDelta(t, 1/(1+want), rep.Score, 1e-12)
	assert.True(t, rep.DeformationConsistent, "norm 100 < bound")
}

// TestValidate_ZeroCorrelationScoresZero pins the inverted boundary: when
// the two log magnitudes coincide exactly the score is 0, not 1. With a
// zero deviation the floored term is exactly CorrelationFloor, so a safe
// norm equal to the floor cancels the logs.
func TestValidate_ZeroCorrelationScoresZero(t *testing.T) {
	m := anomaly.Metrics{ProductDeviation: 0}
	d := &cartan.Deformation{SafeNorm: consistency.CorrelationFloor}

	rep, err := consistency.Validate(m, d)
	require.NoError(t, err)
	assert.Zero(t, rep.Correlation)
	assert.Zero(t, rep.Score, "zero correlation scores 0 by contract")
}

// TestValidate_ZeroSafeNorm covers the all-zero safe matrix: log₁₀(0) is
// −Inf, the correlation becomes +Inf, and the score collapses to 0.
func TestValidate_ZeroSafeNorm(t *testing.T) {
	m := anomaly.Metrics{ProductDeviation: 1e-3}
	d := &cartan.Deformation{SafeNorm: 0}

	rep, err := consistency.Validate(m, d)
	require.NoError(t, err)
	assert.True(t, math.IsInf(rep.Correlation, 1))
	assert.Zero(t, rep.Score)
	assert.True(t, rep.DeformationConsistent, "0 < bound")
}

// TestValidate_NonFiniteSafeNorm verifies NaN and ±Inf norms leave the
// correlation at its zero default, which also zeroes the score.
func TestValidate_NonFiniteSafeNorm(t *testing.T) {
	for _, norm := range []float64{math.NaN(), math.Inf(1)} {
		m := anomaly.Metrics{ProductDeviation: 1e-3}
		d := &cartan.Deformation{SafeNorm: norm}

		rep, err := consistency.Validate(m, d)
		require.NoError(t, err)
		assert.Zero(t, rep.Correlation, "norm %g", norm)
		assert.Zero(t, rep.Score, "norm %g", norm)
		assert.False(t, rep.DeformationConsistent, "norm %g is not < bound", norm)
	}
}

// TestValidate_SystemConsistent exercises the combined flag truth table.
func TestValidate_SystemConsistent(t *testing.T) {
	cases := []struct {
		name    string
		norm    float64
		anomaly bool
		want    bool
	}{
		{"bounded, quiet", 100, false, true},
		{"bounded, anomalous", 100, true, false},
		{"unbounded, quiet", 1e7, false, false},
		{"unbounded, anomalous", 1e7, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := anomaly.Metrics{QuantumAnomaly: tc.anomaly, ProductDeviation: 1e-6}
			rep, err := consistency.Validate(m, &cartan.Deformation{SafeNorm: tc.norm})
			require.NoError(t, err)
			assert.Equal(t, tc.want, rep.SystemConsistent)
		})
	}
}

// TestNewValidation checks the flag wiring and the metric map keys.
func TestNewValidation(t *testing.T) {
	m := anomaly.Metrics{
		LogSpectralStd:   0.5,
		ExpectedStd:      1.4,
		AllowedStd:       1.1,
		ProductDeviation: 1e-13,
	}

	v := consistency.NewValidation(m, true, true)
	assert.True(t, v.Converged, "deviation within tolerance")
	assert.True(t, v.HierarchyValid)
	assert.True(t, v.PosetAcyclic)
	assert.Equal(t, 0.5, v.Metrics["log_spectral_std"])
	assert.Equal(t, 1.4, v.Metrics["expected_std"])
	assert.Equal(t, 1.1, v.Metrics["allowed_std"])
	assert.Equal(t, 1e-13, v.Metrics["product_deviation"])

	m.ProductDeviation = 1e-3
	v = consistency.NewValidation(m, false, true)
	assert.False(t, v.Converged, "deviation beyond tolerance")
	assert.False(t, v.PosetAcyclic)
}

// TestValidate_EndToEnd runs the real deformation against balanced
// metrics and checks the report is internally coherent.
func TestValidate_EndToEnd(t *testing.T) {
	d, err := cartan.Analyze()
	require.NoError(t, err)

	m := anomaly.Metrics{ProductDeviation: 0}
	rep, err := consistency.Validate(m, d)
	require.NoError(t, err)

	assert.Equal(t, d.SafeNorm < consistency.DefaultNormBound, rep.DeformationConsistent)
	if rep.Correlation != 0 {
		assert.InDelta(t, 1/(1+rep.Correlation), rep.Score, 1e-15)
	} else {
		assert.Zero(t, rep.Score)
	}
}
