package cartan_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/adelith/cartan"
)

// Smallest eigenvalues of the simply-laced Cartan matrices, from the
// closed form 2 − 2·cos(π/h) with Coxeter numbers h(E6)=12, h(E7)=18.
const (
	e6MinEigen = 0.06814834742186346
	e7MinEigen = 0.0303844939755838
)

// TestMatrices verifies shape, diagonal, branch-node adjacency, and the
// copy-on-access contract of the fixed Cartan matrices.
func TestMatrices(t *testing.T) {
	a6, a7 := cartan.E6(), cartan.E7()

	r, c := a6.Dims()
	assert.Equal(t, cartan.E6Rank, r)
	assert.Equal(t, cartan.E6Rank, c)
	r, c = a7.Dims()
	assert.Equal(t, cartan.E7Rank, r)
	assert.Equal(t, cartan.E7Rank, c)

	for i := 0; i < cartan.E6Rank; i++ {
		assert.Equal(t, 2.0, a6.At(i, i), "E6 diagonal")
	}
	for i := 0; i < cartan.E7Rank; i++ {
		assert.Equal(t, 2.0, a7.At(i, i), "E7 diagonal")
	}

	// Branch node 2 (index 1) attaches to node 4 (index 3) only.
	assert.Equal(t, -1.0, a6.At(1, 3))
	assert.Equal(t, 0.0, a6.At(1, 2))
	assert.Equal(t, -1.0, a7.At(1, 3))

	// Mutating a copy must not leak into subsequent accessors.
	a6.SetSym(0, 0, 99)
	assert.Equal(t, 2.0, cartan.E6().At(0, 0), "accessor hands out fresh copies")
}

// TestDecompose checks the eigensolver contract: ascending positive
// spectrum with the documented smallest eigenvalues.
func TestDecompose(t *testing.T) {
	_, err := cartan.Decompose(nil)
	assert.ErrorIs(t, err, cartan.ErrNilMatrix)

	d6, err := cartan.Decompose(cartan.E6())
	require.NoError(t, err)
	require.Len(t, d6.Values, cartan.E6Rank)
	assert.True(t, sort.Float64sAreSorted(d6.Values), "ascending order")
	assert.Greater(t, d6.Values[0], 0.0, "Cartan matrices are positive definite")
	assert.InDelta(t, e6MinEigen, d6.Values[0], 1e-8)

	d7, err := cartan.Decompose(cartan.E7())
	require.NoError(t, err)
	require.Len(t, d7.Values, cartan.E7Rank)
	assert.True(t, sort.Float64sAreSorted(d7.Values))
	assert.InDelta(t, e7MinEigen, d7.Values[0], 1e-8)

	// Spectral invariant: the eigenvalue sum equals the trace 2·rank.
	var sum float64
	for _, v := range d7.Values {
		sum += v
	}
	assert.InDelta(t, 14.0, sum, 1e-10)
}

// TestEmbed verifies block placement, zero padding, and the shape guards.
func TestEmbed(t *testing.T) {
	_, err := cartan.Embed(nil, 3)
	assert.ErrorIs(t, err, cartan.ErrNilMatrix)

	src := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	_, err = cartan.Embed(src, 1)
	assert.ErrorIs(t, err, cartan.ErrBadShape, "target smaller than source")

	out, err := cartan.Embed(src, 3)
	require.NoError(t, err)
	r, c := out.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.Equal(t, src.At(i, j), out.At(i, j), "top-left block")
		}
	}
	for i := 0; i < 3; i++ {
		assert.Zero(t, out.At(i, 2), "padded column")
		assert.Zero(t, out.At(2, i), "padded row")
	}
}

// TestDeformStandard covers matrix-level guards and the silent per-cell
// zero fallback on a pole.
func TestDeformStandard(t *testing.T) {
	_, err := cartan.DeformStandard(nil, mat.NewDense(1, 1, nil))
	assert.ErrorIs(t, err, cartan.ErrNilMatrix)

	_, err = cartan.DeformStandard(mat.NewDense(1, 2, nil), mat.NewDense(2, 1, nil))
	assert.ErrorIs(t, err, cartan.ErrShapeMismatch)

	// Target cell b=0 is a pole: the cell drops to 0 without an error.
	embedded := mat.NewDense(1, 2, []float64{1, 1})
	target := mat.NewDense(1, 2, []float64{2, 0})
	out, err := cartan.DeformStandard(embedded, target)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, out.At(0, 0), 1e-13, "₂F₁(1,−1;2;−1) = 1 + 1/2")
	assert.Zero(t, out.At(0, 1), "pole cell falls back to zero")
}

// TestDeformSafe verifies the diagnostics and the sign-preserving clamp.
func TestDeformSafe(t *testing.T) {
	// One well-behaved cell, one pole, one blow-up beyond the clamp.
	embedded := mat.NewDense(1, 3, []float64{1, 1, 1})
	target := mat.NewDense(1, 3, []float64{2, 0, 1e-12})

	out, diags, err := cartan.DeformSafe(embedded, target, cartan.WithClampThreshold(1e6))
	require.NoError(t, err)

	assert.InDelta(t, 1.5, out.At(0, 0), 1e-13)
	assert.Zero(t, out.At(0, 1), "pole cell")
	assert.Equal(t, 1e6, out.At(0, 2), "blow-up clamps to the bound")

	require.Len(t, diags, 1, "only the pole cell produces a diagnostic")
	assert.Contains(t, diags[0], "cell (0,1)")
}

// TestWithClampThreshold_Panics pins the programmer-error contract.
func TestWithClampThreshold_Panics(t *testing.T) {
	assert.Panics(t, func() { cartan.WithClampThreshold(0) })
	assert.Panics(t, func() { cartan.WithClampThreshold(-1) })
	assert.Panics(t, func() { cartan.WithClampThreshold(math.NaN()) })
	assert.Panics(t, func() { cartan.WithClampThreshold(math.Inf(1)) })
	assert.NotPanics(t, func() { cartan.WithClampThreshold(5) })
}

// TestAnalyze runs the full pipeline stage and checks the structural
// contract: spectra present, the safe matrix finite and clamp-bounded,
// and the safe norm finite.
func TestAnalyze(t *testing.T) {
	d, err := cartan.Analyze()
	require.NoError(t, err)

	require.NotNil(t, d.E6)
	require.NotNil(t, d.E7)
	require.NotNil(t, d.Embedded)
	require.NotNil(t, d.Safe)

	r, c := d.Embedded.Dims()
	assert.Equal(t, cartan.E7Rank, r)
	assert.Equal(t, cartan.E7Rank, c)

	for i := 0; i < cartan.E7Rank; i++ {
		for j := 0; j < cartan.E7Rank; j++ {
			v := d.Safe.At(i, j)
			assert.False(t, math.IsNaN(v), "safe cell (%d,%d) NaN", i, j)
			assert.LessOrEqual(t, math.Abs(v), cartan.DefaultClampThreshold,
				"safe cell (%d,%d) exceeds clamp", i, j)
		}
	}

	assert.False(t, math.IsNaN(d.SafeNorm))
	assert.False(t, math.IsInf(d.SafeNorm, 0))
	assert.Greater(t, d.SafeNorm, 0.0)

	if d.StandardAvailable {
		assert.False(t, math.IsNaN(d.StandardNorm))
		assert.False(t, math.IsInf(d.StandardNorm, 0))
	}
}

// TestAnalyze_Deterministic verifies two runs agree on every norm and
// diagnostic.
func TestAnalyze_Deterministic(t *testing.T) {
	a, err := cartan.Analyze()
	require.NoError(t, err)
	b, err := cartan.Analyze()
	require.NoError(t, err)

	assert.Equal(t, a.E6.Values, b.E6.Values)
	assert.Equal(t, a.E7.Values, b.E7.Values)
	assert.Equal(t, a.SafeNorm, b.SafeNorm)
	assert.Equal(t, a.StandardAvailable, b.StandardAvailable)
	assert.Equal(t, a.StandardNorm, b.StandardNorm)
	assert.Equal(t, a.Diagnostics, b.Diagnostics)
}
