package poset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adelith/poset"
)

// TestAddVertex covers the empty-label guard and idempotent insertion.
func TestAddVertex(t *testing.T) {
	d := poset.New()

	assert.ErrorIs(t, d.AddVertex(""), poset.ErrEmptyVertexID)

	require.NoError(t, d.AddVertex("a"))
	require.NoError(t, d.AddVertex("a"), "re-adding is a no-op")
	assert.Equal(t, []string{"a"}, d.Vertices())
}

// TestAddEdge covers label guards, implicit vertex creation, and duplicate
// edge collapse.
func TestAddEdge(t *testing.T) {
	d := poset.New()

	assert.ErrorIs(t, d.AddEdge("", "b"), poset.ErrEmptyVertexID)
	assert.ErrorIs(t, d.AddEdge("a", ""), poset.ErrEmptyVertexID)

	require.NoError(t, d.AddEdge("a", "b"))
	require.NoError(t, d.AddEdge("a", "b"), "duplicate collapses")
	assert.Equal(t, []string{"a", "b"}, d.Vertices(), "endpoints auto-created")
	assert.Equal(t, []string{"b"}, d.Successors("a"))
	assert.Empty(t, d.Successors("b"))
	assert.Nil(t, d.Successors("zz"), "unknown vertex")
}

// TestNewDiamond verifies the fixed 4-node shape.
func TestNewDiamond(t *testing.T) {
	d := poset.NewDiamond()

	assert.Equal(t, []string{"x0", "x1", "x2", "x3"}, d.Vertices())
	assert.Equal(t, []string{"x1", "x2"}, d.Successors("x0"))
	assert.Equal(t, []string{"x3"}, d.Successors("x1"))
	assert.Equal(t, []string{"x3"}, d.Successors("x2"))
	assert.Empty(t, d.Successors("x3"))
}

// TestValidate covers acyclic acceptance and cycle rejection, including
// the self-loop edge case.
func TestValidate(t *testing.T) {
	assert.True(t, poset.New().Validate(), "empty graph is acyclic")
	assert.True(t, poset.NewDiamond().Validate())

	cyc := poset.New()
	require.NoError(t, cyc.AddEdge("a", "b"))
	require.NoError(t, cyc.AddEdge("b", "c"))
	require.NoError(t, cyc.AddEdge("c", "a"))
	assert.False(t, cyc.Validate(), "3-cycle")

	loop := poset.New()
	require.NoError(t, loop.AddEdge("a", "a"))
	assert.False(t, loop.Validate(), "self-loop")
}

// TestGenerations checks the diamond peels into exactly the layers
// {x0}, {x1, x2}, {x3}, each sorted.
func TestGenerations(t *testing.T) {
	gens, err := poset.NewDiamond().Generations()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"x0"}, {"x1", "x2"}, {"x3"}}, gens)
}

// TestGenerations_Cycle verifies peeling reports the stall.
func TestGenerations_Cycle(t *testing.T) {
	d := poset.New()
	require.NoError(t, d.AddEdge("a", "b"))
	require.NoError(t, d.AddEdge("b", "a"))

	_, err := d.Generations()
	assert.ErrorIs(t, err, poset.ErrCycleDetected)
}

// TestVerifyMobiusHierarchy covers the pass, depth-mismatch, and
// fail-closed cyclic cases.
func TestVerifyMobiusHierarchy(t *testing.T) {
	assert.True(t, poset.NewDiamond().VerifyMobiusHierarchy())

	// A chain of four vertices has four generations, not three.
	chain := poset.New()
	require.NoError(t, chain.AddEdge("a", "b"))
	require.NoError(t, chain.AddEdge("b", "c"))
	require.NoError(t, chain.AddEdge("c", "d"))
	assert.False(t, chain.VerifyMobiusHierarchy())

	// Cycles fail closed rather than erroring.
	cyc := poset.New()
	require.NoError(t, cyc.AddEdge("a", "b"))
	require.NoError(t, cyc.AddEdge("b", "a"))
	assert.False(t, cyc.VerifyMobiusHierarchy())
}

// TestDeterminism runs the traversal twice and expects byte-identical
// layering; map iteration must never leak into results.
func TestDeterminism(t *testing.T) {
	for i := 0; i < 8; i++ {
		gens, err := poset.NewDiamond().Generations()
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"x0"}, {"x1", "x2"}, {"x3"}}, gens, "run %d", i)
	}
}
