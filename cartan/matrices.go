// SPDX-License-Identifier: MIT
// Package cartan: the fixed E6 and E7 Cartan matrices.
//
// Both matrices use Bourbaki numbering, where node 2 is the branch node
// attached to node 4. The matrices are symmetric (simply-laced algebras),
// integer-valued, and constant for the lifetime of the process; the
// accessors hand out fresh copies so callers can never mutate the source.

package cartan

import "gonum.org/v1/gonum/mat"

// Ranks of the two root systems.
const (
	E6Rank = 6
	E7Rank = 7
)

// e6Data is the E6 Cartan matrix ⟨αᵢ, αⱼ∨⟩, row-major.
var e6Data = []float64{
	2, 0, -1, 0, 0, 0,
	0, 2, 0, -1, 0, 0,
	-1, 0, 2, -1, 0, 0,
	0, -1, -1, 2, -1, 0,
	0, 0, 0, -1, 2, -1,
	0, 0, 0, 0, -1, 2,
}

// e7Data is the E7 Cartan matrix, extending the E6 chain by one node.
var e7Data = []float64{
	2, 0, -1, 0, 0, 0, 0,
	0, 2, 0, -1, 0, 0, 0,
	-1, 0, 2, -1, 0, 0, 0,
	0, -1, -1, 2, -1, 0, 0,
	0, 0, 0, -1, 2, -1, 0,
	0, 0, 0, 0, -1, 2, -1,
	0, 0, 0, 0, 0, -1, 2,
}

// E6 returns a fresh copy of the E6 Cartan matrix.
func E6() *mat.SymDense {
	data := make([]float64, len(e6Data))
	copy(data, e6Data)

	return mat.NewSymDense(E6Rank, data)
}

// E7 returns a fresh copy of the E7 Cartan matrix.
func E7() *mat.SymDense {
	data := make([]float64, len(e7Data))
	copy(data, e7Data)

	return mat.NewSymDense(E7Rank, data)
}
