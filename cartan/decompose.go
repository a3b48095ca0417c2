// SPDX-License-Identifier: MIT
// Package cartan: eigen-decomposition and basis embedding.

package cartan

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEigenFailed indicates that the symmetric eigensolver failed to
	// converge on a Cartan matrix.
	ErrEigenFailed = errors.New("cartan: eigen decomposition failed")

	// ErrNilMatrix indicates a nil matrix operand.
	ErrNilMatrix = errors.New("cartan: nil matrix")

	// ErrBadShape indicates an embedding target smaller than its source.
	ErrBadShape = errors.New("cartan: embedding target smaller than source")
)

// Decomposition holds the spectrum of one Cartan matrix: eigenvalues in
// ascending order and the matching eigenvectors as columns of Vectors.
// Immutable once computed.
type Decomposition struct {
	Values  []float64
	Vectors *mat.Dense
}

// Decompose runs the symmetric eigensolver on a. Eigenvalues come back
// sorted ascending with eigenvector columns in matching order — the
// ordering contract the downstream embedding relies on.
func Decompose(a *mat.SymDense) (*Decomposition, error) {
	// 1. Validate input.
	if a == nil {
		return nil, fmt.Errorf("Decompose: %w", ErrNilMatrix)
	}

	// 2. Factorize with eigenvectors requested.
	var eig mat.EigenSym
	if !eig.Factorize(a, true) {
		return nil, fmt.Errorf("Decompose: %w", ErrEigenFailed)
	}

	// 3. Extract values (ascending) and the matching vector columns.
	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	return &Decomposition{Values: values, Vectors: &vectors}, nil
}

// Embed zero-pads src into a size×size matrix: src occupies the top-left
// block, every other entry is exactly zero. size must be at least as large
// as both source dimensions.
func Embed(src *mat.Dense, size int) (*mat.Dense, error) {
	// 1. Validate operands.
	if src == nil {
		return nil, fmt.Errorf("Embed: %w", ErrNilMatrix)
	}
	r, c := src.Dims()
	if size < r || size < c {
		return nil, fmt.Errorf("Embed(%d×%d into %d): %w", r, c, size, ErrBadShape)
	}

	// 2. Copy the block; NewDense starts zeroed, so padding is implicit.
	out := mat.NewDense(size, size, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, src.At(i, j))
		}
	}

	return out, nil
}
