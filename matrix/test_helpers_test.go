// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep all data finite and well-formed so numeric policy never interferes.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
)

// hide wraps any Matrix to mask its concrete type from type assertions.
// Use hide{X} in tests to force the interface fallback paths in kernels;
// keep the other operand a *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a *Dense from row slices or fails the test.
func MustFromRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		tb.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes m(i,j)=v or fails the test.
func MustSet(tb testing.TB, m matrix.Matrix, i, j int, v float64) {
	tb.Helper()
	if err := m.Set(i, j, v); err != nil {
		tb.Fatalf("Set(%d,%d,%g): %v", i, j, v, err)
	}
}

// CompareClose asserts got[i,j] ≈ want[i,j] within tol for every element.
func CompareClose(tb testing.TB, want [][]float64, got matrix.Matrix, tol float64) {
	tb.Helper()
	if got.Rows() != len(want) || got.Cols() != len(want[0]) {
		tb.Fatalf("shape mismatch: want %dx%d, got %dx%d",
			len(want), len(want[0]), got.Rows(), got.Cols())
	}
	var i, j int
	var v float64
	for i = 0; i < got.Rows(); i++ {
		for j = 0; j < got.Cols(); j++ {
			v = MustAt(tb, got, i, j)
			if math.Abs(v-want[i][j]) > tol {
				tb.Fatalf("element [%d,%d]: want %g, got %g (tol %g)", i, j, want[i][j], v, tol)
			}
		}
	}
}

// RandomFill fills m with deterministic pseudo-random values in [-1, 1).
func RandomFill(tb testing.TB, m matrix.Matrix, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			MustSet(tb, m, i, j, 2*rng.Float64()-1)
		}
	}
}
