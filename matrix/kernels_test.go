// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the universal kernels.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
)

// ---------- Add / Sub ----------

func TestAdd_FastPath_Correctness(t *testing.T) {
	t.Parallel()

	const rows, cols = 4, 4
	A := MustDense(t, rows, cols)
	B := MustDense(t, rows, cols)

	// A[i,j] = i+j; B[i,j] = 10 - (i+j) → sum is a constant 10.
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			MustSet(t, A, i, j, float64(i+j))
			MustSet(t, B, i, j, float64(10-(i+j)))
		}
	}

	S, err := matrix.Add(A, B)
	if err != nil {
		t.Fatalf("matrix.Add: %v", err)
	}
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if got := MustAt(t, S, i, j); got != 10.0 {
				t.Fatalf("at [%d,%d]: want 10, got %g", i, j, got)
			}
		}
	}
}

// TestAdd_Fallback_MatchesFastPath hides one operand's concrete type to force
// the interface path and asserts both paths agree elementwise.
func TestAdd_Fallback_MatchesFastPath(t *testing.T) {
	t.Parallel()

	A := MustDense(t, 3, 5)
	B := MustDense(t, 3, 5)
	RandomFill(t, A, 101)
	RandomFill(t, B, 202)

	fast, err := matrix.Add(A, B)
	if err != nil {
		t.Fatalf("Add(fast): %v", err)
	}
	slow, err := matrix.Add(hide{A}, B)
	if err != nil {
		t.Fatalf("Add(fallback): %v", err)
	}

	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 5; j++ {
			if MustAt(t, fast, i, j) != MustAt(t, slow, i, j) {
				t.Fatalf("paths disagree at [%d,%d]", i, j)
			}
		}
	}
}

func TestSub_Correctness(t *testing.T) {
	t.Parallel()

	A := MustFromRows(t, [][]float64{{5, 7}, {9, 11}})
	B := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	D, err := matrix.Sub(A, B)
	if err != nil {
		t.Fatalf("matrix.Sub: %v", err)
	}
	CompareClose(t, [][]float64{{4, 5}, {6, 7}}, D, 0)
}

func TestAddSub_ShapeMismatch(t *testing.T) {
	t.Parallel()

	A := MustDense(t, 2, 3)
	B := MustDense(t, 3, 2)
	if _, err := matrix.Add(A, B); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("Add shape mismatch: want ErrDimensionMismatch, got %v", err)
	}
	if _, err := matrix.Sub(nil, B); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("Sub nil operand: want ErrNilMatrix, got %v", err)
	}
}

// ---------- Mul ----------

func TestMul_Known2x3x2(t *testing.T) {
	t.Parallel()

	A := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	B := MustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	C, err := matrix.Mul(A, B)
	if err != nil {
		t.Fatalf("matrix.Mul: %v", err)
	}
	CompareClose(t, [][]float64{{58, 64}, {139, 154}}, C, 0)
}

func TestMul_Fallback_MatchesFastPath(t *testing.T) {
	t.Parallel()

	A := MustDense(t, 4, 3)
	B := MustDense(t, 3, 5)
	RandomFill(t, A, 7)
	RandomFill(t, B, 8)

	fast, err := matrix.Mul(A, B)
	if err != nil {
		t.Fatalf("Mul(fast): %v", err)
	}
	slow, err := matrix.Mul(hide{A}, hide{B})
	if err != nil {
		t.Fatalf("Mul(fallback): %v", err)
	}

	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 5; j++ {
			d := MustAt(t, fast, i, j) - MustAt(t, slow, i, j)
			if d > 1e-15 || d < -1e-15 {
				t.Fatalf("paths disagree at [%d,%d] by %g", i, j, d)
			}
		}
	}
}

func TestMul_InnerMismatch(t *testing.T) {
	t.Parallel()

	A := MustDense(t, 2, 3)
	B := MustDense(t, 2, 3)
	if _, err := matrix.Mul(A, B); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
}

// ---------- Transpose / Scale / MatVec ----------

func TestTranspose(t *testing.T) {
	t.Parallel()

	A := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	T, err := matrix.Transpose(A)
	if err != nil {
		t.Fatalf("matrix.Transpose: %v", err)
	}
	CompareClose(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, T, 0)

	// Transposing twice restores the original.
	TT, err := matrix.Transpose(T)
	if err != nil {
		t.Fatalf("matrix.Transpose (second): %v", err)
	}
	CompareClose(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, TT, 0)
}

func TestScale(t *testing.T) {
	t.Parallel()

	A := MustFromRows(t, [][]float64{{1, -2}, {0.5, 4}})
	S, err := matrix.Scale(A, -2)
	if err != nil {
		t.Fatalf("matrix.Scale: %v", err)
	}
	CompareClose(t, [][]float64{{-2, 4}, {-1, -8}}, S, 0)

	// Scaling by zero yields an explicit zero matrix of the same shape.
	Z, err := matrix.Scale(A, 0)
	if err != nil {
		t.Fatalf("matrix.Scale(0): %v", err)
	}
	CompareClose(t, [][]float64{{0, 0}, {0, 0}}, Z, 0)
}

func TestMatVec(t *testing.T) {
	t.Parallel()

	A := MustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	y, err := matrix.MatVec(A, []float64{1, -1})
	if err != nil {
		t.Fatalf("matrix.MatVec: %v", err)
	}
	want := []float64{-1, -1, -1}
	for i := range want {
		if y[i] != want[i] {
			t.Fatalf("y[%d]: want %g, got %g", i, want[i], y[i])
		}
	}

	// Length mismatch is rejected.
	if _, err = matrix.MatVec(A, []float64{1, 2, 3}); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
}
