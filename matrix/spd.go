// SPDX-License-Identifier: MIT

// Package matrix: strict Cholesky factorization and inversion for symmetric
// positive-definite (SPD) input. "Strict" means full rank is required: a
// non-positive pivot is an error here, never a skipped column. The
// rank-revealing variant that tolerates semidefinite input lives in the
// geninv package.

package matrix

import "math"

// spdPivotTol guards the Cholesky square root: a diagonal pivot at or below
// this value marks the input as not positive definite. Kept at exact zero so
// that the definiteness decision is the caller's tolerance policy, not ours.
const spdPivotTol = 0.0

// CholeskySPD computes the lower-triangular factor L with A = L·Lᵗ for a
// symmetric positive-definite matrix A.
//
// Contract: A must be symmetric; only the lower triangle (j ≤ i) is read,
// so mild asymmetry from floating-point noise in the upper triangle is
// ignored rather than rejected.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNotSPD (pivot ≤ 0).
// Determinism: fixed column-by-column order.
// Complexity: O(n³) time, O(n²) memory.
func CholeskySPD(m Matrix) (Matrix, error) {
	// Validate input non-nil and square
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCholeskySPD, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCholeskySPD, err)
	}

	// Materialize once; inner loops run on flat storage.
	a, err := denseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opCholeskySPD, err)
	}

	n := m.Rows()
	l, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCholeskySPD, err)
	}

	var i, j, k int
	var sum, pivot float64
	var baseI, baseJ int
	for j = 0; j < n; j++ {
		// Diagonal entry: pivot = A[j,j] - Σ_{k<j} L[j,k]².
		baseJ = j * n
		sum = ZeroSum
		for k = 0; k < j; k++ {
			sum += l.data[baseJ+k] * l.data[baseJ+k]
		}
		pivot = a.data[baseJ+j] - sum
		if pivot <= spdPivotTol {
			return nil, matrixErrorf(opCholeskySPD, ErrNotSPD)
		}
		l.data[baseJ+j] = math.Sqrt(pivot)

		// Sub-diagonal entries of column j.
		for i = j + 1; i < n; i++ {
			baseI = i * n
			sum = ZeroSum
			for k = 0; k < j; k++ {
				sum += l.data[baseI+k] * l.data[baseJ+k]
			}
			l.data[baseI+j] = (a.data[baseI+j] - sum) / l.data[baseJ+j]
		}
	}

	return l, nil
}

// InverseSPD computes A⁻¹ for a symmetric positive-definite matrix via
// Cholesky factorization and per-column triangular solves. This is the
// inversion primitive the geninv dispatcher applies to its small r×r Gram
// matrix, which is full-rank by construction and so never trips ErrNotSPD.
//
// Blueprint:
//
//	Stage 1 (Factor): A = L·Lᵗ via CholeskySPD (carries all validation).
//	Stage 2 (Execute): for each basis column e_col solve L·y = e_col
//	                   (top-down), then Lᵗ·x = y (bottom-up, reading L
//	                   column-wise instead of materializing Lᵗ).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNotSPD.
// Complexity: O(n³) time, O(n²) memory.
func InverseSPD(m Matrix) (Matrix, error) {
	lm, err := CholeskySPD(m)
	if err != nil {
		return nil, matrixErrorf(opInverseSPD, err)
	}
	l := lm.(*Dense) // CholeskySPD always returns *Dense

	n := l.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverseSPD, err)
	}

	var col, i, k int
	var sum float64
	y := make([]float64, n) // forward-substitution workspace
	x := make([]float64, n) // backward-substitution workspace
	for col = 0; col < n; col++ {
		// Forward: L·y = e_col with a non-unit lower-triangular L.
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[i*n+k] * y[k]
			}
			if i == col {
				y[i] = (1.0 - sum) / l.data[i*n+i]
			} else {
				y[i] = -sum / l.data[i*n+i]
			}
		}
		// Backward: Lᵗ·x = y, reading L[k,i] for the row i of Lᵗ.
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				sum += l.data[k*n+i] * x[k]
			}
			x[i] = (y[i] - sum) / l.data[i*n+i]
		}
		// Column col of the inverse.
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
