// SPDX-License-Identifier: MIT

// Package matrix: Doolittle LU factorization and the general inverse built
// on top of it. No pivoting by design: deterministic, reproducible results
// in exchange for requiring non-zero pivots from the caller's data.

package matrix

// ZeroPivot is the sentinel value for detecting a zero pivot in LU/Inverse.
const ZeroPivot = 0.0

// LU computes the Doolittle factorization A = L*U with unit diagonal on L.
//
// Blueprint:
//
//	Stage 1 (Validate): non-nil, square; materialize a flat working copy.
//	Stage 2 (Execute): for i=0..n-1 build row i of U, then column i of L,
//	                   guarding each diagonal pivot against zero.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular (U[i,i] == 0).
// Determinism: fixed i→{j≥i} for U, then {j>i}→i for L.
// Complexity: O(n³) time, O(n²) memory.
func LU(m Matrix) (Matrix, Matrix, error) {
	// Validate input non-nil and square
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Materialize the input once; all inner loops run on flat storage.
	a, err := denseCopy(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Allocate L and U, unit diagonal on L
	n := m.Rows()
	l, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	u, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	for i := 0; i < n; i++ {
		l.data[i*n+i] = 1.0
	}

	var i, j, k int
	var sum, pivot float64
	var baseI, baseJ int
	for i = 0; i < n; i++ {
		// Row i of U: U[i,j] = A[i,j] - Σ_{k<i} L[i,k]·U[k,j] for j ≥ i.
		baseI = i * n
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[baseI+k] * u.data[k*n+j]
			}
			u.data[baseI+j] = a.data[baseI+j] - sum
		}

		// Zero-pivot guard (deterministic singularity detection).
		pivot = u.data[baseI+i]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// Column i of L: L[j,i] = (A[j,i] - Σ_{k<i} L[j,k]·U[k,i]) / U[i,i].
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += l.data[baseJ+k] * u.data[k*n+i]
			}
			l.data[baseJ+i] = (a.data[baseJ+i] - sum) / pivot
		}
	}

	return l, u, nil
}

// forwardSubstUnitLower solves L·y = e_col for a unit-lower-triangular L,
// where e_col is the canonical basis vector with 1 at index col.
// Writes into the caller-provided workspace y. Top-down, deterministic.
func forwardSubstUnitLower(l *Dense, col int, y []float64) {
	n := l.r
	var i, k, base int
	var sum float64
	for i = 0; i < n; i++ {
		sum = ZeroSum
		base = i * n
		for k = 0; k < i; k++ {
			sum += l.data[base+k] * y[k]
		}
		if i == col {
			y[i] = 1.0 - sum
		} else {
			y[i] = -sum
		}
	}
}

// backSubstUpper solves U·x = y for an upper-triangular U, bottom-up.
// Returns ErrSingular on a zero diagonal pivot.
func backSubstUpper(u *Dense, y, x []float64) error {
	n := u.r
	var i, k, base int
	var sum, pivot float64
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		base = i * n
		for k = i + 1; k < n; k++ {
			sum += u.data[base+k] * x[k]
		}
		pivot = u.data[base+i]
		if pivot == ZeroPivot {
			return ErrSingular
		}
		x[i] = (y[i] - sum) / pivot
	}

	return nil
}

// Inverse computes A⁻¹ via LU factorization and per-column triangular solves.
//
// Blueprint:
//
//	Stage 1 (Validate): delegated to LU (non-nil, square, non-zero pivots).
//	Stage 2 (Execute): for each basis column e_col solve L·y = e_col then
//	                   U·x = y and write x into column col of the result.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
// Determinism: fixed traversal and no pivoting → identical results for
// identical inputs.
// Complexity: O(n³) time, O(n²) memory.
//
// Notes:
//   - Numerical stability is the caller's concern: no pivoting means
//     ill-conditioned input should be scaled or avoided upstream.
//   - For symmetric positive-definite input prefer InverseSPD.
func Inverse(m Matrix) (Matrix, error) {
	// Factor first; LU carries all input validation.
	lm, um, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	l, u := lm.(*Dense), um.(*Dense) // LU always returns *Dense factors

	n := l.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var col, i int
	y := make([]float64, n) // forward-substitution workspace
	x := make([]float64, n) // backward-substitution workspace
	for col = 0; col < n; col++ {
		forwardSubstUnitLower(l, col, y)
		if err = backSubstUpper(u, y, x); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
