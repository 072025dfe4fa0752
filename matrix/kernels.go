// SPDX-License-Identifier: MIT
// Package matrix: universal kernels over any Matrix implementation —
// element-wise addition and subtraction, matrix multiplication, transpose,
// scalar scaling and matrix-vector product. All kernels perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Each kernel has a *Dense fast-path over flat storage and a generic
//     At/Set fallback with a fixed i→j traversal.
//   - All kernels use the central validators and wrap sentinels with an
//     operation tag via matrixErrorf.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot-product style loops.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping (no magic strings).
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opMatVec      = "MatVec"
	opEigen       = "Eigen"
	opLU          = "LU"
	opInverse     = "Inverse"
	opCholeskySPD = "CholeskySPD"
	opInverseSPD  = "InverseSPD"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// sentinel for errors.Is/errors.As. Call only with non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// atErrorf annotates an element-access failure on the generic fallback path.
func atErrorf(tag, method string, i, j int, err error) error {
	return matrixErrorf(tag, fmt.Errorf("%s(%d,%d): %w", method, i, j, err))
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands
// are not mutated. Internal helper for Add/Sub to share validation,
// allocation and the fast-path.
//
// Blueprint:
//
//	Stage 1 (Validate): ValidateBinarySameShape(a, b); allocate Dense(r, c).
//	Stage 2 (Execute): flat 0..n-1 loop when both are *Dense, otherwise
//	                   At/Set with fixed i→j order.
//
// Complexity: O(r*c) time, O(r*c) memory for the result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := rows * cols
			for idx := 0; idx < n; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, atErrorf(opTag, "At", i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, atErrorf(opTag, "At", i, j, err)
			}
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, atErrorf(opTag, "Set", i, j, err)
			}
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Blueprint:
//
//	Stage 1 (Validate): ValidateMulCompatible(a, b); allocate Dense(r, c).
//	Stage 2 (Execute): i→k→j with row-major strides and zero-skip when both
//	                   operands are *Dense; i→j→k fallback otherwise.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
// Determinism: fixed loop orders; identical inputs give identical results.
// Complexity: O(r*n*c) time, O(r*c) memory.
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices: row-major accumulation into res.data.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var baseA, baseB, baseR int
			for i = 0; i < aRows; i++ {
				baseA = i * aCols
				baseR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[baseA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					baseB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[baseR+j] += av * db.data[baseB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i→j→k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, atErrorf(opMul, "At", i, k, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, atErrorf(opMul, "At", k, j, err)
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, atErrorf(opMul, "Set", i, j, err)
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The input is validated non-nil and never mutated.
// Errors: ErrNilMatrix. Complexity: O(r*c) time and memory.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast-path: data[i*cols+j] → res.data[j*rows+i].
	var i, j int
	if dm, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[base+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(opTranspose, "At", i, j, err)
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, atErrorf(opTranspose, "Set", j, i, err)
			}
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// NaN/Inf in alpha propagate; the input is never mutated.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast-path: single flat multiply.
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(opScale, "At", i, j, err)
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, atErrorf(opScale, "Set", i, j, err)
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x of length m.Cols().
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: O(r*c) time, O(r) memory for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv float64
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				xv = x[j]
				if xv != 0 { // skip zero multiplications
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, atErrorf(opMatVec, "At", i, j, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}
