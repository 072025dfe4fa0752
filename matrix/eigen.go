// SPDX-License-Identifier: MIT

// Package matrix: eigen decomposition of symmetric matrices via classical
// Jacobi rotations with a deterministic largest-off-diagonal pivot scan.

package matrix

import "math"

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix.
//
// Blueprint:
//
//	Stage 1 (Validate): non-nil, square, symmetric within tol; materialize
//	                    a flat working copy A and an identity accumulator Q.
//	Stage 2 (Execute): repeatedly pick (p,q) with the largest |A[p,q]| in
//	                   fixed i→j order and apply a Jacobi rotation to A and Q
//	                   until every off-diagonal entry drops below tol.
//
// Inputs:
//   - m: symmetric Matrix (within tol); n := m.Rows().
//   - tol: convergence threshold (typ. 1e-9..1e-12 for float64).
//   - maxIter: safety cap on rotations.
//
// Returns the eigenvalues (diagonal of the rotated matrix, in the order the
// sweeps leave them) and the matrix Q whose columns are eigenvectors.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry,
// ErrEigenFailed (off-diagonal mass still ≥ tol after maxIter rotations).
// Determinism: fixed pivot scan and update order → stable results.
// Complexity: O(maxIter·n²) pivot scans plus O(n) work per rotation.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	// Validate: notNil, square, symmetric within tol.
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	// Working copy A and identity accumulator Q.
	a, err := denseCopy(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := m.Rows()
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	for i := 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	var (
		iter, i, j, p, pq int
		maxOff, off       float64
		app, aqq, apq     float64
		aip, aiq          float64
		theta, t, c, s    float64
	)
	for iter = 0; iter < maxIter; iter++ {
		// Pivot: largest |A[p,q]| over the upper triangle, fixed i→j scan.
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(a.data[i*n+j])
				if off > maxOff {
					maxOff, p, pq = off, i, j
				}
			}
		}
		if maxOff < tol {
			break // converged
		}
		j = pq

		// Rotation parameters from A[p,p], A[j,j], A[p,j].
		app = a.data[p*n+p]
		aqq = a.data[j*n+j]
		apq = a.data[p*n+j]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// Apply the rotation to A, keeping symmetry explicit.
		for i = 0; i < n; i++ {
			if i == p || i == j {
				continue
			}
			aip = a.data[i*n+p]
			aiq = a.data[i*n+j]
			a.data[i*n+p], a.data[p*n+i] = c*aip-s*aiq, c*aip-s*aiq
			a.data[i*n+j], a.data[j*n+i] = s*aip+c*aiq, s*aip+c*aiq
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[j*n+j] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+j], a.data[j*n+p] = 0, 0

		// Accumulate the rotation into Q.
		for i = 0; i < n; i++ {
			aip = q.data[i*n+p]
			aiq = q.data[i*n+j]
			q.data[i*n+p] = c*aip - s*aiq
			q.data[i*n+j] = s*aip + c*aiq
		}
	}

	// Final convergence check over the upper triangle.
	maxOff = 0
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			off = math.Abs(a.data[i*n+j])
			if off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	// Eigenvalues are the diagonal of the rotated matrix.
	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}
