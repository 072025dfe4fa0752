// Package geninv: rank-revealing full-rank Cholesky factorization and the
// pseudoinverse dispatcher built on top of it.
package geninv

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/matrix"
)

// machEps is the float64 machine epsilon, computed through the classic
// 7/3 − 4/3 − 1 identity so the constant tracks the arithmetic actually
// performed rather than a hand-copied literal.
const machEps = float64(7)/3 - float64(4)/3 - 1.0

// Operation name constants for unified error wrapping.
const (
	opFactor = "FullRankCholesky"
	opGeninv = "Geninv"
)

// geninvErrorf wraps err with an operation tag, preserving the underlying
// sentinel for errors.Is. Call only with non-nil err.
func geninvErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// FullRankCholesky computes the full-rank Cholesky factorization of a
// symmetric positive-semidefinite N×N matrix A, returning a factor L of
// shape N×rank with A ≈ L·Lᵗ, together with the numerically determined
// rank.
//
// Unlike the strict matrix.CholeskySPD, columns whose pivot falls below the
// internal tolerance are skipped entirely rather than treated as an error:
// the factor contains exactly one column per independent direction, so its
// columns are always linearly independent and Lᵗ·L is always invertible.
// Columns are tested in index order and the first independent set wins;
// the greedy scan is deterministic and reproducible, but the retained set
// depends on column order (it is not a canonical basis choice).
//
// Contract: A must be symmetric PSD. This is a precondition, not a runtime
// check — the routine never validates definiteness, and a non-PSD input
// produces a deterministic but meaningless factor. Errors are returned only
// for malformed calls (nil or non-square input).
//
// Edge case: when every pivot is rejected (e.g. the zero matrix) the rank
// is 0 and the returned factor is nil — an N×0 matrix is not representable
// here, so callers must branch on the rank first, exactly as Geninv does.
//
// Blueprint:
//
//	Stage 1 (Validate): non-nil, square.
//	Stage 2 (Prepare): tolerance = machEps·N·max(diag(A)), evaluated once;
//	                   a full N×N working buffer for accepted columns.
//	Stage 3 (Execute): for each column j, form the candidate
//	                   c = A(j.., j) − L(j.., 0..r)·L(j, 0..r)ᵗ; accept when
//	                   the pivot c(j) exceeds the tolerance, else skip.
//	Stage 4 (Finalize): copy the first r buffer columns into an N×r Dense.
//
// Determinism: fixed j→i→k loop order, single tolerance evaluation.
// Complexity: O(N²·rank) time, O(N²) memory for the working buffer.
func FullRankCholesky(a matrix.Matrix) (matrix.Matrix, int, error) {
	// Validate the call shape; definiteness stays a caller contract.
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, 0, geninvErrorf(opFactor, err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, 0, geninvErrorf(opFactor, err)
	}

	n := a.Rows()

	// Rank-decision threshold, evaluated once from the scale of A.
	// Too tight keeps near-singular directions (amplifying noise in the
	// inverse); too loose discards genuine rank. machEps·N·maxDiag is the
	// standard numerically-stable middle ground.
	var maxDiag, v float64
	var j int
	for j = 0; j < n; j++ {
		v, _ = a.At(j, j) // indices valid after ValidateSquare
		if v > maxDiag {
			maxDiag = v
		}
	}
	tol := machEps * float64(n) * maxDiag

	// Working buffer sized for the worst case (full rank); columns beyond
	// the final rank stay zero and are dropped at the end. Exclusive and
	// scoped to this call, so in-place accumulation has no aliasing.
	l := make([]float64, n*n)
	c := make([]float64, n) // candidate column workspace
	var i, k, r int
	var sum, pivot float64
	for j = 0; j < n; j++ {
		// Candidate column: subtract the contribution of every previously
		// accepted factor column from A(j..n-1, j).
		for i = j; i < n; i++ {
			v, _ = a.At(i, j)
			sum = 0
			for k = 0; k < r; k++ {
				sum += l[i*n+k] * l[j*n+k]
			}
			c[i] = v - sum
		}

		// Pivot rejection is the rank decision: a sub-tolerance pivot means
		// column j is linearly dependent on the accepted ones, and skipping
		// it is what keeps the factor's columns independent — the routine
		// never divides by a near-zero pivot.
		pivot = c[j]
		if pivot <= tol {
			continue
		}

		l[j*n+r] = math.Sqrt(pivot)
		for i = j + 1; i < n; i++ {
			l[i*n+r] = c[i] / l[j*n+r]
		}
		r++
	}

	// All pivots rejected: empty factor, rank 0.
	if r == 0 {
		return nil, 0, nil
	}

	// Truncate the buffer to the detected rank.
	out, err := matrix.NewDense(n, r)
	if err != nil {
		return nil, 0, geninvErrorf(opFactor, err)
	}
	for i = 0; i < n; i++ {
		for k = 0; k < r; k++ {
			_ = out.Set(i, k, l[i*n+k]) // indices in range by construction
		}
	}

	return out, r, nil
}

// Geninv computes the Moore-Penrose pseudoinverse of an M×N matrix G of
// arbitrary rank. The result has shape N×M and satisfies the four
// Moore-Penrose conditions to numerical tolerance.
//
// The routine factors whichever Gram matrix is smaller — G·Gᵗ (M×M) when
// M ≤ N, Gᵗ·G (N×N) otherwise — via FullRankCholesky, then assembles
//
//	X = Gᵗ·L·Y·Y·Lᵗ   (M ≤ N)
//	X = L·Y·Y·Lᵗ·Gᵗ   (M > N)
//
// with Y = (Lᵗ·L)⁻¹. The shape branch is purely a cost optimization; both
// formulations are mathematically equivalent. The double application of Y
// is the Courrieu (2008) closed form that expresses the pseudoinverse
// through the low-rank factor and a single small r×r inversion.
//
// Lᵗ·L is symmetric positive-definite by the rank contract of
// FullRankCholesky, so the matrix.InverseSPD sub-step cannot fail; a rank
// of 0 (the all-zero input) short-circuits to the all-zero N×M result.
//
// Errors: only for malformed calls (nil input) or internal propagation;
// rank deficiency and singularity are normal inputs, never errors.
// Complexity: O(min(M,N)²·max(M,N)) dominated by the Gram product.
func Geninv(g matrix.Matrix) (matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(g); err != nil {
		return nil, geninvErrorf(opGeninv, err)
	}

	m, n := g.Rows(), g.Cols()
	gt, err := matrix.Transpose(g)
	if err != nil {
		return nil, geninvErrorf(opGeninv, err)
	}

	// Factor the smaller Gram matrix; both are symmetric PSD by
	// construction, meeting the FullRankCholesky contract.
	var gram matrix.Matrix
	if m <= n {
		gram, err = matrix.Mul(g, gt) // M×M
	} else {
		gram, err = matrix.Mul(gt, g) // N×N
	}
	if err != nil {
		return nil, geninvErrorf(opGeninv, err)
	}

	l, rank, err := FullRankCholesky(gram)
	if err != nil {
		return nil, geninvErrorf(opGeninv, err)
	}

	// Rank 0 ⇒ G is the zero matrix and 0⁺ is the zero matrix of the
	// transposed shape.
	if rank == 0 {
		zero, zerr := matrix.NewDense(n, m)
		if zerr != nil {
			return nil, geninvErrorf(opGeninv, zerr)
		}

		return zero, nil
	}

	lt, err := matrix.Transpose(l)
	if err != nil {
		return nil, geninvErrorf(opGeninv, err)
	}
	ltl, err := matrix.Mul(lt, l) // r×r, SPD by the rank contract
	if err != nil {
		return nil, geninvErrorf(opGeninv, err)
	}
	y, err := matrix.InverseSPD(ltl)
	if err != nil {
		return nil, geninvErrorf(opGeninv, err)
	}

	// Assemble the Courrieu closed form for the branch taken.
	var x matrix.Matrix
	if m <= n {
		x, err = mulChain(gt, l, y, y, lt)
	} else {
		x, err = mulChain(l, y, y, lt, gt)
	}
	if err != nil {
		return nil, geninvErrorf(opGeninv, err)
	}

	return x, nil
}

// mulChain folds matrix.Mul left to right over its arguments.
// Left-to-right association keeps every intermediate in both Geninv
// branches no larger than the final N×M result.
func mulChain(ms ...matrix.Matrix) (matrix.Matrix, error) {
	acc := ms[0]
	var err error
	for _, m := range ms[1:] {
		if acc, err = matrix.Mul(acc, m); err != nil {
			return nil, err
		}
	}

	return acc, nil
}
