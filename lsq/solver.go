package lsq

import (
	"math"

	"github.com/katalvlaran/linalg/matrix"
)

// degenerateTol is the pivot threshold below which a column (during
// factorization) or a diagonal of R (during back-substitution) is treated
// as vanished. Factorization stops early; Solve returns the zero vector.
const degenerateTol = 1e-8

// Operation name constants for unified error wrapping.
const (
	opNewSolver = "NewSolver"
	opQtb       = "Qtb"
	opSolve     = "Solve"
)

// Solver holds the Householder QR decomposition of an M×N matrix with
// M ≥ N. The upper triangle of qr is R; below the diagonal sit the packed
// reflector tails, scaled by the coefficients in tau. Immutable after
// construction.
type Solver struct {
	m, n int
	qr   []float64
	tau  []float64
}

// NewSolver copies a and runs the QR decomposition in place.
//
// The decomposition does not check rank: a (numerically) rank-deficient
// column stops the factorization early, and the degenerate policy of
// Solve takes over. Errors: matrix.ErrNilMatrix, ErrUnderdetermined.
//
// Blueprint:
//
//	Stage 1 (Validate): non-nil, M ≥ N.
//	Stage 2 (Prepare): copy a into a flat working buffer.
//	Stage 3 (Execute): for each column j build the Householder reflector
//	                   annihilating the subdiagonal, store its tail below
//	                   the diagonal and its coefficient in tau, and apply
//	                   it to the trailing columns.
//
// Complexity: O(M·N²) time, O(M·N) memory.
func NewSolver(a matrix.Matrix) (*Solver, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, lsqErrorf(opNewSolver, err)
	}
	m, n := a.Rows(), a.Cols()
	if m < n {
		return nil, lsqErrorf(opNewSolver, ErrUnderdetermined)
	}

	s := &Solver{
		m:   m,
		n:   n,
		qr:  make([]float64, m*n),
		tau: make([]float64, n),
	}

	// Stage 2: flatten the input; At after shape validation cannot fail.
	var i, j, k int
	var v float64
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			v, _ = a.At(i, j)
			s.qr[i*n+j] = v
		}
	}

	// Stage 3: column-by-column Householder elimination.
	w := make([]float64, m)
	for j = 0; j < n; j++ {
		// Norm of the active column segment qr[j..m-1, j].
		var normx float64
		for i = j; i < m; i++ {
			v = s.qr[i*n+j]
			normx += v * v
		}
		normx = math.Sqrt(normx)

		// Sign chosen opposite the pivot to avoid cancellation in u1.
		sign := 1.0
		if s.qr[j*n+j] > 0 {
			sign = -1.0
		}
		u1 := s.qr[j*n+j] - sign*normx

		// A vanished column also vanishes u1; stop factoring here and let
		// the degenerate policy of Solve handle the zero diagonal.
		if normx < degenerateTol {
			break
		}

		// Reflector tail, normalized so w[0] = 1 and the tail packs into
		// the subdiagonal of the working buffer.
		w[0] = 1.0
		for i = j + 1; i < m; i++ {
			w[i-j] = s.qr[i*n+j] / u1
			s.qr[i*n+j] = w[i-j]
		}
		s.qr[j*n+j] = sign * normx
		s.tau[j] = -sign * u1 / normx

		// Apply the reflector to the trailing columns.
		for k = j + 1; k < n; k++ {
			var tmp float64
			for i = j; i < m; i++ {
				tmp += w[i-j] * s.qr[i*n+k]
			}
			for i = j; i < m; i++ {
				s.qr[i*n+k] -= s.tau[j] * w[i-j] * tmp
			}
		}
	}

	return s, nil
}

// Qtb applies the stored reflectors to b, returning Qᵗ·b without forming
// Q. The first N entries of the result are the right-hand side of the
// triangular system R·x = Qᵗ·b; the remaining M−N entries carry the
// residual. Errors: matrix.ErrDimensionMismatch when len(b) ≠ M.
func (s *Solver) Qtb(b []float64) ([]float64, error) {
	if len(b) != s.m {
		return nil, lsqErrorf(opQtb, matrix.ErrDimensionMismatch)
	}

	q := make([]float64, s.m)
	copy(q, b)

	var i, j int
	w := make([]float64, s.m)
	for j = 0; j < s.n; j++ {
		w[0] = 1.0
		for i = j + 1; i < s.m; i++ {
			w[i-j] = s.qr[i*s.n+j]
		}

		var tmp float64
		for i = j; i < s.m; i++ {
			tmp += w[i-j] * q[i]
		}
		for i = j; i < s.m; i++ {
			q[i] -= s.tau[j] * w[i-j] * tmp
		}
	}

	return q, nil
}

// Solve finds the least-squares solution of A·x = b by back-substituting
// R·x = Qᵗ·b.
//
// Degenerate policy: when a diagonal of R falls below the internal
// tolerance the system has no unique least-squares solution; Solve then
// returns the zero vector of length N with a nil error, mirroring the
// behavior of the factorization cutoff. Errors:
// matrix.ErrDimensionMismatch when len(b) ≠ M.
func (s *Solver) Solve(b []float64) ([]float64, error) {
	q, err := s.Qtb(b)
	if err != nil {
		return nil, lsqErrorf(opSolve, matrix.ErrDimensionMismatch)
	}

	x := make([]float64, s.n)
	for i := s.n - 1; i >= 0; i-- {
		x[i] = q[i]
		for r := i + 1; r < s.n; r++ {
			x[i] -= s.qr[i*s.n+r] * x[r]
		}
		if math.Abs(s.qr[i*s.n+i]) < degenerateTol {
			for z := range x {
				x[z] = 0.0
			}
			break
		}
		x[i] /= s.qr[i*s.n+i]
	}

	return x, nil
}
