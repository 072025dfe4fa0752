// Package lsq solves overdetermined linear systems A·x = b in the
// least-squares sense through a Householder QR decomposition.
//
// The entry point is Solver: factor an M×N matrix with M ≥ N once, then
// solve for many right-hand sides.
//   - NewSolver runs the QR decomposition, storing the Householder
//     reflectors packed below the diagonal of the working copy with the
//     scaling coefficients in a separate tau vector; no explicit Q is
//     ever formed.
//   - Qtb applies the reflectors to a vector, yielding Qᵗ·b. Exposed
//     because R·x = Qᵗ·b is occasionally useful on its own.
//   - Solve back-substitutes against the upper-triangular R.
//
// Degenerate input policy: the factorization does not check rank. When a
// diagonal of R falls below the internal tolerance, Solve returns the zero
// vector instead of dividing by a vanishing pivot. Callers needing a
// minimum-norm answer for rank-deficient systems should use geninv.Geninv.
//
// Determinism & concurrency: fixed loop orders, no package state. A Solver
// is immutable after construction and safe for concurrent use.
package lsq
