// Package geninv computes the generalized (Moore-Penrose) pseudoinverse of
// a rectangular matrix of arbitrary rank, via full-rank Cholesky
// factorization.
//
// 🚀 What is geninv?
//
//	The fast pseudoinverse scheme of Courrieu (2008): factor the Gram
//	matrix of the input with a rank-revealing Cholesky that simply skips
//	linearly dependent columns, then assemble the pseudoinverse from the
//	low-rank factor and one small r×r inversion. Singular and
//	rank-deficient matrices are ordinary inputs here, not failure cases.
//
// ✨ Key properties:
//   - rank-revealing: FullRankCholesky returns the numerically detected
//     rank together with a factor whose columns are linearly independent
//   - shape-adaptive: Geninv factors whichever Gram matrix (G·Gᵗ or Gᵗ·G)
//     is smaller, so cost follows min(M,N)
//   - deterministic: greedy left-to-right column retention, fixed loop
//     orders, bit-reproducible results for identical inputs
//   - no configuration: behavior is fully determined by the input matrix
//     and the fixed internal tolerance policy
//
// Tolerance policy: a candidate pivot is accepted when it exceeds
// machEps·N·max(diag(A)), where machEps is the float64 machine epsilon,
// N the order of the factored Gram matrix and A the Gram matrix itself.
// The threshold is evaluated once per factorization, so the rank decision
// scales with the magnitude of the input.
//
// Preconditions: FullRankCholesky requires symmetric positive-semidefinite
// input. That property is a caller contract, not a runtime check — a
// non-PSD argument yields a deterministic but mathematically meaningless
// factor. Geninv always satisfies the contract by construction, since any
// Gram matrix is symmetric PSD.
//
// Both entry points are pure functions without package state; they are
// safe for concurrent use on independent inputs.
//
// Reference: Courrieu, P. (2008). Fast Computation of Moore-Penrose
// Inverse Matrices. Neural Information Processing 8(2), 25–29.
// http://arxiv.org/abs/0804.4809
package geninv
