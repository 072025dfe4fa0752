// Package linalg is a small fixed-dimension linear-algebra core for
// embedded and real-time numerical software.
//
// 🚀 What is linalg?
//
//	A compact, deterministic library built around one demanding routine:
//	the generalized (Moore-Penrose) pseudoinverse of a possibly
//	rank-deficient rectangular matrix, computed through a full-rank
//	Cholesky factorization.
//
// ✨ What you get:
//   - matrix/ — dense row-major matrices with deterministic kernels:
//     Add, Sub, Mul, Transpose, Scale, MatVec, Eigen (Jacobi),
//     LU, Inverse, CholeskySPD, InverseSPD
//   - geninv/ — rank-revealing full-rank Cholesky factorizer and the
//     geninv pseudoinverse dispatcher (Courrieu, 2008)
//   - lsq/    — Householder-QR least-squares solver for Ax ≈ b
//
// Why choose linalg?
//
//   - Deterministic – fixed loop orders, no pivoting surprises, identical
//     results for identical inputs on every run
//   - Rank-safe – rank-deficient and singular matrices are first-class
//     inputs, not error cases
//   - Pure Go – no cgo, no assembly, safe for concurrent use on
//     independent inputs
//
// Quick taste:
//
//	G, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {2, 4}}) // singular
//	X, _ := geninv.Geninv(G)                                     // still fine
//
// Dive into the package docs of matrix, geninv and lsq for contracts,
// tolerances and complexity notes, and into examples/ for runnable demos.
package linalg
