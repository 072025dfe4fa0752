// Package matrix provides dense, deterministic linear-algebra primitives
// for the linalg module.
//
// The package is built around two ideas:
//
//   - Dense — a concrete row-major float64 matrix with flat backing
//     storage for cache friendliness.
//   - Matrix — a minimal mutable-matrix interface (Rows, Cols, At, Set,
//     Clone) so kernels accept any implementation while keeping a
//     *Dense fast-path.
//
// Kernels: Add, Sub, Mul, Transpose, Scale, MatVec, Eigen (Jacobi
// sweeps for symmetric input), LU (Doolittle, no pivoting), Inverse,
// CholeskySPD and InverseSPD for symmetric positive-definite input.
//
// Conventions (shared by every kernel):
//   - Strict fail-fast validation through the central validators;
//     sentinel errors matched via errors.Is.
//   - Fixed, data-independent loop orders: identical inputs produce
//     identical results on every run.
//   - Operands are never mutated; each kernel returns a fresh Dense.
//   - No global state, no goroutines; safe for concurrent use on
//     independent inputs.
//
// Matrices here are small and fixed-size by use case (embedded control
// loops); kernels are written for determinism first, asymptotics second.
package matrix
