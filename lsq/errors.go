package lsq

import (
	"errors"
	"fmt"
)

// ErrUnderdetermined reports a system with fewer equations than unknowns
// (M < N): QR least-squares requires at least as many rows as columns.
var ErrUnderdetermined = errors.New("lsq: underdetermined system (rows < cols)")

// lsqErrorf wraps err with an operation tag, preserving the underlying
// sentinel for errors.Is. Call only with non-nil err.
func lsqErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
