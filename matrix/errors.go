// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Callers wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary; errors.Is keeps matching.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> ragged rows -> NaN/Inf -> index.

var (
	// ErrBadShape is returned when an augmented matrix shape is unusable
	// (no rows, or fewer than two columns: at least one unknown plus constants).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRaggedRows indicates that the caller supplied rows of unequal length.
	ErrRaggedRows = errors.New("matrix: rows have unequal length")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) and row operations MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., MatVec with a vector whose length differs from the coefficient count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, division results).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrZeroDivisor is returned by DivideRow when asked to divide by exactly zero.
	ErrZeroDivisor = errors.New("matrix: division by zero")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)
