// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/index checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateAugmented – Ensures m is non-nil and has at least one row and
// two columns (one unknown plus the constant column).
//
// Errors: ErrNilMatrix, ErrBadShape.
// Complexity: O(1).
func ValidateAugmented(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() < 1 || m.Cols() < 2 {
		return validatorErrorf("ValidateAugmented", ErrBadShape)
	}

	return nil
}

// ValidateRowIndex – Ensures 0 ≤ i < m.Rows().
// Assumes m is not nil (caller must ensure).
// Complexity: O(1).
func ValidateRowIndex(m Matrix, i int) error {
	if i < 0 || i >= m.Rows() {
		return validatorErrorf("ValidateRowIndex", ErrOutOfRange)
	}

	return nil
}

// ValidateColIndex – Ensures 0 ≤ j < m.Cols().
// Assumes m is not nil (caller must ensure).
// Complexity: O(1).
func ValidateColIndex(m Matrix, j int) error {
	if j < 0 || j >= m.Cols() {
		return validatorErrorf("ValidateColIndex", ErrOutOfRange)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
