// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations on *Dense.
//
// Purpose:
//   - Provide the three structural transformations of Gaussian elimination
//     (swap, divide, subtract a multiple) plus the post-pass zero snapping.
//   - Mutate in place; callers that need the original keep a Clone.
//
// Determinism:
//   - Fixed column order from `from` to Cols()-1.
//   - Products are rounded before subtraction (explicit float64 conversion),
//     so results do not depend on FMA contraction by the compiler.

package matrix

import (
	"fmt"
	"math"
)

// Operation tags for row operation errors.
const (
	opSwapRows          = "SwapRows"
	opDivideRow         = "DivideRow"
	opSubtractScaledRow = "SubtractScaledRow"
)

// SwapRows exchanges rows i and j in place. Swapping a row with itself is a no-op.
//
// Errors:
//   - ErrOutOfRange when i or j is outside [0, Rows()).
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SwapRows(i, j int) error {
	if err := ValidateRowIndex(m, i); err != nil {
		return fmt.Errorf("%s: %w", opSwapRows, err)
	}
	if err := ValidateRowIndex(m, j); err != nil {
		return fmt.Errorf("%s: %w", opSwapRows, err)
	}
	if i == j {
		return nil
	}
	a := m.data[i*m.c : (i+1)*m.c]
	b := m.data[j*m.c : (j+1)*m.c]
	var k int
	for k = 0; k < m.c; k++ {
		a[k], b[k] = b[k], a[k]
	}

	return nil
}

// DivideRow divides row i by d for columns from..Cols()-1.
// Entries left of `from` are untouched.
//
// Errors:
//   - ErrOutOfRange  when i or from is invalid.
//   - ErrZeroDivisor when d == 0.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) DivideRow(i, from int, d float64) error {
	if err := ValidateRowIndex(m, i); err != nil {
		return fmt.Errorf("%s: %w", opDivideRow, err)
	}
	if err := ValidateColIndex(m, from); err != nil {
		return fmt.Errorf("%s: %w", opDivideRow, err)
	}
	if d == 0 {
		return fmt.Errorf("%s: %w", opDivideRow, ErrZeroDivisor)
	}
	row := m.data[i*m.c : (i+1)*m.c]
	var j int
	for j = from; j < m.c; j++ {
		row[j] /= d
	}

	return nil
}

// SubtractScaledRow performs row[target] -= factor * row[source] for
// columns from..Cols()-1.
//
// Errors:
//   - ErrOutOfRange when target, source or from is invalid.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SubtractScaledRow(target, source, from int, factor float64) error {
	if err := ValidateRowIndex(m, target); err != nil {
		return fmt.Errorf("%s: %w", opSubtractScaledRow, err)
	}
	if err := ValidateRowIndex(m, source); err != nil {
		return fmt.Errorf("%s: %w", opSubtractScaledRow, err)
	}
	if err := ValidateColIndex(m, from); err != nil {
		return fmt.Errorf("%s: %w", opSubtractScaledRow, err)
	}
	dst := m.data[target*m.c : (target+1)*m.c]
	src := m.data[source*m.c : (source+1)*m.c]
	var j int
	for j = from; j < m.c; j++ {
		dst[j] -= float64(factor * src[j])
	}

	return nil
}

// SnapZeros replaces every entry with |v| < eps by exactly 0 and returns
// how many entries were changed. Negative zero is normalized as well.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) SnapZeros(eps float64) int {
	var n, k int
	for k = 0; k < len(m.data); k++ {
		if math.Abs(m.data[k]) < eps {
			if m.data[k] != 0 || math.Signbit(m.data[k]) {
				n++
			}
			m.data[k] = 0
		}
	}

	return n
}
