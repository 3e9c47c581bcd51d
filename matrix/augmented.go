// SPDX-License-Identifier: MIT

// Package matrix - augmented matrix ingestion.
//
// An augmented matrix [A | b] stores the coefficients of `vars` unknowns
// followed by one constant column, so cols = vars + 1. NewAugmented is the
// single entry point that turns caller-owned rows into an independent Dense.

package matrix

import "fmt"

// Operation tag for ingestion errors.
const opNewAugmented = "NewAugmented"

// NewAugmented builds an independent Dense from caller rows.
//
// Implementation:
//   - Stage 1: validate shape (len(rows) ≥ 1, len(rows[0]) ≥ 2).
//   - Stage 2: validate every row has the same length (no ragged input).
//   - Stage 3: copy values into a fresh row-major buffer, enforcing the
//     numeric policy (NaN/±Inf rejected by default).
//
// Behavior highlights:
//   - The result never aliases rows; later mutation of either side is invisible
//     to the other.
//
// Errors:
//   - ErrBadShape   when there are no rows or fewer than two columns.
//   - ErrRaggedRows when a row length differs from the first row.
//   - ErrNaNInf     when a value is non-finite under the default policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewAugmented(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	if len(rows) < 1 || len(rows[0]) < 2 {
		return nil, fmt.Errorf("%s: %w", opNewAugmented, ErrBadShape)
	}
	cols := len(rows[0])

	var i, j int
	for i = 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				opNewAugmented, i+1, len(rows[i]), cols, ErrRaggedRows)
		}
	}

	m, err := newDenseWithPolicy(len(rows), cols, o.validateNaNInf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewAugmented, err)
	}
	for i = 0; i < len(rows); i++ {
		for j = 0; j < cols; j++ {
			if o.validateNaNInf && isNonFinite(rows[i][j]) {
				return nil, fmt.Errorf("%s: %w", opNewAugmented, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			m.data[i*cols+j] = rows[i][j]
		}
	}

	return m, nil
}

// Vars returns the number of unknowns of an augmented matrix (Cols()-1).
// Complexity: O(1).
func (m *Dense) Vars() int { return m.c - 1 }
