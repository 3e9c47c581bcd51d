package gauss

import "github.com/katalvlaran/rowreduce/matrix"

// GaussJordan reduces a copy of m to reduced row echelon form and classifies
// the solution set.
//
// Pivot selection, swapping and normalization match Gaussian; elimination
// clears the pivot column in every other row, above and below, with
// factor = m[k][lead] (the pivot is already 1). After snapping near-zero
// entries the report is Inconsistent, Unique (one pivot per unknown) or
// Infinite with a parametric expression per unknown.
//
// m is never mutated. Errors are returned only for invalid input
// (ErrInvalidMatrix).
//
// Complexity: O(min(rows, vars)·rows·cols) time, O(steps·rows·cols) memory.
func GaussJordan(m *matrix.Dense, opts ...Option) (*Result, error) {
	e, err := newEngine(MethodRREF, m, opts...)
	if err != nil {
		return nil, gaussErrorf(opGaussJordan, err)
	}

	rows := e.work.Rows()
	err = e.reduce(func(row, lead int) error {
		var k int
		for k = 0; k < rows; k++ {
			if k == row {
				continue
			}
			if err := e.eliminateRow(k, row, lead, e.work.Get(k, lead)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, gaussErrorf(opGaussJordan, err)
	}

	if bad := findInconsistentRow(e.work, e.eps); bad >= 0 {
		return e.result(m, inconsistentReport(bad)), nil
	}

	return e.result(m, classifyReduced(e.work, e.pivots, e.eps)), nil
}
