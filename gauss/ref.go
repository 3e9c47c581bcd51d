package gauss

import (
	"math"

	"github.com/katalvlaran/rowreduce/matrix"
)

// Gaussian reduces a copy of m to row echelon form and back-substitutes.
//
// Algorithm:
//  1. For each pivot position select, swap and normalize (see SelectPivot),
//     then clear the pivot column in every row below, with
//     factor = m[k][lead] / m[row][lead].
//  2. Snap |v| < eps to 0 and stop with Inconsistent at the first row
//     [0 ... 0 | c], c != 0.
//  3. Back-substitute rows min(rows, vars)-1 down to 0. Only rows whose
//     leading column equals their own index are resolved; zero rows and
//     off-diagonal rows are skipped.
//
// The report is Unique unless a row holding a coefficient was left
// unresolved (off-diagonal leading column or negligible leading
// coefficient); unknowns no row resolves keep the value 0. Otherwise it is
// Infinite without expressions: this engine does not parameterize free
// variables, GaussJordan does.
//
// m is never mutated. Errors are returned only for invalid input
// (ErrInvalidMatrix).
//
// Complexity: O(min(rows, vars)·rows·cols) time, O(steps·rows·cols) memory.
func Gaussian(m *matrix.Dense, opts ...Option) (*Result, error) {
	e, err := newEngine(MethodREF, m, opts...)
	if err != nil {
		return nil, gaussErrorf(opGaussian, err)
	}

	rows := e.work.Rows()
	err = e.reduce(func(row, lead int) error {
		var k int
		for k = row + 1; k < rows; k++ {
			factor := e.work.Get(k, lead) / e.work.Get(row, lead)
			if err := e.eliminateRow(k, row, lead, factor); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, gaussErrorf(opGaussian, err)
	}

	if bad := findInconsistentRow(e.work, e.eps); bad >= 0 {
		return e.result(m, inconsistentReport(bad)), nil
	}

	subs, x, complete := e.backSubstitute()
	report := Report{Kind: Infinite, InconsistentRow: -1}
	if complete {
		report = Report{Kind: Unique, Values: x, InconsistentRow: -1}
	}

	res := e.result(m, report)
	res.Substitutions = subs

	return res, nil
}

// backSubstitute resolves diagonal pivot rows bottom-up. It returns the
// trace, the solution vector (zero for unresolved unknowns) and whether
// every non-zero row was resolved. All-zero rows are skipped and do not
// count against completeness.
func (e *engine) backSubstitute() ([]Substitution, []float64, bool) {
	var (
		vars     = e.vars
		x        = make([]float64, vars)
		subs     []Substitution
		complete = true
		i, j     int
	)
	for i = min(e.work.Rows(), vars) - 1; i >= 0; i-- {
		col := leadingColumn(e.work, i, e.eps)
		if col == -1 {
			continue
		}
		if col != i {
			complete = false
			continue
		}

		lc := e.work.Get(i, col)
		if math.Abs(lc) < e.eps {
			subs = append(subs, Substitution{Var: col, Free: true})
			complete = false
			continue
		}

		sum := e.work.Get(i, vars)
		for j = col + 1; j < vars; j++ {
			sum -= float64(e.work.Get(i, j) * x[j])
		}
		x[col] = sum / lc
		subs = append(subs, Substitution{Var: col, Value: x[col]})
	}

	return subs, x, complete
}
