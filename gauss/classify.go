package gauss

import (
	"math"

	"github.com/katalvlaran/rowreduce/matrix"
)

// findInconsistentRow returns the first row whose coefficients are all
// within eps of zero while its constant is not, or -1.
// Complexity: O(rows·cols).
func findInconsistentRow(m *matrix.Dense, eps float64) int {
	vars := m.Vars()
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		allZero := true
		for j = 0; j < vars; j++ {
			if math.Abs(m.Get(i, j)) > eps {
				allZero = false
				break
			}
		}
		if allZero && math.Abs(m.Get(i, vars)) > eps {
			return i
		}
	}

	return -1
}

// leadingColumn returns the first coefficient column of row whose magnitude
// exceeds eps, or -1 for an all-zero row.
// Complexity: O(cols).
func leadingColumn(m *matrix.Dense, row int, eps float64) int {
	var j int
	for j = 0; j < m.Vars(); j++ {
		if math.Abs(m.Get(row, j)) > eps {
			return j
		}
	}

	return -1
}

// inconsistentReport builds the Inconsistent outcome for row.
func inconsistentReport(row int) Report {
	return Report{Kind: Inconsistent, InconsistentRow: row}
}

// classifyReduced classifies a consistent matrix in reduced row echelon form.
//
//   - len(pivots) == vars: Unique, x_i read from the constant column of row i.
//   - otherwise: Infinite. Free columns are the non-pivot columns ascending,
//     labeled t1, t2, ... in that order. Each basic variable is expressed from
//     the first row holding ≈1 in its column: the row constant plus, for each
//     free column with a non-negligible entry a, the term (-a)*t_k.
//
// Complexity: O(vars·(rows + free)).
func classifyReduced(m *matrix.Dense, pivots []int, eps float64) Report {
	vars := m.Vars()
	var i, j, r int

	if len(pivots) == vars {
		values := make([]float64, vars)
		for i = 0; i < vars; i++ {
			values[i] = m.Get(i, vars)
		}

		return Report{Kind: Unique, Values: values, InconsistentRow: -1}
	}

	isPivot := make([]bool, vars)
	for _, c := range pivots {
		isPivot[c] = true
	}
	free := make([]int, 0, vars-len(pivots))
	param := make([]int, vars) // 1-based parameter index of each free column
	for j = 0; j < vars; j++ {
		if !isPivot[j] {
			free = append(free, j)
			param[j] = len(free)
		}
	}

	exprs := make([]Expression, 0, vars)
	for j = 0; j < vars; j++ {
		if !isPivot[j] {
			exprs = append(exprs, Expression{Var: j, Free: true, Param: param[j]})
			continue
		}

		row := -1
		for r = 0; r < m.Rows(); r++ {
			if nearOne(m.Get(r, j), eps) {
				row = r
				break
			}
		}
		if row == -1 {
			continue
		}

		e := Expression{Var: j, Constant: m.Get(row, vars)}
		for _, fv := range free {
			coeff := -m.Get(row, fv)
			if math.Abs(coeff) < eps {
				continue
			}
			e.Terms = append(e.Terms, Term{Param: param[fv], Coeff: coeff})
		}
		exprs = append(exprs, e)
	}

	return Report{Kind: Infinite, InconsistentRow: -1, Free: free, Expressions: exprs}
}
