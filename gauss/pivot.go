package gauss

import (
	"math"

	"github.com/katalvlaran/rowreduce/matrix"
)

// SelectPivot chooses the pivot row for column col, scanning rows fromRow..Rows()-1.
//
// Policy (strict priority order):
//  1. The top-most row whose entry is within eps of exactly 1 wins; this saves
//     a normalization step later.
//  2. Otherwise partial pivoting over rows fromRow+1..Rows()-1: the candidate
//     starts at fromRow and is replaced whenever a later row's magnitude is
//     strictly larger than the current candidate's.
//
// The caller decides usability: if |m[p][col]| < eps the column has no pivot
// at this row position (see usablePivot).
//
// Returns -1 when fromRow or col is outside the matrix.
// Complexity: O(rows).
func SelectPivot(m *matrix.Dense, fromRow, col int, eps float64) int {
	if m == nil || fromRow < 0 || fromRow >= m.Rows() || col < 0 || col >= m.Cols() {
		return -1
	}
	rows := m.Rows()

	var k int
	for k = fromRow; k < rows; k++ {
		if nearOne(m.Get(k, col), eps) {
			return k
		}
	}

	best := fromRow
	for k = fromRow + 1; k < rows; k++ {
		if math.Abs(m.Get(k, col)) > math.Abs(m.Get(best, col)) {
			best = k
		}
	}

	return best
}

// nearOne reports |v-1| < eps.
func nearOne(v, eps float64) bool { return math.Abs(v-1) < eps }

// usablePivot reports whether v may serve as a pivot (|v| >= eps).
func usablePivot(v, eps float64) bool { return math.Abs(v) >= eps }
