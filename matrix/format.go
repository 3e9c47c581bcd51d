// SPDX-License-Identifier: MIT

// Package matrix - fixed-precision snapshot formatter.
//
// Layout (one line per row):
//
//	[   1.000000  -2.500000   3.000000 ]
//
// Each value uses six decimals, right-aligned in a field of at least ten
// characters, followed by one space. The formatter is pure: no state, no
// allocation beyond the returned string.

package matrix

import (
	"strconv"
	"strings"
)

const (
	// ValuePrecision is the number of decimals printed for every value.
	ValuePrecision = 6

	// ValueWidth is the minimum field width of a formatted value.
	ValueWidth = 10

	_fmtSnapshotOpen  = "[ "
	_fmtSnapshotClose = "]\n"
)

// FormatValue renders v with ValuePrecision decimals. Negative zero renders
// as "0.000000"; tiny negative values keep their sign ("-0.000000").
// Complexity: O(1).
func FormatValue(v float64) string {
	if v == 0 {
		v = 0 // drop the sign bit of -0
	}

	return strconv.FormatFloat(v, 'f', ValuePrecision, 64)
}

// Format renders every row of m as "[ " + padded values + "]\n".
// A nil or empty matrix renders as "[]".
// Complexity: Time O(r*c), Space O(r*c).
func Format(m Matrix) string {
	if ValidateNotNil(m) != nil || m.Rows() == 0 {
		return "[]"
	}
	var (
		b    strings.Builder
		i, j int
		v    float64
		s    string
	)
	for i = 0; i < m.Rows(); i++ {
		b.WriteString(_fmtSnapshotOpen)
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j) // indices bounded by Rows()/Cols()
			s = FormatValue(v)
			if pad := ValueWidth - len(s); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
			b.WriteString(s)
			b.WriteByte(' ')
		}
		b.WriteString(_fmtSnapshotClose)
	}

	return b.String()
}
