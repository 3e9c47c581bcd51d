// Package matrix provides the dense, row-major storage used by the
// elimination engines, together with the augmented-matrix constructor,
// elementary row operations and the fixed-precision text formatter.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 buffer with bounds-checked At/Set and a
//     deep Clone.
//   - NewAugmented: builds an independent Dense from caller rows
//     (coefficients plus a right-hand-side column), rejecting ragged input.
//   - Row operations (SwapRows, DivideRow, SubtractScaledRow, SnapZeros)
//     that mutate a Dense in place, starting at a given column.
//   - Format / FormatValue: bracket-delimited, six-decimal, width-10 rendering
//     used for every snapshot in a narration.
//
// See the examples in this package for usage patterns.
package matrix
