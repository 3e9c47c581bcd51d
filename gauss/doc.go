// Package gauss solves linear systems given as augmented matrices and
// records every elimination step it performs.
//
// 🚀 What is inside?
//
//	Two engines share one pivot policy and one set of row operations:
//	  • Gaussian    : forward elimination to row echelon form (REF),
//	                  then back-substitution along the main diagonal.
//	  • GaussJordan : elimination above and below every pivot (RREF),
//	                  then classification with parametric free variables.
//
// ✨ Key features:
//   - deterministic pivot policy: an exact 1 wins, otherwise partial pivoting
//   - append-only trace of Swap / Normalize / Eliminate steps, each with a
//     snapshot of the matrix right after the step
//   - first-class outcomes: Unique, Inconsistent, Infinite (never errors)
//   - the caller's values are never mutated; every engine works on its own copy
//
// ⚙️ Usage:
//
//	res, err := gauss.Solve([][]float64{{1, 1, 3}, {1, -1, 1}}, gauss.MethodRREF)
//	if err != nil {
//		return err // malformed input only
//	}
//	switch res.Report.Kind {
//	case gauss.Unique:
//		fmt.Println(res.Report.Values) // [2 1]
//	}
//
// Rendering the trace as text lives in package report.
//
// Complexity:
//
//   - Each elimination pass: O(rows·cols); at most min(rows, vars) passes.
//   - Snapshots: O(steps·rows·cols) memory.
package gauss
