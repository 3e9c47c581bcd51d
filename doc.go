// Package rowreduce solves systems of linear equations step by step and
// explains every row operation on the way.
//
// 🚀 What is rowreduce?
//
//	A small, deterministic toolkit for augmented matrices [A | b]:
//		• Gaussian elimination to row echelon form with back-substitution
//		• Gauss–Jordan elimination to reduced row echelon form
//		• Classification: unique, inconsistent or infinitely many solutions
//		• Parametric solutions with free parameters t1, t2, ...
//		• Plain-text narration and a structured YAML trace
//
// ✨ Why choose rowreduce?
//
//   - Every swap, normalization and elimination is recorded with a snapshot
//   - Fixed pivot policy: an exact 1 first, then the largest magnitude
//   - One epsilon (1e-10) for every zero decision, overridable per call
//   - Inputs are never mutated; each solve owns its working copy
//
// Under the hood, everything is organized into small packages:
//
//	matrix/ : dense row-major storage, row operations, fixed-width formatting
//	gauss/  : pivot selection, REF and RREF engines, classification
//	report/ : text narration and YAML documents
//	source/ : matrix sources (YAML file, stdin, inline) and report sinks
//	config/ : YAML configuration with environment overrides
//	logging/: leveled slog loggers
//	cmd/rowreduce: the command-line front end
//
// Quick example:
//
//	res, err := gauss.Solve([][]float64{{1, 1, 3}, {1, -1, 1}}, gauss.MethodRREF)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(report.Text(res)) // x1 = 2.000000, x2 = 1.000000
//
// See the examples/ directory for runnable scenarios.
package rowreduce
