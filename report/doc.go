// Package report renders a gauss.Result for people and machines.
//
//   - Text produces the linear narration: original matrix, every step with
//     its snapshot, the back-substitution block (REF) and the final
//     classification.
//   - YAML produces the same trace as a structured document.
//
// Both renderers are pure functions of the Result; identical results give
// byte-identical output.
package report
