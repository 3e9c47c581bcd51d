// Package source is the boundary between the elimination core and the
// outside world: MatrixSource produces a validated rows×cols grid,
// ReportSink accepts the final narration.
//
// Sources check the input shape (rows ≥ 1, cols ≥ 2, rectangular) before
// the grid reaches the elimination core.
package source
