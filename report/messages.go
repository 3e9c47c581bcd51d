package report

// Fixed narration lines.
const (
	headerREF  = "--- Gaussian Elimination (REF) ---"
	headerRREF = "--- Gauss-Jordan Elimination (RREF) ---"

	lineOriginal      = "Original Matrix:"
	lineBackSubst     = "--- Back Substitution ---"
	lineFinal         = "--- Final Solution ---"
	lineFinalUnique   = "--- Final Solution (Unique) ---"
	lineFinalInfinite = "--- Final Solution (Infinitely Many Solutions) ---"

	// LineInconsistent is printed when a row [0 ... 0 | c], c != 0, exists.
	LineInconsistent = "Inconsistent system: No solution (A row of [0 0 ... 0 | non-zero constant] was found)."

	lineRankDeficient = "The system has infinitely many solutions or the matrix is rank-deficient. " +
		"For a clearer general solution with free variables, please use Gauss-Jordan Elimination (RREF)."
	lineParameters     = "Expressing basic variables in terms of free parameters (t1, t2, ...):"
	lineInterpretation = "Interpretation: t1, t2, etc., represent the free parameters (any real number)."

	// ErrorMessage replaces the whole report when solving fails on malformed input.
	ErrorMessage = "An error occurred during solving. Please check your matrix entries and try again."
)
