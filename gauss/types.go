package gauss

import "github.com/katalvlaran/rowreduce/matrix"

// Method selects the elimination engine.
type Method int

const (
	// MethodREF runs forward elimination to row echelon form and back-substitution.
	MethodREF Method = iota + 1
	// MethodRREF runs Gauss–Jordan elimination to reduced row echelon form.
	MethodRREF
)

// String returns "REF" or "RREF".
func (m Method) String() string {
	switch m {
	case MethodREF:
		return "REF"
	case MethodRREF:
		return "RREF"
	default:
		return "unknown"
	}
}

// StepKind tags a recorded structural transformation.
type StepKind int

const (
	// StepSwap exchanges two rows: Row <-> Source.
	StepSwap StepKind = iota + 1
	// StepNormalize divides Row by Factor so its pivot becomes 1.
	StepNormalize
	// StepEliminate performs Row = Row - Factor * Source.
	StepEliminate
)

// String returns the lower-case step name.
func (k StepKind) String() string {
	switch k {
	case StepSwap:
		return "swap"
	case StepNormalize:
		return "normalize"
	case StepEliminate:
		return "eliminate"
	default:
		return "unknown"
	}
}

// Step is one recorded transformation paired with the matrix right after it.
// Row indices are 0-based.
type Step struct {
	Kind StepKind

	// Row is the row being changed (the upper row for a swap).
	Row int

	// Source is the other row of a swap, or the pivot row of an elimination.
	// For a normalization Source equals Row.
	Source int

	// Factor is the divisor of a normalization or the multiplier of an
	// elimination. Zero for swaps.
	Factor float64

	// Snapshot is an independent copy of the working matrix after the step.
	Snapshot *matrix.Dense
}

// Classification is the tag of a Report.
type Classification int

const (
	// Unique means every unknown has exactly one value.
	Unique Classification = iota + 1
	// Inconsistent means some row reads [0 ... 0 | c] with c != 0.
	Inconsistent
	// Infinite means at least one unknown is free.
	Infinite
)

// String returns "unique", "inconsistent" or "infinite".
func (c Classification) String() string {
	switch c {
	case Unique:
		return "unique"
	case Inconsistent:
		return "inconsistent"
	case Infinite:
		return "infinite"
	default:
		return "unknown"
	}
}

// Substitution records one back-substitution outcome of the REF engine.
// Var is the 0-based unknown index.
type Substitution struct {
	Var   int
	Value float64
	Free  bool // leading coefficient was negligible; Value is meaningless
}

// Term is one parametric contribution Coeff * t_Param.
// Coeff is already negated relative to the reduced matrix entry.
type Term struct {
	Param int // 1-based free parameter index (t1, t2, ...)
	Coeff float64
}

// Expression describes one unknown of an infinite solution set.
//   - Free unknowns: Free=true, Param holds their parameter index.
//   - Basic unknowns: Constant + Σ Terms.
type Expression struct {
	Var      int
	Free     bool
	Param    int
	Constant float64
	Terms    []Term
}

// Report is the final classification of a solve.
type Report struct {
	Kind Classification

	// Values holds one value per unknown when Kind == Unique.
	Values []float64

	// InconsistentRow is the first row reading [0 ... 0 | c], or -1.
	InconsistentRow int

	// Free lists the free columns in ascending order (RREF only).
	Free []int

	// Expressions holds the parametric solution (RREF only). The REF engine
	// leaves it empty for Infinite and defers to RREF.
	Expressions []Expression
}

// Parametric reports whether an Infinite report carries free-variable
// expressions (false for the REF engine, which defers to RREF).
func (r Report) Parametric() bool {
	return r.Kind == Infinite && len(r.Expressions) > 0
}

// Result is everything a single solve produced.
type Result struct {
	Method Method

	// Original is a copy of the input as the engine received it.
	Original *matrix.Dense

	// Steps is the ordered, append-only trace.
	Steps []Step

	// Substitutions is the REF back-substitution trace (last row first).
	Substitutions []Substitution

	// PivotColumns lists the column of every placed pivot, in order.
	PivotColumns []int

	// Final is the working matrix after elimination and zero snapping.
	Final *matrix.Dense

	Report Report
}
