package report

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rowreduce/gauss"
	"github.com/katalvlaran/rowreduce/matrix"
)

// Text renders the full narration of res. A nil result renders ErrorMessage.
func Text(res *gauss.Result) string {
	if res == nil {
		return ErrorMessage
	}
	var b strings.Builder

	b.WriteString(header(res.Method))
	b.WriteString("\n\n")
	b.WriteString(lineOriginal)
	b.WriteString("\n")
	b.WriteString(matrix.Format(res.Original))
	b.WriteString("\n")

	for _, s := range res.Steps {
		fmt.Fprintf(&b, "\nStep: %s:\n", DescribeStep(res.Method, s))
		b.WriteString(matrix.Format(s.Snapshot))
		b.WriteString("\n")
	}

	if res.Report.Kind == gauss.Inconsistent {
		b.WriteString("\n\n")
		b.WriteString(LineInconsistent)

		return b.String()
	}

	if res.Method == gauss.MethodREF {
		writeBackSubstitution(&b, res)
	} else {
		writeReduced(&b, res.Report)
	}

	return b.String()
}

// DescribeStep returns the one-line description of s, without the
// "Step: " prefix and trailing colon. Rows are printed 1-based.
func DescribeStep(method gauss.Method, s gauss.Step) string {
	r, src := s.Row+1, s.Source+1
	switch s.Kind {
	case gauss.StepSwap:
		return fmt.Sprintf("Swap Row %d with Row %d (R%d <-> R%d)", r, src, r, src)
	case gauss.StepNormalize:
		return fmt.Sprintf("Normalize pivot to 1 (R%d = R%d / %s)", r, r, matrix.FormatValue(s.Factor))
	case gauss.StepEliminate:
		if method == gauss.MethodREF {
			return fmt.Sprintf("Eliminate below (R%d = R%d - %s * R%d)", r, r, matrix.FormatValue(s.Factor), src)
		}

		return fmt.Sprintf("Eliminate element in R%d (R%d = R%d - %s * R%d)", r, r, r, matrix.FormatValue(s.Factor), src)
	default:
		return s.Kind.String()
	}
}

// Expression renders one unknown of a parametric solution, e.g.
// "x1 = 3.000000 - 1.000000*t1" or "x2 = t1 (Free Variable)".
func Expression(e gauss.Expression) string {
	if e.Free {
		return fmt.Sprintf("x%d = t%d (Free Variable)", e.Var+1, e.Param)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "x%d = %s", e.Var+1, matrix.FormatValue(e.Constant))
	for _, t := range e.Terms {
		sign := " + "
		if t.Coeff < 0 {
			sign = " - "
		}
		abs := t.Coeff
		if abs < 0 {
			abs = -abs
		}
		fmt.Fprintf(&b, "%s%s*t%d", sign, matrix.FormatValue(abs), t.Param)
	}

	return b.String()
}

func header(m gauss.Method) string {
	if m == gauss.MethodREF {
		return headerREF
	}

	return headerRREF
}

func writeBackSubstitution(b *strings.Builder, res *gauss.Result) {
	b.WriteString("\n")
	b.WriteString(lineBackSubst)
	b.WriteString("\n")
	for _, s := range res.Substitutions {
		if s.Free {
			fmt.Fprintf(b, "Variable x%d is a free variable (zero coefficient).\n", s.Var+1)
			continue
		}
		fmt.Fprintf(b, "Solve for x%d: x%d = %s\n", s.Var+1, s.Var+1, matrix.FormatValue(s.Value))
	}

	b.WriteString("\n")
	b.WriteString(lineFinal)
	b.WriteString("\n")
	if res.Report.Kind == gauss.Unique {
		writeValues(b, res.Report.Values)
		return
	}
	b.WriteString(lineRankDeficient)
	b.WriteString("\n")
}

func writeReduced(b *strings.Builder, rep gauss.Report) {
	if rep.Kind == gauss.Unique {
		b.WriteString("\n\n")
		b.WriteString(lineFinalUnique)
		b.WriteString("\n")
		writeValues(b, rep.Values)
		return
	}

	b.WriteString("\n\n")
	b.WriteString(lineFinalInfinite)
	b.WriteString("\n")
	fmt.Fprintf(b, "The system has %d free variable(s), leading to infinitely many solutions.\n", len(rep.Free))
	b.WriteString(lineParameters)
	b.WriteString("\n\n")
	for _, e := range rep.Expressions {
		b.WriteString(Expression(e))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lineInterpretation)
}

func writeValues(b *strings.Builder, values []float64) {
	for i, v := range values {
		fmt.Fprintf(b, "x%d = %s\n", i+1, matrix.FormatValue(v))
	}
}
