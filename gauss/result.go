package gauss

import "github.com/katalvlaran/rowreduce/matrix"

// MaxResidual returns max_i |(A·x − b)_i| of the unique solution against
// the original matrix. It returns ErrNotUnique for other outcomes.
func (r *Result) MaxResidual() (float64, error) {
	if r == nil || r.Report.Kind != Unique {
		return 0, gaussErrorf(opResidual, ErrNotUnique)
	}
	v, err := matrix.MaxResidual(r.Original, r.Report.Values)
	if err != nil {
		return 0, gaussErrorf(opResidual, err)
	}

	return v, nil
}

// StepCount returns how many steps of kind k were recorded; a zero kind
// counts every step.
func (r *Result) StepCount(k StepKind) int {
	if r == nil {
		return 0
	}
	if k == 0 {
		return len(r.Steps)
	}
	n := 0
	for _, s := range r.Steps {
		if s.Kind == k {
			n++
		}
	}

	return n
}
