package gauss

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rowreduce/matrix"
)

// engine holds the exclusively owned working copy and the growing trace of
// one elimination run. It is never shared between calls.
type engine struct {
	method Method
	eps    float64
	work   *matrix.Dense
	vars   int
	steps  []Step
	pivots []int
}

// newEngine validates m and takes a private clone of it, so nothing the
// engine does is observable through the caller's matrix.
func newEngine(method Method, m *matrix.Dense, opts ...Option) (*engine, error) {
	if m == nil {
		return nil, ErrInvalidMatrix
	}
	if err := matrix.ValidateAugmented(m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
	}
	o := gatherOptions(opts...)

	return &engine{
		method: method,
		eps:    o.eps,
		work:   m.CloneDense(),
		vars:   m.Vars(),
	}, nil
}

// record appends a step with a snapshot of the current working matrix.
func (e *engine) record(kind StepKind, row, source int, factor float64) {
	e.steps = append(e.steps, Step{
		Kind:     kind,
		Row:      row,
		Source:   source,
		Factor:   factor,
		Snapshot: e.work.CloneDense(),
	})
}

// reduce drives the two cursors. row advances only when a pivot is placed;
// lead advances on every iteration, so a column without a usable pivot is
// skipped while the row cursor holds.
//
// eliminate clears column lead in the rows it is responsible for.
func (e *engine) reduce(eliminate func(row, lead int) error) error {
	rows := e.work.Rows()
	row, lead := 0, 0
	for row < rows && lead < e.vars {
		placed, err := e.placePivot(row, lead)
		if err != nil {
			return err
		}
		if !placed {
			lead++
			continue
		}
		if err = eliminate(row, lead); err != nil {
			return err
		}
		e.pivots = append(e.pivots, lead)
		row++
		lead++
	}
	e.work.SnapZeros(e.eps)

	return nil
}

// placePivot selects the pivot for (row, lead), swaps it into place and
// normalizes it to 1. It reports false when the column has no usable pivot.
//
// Only a pivot that is not already ≈1 produces a Normalize step; an ≈1 pivot
// is still divided through, silently.
func (e *engine) placePivot(row, lead int) (bool, error) {
	p := SelectPivot(e.work, row, lead, e.eps)
	if !usablePivot(e.work.Get(p, lead), e.eps) {
		return false, nil
	}

	if p != row {
		if err := e.work.SwapRows(row, p); err != nil {
			return false, err
		}
		e.record(StepSwap, row, p, 0)
	}

	pivot := e.work.Get(row, lead)
	switch {
	case math.Abs(pivot-1) > e.eps && math.Abs(pivot) > e.eps:
		if err := e.work.DivideRow(row, lead, pivot); err != nil {
			return false, err
		}
		e.record(StepNormalize, row, row, pivot)
	case math.Abs(pivot) > e.eps:
		if err := e.work.DivideRow(row, lead, pivot); err != nil {
			return false, err
		}
	}

	return true, nil
}

// eliminateRow subtracts factor*row[source] from row[target] when the factor
// is not negligible, recording the step.
func (e *engine) eliminateRow(target, source, lead int, factor float64) error {
	if math.Abs(factor) <= e.eps {
		return nil
	}
	if err := e.work.SubtractScaledRow(target, source, lead, factor); err != nil {
		return err
	}
	e.record(StepEliminate, target, source, factor)

	return nil
}

// result assembles the common part of a Result.
func (e *engine) result(original *matrix.Dense, report Report) *Result {
	return &Result{
		Method:       e.method,
		Original:     original.CloneDense(),
		Steps:        e.steps,
		PivotColumns: e.pivots,
		Final:        e.work,
		Report:       report,
	}
}
