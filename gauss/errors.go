package gauss

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMethod indicates a Method value or name outside {REF, RREF}.
	ErrUnknownMethod = errors.New("gauss: unknown elimination method")

	// ErrInvalidMatrix indicates that an engine received a nil or
	// structurally unusable augmented matrix.
	ErrInvalidMatrix = errors.New("gauss: invalid augmented matrix")

	// ErrNotUnique is returned by helpers that need a unique solution
	// (e.g. Result.MaxResidual) when the report is of another kind.
	ErrNotUnique = errors.New("gauss: system has no unique solution")
)

// Operation tags.
const (
	opSolve       = "Solve"
	opGaussian    = "Gaussian"
	opGaussJordan = "GaussJordan"
	opResidual    = "MaxResidual"
)

// gaussErrorf wraps err with an operation tag ("Op: underlying").
func gaussErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
