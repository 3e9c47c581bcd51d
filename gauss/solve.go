package gauss

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rowreduce/matrix"
)

// Solve builds an augmented matrix from values and runs the engine chosen by
// method. values is copied; it is never mutated.
//
// Errors (programming errors only; algorithmic outcomes live in Report):
//   - ErrUnknownMethod for a method outside {MethodREF, MethodRREF}.
//   - ErrInvalidMatrix wrapping matrix.ErrBadShape, matrix.ErrRaggedRows or
//     matrix.ErrNaNInf for malformed values.
func Solve(values [][]float64, method Method, opts ...Option) (*Result, error) {
	if method != MethodREF && method != MethodRREF {
		return nil, gaussErrorf(opSolve, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method)))
	}

	m, err := matrix.NewAugmented(values)
	if err != nil {
		return nil, gaussErrorf(opSolve, fmt.Errorf("%w: %w", ErrInvalidMatrix, err))
	}

	if method == MethodREF {
		return Gaussian(m, opts...)
	}

	return GaussJordan(m, opts...)
}

// ParseMethod maps a method name to a Method. Accepted (case-insensitive):
// "ref", "gaussian", "gauss" for REF and "rref", "gauss-jordan",
// "gaussjordan", "jordan" for RREF.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ref", "gaussian", "gauss":
		return MethodREF, nil
	case "rref", "gauss-jordan", "gaussjordan", "jordan":
		return MethodRREF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}
