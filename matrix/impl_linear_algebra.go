// SPDX-License-Identifier: MIT
// Package matrix provides verification kernels for augmented systems.
//
// Purpose:
//   - Evaluate a candidate solution x against [A | b] without mutating the
//     matrix, so engines and callers can check A·x ≈ b after elimination.
//
// Notes:
//   - All kernels use the central validators and wrap sentinels with
//     matrixErrorf at the facade.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for dot products and substitution.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opResidual    = "Residual"
	opMaxResidual = "MaxResidual"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Residual computes r = A·x − b for an augmented matrix m = [A | b].
//
// Contract: m is a valid augmented matrix; len(x) == m.Cols()-1.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for r.
//
// Errors:
//   - ErrNilMatrix / ErrBadShape from ValidateAugmented.
//   - ErrNilMatrix / ErrDimensionMismatch from ValidateVecLen.
func Residual(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateAugmented(m); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	vars := m.Cols() - 1
	if err := ValidateVecLen(x, vars); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	r := make([]float64, m.Rows())

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < vars; j++ {
				acc += d.data[base+j] * x[j]
			}
			r[i] = acc - d.data[base+vars]
		}

		return r, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		r[i] = ZeroSum
		for j = 0; j < vars; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opResidual, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			r[i] += v * x[j]
		}
		v, err = m.At(i, vars)
		if err != nil {
			return nil, matrixErrorf(opResidual, fmt.Errorf("At(%d,%d): %w", i, vars, err))
		}
		r[i] -= v
	}

	return r, nil
}

// MaxResidual returns max_i |(A·x − b)_i|, the infinity norm of Residual.
// Complexity: Time O(r*c), Space O(r).
func MaxResidual(m Matrix, x []float64) (float64, error) {
	r, err := Residual(m, x)
	if err != nil {
		return 0, matrixErrorf(opMaxResidual, err)
	}
	worst := ZeroSum
	for _, v := range r {
		worst = math.Max(worst, math.Abs(v))
	}

	return worst, nil
}
