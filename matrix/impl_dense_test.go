// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rowreduce/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() report the allocated shape.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0) // negative row
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2) // column past the end
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "Dense.Set(0,-1)")
}

// TestSetGet validates Set() followed by At() and Get() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)

	require.NoError(t, m.Set(1, 2, 7.89))
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))
	require.Equal(t, 7.89, m.Get(1, 2))
}

// TestSetRejectsNonFinite checks the default numeric policy.
func TestSetRejectsNonFinite(t *testing.T) {
	m := MustDense(t, 1, 2)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 1, math.Inf(-1)), matrix.ErrNaNInf)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustAugmented(t, [][]float64{{1, 0}, {0, 2}})

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))

	cd := m.CloneDense()
	require.NoError(t, cd.SwapRows(0, 1))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

// TestRowAndToRows verifies copies are returned.
func TestRowAndToRows(t *testing.T) {
	m := MustAugmented(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)
	row[0] = 99
	require.Equal(t, 4.0, m.Get(1, 0))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	rows := m.ToRows()
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, rows)
	rows[0][0] = -1
	require.Equal(t, 1.0, m.Get(0, 0))
}

// TestString checks the %g diagnostic dump.
func TestString(t *testing.T) {
	m := MustAugmented(t, [][]float64{{1, 0.5}, {-2, 3}})
	require.Equal(t, "[1, 0.5]\n[-2, 3]\n", m.String())
}
