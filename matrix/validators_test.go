package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rowreduce/matrix"
)

func TestValidators(t *testing.T) {
	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateAugmented(typedNil), matrix.ErrNilMatrix)

	m := MustDense(t, 2, 3)
	require.NoError(t, matrix.ValidateNotNil(m))
	require.NoError(t, matrix.ValidateAugmented(m))
	require.ErrorIs(t, matrix.ValidateAugmented(MustDense(t, 3, 1)), matrix.ErrBadShape)

	require.NoError(t, matrix.ValidateRowIndex(m, 1))
	require.ErrorIs(t, matrix.ValidateRowIndex(m, 2), matrix.ErrOutOfRange)
	require.NoError(t, matrix.ValidateColIndex(m, 2))
	require.ErrorIs(t, matrix.ValidateColIndex(m, -1), matrix.ErrOutOfRange)

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}
