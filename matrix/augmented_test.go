package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rowreduce/matrix"
)

func TestNewAugmented(t *testing.T) {
	rows := [][]float64{{1, 1, 3}, {1, -1, 1}}
	m, err := matrix.NewAugmented(rows)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 2, m.Vars())
	assert.Equal(t, rows, m.ToRows())

	// The input is copied, never aliased.
	rows[0][0] = 42
	assert.Equal(t, 1.0, m.Get(0, 0))
}

func TestNewAugmented_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"nil", nil, matrix.ErrBadShape},
		{"no rows", [][]float64{}, matrix.ErrBadShape},
		{"one column", [][]float64{{1}, {2}}, matrix.ErrBadShape},
		{"empty first row", [][]float64{{}}, matrix.ErrBadShape},
		{"ragged", [][]float64{{1, 2, 3}, {1, 2}}, matrix.ErrRaggedRows},
		{"nan", [][]float64{{1, math.NaN()}}, matrix.ErrNaNInf},
		{"inf", [][]float64{{math.Inf(1), 1}}, matrix.ErrNaNInf},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := matrix.NewAugmented(tt.rows)
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "NewAugmented")
		})
	}
}

func TestNewAugmented_NoValidate(t *testing.T) {
	m, err := matrix.NewAugmented([][]float64{{math.NaN(), 1}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(m.Get(0, 0)))

	// The policy travels with the matrix and its clones.
	require.NoError(t, m.CloneDense().Set(0, 1, math.Inf(1)))

	strict, err := matrix.NewAugmented([][]float64{{1, 1}}, matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}
