package source_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rowreduce/source"
)

// Compile-time checks that every source satisfies MatrixSource.
var (
	_ source.MatrixSource = source.File{}
	_ source.MatrixSource = source.Reader{}
	_ source.MatrixSource = source.Inline{}
	_ source.ReportSink   = source.WriterSink{}
)

func TestValidate(t *testing.T) {
	require.NoError(t, source.Validate([][]float64{{1, 2}, {3, 4}}))
	require.ErrorIs(t, source.Validate(nil), source.ErrInvalidDimensions)
	require.ErrorIs(t, source.Validate([][]float64{{1}}), source.ErrInvalidDimensions)

	err := source.Validate([][]float64{{1, 2, 3}, {4, 5}})
	require.ErrorIs(t, err, source.ErrRaggedRows)
	assert.Contains(t, err.Error(), "row 2 has 2 values, want 3")
}

func TestParseInline(t *testing.T) {
	tests := []struct {
		name string
		text string
		want [][]float64
	}{
		{"spaces", "1 1 3; 1 -1 1", [][]float64{{1, 1, 3}, {1, -1, 1}}},
		{"commas", "1,1,3;1,-1,1", [][]float64{{1, 1, 3}, {1, -1, 1}}},
		{"mixed and tabs", " 0.5,\t2  4 ; -1e2 0 1 ", [][]float64{{0.5, 2, 4}, {-100, 0, 1}}},
		{"trailing separator", "2 4;", [][]float64{{2, 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := source.ParseInline(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInline_Errors(t *testing.T) {
	_, err := source.ParseInline("1 2; ; 3 4")
	require.ErrorIs(t, err, source.ErrInvalidDimensions)

	_, err = source.ParseInline("1 two 3")
	require.ErrorIs(t, err, source.ErrBadValue)
	assert.Contains(t, err.Error(), `a[1,2] = "two"`)

	_, err = source.ParseInline("1 NaN")
	require.ErrorIs(t, err, source.ErrBadValue)

	_, err = source.ParseInline("Inf 1")
	require.ErrorIs(t, err, source.ErrBadValue)
}

func TestInline_Matrix(t *testing.T) {
	ctx := context.Background()

	rows, err := source.Inline{Text: "1 1 3; 1 -1 1"}.Matrix(ctx)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1, 3}, {1, -1, 1}}, rows)

	_, err = source.Inline{Text: ""}.Matrix(ctx)
	require.ErrorIs(t, err, source.ErrInvalidDimensions)

	_, err = source.Inline{Text: "1 2; 3"}.Matrix(ctx)
	require.ErrorIs(t, err, source.ErrRaggedRows)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = source.Inline{Text: "1 2"}.Matrix(cancelled)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDecode(t *testing.T) {
	doc, err := source.Decode([]byte("method: ref\nrows:\n  - [1, 1, 3]\n  - [1, -1, 1]\n"))
	require.NoError(t, err)
	assert.Equal(t, "ref", doc.Method)
	assert.Equal(t, [][]float64{{1, 1, 3}, {1, -1, 1}}, doc.Rows)

	doc, err = source.Decode([]byte("rows: [[2, 4]]"))
	require.NoError(t, err)
	assert.Empty(t, doc.Method)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty", "", source.ErrInvalidDimensions},
		{"no rows", "method: rref\n", source.ErrInvalidDimensions},
		{"one column", "rows: [[1], [2]]", source.ErrInvalidDimensions},
		{"ragged", "rows: [[1, 2], [1]]", source.ErrRaggedRows},
		{"nan", "rows: [[.nan, 1]]", source.ErrBadValue},
		{"inf", "rows: [[1, -.inf]]", source.ErrBadValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := source.Decode([]byte(tt.data))
			require.ErrorIs(t, err, tt.want)
		})
	}

	// Unknown fields and non-numeric cells are parse errors.
	_, err := source.Decode([]byte("rows: [[1, 2]]\nmatrix: x\n"))
	require.Error(t, err)
	_, err = source.Decode([]byte("rows: [[1, abc]]"))
	require.Error(t, err)
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.yaml")
	require.NoError(t, os.WriteFile(path, []byte("method: gauss-jordan\nrows:\n  - [0, 1, 5]\n  - [1, 0, 3]\n"), 0o600))

	f := source.File{Path: path}
	rows, err := f.Matrix(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1, 5}, {1, 0, 3}}, rows)

	doc, err := f.Document(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "gauss-jordan", doc.Method)

	_, err = source.File{Path: filepath.Join(t.TempDir(), "missing.yaml")}.Matrix(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReader(t *testing.T) {
	rows, err := source.Reader{R: strings.NewReader("rows:\n  - [1, 1, 3]\n")}.Matrix(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1, 3}}, rows)

	_, err = source.Reader{R: strings.NewReader("")}.Matrix(context.Background())
	require.ErrorIs(t, err, source.ErrInvalidDimensions)
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	sink := source.WriterSink{W: &buf}

	require.NoError(t, sink.Write(context.Background(), "no newline"))
	require.NoError(t, sink.Write(context.Background(), "has newline\n"))
	assert.Equal(t, "no newline\nhas newline\n", buf.String())

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, sink.Write(cancelled, "x"), context.Canceled)
}
