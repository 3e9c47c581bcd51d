package source

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Inline parses a matrix written on one line: rows separated by ';',
// cells by whitespace and/or commas, e.g. "1 1 3; 1 -1 1".
type Inline struct {
	Text string
}

// Matrix implements MatrixSource.
func (in Inline) Matrix(ctx context.Context) ([][]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := ParseInline(in.Text)
	if err != nil {
		return nil, err
	}
	if err = Validate(rows); err != nil {
		return nil, err
	}

	return rows, nil
}

// ParseInline splits text into rows of finite floats. Empty trailing rows
// (e.g. a final ';') are ignored; empty rows elsewhere are an error.
func ParseInline(text string) ([][]float64, error) {
	parts := strings.Split(strings.TrimSpace(text), ";")
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}

	rows := make([][]float64, 0, len(parts))
	for i, p := range parts {
		fields := strings.FieldsFunc(p, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) == 0 {
			return nil, fmt.Errorf("%w: row %d is empty", ErrInvalidDimensions, i+1)
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: a[%d,%d] = %q", ErrBadValue, i+1, j+1, f)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return rows, nil
}
