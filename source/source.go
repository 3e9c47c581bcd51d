package source

import (
	"context"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidDimensions indicates rows < 1 or cols < 2.
	ErrInvalidDimensions = errors.New("source: invalid dimensions (rows >= 1, columns >= 2)")

	// ErrRaggedRows indicates rows of unequal length.
	ErrRaggedRows = errors.New("source: rows have unequal length")

	// ErrBadValue indicates a cell that is not a finite real number.
	ErrBadValue = errors.New("source: invalid matrix value")
)

// MatrixSource produces an augmented matrix (coefficients plus constants).
type MatrixSource interface {
	Matrix(ctx context.Context) ([][]float64, error)
}

// ReportSink accepts the final report text.
type ReportSink interface {
	Write(ctx context.Context, text string) error
}

// Validate checks the shape contract: at least one row, at least two
// columns, every row the same length.
func Validate(rows [][]float64) error {
	if len(rows) < 1 || len(rows[0]) < 2 {
		return ErrInvalidDimensions
	}
	cols := len(rows[0])
	for i, r := range rows {
		if len(r) != cols {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrRaggedRows, i+1, len(r), cols)
		}
	}

	return nil
}

// WriterSink writes the report to W followed by a newline.
type WriterSink struct {
	W io.Writer
}

// Write implements ReportSink.
func (s WriterSink) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := io.WriteString(s.W, text); err != nil {
		return fmt.Errorf("source: write report: %w", err)
	}
	if len(text) == 0 || text[len(text)-1] != '\n' {
		if _, err := io.WriteString(s.W, "\n"); err != nil {
			return fmt.Errorf("source: write report: %w", err)
		}
	}

	return nil
}
