package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the YAML input format:
//
//	method: rref          # optional: ref | rref | gaussian | gauss-jordan
//	rows:
//	  - [1, 1, 3]
//	  - [1, -1, 1]
type Document struct {
	Method string      `yaml:"method,omitempty"`
	Rows   [][]float64 `yaml:"rows"`
}

// Decode parses a YAML document strictly (unknown fields are rejected) and
// validates its rows.
func Decode(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("source: empty document: %w", ErrInvalidDimensions)
		}
		return nil, fmt.Errorf("source: parse yaml: %w", err)
	}
	if err := Validate(doc.Rows); err != nil {
		return nil, err
	}
	for i, r := range doc.Rows {
		for j, v := range r {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: a[%d,%d]", ErrBadValue, i+1, j+1)
			}
		}
	}

	return &doc, nil
}

// File reads a YAML Document from a path.
type File struct {
	Path string
}

// Matrix implements MatrixSource.
func (f File) Matrix(ctx context.Context) ([][]float64, error) {
	doc, err := f.Document(ctx)
	if err != nil {
		return nil, err
	}

	return doc.Rows, nil
}

// Document reads and decodes the whole file, including the optional method.
func (f File) Document(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", f.Path, err)
	}

	return Decode(data)
}

// Reader reads a YAML Document from R (for example stdin).
type Reader struct {
	R io.Reader
}

// Matrix implements MatrixSource.
func (r Reader) Matrix(ctx context.Context) ([][]float64, error) {
	doc, err := r.Document(ctx)
	if err != nil {
		return nil, err
	}

	return doc.Rows, nil
}

// Document reads and decodes everything from R.
func (r Reader) Document(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r.R)
	if err != nil {
		return nil, fmt.Errorf("source: read input: %w", err)
	}

	return Decode(data)
}
