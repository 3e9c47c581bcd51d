package report

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rowreduce/gauss"
)

// Document is the structured form of a Result. Row and variable numbers are
// 1-based, matching the text narration.
type Document struct {
	Method        string         `yaml:"method"`
	Original      [][]float64    `yaml:"original,flow"`
	Steps         []StepDoc      `yaml:"steps"`
	Substitutions []Substitution `yaml:"substitutions,omitempty"`
	Solution      Solution       `yaml:"solution"`
}

// StepDoc is one step of the trace.
type StepDoc struct {
	Kind        string      `yaml:"kind"`
	Row         int         `yaml:"row"`
	Source      int         `yaml:"source"`
	Factor      float64     `yaml:"factor,omitempty"`
	Description string      `yaml:"description"`
	Matrix      [][]float64 `yaml:"matrix,flow"`
}

// Substitution is one REF back-substitution record.
type Substitution struct {
	Variable string  `yaml:"variable"`
	Value    float64 `yaml:"value"`
	Free     bool    `yaml:"free,omitempty"`
}

// Solution is the final classification.
type Solution struct {
	Kind            string    `yaml:"kind"`
	Values          []float64 `yaml:"values,omitempty,flow"`
	InconsistentRow int       `yaml:"inconsistent_row,omitempty"`
	Free            []string  `yaml:"free,omitempty,flow"`
	Expressions     []string  `yaml:"expressions,omitempty"`
}

// NewDocument converts res into its structured form.
func NewDocument(res *gauss.Result) Document {
	doc := Document{
		Method:   res.Method.String(),
		Original: res.Original.ToRows(),
		Steps:    make([]StepDoc, 0, len(res.Steps)),
	}
	for _, s := range res.Steps {
		doc.Steps = append(doc.Steps, StepDoc{
			Kind:        s.Kind.String(),
			Row:         s.Row + 1,
			Source:      s.Source + 1,
			Factor:      s.Factor,
			Description: DescribeStep(res.Method, s),
			Matrix:      s.Snapshot.ToRows(),
		})
	}
	for _, s := range res.Substitutions {
		doc.Substitutions = append(doc.Substitutions, Substitution{
			Variable: fmt.Sprintf("x%d", s.Var+1),
			Value:    s.Value,
			Free:     s.Free,
		})
	}

	rep := res.Report
	doc.Solution = Solution{Kind: rep.Kind.String(), Values: rep.Values}
	if rep.Kind == gauss.Inconsistent {
		doc.Solution.InconsistentRow = rep.InconsistentRow + 1
	}
	for _, c := range rep.Free {
		doc.Solution.Free = append(doc.Solution.Free, fmt.Sprintf("x%d", c+1))
	}
	for _, e := range rep.Expressions {
		doc.Solution.Expressions = append(doc.Solution.Expressions, Expression(e))
	}

	return doc
}

// YAML encodes the structured document of res.
func YAML(res *gauss.Result) ([]byte, error) {
	if res == nil {
		return nil, fmt.Errorf("report: nil result")
	}
	out, err := yaml.Marshal(NewDocument(res))
	if err != nil {
		return nil, fmt.Errorf("report: encode yaml: %w", err)
	}

	return out, nil
}
