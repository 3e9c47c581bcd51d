package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rowreduce/config"
	"github.com/katalvlaran/rowreduce/gauss"
	"github.com/katalvlaran/rowreduce/logging"
	"github.com/katalvlaran/rowreduce/report"
	"github.com/katalvlaran/rowreduce/source"
)

// errConflictingInput is returned when both --file and --matrix are given.
var errConflictingInput = errors.New("use either --file or --matrix, not both")

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	Method string
	File   string
	Matrix string
}

// documentSource is a MatrixSource that can also carry a method name.
type documentSource interface {
	Document(ctx context.Context) (*source.Document, error)
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{}

	cmd := &cobra.Command{
		Use:   "solve [-]",
		Short: "Solve a linear system and narrate every row operation",
		Long: `Solve a system given as an augmented matrix [A | b].

The matrix comes from --matrix ("1 1 3; 1 -1 1"), from a YAML file given
with --file, or from YAML on stdin ("-" or no argument):

  method: rref
  rows:
    - [1, 1, 3]
    - [1, -1, 1]

The method is taken from --method, then the document, then configuration.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // main prints non-reported errors
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, rootOpts, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Method, "method", "", "elimination method (ref|rref|gaussian|gauss-jordan)")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "YAML input file")
	cmd.Flags().StringVarP(&opts.Matrix, "matrix", "m", "", `inline matrix, rows separated by ';' (e.g. "1 1 3; 1 -1 1")`)

	return cmd
}

func runSolve(cmd *cobra.Command, rootOpts *RootOptions, opts *SolveOptions, args []string) error {
	cfg, err := loadConfig(rootOpts)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr()).
		With("run_id", uuid.NewString())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	sink := source.WriterSink{W: cmd.OutOrStdout()}

	text, err := solveToText(ctx, cfg, opts, args, cmd, logger)
	if err != nil {
		logger.Debug("solve failed", "error", err)
		if werr := sink.Write(ctx, report.ErrorMessage); werr != nil {
			return WrapExitError(ExitFailure, "writing report", werr)
		}
		return &ExitError{Code: ExitCommandError, Message: report.ErrorMessage, Err: err, Reported: true}
	}

	if err := sink.Write(ctx, text); err != nil {
		return WrapExitError(ExitFailure, "writing report", err)
	}
	return nil
}

// loadConfig applies defaults, file, environment and finally flags.
func loadConfig(rootOpts *RootOptions) (*config.Config, error) {
	cfg, err := config.Load(rootOpts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if rootOpts.Format != "" {
		cfg.Output.Format = rootOpts.Format
	}
	if rootOpts.LogLevel != "" {
		cfg.Logging.Level = rootOpts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func solveToText(ctx context.Context, cfg *config.Config, opts *SolveOptions, args []string, cmd *cobra.Command, logger *slog.Logger) (string, error) {
	rows, docMethod, err := readInput(ctx, opts, args, cmd)
	if err != nil {
		return "", err
	}

	name := cfg.Solver.Method
	if docMethod != "" {
		name = docMethod
	}
	if opts.Method != "" {
		name = opts.Method
	}
	method, err := gauss.ParseMethod(name)
	if err != nil {
		return "", err
	}

	logger.Info("solve started", "method", method.String(), "rows", len(rows), "cols", len(rows[0]))

	res, err := gauss.Solve(rows, method, cfg.SolverOptions()...)
	if err != nil {
		return "", err
	}

	for i, s := range res.Steps {
		logger.Log(ctx, logging.LevelTrace, "step", "n", i+1, "kind", s.Kind.String(), "row", s.Row+1, "source", s.Source+1, "factor", s.Factor)
	}
	logger.Info("solve finished",
		"classification", res.Report.Kind.String(),
		"steps", len(res.Steps),
		"pivots", len(res.PivotColumns))
	if res.Report.Kind == gauss.Unique {
		if worst, rerr := res.MaxResidual(); rerr == nil {
			logger.Debug("residual check", "max_residual", worst)
		}
	}

	if cfg.Output.Format == "yaml" {
		data, err := report.YAML(res)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return report.Text(res), nil
}

// readInput picks the matrix source from flags and arguments.
func readInput(ctx context.Context, opts *SolveOptions, args []string, cmd *cobra.Command) ([][]float64, string, error) {
	if opts.File != "" && opts.Matrix != "" {
		return nil, "", errConflictingInput
	}
	if len(args) == 1 && args[0] != "-" {
		return nil, "", fmt.Errorf("unexpected argument %q (use --file)", args[0])
	}

	if opts.Matrix != "" {
		rows, err := source.Inline{Text: opts.Matrix}.Matrix(ctx)
		return rows, "", err
	}

	var src documentSource = source.Reader{R: cmd.InOrStdin()}
	if opts.File != "" {
		src = source.File{Path: opts.File}
	}
	doc, err := src.Document(ctx)
	if err != nil {
		return nil, "", err
	}
	return doc.Rows, doc.Method, nil
}
