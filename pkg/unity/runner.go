package unity

import (
	"context"
	"os"
	"time"

	"github.com/arthur-debert/unitool/pkg/errors"
	"github.com/arthur-debert/unitool/pkg/logging"
	"github.com/arthur-debert/unitool/pkg/report"
	"github.com/rs/zerolog"
)

// DefaultResultsPath is where the results file is written unless configured
const DefaultResultsPath = "/tmp/unity-test-results.xml"

// Options configures a Runner
type Options struct {
	// Editor is the editor executable, usually found with FindEditor
	Editor string
	// ResultsPath is the results file the editor writes during a test run
	ResultsPath string
	// Timeout bounds a single editor invocation. Zero means no limit.
	Timeout time.Duration
	// VerifyCounts enables the suite counter check when parsing results
	VerifyCounts bool
	// ExtraArgs are appended to every editor command line
	ExtraArgs []string
}

// Runner compiles projects and runs their tests through the editor
type Runner struct {
	opts     Options
	executor Executor
	logger   zerolog.Logger
}

// NewRunner creates a runner. A nil executor runs processes with os/exec.
func NewRunner(opts Options, executor Executor) *Runner {
	if executor == nil {
		executor = ExecExecutor{}
	}
	if opts.ResultsPath == "" {
		opts.ResultsPath = DefaultResultsPath
	}
	return &Runner{
		opts:     opts,
		executor: executor,
		logger:   logging.GetLogger("unity.runner"),
	}
}

// TestRun is the outcome of a test run. Report is nil when compilation failed.
type TestRun struct {
	CompileErrors CompileErrors
	Report        *report.Report
	ExitCode      int
}

// Compile opens the project, lets the editor compile it and returns the
// compiler errors it logged. extra follows Options.ExtraArgs on the command
// line.
func (r *Runner) Compile(ctx context.Context, project string, extra ...string) (CompileErrors, error) {
	if err := checkProject(project); err != nil {
		return nil, err
	}

	args := append(append([]string{}, r.opts.ExtraArgs...), extra...)
	res, err := r.run(ctx, CompileArgs(project, args))
	if err != nil {
		return nil, err
	}

	errs := ExtractCompileErrors(res.Stdout)
	r.logger.Info().
		Int("exitCode", res.ExitCode).
		Int("compileErrors", len(errs)).
		Msg("Compilation finished")
	return errs, nil
}

// Test compiles the project and runs the selected tests. When compilation
// succeeds the results file is parsed into TestRun.Report.
func (r *Runner) Test(ctx context.Context, project string, opts TestOptions) (*TestRun, error) {
	if err := checkProject(project); err != nil {
		return nil, err
	}

	// a results file left by an earlier run must not be mistaken for this one
	if err := os.Remove(r.opts.ResultsPath); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot remove stale results file %s", r.opts.ResultsPath).
			WithDetail("file", r.opts.ResultsPath)
	}

	opts.ExtraArgs = append(append([]string{}, r.opts.ExtraArgs...), opts.ExtraArgs...)
	res, err := r.run(ctx, TestArgs(project, opts, r.opts.ResultsPath))
	if err != nil {
		return nil, err
	}

	run := &TestRun{
		CompileErrors: ExtractCompileErrors(res.Stdout),
		ExitCode:      res.ExitCode,
	}
	if !run.CompileErrors.Empty() {
		r.logger.Info().Int("compileErrors", len(run.CompileErrors)).Msg("Compilation failed, no results")
		return run, nil
	}

	rep, err := report.ParseFile(r.opts.ResultsPath, report.WithCountCheck(r.opts.VerifyCounts))
	if err != nil {
		return nil, err
	}
	run.Report = rep

	totals := rep.Totals()
	r.logger.Info().
		Str("mode", opts.Mode.String()).
		Int("passed", totals.Passed).
		Int("failed", totals.Failed).
		Int("skipped", totals.Skipped).
		Msg("Tests finished")
	return run, nil
}

func (r *Runner) run(ctx context.Context, args []string) (Result, error) {
	if r.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.Timeout)
		defer cancel()
	}

	done := logging.LogOperationStart(r.logger, "unity")
	defer done()
	logging.LogCommand(r.logger, r.opts.Editor, args)
	r.logger.Info().Str("command", CommandLine(r.opts.Editor, args)).Msg("Running editor")

	res, err := r.executor.Run(ctx, r.opts.Editor, args)
	if err != nil {
		return Result{}, err
	}
	r.logger.Debug().Int("exitCode", res.ExitCode).Int("outputBytes", len(res.Stdout)).Msg("Editor exited")
	return res, nil
}

func checkProject(project string) error {
	info, err := os.Stat(project)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "cannot access project %s", project).
			WithDetail("project", project)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput, "project %s is not a directory", project).
			WithDetail("project", project)
	}
	return nil
}
