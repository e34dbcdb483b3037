package unity

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"time"

	"github.com/arthur-debert/unitool/pkg/errors"
)

// Result is the outcome of a finished process
type Result struct {
	Stdout   []byte
	ExitCode int
}

// Executor runs an external program to completion
type Executor interface {
	// Run starts name with args and waits for it to exit. A non-zero exit
	// status is reported through Result.ExitCode, not as an error.
	Run(ctx context.Context, name string, args []string) (Result, error)
}

// waitDelay bounds how long output is drained after the process is killed,
// since the editor leaves helper processes holding its stdout
const waitDelay = 10 * time.Second

// ExecExecutor runs programs with os/exec
type ExecExecutor struct{}

// Run implements Executor
func (ExecExecutor) Run(ctx context.Context, name string, args []string) (Result, error) {
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Result{Stdout: stdout.Bytes(), ExitCode: -1},
			errors.Wrapf(ctxErr, errors.ErrRunnerExecute, "%s did not finish", name)
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return Result{Stdout: stdout.Bytes(), ExitCode: exitErr.ExitCode()}, nil
	}
	if err != nil {
		return Result{ExitCode: -1}, errors.Wrapf(err, errors.ErrRunnerExecute, "cannot run %s", name)
	}
	return Result{Stdout: stdout.Bytes()}, nil
}
