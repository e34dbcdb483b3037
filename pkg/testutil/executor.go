package testutil

import (
	"context"
	"os"
	"sync"

	"github.com/arthur-debert/unitool/pkg/unity"
)

// Call records one FakeExecutor invocation
type Call struct {
	Name     string
	Args     []string
	Deadline bool
}

// FakeExecutor stands in for the editor. Each run prints Stdout, exits with
// ExitCode and, when Results is set, writes it to the path following
// -testResults.
type FakeExecutor struct {
	Stdout   string
	ExitCode int
	Err      error
	Results  string

	mu    sync.Mutex
	calls []Call
}

// Run implements unity.Executor
func (f *FakeExecutor) Run(ctx context.Context, name string, args []string) (unity.Result, error) {
	_, deadline := ctx.Deadline()
	f.mu.Lock()
	f.calls = append(f.calls, Call{Name: name, Args: append([]string{}, args...), Deadline: deadline})
	f.mu.Unlock()

	if f.Err != nil {
		return unity.Result{ExitCode: -1}, f.Err
	}
	if f.Results != "" {
		if path := ArgValue(args, "-testResults"); path != "" {
			if err := os.WriteFile(path, []byte(f.Results), 0644); err != nil {
				return unity.Result{ExitCode: -1}, err
			}
		}
	}
	return unity.Result{Stdout: []byte(f.Stdout), ExitCode: f.ExitCode}, nil
}

// Calls returns every recorded invocation
func (f *FakeExecutor) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call{}, f.calls...)
}

// LastArgs returns the arguments of the most recent invocation
func (f *FakeExecutor) LastArgs() []string {
	calls := f.Calls()
	if len(calls) == 0 {
		return nil
	}
	return calls[len(calls)-1].Args
}

// ArgValue returns the argument following flag, or "" when absent
func ArgValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
