package unity

import (
	"github.com/arthur-debert/unitool/pkg/errors"
	shellquote "github.com/kballard/go-shellquote"
)

// DefaultAssemblies are the test assemblies run when none are given
const DefaultAssemblies = "EditTests;PlayTests"

// TestOptions selects which tests a run executes
type TestOptions struct {
	Mode Mode
	// Filters is a ";" separated list passed to -testFilter. Empty runs everything.
	Filters string
	// Assemblies is a ";" separated list passed to -assemblyNames
	Assemblies string
	// ExtraArgs are appended verbatim to the editor command line
	ExtraArgs []string
}

// baseArgs runs the editor headless, logging to stdout
func baseArgs(project string) []string {
	return []string{
		"-batchmode",
		"-logfile", "-",
		"-projectPath", project,
	}
}

// CompileArgs returns the arguments that open project, compile it and quit
func CompileArgs(project string, extra []string) []string {
	args := append(baseArgs(project), "-quit")
	return append(args, extra...)
}

// TestArgs returns the arguments that compile project and run its tests,
// writing the results file to resultsPath
func TestArgs(project string, opts TestOptions, resultsPath string) []string {
	assemblies := opts.Assemblies
	if assemblies == "" {
		assemblies = DefaultAssemblies
	}

	args := append(baseArgs(project),
		"-runTests",
		"-testPlatform", opts.Mode.String(),
		"-testResults", resultsPath,
		"-testFilter", opts.Filters,
		"-assemblyNames", assemblies,
	)

	// edit mode tests lock up the editor in batch mode unless run synchronously
	if opts.Mode == EditMode {
		args = append(args, "-runSynchronously")
	}
	return append(args, opts.ExtraArgs...)
}

// SplitExtraArgs splits a shell-quoted string of additional editor arguments
func SplitExtraArgs(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	args, err := shellquote.Split(s)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot parse editor arguments %q", s)
	}
	return args, nil
}

// CommandLine renders a command and its arguments as a shell-quoted string
func CommandLine(name string, args []string) string {
	return shellquote.Join(append([]string{name}, args...)...)
}
