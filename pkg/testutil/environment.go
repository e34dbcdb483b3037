package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/unitool/pkg/paths"
)

// TestEnvironment is a throwaway installation: every location unitool reads
// or writes points into a temp dir for the duration of the test
type TestEnvironment struct {
	t *testing.T

	Root        string
	ConfigDir   string
	StateDir    string
	ProjectDir  string
	EditorPath  string
	ResultsPath string
}

// NewTestEnvironment creates the directories and sets the UNITOOL_
// environment variables pointing at them. It also sets NO_COLOR so
// output is plain text. Tests using it must not run in parallel.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		t:           t,
		Root:        root,
		ConfigDir:   CreateDir(t, root, "config"),
		StateDir:    CreateDir(t, root, "state"),
		ProjectDir:  CreateDir(t, root, "Game"),
		EditorPath:  CreateExecutable(t, root, filepath.Join("Unity", "Editor", "Unity")),
		ResultsPath: filepath.Join(root, "results.xml"),
	}

	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvStateDir, env.StateDir)
	env.SetConfig("UNITY__EDITOR_PATH", env.EditorPath)
	env.SetConfig("UNITY__RESULTS_PATH", env.ResultsPath)
	t.Setenv("NO_COLOR", "1")
	return env
}

// SetConfig overrides a configuration key through its environment variable,
// e.g. SetConfig("REPORT__VERIFY_COUNTS", "false")
func (env *TestEnvironment) SetConfig(key, value string) {
	env.t.Setenv("UNITOOL_"+key, value)
}

// ConfigFile returns the user config file location
func (env *TestEnvironment) ConfigFile() string {
	return paths.ConfigFile()
}
