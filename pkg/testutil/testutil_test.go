package testutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/unitool/pkg/paths"
	"github.com/arthur-debert/unitool/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateFile(t, dir, filepath.Join("a", "b.txt"), "hi")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(data))
}

func TestCreateExecutable(t *testing.T) {
	path := testutil.CreateExecutable(t, t.TempDir(), "tool")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0100)
}

func TestNewTestEnvironment(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	assert.Equal(t, env.ConfigDir, paths.ConfigDir())
	assert.Equal(t, filepath.Join(env.StateDir, paths.LogFileName), paths.LogFile())
	assert.Equal(t, env.EditorPath, os.Getenv("UNITOOL_UNITY__EDITOR_PATH"))
	assert.DirExists(t, env.ProjectDir)
	assert.FileExists(t, env.EditorPath)
	assert.NoFileExists(t, env.ResultsPath)

	env.SetConfig("OUTPUT__COLOR", "never")
	assert.Equal(t, "never", os.Getenv("UNITOOL_OUTPUT__COLOR"))
}

func TestFakeExecutor(t *testing.T) {
	results := filepath.Join(t.TempDir(), "r.xml")
	exec := &testutil.FakeExecutor{Stdout: "log", ExitCode: 2, Results: "<test-run/>"}

	res, err := exec.Run(context.Background(), "Unity", []string{"-testResults", results})
	require.NoError(t, err)
	assert.Equal(t, "log", string(res.Stdout))
	assert.Equal(t, 2, res.ExitCode)

	data, err := os.ReadFile(results)
	require.NoError(t, err)
	assert.Equal(t, "<test-run/>", string(data))

	require.Len(t, exec.Calls(), 1)
	assert.Equal(t, "Unity", exec.Calls()[0].Name)
	assert.False(t, exec.Calls()[0].Deadline)
	assert.Equal(t, []string{"-testResults", results}, exec.LastArgs())
}

func TestArgValue(t *testing.T) {
	args := []string{"-a", "1", "-b"}
	assert.Equal(t, "1", testutil.ArgValue(args, "-a"))
	assert.Equal(t, "", testutil.ArgValue(args, "-b"))
	assert.Equal(t, "", testutil.ArgValue(args, "-c"))
}
