package report_test

import (
	"bytes"
	"os"
	"os/exec"
	"testing"

	"github.com/arthur-debert/unitool/pkg/render"
	"github.com/arthur-debert/unitool/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quietChildEnv = "UNITOOL_QUIET_CHILD"

// The default zerolog logger captured os.Stderr when the process started,
// so parsing runs in a child test process whose stderr is collected.
func TestParseAndRenderWriteNothingToStderr(t *testing.T) {
	if os.Getenv(quietChildEnv) == "1" {
		rep, err := report.ParseFile("testdata/editmode-results.xml")
		if err != nil {
			t.Fatal(err)
		}
		_ = render.Report(rep)
		if _, err := report.ParseBytes([]byte("<test-run><bogus/></test-run>")); err == nil {
			t.Fatal("expected a malformed report")
		}
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestParseAndRenderWriteNothingToStderr$")
	cmd.Env = append(os.Environ(), quietChildEnv+"=1")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	require.NoError(t, cmd.Run(), "child output: %s", stdout.String())
	assert.Empty(t, stderr.String())
}
