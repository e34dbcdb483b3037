package errors_test

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/arthur-debert/unitool/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "plain",
			err:  errors.New(errors.ErrInvalidInput, "no command specified"),
			want: "[INVALID_INPUT] no command specified",
		},
		{
			name: "formatted",
			err:  errors.Newf(errors.ErrMalformedReport, "unknown tag %q at %s", "attachment", "/test-run/test-suite[1]"),
			want: `[MALFORMED_REPORT] unknown tag "attachment" at /test-run/test-suite[1]`,
		},
		{
			name: "wrapped",
			err:  errors.Wrap(fs.ErrNotExist, errors.ErrIO, "cannot open results.xml"),
			want: "[IO_ERROR] cannot open results.xml: file does not exist",
		},
		{
			name: "wrapped formatted",
			err:  errors.Wrapf(fmt.Errorf("exit status 2"), errors.ErrRunnerExecute, "editor %s failed", "Unity"),
			want: "[RUNNER_EXECUTE] editor Unity failed: exit status 2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrIO, "ignored"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrIO, "ignored %d", 1))
}

func TestUnwrap(t *testing.T) {
	err := errors.Wrap(fs.ErrPermission, errors.ErrIO, "cannot read report")
	assert.True(t, stderrors.Is(err, fs.ErrPermission))
	assert.Equal(t, fs.ErrPermission, stderrors.Unwrap(err))
}

func TestIsMatchesByCode(t *testing.T) {
	parse := errors.New(errors.ErrMalformedReport, "bad counts")
	other := errors.New(errors.ErrMalformedReport, "unknown result")

	assert.True(t, stderrors.Is(parse, other))
	assert.False(t, stderrors.Is(parse, errors.New(errors.ErrIO, "bad counts")))
	assert.False(t, stderrors.Is(parse, fmt.Errorf("bad counts")))

	wrapped := fmt.Errorf("report command: %w", parse)
	assert.True(t, stderrors.Is(wrapped, other))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrMalformedReport, "count mismatch").
		WithDetail("path", "/test-run/test-suite[2]").
		WithDetail("total", 4)

	assert.Equal(t, map[string]interface{}{
		"path":  "/test-run/test-suite[2]",
		"total": 4,
	}, err.Details)

	bare := &errors.UnitoolError{Code: errors.ErrIO}
	bare.WithDetail("file", "results.xml")
	assert.Equal(t, "results.xml", bare.Details["file"])
}

func TestCodeHelpers(t *testing.T) {
	coded := errors.New(errors.ErrEditorNotFound, "no editor under /opt/Unity").
		WithDetail("dir", "/opt/Unity")
	chained := fmt.Errorf("test: %w", coded)
	plain := fmt.Errorf("plain")

	t.Run("IsErrorCode", func(t *testing.T) {
		assert.True(t, errors.IsErrorCode(coded, errors.ErrEditorNotFound))
		assert.True(t, errors.IsErrorCode(chained, errors.ErrEditorNotFound))
		assert.False(t, errors.IsErrorCode(coded, errors.ErrRunnerExecute))
		assert.False(t, errors.IsErrorCode(plain, errors.ErrEditorNotFound))
		assert.False(t, errors.IsErrorCode(nil, errors.ErrEditorNotFound))
	})

	t.Run("GetErrorCode", func(t *testing.T) {
		assert.Equal(t, errors.ErrEditorNotFound, errors.GetErrorCode(chained))
		assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(plain))
		assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
	})

	t.Run("GetErrorDetails", func(t *testing.T) {
		details := errors.GetErrorDetails(chained)
		require.NotNil(t, details)
		assert.Equal(t, "/opt/Unity", details["dir"])
		assert.Nil(t, errors.GetErrorDetails(plain))
	})
}
