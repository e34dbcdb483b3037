package unitool

import (
	stderrors "errors"

	"github.com/arthur-debert/unitool/pkg/errors"
	"github.com/arthur-debert/unitool/pkg/logging"
)

// reportedError marks an error whose details were already printed. Only
// the exit status is left to set.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

// IsReported reports whether err was already shown to the user
func IsReported(err error) bool {
	var r *reportedError
	return stderrors.As(err, &r)
}

// LogFailure records a failed command in the log, with the code and
// details of coded errors as separate fields
func LogFailure(err error) {
	logger := logging.GetLogger("cmd")
	event := logger.Debug().Err(err).Str("code", string(errors.GetErrorCode(err)))
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		event = event.Fields(details)
	}
	event.Bool("reported", IsReported(err)).Msg("Command failed")
}
