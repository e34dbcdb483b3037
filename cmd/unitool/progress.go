package unitool

import (
	"os"

	"github.com/arthur-debert/unitool/pkg/logging"
	"github.com/pterm/pterm"
)

// progress reports a long running step. On a terminal it shows a spinner on
// stderr; elsewhere it only logs.
type progress struct {
	spinner *pterm.SpinnerPrinter
	message string
}

func startProgress(message string) *progress {
	p := &progress{message: message}
	logger := logging.GetLogger("cmd.progress")
	logger.Info().Msg(message)
	if !isTerminal(os.Stderr) {
		return p
	}
	spinner, err := pterm.DefaultSpinner.
		WithWriter(os.Stderr).
		WithRemoveWhenDone(true).
		Start(message)
	if err == nil {
		p.spinner = spinner
	}
	return p
}

// stop removes the spinner, if any
func (p *progress) stop() {
	if p.spinner != nil {
		_ = p.spinner.Stop()
		p.spinner = nil
	}
}
