package unity

import (
	"strings"

	"github.com/arthur-debert/unitool/pkg/errors"
)

// Mode selects the test platform
type Mode int

const (
	EditMode Mode = iota
	PlayMode
)

// String returns the -testPlatform value of the mode
func (m Mode) String() string {
	switch m {
	case PlayMode:
		return "PlayMode"
	default:
		return "EditMode"
	}
}

// ParseMode accepts edit, editmode, play and playmode in any case
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "edit", "editmode":
		return EditMode, nil
	case "play", "playmode":
		return PlayMode, nil
	default:
		return EditMode, errors.Newf(errors.ErrInvalidInput, "unknown test mode %q (want edit or play)", s).
			WithDetail("mode", s)
	}
}
