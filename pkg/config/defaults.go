package config

import (
	_ "embed"
	stderrors "errors"
	"strings"
)

//go:embed embedded/defaults.toml
var defaultsTOML []byte

// defaultsProvider feeds the embedded defaults to koanf. Only the bytes
// interface is used, the parser does the decoding.
type defaultsProvider struct{}

func (defaultsProvider) ReadBytes() ([]byte, error) { return defaultsTOML, nil }

func (defaultsProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("defaults provider only supports ReadBytes")
}

// Defaults returns the embedded defaults file
func Defaults() string {
	return string(defaultsTOML)
}

// GenerateConfigContent returns the defaults with every assignment
// commented out. Section headers and comments are kept, so the result is a
// valid config file that changes nothing until a line is uncommented.
func GenerateConfigContent() string {
	lines := strings.Split(Defaults(), "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || isSection(trimmed) {
			continue
		}
		lines[i] = "# " + line
	}
	return strings.Join(lines, "\n")
}

func isSection(line string) bool {
	return strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]")
}
