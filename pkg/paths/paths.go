// Package paths provides the XDG based locations unitool reads its
// configuration from and writes its log file to.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for unitool
	EnvConfigDir = "UNITOOL_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for unitool
	EnvStateDir = "UNITOOL_STATE_DIR"
)

const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "unitool"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "unitool.log"
)

// ConfigDir returns the directory holding the user configuration file
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the path of the user configuration file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the directory holding unitool state such as the log file
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFile returns the path of the log file
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}
