package config

import (
	"os"
	"path/filepath"
)

const appDirName = "kun"

// DefaultPath resolves the config file location under the per-user
// config directory, falling back to a dot directory in $HOME when the
// platform config dir cannot be determined.
func DefaultPath() string {
	return filepath.Join(DataDir(), "config.json")
}

// DataDir is the directory holding the config file and the user themes
// directory.
func DataDir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, appDirName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "."+appDirName)
	}
	return appDirName
}

// ThemesDir is where user-provided theme definitions live. Definitions
// here shadow the builtin themes of the same id.
func ThemesDir() string {
	return filepath.Join(DataDir(), "themes")
}
