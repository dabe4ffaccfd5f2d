// Package config resolves quill's configuration directory, config file,
// environment files and timezone.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Dir returns the quill configuration directory.
//
// Resolution:
//   - $QUILL_CONFIG_HOME if set
//   - $XDG_CONFIG_HOME/quill if set (any platform)
//   - %AppData%/quill on Windows
//   - ~/.config/quill elsewhere
func Dir() string {
	if dir := os.Getenv("QUILL_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "quill")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "quill")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "quill")
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
