package store

import (
	"os"
	"path/filepath"
	"runtime"
)

// EnvDataDir overrides the data directory when set.
const EnvDataDir = "WEEKBOARD_DIR"

const appName = "weekboard"

// ResolveDataDir picks the data directory: an explicit flag value wins, then
// $WEEKBOARD_DIR, then the OS default.
func ResolveDataDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir
	}
	return DefaultDataDir()
}

// DefaultDataDir returns the OS-appropriate default data directory.
//
//   - macOS:   ~/Library/Application Support/weekboard
//   - Linux:   $XDG_DATA_HOME/weekboard (fallback ~/.local/share/weekboard)
//   - Windows: %LOCALAPPDATA%\weekboard (fallback %APPDATA%\weekboard)
func DefaultDataDir() string {
	return defaultDataDirForOS(runtime.GOOS)
}

func defaultDataDirForOS(goos string) string {
	home, _ := os.UserHomeDir()

	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", appName)
	case "windows":
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, appName)
		}
		if dir := os.Getenv("APPDATA"); dir != "" {
			return filepath.Join(dir, appName)
		}
		return filepath.Join(home, appName)
	default: // linux, freebsd, etc.
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return filepath.Join(dir, appName)
		}
		return filepath.Join(home, ".local", "share", appName)
	}
}
