package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the timesheet-mcp configuration directory.
//
// Resolution:
//   - $TIMESHEET_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/timesheet-mcp if set (respects XDG on any platform)
//   - %AppData%/timesheet-mcp on Windows
//   - ~/.config/timesheet-mcp on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("TIMESHEET_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "timesheet-mcp")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "timesheet-mcp")
		}
	}

	// macOS and Linux: ~/.config/timesheet-mcp
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "timesheet-mcp")
}
