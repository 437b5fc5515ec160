package util

import (
	"os"
	"path/filepath"
	"runtime"
)

// GetWorkspaceDir returns the path to the workspace directory where the
// change journal lives. It checks the BTIME_WS_DIR environment variable
// first, then defaults to:
// - $HOME/.local/share/btime on Linux/Mac
// - %LOCALAPPDATA%\btime on Windows
func GetWorkspaceDir() (string, error) {
	wsDir := os.Getenv("BTIME_WS_DIR")
	switch {
	case wsDir != "":
		// Ensure BTIME_WS_DIR is treated as an absolute path
		if !filepath.IsAbs(wsDir) {
			absPath, err := filepath.Abs(wsDir)
			if err != nil {
				return "", err
			}
			wsDir = absPath
		}
	case runtime.GOOS == "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		wsDir = filepath.Join(localAppData, "btime")
	default:
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		wsDir = filepath.Join(homeDir, ".local", "share", "btime")
	}

	// Ensure directory exists
	if err := os.MkdirAll(wsDir, 0755); err != nil {
		return "", err
	}

	return wsDir, nil
}

// GetDBPath returns the path to the journal database file
func GetDBPath() (string, error) {
	wsDir, err := GetWorkspaceDir()
	if err != nil {
		return "", err
	}
	dbDir := filepath.Join(wsDir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dbDir, "btime.db"), nil
}
