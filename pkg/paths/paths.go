package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// Environment variable names
const (
	// EnvXDGDataHome is consulted first when no explicit state directory is usable
	EnvXDGDataHome = "XDG_DATA_HOME"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
// These names are shared with other tools reading the pointer file and
// are NOT user-configurable.
const (
	// DataDirName is the state directory name under XDG_DATA_HOME
	DataDirName = "wallpaper_controller"

	// HomeDirName is the state directory name under HOME
	HomeDirName = ".wallpaper_controller"

	// RecordFileName holds the path of the current wallpaper
	RecordFileName = "current_wallpaper"

	// SymlinkExt is appended to RecordFileName to name the symlink
	SymlinkExt = "symlink"
)

// RecordPath returns the current-wallpaper record file inside stateDir.
func RecordPath(stateDir string) string {
	return filepath.Join(stateDir, RecordFileName)
}

// SymlinkPath returns the current-wallpaper symlink inside stateDir.
func SymlinkPath(stateDir string) string {
	return filepath.Join(stateDir, RecordFileName+"."+SymlinkExt)
}

// ExpandHome expands a leading ~ to the user's home directory. Paths
// without a leading ~, or when the home directory is unknown, are
// returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
