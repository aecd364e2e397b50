package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// CreateDirectoryIfNotExists ensures the given directory exists
func CreateDirectoryIfNotExists(dir string) error {
	if dir == "" {
		return fmt.Errorf("directory path is empty")
	}
	if info, err := os.Stat(dir); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("path exists but is not a directory: %s", dir)
		}
		return nil
	}
	return os.MkdirAll(dir, DefaultDirPermissions)
}

// OpenFileInManager reveals a file in the system file manager. Used after
// an offline bundle export completes so the operator can grab the zip.
func OpenFileInManager(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("file path is empty")
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, filePath).Start()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam+filePath).Start()
	default:
		// Linux file managers cannot reliably select a file; open the
		// containing directory instead.
		return exec.Command(XDGOpenCommand, filepath.Dir(filePath)).Start()
	}
}

// GetHomeDir returns the user's home directory
func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return home, nil
}
