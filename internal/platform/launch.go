package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
	MacOSAppFlag   = "-a"
	MacOSAppSuffix = ".app"
)

// ErrEmptyPath is returned when asked to launch an unconfigured executable
var ErrEmptyPath = errors.New("executable path is empty")

// execCommand is replaced in tests
var execCommand = exec.Command

// LaunchDetached starts path with args and does not wait for it.
// macOS .app bundles are started through open(1).
func LaunchDetached(path string, args ...string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("executable not found: %s: %w", path, err)
	}

	var cmd *exec.Cmd
	if runtime.GOOS == OSDarwin && strings.HasSuffix(path, MacOSAppSuffix) {
		openArgs := []string{MacOSAppFlag, path}
		if len(args) > 0 {
			openArgs = append(append(openArgs, "--args"), args...)
		}
		cmd = execCommand(OpenCommand, openArgs...)
	} else {
		cmd = execCommand(path, args...)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", path, err)
	}
	go cmd.Wait()
	return nil
}

// OpenURL opens url with the system default handler
func OpenURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case OSDarwin:
		cmd = execCommand(OpenCommand, url)
	case OSWindows:
		cmd = execCommand(CmdCommand, WindowsCmdFlag, StartCommand, "", url)
	default:
		cmd = execCommand(XDGOpenCommand, url)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	go cmd.Wait()
	return nil
}
