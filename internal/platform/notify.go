package platform

import (
	"os"
	"runtime"

	"github.com/gen2brain/beeep"
)

// Beep settings
var (
	BeepFrequency = beeep.DefaultFreq
	BeepDuration  = beeep.DefaultDuration
)

// HasDisplay reports whether a graphical session is available. Headless Linux
// has neither DISPLAY nor WAYLAND_DISPLAY.
func HasDisplay() bool {
	if runtime.GOOS != OSLinux {
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// Beep plays the system alert sound
func Beep() error {
	return beeep.Beep(BeepFrequency, BeepDuration)
}

// Notify shows a desktop notification; best-effort, skipped without a display
func Notify(title, body string) error {
	if body == "" || !HasDisplay() {
		return nil
	}
	return beeep.Notify(title, body, "")
}
