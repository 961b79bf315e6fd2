// Package logging provides leveled, colorized log helpers on top of the
// standard logger.
package logging

import (
	"log"
	"os"
	"sync/atomic"

	"github.com/fatih/color"
)

// EnvDebug enables debug output when set to "1" or "true"
const EnvDebug = "WALLPANEL_DEBUG"

var debugEnabled atomic.Bool

var (
	colorDebug   = color.New(color.FgCyan).SprintfFunc()
	colorInfo    = color.New(color.FgGreen).SprintfFunc()
	colorWarning = color.New(color.FgYellow).SprintfFunc()
	colorError   = color.New(color.FgRed, color.Bold).SprintfFunc()
)

func init() {
	v := os.Getenv(EnvDebug)
	debugEnabled.Store(v == "1" || v == "true")
}

// SetDebug toggles debug output
func SetDebug(enabled bool) {
	debugEnabled.Store(enabled)
}

// DebugEnabled reports whether debug output is on
func DebugEnabled() bool {
	return debugEnabled.Load()
}

// Debugf prints debug messages if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if debugEnabled.Load() {
		log.Print(colorDebug("[DEBUG] "+format, args...))
	}
}

// Infof prints info messages
func Infof(format string, args ...interface{}) {
	log.Print(colorInfo("[INFO] "+format, args...))
}

// Warnf prints warning messages
func Warnf(format string, args ...interface{}) {
	log.Print(colorWarning("[WARNING] "+format, args...))
}

// Errorf prints error messages
func Errorf(format string, args ...interface{}) {
	log.Print(colorError("[ERROR] "+format, args...))
}
