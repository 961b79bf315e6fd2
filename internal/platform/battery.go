package platform

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// PowerSupplyDir is where Linux exposes batteries
var PowerSupplyDir = "/sys/class/power_supply"

// BatteryStatus is a battery reading
type BatteryStatus struct {
	Percent  int
	Charging bool
}

// Battery reads the first battery. ok is false when none is present or the
// platform has no sysfs power supply class.
func Battery() (status BatteryStatus, ok bool) {
	matches, err := filepath.Glob(filepath.Join(PowerSupplyDir, "BAT*"))
	if err != nil || len(matches) == 0 {
		return BatteryStatus{}, false
	}

	raw, err := os.ReadFile(filepath.Join(matches[0], "capacity"))
	if err != nil {
		return BatteryStatus{}, false
	}
	percent, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return BatteryStatus{}, false
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	status.Percent = percent
	if s, err := os.ReadFile(filepath.Join(matches[0], "status")); err == nil {
		state := strings.TrimSpace(string(s))
		status.Charging = state == "Charging" || state == "Full"
	}
	return status, true
}
