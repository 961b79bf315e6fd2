package audio

import "strings"

// LoopbackKeywords identify devices that capture the system's own output.
// "monitor" matches PulseAudio/PipeWire monitor sources.
var LoopbackKeywords = []string{"stereo mix", "立体声混音", "what u hear", "loopback", "monitor"}

// Device is an audio device as reported by the capture backend
type Device struct {
	Index            int
	Name             string
	MaxInputChannels int
}

// IsLoopback reports whether the device name matches a loopback keyword
func (d Device) IsLoopback() bool {
	name := strings.ToLower(d.Name)
	for _, kw := range LoopbackKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// SelectLoopback returns the first input-capable loopback device
func SelectLoopback(devices []Device) (Device, bool) {
	for _, d := range devices {
		if d.MaxInputChannels > 0 && d.IsLoopback() {
			return d, true
		}
	}
	return Device{}, false
}
