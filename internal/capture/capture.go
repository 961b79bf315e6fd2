// Package capture feeds a loopback input stream from PortAudio into an
// audio.Extractor.
package capture

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/wallpanel/wallpanel/internal/audio"
	"github.com/wallpanel/wallpanel/internal/logging"
)

// Stream parameters
const (
	SampleRate      = 44100
	Channels        = 2
	FramesPerBuffer = audio.DefaultFrameSize
)

// ErrNoLoopbackDevice is returned when no input device looks like a loopback source
var ErrNoLoopbackDevice = errors.New("no loopback capture device found")

// Loopback captures the system's output through a loopback input device
type Loopback struct {
	mu          sync.Mutex
	stream      *portaudio.Stream
	initialized bool
	extractor   *audio.Extractor
	device      string
	closeOnce   sync.Once
	closeErr    error
}

// NewLoopback creates an idle capture
func NewLoopback() *Loopback {
	return &Loopback{}
}

// Device returns the name of the device in use, or "" before Start succeeds
func (l *Loopback) Device() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.device
}

// Start selects a loopback device and streams its frames into extractor.
// Returns ErrNoLoopbackDevice when nothing matches; the extractor then keeps
// its flat initial frame.
func (l *Loopback) Start(extractor *audio.Extractor) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stream != nil {
		return fmt.Errorf("capture already started on %s", l.device)
	}

	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize PortAudio: %w", err)
	}
	l.initialized = true

	infos, err := portaudio.Devices()
	if err != nil {
		l.terminate()
		return fmt.Errorf("failed to enumerate audio devices: %w", err)
	}

	devices := make([]audio.Device, 0, len(infos))
	for i, info := range infos {
		devices = append(devices, audio.Device{Index: i, Name: info.Name, MaxInputChannels: info.MaxInputChannels})
		logging.Debugf("Audio device %d: %s (inputs: %d)", i, info.Name, info.MaxInputChannels)
	}

	selected, ok := audio.SelectLoopback(devices)
	if !ok {
		l.terminate()
		return ErrNoLoopbackDevice
	}
	info := infos[selected.Index]

	params := portaudio.HighLatencyParameters(info, nil)
	params.Input.Channels = Channels
	if info.MaxInputChannels < Channels {
		params.Input.Channels = info.MaxInputChannels
	}
	params.SampleRate = SampleRate
	params.FramesPerBuffer = FramesPerBuffer

	l.extractor = extractor
	stream, err := portaudio.OpenStream(params, l.process)
	if err != nil {
		l.terminate()
		return fmt.Errorf("failed to open stream on %s: %w", info.Name, err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		l.terminate()
		return fmt.Errorf("failed to start stream on %s: %w", info.Name, err)
	}

	l.stream = stream
	l.device = info.Name
	logging.Infof("Audio capture started on %s (%d channels, %d Hz)", info.Name, params.Input.Channels, SampleRate)
	return nil
}

// process runs on the PortAudio callback thread
func (l *Loopback) process(in []float32) {
	if l.extractor == nil || len(in) == 0 {
		return
	}
	l.extractor.Process(in)
}

// Close stops the stream and releases PortAudio. Safe to call repeatedly.
func (l *Loopback) Close() error {
	l.closeOnce.Do(func() {
		l.mu.Lock()
		defer l.mu.Unlock()

		if l.extractor != nil {
			l.extractor.Stop()
		}
		var errs []error
		if l.stream != nil {
			if err := l.stream.Stop(); err != nil {
				errs = append(errs, fmt.Errorf("failed to stop stream: %w", err))
			}
			if err := l.stream.Close(); err != nil {
				errs = append(errs, fmt.Errorf("failed to close stream: %w", err))
			}
			l.stream = nil
		}
		if err := l.terminate(); err != nil {
			errs = append(errs, err)
		}
		l.closeErr = errors.Join(errs...)
		logging.Infof("Audio capture stopped")
	})
	return l.closeErr
}

func (l *Loopback) terminate() error {
	if !l.initialized {
		return nil
	}
	l.initialized = false
	if err := portaudio.Terminate(); err != nil {
		return fmt.Errorf("failed to terminate PortAudio: %w", err)
	}
	return nil
}
