package audio

// Package audio turns live PCM frames into a fixed-width bar spectrum for the
// visualizer and picks the loopback capture device. It has no dependency on
// any capture backend; see package capture for the PortAudio stream.
