package audio

import (
	"math"
	"sync"
	"sync/atomic"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
)

// Spectrum defaults
const (
	DefaultBars      = 64
	DefaultFrameSize = 1024
)

// Frame is one normalized bar spectrum; every value is in [0,1]
type Frame []float64

// Max returns the largest bar value
func (f Frame) Max() float64 {
	m := 0.0
	for _, v := range f {
		if v > m {
			m = v
		}
	}
	return m
}

// Peak returns the index of the largest bar, or -1 for an all-zero frame
func (f Frame) Peak() int {
	idx, m := -1, 0.0
	for i, v := range f {
		if v > m {
			idx, m = i, v
		}
	}
	return idx
}

// Extractor computes bar spectra from audio frames. Process runs on the
// capture thread; Latest may be called from any goroutine and sees the most
// recent complete frame.
type Extractor struct {
	bars    int
	latest  atomic.Pointer[Frame]
	stopped atomic.Bool

	mu   sync.Mutex
	ffts map[int]*fourier.FFT
}

// NewExtractor creates an extractor producing bars values per frame
func NewExtractor(bars int) *Extractor {
	if bars <= 0 {
		bars = DefaultBars
	}
	e := &Extractor{
		bars: bars,
		ffts: make(map[int]*fourier.FFT),
	}
	empty := make(Frame, bars)
	e.latest.Store(&empty)
	return e
}

// Bars returns the number of bars per frame
func (e *Extractor) Bars() int {
	return e.bars
}

// Process computes the spectrum of samples and publishes it. Calls after Stop
// are ignored.
func (e *Extractor) Process(samples []float32) {
	if e.stopped.Load() {
		return
	}
	frame := e.compute(samples)
	e.latest.Store(&frame)
}

// Latest returns a copy of the most recent frame
func (e *Extractor) Latest() Frame {
	p := e.latest.Load()
	return append(Frame(nil), (*p)...)
}

// Stop makes further Process calls no-ops; the last frame stays readable
func (e *Extractor) Stop() {
	e.stopped.Store(true)
}

// Stopped reports whether Stop was called
func (e *Extractor) Stopped() bool {
	return e.stopped.Load()
}

func (e *Extractor) compute(samples []float32) Frame {
	n := len(samples)
	if n < 2 {
		return make(Frame, e.bars)
	}

	// fourier.FFT keeps work buffers, so one transform runs at a time.
	e.mu.Lock()
	defer e.mu.Unlock()
	fft, ok := e.ffts[n]
	if !ok {
		fft = fourier.NewFFT(n)
		e.ffts[n] = fft
	}
	return spectrum(fft, samples, e.bars)
}

// Compute runs the full pipeline on one frame: Hann window, magnitude FFT
// (first half), log10(m+1) compression, linear resampling to bars values and
// normalization by the frame maximum.
func Compute(samples []float32, bars int) Frame {
	if bars <= 0 {
		bars = DefaultBars
	}
	if len(samples) < 2 {
		return make(Frame, bars)
	}
	return spectrum(fourier.NewFFT(len(samples)), samples, bars)
}

func spectrum(fft *fourier.FFT, samples []float32, bars int) Frame {
	n := len(samples)
	seq := make([]float64, n)
	for i, s := range samples {
		seq[i] = float64(s)
	}
	window.Hann(seq)

	coeffs := fft.Coefficients(nil, seq)

	half := n / 2
	mags := make([]float64, half)
	for i := 0; i < half; i++ {
		m := math.Hypot(real(coeffs[i]), imag(coeffs[i]))
		mags[i] = math.Log10(m + 1)
	}

	out := resample(mags, bars)
	normalize(out)
	return out
}

// resample linearly interpolates src at bars evenly spaced positions over
// [0, len(src)-1]. Shorter inputs are copied and zero-padded.
func resample(src []float64, bars int) Frame {
	out := make(Frame, bars)
	if len(src) <= bars {
		copy(out, src)
		return out
	}
	if bars == 1 {
		out[0] = src[0]
		return out
	}

	last := float64(len(src) - 1)
	for i := range out {
		pos := float64(i) * last / float64(bars-1)
		lo := int(math.Floor(pos))
		if lo >= len(src)-1 {
			out[i] = src[len(src)-1]
			continue
		}
		frac := pos - float64(lo)
		out[i] = src[lo] + (src[lo+1]-src[lo])*frac
	}
	return out
}

func normalize(f Frame) {
	for i, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			f[i] = 0
		}
	}
	m := f.Max()
	if m <= 0 {
		return
	}
	for i := range f {
		f[i] /= m
	}
}
