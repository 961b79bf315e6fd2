package ui

import (
	"context"
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/wallpanel/wallpanel/internal/audio"
	"github.com/wallpanel/wallpanel/internal/model"
)

// FrameSource provides the latest spectrum frame
type FrameSource interface {
	Latest() audio.Frame
}

// SpectrumView draws the spectrum as vertical bars along the bottom edge
type SpectrumView struct {
	widget.BaseWidget

	source FrameSource

	mu          sync.Mutex
	levels      []float64
	enabled     bool
	color       color.NRGBA
	sensitivity float64
	smoothing   float64
}

// NewSpectrumView creates a view with one bar per source bin
func NewSpectrumView(source FrameSource, bars int) *SpectrumView {
	if bars <= 0 {
		bars = audio.DefaultBars
	}
	s := &SpectrumView{
		source:      source,
		levels:      make([]float64, bars),
		enabled:     true,
		color:       color.NRGBA{R: 0, G: 191, B: 255, A: 180},
		sensitivity: 1,
		smoothing:   1,
	}
	s.ExtendBaseWidget(s)
	return s
}

// SetStyle applies the audio_waveform preferences
func (s *SpectrumView) SetStyle(wf model.AudioWaveform) {
	s.mu.Lock()
	s.enabled = wf.EnableWaveform
	s.color = toNRGBA(wf.WaveformColor)
	s.sensitivity = wf.WaveformSensitivity
	if s.sensitivity <= 0 {
		s.sensitivity = 1
	}
	// waveform_speed is the fraction of the distance to the new frame covered per redraw
	s.smoothing = wf.WaveformSpeed
	if s.smoothing <= 0 || s.smoothing > 1 {
		s.smoothing = 1
	}
	if !s.enabled {
		for i := range s.levels {
			s.levels[i] = 0
		}
	}
	s.mu.Unlock()
	s.Refresh()
}

// Update pulls the latest frame from the source. Must be called on the UI goroutine.
func (s *SpectrumView) Update() {
	s.mu.Lock()
	if s.enabled && s.source != nil {
		s.blend(s.source.Latest())
	}
	s.mu.Unlock()
	s.Refresh()
}

func (s *SpectrumView) blend(frame audio.Frame) {
	for i := range s.levels {
		target := 0.0
		if i < len(frame) {
			target = frame[i] * s.sensitivity
		}
		if target > 1 {
			target = 1
		}
		s.levels[i] += (target - s.levels[i]) * s.smoothing
	}
}

// Levels returns the bar heights in [0,1] as currently drawn
func (s *SpectrumView) Levels() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]float64, len(s.levels))
	copy(out, s.levels)
	return out
}

// Run refreshes the view at the spectrum frame rate until ctx is done
func (s *SpectrumView) Run(ctx context.Context) {
	ticker := time.NewTicker(SpectrumInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fyne.Do(s.Update)
		}
	}
}

// CreateRenderer creates the widget renderer
func (s *SpectrumView) CreateRenderer() fyne.WidgetRenderer {
	r := &spectrumRenderer{view: s}
	s.mu.Lock()
	r.bars = make([]*canvas.Rectangle, len(s.levels))
	s.mu.Unlock()
	for i := range r.bars {
		r.bars[i] = canvas.NewRectangle(color.Transparent)
		r.bars[i].CornerRadius = 2
	}
	r.Refresh()
	return r
}

// spectrumRenderer renders the spectrum bars
type spectrumRenderer struct {
	view *SpectrumView
	bars []*canvas.Rectangle
}

// Layout positions each bar from its level; bars grow upward from the bottom edge
func (r *spectrumRenderer) Layout(size fyne.Size) {
	levels := r.view.Levels()
	n := len(r.bars)
	if n == 0 {
		return
	}

	slot := size.Width / float32(n)
	width := slot - SpectrumBarGap
	if width < 1 {
		width = 1
	}
	for i, bar := range r.bars {
		h := float32(levels[i]) * size.Height
		bar.Resize(fyne.NewSize(width, h))
		bar.Move(fyne.NewPos(float32(i)*slot, size.Height-h))
	}
}

// MinSize returns the minimum size
func (r *spectrumRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(len(r.bars))*2, SpectrumMinHeight)
}

// Refresh recolors and re-lays out the bars
func (r *spectrumRenderer) Refresh() {
	r.view.mu.Lock()
	base := r.view.color
	r.view.mu.Unlock()

	levels := r.view.Levels()
	for i, bar := range r.bars {
		c := base
		// Louder bars are more opaque.
		c.A = uint8(float64(base.A) * (0.3 + 0.7*levels[i]))
		bar.FillColor = c
		bar.Refresh()
	}
	r.Layout(r.view.Size())
}

// Objects returns the bar rectangles
func (r *spectrumRenderer) Objects() []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, len(r.bars))
	for i, bar := range r.bars {
		objs[i] = bar
	}
	return objs
}

// Destroy cleans up the renderer
func (r *spectrumRenderer) Destroy() {}
