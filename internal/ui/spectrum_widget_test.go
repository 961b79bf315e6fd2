package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"

	"github.com/wallpanel/wallpanel/internal/audio"
	"github.com/wallpanel/wallpanel/internal/model"
)

type staticSource struct {
	frame audio.Frame
}

func (s *staticSource) Latest() audio.Frame {
	return s.frame
}

func waveform(sensitivity, speed float64) model.AudioWaveform {
	return model.AudioWaveform{
		EnableWaveform:      true,
		WaveformColor:       model.Color{R: 0, G: 191, B: 255, A: 180},
		WaveformSpeed:       speed,
		WaveformSensitivity: sensitivity,
	}
}

func TestSpectrumView_Update(t *testing.T) {
	test.NewApp()
	source := &staticSource{frame: audio.Frame{0.25, 0.5, 1}}
	view := NewSpectrumView(source, 4)

	if levels := view.Levels(); len(levels) != 4 || levels[0] != 0 {
		t.Fatalf("Expected 4 zero bars before the first update, got %v", levels)
	}

	view.SetStyle(waveform(2, 1))
	view.Update()

	want := []float64{0.5, 1, 1, 0}
	got := view.Levels()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Bar %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestSpectrumView_Smoothing(t *testing.T) {
	test.NewApp()
	source := &staticSource{frame: audio.Frame{1}}
	view := NewSpectrumView(source, 1)
	view.SetStyle(waveform(1, 0.5))

	view.Update()
	if got := view.Levels()[0]; got != 0.5 {
		t.Errorf("Expected half step toward the frame, got %v", got)
	}
	view.Update()
	if got := view.Levels()[0]; got != 0.75 {
		t.Errorf("Expected second half step, got %v", got)
	}
}

func TestSpectrumView_Disabled(t *testing.T) {
	test.NewApp()
	source := &staticSource{frame: audio.Frame{1, 1}}
	view := NewSpectrumView(source, 2)
	view.SetStyle(waveform(1, 1))
	view.Update()

	wf := waveform(1, 1)
	wf.EnableWaveform = false
	view.SetStyle(wf)
	view.Update()

	for i, level := range view.Levels() {
		if level != 0 {
			t.Errorf("Disabled view should be flat, bar %d = %v", i, level)
		}
	}
}

func TestSpectrumView_NilSourceIsFlat(t *testing.T) {
	test.NewApp()
	view := NewSpectrumView(nil, 0)
	view.Update()

	if len(view.Levels()) != audio.DefaultBars {
		t.Errorf("Expected default bar count, got %d", len(view.Levels()))
	}
}

func TestSpectrumRenderer_Layout(t *testing.T) {
	test.NewApp()
	source := &staticSource{frame: audio.Frame{0, 0.5, 1, 0.25}}
	view := NewSpectrumView(source, 4)
	view.SetStyle(waveform(1, 1))
	view.Update()

	r := view.CreateRenderer()
	r.Layout(fyne.NewSize(40, 100))

	objects := r.Objects()
	if len(objects) != 4 {
		t.Fatalf("Expected 4 bars, got %d", len(objects))
	}

	heights := []float32{0, 50, 100, 25}
	for i, obj := range objects {
		bar := obj.(*canvas.Rectangle)
		if bar.Size().Height != heights[i] {
			t.Errorf("Bar %d: expected height %v, got %v", i, heights[i], bar.Size().Height)
		}
		if bar.Position().Y+bar.Size().Height != 100 {
			t.Errorf("Bar %d should sit on the bottom edge, y=%v", i, bar.Position().Y)
		}
		if bar.Position().X != float32(i)*10 {
			t.Errorf("Bar %d: expected x %v, got %v", i, float32(i)*10, bar.Position().X)
		}
	}

	quiet := objects[0].(*canvas.Rectangle).FillColor
	loud := objects[2].(*canvas.Rectangle).FillColor
	_, _, _, qa := quiet.RGBA()
	_, _, _, la := loud.RGBA()
	if qa >= la {
		t.Errorf("Louder bars should be more opaque: quiet=%d loud=%d", qa, la)
	}

	if r.MinSize().Height != SpectrumMinHeight {
		t.Errorf("Expected min height %v, got %v", SpectrumMinHeight, r.MinSize().Height)
	}
}
