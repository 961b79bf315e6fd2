package model

// Reminder settings bounds
const (
	MinAdvanceMinutes     = 1
	MaxAdvanceMinutes     = 60
	DefaultAdvanceMinutes = 5
)

// Search engines
const (
	SearchEverything = "everything"
	SearchBing       = "bing"
	SearchChatGPT    = "chatgpt"
	SearchBilibili   = "bilibili"
)

// Color is an RGBA color with 0-255 channels
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// QuickTool is a quick-launch shortcut
type QuickTool struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Icon string `json:"icon"`
}

// Position is the initial window position; nil coordinates mean "let the OS decide"
type Position struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

// ReminderSettings controls how reminders are delivered
type ReminderSettings struct {
	AdvanceMinutes int  `json:"advance_minutes"`
	EnableSound    bool `json:"enable_sound"`
	EnablePopup    bool `json:"enable_popup"`
}

// Normalize raises AdvanceMinutes to at least MinAdvanceMinutes. Larger values
// are kept; MaxAdvanceMinutes only bounds the settings slider.
func (r *ReminderSettings) Normalize() {
	if r.AdvanceMinutes < MinAdvanceMinutes {
		r.AdvanceMinutes = MinAdvanceMinutes
	}
}

// AudioWaveform configures the spectrum visualizer
type AudioWaveform struct {
	EnableWaveform      bool    `json:"enable_waveform"`
	WaveformColor       Color   `json:"waveform_color"`
	WaveformSpeed       float64 `json:"waveform_speed"`
	WaveformSensitivity float64 `json:"waveform_sensitivity"`
}

// Settings is the whole preferences document
type Settings struct {
	EverythingPath      string           `json:"everything_path"`
	MusicPath           string           `json:"netease_music_path"`
	BrowserPath         string           `json:"browser_path"`
	BackgroundColor     Color            `json:"bg_color"`
	Autostart           bool             `json:"autostart"`
	DefaultSearchEngine string           `json:"default_search_engine"`
	QuickTools          []QuickTool      `json:"quick_tools"`
	Notes               string           `json:"notes"`
	InitialPosition     Position         `json:"initial_position"`
	Memos               []Memo           `json:"memos"`
	ReminderSettings    ReminderSettings `json:"reminder_settings"`
	AudioWaveform       AudioWaveform    `json:"audio_waveform"`
}

// Clone returns a deep copy of the settings
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	c := *s
	if s.QuickTools != nil {
		c.QuickTools = append([]QuickTool(nil), s.QuickTools...)
	}
	if s.Memos != nil {
		c.Memos = append([]Memo(nil), s.Memos...)
	}
	if s.InitialPosition.X != nil {
		x := *s.InitialPosition.X
		c.InitialPosition.X = &x
	}
	if s.InitialPosition.Y != nil {
		y := *s.InitialPosition.Y
		c.InitialPosition.Y = &y
	}
	return &c
}

// FindMemo returns the index of the memo with the given id, or -1
func (s *Settings) FindMemo(id string) int {
	for i := range s.Memos {
		if s.Memos[i].ID == id {
			return i
		}
	}
	return -1
}

// RemoveMemo removes the memo with the given id and reports whether it existed
func (s *Settings) RemoveMemo(id string) bool {
	i := s.FindMemo(id)
	if i < 0 {
		return false
	}
	s.Memos = append(s.Memos[:i], s.Memos[i+1:]...)
	return true
}

// SearchEngineOptions returns the supported search engines
func SearchEngineOptions() []string {
	return []string{SearchEverything, SearchBing, SearchChatGPT, SearchBilibili}
}
