package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "⏯"
	IconNext     = "⏭"
	IconPrevious = "⏮"
	IconMusic    = "🎵"
	IconMemo     = "📝"
	IconSearch   = "🔍"
	IconBattery  = "🔋"
	IconCharging = "⚡"
	IconClose    = "×"
)

// Text fragments
const (
	ClockFormat          = "15:04:05"
	DateFormat           = "2006-01-02 Mon"
	BatteryLabelFormat   = "%s %d%%"
	ReminderInputLayout  = "2006-01-02 15:04"
	MemoListSuffixFormat = " (%s: %s - %s)"
)

// Layout sizing
const (
	PanelWidth  float32 = 360
	PanelHeight float32 = 560

	SpectrumMinHeight float32 = 80
	SpectrumBarGap    float32 = 1

	NotesMinHeight float32 = 90

	MemoDialogWidth  float32 = 480
	MemoDialogHeight float32 = 460

	SettingsDialogWidth  float32 = 360
	SettingsDialogHeight float32 = 260

	ToastWidth  float32 = 300
	ToastHeight float32 = 120
	ToastMargin float32 = 20
)

// Refresh rates
const (
	ClockInterval    = time.Second
	SpectrumInterval = time.Second / 30
	NotesDebounce    = 500 * time.Millisecond
	ToastAutoHide    = 10 * time.Second
)

// SnoozeMinutes is offered by the final reminder popup
const SnoozeMinutes = 5
