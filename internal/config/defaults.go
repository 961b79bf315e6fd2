package config

import (
	"runtime"

	"github.com/wallpanel/wallpanel/internal/model"
)

// Default values
const (
	DefaultSearchEngine        = model.SearchEverything
	DefaultWaveformSpeed       = 0.8
	DefaultWaveformSensitivity = 1.0
	DefaultToolIcon            = "./icon.ico"
)

// DefaultBackground is the translucent black panel background
var DefaultBackground = model.Color{R: 0, G: 0, B: 0, A: 120}

// DefaultWaveformColor is the spectrum bar color
var DefaultWaveformColor = model.Color{R: 0, G: 191, B: 255, A: 180}

// Defaults returns the built-in preferences used when no file exists
func Defaults() *model.Settings {
	return &model.Settings{
		EverythingPath:      defaultEverythingPath(),
		MusicPath:           defaultMusicPath(),
		BrowserPath:         defaultBrowserPath(),
		BackgroundColor:     DefaultBackground,
		Autostart:           false,
		DefaultSearchEngine: DefaultSearchEngine,
		QuickTools:          defaultQuickTools(),
		Notes:               "",
		Memos:               []model.Memo{},
		ReminderSettings: model.ReminderSettings{
			AdvanceMinutes: model.DefaultAdvanceMinutes,
			EnableSound:    true,
			EnablePopup:    true,
		},
		AudioWaveform: model.AudioWaveform{
			EnableWaveform:      true,
			WaveformColor:       DefaultWaveformColor,
			WaveformSpeed:       DefaultWaveformSpeed,
			WaveformSensitivity: DefaultWaveformSensitivity,
		},
	}
}

func defaultEverythingPath() string {
	if runtime.GOOS == "windows" {
		return `C:\Program Files\Everything\Everything.exe`
	}
	return ""
}

func defaultMusicPath() string {
	if runtime.GOOS == "windows" {
		return `C:\Program Files\NetEase\CloudMusic\cloudmusic.exe`
	}
	return ""
}

func defaultBrowserPath() string {
	if runtime.GOOS == "windows" {
		return `C:\Program Files (x86)\Microsoft\Edge\Application\msedge.exe`
	}
	return ""
}

func defaultQuickTools() []model.QuickTool {
	switch runtime.GOOS {
	case "windows":
		return []model.QuickTool{
			{Name: "VS Code", Path: `C:\Program Files\Microsoft VS Code\Code.exe`, Icon: DefaultToolIcon},
			{Name: "Terminal", Path: `C:\Windows\System32\cmd.exe`, Icon: DefaultToolIcon},
			{Name: "Calculator", Path: `C:\Windows\System32\calc.exe`, Icon: DefaultToolIcon},
			{Name: "Notepad", Path: `C:\Windows\System32\notepad.exe`, Icon: DefaultToolIcon},
		}
	case "darwin":
		return []model.QuickTool{
			{Name: "Terminal", Path: "/System/Applications/Utilities/Terminal.app", Icon: DefaultToolIcon},
			{Name: "Calculator", Path: "/System/Applications/Calculator.app", Icon: DefaultToolIcon},
		}
	default:
		return []model.QuickTool{
			{Name: "VS Code", Path: "/usr/bin/code", Icon: DefaultToolIcon},
			{Name: "Terminal", Path: "/usr/bin/x-terminal-emulator", Icon: DefaultToolIcon},
			{Name: "Calculator", Path: "/usr/bin/gnome-calculator", Icon: DefaultToolIcon},
		}
	}
}
