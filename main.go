package main

import (
	"context"
	"errors"

	"fyne.io/fyne/v2/app"

	"github.com/wallpanel/wallpanel/internal/audio"
	"github.com/wallpanel/wallpanel/internal/capture"
	"github.com/wallpanel/wallpanel/internal/command"
	"github.com/wallpanel/wallpanel/internal/config"
	"github.com/wallpanel/wallpanel/internal/logging"
	"github.com/wallpanel/wallpanel/internal/memo"
	"github.com/wallpanel/wallpanel/internal/platform"
	"github.com/wallpanel/wallpanel/internal/reminder"
	"github.com/wallpanel/wallpanel/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "io.github.wallpanel"
	AppName = "WallPanel"
)

func main() {
	logging.Infof("%s v%s starting...", AppName, version)

	store := config.NewStore(config.DefaultPath())
	settings, err := store.Load()
	if err != nil {
		logging.Warnf("Using default settings: %v", err)
	}
	logging.Debugf("Settings file: %s", store.Path())

	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow(AppName)

	localization := ui.NewLocalization()
	localization.SetLanguage(ui.LangSystem)

	// Initialize services
	memos := memo.NewService(store)
	extractor := audio.NewExtractor(audio.DefaultBars)

	dispatcher := command.NewDispatcher()
	media := platform.NewMediaController("")
	command.RegisterBuiltins(dispatcher, store, command.DefaultPlatform(media))

	// Create and setup UI
	panel := ui.NewPanel(myApp, myWindow, ui.PanelDeps{
		Store:        store,
		Memos:        memos,
		Dispatcher:   dispatcher,
		Spectrum:     extractor,
		Bars:         extractor.Bars(),
		Localization: localization,
	})
	panel.SetupTray()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifier := ui.NewNotifier(myWindow, localization, memos)
	scheduler := reminder.NewScheduler(store, notifier)
	go scheduler.Run(ctx)

	go func() {
		if err := store.Watch(ctx); err != nil {
			logging.Warnf("Settings watcher stopped: %v", err)
		}
	}()

	loopback := capture.NewLoopback()
	defer func() {
		if err := loopback.Close(); err != nil {
			logging.Warnf("Closing audio capture: %v", err)
		}
	}()
	if settings.AudioWaveform.EnableWaveform {
		startCapture(loopback, extractor)
	}

	go panel.Run(ctx)

	myApp.Lifecycle().SetOnStopped(cancel)

	logging.Infof("Actions: %v", dispatcher.Actions())

	// Show and run
	myWindow.ShowAndRun()
}

// startCapture feeds the extractor from the loopback device. Without one the
// visualizer stays flat.
func startCapture(loopback *capture.Loopback, extractor *audio.Extractor) {
	err := loopback.Start(extractor)
	switch {
	case err == nil:
		logging.Infof("Capturing audio from %s", loopback.Device())
	case errors.Is(err, capture.ErrNoLoopbackDevice):
		logging.Warnf("%v; the audio visualizer is disabled", err)
	default:
		logging.Errorf("Starting audio capture: %v", err)
	}
}
