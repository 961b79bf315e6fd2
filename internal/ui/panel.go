package ui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/wallpanel/wallpanel/internal/command"
	"github.com/wallpanel/wallpanel/internal/logging"
	"github.com/wallpanel/wallpanel/internal/memo"
	"github.com/wallpanel/wallpanel/internal/model"
	"github.com/wallpanel/wallpanel/internal/platform"
)

// PanelStore is the settings store as seen by the panel
type PanelStore interface {
	SettingsStore
	Subscribe(fn func(*model.Settings)) func()
}

// PanelDeps holds the services the panel is wired to
type PanelDeps struct {
	Store        PanelStore
	Memos        memo.Manager
	Dispatcher   *command.Dispatcher
	Spectrum     FrameSource
	Bars         int
	Localization *Localization
}

// Panel is the main widget window
type Panel struct {
	app    fyne.App
	window fyne.Window
	deps   PanelDeps
	loc    *Localization

	theme *PanelTheme

	timeLabel    *canvas.Text
	dateLabel    *widget.Label
	batteryLabel *widget.Label
	searchEntry  *widget.Entry
	engineSelect *widget.Select
	notesEntry   *widget.Entry
	toolsBox     *fyne.Container
	spectrum     *SpectrumView

	memoDialog     *MemoDialog
	settingsDialog *ReminderSettingsDialog

	// notesMu guards the pending debounced save
	notesMu      sync.Mutex
	notesTimer   *time.Timer
	pendingNotes string

	now     func() time.Time
	battery func() (platform.BatteryStatus, bool)
}

// NewPanel builds the panel inside window and registers its UI actions on
// the dispatcher
func NewPanel(app fyne.App, window fyne.Window, deps PanelDeps) *Panel {
	if deps.Localization == nil {
		deps.Localization = NewLocalization()
	}

	p := &Panel{
		app:     app,
		window:  window,
		deps:    deps,
		loc:     deps.Localization,
		now:     time.Now,
		battery: platform.Battery,
	}

	settings, err := deps.Store.Load()
	if err != nil {
		logging.Warnf("Loading settings for panel: %v", err)
	}

	p.theme = NewPanelTheme(settings.BackgroundColor)
	app.Settings().SetTheme(p.theme)

	window.SetTitle(p.loc.GetText(KeyAppTitle))
	p.memoDialog = NewMemoDialog(window, deps.Memos, p.loc)
	p.settingsDialog = NewReminderSettingsDialog(deps.Store, window, p.loc)

	p.setupUI(settings)
	p.registerActions()

	deps.Store.Subscribe(func(s *model.Settings) {
		fyne.Do(func() { p.applySettings(s) })
	})

	logging.Debugf("Panel initialized")
	return p
}

// setupUI creates and arranges all UI components
func (p *Panel) setupUI(settings *model.Settings) {
	p.timeLabel = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	p.timeLabel.TextSize = theme.TextHeadingSize()
	p.timeLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	p.dateLabel = widget.NewLabel("")
	p.batteryLabel = widget.NewLabel("")

	info := container.NewVBox(
		p.timeLabel,
		container.NewHBox(p.dateLabel, widget.NewSeparator(), p.batteryLabel),
	)

	p.engineSelect = widget.NewSelect(model.SearchEngineOptions(), nil)
	p.engineSelect.SetSelected(settings.DefaultSearchEngine)
	p.engineSelect.OnChanged = p.onEngineChanged

	p.searchEntry = widget.NewEntry()
	p.searchEntry.SetPlaceHolder(p.loc.GetText(KeySearchPlaceholder))
	p.searchEntry.OnSubmitted = func(string) { p.onSearch() }
	searchBtn := widget.NewButton(IconSearch, p.onSearch)
	searchRow := container.NewBorder(nil, nil, p.engineSelect, searchBtn, p.searchEntry)

	media := container.NewHBox(
		p.actionButton(IconPrevious, command.ActionPreviousTrack),
		p.actionButton(IconPlay, command.ActionPlayPause),
		p.actionButton(IconNext, command.ActionNextTrack),
		p.actionButton(IconMusic, command.ActionOpenMusic),
	)

	p.toolsBox = container.NewHBox()
	p.setTools(settings.QuickTools)

	p.notesEntry = widget.NewMultiLineEntry()
	p.notesEntry.Wrapping = fyne.TextWrapWord
	p.notesEntry.SetPlaceHolder(p.loc.GetText(KeyNotesPlaceholder))
	p.notesEntry.SetText(settings.Notes)
	p.notesEntry.OnChanged = p.onNotesChanged
	notes := container.NewGridWrap(fyne.NewSize(PanelWidth, NotesMinHeight), p.notesEntry)

	actions := container.NewHBox(
		p.actionButton(IconMemo+" "+p.loc.GetText(KeyMemos), command.ActionOpenMemos),
		p.actionButton(IconSettings, command.ActionOpenSettings),
	)

	bars := p.deps.Bars
	p.spectrum = NewSpectrumView(p.deps.Spectrum, bars)
	p.spectrum.SetStyle(settings.AudioWaveform)

	top := container.NewVBox(
		info,
		searchRow,
		container.NewBorder(nil, nil, media, actions),
		container.NewHScroll(p.toolsBox),
		notes,
	)

	p.window.SetContent(container.NewBorder(top, p.spectrum, nil, nil))
	p.window.Resize(fyne.NewSize(PanelWidth, PanelHeight))
	p.updateInfo()
}

// actionButton creates a low-importance button that dispatches action
func (p *Panel) actionButton(label string, action command.Action) *widget.Button {
	btn := widget.NewButton(label, func() { p.dispatch(action, nil) })
	btn.Importance = widget.LowImportance
	return btn
}

// setTools rebuilds the quick tool buttons
func (p *Panel) setTools(tools []model.QuickTool) {
	p.toolsBox.RemoveAll()
	for _, tool := range tools {
		path := tool.Path
		btn := widget.NewButton(tool.Name, func() {
			p.dispatch(command.ActionLaunchTool, command.Args{command.ArgTool: path})
		})
		btn.Importance = widget.LowImportance
		p.toolsBox.Add(btn)
	}
	p.toolsBox.Refresh()
}

// registerActions binds the actions that need the UI
func (p *Panel) registerActions() {
	d := p.deps.Dispatcher
	if d == nil {
		return
	}
	d.Register(command.ActionOpenMemos, func(context.Context, command.Args) error {
		fyne.Do(func() {
			p.window.Show()
			p.memoDialog.Show()
		})
		return nil
	})
	d.Register(command.ActionOpenSettings, func(context.Context, command.Args) error {
		fyne.Do(func() {
			p.window.Show()
			p.settingsDialog.Show()
		})
		return nil
	})
	d.Register(command.ActionQuit, func(context.Context, command.Args) error {
		p.flushNotes()
		fyne.Do(p.app.Quit)
		return nil
	})
}

// dispatch runs action off the UI goroutine and reports failures
func (p *Panel) dispatch(action command.Action, args command.Args) {
	p.dispatchThen(action, args, nil)
}

// dispatchThen runs action in the background and calls onSuccess on the UI
// goroutine when it returns without error.
func (p *Panel) dispatchThen(action command.Action, args command.Args, onSuccess func()) {
	d := p.deps.Dispatcher
	if d == nil {
		return
	}
	go func() {
		err := d.Dispatch(context.Background(), action, args)
		if err == nil {
			if onSuccess != nil {
				fyne.Do(onSuccess)
			}
			return
		}
		if errors.Is(err, platform.ErrMediaUnsupported) || errors.Is(err, platform.ErrNoPlayer) {
			logging.Debugf("Action %s: %v", action, err)
			return
		}
		logging.Warnf("Action %s failed: %v", action, err)
		fyne.Do(func() { dialog.ShowError(err, p.window) })
	}()
}

// onSearch dispatches the search entry text to the selected engine
func (p *Panel) onSearch() {
	query := p.searchEntry.Text
	p.dispatchThen(command.ActionSearch, command.Args{
		command.ArgQuery:  query,
		command.ArgEngine: p.engineSelect.Selected,
	}, func() { p.clearSearch(query) })
}

// clearSearch empties the search entry unless it was edited after query was sent
func (p *Panel) clearSearch(query string) {
	if p.searchEntry.Text == query {
		p.searchEntry.SetText("")
	}
}

// onEngineChanged persists the selected engine as the default
func (p *Panel) onEngineChanged(engine string) {
	go func() {
		err := p.deps.Store.Update(func(s *model.Settings) error {
			s.DefaultSearchEngine = engine
			return nil
		})
		if err != nil {
			logging.Warnf("Saving search engine: %v", err)
		}
	}()
}

// onNotesChanged schedules a debounced notes save
func (p *Panel) onNotesChanged(text string) {
	p.notesMu.Lock()
	defer p.notesMu.Unlock()

	if p.notesTimer != nil {
		p.notesTimer.Stop()
	}
	p.pendingNotes = text

	var timer *time.Timer
	timer = time.AfterFunc(NotesDebounce, func() {
		p.notesMu.Lock()
		if p.notesTimer != timer {
			p.notesMu.Unlock()
			return
		}
		p.notesTimer = nil
		p.notesMu.Unlock()
		p.dispatch(command.ActionSaveNotes, command.Args{command.ArgText: text})
	})
	p.notesTimer = timer
}

// flushNotes writes a pending notes edit immediately
func (p *Panel) flushNotes() {
	p.notesMu.Lock()
	pending := p.notesTimer != nil
	if pending {
		p.notesTimer.Stop()
	}
	p.notesTimer = nil
	text := p.pendingNotes
	p.notesMu.Unlock()

	if !pending {
		return
	}
	err := p.deps.Store.Update(func(s *model.Settings) error {
		s.Notes = text
		return nil
	})
	if err != nil {
		logging.Warnf("Saving notes: %v", err)
	}
}

// notesPending reports whether a debounced save is outstanding
func (p *Panel) notesPending() bool {
	p.notesMu.Lock()
	defer p.notesMu.Unlock()
	return p.notesTimer != nil
}

// applySettings reflects a new settings snapshot in the widgets
func (p *Panel) applySettings(s *model.Settings) {
	if bg := toNRGBA(s.BackgroundColor); bg != p.theme.Background() {
		p.theme = NewPanelTheme(s.BackgroundColor)
		p.app.Settings().SetTheme(p.theme)
	}
	if p.engineSelect.Selected != s.DefaultSearchEngine {
		p.engineSelect.OnChanged = nil
		p.engineSelect.SetSelected(s.DefaultSearchEngine)
		p.engineSelect.OnChanged = p.onEngineChanged
	}
	if p.notesEntry.Text != s.Notes && !p.notesPending() {
		p.notesEntry.OnChanged = nil
		p.notesEntry.SetText(s.Notes)
		p.notesEntry.OnChanged = p.onNotesChanged
	}
	p.setTools(s.QuickTools)
	p.spectrum.SetStyle(s.AudioWaveform)
}

// updateInfo refreshes the clock, date and battery labels
func (p *Panel) updateInfo() {
	now := p.now()
	p.timeLabel.Text = now.Format(ClockFormat)
	p.timeLabel.Refresh()
	p.dateLabel.SetText(now.Format(DateFormat))
	p.batteryLabel.SetText(p.batteryText())
}

func (p *Panel) batteryText() string {
	status, ok := p.battery()
	if !ok {
		return p.loc.GetText(KeyNoBattery)
	}
	icon := IconBattery
	if status.Charging {
		icon = IconCharging
	}
	return fmt.Sprintf(BatteryLabelFormat, icon, status.Percent)
}

// Window returns the panel window
func (p *Panel) Window() fyne.Window {
	return p.window
}

// Run drives the clock and the spectrum until ctx is done
func (p *Panel) Run(ctx context.Context) {
	go p.spectrum.Run(ctx)

	ticker := time.NewTicker(ClockInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.flushNotes()
			return
		case <-ticker.C:
			fyne.Do(p.updateInfo)
		}
	}
}
