package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/wallpanel/wallpanel/internal/logging"
	"github.com/wallpanel/wallpanel/internal/model"
)

// SettingsStore is the part of config.Store the UI needs
type SettingsStore interface {
	Load() (*model.Settings, error)
	Update(fn func(*model.Settings) error) error
}

// ReminderSettingsDialog represents the reminder configuration dialog
type ReminderSettingsDialog struct {
	store  SettingsStore
	window fyne.Window
	loc    *Localization
	dialog *dialog.ConfirmDialog

	// UI components
	advanceLabel  *widget.Label
	advanceSlider *widget.Slider
	soundCheck    *widget.Check
	popupCheck    *widget.Check
}

// NewReminderSettingsDialog creates a new settings dialog
func NewReminderSettingsDialog(store SettingsStore, window fyne.Window, loc *Localization) *ReminderSettingsDialog {
	sd := &ReminderSettingsDialog{
		store:  store,
		window: window,
		loc:    loc,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *ReminderSettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *ReminderSettingsDialog) createUI() {
	sd.advanceLabel = widget.NewLabel("")

	sd.advanceSlider = widget.NewSlider(model.MinAdvanceMinutes, model.MaxAdvanceMinutes)
	sd.advanceSlider.Step = 1
	sd.advanceSlider.OnChanged = func(v float64) {
		sd.setAdvanceLabel(int(v))
	}

	sd.soundCheck = widget.NewCheck(sd.loc.GetText(KeyEnableSound), nil)
	sd.popupCheck = widget.NewCheck(sd.loc.GetText(KeyEnablePopup), nil)

	form := container.NewVBox(
		sd.advanceLabel,
		sd.advanceSlider,
		widget.NewSeparator(),
		sd.soundCheck,
		sd.popupCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.loc.GetText(KeyReminderSettings),
		sd.loc.GetText(KeySave),
		sd.loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *ReminderSettingsDialog) setAdvanceLabel(minutes int) {
	sd.advanceLabel.SetText(fmt.Sprintf(sd.loc.GetText(KeyAdvanceMinutes), minutes))
}

// loadCurrentSettings loads current settings into the UI
func (sd *ReminderSettingsDialog) loadCurrentSettings() {
	settings, err := sd.store.Load()
	if err != nil {
		logging.Warnf("Loading reminder settings: %v", err)
	}
	rs := settings.ReminderSettings
	minutes := min(max(rs.AdvanceMinutes, model.MinAdvanceMinutes), model.MaxAdvanceMinutes)

	sd.advanceSlider.SetValue(float64(minutes))
	sd.setAdvanceLabel(minutes)
	sd.soundCheck.SetChecked(rs.EnableSound)
	sd.popupCheck.SetChecked(rs.EnablePopup)
}

// current returns the reminder settings shown in the form
func (sd *ReminderSettingsDialog) current() model.ReminderSettings {
	rs := model.ReminderSettings{
		AdvanceMinutes: int(sd.advanceSlider.Value),
		EnableSound:    sd.soundCheck.Checked,
		EnablePopup:    sd.popupCheck.Checked,
	}
	rs.Normalize()
	return rs
}

// onSave handles saving the settings
func (sd *ReminderSettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	rs := sd.current()
	err := sd.store.Update(func(s *model.Settings) error {
		s.ReminderSettings = rs
		return nil
	})
	if err != nil {
		logging.Errorf("Saving reminder settings: %v", err)
		dialog.ShowError(err, sd.window)
		return
	}

	logging.Infof("Reminder settings saved: %+v", rs)
}
