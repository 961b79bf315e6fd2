package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/wallpanel/wallpanel/internal/command"
	"github.com/wallpanel/wallpanel/internal/logging"
)

// TrayMenu builds the system tray menu: show, memos, settings, quit
func (p *Panel) TrayMenu() *fyne.Menu {
	show := fyne.NewMenuItem(p.loc.GetText(KeyShow), func() {
		p.window.Show()
		p.window.RequestFocus()
	})
	memos := fyne.NewMenuItem(p.loc.GetText(KeyMemos), func() {
		p.dispatch(command.ActionOpenMemos, nil)
	})
	settings := fyne.NewMenuItem(p.loc.GetText(KeyReminderSettings), func() {
		p.dispatch(command.ActionOpenSettings, nil)
	})
	quit := fyne.NewMenuItem(p.loc.GetText(KeyQuit), func() {
		p.dispatch(command.ActionQuit, nil)
	})
	quit.IsQuit = true

	return fyne.NewMenu(p.loc.GetText(KeyAppTitle), show, memos, settings, fyne.NewMenuItemSeparator(), quit)
}

// SetupTray installs the tray menu when the driver supports one. Closing the
// window then hides it to the tray instead of quitting.
func (p *Panel) SetupTray() bool {
	desk, ok := p.app.(desktop.App)
	if !ok {
		logging.Infof("System tray not available")
		return false
	}

	desk.SetSystemTrayMenu(p.TrayMenu())
	p.window.SetCloseIntercept(p.window.Hide)
	return true
}
