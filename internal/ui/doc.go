package ui

// Package ui contains the Fyne-based panel for the application. It routes
// button presses through the command dispatcher, shows memo and reminder
// dialogs, renders the audio spectrum and hosts the tray menu. All UI strings
// are localized via Localization.
