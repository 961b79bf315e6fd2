package ui

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/wallpanel/wallpanel/internal/logging"
	"github.com/wallpanel/wallpanel/internal/platform"
	"github.com/wallpanel/wallpanel/internal/reminder"
)

// Snoozer postpones a memo reminder
type Snoozer interface {
	Snooze(id string, minutes int, now time.Time) error
}

// Notifier shows reminder events. Popups are queued onto the UI goroutine so
// Notify returns without waiting for the user.
type Notifier struct {
	window  fyne.Window
	loc     *Localization
	snoozer Snoozer

	beep          func() error
	desktopNotify func(title, body string) error
	now           func() time.Time
}

// NewNotifier creates a notifier that attaches popups to window. A nil window
// sends desktop notifications instead.
func NewNotifier(window fyne.Window, loc *Localization, snoozer Snoozer) *Notifier {
	return &Notifier{
		window:        window,
		loc:           loc,
		snoozer:       snoozer,
		beep:          platform.Beep,
		desktopNotify: platform.Notify,
		now:           time.Now,
	}
}

var _ reminder.Notifier = (*Notifier)(nil)

// Notify implements reminder.Notifier
func (n *Notifier) Notify(_ context.Context, event reminder.Event) error {
	if event.Sound {
		go func() {
			if err := n.beep(); err != nil {
				logging.Debugf("Reminder sound failed: %v", err)
			}
		}()
	}
	if !event.Popup {
		return nil
	}

	title, body := n.message(event)
	if n.window == nil {
		return n.desktopNotify(title, body)
	}

	fyne.Do(func() {
		switch event.Kind {
		case reminder.KindFinal:
			n.showFinal(event, title, body)
		default:
			n.showAdvance(title, body)
		}
	})
	return nil
}

// message returns the localized popup title and body for event
func (n *Notifier) message(event reminder.Event) (string, string) {
	name := event.Memo.DisplayTitle()
	if event.Kind == reminder.KindFinal {
		body := name
		if event.Memo.Content != "" {
			body += "\n\n" + event.Memo.Content
		}
		return n.loc.GetText(KeyReminderTitle), body
	}
	lead := fmt.Sprintf(n.loc.GetText(KeyAdvanceBody), event.AdvanceMinutes)
	return n.loc.GetText(KeyAdvanceTitle), lead + "\n" + name
}

// showFinal shows a modal reminder offering snooze or dismiss
func (n *Notifier) showFinal(event reminder.Event, title, body string) {
	n.window.Show()
	n.window.RequestFocus()

	text := widget.NewLabel(body)
	text.Wrapping = fyne.TextWrapWord

	id := event.Memo.ID
	confirm := dialog.NewCustomConfirm(
		title,
		n.loc.GetText(KeySnooze),
		n.loc.GetText(KeyDismiss),
		text,
		func(snooze bool) {
			if snooze {
				n.snooze(id)
			}
		},
		n.window,
	)
	confirm.Show()
}

// snooze pushes the memo reminder SnoozeMinutes into the future
func (n *Notifier) snooze(id string) {
	if n.snoozer == nil {
		return
	}
	if err := n.snoozer.Snooze(id, SnoozeMinutes, n.now()); err != nil {
		logging.Errorf("Snoozing memo %s: %v", id, err)
		return
	}
	logging.Infof("Memo %s snoozed for %d minutes", id, SnoozeMinutes)
}

// showAdvance shows a non-modal toast in the top-right corner that hides itself
func (n *Notifier) showAdvance(title, body string) {
	titleLabel := widget.NewLabel(title)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(body)
	messageLabel.Wrapping = fyne.TextWrapWord

	var toast *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toast != nil {
			toast.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewVBox(
		container.NewBorder(nil, nil, titleLabel, closeBtn),
		messageLabel,
	)

	toast = widget.NewPopUp(content, n.window.Canvas())

	canvasSize := n.window.Canvas().Size()
	toast.Resize(fyne.NewSize(ToastWidth, ToastHeight))
	toast.Move(fyne.NewPos(canvasSize.Width-ToastWidth-ToastMargin, ToastMargin))
	toast.Show()

	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(toast.Hide)
	})
}
