package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/wallpanel/wallpanel/internal/logging"
	"github.com/wallpanel/wallpanel/internal/memo"
	"github.com/wallpanel/wallpanel/internal/model"
)

// errNoSelection is returned by actions that need a selected memo
var errNoSelection = errors.New("no memo selected")

// MemoDialog lists memos and edits them through the memo service
type MemoDialog struct {
	window fyne.Window
	memos  memo.Manager
	loc    *Localization
	dialog *dialog.CustomDialog

	items    []model.Memo
	selected string

	list          *widget.List
	titleEntry    *widget.Entry
	contentEntry  *widget.Entry
	reminderEntry *widget.Entry
}

// NewMemoDialog creates a new memo dialog
func NewMemoDialog(window fyne.Window, memos memo.Manager, loc *Localization) *MemoDialog {
	md := &MemoDialog{
		window: window,
		memos:  memos,
		loc:    loc,
	}

	md.createUI()
	return md
}

// Show reloads the memo list and displays the dialog
func (md *MemoDialog) Show() {
	md.clearForm()
	if err := md.reload(); err != nil {
		logging.Errorf("Loading memos: %v", err)
	}
	md.dialog.Show()
}

// createUI creates the memo dialog UI
func (md *MemoDialog) createUI() {
	md.list = widget.NewList(
		func() int { return len(md.items) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(md.items) {
				obj.(*widget.Label).SetText(md.itemLabel(md.items[id]))
			}
		},
	)
	md.list.OnSelected = md.onSelected
	md.list.OnUnselected = func(widget.ListItemID) { md.selected = "" }

	md.titleEntry = widget.NewEntry()
	md.titleEntry.SetPlaceHolder(md.loc.GetText(KeyMemoTitle))

	md.contentEntry = widget.NewMultiLineEntry()
	md.contentEntry.SetPlaceHolder(md.loc.GetText(KeyMemoContent))
	md.contentEntry.SetMinRowsVisible(3)

	md.reminderEntry = widget.NewEntry()
	md.reminderEntry.SetPlaceHolder(md.loc.GetText(KeyReminderPlaceholder))

	buttons := container.NewGridWithColumns(4,
		widget.NewButton(md.loc.GetText(KeyAdd), func() { md.run(md.add) }),
		widget.NewButton(md.loc.GetText(KeyUpdate), func() { md.run(md.update) }),
		widget.NewButton(md.loc.GetText(KeyDelete), func() { md.run(md.remove) }),
		widget.NewButton(md.loc.GetText(KeyResetReminder), func() { md.run(md.resetReminder) }),
	)

	form := container.NewVBox(
		md.titleEntry,
		md.contentEntry,
		widget.NewLabel(md.loc.GetText(KeyMemoReminder)),
		md.reminderEntry,
		buttons,
	)

	content := container.NewBorder(nil, form, nil, nil, md.list)

	md.dialog = dialog.NewCustom(md.loc.GetText(KeyMemos), md.loc.GetText(KeyClose), content, md.window)
	md.dialog.Resize(fyne.NewSize(MemoDialogWidth, MemoDialogHeight))
}

// itemLabel renders a list row: the title plus reminder time and status when set
func (md *MemoDialog) itemLabel(m model.Memo) string {
	label := m.DisplayTitle()
	if !m.HasReminder() {
		return label
	}

	when := m.ReminderTime
	if at, err := m.ReminderAt(); err == nil {
		when = at.Format(ReminderInputLayout)
	}
	status := md.loc.GetText(m.StatusLabel())
	return label + fmt.Sprintf(MemoListSuffixFormat, md.loc.GetText(KeyReminder), when, status)
}

// reload refreshes the list from the memo service
func (md *MemoDialog) reload() error {
	items, err := md.memos.List()
	if err != nil {
		return err
	}
	md.items = items
	md.list.UnselectAll()
	md.selected = ""
	md.list.Refresh()
	return nil
}

// onSelected loads the selected memo into the form
func (md *MemoDialog) onSelected(id widget.ListItemID) {
	if id < 0 || id >= len(md.items) {
		return
	}
	m := md.items[id]
	md.selected = m.ID
	md.titleEntry.SetText(m.Title)
	md.contentEntry.SetText(m.Content)

	reminder := m.ReminderTime
	if at, err := m.ReminderAt(); err == nil {
		reminder = at.Format(ReminderInputLayout)
	}
	md.reminderEntry.SetText(reminder)
}

// run executes an action and reports failures in an error dialog
func (md *MemoDialog) run(action func() error) {
	if err := action(); err != nil {
		logging.Warnf("Memo action failed: %v", err)
		dialog.ShowError(md.userError(err), md.window)
	}
}

func (md *MemoDialog) userError(err error) error {
	switch {
	case errors.Is(err, errNoSelection):
		return errors.New(md.loc.GetText(KeySelectMemo))
	case errors.Is(err, errInvalidReminder):
		return fmt.Errorf("%s: %w", md.loc.GetText(KeyInvalidReminder), err)
	}
	return err
}

func (md *MemoDialog) add() error {
	at, err := parseReminderInput(md.reminderEntry.Text)
	if err != nil {
		return err
	}
	if _, err := md.memos.Add(md.titleEntry.Text, md.contentEntry.Text, at); err != nil {
		return err
	}
	md.clearForm()
	return md.reload()
}

func (md *MemoDialog) update() error {
	if md.selected == "" {
		return errNoSelection
	}
	at, err := parseReminderInput(md.reminderEntry.Text)
	if err != nil {
		return err
	}
	if err := md.memos.Update(md.selected, md.titleEntry.Text, md.contentEntry.Text, at); err != nil {
		return err
	}
	return md.reload()
}

func (md *MemoDialog) remove() error {
	if md.selected == "" {
		return errNoSelection
	}
	if err := md.memos.Delete(md.selected); err != nil {
		return err
	}
	md.clearForm()
	return md.reload()
}

func (md *MemoDialog) resetReminder() error {
	if md.selected == "" {
		return errNoSelection
	}
	if err := md.memos.ResetReminder(md.selected); err != nil {
		return err
	}
	return md.reload()
}

func (md *MemoDialog) clearForm() {
	md.titleEntry.SetText("")
	md.contentEntry.SetText("")
	md.reminderEntry.SetText("")
}

var errInvalidReminder = errors.New("invalid reminder time")

// parseReminderInput parses the reminder field; blank means no reminder
func parseReminderInput(text string) (*time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	at, err := model.ParseTime(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errInvalidReminder, text)
	}
	return &at, nil
}
