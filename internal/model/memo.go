package model

import (
	"errors"
	"strings"
	"time"
)

// ReminderTimeLayout is the layout used when writing reminder timestamps.
const ReminderTimeLayout = "2006-01-02T15:04:05"

// UntitledMemo is shown for memos with a blank title.
const UntitledMemo = "Untitled"

// ErrNoReminder is returned by ReminderAt when the memo carries no reminder.
var ErrNoReminder = errors.New("memo has no reminder")

// reminderTimeLayouts are accepted when reading stored timestamps, most specific first.
var reminderTimeLayouts = []string{
	time.RFC3339Nano,
	ReminderTimeLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ReminderState is the notification state of a memo.
type ReminderState string

const (
	// ReminderIdle means no notification has fired yet
	ReminderIdle ReminderState = "idle"

	// ReminderAdvanceNotified means the early warning fired
	ReminderAdvanceNotified ReminderState = "advance_notified"

	// ReminderFinalNotified means the final notification fired; terminal
	ReminderFinalNotified ReminderState = "final_notified"
)

// String returns the string representation of ReminderState
func (s ReminderState) String() string {
	return string(s)
}

// IsTerminal returns true once no further notification can fire
func (s ReminderState) IsTerminal() bool {
	return s == ReminderFinalNotified
}

// Memo is a user note optionally carrying a scheduled reminder.
type Memo struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	CreatedTime   string `json:"created_time"`
	ReminderTime  string `json:"reminder_time,omitempty"`
	ReminderShown bool   `json:"reminder_shown"`
	AdvanceShown  bool   `json:"advance_shown"`
}

// FormatTime renders t the way memo timestamps are stored.
func FormatTime(t time.Time) string {
	return t.Local().Format(ReminderTimeLayout)
}

// ParseTime parses a stored timestamp. Values without a zone are local time.
func ParseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var firstErr error
	for _, layout := range reminderTimeLayouts {
		t, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// HasReminder reports whether a reminder time is set
func (m *Memo) HasReminder() bool {
	return strings.TrimSpace(m.ReminderTime) != ""
}

// ReminderAt parses the reminder time.
func (m *Memo) ReminderAt() (time.Time, error) {
	if !m.HasReminder() {
		return time.Time{}, ErrNoReminder
	}
	return ParseTime(m.ReminderTime)
}

// SetReminder sets or clears (nil) the reminder time. Flags are left untouched.
func (m *Memo) SetReminder(at *time.Time) {
	if at == nil {
		m.ReminderTime = ""
		return
	}
	m.ReminderTime = FormatTime(*at)
}

// SameReminder reports whether at names the stored reminder time. A value
// with zero seconds also matches the stored time truncated to the minute, so
// a time echoed back from a minute-precision editor counts as unchanged.
func (m *Memo) SameReminder(at *time.Time) bool {
	if at == nil {
		return !m.HasReminder()
	}
	current, err := m.ReminderAt()
	if err != nil {
		return false
	}
	if at.Equal(current) {
		return true
	}
	return at.Second() == 0 && at.Nanosecond() == 0 && at.Equal(current.Truncate(time.Minute))
}

// State derives the reminder state from the shown flags
func (m *Memo) State() ReminderState {
	switch {
	case m.ReminderShown:
		return ReminderFinalNotified
	case m.AdvanceShown:
		return ReminderAdvanceNotified
	default:
		return ReminderIdle
	}
}

// ResetReminder clears both shown flags so the reminder can fire again
func (m *Memo) ResetReminder() {
	m.ReminderShown = false
	m.AdvanceShown = false
}

// Snooze moves the reminder to now+minutes.
// The shown flags are kept: a memo that already fired its final notification
// stays in that state until ResetReminder is called.
func (m *Memo) Snooze(now time.Time, minutes int) {
	at := now.Add(time.Duration(minutes) * time.Minute)
	m.SetReminder(&at)
}

// DisplayTitle returns the title, or a placeholder when it is blank
func (m *Memo) DisplayTitle() string {
	if strings.TrimSpace(m.Title) == "" {
		return UntitledMemo
	}
	return m.Title
}

// Reminder status labels for list rows
const (
	StatusPending  = "pending"
	StatusReminded = "reminded"
)

// StatusLabel describes the reminder for list rows: "", StatusPending or StatusReminded
func (m *Memo) StatusLabel() string {
	if !m.HasReminder() {
		return ""
	}
	if m.State().IsTerminal() {
		return StatusReminded
	}
	return StatusPending
}
