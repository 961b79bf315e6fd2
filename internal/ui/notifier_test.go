package ui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/wallpanel/wallpanel/internal/model"
	"github.com/wallpanel/wallpanel/internal/reminder"
)

type snoozeCall struct {
	id      string
	minutes int
	now     time.Time
}

type fakeSnoozer struct {
	calls []snoozeCall
}

func (f *fakeSnoozer) Snooze(id string, minutes int, now time.Time) error {
	f.calls = append(f.calls, snoozeCall{id: id, minutes: minutes, now: now})
	return nil
}

type recordedNotification struct {
	title string
	body  string
}

func newHeadlessNotifier() (*Notifier, *[]recordedNotification, chan struct{}) {
	var sent []recordedNotification
	beeps := make(chan struct{}, 4)

	n := NewNotifier(nil, NewLocalization(), &fakeSnoozer{})
	n.beep = func() error {
		beeps <- struct{}{}
		return nil
	}
	n.desktopNotify = func(title, body string) error {
		sent = append(sent, recordedNotification{title: title, body: body})
		return nil
	}
	return n, &sent, beeps
}

func TestNotifier_Message(t *testing.T) {
	n := NewNotifier(nil, NewLocalization(), nil)
	m := model.Memo{ID: "a", Title: "Pay rent", Content: "transfer to landlord"}

	title, body := n.message(reminder.Event{Kind: reminder.KindFinal, Memo: m})
	if title != "Reminder" {
		t.Errorf("Expected final title 'Reminder', got %q", title)
	}
	if !strings.Contains(body, "Pay rent") || !strings.Contains(body, "transfer to landlord") {
		t.Errorf("Final body should carry title and content, got %q", body)
	}

	title, body = n.message(reminder.Event{Kind: reminder.KindAdvance, Memo: m, AdvanceMinutes: 5})
	if title != "Upcoming reminder" {
		t.Errorf("Expected advance title, got %q", title)
	}
	if !strings.HasPrefix(body, "5 minutes until reminder") || !strings.Contains(body, "Pay rent") {
		t.Errorf("Unexpected advance body %q", body)
	}

	_, body = n.message(reminder.Event{Kind: reminder.KindFinal, Memo: model.Memo{ID: "b"}})
	if body != model.UntitledMemo {
		t.Errorf("Expected untitled placeholder, got %q", body)
	}
}

func TestNotifier_HeadlessFallsBackToDesktopNotification(t *testing.T) {
	n, sent, _ := newHeadlessNotifier()

	event := reminder.Event{Kind: reminder.KindFinal, Memo: model.Memo{ID: "a", Title: "stretch"}, Popup: true}
	if err := n.Notify(context.Background(), event); err != nil {
		t.Fatal(err)
	}
	if len(*sent) != 1 || (*sent)[0].title != "Reminder" || (*sent)[0].body != "stretch" {
		t.Errorf("Expected one desktop notification, got %+v", *sent)
	}
}

func TestNotifier_GatesPopupAndSound(t *testing.T) {
	n, sent, beeps := newHeadlessNotifier()

	event := reminder.Event{Kind: reminder.KindAdvance, Memo: model.Memo{ID: "a"}, AdvanceMinutes: 5, Sound: true}
	if err := n.Notify(context.Background(), event); err != nil {
		t.Fatal(err)
	}
	if len(*sent) != 0 {
		t.Errorf("Popup disabled should send nothing, got %+v", *sent)
	}

	select {
	case <-beeps:
	case <-time.After(time.Second):
		t.Fatal("Expected a beep when sound is enabled")
	}
}

func TestNotifier_SnoozeUsesFiveMinutes(t *testing.T) {
	snoozer := &fakeSnoozer{}
	n := NewNotifier(nil, NewLocalization(), snoozer)
	fixed := time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local)
	n.now = func() time.Time { return fixed }

	n.snooze("memo-1")

	if len(snoozer.calls) != 1 {
		t.Fatalf("Expected one snooze call, got %d", len(snoozer.calls))
	}
	call := snoozer.calls[0]
	if call.id != "memo-1" || call.minutes != SnoozeMinutes || !call.now.Equal(fixed) {
		t.Errorf("Unexpected snooze call %+v", call)
	}
}

func TestNotifier_ConcurrentNotify(t *testing.T) {
	n, _, beeps := newHeadlessNotifier()
	n.desktopNotify = func(string, string) error { return nil }

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n.Notify(context.Background(), reminder.Event{Kind: reminder.KindFinal, Sound: true, Popup: true})
		}()
	}
	wg.Wait()

	for i := 0; i < 4; i++ {
		select {
		case <-beeps:
		case <-time.After(time.Second):
			t.Fatalf("Expected 4 beeps, got %d", i)
		}
	}
}
