package memo

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/wallpanel/wallpanel/internal/config"
	"github.com/wallpanel/wallpanel/internal/model"
)

func newTestService(t *testing.T) (*Service, *config.Store) {
	t.Helper()
	store := config.NewStore(filepath.Join(t.TempDir(), config.SettingsFileName))
	return NewService(store), store
}

func TestAdd(t *testing.T) {
	service, store := newTestService(t)
	at := time.Date(2025, 3, 1, 9, 30, 0, 0, time.Local)

	memo, err := service.Add("  Pay rent ", "landlord", &at)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if memo.ID == "" {
		t.Error("Expected generated id")
	}
	if memo.Title != "Pay rent" {
		t.Errorf("Expected trimmed title, got %q", memo.Title)
	}
	if memo.CreatedTime == "" {
		t.Error("Expected created time")
	}
	if memo.ReminderTime != model.FormatTime(at) {
		t.Errorf("Expected reminder %s, got %s", model.FormatTime(at), memo.ReminderTime)
	}

	settings, _ := store.Load()
	if len(settings.Memos) != 1 || settings.Memos[0].ID != memo.ID {
		t.Errorf("Memo not persisted: %+v", settings.Memos)
	}

	if _, err := service.Add("   ", "", nil); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("Expected ErrEmptyTitle, got %v", err)
	}
}

func TestGetAndList(t *testing.T) {
	service, _ := newTestService(t)

	first, _ := service.Add("first", "", nil)
	second, _ := service.Add("second", "", nil)

	memos, err := service.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(memos) != 2 || memos[0].ID != first.ID || memos[1].ID != second.ID {
		t.Errorf("Unexpected list order: %+v", memos)
	}

	got, err := service.Get(second.ID)
	if err != nil || got.Title != "second" {
		t.Errorf("Get returned %+v, %v", got, err)
	}

	if _, err := service.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_NewReminderClearsFlags(t *testing.T) {
	service, store := newTestService(t)
	at := time.Date(2025, 3, 1, 9, 30, 0, 0, time.Local)
	memo, _ := service.Add("call", "", &at)

	store.Update(func(s *model.Settings) error {
		s.Memos[0].ReminderShown = true
		s.Memos[0].AdvanceShown = true
		return nil
	})

	// Same reminder time keeps the flags.
	if err := service.Update(memo.ID, "call mom", "soon", &at); err != nil {
		t.Fatal(err)
	}
	got, _ := service.Get(memo.ID)
	if got.Title != "call mom" || got.Content != "soon" {
		t.Errorf("Update not applied: %+v", got)
	}
	if !got.ReminderShown {
		t.Error("Unchanged reminder time should keep flags")
	}

	later := at.Add(time.Hour)
	if err := service.Update(memo.ID, "call mom", "soon", &later); err != nil {
		t.Fatal(err)
	}
	got, _ = service.Get(memo.ID)
	if got.State() != model.ReminderIdle {
		t.Errorf("New reminder time should reset state, got %s", got.State())
	}

	if err := service.Update("missing", "x", "", nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if err := service.Update(memo.ID, "", "", nil); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("Expected ErrEmptyTitle, got %v", err)
	}
}

func TestDelete_ById(t *testing.T) {
	service, _ := newTestService(t)
	a, _ := service.Add("a", "", nil)
	b, _ := service.Add("b", "", nil)
	c, _ := service.Add("c", "", nil)

	if err := service.Delete(a.ID); err != nil {
		t.Fatal(err)
	}
	// c keeps its identity after the list shifted.
	if err := service.Delete(c.ID); err != nil {
		t.Fatal(err)
	}

	memos, _ := service.List()
	if len(memos) != 1 || memos[0].ID != b.ID {
		t.Errorf("Expected only b to remain, got %+v", memos)
	}

	if err := service.Delete(a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSnoozeAndReset(t *testing.T) {
	service, store := newTestService(t)
	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.Local)
	memo, _ := service.Add("stretch", "", &now)

	store.Update(func(s *model.Settings) error {
		s.Memos[0].ReminderShown = true
		return nil
	})

	if err := service.Snooze(memo.ID, 10, now); err != nil {
		t.Fatal(err)
	}
	got, _ := service.Get(memo.ID)
	at, err := got.ReminderAt()
	if err != nil {
		t.Fatal(err)
	}
	if !at.Equal(now.Add(10 * time.Minute)) {
		t.Errorf("Expected snoozed time %v, got %v", now.Add(10*time.Minute), at)
	}
	if !got.ReminderShown {
		t.Error("Snooze should keep reminder_shown")
	}

	if err := service.ResetReminder(memo.ID); err != nil {
		t.Fatal(err)
	}
	got, _ = service.Get(memo.ID)
	if got.State() != model.ReminderIdle {
		t.Errorf("Expected idle after reset, got %s", got.State())
	}

	if err := service.Snooze(memo.ID, 0, now); !errors.Is(err, ErrInvalidSnooze) {
		t.Errorf("Expected ErrInvalidSnooze, got %v", err)
	}
}

func TestUpdate_MinutePrecisionKeepsFiredReminder(t *testing.T) {
	service, store := newTestService(t)
	memo, _ := service.Add("stretch", "", nil)

	snoozedAt := time.Date(2025, 3, 1, 9, 30, 37, 0, time.Local)
	if err := service.Snooze(memo.ID, 5, snoozedAt); err != nil {
		t.Fatal(err)
	}
	store.Update(func(s *model.Settings) error {
		s.Memos[0].ReminderShown = true
		s.Memos[0].AdvanceShown = true
		return nil
	})
	before, _ := service.Get(memo.ID)

	// The editor shows and returns the time without seconds.
	edited := time.Date(2025, 3, 1, 9, 35, 0, 0, time.Local)
	if err := service.Update(memo.ID, "stretch legs", "", &edited); err != nil {
		t.Fatal(err)
	}

	got, _ := service.Get(memo.ID)
	if got.ReminderTime != before.ReminderTime {
		t.Errorf("Expected stored time %s to be kept, got %s", before.ReminderTime, got.ReminderTime)
	}
	if got.State() != model.ReminderFinalNotified {
		t.Errorf("Title-only edit should keep the fired state, got %s", got.State())
	}
	if got.Title != "stretch legs" {
		t.Errorf("Expected new title, got %q", got.Title)
	}
}
