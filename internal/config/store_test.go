package config

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/wallpanel/wallpanel/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "nested", SettingsFileName))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.Load()
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if !reflect.DeepEqual(settings, Defaults()) {
		t.Errorf("Expected defaults, got %+v", settings)
	}
}

func TestLoad_InvalidJSONFallsBackToDefaults(t *testing.T) {
	store := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(store.Path()), DirPermissions); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.Path(), []byte("{not json"), FilePermissions); err != nil {
		t.Fatal(err)
	}

	settings, err := store.Load()
	if err == nil {
		t.Error("Expected parse error, got nil")
	}
	if settings == nil || settings.ReminderSettings.AdvanceMinutes != model.DefaultAdvanceMinutes {
		t.Errorf("Expected default settings on parse error, got %+v", settings)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	x, y := 120, 80

	original := Defaults()
	original.Notes = "buy milk 🥛 / 买牛奶"
	original.DefaultSearchEngine = model.SearchBing
	original.BackgroundColor = model.Color{R: 10, G: 20, B: 30, A: 200}
	original.InitialPosition = model.Position{X: &x, Y: &y}
	original.QuickTools = []model.QuickTool{{Name: "Editor", Path: "/usr/bin/vim", Icon: "vim.png"}}
	original.ReminderSettings = model.ReminderSettings{AdvanceMinutes: 15, EnableSound: false, EnablePopup: true}
	original.Memos = []model.Memo{
		{
			ID:           "memo-1",
			Title:        "Pay rent",
			Content:      "transfer to landlord",
			CreatedTime:  "2025-03-01T08:00:00",
			ReminderTime: "2025-03-01T09:30:00",
			AdvanceShown: true,
		},
		{ID: "memo-2", Title: "No reminder", CreatedTime: "2025-03-01T08:05:00"},
	}

	if err := store.Save(original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, original) {
		t.Errorf("Round trip mismatch:\n got  %+v\n want %+v", loaded, original)
	}
}

func TestSave_HumanReadableUTF8(t *testing.T) {
	store := newTestStore(t)
	settings := Defaults()
	settings.Notes = "立体声 <ok>"

	if err := store.Save(settings); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.Contains(text, "立体声 <ok>") {
		t.Errorf("Expected unescaped UTF-8 notes, got %s", text)
	}
	if !strings.Contains(text, "\n    \"notes\"") {
		t.Errorf("Expected 4-space indentation, got %s", text)
	}
}

func TestLoad_FillsMissingKeys(t *testing.T) {
	store := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(store.Path()), DirPermissions); err != nil {
		t.Fatal(err)
	}
	doc := `{"notes": "hi", "reminder_settings": {"advance_minutes": 0}, "memos": [{"title": "legacy"}]}`
	if err := os.WriteFile(store.Path(), []byte(doc), FilePermissions); err != nil {
		t.Fatal(err)
	}

	settings, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.Notes != "hi" {
		t.Errorf("Expected notes 'hi', got %q", settings.Notes)
	}
	if settings.ReminderSettings.AdvanceMinutes != model.MinAdvanceMinutes {
		t.Errorf("Expected advance minutes clamped to %d, got %d", model.MinAdvanceMinutes, settings.ReminderSettings.AdvanceMinutes)
	}
	if !settings.ReminderSettings.EnablePopup || !settings.ReminderSettings.EnableSound {
		t.Error("Missing reminder flags should keep their defaults")
	}
	if len(settings.QuickTools) != len(Defaults().QuickTools) {
		t.Errorf("Expected default quick tools, got %d", len(settings.QuickTools))
	}
	if settings.DefaultSearchEngine != DefaultSearchEngine {
		t.Errorf("Expected default search engine, got %q", settings.DefaultSearchEngine)
	}

	// Legacy memos get a stable id that survives the next load.
	if len(settings.Memos) != 1 || settings.Memos[0].ID == "" {
		t.Fatalf("Expected legacy memo with generated id, got %+v", settings.Memos)
	}
	again, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if again.Memos[0].ID != settings.Memos[0].ID {
		t.Errorf("Memo id changed between loads: %s vs %s", settings.Memos[0].ID, again.Memos[0].ID)
	}
}

func TestUpdate(t *testing.T) {
	store := newTestStore(t)

	err := store.Update(func(s *model.Settings) error {
		s.Notes = "updated"
		return nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	settings, _ := store.Load()
	if settings.Notes != "updated" {
		t.Errorf("Expected notes 'updated', got %q", settings.Notes)
	}

	sentinel := os.ErrInvalid
	err = store.Update(func(s *model.Settings) error {
		s.Notes = "discarded"
		return sentinel
	})
	if err != sentinel {
		t.Errorf("Expected sentinel error, got %v", err)
	}
	settings, _ = store.Load()
	if settings.Notes != "updated" {
		t.Errorf("Failed update should not be saved, got %q", settings.Notes)
	}
}

func TestSubscribe(t *testing.T) {
	store := newTestStore(t)

	var received []*model.Settings
	cancel := store.Subscribe(func(s *model.Settings) {
		received = append(received, s)
	})

	settings := Defaults()
	settings.Notes = "first"
	if err := store.Save(settings); err != nil {
		t.Fatal(err)
	}
	if len(received) != 1 || received[0].Notes != "first" {
		t.Fatalf("Expected one notification with notes 'first', got %+v", received)
	}
	if received[0] == settings {
		t.Error("Subscribers should receive a snapshot, not the saved pointer")
	}

	cancel()
	settings.Notes = "second"
	if err := store.Save(settings); err != nil {
		t.Fatal(err)
	}
	if len(received) != 1 {
		t.Errorf("Cancelled subscriber should not be notified, got %d notifications", len(received))
	}
}

func TestWatch_ExternalEdit(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(Defaults()); err != nil {
		t.Fatal(err)
	}

	changes := make(chan *model.Settings, 4)
	store.Subscribe(func(s *model.Settings) { changes <- s })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- store.Watch(ctx) }()

	// Give the watcher time to register the directory.
	time.Sleep(200 * time.Millisecond)

	external := Defaults()
	external.Notes = "edited elsewhere"
	data, err := encode(external)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.Path(), data, FilePermissions); err != nil {
		t.Fatal(err)
	}

	select {
	case s := <-changes:
		if s.Notes != "edited elsewhere" {
			t.Errorf("Expected external notes, got %q", s.Notes)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for external change notification")
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Watch returned error: %v", err)
	}
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv(EnvSettingsPath, "/tmp/custom.json")
	if got := DefaultPath(); got != "/tmp/custom.json" {
		t.Errorf("Expected env override, got %s", got)
	}
}

func TestLoad_KeepsLargeAdvanceMinutes(t *testing.T) {
	store := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(store.Path()), DirPermissions); err != nil {
		t.Fatal(err)
	}
	doc := `{"reminder_settings": {"advance_minutes": 90, "enable_sound": true, "enable_popup": true}}`
	if err := os.WriteFile(store.Path(), []byte(doc), FilePermissions); err != nil {
		t.Fatal(err)
	}

	settings, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if settings.ReminderSettings.AdvanceMinutes != 90 {
		t.Errorf("Expected advance minutes 90 to survive load, got %d", settings.ReminderSettings.AdvanceMinutes)
	}
}
