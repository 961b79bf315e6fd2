package model

import "testing"

func TestReminderSettings_Normalize(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{-3, MinAdvanceMinutes},
		{0, MinAdvanceMinutes},
		{1, 1},
		{5, 5},
		{60, 60},
		{120, 120},
	}

	for _, test := range tests {
		rs := ReminderSettings{AdvanceMinutes: test.input}
		rs.Normalize()
		if rs.AdvanceMinutes != test.expected {
			t.Errorf("Normalize(%d) = %d, expected %d", test.input, rs.AdvanceMinutes, test.expected)
		}
	}
}

func TestSettings_CloneIsDeep(t *testing.T) {
	x := 10
	original := &Settings{
		QuickTools:      []QuickTool{{Name: "Terminal", Path: "/usr/bin/xterm"}},
		Memos:           []Memo{{ID: "a", Title: "first"}},
		InitialPosition: Position{X: &x},
	}

	clone := original.Clone()
	clone.QuickTools[0].Name = "changed"
	clone.Memos[0].Title = "changed"
	*clone.InitialPosition.X = 99

	if original.QuickTools[0].Name != "Terminal" {
		t.Error("Clone should not share quick tools")
	}
	if original.Memos[0].Title != "first" {
		t.Error("Clone should not share memos")
	}
	if *original.InitialPosition.X != 10 {
		t.Error("Clone should not share position pointers")
	}
	if clone.InitialPosition.Y != nil {
		t.Error("Nil coordinates should stay nil")
	}
}

func TestSettings_FindAndRemoveMemo(t *testing.T) {
	s := &Settings{Memos: []Memo{{ID: "a"}, {ID: "b"}, {ID: "c"}}}

	if i := s.FindMemo("b"); i != 1 {
		t.Errorf("Expected index 1, got %d", i)
	}
	if i := s.FindMemo("missing"); i != -1 {
		t.Errorf("Expected -1, got %d", i)
	}

	if !s.RemoveMemo("b") {
		t.Fatal("Expected memo b to be removed")
	}
	if s.RemoveMemo("b") {
		t.Error("Second removal should report false")
	}
	if len(s.Memos) != 2 || s.Memos[0].ID != "a" || s.Memos[1].ID != "c" {
		t.Errorf("Unexpected memos after removal: %+v", s.Memos)
	}
}

func TestSearchEngineOptions(t *testing.T) {
	expected := []string{SearchEverything, SearchBing, SearchChatGPT, SearchBilibili}
	options := SearchEngineOptions()
	if len(options) != len(expected) {
		t.Fatalf("Expected %d engines, got %v", len(expected), options)
	}
	for i, engine := range expected {
		if options[i] != engine {
			t.Errorf("Engine %d = %s, expected %s", i, options[i], engine)
		}
	}
}
