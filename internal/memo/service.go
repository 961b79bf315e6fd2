// Package memo implements memo editing on top of the settings store. Memos are
// addressed by their generated id, never by list position.
package memo

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wallpanel/wallpanel/internal/logging"
	"github.com/wallpanel/wallpanel/internal/model"
)

var (
	// ErrNotFound is returned for an unknown memo id
	ErrNotFound = errors.New("memo not found")

	// ErrEmptyTitle is returned when adding or updating a memo without a title
	ErrEmptyTitle = errors.New("memo title is empty")

	// ErrInvalidSnooze is returned for a non-positive snooze duration
	ErrInvalidSnooze = errors.New("snooze minutes must be positive")
)

// Service handles memo operations
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a new memo service
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// List returns all memos in stored order
func (s *Service) List() ([]model.Memo, error) {
	settings, err := s.store.Load()
	if err != nil {
		logging.Warnf("Loading memos: %v", err)
	}
	return append([]model.Memo(nil), settings.Memos...), nil
}

// Get returns a memo by id
func (s *Service) Get(id string) (model.Memo, error) {
	memos, err := s.List()
	if err != nil {
		return model.Memo{}, err
	}
	for _, m := range memos {
		if m.ID == id {
			return m, nil
		}
	}
	return model.Memo{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Add creates a memo and persists it
func (s *Service) Add(title, content string, reminder *time.Time) (model.Memo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Memo{}, ErrEmptyTitle
	}

	memo := model.Memo{
		ID:          uuid.NewString(),
		Title:       title,
		Content:     content,
		CreatedTime: model.FormatTime(s.now()),
	}
	memo.SetReminder(reminder)

	err := s.store.Update(func(settings *model.Settings) error {
		settings.Memos = append(settings.Memos, memo)
		return nil
	})
	if err != nil {
		return model.Memo{}, fmt.Errorf("failed to add memo: %w", err)
	}
	return memo, nil
}

// Update replaces title, content and reminder of a memo. Changing the reminder
// time clears the shown flags so the new time can fire; an unchanged time keeps
// the stored value and the flags.
func (s *Service) Update(id, title, content string, reminder *time.Time) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}

	return s.mutate(id, func(m *model.Memo) {
		m.Title = title
		m.Content = content
		if m.SameReminder(reminder) {
			return
		}
		m.SetReminder(reminder)
		m.ResetReminder()
	})
}

// Delete removes a memo
func (s *Service) Delete(id string) error {
	return s.store.Update(func(settings *model.Settings) error {
		if !settings.RemoveMemo(id) {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil
	})
}

// ResetReminder clears the shown flags so the reminder fires again
func (s *Service) ResetReminder(id string) error {
	return s.mutate(id, func(m *model.Memo) {
		m.ResetReminder()
	})
}

// Snooze moves the reminder to now+minutes without touching the shown flags.
// A memo whose final notification already fired will not fire again until
// ResetReminder is called.
func (s *Service) Snooze(id string, minutes int, now time.Time) error {
	if minutes <= 0 {
		return ErrInvalidSnooze
	}
	return s.mutate(id, func(m *model.Memo) {
		m.Snooze(now, minutes)
	})
}

func (s *Service) mutate(id string, fn func(*model.Memo)) error {
	return s.store.Update(func(settings *model.Settings) error {
		i := settings.FindMemo(id)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		fn(&settings.Memos[i])
		return nil
	})
}
