package memo

import (
	"time"

	"github.com/wallpanel/wallpanel/internal/model"
)

// Store is the part of config.Store the memo service needs.
type Store interface {
	Load() (*model.Settings, error)
	Update(fn func(*model.Settings) error) error
}

// Manager defines the interface for memo editing.
type Manager interface {
	List() ([]model.Memo, error)
	Get(id string) (model.Memo, error)
	Add(title, content string, reminder *time.Time) (model.Memo, error)
	Update(id, title, content string, reminder *time.Time) error
	Delete(id string) error
	ResetReminder(id string) error
	Snooze(id string, minutes int, now time.Time) error
}
