package reminder

import (
	"context"

	"github.com/wallpanel/wallpanel/internal/model"
)

// SettingsStore loads, mutates and saves the preferences document in one step.
type SettingsStore interface {
	Update(fn func(*model.Settings) error) error
}

// Notifier delivers reminder side effects. Notify must return promptly; popups
// are expected to be shown asynchronously.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(ctx context.Context, event Event) error

// Notify calls f(ctx, event)
func (f NotifierFunc) Notify(ctx context.Context, event Event) error {
	return f(ctx, event)
}
