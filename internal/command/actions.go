package command

import (
	"context"

	"github.com/wallpanel/wallpanel/internal/logging"
	"github.com/wallpanel/wallpanel/internal/model"
	"github.com/wallpanel/wallpanel/internal/platform"
)

// SettingsStore is the part of config.Store the built-in actions need
type SettingsStore interface {
	Load() (*model.Settings, error)
	Update(fn func(*model.Settings) error) error
}

// Launcher starts an external program without waiting for it
type Launcher func(path string, args ...string) error

// Searcher runs a query against a search engine
type Searcher func(settings *model.Settings, engine, query string) error

// Platform bundles the OS integrations the built-in actions call
type Platform struct {
	Media  platform.MediaController
	Launch Launcher
	Search Searcher
}

// DefaultPlatform uses the real platform helpers
func DefaultPlatform(media platform.MediaController) Platform {
	return Platform{
		Media:  media,
		Launch: platform.LaunchDetached,
		Search: platform.Search,
	}
}

// RegisterBuiltins binds the actions that need no UI: search, media keys,
// tool and music launching, and notes persistence
func RegisterBuiltins(d *Dispatcher, store SettingsStore, p Platform) {
	d.Register(ActionSearch, func(_ context.Context, args Args) error {
		settings, err := store.Load()
		if err != nil {
			logging.Warnf("Searching with default settings: %v", err)
		}
		return p.Search(settings, args.Get(ArgEngine), args.Get(ArgQuery))
	})

	d.Register(ActionPlayPause, func(context.Context, Args) error { return p.Media.PlayPause() })
	d.Register(ActionNextTrack, func(context.Context, Args) error { return p.Media.Next() })
	d.Register(ActionPreviousTrack, func(context.Context, Args) error { return p.Media.Previous() })

	d.Register(ActionLaunchTool, func(_ context.Context, args Args) error {
		return p.Launch(args.Get(ArgTool))
	})

	d.Register(ActionOpenMusic, func(context.Context, Args) error {
		settings, err := store.Load()
		if err != nil {
			return err
		}
		return p.Launch(settings.MusicPath)
	})

	d.Register(ActionSaveNotes, func(_ context.Context, args Args) error {
		text := args.Get(ArgText)
		return store.Update(func(s *model.Settings) error {
			s.Notes = text
			return nil
		})
	})
}
