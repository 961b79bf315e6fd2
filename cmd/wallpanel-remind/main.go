// Command wallpanel-remind runs the memo reminder scheduler without the panel
// window and delivers reminders as desktop notifications.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/wallpanel/wallpanel/internal/config"
	"github.com/wallpanel/wallpanel/internal/logging"
	"github.com/wallpanel/wallpanel/internal/model"
	"github.com/wallpanel/wallpanel/internal/platform"
	"github.com/wallpanel/wallpanel/internal/reminder"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	var (
		settingsPath string
		interval     time.Duration
		once         bool
		debug        bool
		showVersion  bool
	)
	flag.StringVarP(&settingsPath, "settings", "s", config.DefaultPath(), "path to the settings document")
	flag.DurationVarP(&interval, "interval", "i", reminder.DefaultInterval, "poll interval")
	flag.BoolVar(&once, "once", false, "poll once and exit")
	flag.BoolVar(&debug, "debug", logging.DebugEnabled(), "enable debug logging")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		return
	}
	logging.SetDebug(debug)

	store := config.NewStore(settingsPath)
	scheduler := reminder.NewScheduler(store, reminder.NotifierFunc(notify), reminder.WithInterval(interval))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if once {
		result, err := scheduler.Poll(ctx)
		if err != nil {
			logging.Errorf("Poll failed: %v", err)
			os.Exit(1)
		}
		logging.Infof("Fired %d reminder(s), skipped %d", len(result.Fired), len(result.Skipped))
		return
	}

	// External edits are polled right away instead of waiting for the next tick.
	changes := make(chan struct{}, 1)
	store.Subscribe(signalChange(changes))
	go pollOnChange(ctx, scheduler, changes)
	go func() {
		if err := store.Watch(ctx); err != nil {
			logging.Warnf("Settings watcher stopped: %v", err)
		}
	}()

	logging.Infof("wallpanel-remind v%s watching %s every %s", version, store.Path(), scheduler.Interval())
	scheduler.Run(ctx)
}

// poller is the part of the scheduler pollOnChange needs
type poller interface {
	Poll(ctx context.Context) (reminder.Result, error)
}

// signalChange returns a subscriber that signals changes without blocking;
// bursts of edits collapse into one pending signal.
func signalChange(changes chan<- struct{}) func(*model.Settings) {
	return func(s *model.Settings) {
		logging.Debugf("Settings reloaded, %d memos", len(s.Memos))
		select {
		case changes <- struct{}{}:
		default:
		}
	}
}

// pollOnChange polls once per change signal until ctx is done
func pollOnChange(ctx context.Context, p poller, changes <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-changes:
			if _, err := p.Poll(ctx); err != nil {
				logging.Warnf("Poll after settings change failed: %v", err)
			}
		}
	}
}

// notify delivers one event through the desktop notification service
func notify(_ context.Context, event reminder.Event) error {
	if event.Sound {
		if err := platform.Beep(); err != nil {
			logging.Debugf("Beep failed: %v", err)
		}
	}
	if !event.Popup {
		return nil
	}
	return platform.Notify(notificationText(event))
}

func notificationText(event reminder.Event) (string, string) {
	name := event.Memo.DisplayTitle()
	if event.Kind == reminder.KindFinal {
		if event.Memo.Content != "" {
			return "Reminder", name + "\n" + event.Memo.Content
		}
		return "Reminder", name
	}
	return "Upcoming reminder", fmt.Sprintf("%d minutes until reminder\n%s", event.AdvanceMinutes, name)
}
