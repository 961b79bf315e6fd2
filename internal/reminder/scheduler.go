package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wallpanel/wallpanel/internal/logging"
	"github.com/wallpanel/wallpanel/internal/model"
)

// DefaultInterval is the polling period
const DefaultInterval = 30 * time.Second

// Kind distinguishes advance and final notifications
type Kind string

const (
	KindAdvance Kind = "advance"
	KindFinal   Kind = "final"
)

// String returns the string representation of Kind
func (k Kind) String() string {
	return string(k)
}

// Event is one fired notification
type Event struct {
	Kind           Kind
	Memo           model.Memo
	AdvanceMinutes int
	Popup          bool
	Sound          bool
	FiredAt        time.Time
}

// Result summarizes one scan
type Result struct {
	Fired   []Event
	Skipped []string // ids of memos with unparsable reminder times
}

// errNoChange aborts the store update when the scan changed nothing
var errNoChange = errors.New("no reminder changes")

// Scheduler polls memos and fires notifications
type Scheduler struct {
	store    SettingsStore
	notifier Notifier
	interval time.Duration
	now      func() time.Time
}

// Option configures a Scheduler
type Option func(*Scheduler)

// WithInterval sets the polling period
func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		if now != nil {
			s.now = now
		}
	}
}

// NewScheduler creates a scheduler
func NewScheduler(store SettingsStore, notifier Notifier, opts ...Option) *Scheduler {
	s := &Scheduler{
		store:    store,
		notifier: notifier,
		interval: DefaultInterval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Interval returns the polling period
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Run polls once immediately and then every interval until ctx is done.
// Poll errors are logged and never stop the loop.
func (s *Scheduler) Run(ctx context.Context) {
	logging.Infof("Reminder scheduler started, checking every %s", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, err := s.Poll(ctx); err != nil {
			logging.Errorf("Reminder poll failed: %v", err)
		}
		select {
		case <-ctx.Done():
			logging.Infof("Reminder scheduler stopped")
			return
		case <-ticker.C:
		}
	}
}

// Poll re-reads the settings, advances every due memo by at most one state,
// saves the document when anything changed and then delivers the
// notifications.
func (s *Scheduler) Poll(ctx context.Context) (Result, error) {
	var result Result
	now := s.now()

	err := s.store.Update(func(settings *model.Settings) error {
		result = scan(settings, now)
		if len(result.Fired) == 0 {
			return errNoChange
		}
		return nil
	})
	if errors.Is(err, errNoChange) {
		return result, nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("failed to persist reminder state: %w", err)
	}

	for _, event := range result.Fired {
		logging.Infof("Firing %s reminder: %s", event.Kind, event.Memo.DisplayTitle())
		if err := s.notifier.Notify(ctx, event); err != nil {
			logging.Warnf("Reminder notification for %q failed: %v", event.Memo.DisplayTitle(), err)
		}
	}
	return result, nil
}

// scan applies the state transitions to settings in place
func scan(settings *model.Settings, now time.Time) Result {
	var result Result

	rs := settings.ReminderSettings
	rs.Normalize()
	advanceAt := now.Add(time.Duration(rs.AdvanceMinutes) * time.Minute)

	logging.Debugf("Checking reminders at %s, %d memos", now.Format(time.TimeOnly), len(settings.Memos))

	for i := range settings.Memos {
		memo := &settings.Memos[i]
		if !memo.HasReminder() {
			continue
		}

		due, err := memo.ReminderAt()
		if err != nil {
			logging.Warnf("Skipping memo %q: bad reminder time %q: %v", memo.DisplayTitle(), memo.ReminderTime, err)
			result.Skipped = append(result.Skipped, memo.ID)
			continue
		}

		var kind Kind
		switch {
		case !now.Before(due) && !memo.ReminderShown:
			memo.ReminderShown = true
			kind = KindFinal
		case !advanceAt.Before(due) && !memo.AdvanceShown && !memo.ReminderShown:
			memo.AdvanceShown = true
			kind = KindAdvance
		default:
			continue
		}

		result.Fired = append(result.Fired, Event{
			Kind:           kind,
			Memo:           *memo,
			AdvanceMinutes: rs.AdvanceMinutes,
			Popup:          rs.EnablePopup,
			Sound:          rs.EnableSound,
			FiredAt:        now,
		})
	}
	return result
}
