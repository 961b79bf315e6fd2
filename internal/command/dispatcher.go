// Package command maps action identifiers to handlers so every panel button,
// tray item and shortcut goes through one dispatch table.
package command

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Action identifies a user command
type Action string

const (
	ActionSearch        Action = "search"
	ActionPlayPause     Action = "media.play_pause"
	ActionNextTrack     Action = "media.next"
	ActionPreviousTrack Action = "media.previous"
	ActionLaunchTool    Action = "tool.launch"
	ActionOpenMusic     Action = "music.open"
	ActionOpenMemos     Action = "memo.open"
	ActionSaveNotes     Action = "notes.save"
	ActionOpenSettings  Action = "settings.open"
	ActionQuit          Action = "quit"
)

// Argument keys
const (
	ArgQuery  = "query"
	ArgEngine = "engine"
	ArgTool   = "tool"
	ArgText   = "text"
)

// ErrUnknownAction is returned when no handler is registered
var ErrUnknownAction = errors.New("unknown action")

// Args carries action parameters
type Args map[string]string

// Get returns the value for key, or ""
func (a Args) Get(key string) string {
	if a == nil {
		return ""
	}
	return a[key]
}

// Handler executes one action
type Handler func(ctx context.Context, args Args) error

// Dispatcher is the action table
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[Action]Handler
}

// NewDispatcher creates an empty table
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Action]Handler)}
}

// Register binds handler to action, replacing any previous binding
func (d *Dispatcher) Register(action Action, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[action] = handler
}

// Has reports whether action has a handler
func (d *Dispatcher) Has(action Action) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.handlers[action]
	return ok
}

// Dispatch runs the handler for action
func (d *Dispatcher) Dispatch(ctx context.Context, action Action, args Args) error {
	d.mu.RLock()
	handler, ok := d.handlers[action]
	d.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}
	if err := handler(ctx, args); err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	return nil
}

// Actions returns the registered actions, sorted
func (d *Dispatcher) Actions() []Action {
	d.mu.RLock()
	defer d.mu.RUnlock()

	actions := make([]Action, 0, len(d.handlers))
	for a := range d.handlers {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	return actions
}
