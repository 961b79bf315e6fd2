package platform

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/godbus/dbus/v5"
)

// MPRIS D-Bus configuration
const (
	mprisPrefix     = "org.mpris.MediaPlayer2."
	mprisObjectPath = "/org/mpris/MediaPlayer2"
	mprisPlayer     = "org.mpris.MediaPlayer2.Player"
	mprisPlayPause  = mprisPlayer + ".PlayPause"
	mprisNext       = mprisPlayer + ".Next"
	mprisPrevious   = mprisPlayer + ".Previous"
	dbusListNames   = "org.freedesktop.DBus.ListNames"
)

var (
	// ErrMediaUnsupported is returned where no media-key backend exists
	ErrMediaUnsupported = errors.New("media keys are not supported on this platform")

	// ErrNoPlayer is returned when no MPRIS player is running
	ErrNoPlayer = errors.New("no media player found")
)

// MediaController sends media-key commands to the active player
type MediaController interface {
	PlayPause() error
	Next() error
	Previous() error
}

// NewMediaController returns the MPRIS controller on Linux and an
// unsupported stub elsewhere. preferred, if set, is matched against player
// bus names before falling back to the first one.
func NewMediaController(preferred string) MediaController {
	if runtime.GOOS != OSLinux {
		return unsupportedMedia{}
	}
	return &MPRISController{preferred: strings.ToLower(preferred)}
}

type unsupportedMedia struct{}

func (unsupportedMedia) PlayPause() error { return ErrMediaUnsupported }
func (unsupportedMedia) Next() error      { return ErrMediaUnsupported }
func (unsupportedMedia) Previous() error  { return ErrMediaUnsupported }

// MPRISController drives players over the session bus
type MPRISController struct {
	preferred string

	mu   sync.Mutex
	conn *dbus.Conn
}

// PlayPause toggles playback
func (m *MPRISController) PlayPause() error { return m.call(mprisPlayPause) }

// Next skips to the next track
func (m *MPRISController) Next() error { return m.call(mprisNext) }

// Previous goes back one track
func (m *MPRISController) Previous() error { return m.call(mprisPrevious) }

func (m *MPRISController) call(method string) error {
	conn, err := m.connect()
	if err != nil {
		return err
	}

	var names []string
	if err := conn.BusObject().Call(dbusListNames, 0).Store(&names); err != nil {
		return fmt.Errorf("failed to list bus names: %w", err)
	}

	player, ok := pickPlayer(names, m.preferred)
	if !ok {
		return ErrNoPlayer
	}

	obj := conn.Object(player, dbus.ObjectPath(mprisObjectPath))
	if err := obj.Call(method, 0).Err; err != nil {
		return fmt.Errorf("%s on %s failed: %w", method, player, err)
	}
	return nil
}

func (m *MPRISController) connect() (*dbus.Conn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn != nil && m.conn.Connected() {
		return m.conn, nil
	}
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	m.conn = conn
	return conn, nil
}

// pickPlayer chooses an MPRIS bus name, preferring one containing preferred
func pickPlayer(names []string, preferred string) (string, bool) {
	var players []string
	for _, name := range names {
		if strings.HasPrefix(name, mprisPrefix) {
			players = append(players, name)
		}
	}
	if len(players) == 0 {
		return "", false
	}
	sort.Strings(players)

	if preferred != "" {
		for _, p := range players {
			if strings.Contains(strings.ToLower(p), preferred) {
				return p, true
			}
		}
	}
	return players[0], true
}
