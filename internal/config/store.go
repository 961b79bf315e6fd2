package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/wallpanel/wallpanel/internal/logging"
	"github.com/wallpanel/wallpanel/internal/model"
)

// Settings file location
const (
	EnvSettingsPath  = "WALLPANEL_SETTINGS"
	AppDirName       = "wallpanel"
	SettingsFileName = "settings.json"
	FilePermissions  = 0644
	DirPermissions   = 0755
	jsonIndent       = "    "
)

// DefaultPath returns $WALLPANEL_SETTINGS or <user config dir>/wallpanel/settings.json
func DefaultPath() string {
	if p := os.Getenv(EnvSettingsPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return SettingsFileName
	}
	return filepath.Join(dir, AppDirName, SettingsFileName)
}

// Store reads and writes the preferences document
type Store struct {
	path string
	mu   sync.Mutex

	subsMu sync.Mutex
	subs   map[int]func(*model.Settings)
	nextID int

	// lastWritten holds the bytes of our own most recent write so the
	// watcher can tell them apart from external edits.
	lastWritten []byte
}

// NewStore creates a store backed by the file at path
func NewStore(path string) *Store {
	return &Store{
		path: path,
		subs: make(map[int]func(*model.Settings)),
	}
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Load reads the preferences. A missing file yields defaults and no error; an
// unreadable or invalid file yields defaults and the error.
func (s *Store) Load() (*model.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save overwrites the whole document and notifies subscribers
func (s *Store) Save(settings *model.Settings) error {
	s.mu.Lock()
	err := s.save(settings)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify(settings)
	return nil
}

// Update loads the document, applies fn and saves the result. Nothing is
// written when fn returns an error.
func (s *Store) Update(fn func(*model.Settings) error) error {
	s.mu.Lock()
	settings, err := s.load()
	if err != nil {
		logging.Warnf("Loading settings before update: %v", err)
	}
	if err := fn(settings); err != nil {
		s.mu.Unlock()
		return err
	}
	err = s.save(settings)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify(settings)
	return nil
}

// Subscribe registers fn to receive a snapshot after every change. The
// returned function cancels the subscription.
func (s *Store) Subscribe(fn func(*model.Settings)) func() {
	s.subsMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subsMu.Unlock()

	return func() {
		s.subsMu.Lock()
		delete(s.subs, id)
		s.subsMu.Unlock()
	}
}

func (s *Store) notify(settings *model.Settings) {
	s.subsMu.Lock()
	fns := make([]func(*model.Settings), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(settings.Clone())
	}
}

func (s *Store) load() (*model.Settings, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return Defaults(), fmt.Errorf("failed to read settings %s: %w", s.path, err)
	}

	settings, err := decode(data)
	if err != nil {
		return Defaults(), fmt.Errorf("failed to parse settings %s: %w", s.path, err)
	}

	if assignMemoIDs(settings) {
		// Ids must be stable across loads, so persist them right away.
		if err := s.save(settings); err != nil {
			logging.Warnf("Persisting generated memo ids: %v", err)
		}
	}
	return settings, nil
}

func (s *Store) save(settings *model.Settings) error {
	data, err := encode(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+SettingsFileName+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp settings file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Chmod(tmpName, FilePermissions); err != nil {
		return fmt.Errorf("failed to set settings permissions: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace settings file: %w", err)
	}

	s.lastWritten = data
	return nil
}

// isOwnWrite reports whether data matches the last document this store wrote
func (s *Store) isOwnWrite(data []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastWritten != nil && bytes.Equal(s.lastWritten, data)
}

// decode parses data over the defaults so missing keys keep their default values
func decode(data []byte) (*model.Settings, error) {
	settings := Defaults()
	// Slices are decoded from scratch; json would otherwise merge into the
	// default elements.
	defaultTools := settings.QuickTools
	settings.QuickTools = nil
	settings.Memos = nil

	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}
	if settings.Memos == nil {
		settings.Memos = []model.Memo{}
	}
	if settings.QuickTools == nil {
		settings.QuickTools = defaultTools
	}
	settings.ReminderSettings.Normalize()
	return settings, nil
}

func encode(settings *model.Settings) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(settings); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func assignMemoIDs(settings *model.Settings) bool {
	changed := false
	for i := range settings.Memos {
		if settings.Memos[i].ID == "" {
			settings.Memos[i].ID = uuid.NewString()
			changed = true
		}
	}
	return changed
}
