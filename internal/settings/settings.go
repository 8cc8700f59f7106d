// Package settings holds the plugin's user preferences and their persistence.
package settings

import (
	"fmt"
	"sync"

	"noteink/internal/host"
)

// Settings is the flat user-preference record. PenColor is a "#rrggbb"
// string; PenWidth is expected in [1,20] but nothing outside the UI widgets
// enforces that — out-of-range values from other writers are accepted as-is.
type Settings struct {
	PenColor    string `json:"penColor"`
	PenWidth    int    `json:"penWidth"`
	EraserSize  int    `json:"eraserSize"`
	ShowToolbar bool   `json:"showToolbar"`
}

// Defaults returns the hard-coded default settings.
func Defaults() Settings {
	return Settings{
		PenColor:    "#000000",
		PenWidth:    3,
		EraserSize:  24,
		ShowToolbar: true,
	}
}

// merge shallow-merges a persisted record over the defaults. Persisted keys
// win; missing or wrong-typed keys keep the default value. JSON numbers
// arrive as float64; records that never went through JSON may carry ints.
func merge(defaults Settings, record map[string]any) Settings {
	s := defaults
	if record == nil {
		return s
	}
	if v, ok := record["penColor"].(string); ok {
		s.PenColor = v
	}
	if v, ok := asInt(record["penWidth"]); ok {
		s.PenWidth = v
	}
	if v, ok := asInt(record["eraserSize"]); ok {
		s.EraserSize = v
	}
	if v, ok := record["showToolbar"].(bool); ok {
		s.ShowToolbar = v
	}
	return s
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

// Store is the long-lived settings value and its load/save operations. The
// settings share one host record with the drawing snapshot, so Save rewrites
// only the settings keys and leaves the rest of the record intact.
type Store struct {
	mu      sync.RWMutex
	storage host.Storage
	live    Settings
}

// NewStore creates a store over the given host storage. The live settings
// are the defaults until Load is called.
func NewStore(storage host.Storage) *Store {
	return &Store{storage: storage, live: Defaults()}
}

// Load retrieves the persisted record and merges it over the defaults.
func (s *Store) Load() error {
	record, err := s.storage.LoadData()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	s.mu.Lock()
	s.live = merge(Defaults(), record)
	s.mu.Unlock()
	return nil
}

// Save writes the current live settings back into the host record.
func (s *Store) Save() error {
	record, err := s.storage.LoadData()
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	if record == nil {
		record = make(map[string]any)
	}

	s.mu.RLock()
	live := s.live
	s.mu.RUnlock()

	record["penColor"] = live.PenColor
	record["penWidth"] = live.PenWidth
	record["eraserSize"] = live.EraserSize
	record["showToolbar"] = live.ShowToolbar

	if err := s.storage.SaveData(record); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Current returns the live settings value.
func (s *Store) Current() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.live
}

// SetPenColor mutates the live pen color. Persistence is the caller's
// explicit Save call; toolbar changes deliberately never persist.
func (s *Store) SetPenColor(hex string) {
	s.mu.Lock()
	s.live.PenColor = hex
	s.mu.Unlock()
}

// SetPenWidth mutates the live pen width.
func (s *Store) SetPenWidth(w int) {
	s.mu.Lock()
	s.live.PenWidth = w
	s.mu.Unlock()
}

// SetEraserSize mutates the live eraser size.
func (s *Store) SetEraserSize(size int) {
	s.mu.Lock()
	s.live.EraserSize = size
	s.mu.Unlock()
}

// SetShowToolbar mutates the toolbar visibility flag.
func (s *Store) SetShowToolbar(show bool) {
	s.mu.Lock()
	s.live.ShowToolbar = show
	s.mu.Unlock()
}
