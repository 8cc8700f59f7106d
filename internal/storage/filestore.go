// Package storage provides the host's JSON-backed plugin data store.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists one plugin's data record as a JSON file. It implements
// the host.Storage contract.
type FileStore struct {
	mu   sync.RWMutex
	path string
}

// DefaultRoot returns the per-user data directory for plugin records,
// ~/.config/noteink/plugins on most systems.
func DefaultRoot() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "noteink", "plugins")
}

// NewFileStore creates a store for the named plugin under root.
func NewFileStore(root, pluginName string) *FileStore {
	return &FileStore{path: filepath.Join(root, pluginName+".json")}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// LoadData reads the plugin record. A missing file is not an error: it
// returns nil, meaning first run.
func (f *FileStore) LoadData() (map[string]any, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read plugin data: %w", err)
	}

	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parse plugin data: %w", err)
	}
	return record, nil
}

// SaveData writes the full record, replacing whatever was stored before.
func (f *FileStore) SaveData(record map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("encode plugin data: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return os.WriteFile(f.path, data, 0o644)
}
