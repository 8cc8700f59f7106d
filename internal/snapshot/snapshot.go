// Package snapshot persists the drawing as a data-URI-encoded PNG plus a
// creation timestamp. Only one snapshot is kept; every save overwrites the
// previous one.
package snapshot

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
	"time"

	"noteink/internal/host"
)

const dataURIPrefix = "data:image/png;base64,"

// Record keys inside the shared plugin data blob. The snapshot is stored
// alongside the settings keys; there is no schema version field.
const (
	keyDrawing   = "drawing"
	keyTimestamp = "timestamp"
)

// Snapshot is the persisted drawing: an encoded raster image and the epoch
// milliseconds at which it was taken.
type Snapshot struct {
	Drawing   string `json:"drawing"`
	Timestamp int64  `json:"timestamp"`
}

// Encode serializes an image as a PNG data URI. Identical pixels always
// produce an identical payload.
func Encode(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode parses a PNG data URI back into an image.
func Decode(uri string) (image.Image, error) {
	if !strings.HasPrefix(uri, dataURIPrefix) {
		return nil, fmt.Errorf("decode snapshot: not a PNG data URI")
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, dataURIPrefix))
	if err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return img, nil
}

// FromRecord extracts the snapshot fields from a plugin data record.
// Returns nil if no snapshot is stored.
func FromRecord(record map[string]any) *Snapshot {
	if record == nil {
		return nil
	}
	drawing, ok := record[keyDrawing].(string)
	if !ok || drawing == "" {
		return nil
	}
	snap := &Snapshot{Drawing: drawing}
	switch ts := record[keyTimestamp].(type) {
	case float64:
		snap.Timestamp = int64(ts)
	case int64:
		snap.Timestamp = ts
	}
	return snap
}

// Store reads and writes the snapshot through the host's storage, sharing
// the record with the settings keys.
type Store struct {
	storage host.Storage
	now     func() time.Time
}

// NewStore creates a snapshot store over the given host storage.
func NewStore(storage host.Storage) *Store {
	return &Store{storage: storage, now: time.Now}
}

// Load returns the persisted snapshot, or nil on first run or after Clear.
func (s *Store) Load() (*Snapshot, error) {
	record, err := s.storage.LoadData()
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return FromRecord(record), nil
}

// Save encodes the image and overwrites the stored snapshot, leaving the
// settings keys in the record untouched.
func (s *Store) Save(img image.Image) (*Snapshot, error) {
	drawing, err := Encode(img)
	if err != nil {
		return nil, err
	}

	record, err := s.storage.LoadData()
	if err != nil {
		return nil, fmt.Errorf("save snapshot: %w", err)
	}
	if record == nil {
		record = make(map[string]any)
	}

	snap := &Snapshot{Drawing: drawing, Timestamp: s.now().UnixMilli()}
	record[keyDrawing] = snap.Drawing
	record[keyTimestamp] = snap.Timestamp

	if err := s.storage.SaveData(record); err != nil {
		return nil, fmt.Errorf("save snapshot: %w", err)
	}
	return snap, nil
}

// Clear erases the persisted snapshot outright. The next activation starts
// from a blank canvas.
func (s *Store) Clear() error {
	record, err := s.storage.LoadData()
	if err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	if record == nil {
		return nil
	}
	delete(record, keyDrawing)
	delete(record, keyTimestamp)
	if err := s.storage.SaveData(record); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}
