// Package app provides host application state, events, and theming.
package app

import (
	"fmt"
	"os"
	"sync"
)

// State holds the host application state: the open note and the event bus
// that the window, status bar, and plugins subscribe to.
type State struct {
	mu sync.RWMutex

	// Open note
	NotePath string
	NoteText string
	Modified bool

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different host application events.
type EventType int

const (
	EventNoteLoaded EventType = iota
	EventNoteSaved
	EventModified
	EventPluginRegistered
	EventStatus
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a new host application state.
func NewState() *State {
	return &State{
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// SetModified marks the open note as modified and emits an event.
func (s *State) SetModified(modified bool) {
	s.mu.Lock()
	s.Modified = modified
	s.mu.Unlock()
	s.Emit(EventModified, modified)
}

// SetNoteText stores the current editor content.
func (s *State) SetNoteText(text string) {
	s.mu.Lock()
	s.NoteText = text
	s.mu.Unlock()
}

// LoadNote reads a note file into the state.
func (s *State) LoadNote(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load note: %w", err)
	}

	s.mu.Lock()
	s.NotePath = path
	s.NoteText = string(data)
	s.Modified = false
	s.mu.Unlock()

	s.Emit(EventNoteLoaded, path)
	return nil
}

// SaveNote writes the current note text to its path.
func (s *State) SaveNote() error {
	s.mu.RLock()
	path := s.NotePath
	text := s.NoteText
	s.mu.RUnlock()

	if path == "" {
		return fmt.Errorf("save note: no note open")
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("save note: %w", err)
	}

	s.SetModified(false)
	s.Emit(EventNoteSaved, path)
	return nil
}

// Note returns the open note path and text.
func (s *State) Note() (path, text string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.NotePath, s.NoteText
}
