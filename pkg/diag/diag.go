// Package diag records structured render and lifecycle diagnostics as
// JSONL. A nil *Recorder is valid and discards everything, so callers
// wire diagnostics unconditionally and let the flag decide.
package diag

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents event severity
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Category represents the subsystem generating the event
type Category string

const (
	CategoryBackend Category = "backend"
	CategoryRender  Category = "render"
	CategoryInput   Category = "input"
	CategoryFocus   Category = "focus"
	CategoryLayout  Category = "layout"
)

// Event is one structured diagnostic record
type Event struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     Level          `json:"level"`
	Category  Category       `json:"category"`
	EventType string         `json:"type"`
	Message   string         `json:"message,omitempty"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// Recorder writes events to a sink, one JSON object per line
type Recorder struct {
	mu       sync.Mutex
	w        io.Writer
	closer   io.Closer
	minLevel Level
}

// New creates a recorder writing to w
func New(w io.Writer) *Recorder {
	return &Recorder{w: w, minLevel: LevelInfo}
}

// NewFile creates a recorder appending to the file at path
func NewFile(path string) (*Recorder, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open diagnostic log: %w", err)
	}
	r := New(f)
	r.closer = f
	return r, nil
}

// SetMinLevel sets the minimum level recorded
func (r *Recorder) SetMinLevel(level Level) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.minLevel = level
}

// Record writes an event to the sink
func (r *Recorder) Record(event Event) error {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if !r.shouldRecord(event.Level) {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	data = append(data, '\n')

	if _, err := r.w.Write(data); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return nil
}

// shouldRecord checks an event level against the minimum level
func (r *Recorder) shouldRecord(level Level) bool {
	levels := map[Level]int{
		LevelDebug: 0,
		LevelInfo:  1,
		LevelWarn:  2,
		LevelError: 3,
	}
	return levels[level] >= levels[r.minLevel]
}

// Debug records a debug event
func (r *Recorder) Debug(category Category, eventType string, message string, fields map[string]any) error {
	return r.Record(Event{
		Level:     LevelDebug,
		Category:  category,
		EventType: eventType,
		Message:   message,
		Fields:    fields,
	})
}

// Info records an info event
func (r *Recorder) Info(category Category, eventType string, message string, fields map[string]any) error {
	return r.Record(Event{
		Level:     LevelInfo,
		Category:  category,
		EventType: eventType,
		Message:   message,
		Fields:    fields,
	})
}

// Warn records a warning event
func (r *Recorder) Warn(category Category, eventType string, message string, fields map[string]any) error {
	return r.Record(Event{
		Level:     LevelWarn,
		Category:  category,
		EventType: eventType,
		Message:   message,
		Fields:    fields,
	})
}

// Error records an error event
func (r *Recorder) Error(category Category, eventType string, message string, fields map[string]any) error {
	return r.Record(Event{
		Level:     LevelError,
		Category:  category,
		EventType: eventType,
		Message:   message,
		Fields:    fields,
	})
}

// Close closes the underlying sink if the recorder owns it
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closer == nil {
		return nil
	}
	if err := r.closer.Close(); err != nil {
		return fmt.Errorf("failed to close diagnostic log: %w", err)
	}
	return nil
}

// ReadRecent reads the last count events from a JSONL file
func ReadRecent(path string, count int) ([]Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open diagnostic log: %w", err)
	}
	defer file.Close()

	var events []Event
	decoder := json.NewDecoder(file)
	for {
		var event Event
		if err := decoder.Decode(&event); err != nil {
			break
		}
		events = append(events, event)
	}

	if len(events) > count {
		events = events[len(events)-count:]
	}
	return events, nil
}
