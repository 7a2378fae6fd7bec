package types

import "time"

// Log levels.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var validLogLevels = map[string]bool{
	LevelDebug: true,
	LevelInfo:  true,
	LevelWarn:  true,
	LevelError: true,
}

// LogEntry is an application audit record. UserID is a weak reference
// to the users collection; zero means no associated user.
type LogEntry struct {
	ID        int64          `json:"id"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Module    string         `json:"module"`
	Timestamp time.Time      `json:"timestamp"`
	UserID    int64          `json:"userId,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Validate checks the level and message.
func (l *LogEntry) Validate() error {
	if !validLogLevels[l.Level] {
		return ErrInvalidLevel
	}
	if l.Message == "" {
		return ErrInvalidName
	}
	return nil
}
