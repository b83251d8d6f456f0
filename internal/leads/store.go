package leads

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store defines the interface for lead persistence
type Store interface {
	Append(ctx context.Context, lead *Lead) error
}

// FileStore appends leads to a newline-delimited JSON file. The file is only
// ever appended to; nothing here reads or rewrites it.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store writing to the given file path. The containing
// directory is created on first append.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Append serializes the lead as one JSON line and appends it to the log file.
// The record line is written in a single Write call so concurrent appends
// interleave at line granularity only.
func (s *FileStore) Append(ctx context.Context, lead *Lead) error {
	line, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("leads: marshal record: %w", err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("leads: create data dir: %w", err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("leads: open log: %w", err)
	}

	if _, err := f.Write(line); err != nil {
		f.Close()
		return fmt.Errorf("leads: append record: %w", err)
	}
	return f.Close()
}
