// Package store persists user feedback to a local append-only CSV file.
package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"
)

// FeedbackEntry is one submitted feedback record.
type FeedbackEntry struct {
	Time     string `json:"time"`
	Name     string `json:"name"`
	Comments string `json:"comments"`
}

var feedbackHeader = []string{"time", "name", "comments"}

// FeedbackStore appends feedback records to a flat CSV file. The header is
// written once when the file is first created; records are never updated
// or deleted.
type FeedbackStore struct {
	mu   sync.Mutex
	path string
}

func NewFeedbackStore(path string) *FeedbackStore {
	return &FeedbackStore{path: path}
}

func (s *FeedbackStore) Path() string {
	return s.path
}

// Append writes one record, creating the file with a header row if needed.
// A failure leaves the caller's in-memory state untouched; it is reported
// to the user as a non-fatal error.
func (s *FeedbackStore) Append(entry FeedbackEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, statErr := os.Stat(s.path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open feedback file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(feedbackHeader); err != nil {
			return fmt.Errorf("failed to write feedback header: %w", err)
		}
	}
	if err := w.Write([]string{entry.Time, entry.Name, entry.Comments}); err != nil {
		return fmt.Errorf("failed to write feedback record: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush feedback record: %w", err)
	}
	return nil
}
