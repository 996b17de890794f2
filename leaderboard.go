package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// LeaderboardStore records daily standings. Implementations must not
// lose concurrent appends, and an Append followed by a List must show
// the appended entry.
type LeaderboardStore interface {
	Append(ctx context.Context, dayKey string, entry LeaderboardEntry) error
	List(ctx context.Context, dayKey string) ([]LeaderboardEntry, error)
}

// sortEntries orders a day's entries in place: winners before
// non-winners, then ascending by tries. The sort is stable so
// same-score entries keep submission order.
func sortEntries(entries []LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Won != entries[j].Won {
			return entries[i].Won
		}
		return entries[i].Tries < entries[j].Tries
	})
}

// FileStore keeps the leaderboard in a single JSON document mapping
// day key to that day's entries. A mutex serializes every access, so
// concurrent appends cannot clobber each other.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file-backed store at path. The file is
// created on first append.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// load reads the full leaderboard document. Missing or corrupt files
// start fresh rather than blocking play; corruption is logged.
// Caller must hold s.mu.
func (s *FileStore) load() map[string][]LeaderboardEntry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logWarn("Failed to read leaderboard file %s: %v", s.path, err)
		}
		return map[string][]LeaderboardEntry{}
	}
	var days map[string][]LeaderboardEntry
	if err := json.Unmarshal(data, &days); err != nil {
		logWarn("Leaderboard file %s is corrupted, starting fresh: %v", s.path, err)
		return map[string][]LeaderboardEntry{}
	}
	return days
}

// Append records an entry under dayKey and persists the document.
func (s *FileStore) Append(_ context.Context, dayKey string, entry LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	days := s.load()
	days[dayKey] = append(days[dayKey], entry)

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logWarn("Failed to create leaderboard directory %s: %v", dir, err)
			return err
		}
	}

	data, err := json.MarshalIndent(days, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		logWarn("Failed to write leaderboard file %s: %v", s.path, err)
		return err
	}
	return nil
}

// List returns all entries recorded under dayKey, in append order.
func (s *FileStore) List(_ context.Context, dayKey string) ([]LeaderboardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()[dayKey], nil
}
