package main

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

const (
	TestDayKey      = "2024-03-15"
	TestOtherDayKey = "2024-03-16"
)

func testEntry(name string, tries int, won bool) LeaderboardEntry {
	return LeaderboardEntry{
		Name:      name,
		Tries:     tries,
		Won:       won,
		Timestamp: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
	}
}

// TestSortEntries checks winners sort before non-winners, then by tries.
func TestSortEntries(t *testing.T) {
	entries := []LeaderboardEntry{
		testEntry("alice", 3, true),
		testEntry("bob", 1, false),
		testEntry("carol", 1, true),
	}
	sortEntries(entries)

	wantOrder := []string{"carol", "alice", "bob"}
	for i, name := range wantOrder {
		if entries[i].Name != name {
			t.Errorf("Position %d: got %s, want %s", i, entries[i].Name, name)
		}
	}
}

// TestFileStoreAppendAndList checks read-your-write behavior.
func TestFileStoreAppendAndList(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "leaderboard.json"))
	ctx := context.Background()

	if err := store.Append(ctx, TestDayKey, testEntry("alice", 3, true)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := store.Append(ctx, TestDayKey, testEntry("bob", 2, false)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	entries, err := store.List(ctx, TestDayKey)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("List returned %d entries, want 2", len(entries))
	}
	if entries[0].Name != "alice" || entries[1].Name != "bob" {
		t.Errorf("Entries out of append order: %v", entries)
	}
}

// TestFileStorePartitionsByDay checks entries never leak across days.
func TestFileStorePartitionsByDay(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "leaderboard.json"))
	ctx := context.Background()

	if err := store.Append(ctx, TestDayKey, testEntry("alice", 3, true)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := store.Append(ctx, TestOtherDayKey, testEntry("bob", 2, false)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	entries, err := store.List(ctx, TestDayKey)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "alice" {
		t.Errorf("Day %s entries = %v, want only alice", TestDayKey, entries)
	}
}

// TestFileStoreMissingFile checks a fresh store lists no entries.
func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "leaderboard.json"))
	entries, err := store.List(context.Background(), TestDayKey)
	if err != nil {
		t.Fatalf("List on missing file failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("List on missing file returned %d entries, want 0", len(entries))
	}
}

// TestFileStoreCorruptFile checks a corrupt document is tolerated and
// overwritten by the next append.
func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaderboard.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}
	store := NewFileStore(path)
	ctx := context.Background()

	entries, err := store.List(ctx, TestDayKey)
	if err != nil {
		t.Fatalf("List on corrupt file failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("List on corrupt file returned %d entries, want 0", len(entries))
	}

	if err := store.Append(ctx, TestDayKey, testEntry("alice", 3, true)); err != nil {
		t.Fatalf("Append after corruption failed: %v", err)
	}
	entries, err = store.List(ctx, TestDayKey)
	if err != nil {
		t.Fatalf("List after append failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("List after append returned %d entries, want 1", len(entries))
	}
}

// TestFileStoreConcurrentAppends checks no entry is lost under
// concurrent writers.
func TestFileStoreConcurrentAppends(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "leaderboard.json"))
	ctx := context.Background()

	const writers = 10
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if err := store.Append(ctx, TestDayKey, testEntry("player", n+1, n%2 == 0)); err != nil {
				t.Errorf("Concurrent append failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	entries, err := store.List(ctx, TestDayKey)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != writers {
		t.Errorf("List returned %d entries, want %d", len(entries), writers)
	}
}
