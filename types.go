package main

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// App holds the catalog, leaderboard store and runtime configuration.
// The catalog is immutable after construction; the only mutable shared
// state is the limiter map, guarded by LimiterMutex.
type App struct {
	Catalog        *Catalog
	Store          LeaderboardStore // nil when no backend is reachable
	StoreKind      string           // "file", "postgres" or "none"
	Location       *time.Location
	Now            func() time.Time // injectable clock for tests
	RevealSolution bool
	IsProduction   bool
	StartTime      time.Time
	RateLimitRPS   int
	RateLimitBurst int
	LimiterMap     map[string]*rate.Limiter
	LimiterMutex   sync.Mutex
}

// GuessRequest is the body of POST /guess and POST /validate.
type GuessRequest struct {
	Guess string `json:"guess"`
}

// GuessResponse carries the per-letter verdicts for a scored guess.
// Result holds one of "correct", "present" or "absent" per position,
// or is empty when the guess is not a dictionary word.
type GuessResponse struct {
	Result      []string `json:"result"`
	IsValidWord bool     `json:"is_valid_word"`
	Solution    string   `json:"solution,omitempty"`
}

// ValidateResponse is the body of the POST /validate reply.
type ValidateResponse struct {
	IsValid bool `json:"is_valid"`
}

// LeaderboardEntry is one player's recorded daily result. Entries are
// append-only within a day and implicitly partitioned by day key.
type LeaderboardEntry struct {
	Name      string    `json:"name"`
	Tries     int       `json:"tries"`
	Won       bool      `json:"won"`
	Timestamp time.Time `json:"timestamp"`
}

// LeaderboardRequest is the body of POST /leaderboard.
type LeaderboardRequest struct {
	Name  string `json:"name"`
	Tries int    `json:"tries"`
	Won   bool   `json:"won"`
}

// LeaderboardResponse is the shared reply shape of GET and POST
// /leaderboard: the day's sorted entries plus the day key they belong
// to. Error is set when the backing store could not be read.
type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
	Date    string             `json:"date"`
	Error   string             `json:"error,omitempty"`
}
