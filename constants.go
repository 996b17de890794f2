package main

// Game configuration constants
const (
	WordLength     = 6        // Length of the word to guess
	NoWordSentinel = "NOWORD" // Returned when the catalog is empty
)

// Guess status constants
const (
	GuessStatusCorrect = "correct"
	GuessStatusPresent = "present"
	GuessStatusAbsent  = "absent"
)

// Day key constants. Every date-dependent feature derives its calendar
// date in DayKeyZone; mixing zones would desync the daily word from the
// leaderboard partitions.
const (
	DayKeyZone   = "America/New_York"
	DayKeyFormat = "2006-01-02"
)

// Route constants
const (
	RouteRoot           = "/"
	RouteHealth         = "/healthz"
	RouteDailyWordCheck = "/daily-word-check"
	RouteValidate       = "/validate"
	RouteGuess          = "/guess"
	RouteLeaderboard    = "/leaderboard"
)

// Error message constants
const (
	ErrorInvalidBody     = "invalid request body"
	ErrorInvalidLength   = "word must be 6 letters"
	ErrorNameRequired    = "name must not be empty"
	ErrorTriesPositive   = "tries must be a positive integer"
	ErrorStoreConfigured = "leaderboard storage not configured"
	ErrorStoreWrite      = "failed to record leaderboard entry"
	ErrorStoreRead       = "leaderboard unavailable"
)

type contextKey string

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)
