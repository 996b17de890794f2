package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// rootHandler returns a liveness message.
func (app *App) rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "hexle API is running"})
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"env":          map[bool]string{true: "production", false: "development"}[app.IsProduction],
		"words_loaded": app.Catalog.Len(),
		"leaderboard":  app.StoreKind,
		"uptime":       formatUptime(uptime),
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}

// dailyWordCheckHandler returns the offset in days between the fixed
// start date and today, so clients can detect day rollover without
// learning the word.
func (app *App) dailyWordCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"day_index": app.dayIndex()})
}

// validateHandler reports whether a guess is a dictionary word.
func (app *App) validateHandler(c *gin.Context) {
	var req GuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidBody})
		return
	}
	guess := normalizeGuess(req.Guess)
	c.JSON(http.StatusOK, ValidateResponse{IsValid: app.Catalog.Contains(guess)})
}

// guessHandler scores a guess against today's word. Validation order
// matters: length is checked first and rejected outright, then
// dictionary membership, and only a member word is ever scored.
func (app *App) guessHandler(c *gin.Context) {
	var req GuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidBody})
		return
	}

	guess := normalizeGuess(req.Guess)
	if len(guess) != WordLength {
		logWarn("Rejected guess of invalid length: %q (%d letters)", guess, len(guess))
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidLength})
		return
	}

	if !app.Catalog.Contains(guess) {
		c.JSON(http.StatusOK, GuessResponse{Result: []string{}, IsValidWord: false})
		return
	}

	target := app.dailyWord()
	resp := GuessResponse{Result: checkGuess(guess, target), IsValidWord: true}
	if app.RevealSolution {
		resp.Solution = target
	}
	c.JSON(http.StatusOK, resp)
}

// leaderboardGetHandler returns today's sorted standings. A missing or
// failing store degrades to an empty list with an error field; reads
// are never a hard failure.
func (app *App) leaderboardGetHandler(c *gin.Context) {
	dayKey := app.todayKey()

	if app.Store == nil {
		c.JSON(http.StatusOK, LeaderboardResponse{
			Entries: []LeaderboardEntry{},
			Date:    dayKey,
			Error:   ErrorStoreConfigured,
		})
		return
	}

	entries, err := app.Store.List(c.Request.Context(), dayKey)
	if err != nil {
		logWarn("Failed to list leaderboard for %s: %v", dayKey, err)
		c.JSON(http.StatusOK, LeaderboardResponse{
			Entries: []LeaderboardEntry{},
			Date:    dayKey,
			Error:   ErrorStoreRead,
		})
		return
	}

	sortEntries(entries)
	if entries == nil {
		entries = []LeaderboardEntry{}
	}
	c.JSON(http.StatusOK, LeaderboardResponse{Entries: entries, Date: dayKey})
}

// leaderboardPostHandler appends a timestamped entry for today and
// returns the freshly sorted day. Unlike reads, a write that cannot be
// persisted is a hard error.
func (app *App) leaderboardPostHandler(c *gin.Context) {
	var req LeaderboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidBody})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorNameRequired})
		return
	}
	if req.Tries < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorTriesPositive})
		return
	}

	if app.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": ErrorStoreConfigured})
		return
	}

	dayKey := app.todayKey()
	entry := LeaderboardEntry{
		Name:      name,
		Tries:     req.Tries,
		Won:       req.Won,
		Timestamp: app.Now().In(app.Location),
	}

	ctx := c.Request.Context()
	if err := app.Store.Append(ctx, dayKey, entry); err != nil {
		logWarn("Failed to append leaderboard entry for %s: %v", dayKey, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": ErrorStoreWrite})
		return
	}

	entries, err := app.Store.List(ctx, dayKey)
	if err != nil {
		logWarn("Failed to read back leaderboard for %s: %v", dayKey, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": ErrorStoreRead})
		return
	}

	logInfo("Recorded leaderboard entry for %s: %s (tries: %d, won: %v)", dayKey, name, req.Tries, req.Won)
	sortEntries(entries)
	c.JSON(http.StatusOK, LeaderboardResponse{Entries: entries, Date: dayKey})
}
