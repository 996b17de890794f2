package main

import (
	"math/rand"
	"time"
)

// dayIndexStart is the fixed start date the /daily-word-check offset
// counts from.
var dayIndexStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// unixEpochOrdinal is 1970-01-01 expressed as days since 0001-01-01
// (day one). Used to turn a civil date into the seed ordinal without
// overflowing a time.Duration subtraction.
const unixEpochOrdinal = 719163

// today returns the current calendar date in the canonical zone,
// normalized to midnight UTC so date arithmetic is exact.
func (app *App) today() time.Time {
	now := app.Now().In(app.Location)
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// todayKey returns the current day key, e.g. "2024-01-01".
func (app *App) todayKey() string {
	return app.today().Format(DayKeyFormat)
}

// dayIndex returns the number of whole days between the start date and
// today. Clients use this to detect day rollover without learning the
// word.
func (app *App) dayIndex() int {
	return int(app.today().Sub(dayIndexStart).Hours() / 24)
}

// civilOrdinal converts a midnight-UTC civil date to days since
// 0001-01-01.
func civilOrdinal(day time.Time) int64 {
	return day.Unix()/86400 + unixEpochOrdinal
}

// dailyWord deterministically maps today's date to one catalog word.
// The generator is seeded with the date ordinal and scoped to this
// call, so the pick is reproducible across restarts and replicas and
// never touches the process-wide random state.
func (app *App) dailyWord() string {
	if app.Catalog.Len() == 0 {
		return NoWordSentinel
	}
	rng := rand.New(rand.NewSource(civilOrdinal(app.today())))
	return app.Catalog.Pick(rng.Intn(app.Catalog.Len()))
}
