package game

import (
	"time"

	"github.com/woquz/wordmines/rules"
)

// TimeControl is the per-turn clock policy bucket used for matchmaking.
type TimeControl string

const (
	TwoMinutes      TimeControl = "2min"
	FiveMinutes     TimeControl = "5min"
	TwelveHours     TimeControl = "12hr"
	TwentyFourHours TimeControl = "24hr"
)

// TimeControls lists every valid bucket.
var TimeControls = []TimeControl{TwoMinutes, FiveMinutes, TwelveHours, TwentyFourHours}

// ParseTimeControl validates a raw time-control value.
func ParseTimeControl(s string) (TimeControl, error) {
	tc := TimeControl(s)
	if !tc.Valid() {
		return "", rules.Reject(rules.InvalidInput, "unknown time control %q", s)
	}
	return tc, nil
}

func (tc TimeControl) Valid() bool {
	switch tc {
	case TwoMinutes, FiveMinutes, TwelveHours, TwentyFourHours:
		return true
	}
	return false
}

// PerTurn returns the per-turn clock duration.
func (tc TimeControl) PerTurn() time.Duration {
	switch tc {
	case TwoMinutes:
		return 2 * time.Minute
	case FiveMinutes:
		return 5 * time.Minute
	case TwelveHours:
		return 12 * time.Hour
	case TwentyFourHours:
		return 24 * time.Hour
	}
	return 0
}

// ShortClock reports whether the bucket is a live clock. Running out a
// short clock is a timeout; running out a long clock counts as
// inactivity.
func (tc TimeControl) ShortClock() bool {
	return tc == TwoMinutes || tc == FiveMinutes
}
