// Package stats tracks per-player win/loss/draw counters. Deltas are
// commutative: a finished match applies exactly one delta per player,
// in any order.
package stats

// Result is a single player's outcome of a finished match.
type Result uint8

const (
	Won Result = iota
	Lost
	Drawn
)

func (r Result) String() string {
	switch r {
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "drawn"
}

// Record is a player's aggregate counters. Counters only ever grow.
type Record struct {
	Played int `json:"played"`
	Won    int `json:"won"`
	Lost   int `json:"lost"`
	Drawn  int `json:"drawn"`
}

// WinPercentage returns the rounded percentage of played matches won.
func (r Record) WinPercentage() int {
	if r.Played == 0 {
		return 0
	}
	return (r.Won*100 + r.Played/2) / r.Played
}

// Store persists player statistics.
type Store interface {
	// Apply increments played plus exactly one of won/lost/drawn.
	Apply(playerID string, result Result) error
	Get(playerID string) (Record, error)
}
