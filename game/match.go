package game

import "time"

// Status is the lifecycle state of a match. Completed and Abandoned are
// terminal; a match is never mutated again once it leaves Active.
type Status string

const (
	Active    Status = "active"
	Completed Status = "completed"
	Abandoned Status = "abandoned"
)

// EndReason records why a match ended.
type EndReason string

const (
	EndNormal           EndReason = "normal"
	EndResignation      EndReason = "resignation"
	EndTimeout          EndReason = "timeout"
	EndFirstMoveTimeout EndReason = "first_move_timeout"
	EndInactivity       EndReason = "inactivity"
)

// Match is the durable record of a game between two players.
type Match struct {
	ID          string      `json:"id"`
	Players     [2]string   `json:"players"`
	TimeControl TimeControl `json:"time_control"`
	Status      Status      `json:"status"`
	// Winner is the winning player id, or empty on a draw or while
	// the match is active.
	Winner    string    `json:"winner,omitempty"`
	EndReason EndReason `json:"end_reason,omitempty"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time,omitzero"`
}

// otherPlayer returns the other participant's index.
func otherPlayer(idx int) int {
	return (idx + 1) % 2
}
