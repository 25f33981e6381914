// Package rules defines the rejection taxonomy shared by the engine
// components. Every rejection is recoverable: it reports why an action
// was refused and leaves all state untouched.
package rules

import (
	"errors"
	"fmt"
)

// Reason is a machine-readable rejection code.
type Reason string

const (
	InvalidInput           Reason = "invalid_input"
	NotYourTurn            Reason = "not_your_turn"
	OutOfBounds            Reason = "out_of_bounds"
	CellConflict           Reason = "cell_conflict"
	RackMismatch           Reason = "rack_mismatch"
	DisconnectedPlacement  Reason = "disconnected_placement"
	WordNotInDictionary    Reason = "word_not_in_dictionary"
	RestrictedArea         Reason = "restricted_area"
	FrozenLetter           Reason = "frozen_letter"
	MatchNotFound          Reason = "match_not_found"
	MatchNotActive         Reason = "match_not_active"
	AlreadyQueued          Reason = "already_queued"
	InvalidRewardOrNotTurn Reason = "invalid_reward_or_not_turn"
	Unavailable            Reason = "unavailable"
)

// Rejection is the error type carried by every refused action.
type Rejection struct {
	Reason Reason
	Msg    string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Reason, r.Msg)
}

// Reject builds a Rejection with a formatted message.
func Reject(reason Reason, format string, args ...any) error {
	return &Rejection{Reason: reason, Msg: fmt.Sprintf(format, args...)}
}

// ReasonOf extracts the rejection reason from an error, or Unavailable
// if the error is not a Rejection.
func ReasonOf(err error) Reason {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej.Reason
	}
	return Unavailable
}

// IsReason reports whether the error is a Rejection with the given
// reason.
func IsReason(err error, reason Reason) bool {
	var rej *Rejection
	return errors.As(err, &rej) && rej.Reason == reason
}
