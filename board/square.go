package board

import "github.com/woquz/wordmines/tiles"

// Premium is the printed multiplier type of a board cell.
type Premium uint8

const (
	Normal Premium = iota
	Center
	DoubleLetter
	TripleLetter
	DoubleWord
	TripleWord
)

// LetterMultiplier returns the letter score multiplier of the premium.
func (p Premium) LetterMultiplier() int {
	switch p {
	case DoubleLetter:
		return 2
	case TripleLetter:
		return 3
	}
	return 1
}

// WordMultiplier returns the word score multiplier of the premium. The
// center square only marks the mandatory first-move cell; it carries no
// bonus.
func (p Premium) WordMultiplier() int {
	switch p {
	case DoubleWord:
		return 2
	case TripleWord:
		return 3
	}
	return 1
}

// MineKind is a hidden board modifier that fires when a tile is first
// placed on its cell, replacing normal scoring for the move.
type MineKind string

const (
	MineScoreSplit    MineKind = "score_split"
	MineScoreTransfer MineKind = "score_transfer"
	MineLetterLoss    MineKind = "letter_loss"
	MineBonusBlocked  MineKind = "bonus_blocked"
	MineWordCancel    MineKind = "word_cancel"
)

// RewardKind is a hidden board modifier granted to the player who first
// places a tile on its cell.
type RewardKind string

const (
	// One-shot effects armed immediately on collection.
	RewardAreaRestriction RewardKind = "area_restriction"
	RewardLetterFreeze    RewardKind = "letter_freeze"
	RewardExtraMove       RewardKind = "extra_move"
	// Rack rewards held in the player's inventory until used.
	RewardChangeLetters RewardKind = "change_letters"
	RewardExtraLetter   RewardKind = "extra_letter"
	RewardAddJoker      RewardKind = "add_joker"
)

// Rackable reports whether the reward goes to the player's inventory
// rather than arming a pending effect.
func (r RewardKind) Rackable() bool {
	switch r {
	case RewardChangeLetters, RewardExtraLetter, RewardAddJoker:
		return true
	}
	return false
}

// A Square is a single cell of the game board.
type Square struct {
	premium Premium
	mine    MineKind
	reward  RewardKind
	letter  tiles.Letter
	joker   bool
}

// IsEmpty reports whether no tile has been placed on the square.
func (s *Square) IsEmpty() bool {
	return s.letter == 0
}

// Letter returns the placed letter, or zero if empty.
func (s *Square) Letter() tiles.Letter {
	return s.letter
}

// Joker reports whether the placed tile was a joker.
func (s *Square) Joker() bool {
	return s.joker
}

// Premium returns the printed multiplier type.
func (s *Square) Premium() Premium {
	return s.premium
}

// Mine returns the hidden mine kind, or empty.
func (s *Square) Mine() MineKind {
	return s.mine
}

// Reward returns the hidden reward kind, or empty.
func (s *Square) Reward() RewardKind {
	return s.reward
}
