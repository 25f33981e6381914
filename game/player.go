package game

import (
	"github.com/woquz/wordmines/board"
	"github.com/woquz/wordmines/tiles"
)

// playerState is one participant's mutable state. Participants live in
// a two-element array indexed by role; nothing in the engine branches
// on "player one" versus "player two".
type playerState struct {
	id      string
	rack    *tiles.Rack
	score   int
	rewards []board.RewardKind
}

func (p *playerState) holdReward(kind board.RewardKind) {
	p.rewards = append(p.rewards, kind)
}

// spendReward removes one token of the kind from the inventory. It
// returns false if none is held.
func (p *playerState) spendReward(kind board.RewardKind) bool {
	for i, r := range p.rewards {
		if r == kind {
			p.rewards = append(p.rewards[:i], p.rewards[i+1:]...)
			return true
		}
	}
	return false
}

// rackValue is the summed point value of the tiles left on the rack.
func (p *playerState) rackValue(ld *tiles.LetterDistribution) int {
	val := 0
	for _, l := range p.rack.TilesOn() {
		val += ld.Score(l)
	}
	return val
}
