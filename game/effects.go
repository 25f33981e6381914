package game

import (
	"github.com/woquz/wordmines/board"
	"github.com/woquz/wordmines/tiles"
)

// pendingEffects are the one-shot effects armed by board rewards. Each
// is scoped to a player index and expires once consumed.
type pendingEffects struct {
	// areaFor[idx] restricts idx's next placement to a column span.
	area [2]*board.AreaSpan
	// frozen[idx] marks letters unusable for idx's next move.
	frozen [2][]tiles.Letter
	// extraMove is the player index who keeps the turn after their
	// next valid placement, or -1.
	extraMove int
}

func newPendingEffects() pendingEffects {
	return pendingEffects{extraMove: -1}
}

func (e *pendingEffects) constraintsFor(idx int, firstMove bool) board.Constraints {
	return board.Constraints{
		FirstMove: firstMove,
		Area:      e.area[idx],
		Frozen:    e.frozen[idx],
	}
}

// consumeFor expires the effects scoped to a player once their move or
// pass resolves.
func (e *pendingEffects) consumeFor(idx int) {
	e.area[idx] = nil
	e.frozen[idx] = nil
}

// resolveMines folds the triggered mines into the final score movement
// of a move: what the mover gains, what the opponent gains, and whether
// the mover's leftover rack is lost to the bag.
func resolveMines(out *board.Outcome) (selfGain, oppGain int, letterLoss bool) {
	triggered := map[board.MineKind]bool{}
	for _, m := range out.Mines {
		triggered[m] = true
	}
	base := out.Score
	if triggered[board.MineBonusBlocked] {
		base = out.RawScore
	}
	if triggered[board.MineWordCancel] {
		base = 0
	}
	if triggered[board.MineScoreSplit] {
		base = base * 30 / 100
	}
	selfGain = base
	if triggered[board.MineScoreTransfer] {
		selfGain, oppGain = 0, base
	}
	return selfGain, oppGain, triggered[board.MineLetterLoss]
}
