// Package game encapsulates the per-match turn state machine: applying
// placements, passes, resignations, rewards, clock expiry and the end
// of game accounting.
package game

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/woquz/wordmines/board"
	"github.com/woquz/wordmines/lexicon"
	"github.com/woquz/wordmines/move"
	"github.com/woquz/wordmines/rules"
	"github.com/woquz/wordmines/stats"
	"github.com/woquz/wordmines/tiles"
)

// Game controls the entire business logic of one match. It is not safe
// for concurrent use; the engine serializes access per match.
type Game struct {
	match *Match
	board *board.Board
	bag   *tiles.Bag
	lex   lexicon.Lexicon
	rng   tiles.Rand

	players   [2]*playerState
	onturn    int
	turnStart time.Time
	passes    int
	moveCount int
	effects   pendingEffects

	deltas []StatDelta
}

// StatDelta is one player's statistics movement from a finished match.
type StatDelta struct {
	PlayerID string
	Result   stats.Result
}

// MoveResult is returned from a successful placement or pass.
type MoveResult struct {
	Score            int                `json:"score"`
	Rack             []tiles.Letter     `json:"rack"`
	Words            []board.FormedWord `json:"words,omitempty"`
	TriggeredMines   []board.MineKind   `json:"mines,omitempty"`
	CollectedRewards []board.RewardKind `json:"rewards,omitempty"`
	MatchEnded       bool               `json:"match_ended"`
}

// NewGame deals out a brand new match: shuffled bag, seeded board
// modifiers, seven tiles per rack and a uniformly random first mover.
func NewGame(id string, players [2]string, tc TimeControl, lex lexicon.Lexicon, rng tiles.Rand) *Game {
	now := time.Now()
	g := &Game{
		match: &Match{
			ID:          id,
			Players:     players,
			TimeControl: tc,
			Status:      Active,
			StartTime:   now,
		},
		board:     board.NewStandard(),
		bag:       tiles.NewBag(tiles.TurkishLetterDistribution(), rng),
		lex:       lex,
		rng:       rng,
		onturn:    rng.Intn(2),
		turnStart: now,
		effects:   newPendingEffects(),
	}
	g.board.SeedModifiers(rng)
	for i := range g.players {
		g.players[i] = &playerState{id: players[i], rack: tiles.NewRack()}
		g.bag.Refill(g.players[i].rack)
	}
	log.Debug().Str("match", id).Str("first", players[g.onturn]).
		Msg("dealt new game")
	return g
}

// Match returns the match record.
func (g *Game) Match() *Match {
	return g.match
}

// PlayerIndex returns the participant index of a player id, or -1.
func (g *Game) PlayerIndex(playerID string) int {
	for i := range g.players {
		if g.players[i].id == playerID {
			return i
		}
	}
	return -1
}

// PlayerOnTurn returns the id of the player whose turn it is.
func (g *Game) PlayerOnTurn() string {
	return g.players[g.onturn].id
}

// PointsFor returns a player's current score.
func (g *Game) PointsFor(idx int) int {
	return g.players[idx].score
}

// StatDeltas returns the statistics movements of a finished match. It
// is empty while the match is active.
func (g *Game) StatDeltas() []StatDelta {
	return g.deltas
}

func (g *Game) checkActor(playerID string, wantTurn bool) (int, error) {
	idx := g.PlayerIndex(playerID)
	if idx < 0 {
		return -1, rules.Reject(rules.MatchNotFound,
			"player %s is not in match %s", playerID, g.match.ID)
	}
	if g.match.Status != Active {
		return -1, rules.Reject(rules.MatchNotActive,
			"match %s is %s", g.match.ID, g.match.Status)
	}
	if wantTurn && idx != g.onturn {
		return -1, rules.Reject(rules.NotYourTurn, "it is %s's turn",
			g.players[g.onturn].id)
	}
	return idx, nil
}

// PlayMove validates and applies a placement for the player. On any
// rejection the board, racks and turn are left untouched.
func (g *Game) PlayMove(playerID string, m *move.Move) (*MoveResult, error) {
	idx, err := g.checkActor(playerID, true)
	if err != nil {
		return nil, err
	}
	cons := g.effects.constraintsFor(idx, g.board.IsEmpty())
	out, err := g.board.Validate(m, g.players[idx].rack, g.lex, cons)
	if err != nil {
		return nil, err
	}

	// The move is legal; everything below is the single logical
	// transaction that mutates match state.
	selfGain, oppGain, letterLoss := resolveMines(out)
	opp := otherPlayer(idx)

	g.board.Apply(out)
	for _, pt := range out.Placed {
		l := pt.Letter
		if pt.Joker {
			l = tiles.Joker
		}
		g.players[idx].rack.Take(l)
	}
	g.players[idx].score += selfGain
	g.players[opp].score += oppGain

	if letterLoss {
		g.bag.PutBack(g.players[idx].rack.Clear())
	}
	for _, r := range out.Rewards {
		if r.Rackable() {
			g.players[idx].holdReward(r)
		} else {
			g.armReward(idx, r)
		}
	}
	g.effects.consumeFor(idx)
	g.bag.Refill(g.players[idx].rack)
	g.passes = 0
	g.moveCount++

	log.Debug().Str("match", g.match.ID).Str("player", playerID).
		Int("score", selfGain).Strs("mines", mineNames(out.Mines)).
		Msg("applied placement")
	log.Debug().Msgf("board after placement:\n%v", g.board.ToDisplayText())

	res := &MoveResult{
		Score:            selfGain,
		Rack:             g.players[idx].rack.TilesOn(),
		Words:            out.Words,
		TriggeredMines:   out.Mines,
		CollectedRewards: out.Rewards,
	}

	if g.bag.TilesRemaining() == 0 &&
		(g.players[0].rack.NumTiles() == 0 || g.players[1].rack.NumTiles() == 0) {
		g.finalize(EndNormal)
		res.MatchEnded = true
		return res, nil
	}

	if g.effects.extraMove == idx {
		g.effects.extraMove = -1
	} else {
		g.onturn = opp
	}
	g.turnStart = time.Now()
	return res, nil
}

// Pass gives up the turn. The fourth consecutive pass ends the match.
func (g *Game) Pass(playerID string) (*MoveResult, error) {
	idx, err := g.checkActor(playerID, true)
	if err != nil {
		return nil, err
	}
	g.effects.consumeFor(idx)
	g.passes++
	res := &MoveResult{Rack: g.players[idx].rack.TilesOn()}
	if g.passes >= 4 {
		g.finalize(EndNormal)
		res.MatchEnded = true
		return res, nil
	}
	g.onturn = otherPlayer(idx)
	g.turnStart = time.Now()
	return res, nil
}

// Resign ends the match immediately; the opponent wins. A participant
// may resign whether or not it is their turn.
func (g *Game) Resign(playerID string) error {
	idx, err := g.checkActor(playerID, false)
	if err != nil {
		return err
	}
	g.finalizeForced(otherPlayer(idx), EndResignation, Completed)
	return nil
}

// UseReward spends a held rack reward. It is an isolated rack/bag
// mutation: it does not end the turn or touch the clock.
func (g *Game) UseReward(playerID string, kind board.RewardKind) ([]tiles.Letter, error) {
	idx, err := g.checkActor(playerID, true)
	if err != nil {
		if rules.IsReason(err, rules.NotYourTurn) {
			return nil, rules.Reject(rules.InvalidRewardOrNotTurn,
				"it is not your turn")
		}
		return nil, err
	}
	p := g.players[idx]
	if !kind.Rackable() {
		return nil, rules.Reject(rules.InvalidRewardOrNotTurn,
			"%s is not a usable reward", kind)
	}
	// Check preconditions before consuming the token, so rejections
	// leave the inventory intact.
	switch kind {
	case board.RewardChangeLetters:
		if g.bag.TilesRemaining() < p.rack.NumTiles() {
			return nil, rules.Reject(rules.InvalidRewardOrNotTurn,
				"not enough tiles left in the bag to change letters")
		}
	case board.RewardExtraLetter:
		if p.rack.NumTiles() >= tiles.RackTileLimit {
			return nil, rules.Reject(rules.InvalidRewardOrNotTurn,
				"rack is already full")
		}
		if g.bag.TilesRemaining() == 0 {
			return nil, rules.Reject(rules.InvalidRewardOrNotTurn,
				"the bag is empty")
		}
	case board.RewardAddJoker:
		if p.rack.NumTiles() == 0 {
			return nil, rules.Reject(rules.InvalidRewardOrNotTurn,
				"rack is empty")
		}
	}
	if kind == board.RewardAddJoker && !g.bag.TakeLetter(tiles.Joker) {
		return nil, rules.Reject(rules.InvalidRewardOrNotTurn,
			"no joker left in the bag")
	}
	if !p.spendReward(kind) {
		if kind == board.RewardAddJoker {
			g.bag.PutBack([]tiles.Letter{tiles.Joker})
		}
		return nil, rules.Reject(rules.InvalidRewardOrNotTurn,
			"you do not hold a %s reward", kind)
	}

	switch kind {
	case board.RewardChangeLetters:
		p.rack.Add(g.bag.Exchange(p.rack.Clear()))
	case board.RewardExtraLetter:
		p.rack.Add(g.bag.DrawAtMost(1))
	case board.RewardAddJoker:
		on := p.rack.TilesOn()
		victim := on[g.rng.Intn(len(on))]
		p.rack.Take(victim)
		g.bag.PutBack([]tiles.Letter{victim})
		p.rack.Add([]tiles.Letter{tiles.Joker})
	}
	log.Debug().Str("match", g.match.ID).Str("player", playerID).
		Str("reward", string(kind)).Msg("applied reward")
	return p.rack.TilesOn(), nil
}

// SweepExpired forfeits the match if the current turn clock has run
// out. It is driven by the external scheduler tick and returns whether
// the match ended.
func (g *Game) SweepExpired(now time.Time) bool {
	if g.match.Status != Active {
		return false
	}
	if now.Before(g.turnStart.Add(g.match.TimeControl.PerTurn())) {
		return false
	}
	winner := otherPlayer(g.onturn)
	switch {
	case g.moveCount == 0 && g.passes == 0:
		// Nobody ever did anything; the match never really began.
		g.finalizeForced(winner, EndFirstMoveTimeout, Abandoned)
	case g.match.TimeControl.ShortClock():
		g.finalizeForced(winner, EndTimeout, Completed)
	default:
		g.finalizeForced(winner, EndInactivity, Completed)
	}
	return true
}

// armReward installs a board reward's one-shot effect. Restriction and
// freeze are aimed at the opponent; the extra move favors the placer.
func (g *Game) armReward(idx int, kind board.RewardKind) {
	opp := otherPlayer(idx)
	switch kind {
	case board.RewardAreaRestriction:
		span := &board.AreaSpan{MinCol: 0, MaxCol: board.Dim/2 - 1}
		if g.rng.Intn(2) == 1 {
			span = &board.AreaSpan{MinCol: board.Dim/2 + 1, MaxCol: board.Dim - 1}
		}
		g.effects.area[opp] = span
	case board.RewardLetterFreeze:
		on := g.players[opp].rack.TilesOn()
		n := 2
		if len(on) < n {
			n = len(on)
		}
		frozen := make([]tiles.Letter, 0, n)
		for i := 0; i < n; i++ {
			j := g.rng.Intn(len(on)-i) + i
			on[i], on[j] = on[j], on[i]
			frozen = append(frozen, on[i])
		}
		g.effects.frozen[opp] = frozen
	case board.RewardExtraMove:
		g.effects.extraMove = idx
	}
}

// finalize ends a match that ran its natural course: each player's
// leftover tile values come off their own score, then the higher score
// wins and a tie is a draw.
func (g *Game) finalize(reason EndReason) {
	ld := g.bag.LetterDistribution()
	for _, p := range g.players {
		p.score -= p.rackValue(ld)
	}
	winner := -1
	if g.players[0].score > g.players[1].score {
		winner = 0
	} else if g.players[1].score > g.players[0].score {
		winner = 1
	}
	g.finalizeForced(winner, reason, Completed)
}

// finalizeForced writes the terminal state. winner -1 means a draw.
// The statistics deltas are recorded here so the caller can apply them
// atomically with the terminal transition.
func (g *Game) finalizeForced(winner int, reason EndReason, status Status) {
	g.match.Status = status
	g.match.EndReason = reason
	g.match.EndTime = time.Now()
	if winner >= 0 {
		g.match.Winner = g.players[winner].id
		g.deltas = []StatDelta{
			{PlayerID: g.players[winner].id, Result: stats.Won},
			{PlayerID: g.players[otherPlayer(winner)].id, Result: stats.Lost},
		}
	} else {
		g.deltas = []StatDelta{
			{PlayerID: g.players[0].id, Result: stats.Drawn},
			{PlayerID: g.players[1].id, Result: stats.Drawn},
		}
	}
	log.Info().Str("match", g.match.ID).Str("reason", string(reason)).
		Str("winner", g.match.Winner).Msg("match finished")
}

func mineNames(ms []board.MineKind) []string {
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = string(m)
	}
	return names
}
