package game

import (
	"time"

	"github.com/samber/lo"

	"github.com/woquz/wordmines/board"
	"github.com/woquz/wordmines/rules"
	"github.com/woquz/wordmines/tiles"
)

// PlacedTileView is one visible tile on the board.
type PlacedTileView struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
	Joker  bool   `json:"joker,omitempty"`
}

// OpponentView is what a player is allowed to know about the other
// side: the rack size but never its contents.
type OpponentView struct {
	ID       string `json:"id"`
	Score    int    `json:"score"`
	RackSize int    `json:"rack_size"`
}

// StateView is one player's redacted snapshot of a match. Unexploded
// mines, uncollected rewards and the opponent's letters never leave
// the server.
type StateView struct {
	MatchID string `json:"match_id"`
	// PlayerID is the participant this view was built for.
	PlayerID     string           `json:"player_id"`
	Status       Status           `json:"status"`
	TimeControl  TimeControl      `json:"time_control"`
	Board        []PlacedTileView `json:"board"`
	Rack         []string         `json:"rack"`
	Score        int              `json:"score"`
	Rewards      []string         `json:"rewards,omitempty"`
	Opponent     OpponentView     `json:"opponent"`
	BagCount     int              `json:"bag_count"`
	YourTurn     bool             `json:"your_turn"`
	OnTurn       string           `json:"on_turn"`
	TurnDeadline time.Time        `json:"turn_deadline"`
	Winner       string           `json:"winner,omitempty"`
	EndReason    EndReason        `json:"end_reason,omitempty"`
}

// ViewFor builds the snapshot seen by one participant.
func (g *Game) ViewFor(playerID string) (*StateView, error) {
	idx := g.PlayerIndex(playerID)
	if idx < 0 {
		return nil, rules.Reject(rules.MatchNotFound,
			"player %s is not in match %s", playerID, g.match.ID)
	}
	opp := g.players[otherPlayer(idx)]

	var placed []PlacedTileView
	for row := 0; row < board.Dim; row++ {
		for col := 0; col < board.Dim; col++ {
			sq := g.board.GetSquare(row, col)
			if sq.IsEmpty() {
				continue
			}
			placed = append(placed, PlacedTileView{
				Row:    row,
				Col:    col,
				Letter: string(sq.Letter()),
				Joker:  sq.Joker(),
			})
		}
	}
	return &StateView{
		MatchID:     g.match.ID,
		PlayerID:    playerID,
		Status:      g.match.Status,
		TimeControl: g.match.TimeControl,
		Board:       placed,
		Rack: lo.Map(g.players[idx].rack.TilesOn(),
			func(l tiles.Letter, _ int) string { return string(l) }),
		Score: g.players[idx].score,
		Rewards: lo.Map(g.players[idx].rewards,
			func(r board.RewardKind, _ int) string { return string(r) }),
		Opponent: OpponentView{
			ID:       opp.id,
			Score:    opp.score,
			RackSize: opp.rack.NumTiles(),
		},
		BagCount:     g.bag.TilesRemaining(),
		YourTurn:     g.match.Status == Active && idx == g.onturn,
		OnTurn:       g.players[g.onturn].id,
		TurnDeadline: g.turnStart.Add(g.match.TimeControl.PerTurn()),
		Winner:       g.match.Winner,
		EndReason:    g.match.EndReason,
	}, nil
}
