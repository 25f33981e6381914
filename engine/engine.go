// Package engine is the concurrent front door of the server: it owns
// every live match, the matchmaking queues and the statistics store,
// and serializes all mutations per match.
package engine

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/woquz/wordmines/board"
	"github.com/woquz/wordmines/game"
	"github.com/woquz/wordmines/lexicon"
	"github.com/woquz/wordmines/matchmaking"
	"github.com/woquz/wordmines/move"
	"github.com/woquz/wordmines/rules"
	"github.com/woquz/wordmines/stats"
	"github.com/woquz/wordmines/tiles"
)

// matchHandle pairs a game with its own lock. Taking the handle lock
// outside the table lock keeps slow moves in one match from blocking
// every other match.
type matchHandle struct {
	mu   sync.Mutex
	game *game.Game
}

// Engine hosts matches and routes player actions to them.
type Engine struct {
	mu      sync.RWMutex
	matches map[string]*matchHandle

	lex      lexicon.Lexicon
	store    stats.Store
	notifier Notifier
	queue    *matchmaking.Service
}

// New builds an engine. A nil notifier falls back to log-only
// notifications.
func New(lex lexicon.Lexicon, store stats.Store, notifier Notifier) *Engine {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	e := &Engine{
		matches:  make(map[string]*matchHandle),
		lex:      lex,
		store:    store,
		notifier: notifier,
	}
	e.queue = matchmaking.NewService(e.createMatch)
	return e
}

func (e *Engine) createMatch(players [2]string, tc game.TimeControl) (string, error) {
	id := uuid.NewString()
	g := game.NewGame(id, players, tc, e.lex, tiles.DefaultRand())
	e.mu.Lock()
	e.matches[id] = &matchHandle{game: g}
	e.mu.Unlock()
	e.notifier.MatchStarted(g.Match())
	return id, nil
}

// JoinMatchmaking queues a player. When a match starts, its id comes
// back with matched true.
func (e *Engine) JoinMatchmaking(playerID, timeControl string) (string, bool, error) {
	tc, err := game.ParseTimeControl(timeControl)
	if err != nil {
		return "", false, err
	}
	return e.queue.Join(playerID, tc)
}

// LeaveMatchmaking removes a player from every queue.
func (e *Engine) LeaveMatchmaking(playerID string) {
	e.queue.Leave(playerID)
}

func (e *Engine) handle(matchID string) (*matchHandle, error) {
	e.mu.RLock()
	h, ok := e.matches[matchID]
	e.mu.RUnlock()
	if !ok {
		return nil, rules.Reject(rules.MatchNotFound, "no match %s", matchID)
	}
	return h, nil
}

// withMatch runs fn under the match lock and handles the terminal
// bookkeeping if fn ended the match. Statistics are applied inside the
// critical section so a concurrent sweep cannot double-count them;
// notifications go out after unlock.
func (e *Engine) withMatch(matchID string, fn func(g *game.Game) error) error {
	h, err := e.handle(matchID)
	if err != nil {
		return err
	}
	h.mu.Lock()
	wasActive := h.game.Match().Status == game.Active
	err = fn(h.game)
	if err != nil {
		log.Debug().Str("match", matchID).
			Str("reason", string(rules.ReasonOf(err))).
			Msg("action rejected")
	}
	ended := wasActive && h.game.Match().Status != game.Active
	if ended {
		e.applyDeltas(h.game)
	}
	var views []*game.StateView
	if err == nil {
		views = e.snapshotViews(h.game)
	}
	h.mu.Unlock()
	e.broadcast(views)
	if ended {
		e.notifier.MatchEnded(h.game.Match())
	}
	return err
}

// snapshotViews builds both participants' redacted views. Call it with
// the match lock held.
func (e *Engine) snapshotViews(g *game.Game) []*game.StateView {
	views := make([]*game.StateView, 0, 2)
	for _, p := range g.Match().Players {
		v, err := g.ViewFor(p)
		if err != nil {
			continue
		}
		views = append(views, v)
	}
	return views
}

func (e *Engine) broadcast(views []*game.StateView) {
	for _, v := range views {
		e.notifier.StateChanged(v)
	}
}

func (e *Engine) applyDeltas(g *game.Game) {
	for _, d := range g.StatDeltas() {
		if err := e.store.Apply(d.PlayerID, d.Result); err != nil {
			log.Error().Err(err).Str("player", d.PlayerID).
				Str("match", g.Match().ID).Msg("could not record statistics")
		}
	}
}

// SubmitMove validates and plays a word placement.
func (e *Engine) SubmitMove(matchID, playerID, word string, row, col int, direction string) (*game.MoveResult, error) {
	dir, err := move.ParseDirection(direction)
	if err != nil {
		return nil, err
	}
	m, err := move.New(word, row, col, dir)
	if err != nil {
		return nil, err
	}
	var res *game.MoveResult
	err = e.withMatch(matchID, func(g *game.Game) error {
		var ferr error
		res, ferr = g.PlayMove(playerID, m)
		return ferr
	})
	return res, err
}

// Pass gives up the player's turn.
func (e *Engine) Pass(matchID, playerID string) (*game.MoveResult, error) {
	var res *game.MoveResult
	err := e.withMatch(matchID, func(g *game.Game) error {
		var ferr error
		res, ferr = g.Pass(playerID)
		return ferr
	})
	return res, err
}

// Resign forfeits the match to the opponent.
func (e *Engine) Resign(matchID, playerID string) error {
	return e.withMatch(matchID, func(g *game.Game) error {
		return g.Resign(playerID)
	})
}

// UseReward spends a held rack reward and returns the updated rack.
func (e *Engine) UseReward(matchID, playerID, kind string) ([]tiles.Letter, error) {
	var rack []tiles.Letter
	err := e.withMatch(matchID, func(g *game.Game) error {
		var ferr error
		rack, ferr = g.UseReward(playerID, board.RewardKind(kind))
		return ferr
	})
	return rack, err
}

// StateFor returns a player's redacted view of a match.
func (e *Engine) StateFor(matchID, playerID string) (*game.StateView, error) {
	h, err := e.handle(matchID)
	if err != nil {
		return nil, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.game.ViewFor(playerID)
}

// MatchSummary is one row of a player's match list, with the outcome
// seen from that player's side.
type MatchSummary struct {
	MatchID     string           `json:"match_id"`
	Status      game.Status      `json:"status"`
	TimeControl game.TimeControl `json:"time_control"`
	Opponent    string           `json:"opponent"`
	YourTurn    bool             `json:"your_turn"`
	// Result is won, lost or drawn once the match is over.
	Result    string    `json:"result,omitempty"`
	StartTime time.Time `json:"start_time"`
}

// ListMatchesFor returns every match the player is in, active first,
// newest first within each group.
func (e *Engine) ListMatchesFor(playerID string) []MatchSummary {
	e.mu.RLock()
	var items []MatchSummary
	for id, h := range e.matches {
		h.mu.Lock()
		if idx := h.game.PlayerIndex(playerID); idx >= 0 {
			m := h.game.Match()
			s := MatchSummary{
				MatchID:     id,
				Status:      m.Status,
				TimeControl: m.TimeControl,
				Opponent:    m.Players[(idx+1)%2],
				YourTurn:    m.Status == game.Active && h.game.PlayerOnTurn() == playerID,
				StartTime:   m.StartTime,
			}
			if m.Status != game.Active {
				switch m.Winner {
				case playerID:
					s.Result = stats.Won.String()
				case "":
					s.Result = stats.Drawn.String()
				default:
					s.Result = stats.Lost.String()
				}
			}
			items = append(items, s)
		}
		h.mu.Unlock()
	}
	e.mu.RUnlock()
	sort.Slice(items, func(i, j int) bool {
		ia, ja := items[i].Status == game.Active, items[j].Status == game.Active
		if ia != ja {
			return ia
		}
		return items[i].StartTime.After(items[j].StartTime)
	})
	return items
}

// StatsFor returns a player's lifetime record.
func (e *Engine) StatsFor(playerID string) (stats.Record, error) {
	return e.store.Get(playerID)
}

// SweepExpired forfeits every match whose turn clock has run out and
// returns how many ended.
func (e *Engine) SweepExpired(now time.Time) int {
	e.mu.RLock()
	handles := make([]*matchHandle, 0, len(e.matches))
	for _, h := range e.matches {
		handles = append(handles, h)
	}
	e.mu.RUnlock()

	expired := 0
	for _, h := range handles {
		h.mu.Lock()
		ended := h.game.SweepExpired(now)
		var views []*game.StateView
		if ended {
			e.applyDeltas(h.game)
			views = e.snapshotViews(h.game)
		}
		h.mu.Unlock()
		if ended {
			e.broadcast(views)
			e.notifier.MatchEnded(h.game.Match())
			expired++
		}
	}
	return expired
}
