// Package matchmaking pairs waiting players into matches, bucketed by
// time control. Pairing is strictly oldest-first within a bucket.
package matchmaking

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/woquz/wordmines/game"
	"github.com/woquz/wordmines/rules"
)

// CreateMatchFunc starts a match for a freshly paired couple and
// returns its id. The first element of players moves first or second
// at the match's discretion; matchmaking only guarantees the pairing.
type CreateMatchFunc func(players [2]string, tc game.TimeControl) (string, error)

type entry struct {
	playerID string
	enqueued time.Time
}

// Service is the matchmaking queue set. All methods are safe for
// concurrent use.
type Service struct {
	mu          sync.Mutex
	queues      map[game.TimeControl][]entry
	createMatch CreateMatchFunc
}

// NewService returns a service that calls createMatch whenever two
// players land in the same bucket.
func NewService(createMatch CreateMatchFunc) *Service {
	queues := make(map[game.TimeControl][]entry, len(game.TimeControls))
	for _, tc := range game.TimeControls {
		queues[tc] = nil
	}
	return &Service{queues: queues, createMatch: createMatch}
}

// Join enqueues a player for the given time control. If an opponent is
// already waiting the two are paired immediately and the new match id
// is returned with matched true; otherwise the player waits in the
// queue. A player cannot sit in the same bucket twice.
func (s *Service) Join(playerID string, tc game.TimeControl) (matchID string, matched bool, err error) {
	if !tc.Valid() {
		return "", false, rules.Reject(rules.InvalidInput,
			"unknown time control %q", tc)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.queues[tc] {
		if e.playerID == playerID {
			return "", false, rules.Reject(rules.AlreadyQueued,
				"player %s is already waiting in the %s queue", playerID, tc)
		}
	}

	if len(s.queues[tc]) == 0 {
		s.queues[tc] = append(s.queues[tc], entry{playerID, time.Now()})
		log.Debug().Str("player", playerID).Str("bucket", string(tc)).
			Msg("queued for matchmaking")
		return "", false, nil
	}

	// Pop the longest waiter and pair. Removal happens before the
	// match is created so a concurrent Join cannot pair the same
	// opponent twice; on failure the opponent is put back at the
	// front of the queue.
	opp := s.queues[tc][0]
	s.queues[tc] = s.queues[tc][1:]

	matchID, err = s.createMatch([2]string{opp.playerID, playerID}, tc)
	if err != nil {
		s.queues[tc] = append([]entry{opp}, s.queues[tc]...)
		return "", false, rules.Reject(rules.Unavailable,
			"could not start a match: %v", err)
	}
	log.Info().Str("match", matchID).Str("bucket", string(tc)).
		Strs("players", []string{opp.playerID, playerID}).
		Msg("paired players")
	return matchID, true, nil
}

// Leave removes the player from every bucket they are waiting in.
// Leaving while not queued is a no-op.
func (s *Service) Leave(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for tc, q := range s.queues {
		for i, e := range q {
			if e.playerID == playerID {
				s.queues[tc] = append(q[:i], q[i+1:]...)
				break
			}
		}
	}
}

// Waiting returns the number of players queued in a bucket.
func (s *Service) Waiting(tc game.TimeControl) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queues[tc])
}
