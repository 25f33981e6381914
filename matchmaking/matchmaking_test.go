package matchmaking

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/matryer/is"

	"github.com/woquz/wordmines/game"
	"github.com/woquz/wordmines/rules"
)

type fakeCreator struct {
	mu      sync.Mutex
	pairs   [][2]string
	nextErr error
}

func (f *fakeCreator) create(players [2]string, tc game.TimeControl) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.nextErr != nil {
		err := f.nextErr
		f.nextErr = nil
		return "", err
	}
	f.pairs = append(f.pairs, players)
	return fmt.Sprintf("match-%d", len(f.pairs)), nil
}

func TestJoinPairsOldestFirst(t *testing.T) {
	is := is.New(t)
	fc := &fakeCreator{}
	s := NewService(fc.create)

	_, matched, err := s.Join("ayşe", game.TwoMinutes)
	is.NoErr(err)
	is.True(!matched)
	_, matched, err = s.Join("burak", game.FiveMinutes)
	is.NoErr(err)
	is.True(!matched)

	// cem lands in ayşe's bucket, not burak's.
	id, matched, err := s.Join("cem", game.TwoMinutes)
	is.NoErr(err)
	is.True(matched)
	is.Equal(id, "match-1")
	is.Equal(fc.pairs[0], [2]string{"ayşe", "cem"})
	is.Equal(s.Waiting(game.TwoMinutes), 0)
	is.Equal(s.Waiting(game.FiveMinutes), 1)
}

func TestJoinSameBucketTwiceRejected(t *testing.T) {
	is := is.New(t)
	s := NewService((&fakeCreator{}).create)

	_, _, err := s.Join("ayşe", game.TwoMinutes)
	is.NoErr(err)
	_, _, err = s.Join("ayşe", game.TwoMinutes)
	is.True(rules.IsReason(err, rules.AlreadyQueued))
	is.Equal(s.Waiting(game.TwoMinutes), 1)

	_, _, err = s.Join("ayşe", game.TimeControl("3min"))
	is.True(rules.IsReason(err, rules.InvalidInput))
}

func TestJoinRollbackOnCreateFailure(t *testing.T) {
	is := is.New(t)
	fc := &fakeCreator{nextErr: errors.New("storage down")}
	s := NewService(fc.create)

	_, _, err := s.Join("ayşe", game.TwoMinutes)
	is.NoErr(err)
	_, _, err = s.Join("burak", game.TwoMinutes)
	is.True(rules.IsReason(err, rules.Unavailable))
	// ayşe keeps her place at the head of the queue.
	is.Equal(s.Waiting(game.TwoMinutes), 1)

	id, matched, err := s.Join("cem", game.TwoMinutes)
	is.NoErr(err)
	is.True(matched)
	is.Equal(id, "match-1")
	is.Equal(fc.pairs[0], [2]string{"ayşe", "cem"})
}

func TestLeave(t *testing.T) {
	is := is.New(t)
	fc := &fakeCreator{}
	s := NewService(fc.create)

	_, _, err := s.Join("ayşe", game.TwoMinutes)
	is.NoErr(err)
	_, _, err = s.Join("ayşe", game.TwelveHours)
	is.NoErr(err)
	s.Leave("ayşe")
	is.Equal(s.Waiting(game.TwoMinutes), 0)
	is.Equal(s.Waiting(game.TwelveHours), 0)

	// Leaving while not queued is fine.
	s.Leave("ayşe")

	_, matched, err := s.Join("burak", game.TwoMinutes)
	is.NoErr(err)
	is.True(!matched)
}

func TestConcurrentJoins(t *testing.T) {
	is := is.New(t)
	fc := &fakeCreator{}
	s := NewService(fc.create)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, err := s.Join(fmt.Sprintf("p%02d", i), game.FiveMinutes)
			if err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	// Every player is paired exactly once.
	is.Equal(len(fc.pairs), n/2)
	is.Equal(s.Waiting(game.FiveMinutes), 0)
	seen := map[string]bool{}
	for _, pair := range fc.pairs {
		for _, p := range pair {
			is.True(!seen[p])
			seen[p] = true
		}
	}
	is.Equal(len(seen), n)
}
