package tiles

import (
	"testing"

	"github.com/matryer/is"
)

func TestRackCover(t *testing.T) {
	is := is.New(t)
	rack := RackFromLetters(ToLetters("KELİME"))
	rack.Add([]Letter{Joker})

	jokers, ok := rack.Cover(ToLetters("KELİME"))
	is.True(ok)
	for _, j := range jokers {
		is.True(!j)
	}
	// Rack is unchanged by the check.
	is.Equal(rack.NumTiles(), 7)
}

func TestRackCoverWithJoker(t *testing.T) {
	is := is.New(t)
	rack := RackFromLetters(ToLetters("KELME"))
	rack.Add([]Letter{Joker})

	jokers, ok := rack.Cover(ToLetters("KELİME"))
	is.True(ok)
	// The rack lacks one of the two E tiles and the İ; whichever the
	// joker covered, exactly one position is blanked.
	used := 0
	for _, j := range jokers {
		if j {
			used++
		}
	}
	is.Equal(used, 1)
}

func TestRackCoverFails(t *testing.T) {
	is := is.New(t)
	rack := RackFromLetters(ToLetters("KALEM"))
	_, ok := rack.Cover(ToLetters("KELİME"))
	is.True(!ok)
}

func TestRackTakeAndCounts(t *testing.T) {
	is := is.New(t)
	rack := RackFromLetters(ToLetters("AAB"))
	is.Equal(rack.Count('A'), 2)
	is.True(rack.Take('A'))
	is.True(rack.Take('A'))
	is.True(!rack.Take('A'))
	is.True(rack.Has('B'))
	is.Equal(rack.NumTiles(), 1)
	is.Equal(rack.String(), "B")
}
