package tiles

import (
	"lukechampine.com/frand"
)

// Rand is the randomness source injected into the bag and the rest of
// the engine, so that games are deterministically replayable in tests.
type Rand interface {
	Intn(n int) int
}

// DefaultRand returns the production randomness source.
func DefaultRand() Rand {
	return frand.New()
}

// A Bag is the shared pool of undrawn tiles.
type Bag struct {
	tiles []Letter
	ld    *LetterDistribution
	rng   Rand
}

// NewBag builds a full bag from the letter distribution and shuffles it.
func NewBag(ld *LetterDistribution, rng Rand) *Bag {
	tiles := make([]Letter, 0, ld.NumLetters())
	for l, ct := range ld.Distribution {
		for i := uint8(0); i < ct; i++ {
			tiles = append(tiles, l)
		}
	}
	b := &Bag{tiles: tiles, ld: ld, rng: rng}
	b.Shuffle()
	return b
}

// Shuffle uniformly permutes the bag (Fisher-Yates).
func (b *Bag) Shuffle() {
	for i := len(b.tiles) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	}
}

// DrawAtMost draws up to n tiles, chosen uniformly at random without
// replacement. It never errors on an empty bag; it just returns fewer
// tiles, possibly none.
func (b *Bag) DrawAtMost(n int) []Letter {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	drawn := make([]Letter, n)
	for i := 0; i < n; i++ {
		idx := b.rng.Intn(len(b.tiles))
		drawn[i] = b.tiles[idx]
		b.tiles[idx] = b.tiles[len(b.tiles)-1]
		b.tiles = b.tiles[:len(b.tiles)-1]
	}
	return drawn
}

// Refill tops the rack up to the rack tile limit, draining the bag if
// necessary.
func (b *Bag) Refill(r *Rack) {
	need := RackTileLimit - r.NumTiles()
	if need <= 0 {
		return
	}
	r.Add(b.DrawAtMost(need))
}

// PutBack returns tiles to the bag.
func (b *Bag) PutBack(ls []Letter) {
	b.tiles = append(b.tiles, ls...)
}

// Exchange draws replacements for the given tiles, then puts them back
// in the bag. The caller must ensure the bag holds at least as many
// tiles as are being exchanged.
func (b *Bag) Exchange(ls []Letter) []Letter {
	drawn := b.DrawAtMost(len(ls))
	b.PutBack(ls)
	return drawn
}

// TakeLetter removes one specific tile from the bag, if present.
func (b *Bag) TakeLetter(l Letter) bool {
	for i, t := range b.tiles {
		if t == l {
			b.tiles[i] = b.tiles[len(b.tiles)-1]
			b.tiles = b.tiles[:len(b.tiles)-1]
			return true
		}
	}
	return false
}

// TilesRemaining returns how many tiles are left in the bag.
func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}

// LetterDistribution returns the distribution this bag was built from.
func (b *Bag) LetterDistribution() *LetterDistribution {
	return b.ld
}
