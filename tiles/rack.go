package tiles

import "sort"

// Rack is a player's held tiles. It keeps letter counts rather than an
// ordered slice so that coverage checks are cheap.
type Rack struct {
	counts     map[Letter]int
	numLetters int
}

// NewRack creates an empty rack.
func NewRack() *Rack {
	return &Rack{counts: map[Letter]int{}}
}

// RackFromLetters creates a rack holding the given tiles.
func RackFromLetters(ls []Letter) *Rack {
	r := NewRack()
	r.Add(ls)
	return r
}

// Add puts tiles on the rack.
func (r *Rack) Add(ls []Letter) {
	for _, l := range ls {
		r.counts[l]++
	}
	r.numLetters += len(ls)
}

// Has returns whether the rack holds at least one of the letter.
func (r *Rack) Has(l Letter) bool {
	return r.counts[l] > 0
}

// Count returns how many of the letter the rack holds.
func (r *Rack) Count(l Letter) int {
	return r.counts[l]
}

// Take removes one tile of the given letter. It returns false if the
// rack does not hold it.
func (r *Rack) Take(l Letter) bool {
	if r.counts[l] == 0 {
		return false
	}
	r.counts[l]--
	if r.counts[l] == 0 {
		delete(r.counts, l)
	}
	r.numLetters--
	return true
}

// NumTiles returns the number of tiles on the rack.
func (r *Rack) NumTiles() int {
	return r.numLetters
}

// TilesOn returns the rack tiles in a stable sorted order.
func (r *Rack) TilesOn() []Letter {
	ls := make([]Letter, 0, r.numLetters)
	for l, ct := range r.counts {
		for i := 0; i < ct; i++ {
			ls = append(ls, l)
		}
	}
	sort.Slice(ls, func(i, j int) bool { return ls[i] < ls[j] })
	return ls
}

// Clear empties the rack and returns the tiles that were on it.
func (r *Rack) Clear() []Letter {
	ls := r.TilesOn()
	r.counts = map[Letter]int{}
	r.numLetters = 0
	return ls
}

// Copy returns a deep copy of the rack.
func (r *Rack) Copy() *Rack {
	n := NewRack()
	for l, ct := range r.counts {
		n.counts[l] = ct
	}
	n.numLetters = r.numLetters
	return n
}

// Cover determines whether the rack can supply every letter of the word,
// substituting a joker for any letter it lacks. It returns, per word
// position, whether a joker was used, or false if the rack cannot cover
// the word. The rack is not modified.
func (r *Rack) Cover(word []Letter) ([]bool, bool) {
	tmp := r.Copy()
	jokers := make([]bool, len(word))
	for i, l := range word {
		if tmp.Take(l) {
			continue
		}
		if tmp.Take(Joker) {
			jokers[i] = true
			continue
		}
		return nil, false
	}
	return jokers, true
}

// String returns a user-visible version of this rack.
func (r *Rack) String() string {
	return LettersString(r.TilesOn())
}
