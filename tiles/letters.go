// Package tiles holds the Turkish letter set, the tile bag and player racks.
package tiles

import "strings"

// Letter is a single tile face. The joker tile is represented by the
// asterisk rune.
type Letter rune

// Joker is the blank tile. It can stand in for any letter but always
// scores zero.
const Joker Letter = '*'

// RackTileLimit is the maximum number of tiles on a player rack.
const RackTileLimit = 7

// LetterDistribution encodes the tile distribution and point values for
// the game.
type LetterDistribution struct {
	Distribution map[Letter]uint8
	PointValues  map[Letter]uint8
	numLetters   int
}

// TurkishLetterDistribution returns the fixed 100-tile Turkish
// distribution: 29 letters plus two jokers.
func TurkishLetterDistribution() *LetterDistribution {
	dist := map[Letter]uint8{
		'A': 12, 'B': 2, 'C': 2, 'Ç': 2, 'D': 3, 'E': 8, 'F': 1, 'G': 1,
		'Ğ': 1, 'H': 1, 'I': 4, 'İ': 7, 'J': 1, 'K': 7, 'L': 7, 'M': 4,
		'N': 5, 'O': 3, 'Ö': 1, 'P': 1, 'R': 6, 'S': 3, 'Ş': 2, 'T': 5,
		'U': 3, 'Ü': 2, 'V': 1, 'Y': 3, 'Z': 2, Joker: 2,
	}
	ptValues := map[Letter]uint8{
		'A': 1, 'B': 3, 'C': 4, 'Ç': 4, 'D': 3, 'E': 1, 'F': 7, 'G': 5,
		'Ğ': 8, 'H': 5, 'I': 2, 'İ': 1, 'J': 10, 'K': 1, 'L': 1, 'M': 2,
		'N': 1, 'O': 2, 'Ö': 7, 'P': 5, 'R': 1, 'S': 2, 'Ş': 4, 'T': 1,
		'U': 2, 'Ü': 3, 'V': 7, 'Y': 3, 'Z': 4, Joker: 0,
	}
	numLetters := 0
	for _, ct := range dist {
		numLetters += int(ct)
	}
	return &LetterDistribution{dist, ptValues, numLetters}
}

// NumLetters returns the total tile count of the distribution.
func (ld *LetterDistribution) NumLetters() int {
	return ld.numLetters
}

// Score returns the point value of a letter. Unknown letters score zero.
func (ld *LetterDistribution) Score(l Letter) int {
	return int(ld.PointValues[l])
}

// Valid returns whether the letter exists in the distribution.
func (ld *LetterDistribution) Valid(l Letter) bool {
	_, ok := ld.Distribution[l]
	return ok
}

// ToLetters converts a word to its letter slice.
func ToLetters(word string) []Letter {
	rs := []rune(word)
	ls := make([]Letter, len(rs))
	for i, r := range rs {
		ls[i] = Letter(r)
	}
	return ls
}

// LettersString renders a letter slice as a user-visible string.
func LettersString(ls []Letter) string {
	var sb strings.Builder
	for _, l := range ls {
		sb.WriteRune(rune(l))
	}
	return sb.String()
}
