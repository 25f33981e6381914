// Package move describes a proposed tile placement.
package move

import (
	"fmt"

	"github.com/woquz/wordmines/lexicon"
	"github.com/woquz/wordmines/rules"
	"github.com/woquz/wordmines/tiles"
)

// Direction is the orientation of a placement.
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseDirection converts user input into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return Horizontal, rules.Reject(rules.InvalidInput, "unknown direction %q", s)
}

// Move is a proposed placement: a word, its origin cell and a direction.
// The word is stored normalized.
type Move struct {
	word      []tiles.Letter
	row, col  int
	direction Direction
}

var ld = tiles.TurkishLetterDistribution()

// New builds a Move from raw user input, normalizing the word. It only
// checks that the input is well-formed; board legality is checked by the
// validator.
func New(word string, row, col int, dir Direction) (*Move, error) {
	norm := lexicon.Normalize(word)
	letters := tiles.ToLetters(norm)
	if len(letters) < 2 {
		return nil, rules.Reject(rules.InvalidInput, "word %q is too short", word)
	}
	for _, l := range letters {
		// The word names concrete letters; the validator substitutes
		// jokers for letters the rack lacks on its own.
		if !ld.Valid(l) || l == tiles.Joker {
			return nil, rules.Reject(rules.InvalidInput,
				"%q is not a Turkish letter", string(l))
		}
	}
	if row < 0 || col < 0 {
		return nil, rules.Reject(rules.InvalidInput, "negative origin (%d, %d)", row, col)
	}
	return &Move{word: letters, row: row, col: col, direction: dir}, nil
}

// Word returns the normalized word letters.
func (m *Move) Word() []tiles.Letter {
	return m.word
}

// Coords returns the origin row and column.
func (m *Move) Coords() (int, int) {
	return m.row, m.col
}

// Vertical reports whether the placement runs down the board.
func (m *Move) Vertical() bool {
	return m.direction == Vertical
}

// Cell returns the board cell of the idx-th letter of the word.
func (m *Move) Cell(idx int) (int, int) {
	if m.Vertical() {
		return m.row + idx, m.col
	}
	return m.row, m.col + idx
}

func (m *Move) String() string {
	return fmt.Sprintf("<%s (%d,%d) %s>",
		tiles.LettersString(m.word), m.row, m.col, m.direction)
}
