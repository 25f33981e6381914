// Package board implements the 15x15 game board: placement legality,
// formed-word derivation, scoring and the hidden mine/reward modifiers.
package board

import (
	"strings"

	"github.com/woquz/wordmines/tiles"
)

// Dim is the board dimension.
const Dim = 15

// StandardLayout describes the premium squares, one rune per cell:
// '=' triple word, '-' double word, '"' triple letter, '\'' double
// letter, '*' the center square.
var StandardLayout = []string{
	`=  '   =   '  =`,
	` -   "   "   - `,
	`  -   ' '   -  `,
	`'  -   '   -  '`,
	`    -     -    `,
	` "   "   "   " `,
	`  '   ' '   '  `,
	`=  '   *   '  =`,
	`  '   ' '   '  `,
	` "   "   "   " `,
	`    -     -    `,
	`'  -   '   -  '`,
	`  -   ' '   -  `,
	` -   "   "   - `,
	`=  '   =   '  =`,
}

// A Board is the main board structure.
type Board struct {
	squares  [Dim][Dim]*Square
	hasTiles bool
}

// New creates a board from a layout description.
func New(layout []string) *Board {
	b := &Board{}
	for i, rowDesc := range layout {
		for j, c := range rowDesc {
			sq := &Square{}
			switch c {
			case '=':
				sq.premium = TripleWord
			case '-':
				sq.premium = DoubleWord
			case '"':
				sq.premium = TripleLetter
			case '\'':
				sq.premium = DoubleLetter
			case '*':
				sq.premium = Center
			}
			b.squares[i][j] = sq
		}
	}
	return b
}

// NewStandard creates a board with the standard premium layout.
func NewStandard() *Board {
	return New(StandardLayout)
}

// GetSquare returns the square at the given cell.
func (b *Board) GetSquare(row, col int) *Square {
	return b.squares[row][col]
}

// SetLetter places a letter directly on a cell. Meant for tests and
// state restoration; gameplay goes through Apply.
func (b *Board) SetLetter(row, col int, l tiles.Letter, joker bool) {
	b.squares[row][col].letter = l
	b.squares[row][col].joker = joker
	b.hasTiles = true
}

// IsEmpty returns whether no tile has been played yet.
func (b *Board) IsEmpty() bool {
	return !b.hasTiles
}

func (b *Board) posExists(row, col int) bool {
	return row >= 0 && row < Dim && col >= 0 && col < Dim
}

// hasNeighbor reports whether any orthogonally adjacent cell holds a
// tile.
func (b *Board) hasNeighbor(row, col int) bool {
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		r, c := row+d[0], col+d[1]
		if b.posExists(r, c) && !b.squares[r][c].IsEmpty() {
			return true
		}
	}
	return false
}

// PlacedLetters counts the tiles currently on the board. Used by the
// tile conservation invariant.
func (b *Board) PlacedLetters() int {
	n := 0
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			if !b.squares[i][j].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// Apply writes a validated outcome onto the board: places the new tiles
// and clears any consumed mine/reward markers.
func (b *Board) Apply(out *Outcome) {
	for _, pt := range out.Placed {
		sq := b.squares[pt.Row][pt.Col]
		sq.letter = pt.Letter
		sq.joker = pt.Joker
		sq.mine = ""
		sq.reward = ""
	}
	if len(out.Placed) > 0 {
		b.hasTiles = true
	}
}

// SetMine hides a mine under a cell.
func (b *Board) SetMine(row, col int, kind MineKind) {
	b.squares[row][col].mine = kind
}

// SetReward hides a reward under a cell.
func (b *Board) SetReward(row, col int, kind RewardKind) {
	b.squares[row][col].reward = kind
}

// SeedModifiers hides mines and rewards under random empty cells. The
// center square never holds a modifier, and no cell holds more than
// one.
func (b *Board) SeedModifiers(rng tiles.Rand) {
	type mod struct {
		mine   MineKind
		reward RewardKind
		count  int
	}
	mods := []mod{
		{mine: MineScoreSplit, count: 5},
		{mine: MineScoreTransfer, count: 4},
		{mine: MineLetterLoss, count: 3},
		{mine: MineBonusBlocked, count: 2},
		{mine: MineWordCancel, count: 2},
		{reward: RewardAreaRestriction, count: 2},
		{reward: RewardLetterFreeze, count: 3},
		{reward: RewardExtraMove, count: 2},
		{reward: RewardChangeLetters, count: 1},
		{reward: RewardExtraLetter, count: 1},
		{reward: RewardAddJoker, count: 1},
	}
	free := make([][2]int, 0, Dim*Dim-1)
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			if i == Dim/2 && j == Dim/2 {
				continue
			}
			free = append(free, [2]int{i, j})
		}
	}
	for _, m := range mods {
		for n := 0; n < m.count; n++ {
			idx := rng.Intn(len(free))
			cell := free[idx]
			free[idx] = free[len(free)-1]
			free = free[:len(free)-1]
			sq := b.squares[cell[0]][cell[1]]
			sq.mine = m.mine
			sq.reward = m.reward
		}
	}
}

// ToDisplayText renders the board for debug logging.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			sq := b.squares[i][j]
			if sq.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteRune(rune(sq.letter))
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
