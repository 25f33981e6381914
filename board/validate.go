package board

import (
	"github.com/woquz/wordmines/lexicon"
	"github.com/woquz/wordmines/move"
	"github.com/woquz/wordmines/rules"
	"github.com/woquz/wordmines/tiles"
)

// AreaSpan is the column range a restricted player may place in.
type AreaSpan struct {
	MinCol, MaxCol int
}

func (a AreaSpan) contains(col int) bool {
	return col >= a.MinCol && col <= a.MaxCol
}

// Constraints carries the per-move validation context owned by the turn
// engine: whether this is the match's first placement, and any pending
// one-shot effects scoped to the moving player.
type Constraints struct {
	FirstMove bool
	Area      *AreaSpan
	Frozen    []tiles.Letter
}

// PlacedTile is a newly placed tile and its cell.
type PlacedTile struct {
	Row    int          `json:"row"`
	Col    int          `json:"col"`
	Letter tiles.Letter `json:"letter"`
	Joker  bool         `json:"joker"`
}

// FormedWord is one word completed by a placement, with its own
// multiplier chain already applied.
type FormedWord struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// Outcome is the result of a legal placement. Score carries the full
// premium-applied total; RawScore the plain letter sum, used when a
// bonus-blocking mine fires.
type Outcome struct {
	Placed   []PlacedTile
	Words    []FormedWord
	Score    int
	RawScore int
	Mines    []MineKind
	Rewards  []RewardKind
}

type placement struct {
	letter tiles.Letter
	joker  bool
}

// Validate checks a proposed placement against the board, the player's
// rack and the dictionary, in a fixed order so each failure maps to a
// distinct rejection reason. On success it derives every formed word
// and computes the score. The board and rack are never modified.
func (b *Board) Validate(m *move.Move, rack *tiles.Rack, lex lexicon.Lexicon, cons Constraints) (*Outcome, error) {
	word := m.Word()

	// (a) Bounds.
	for idx := range word {
		if r, c := m.Cell(idx); !b.posExists(r, c) {
			return nil, rules.Reject(rules.OutOfBounds,
				"cell (%d, %d) is outside the board", r, c)
		}
	}

	// (b) Path conflicts. Overlap is only legal on the exact letter.
	newIdxs := []int{}
	overlap := false
	for idx, l := range word {
		r, c := m.Cell(idx)
		sq := b.squares[r][c]
		if sq.IsEmpty() {
			newIdxs = append(newIdxs, idx)
			continue
		}
		if sq.letter != l {
			return nil, rules.Reject(rules.CellConflict,
				"cell (%d, %d) already holds %c", r, c, sq.letter)
		}
		overlap = true
	}
	if len(newIdxs) == 0 {
		return nil, rules.Reject(rules.InvalidInput, "move places no new tile")
	}

	// Pending area restriction applies to every new tile.
	if cons.Area != nil {
		for _, idx := range newIdxs {
			if _, c := m.Cell(idx); !cons.Area.contains(c) {
				return nil, rules.Reject(rules.RestrictedArea,
					"placement must stay within columns %d-%d",
					cons.Area.MinCol, cons.Area.MaxCol)
			}
		}
	}

	// (c) Rack coverage, substituting jokers for missing letters.
	needed := make([]tiles.Letter, len(newIdxs))
	for i, idx := range newIdxs {
		needed[i] = word[idx]
	}
	available := rack.Copy()
	for _, l := range cons.Frozen {
		available.Take(l)
	}
	jokers, ok := available.Cover(needed)
	if !ok {
		if _, fullOK := rack.Cover(needed); fullOK {
			return nil, rules.Reject(rules.FrozenLetter,
				"placement needs a frozen letter")
		}
		return nil, rules.Reject(rules.RackMismatch,
			"rack %s cannot supply %s", rack, tiles.LettersString(needed))
	}

	placed := map[[2]int]placement{}
	outPlaced := make([]PlacedTile, len(newIdxs))
	for i, idx := range newIdxs {
		r, c := m.Cell(idx)
		placed[[2]int{r, c}] = placement{letter: word[idx], joker: jokers[i]}
		outPlaced[i] = PlacedTile{Row: r, Col: c, Letter: word[idx], Joker: jokers[i]}
	}

	// (d) Connectivity.
	if cons.FirstMove {
		covered := false
		for idx := range word {
			if r, c := m.Cell(idx); r == Dim/2 && c == Dim/2 {
				covered = true
				break
			}
		}
		if !covered {
			return nil, rules.Reject(rules.DisconnectedPlacement,
				"first word must cover the center square")
		}
	} else {
		touches := overlap
		if !touches {
			for _, idx := range newIdxs {
				if r, c := m.Cell(idx); b.hasNeighbor(r, c) {
					touches = true
					break
				}
			}
		}
		if !touches {
			return nil, rules.Reject(rules.DisconnectedPlacement,
				"word must touch at least one placed tile")
		}
	}

	// (e) Derive every formed word and check the dictionary.
	words := b.formedWords(m, placed)
	out := &Outcome{Placed: outPlaced}
	for _, w := range words {
		text := w.text()
		if !lex.HasWord(text) {
			return nil, rules.Reject(rules.WordNotInDictionary,
				"%s is not a valid word", text)
		}
		score, raw := b.scoreWord(w, placed)
		out.Words = append(out.Words, FormedWord{Word: text, Score: score})
		out.Score += score
		out.RawScore += raw
	}

	// Modifiers fire only under newly placed tiles.
	for _, idx := range newIdxs {
		r, c := m.Cell(idx)
		sq := b.squares[r][c]
		if sq.mine != "" {
			out.Mines = append(out.Mines, sq.mine)
		}
		if sq.reward != "" {
			out.Rewards = append(out.Rewards, sq.reward)
		}
	}
	return out, nil
}

// wordSpan is a formed word as a run of cells with their letters. Joker
// tiles are tracked so they keep scoring zero.
type wordCell struct {
	row, col int
	letter   tiles.Letter
	joker    bool
}

type wordSpan []wordCell

func (w wordSpan) text() string {
	ls := make([]tiles.Letter, len(w))
	for i, c := range w {
		ls[i] = c.letter
	}
	return tiles.LettersString(ls)
}

func (b *Board) letterAt(row, col int, placed map[[2]int]placement) (tiles.Letter, bool, bool) {
	if p, ok := placed[[2]int{row, col}]; ok {
		return p.letter, p.joker, true
	}
	sq := b.squares[row][col]
	if sq.IsEmpty() {
		return 0, false, false
	}
	return sq.letter, sq.joker, true
}

// span walks from the cell in both directions along an axis and
// collects the full contiguous run of letters.
func (b *Board) span(row, col, dr, dc int, placed map[[2]int]placement) wordSpan {
	r, c := row, col
	for {
		pr, pc := r-dr, c-dc
		if !b.posExists(pr, pc) {
			break
		}
		if _, _, ok := b.letterAt(pr, pc, placed); !ok {
			break
		}
		r, c = pr, pc
	}
	var w wordSpan
	for b.posExists(r, c) {
		l, joker, ok := b.letterAt(r, c, placed)
		if !ok {
			break
		}
		w = append(w, wordCell{row: r, col: c, letter: l, joker: joker})
		r, c = r+dr, c+dc
	}
	return w
}

// formedWords derives the primary word (including any existing tiles it
// extends) and every perpendicular word completed by a new tile.
func (b *Board) formedWords(m *move.Move, placed map[[2]int]placement) []wordSpan {
	dr, dc := 0, 1
	if m.Vertical() {
		dr, dc = 1, 0
	}
	row, col := m.Coords()
	words := []wordSpan{b.span(row, col, dr, dc, placed)}
	for pos := range placed {
		cross := b.span(pos[0], pos[1], dc, dr, placed)
		if len(cross) > 1 {
			words = append(words, cross)
		}
	}
	return words
}

var ld = tiles.TurkishLetterDistribution()

// scoreWord computes one word's score: letter premiums on newly placed
// tiles, word premiums accumulated and applied once to the word sum.
// The second return is the raw letter sum with no premiums at all.
func (b *Board) scoreWord(w wordSpan, placed map[[2]int]placement) (int, int) {
	sum, raw, wordMult := 0, 0, 1
	for _, cell := range w {
		pts := ld.Score(cell.letter)
		if cell.joker {
			pts = 0
		}
		raw += pts
		if _, isNew := placed[[2]int{cell.row, cell.col}]; isNew {
			prem := b.squares[cell.row][cell.col].premium
			sum += pts * prem.LetterMultiplier()
			wordMult *= prem.WordMultiplier()
		} else {
			sum += pts
		}
	}
	return sum * wordMult, raw
}
