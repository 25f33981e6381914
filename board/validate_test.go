package board

import (
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/woquz/wordmines/lexicon"
	"github.com/woquz/wordmines/move"
	"github.com/woquz/wordmines/rules"
	"github.com/woquz/wordmines/tiles"
)

func testLexicon(t *testing.T, words string) lexicon.Lexicon {
	t.Helper()
	set, err := lexicon.ScanWords("test", strings.NewReader(words))
	if err != nil {
		t.Fatal(err)
	}
	return set
}

// blankLayout has no premium squares except the center marker.
func blankLayout() []string {
	rows := make([]string, Dim)
	for i := range rows {
		rows[i] = strings.Repeat(" ", Dim)
	}
	rows[7] = "       *       "
	return rows
}

func mustMove(t *testing.T, word string, row, col int, dir move.Direction) *move.Move {
	t.Helper()
	m, err := move.New(word, row, col, dir)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestFirstMovePlainScoreIsLetterSum(t *testing.T) {
	is := is.New(t)
	b := New(blankLayout())
	lex := testLexicon(t, "kelime")
	rack := tiles.RackFromLetters(tiles.ToLetters("KELİME"))
	rack.Add([]tiles.Letter{tiles.Joker})

	out, err := b.Validate(mustMove(t, "KELİME", 7, 7, move.Horizontal),
		rack, lex, Constraints{FirstMove: true})
	is.NoErr(err)
	// K+E+L+İ+M+E = 1+1+1+1+2+1, no premium cells involved.
	is.Equal(out.Score, 7)
	is.Equal(out.RawScore, 7)
	is.Equal(len(out.Placed), 6)
	is.Equal(len(out.Words), 1)
	is.Equal(out.Words[0].Word, "KELİME")
	for _, pt := range out.Placed {
		is.True(!pt.Joker) // rack supplies every letter, joker unused
	}
	// Rack untouched by validation.
	is.Equal(rack.NumTiles(), 7)
}

func TestFirstMoveStandardLayoutPremium(t *testing.T) {
	is := is.New(t)
	b := NewStandard()
	lex := testLexicon(t, "kelime")
	rack := tiles.RackFromLetters(tiles.ToLetters("KELİME"))

	out, err := b.Validate(mustMove(t, "KELİME", 7, 7, move.Horizontal),
		rack, lex, Constraints{FirstMove: true})
	is.NoErr(err)
	// M lands on the double-letter at (7,11): 1+1+1+1+4+1.
	is.Equal(out.Score, 9)
	is.Equal(out.RawScore, 7)
}

func TestFirstMoveMustCoverCenter(t *testing.T) {
	is := is.New(t)
	b := NewStandard()
	lex := testLexicon(t, "kelime")
	rack := tiles.RackFromLetters(tiles.ToLetters("KELİME"))

	_, err := b.Validate(mustMove(t, "KELİME", 0, 0, move.Horizontal),
		rack, lex, Constraints{FirstMove: true})
	is.True(rules.IsReason(err, rules.DisconnectedPlacement))
}

func TestOutOfBounds(t *testing.T) {
	is := is.New(t)
	b := NewStandard()
	rack := tiles.RackFromLetters(tiles.ToLetters("KELİME"))

	_, err := b.Validate(mustMove(t, "KELİME", 7, 12, move.Horizontal),
		rack, lexicon.AcceptAll{}, Constraints{FirstMove: true})
	is.True(rules.IsReason(err, rules.OutOfBounds))

	_, err = b.Validate(mustMove(t, "KELİME", 12, 7, move.Vertical),
		rack, lexicon.AcceptAll{}, Constraints{FirstMove: true})
	is.True(rules.IsReason(err, rules.OutOfBounds))
}

func TestRackMismatch(t *testing.T) {
	is := is.New(t)
	b := NewStandard()
	rack := tiles.RackFromLetters(tiles.ToLetters("KALEMŞZ"))

	_, err := b.Validate(mustMove(t, "KELİME", 7, 7, move.Horizontal),
		rack, lexicon.AcceptAll{}, Constraints{FirstMove: true})
	is.True(rules.IsReason(err, rules.RackMismatch))
}

func TestJokerSubstitutesMissingLetterAndScoresZero(t *testing.T) {
	is := is.New(t)
	b := New(blankLayout())
	rack := tiles.RackFromLetters(tiles.ToLetters("KELME"))
	rack.Add([]tiles.Letter{tiles.Joker})

	out, err := b.Validate(mustMove(t, "KELİME", 7, 7, move.Horizontal),
		rack, lexicon.AcceptAll{}, Constraints{FirstMove: true})
	is.NoErr(err)
	// The joker stands in for the İ and contributes nothing.
	is.Equal(out.Score, 6)
	jokers := 0
	for _, pt := range out.Placed {
		if pt.Joker {
			jokers++
			is.Equal(pt.Letter, tiles.Letter('İ'))
		}
	}
	is.Equal(jokers, 1)
}

func TestOverlapMustMatchExactly(t *testing.T) {
	is := is.New(t)
	b := New(blankLayout())
	for i, l := range tiles.ToLetters("KAR") {
		b.SetLetter(7, 7+i, l, false)
	}
	rack := tiles.RackFromLetters(tiles.ToLetters("KELİMEA"))

	// Vertical KELİME through (7,7) would need K there; it holds K: fine.
	_, err := b.Validate(mustMove(t, "KELİME", 7, 7, move.Vertical),
		rack, lexicon.AcceptAll{}, Constraints{})
	is.NoErr(err)

	// Vertical ARA through (7,7) needs A on the K square.
	_, err = b.Validate(mustMove(t, "ARA", 7, 7, move.Vertical),
		rack, lexicon.AcceptAll{}, Constraints{})
	is.True(rules.IsReason(err, rules.CellConflict))
}

func TestMoveMustPlaceANewTile(t *testing.T) {
	is := is.New(t)
	b := New(blankLayout())
	for i, l := range tiles.ToLetters("KAR") {
		b.SetLetter(7, 7+i, l, false)
	}
	rack := tiles.RackFromLetters(tiles.ToLetters("KELİMEA"))

	_, err := b.Validate(mustMove(t, "KAR", 7, 7, move.Horizontal),
		rack, lexicon.AcceptAll{}, Constraints{})
	is.True(rules.IsReason(err, rules.InvalidInput))
}

func TestDisconnectedPlacement(t *testing.T) {
	is := is.New(t)
	b := New(blankLayout())
	for i, l := range tiles.ToLetters("KAR") {
		b.SetLetter(7, 7+i, l, false)
	}
	rack := tiles.RackFromLetters(tiles.ToLetters("KELİMEA"))

	_, err := b.Validate(mustMove(t, "EL", 0, 0, move.Horizontal),
		rack, lexicon.AcceptAll{}, Constraints{})
	is.True(rules.IsReason(err, rules.DisconnectedPlacement))
}

func TestCrossWordsScoredAndChecked(t *testing.T) {
	is := is.New(t)
	b := NewStandard()
	for i, l := range tiles.ToLetters("KAR") {
		b.SetLetter(7, 7+i, l, false)
	}
	rack := tiles.RackFromLetters(tiles.ToLetters("ELMİKAZ"))
	lex := testLexicon(t, "el\nke\nal\nkar")

	out, err := b.Validate(mustMove(t, "EL", 8, 7, move.Horizontal),
		rack, lex, Constraints{})
	is.NoErr(err)
	is.Equal(len(out.Words), 3) // EL, KE, AL
	// (8,8) is a double-letter square: EL=1+2, KE=1+1, AL=1+2.
	is.Equal(out.Score, 8)

	// The same placement fails if a cross word is not in the dictionary.
	_, err = b.Validate(mustMove(t, "EL", 8, 7, move.Horizontal),
		rack, testLexicon(t, "el\nke"), Constraints{})
	is.True(rules.IsReason(err, rules.WordNotInDictionary))
}

func TestPrimaryWordExtendsExistingTiles(t *testing.T) {
	is := is.New(t)
	b := New(blankLayout())
	for i, l := range tiles.ToLetters("KAR") {
		b.SetLetter(7, 7+i, l, false)
	}
	rack := tiles.RackFromLetters(tiles.ToLetters("AELMİKZ"))

	// Placing A at (7,10) extends KAR into KARA.
	out, err := b.Validate(mustMove(t, "RA", 7, 9, move.Horizontal),
		rack, testLexicon(t, "kara"), Constraints{})
	is.NoErr(err)
	is.Equal(len(out.Words), 1)
	is.Equal(out.Words[0].Word, "KARA")
	is.Equal(out.Score, 4)
	is.Equal(len(out.Placed), 1)
}

func TestScoreInvariantToMoveOrder(t *testing.T) {
	is := is.New(t)
	lex := testLexicon(t, "kelime\nkar\nmal")
	kar := mustMove(t, "KAR", 7, 7, move.Vertical)
	mal := mustMove(t, "MAL", 7, 11, move.Vertical)
	karRack := tiles.RackFromLetters(tiles.ToLetters("AR"))
	malRack := tiles.RackFromLetters(tiles.ToLetters("AL"))

	// Plays KELİME across the center, then the two hook words in the
	// given order, returning each hook word's score.
	playBoth := func(first, second *move.Move, firstRack, secondRack *tiles.Rack) (int, int) {
		b := New(blankLayout())
		out, err := b.Validate(mustMove(t, "KELİME", 7, 7, move.Horizontal),
			tiles.RackFromLetters(tiles.ToLetters("KELİME")), lex,
			Constraints{FirstMove: true})
		is.NoErr(err)
		b.Apply(out)
		o1, err := b.Validate(first, firstRack, lex, Constraints{})
		is.NoErr(err)
		b.Apply(o1)
		o2, err := b.Validate(second, secondRack, lex, Constraints{})
		is.NoErr(err)
		b.Apply(o2)
		return o1.Score, o2.Score
	}

	karFirst, malAfter := playBoth(kar, mal, karRack, malRack)
	malFirst, karAfter := playBoth(mal, kar, malRack, karRack)
	// KAR hooks on the K, MAL on the M; they do not overlap, so each
	// scores the same whichever is played first.
	is.Equal(karFirst, karAfter)
	is.Equal(malFirst, malAfter)
	is.Equal(karFirst, 3) // K+A+R
	is.Equal(malFirst, 4) // M+A+L
}

func TestAreaRestriction(t *testing.T) {
	is := is.New(t)
	b := New(blankLayout())
	rack := tiles.RackFromLetters(tiles.ToLetters("KELİMEA"))
	cons := Constraints{
		FirstMove: true,
		Area:      &AreaSpan{MinCol: 0, MaxCol: 6},
	}

	_, err := b.Validate(mustMove(t, "KELİME", 7, 7, move.Horizontal),
		rack, lexicon.AcceptAll{}, cons)
	is.True(rules.IsReason(err, rules.RestrictedArea))
}

func TestFrozenLetterBlocksPlacement(t *testing.T) {
	is := is.New(t)
	b := New(blankLayout())
	rack := tiles.RackFromLetters(tiles.ToLetters("KELİME"))
	cons := Constraints{
		FirstMove: true,
		Frozen:    tiles.ToLetters("K"),
	}

	_, err := b.Validate(mustMove(t, "KELİME", 7, 7, move.Horizontal),
		rack, lexicon.AcceptAll{}, cons)
	is.True(rules.IsReason(err, rules.FrozenLetter))
}

func TestMinesAndRewardsReported(t *testing.T) {
	is := is.New(t)
	b := New(blankLayout())
	b.SetMine(7, 8, MineScoreSplit)
	b.SetReward(7, 10, RewardExtraMove)
	rack := tiles.RackFromLetters(tiles.ToLetters("KELİME"))

	out, err := b.Validate(mustMove(t, "KELİME", 7, 7, move.Horizontal),
		rack, lexicon.AcceptAll{}, Constraints{FirstMove: true})
	is.NoErr(err)
	is.Equal(out.Mines, []MineKind{MineScoreSplit})
	is.Equal(out.Rewards, []RewardKind{RewardExtraMove})

	// Applying the outcome consumes the modifiers.
	b.Apply(out)
	is.Equal(b.GetSquare(7, 8).Mine(), MineKind(""))
	is.Equal(b.GetSquare(7, 10).Reward(), RewardKind(""))
	is.Equal(b.PlacedLetters(), 6)

	// A tile placed over a consumed cell cannot fire it again.
	is.True(!b.IsEmpty())
}

func TestSeedModifiersAvoidsCenter(t *testing.T) {
	is := is.New(t)
	b := NewStandard()
	b.SeedModifiers(tiles.DefaultRand())
	is.Equal(b.GetSquare(7, 7).Mine(), MineKind(""))
	is.Equal(b.GetSquare(7, 7).Reward(), RewardKind(""))
	mines, rewards := 0, 0
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			sq := b.GetSquare(i, j)
			if sq.Mine() != "" {
				mines++
			}
			if sq.Reward() != "" {
				rewards++
			}
		}
	}
	is.Equal(mines, 16)
	is.Equal(rewards, 10)
}
