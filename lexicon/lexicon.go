// Package lexicon provides the word lists used to validate plays.
package lexicon

import (
	"bufio"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// turkishUpper implements the dotted/dotless I distinction: i maps to İ
// and ı maps to I.
var turkishUpper = cases.Upper(language.Turkish)

// Normalize upper-cases a word with Turkish casing rules.
func Normalize(word string) string {
	return turkishUpper.String(word)
}

// Lexicon answers whether a word is playable. Words passed to HasWord
// are expected to be normalized already.
type Lexicon interface {
	Name() string
	HasWord(word string) bool
}

// Set is a Lexicon backed by an in-memory word set.
type Set struct {
	name  string
	words map[string]struct{}
}

// ScanWords reads a newline-separated word list, normalizing each entry.
func ScanWords(name string, r io.Reader) (*Set, error) {
	words := map[string]struct{}{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := Normalize(scanner.Text())
		if w == "" {
			continue
		}
		words[w] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Debug().Str("lexicon", name).Int("words", len(words)).Msg("scanned word list")
	return &Set{name: name, words: words}, nil
}

// LoadFile reads a word list from disk.
func LoadFile(name, path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ScanWords(name, f)
}

func (s *Set) Name() string {
	return s.name
}

func (s *Set) HasWord(word string) bool {
	_, ok := s.words[word]
	return ok
}

// AcceptAll is a Lexicon that accepts every word. Useful for tests that
// do not exercise dictionary checks.
type AcceptAll struct{}

func (AcceptAll) Name() string { return "AcceptAll" }

func (AcceptAll) HasWord(word string) bool { return true }
