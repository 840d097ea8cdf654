// Package game owns the mutable table state for a grabble session: the
// pool of face-up letters and the words already played, in play order.
// The discovery engine never sees this state directly; queries run on
// immutable snapshots.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/grabble/lexicon"
	"github.com/domino14/grabble/tiles"
)

var (
	ErrNotALetter     = errors.New("letters must be a through z")
	ErrNotAWord       = errors.New("words must use only the letters a through z")
	ErrWordTooShort   = fmt.Errorf("words must be at least %d letters long", lexicon.MinWordLength)
	ErrWordNotOnBoard = errors.New("that word is not on the board")
	ErrDoesNotUseBase = errors.New("a steal must use every letter of the stolen word")
	ErrStealTooShort  = errors.New("a steal must add at least one letter")
	ErrPoolTooSmall   = errors.New("the pool does not have the needed letters")
)

type State struct {
	pool           *tiles.Pool
	words          []string
	lexFingerprint uint64
}

func NewState() *State {
	return &State{pool: tiles.NewPool()}
}

// AddLetters turns letters face up in the pool. Input is lowercased;
// anything outside a through z rejects the whole call with no change.
func (s *State) AddLetters(letters string) error {
	letters = strings.ToLower(letters)
	for i := 0; i < len(letters); i++ {
		if !tiles.ValidLetter(letters[i]) {
			return fmt.Errorf("%w: %q", ErrNotALetter, letters[i])
		}
	}
	for i := 0; i < len(letters); i++ {
		s.pool.Add(letters[i])
	}
	return nil
}

// DeleteLetters removes letters from the pool, for correcting typos.
// Letters that aren't in the pool are ignored.
func (s *State) DeleteLetters(letters string) error {
	letters = strings.ToLower(letters)
	for i := 0; i < len(letters); i++ {
		if !tiles.ValidLetter(letters[i]) {
			return fmt.Errorf("%w: %q", ErrNotALetter, letters[i])
		}
	}
	for i := 0; i < len(letters); i++ {
		if s.pool.Has(letters[i]) {
			s.pool.Take(letters[i])
		}
	}
	return nil
}

// Play commits a word to the board. With an empty base the word is
// spelled from the pool alone; otherwise base is stolen, and the play
// must reuse every letter of it. Pool letters are spent, the base
// leaves the board and the new word goes to the end of the play order.
// Whether the word is actually in the lexicon is the caller's problem.
func (s *State) Play(word, base string) error {
	word = strings.ToLower(word)
	base = strings.ToLower(base)
	if !tiles.ValidWord(word) {
		return fmt.Errorf("%w: %q", ErrNotAWord, word)
	}
	if len(word) < lexicon.MinWordLength {
		return fmt.Errorf("%w: %q", ErrWordTooShort, word)
	}
	needed, err := tiles.PoolFromString(word)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrNotAWord, word)
	}

	baseIdx := -1
	if base != "" {
		if len(word) <= len(base) {
			return fmt.Errorf("%w: %q over %q", ErrStealTooShort, word, base)
		}
		for i, played := range s.words {
			if played == base {
				baseIdx = i
				break
			}
		}
		if baseIdx == -1 {
			return fmt.Errorf("%w: %q", ErrWordNotOnBoard, base)
		}
		for i := 0; i < len(base); i++ {
			if !needed.Has(base[i]) {
				return fmt.Errorf("%w: %q does not cover %q", ErrDoesNotUseBase, word, base)
			}
			needed.Take(base[i])
		}
	}
	if !s.pool.Contains(needed) {
		return fmt.Errorf("%w: need %q", ErrPoolTooSmall, needed.TilesOn())
	}

	for i := 0; i < tiles.NumLetters; i++ {
		for n := 0; n < needed.LetArr[i]; n++ {
			s.pool.Take(byte('a' + i))
		}
	}
	if baseIdx != -1 {
		s.words = append(s.words[:baseIdx], s.words[baseIdx+1:]...)
	}
	s.words = append(s.words, word)
	return nil
}

// Words returns the played words in play order. The slice is a copy.
func (s *State) Words() []string {
	return append([]string(nil), s.words...)
}

// PoolSnapshot returns a copy of the pool for queries and display.
func (s *State) PoolSnapshot() *tiles.Pool {
	return s.pool.Copy()
}

func (s *State) NumWords() int {
	return len(s.words)
}

// SetLexiconFingerprint records which lexicon this state was played
// under, for embedding in exports.
func (s *State) SetLexiconFingerprint(fp uint64) {
	s.lexFingerprint = fp
}

func (s *State) LexiconFingerprint() uint64 {
	return s.lexFingerprint
}
