package tiles

import (
	"fmt"
	"strings"
)

// Pool is a machine-friendly representation of the shared letter pool.
type Pool struct {
	// LetArr is an array of letter counts from 0 to NumLetters, with
	// 'a' at 0.
	LetArr     [NumLetters]int
	numLetters int
}

// NewPool creates a brand new empty pool.
func NewPool() *Pool {
	return &Pool{}
}

// PoolFromString creates a Pool from a string of letters, e.g. "aetrs".
// Every character must be a lowercase letter.
func PoolFromString(letters string) (*Pool, error) {
	p := &Pool{}
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if !ValidLetter(c) {
			return nil, fmt.Errorf("pool letters must be a through z; got %q", c)
		}
		p.Add(c)
	}
	return p, nil
}

// String returns a user-visible version of this pool.
func (p *Pool) String() string {
	return p.TilesOn()
}

// Copy returns a deep copy of this pool.
func (p *Pool) Copy() *Pool {
	n := &Pool{numLetters: p.numLetters}
	n.LetArr = p.LetArr
	return n
}

// Add adds a letter to the pool.
func (p *Pool) Add(letter byte) {
	p.LetArr[letter-'a']++
	p.numLetters++
}

// Take removes a letter from the pool. It should only be called if the
// letter is in the pool; it doesn't check that it's there.
func (p *Pool) Take(letter byte) {
	p.LetArr[letter-'a']--
	p.numLetters--
}

func (p *Pool) Has(letter byte) bool {
	return p.LetArr[letter-'a'] > 0
}

func (p *Pool) CountOf(letter byte) int {
	return p.LetArr[letter-'a']
}

// NumTiles returns the current number of tiles in the pool.
func (p *Pool) NumTiles() int {
	return p.numLetters
}

func (p *Pool) Empty() bool {
	return p.numLetters == 0
}

// TilesOn returns the pool's current letters as a string. It is
// alphabetized.
func (p *Pool) TilesOn() string {
	if p.numLetters == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(p.numLetters)
	for i := 0; i < NumLetters; i++ {
		for j := 0; j < p.LetArr[i]; j++ {
			sb.WriteByte(byte('a' + i))
		}
	}
	return sb.String()
}

// Distinct returns the distinct letter values in the pool, alphabetized.
func (p *Pool) Distinct() []byte {
	letters := make([]byte, 0, NumLetters)
	for i := 0; i < NumLetters; i++ {
		if p.LetArr[i] > 0 {
			letters = append(letters, byte('a'+i))
		}
	}
	return letters
}

// Contains returns true if sub is a sub-multiset of this pool, i.e.
// every letter of sub appears in the pool at least as many times.
func (p *Pool) Contains(sub *Pool) bool {
	for i := 0; i < NumLetters; i++ {
		if sub.LetArr[i] > p.LetArr[i] {
			return false
		}
	}
	return true
}
