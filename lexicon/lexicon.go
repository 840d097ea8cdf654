// Package lexicon implements the word index for grabble. A lexicon is
// built once from a plain-text wordlist and then answers the two
// discovery queries: which words can be formed entirely from a pool of
// letters, and which words extend a given word by exactly one letter.
//
// Words are grouped by alphagram, so both queries work on letter
// counts instead of permutations.
package lexicon

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/domino14/grabble/tiles"
)

// MinWordLength is the shortest word the discovery queries will
// return. Shorter words are still indexed and count as valid words,
// they just never show up as plays.
const MinWordLength = 3

// ErrEmptyLexicon is returned when a wordlist contains no usable words.
var ErrEmptyLexicon = errors.New("lexicon has no usable words")

// alphaGroup collects every word sharing one alphagram. indices point
// into the lexicon's word list, in insertion order.
type alphaGroup struct {
	counts  [tiles.NumLetters]uint8
	indices []int32
}

func (g *alphaGroup) fitsIn(pool *tiles.Pool) bool {
	for i := range g.counts {
		if int(g.counts[i]) > pool.LetArr[i] {
			return false
		}
	}
	return true
}

// A Lexicon is an immutable word index. It is safe for concurrent use
// once built.
type Lexicon struct {
	name        string
	words       []string
	groups      map[string]*alphaGroup
	wordSet     map[string]bool
	fingerprint uint64
}

// ScanLexicon builds a lexicon from a wordlist, one word per line.
// Lines are trimmed and lowercased; entries with anything other than
// the letters a through z are skipped with a warning, and duplicates
// keep their first position. It returns ErrEmptyLexicon if nothing
// usable remains.
func ScanLexicon(r io.Reader, name string) (*Lexicon, error) {
	raw, err := readWordlist(r)
	if err != nil {
		return nil, err
	}
	lex := &Lexicon{
		name:    name,
		groups:  make(map[string]*alphaGroup),
		wordSet: make(map[string]bool),
	}
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		if !tiles.ValidWord(word) {
			log.Warn().Str("word", word).Str("lexicon", name).
				Msg("skipping entry with non-letter characters")
			continue
		}
		if lex.wordSet[word] {
			continue
		}
		lex.wordSet[word] = true
		lex.words = append(lex.words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lex.words) == 0 {
		return nil, ErrEmptyLexicon
	}
	lex.fingerprint = xxhash.Sum64String(strings.Join(lex.words, "\n"))

	for i, word := range lex.words {
		alpha := tiles.Alphagram(word)
		group, ok := lex.groups[alpha]
		if !ok {
			group = &alphaGroup{}
			for j := 0; j < len(word); j++ {
				group.counts[word[j]-'a']++
			}
			lex.groups[alpha] = group
		}
		group.indices = append(group.indices, int32(i))
	}
	return lex, nil
}

// Wordlists are usually UTF-8, but some older ones are ISO 8859-1.
// If the raw bytes aren't valid UTF-8, run them through a decoder.
func readWordlist(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if utf8.Valid(raw) {
		return raw, nil
	}
	converted, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), raw)
	if err != nil {
		return nil, err
	}
	return converted, nil
}

func (l *Lexicon) Name() string {
	return l.name
}

// Fingerprint is a hash over the indexed words, in order. Two lexica
// with the same fingerprint answer every query identically.
func (l *Lexicon) Fingerprint() uint64 {
	return l.fingerprint
}

func (l *Lexicon) NumWords() int {
	return len(l.words)
}

// HasWord reports whether word is in the lexicon. The word must
// already be lowercase.
func (l *Lexicon) HasWord(word string) bool {
	return l.wordSet[word]
}

// WordsContainedIn returns every word of at least MinWordLength that
// can be formed from a subset of the pool, in wordlist order.
func (l *Lexicon) WordsContainedIn(pool *tiles.Pool) []string {
	var hits []int32
	for alpha, group := range l.groups {
		if len(alpha) < MinWordLength || len(alpha) > pool.NumTiles() {
			continue
		}
		if !group.fitsIn(pool) {
			continue
		}
		hits = append(hits, group.indices...)
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i] < hits[j] })
	words := make([]string, len(hits))
	for i, idx := range hits {
		words[i] = l.words[idx]
	}
	return words
}

// WordsExtending returns every word formed by adding exactly one pool
// letter to base and rearranging. Each distinct pool letter is tried
// once; one exact alphagram lookup per letter.
func (l *Lexicon) WordsExtending(base string, pool *tiles.Pool) []string {
	if len(base)+1 < MinWordLength {
		return nil
	}
	var words []string
	for _, c := range pool.Distinct() {
		group, ok := l.groups[tiles.Alphagram(base+string(c))]
		if !ok {
			continue
		}
		for _, idx := range group.indices {
			words = append(words, l.words[idx])
		}
	}
	return words
}
