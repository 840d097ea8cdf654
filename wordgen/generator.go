// Package wordgen turns lexicon queries into scored, ordered play
// candidates. The generator is stateless over an immutable lexicon, so
// every query is a pure function of its inputs and any number of them
// can run at once.
package wordgen

import (
	"runtime"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/grabble/lexicon"
	"github.com/domino14/grabble/tiles"
)

// DefaultMaxHypotheses caps how many missing letters InferredWords
// will speculate about.
const DefaultMaxHypotheses = 11

// A Candidate is a playable word with its point value.
type Candidate struct {
	Word  string `json:"word" yaml:"word"`
	Score int    `json:"score" yaml:"score"`
}

// Score is the point value of a word: one point per letter past the
// second, with a floor of one point.
func Score(word string) int {
	if len(word) <= 3 {
		return 1
	}
	return len(word) - 2
}

// Generator answers discovery queries against one lexicon.
type Generator struct {
	lex     *lexicon.Lexicon
	ld      *tiles.LetterDistribution
	threads int
}

func NewGenerator(lex *lexicon.Lexicon, ld *tiles.LetterDistribution, threads int) *Generator {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	return &Generator{lex: lex, ld: ld, threads: threads}
}

func (g *Generator) Lexicon() *lexicon.Lexicon {
	return g.lex
}

func scored(words []string) []Candidate {
	cands := lo.Map(words, func(word string, _ int) Candidate {
		return Candidate{Word: word, Score: Score(word)}
	})
	sortCandidates(cands)
	return cands
}

// Descending score, then ascending word, so equal inputs always come
// back in the same order.
func sortCandidates(cands []Candidate) {
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].Score != cands[j].Score {
			return cands[i].Score > cands[j].Score
		}
		return cands[i].Word < cands[j].Word
	})
}

// PossibleWords returns every word playable from the pool alone.
func (g *Generator) PossibleWords(pool *tiles.Pool) []Candidate {
	return scored(g.lex.WordsContainedIn(pool))
}

// PotentialWords maps each existing word to the words that extend it by
// exactly one pool letter. Every queried word gets an entry, even an
// empty one.
func (g *Generator) PotentialWords(words []string, pool *tiles.Pool) map[string][]Candidate {
	return g.perWord(words, pool, func(word string, pool *tiles.Pool) []Candidate {
		return scored(g.lex.WordsExtending(word, pool))
	})
}

// StealWords maps each existing word to its full steals: strictly
// longer words that use every letter of the base plus letters from the
// pool. Single-letter extensions show up here too; PotentialWords is
// the query for just those.
func (g *Generator) StealWords(words []string, pool *tiles.Pool) map[string][]Candidate {
	return g.perWord(words, pool, func(word string, pool *tiles.Pool) []Candidate {
		base, err := tiles.PoolFromString(word)
		if err != nil {
			return scored(nil)
		}
		combined := pool.Copy()
		for i := 0; i < len(word); i++ {
			combined.Add(word[i])
		}
		var steals []string
		for _, found := range g.lex.WordsContainedIn(combined) {
			if len(found) <= len(word) {
				continue
			}
			foundPool, err := tiles.PoolFromString(found)
			if err != nil {
				continue
			}
			if foundPool.Contains(base) {
				steals = append(steals, found)
			}
		}
		return scored(steals)
	})
}

// InferredWords speculates about letters missing from the pool: for
// each letter not in the pool, most frequent first and capped at
// maxLetters (DefaultMaxHypotheses if zero), the words that would open
// up if one such letter were drawn. Letters that open up nothing get
// no entry.
func (g *Generator) InferredWords(words []string, pool *tiles.Pool, maxLetters int) map[string][]Candidate {
	if maxLetters <= 0 {
		maxLetters = DefaultMaxHypotheses
	}
	out := make(map[string][]Candidate)
	freq := g.ld.ByFrequency()
	tried := 0
	for i := 0; i < len(freq) && tried < maxLetters; i++ {
		c := freq[i]
		if pool.Has(c) {
			continue
		}
		tried++

		hyp := pool.Copy()
		hyp.Add(c)
		var found []string
		seen := make(map[string]bool)
		for _, word := range g.lex.WordsContainedIn(hyp) {
			if strings.IndexByte(word, c) == -1 {
				continue
			}
			seen[word] = true
			found = append(found, word)
		}
		single := tiles.NewPool()
		single.Add(c)
		for _, base := range words {
			for _, word := range g.lex.WordsExtending(base, single) {
				if seen[word] {
					continue
				}
				seen[word] = true
				found = append(found, word)
			}
		}
		if len(found) == 0 {
			continue
		}
		out[string(c)] = scored(found)
	}
	return out
}

// perWord fans a per-word query out across threads. Each goroutine
// reads the shared lexicon and its own pool copy and writes only its
// own slot; the merge keeps the caller's word order.
func (g *Generator) perWord(words []string, pool *tiles.Pool,
	query func(string, *tiles.Pool) []Candidate) map[string][]Candidate {

	results := make([][]Candidate, len(words))
	var eg errgroup.Group
	eg.SetLimit(g.threads)
	for idx, word := range words {
		idx, word := idx, word
		eg.Go(func() error {
			results[idx] = query(word, pool.Copy())
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Err(err).Msg("per-word-query")
	}
	out := make(map[string][]Candidate, len(words))
	for i, word := range words {
		out[word] = results[i]
	}
	return out
}
