// Package automatic plays grabble solitaire: flip a tile, greedily
// play the best thing the engine sees, repeat until the bag runs out.
// It exists to exercise the engine at volume and to collect statistics
// about lexicons and tile distributions.
package automatic

import (
	"fmt"

	"lukechampine.com/frand"

	"github.com/domino14/grabble/game"
	"github.com/domino14/grabble/lexicon"
	"github.com/domino14/grabble/tiles"
	"github.com/domino14/grabble/wordgen"
)

// GameRunner is the master struct here for the automatic game logic.
// One runner plays games serially; run several runners for
// parallelism.
type GameRunner struct {
	state *game.State
	bag   *tiles.Bag
	gen   *wordgen.Generator
	ld    *tiles.LetterDistribution

	logchan chan string
}

// GameResult is what one finished game boils down to.
type GameResult struct {
	GameID    string
	Words     int
	Score     int
	TilesLeft int
}

// NewGameRunner just instantiates and initializes a game runner. The
// generator runs single-threaded; parallelism belongs to whoever owns
// the runners.
func NewGameRunner(logchan chan string, lex *lexicon.Lexicon, ld *tiles.LetterDistribution) *GameRunner {
	return &GameRunner{
		gen:     wordgen.NewGenerator(lex, ld, 1),
		ld:      ld,
		logchan: logchan,
	}
}

type play struct {
	word string
	base string
	gain int
}

// bestPlay picks the play that gains the most points right now. A
// fresh word gains its own score; a steal gains the difference over
// the stolen word. Fresh words win ties.
func (r *GameRunner) bestPlay() (play, bool) {
	words := r.state.Words()
	pool := r.state.PoolSnapshot()

	best := play{}
	found := false
	if possible := r.gen.PossibleWords(pool); len(possible) > 0 {
		best = play{word: possible[0].Word, gain: possible[0].Score}
		found = true
	}
	steals := r.gen.StealWords(words, pool)
	for _, base := range words {
		cands := steals[base]
		if len(cands) == 0 {
			continue
		}
		gain := cands[0].Score - wordgen.Score(base)
		if !found || gain > best.gain {
			best = play{word: cands[0].Word, base: base, gain: gain}
			found = true
		}
	}
	return best, found
}

func (r *GameRunner) boardScore() int {
	total := 0
	for _, word := range r.state.Words() {
		total += wordgen.Score(word)
	}
	return total
}

// PlayGame plays one full solitaire game from the given seed. The same
// seed and lexicon always produce the same game.
func (r *GameRunner) PlayGame(gameID string, seed [32]byte) (GameResult, error) {
	r.state = game.NewState()
	r.state.SetLexiconFingerprint(r.gen.Lexicon().Fingerprint())
	r.bag = tiles.NewBag(r.ld)
	r.bag.SetRandomizer(frand.NewCustom(seed[:], 1024, 12))
	r.bag.Shuffle()

	turn := 0
	for r.bag.TilesRemaining() > 0 {
		drawn, err := r.bag.Draw(1)
		if err != nil {
			return GameResult{}, err
		}
		if err := r.state.AddLetters(string(drawn)); err != nil {
			return GameResult{}, err
		}
		for {
			best, ok := r.bestPlay()
			if !ok {
				break
			}
			poolBefore := r.state.PoolSnapshot().TilesOn()
			if err := r.state.Play(best.word, best.base); err != nil {
				return GameResult{}, err
			}
			turn++
			if r.logchan != nil {
				r.logchan <- fmt.Sprintf("%v,%v,%v,%v,%v,%v,%v,%v,%v\n",
					gameID, turn, poolBefore, best.word, best.base,
					wordgen.Score(best.word), r.boardScore(),
					r.state.NumWords(), r.bag.TilesRemaining())
			}
		}
	}
	return GameResult{
		GameID:    gameID,
		Words:     r.state.NumWords(),
		Score:     r.boardScore(),
		TilesLeft: r.state.PoolSnapshot().NumTiles(),
	}, nil
}

// FinalWords returns the board from the last finished game.
func (r *GameRunner) FinalWords() []string {
	if r.state == nil {
		return nil
	}
	return r.state.Words()
}
