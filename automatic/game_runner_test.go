package automatic

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/grabble/game"
	"github.com/domino14/grabble/lexicon"
	"github.com/domino14/grabble/tiles"
)

func quickLexicon(t *testing.T, words ...string) *lexicon.Lexicon {
	t.Helper()
	lex, err := lexicon.ScanLexicon(strings.NewReader(strings.Join(words, "\n")), "quick")
	if err != nil {
		t.Fatal(err)
	}
	return lex
}

func english(t *testing.T) *tiles.LetterDistribution {
	t.Helper()
	ld, err := tiles.EnglishLetterDistribution()
	if err != nil {
		t.Fatal(err)
	}
	return ld
}

func TestBestPlayPrefersBiggerGain(t *testing.T) {
	is := is.New(t)
	lex := quickLexicon(t, "cat", "cats", "coats", "dog")
	r := NewGameRunner(nil, lex, english(t))
	r.state = game.NewState()
	is.NoErr(r.state.AddLetters("catsdog"))

	best, ok := r.bestPlay()
	is.True(ok)
	is.Equal(best.word, "coats")
	is.Equal(best.base, "")
	is.Equal(best.gain, 3)
}

func TestBestPlayStealGain(t *testing.T) {
	is := is.New(t)
	lex := quickLexicon(t, "cat", "coats", "dog")
	r := NewGameRunner(nil, lex, english(t))
	r.state = game.NewState()
	is.NoErr(r.state.AddLetters("catos"))
	is.NoErr(r.state.Play("cat", ""))

	// nothing spells from the leftover o and s alone; stealing cat into
	// coats gains two points
	best, ok := r.bestPlay()
	is.True(ok)
	is.Equal(best.word, "coats")
	is.Equal(best.base, "cat")
	is.Equal(best.gain, 2)
}

func TestBestPlayNothing(t *testing.T) {
	is := is.New(t)
	lex := quickLexicon(t, "zebra")
	r := NewGameRunner(nil, lex, english(t))
	r.state = game.NewState()
	is.NoErr(r.state.AddLetters("ttt"))

	_, ok := r.bestPlay()
	is.True(!ok)
}

func TestPlayGameDeterministic(t *testing.T) {
	is := is.New(t)
	lex := quickLexicon(t, "tea", "eat", "ate", "rat", "tar", "art",
		"rate", "tear", "tare", "stone", "tones")
	ld := english(t)
	seed := [32]byte{1, 2, 3, 4}

	a := NewGameRunner(nil, lex, ld)
	resA, err := a.PlayGame("g00001", seed)
	is.NoErr(err)
	b := NewGameRunner(nil, lex, ld)
	resB, err := b.PlayGame("g00001", seed)
	is.NoErr(err)

	is.Equal(resA, resB)
	is.Equal(a.FinalWords(), b.FinalWords())
	// with every tile face up by the end, something got played
	is.True(resA.Words > 0)
	is.True(resA.Score > 0)
}

func TestPlayGamesDifferentSeeds(t *testing.T) {
	is := is.New(t)
	lex := quickLexicon(t, "tea", "eat", "ate", "rat", "tar", "art",
		"rate", "tear", "tare")
	ld := english(t)

	r := NewGameRunner(nil, lex, ld)
	resA, err := r.PlayGame("g00001", [32]byte{1})
	is.NoErr(err)
	resB, err := r.PlayGame("g00002", [32]byte{2})
	is.NoErr(err)
	// the runner resets between games
	is.True(resA.GameID != resB.GameID)
	is.True(resA.Words > 0)
	is.True(resB.Words > 0)
}
