package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/grabble/config"
	"github.com/domino14/grabble/game"
	"github.com/domino14/grabble/lexicon"
	"github.com/domino14/grabble/tiles"
)

// testController builds a controller with the small test lexicon and
// no terminal attached. Handlers only return responses, so none of
// this needs readline.
func testController(t *testing.T) *ShellController {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigDataPath, "testdata")
	dist, err := tiles.EnglishLetterDistribution()
	if err != nil {
		t.Fatal(err)
	}
	sc := &ShellController{
		config:  cfg,
		aliases: map[string]string{},
		state:   game.NewState(),
		dist:    dist,
	}
	lex, err := lexicon.Get(cfg, "small")
	if err != nil {
		t.Fatal(err)
	}
	sc.setLexicon(lex)
	return sc
}

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"autoplay -file /path/to/log.txt",
			&shellcmd{"autoplay", nil, CmdOptions{"file": []string{"/path/to/log.txt"}}},
			nil},
		{"autoplay stop",
			&shellcmd{"autoplay", []string{"stop"}, CmdOptions{}},
			nil},
		{"autoplay -games 50 -threads 2 -file foo.txt ",
			&shellcmd{"autoplay", nil, CmdOptions{
				"games":   []string{"50"},
				"threads": []string{"2"},
				"file":    []string{"foo.txt"},
			}},
			nil},
		{"play coats cat",
			&shellcmd{"play", []string{"coats", "cat"}, CmdOptions{}},
			nil},
		{"autoplay stop -file",
			nil, errWrongOptionSyntax},
	}
	for _, tc := range cases {
		cmd, err := extractFields(tc.line)
		is.Equal(cmd, tc.expCmd)
		is.Equal(err, tc.expErr)
	}
}

func TestAddDeletePool(t *testing.T) {
	is := is.New(t)
	sc := testController(t)

	r, err := sc.add(&shellcmd{cmd: "add", args: []string{"tacos"}})
	is.NoErr(err)
	is.Equal(r.message, "pool: acost (5 tiles)")

	r, err = sc.delete(&shellcmd{cmd: "delete", args: []string{"os"}})
	is.NoErr(err)
	is.Equal(r.message, "pool: act (3 tiles)")

	_, err = sc.add(&shellcmd{cmd: "add", args: []string{"a1b"}})
	is.True(err != nil)
	is.Equal(sc.state.PoolSnapshot().TilesOn(), "act")

	r, err = sc.pool(&shellcmd{cmd: "pool"})
	is.NoErr(err)
	is.Equal(r.message, "pool: act (3 tiles)")
}

func TestPossibleCommand(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	_, err := sc.add(&shellcmd{args: []string{"cta"}})
	is.NoErr(err)

	r, err := sc.possible(&shellcmd{cmd: "possible"})
	is.NoErr(err)
	expected := "     Word             Score\n" +
		fmt.Sprintf("%3d: %-17s%d\n", 1, "act", 1) +
		fmt.Sprintf("%3d: %-17s%d", 2, "cat", 1)
	is.Equal(r.message, expected)
	is.Equal(len(sc.lastPossible), 2)
}

func TestPossibleNothing(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	_, err := sc.add(&shellcmd{args: []string{"zq"}})
	is.NoErr(err)

	r, err := sc.possible(&shellcmd{cmd: "possible"})
	is.NoErr(err)
	is.True(strings.Contains(r.message, "nothing can be made from the pool"))
}

func TestGenCommand(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	_, err := sc.add(&shellcmd{args: []string{"cat"}})
	is.NoErr(err)
	_, err = sc.play(&shellcmd{args: []string{"cat"}})
	is.NoErr(err)
	_, err = sc.add(&shellcmd{args: []string{"os"}})
	is.NoErr(err)

	r, err := sc.generate(&shellcmd{cmd: "gen"})
	is.NoErr(err)
	is.True(strings.Contains(r.message, "from the pool alone:\n  (nothing)"))
	is.True(strings.Contains(r.message, "steals:\ncat:"))
	// five-letter steals outrank the four-letter ones
	is.True(strings.Index(r.message, "ascot") < strings.Index(r.message, "cast"))
	is.True(strings.Contains(r.message, "tacos"))
}

func TestPlaySteal(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	_, err := sc.add(&shellcmd{args: []string{"cat"}})
	is.NoErr(err)

	r, err := sc.play(&shellcmd{args: []string{"cat"}})
	is.NoErr(err)
	is.True(strings.HasPrefix(r.message, "played cat for 1 point"))
	is.Equal(sc.state.Words(), []string{"cat"})

	_, err = sc.add(&shellcmd{args: []string{"os"}})
	is.NoErr(err)
	r, err = sc.play(&shellcmd{args: []string{"coats", "cat"}})
	is.NoErr(err)
	is.True(strings.HasPrefix(r.message, "stole cat into coats for 3 points"))
	is.Equal(sc.state.Words(), []string{"coats"})
	is.True(sc.state.PoolSnapshot().Empty())
}

func TestPlayRejectsUnknownWord(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	_, err := sc.add(&shellcmd{args: []string{"zzz"}})
	is.NoErr(err)
	_, err = sc.play(&shellcmd{args: []string{"zzz"}})
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "not a word in small"))
}

func TestCheckCommand(t *testing.T) {
	is := is.New(t)
	sc := testController(t)

	r, err := sc.check(&shellcmd{args: []string{"cat", "tacos"}})
	is.NoErr(err)
	is.Equal(r.message, "The play (cat,tacos) is VALID in small")

	r, err = sc.check(&shellcmd{args: []string{"cat", "zzz"}})
	is.NoErr(err)
	is.Equal(r.message, "The play (cat,zzz) is INVALID in small")
}

func TestScoreCommand(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	r, err := sc.score(&shellcmd{args: []string{"CAT", "coats", "zzzz"}})
	is.NoErr(err)
	is.Equal(r.message, "cat: 1\ncoats: 3\nzzzz: 2 (not in small)")
}

func TestWordsCommand(t *testing.T) {
	is := is.New(t)
	sc := testController(t)

	r, err := sc.words(&shellcmd{cmd: "words"})
	is.NoErr(err)
	is.Equal(r.message, "no words on the board")

	_, err = sc.add(&shellcmd{args: []string{"catdogs"}})
	is.NoErr(err)
	_, err = sc.play(&shellcmd{args: []string{"cat"}})
	is.NoErr(err)
	_, err = sc.play(&shellcmd{args: []string{"dogs"}})
	is.NoErr(err)

	r, err = sc.words(&shellcmd{cmd: "words"})
	is.NoErr(err)
	expected := fmt.Sprintf("%3d: %-17s%d\n", 1, "cat", 1) +
		fmt.Sprintf("%3d: %-17s%d\n", 2, "dogs", 2) +
		"total score: 3"
	is.Equal(r.message, expected)
}

func TestPotentialCommand(t *testing.T) {
	is := is.New(t)
	sc := testController(t)

	_, err := sc.potential(&shellcmd{cmd: "potential"})
	is.True(errors.Is(err, errNoBoardWords))

	_, err = sc.add(&shellcmd{args: []string{"cats"}})
	is.NoErr(err)
	_, err = sc.play(&shellcmd{args: []string{"cat"}})
	is.NoErr(err)

	r, err := sc.potential(&shellcmd{cmd: "potential"})
	is.NoErr(err)
	is.True(strings.HasPrefix(r.message, "cat:"))
	is.True(strings.Contains(r.message, "cats"))
	is.True(strings.Contains(r.message, "scat"))
}

func TestInferCommand(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	_, err := sc.add(&shellcmd{args: []string{"ca"}})
	is.NoErr(err)

	r, err := sc.infer(&shellcmd{cmd: "infer"})
	is.NoErr(err)
	// drawing a t opens act and cat
	is.True(strings.Contains(r.message, "with a drawn t:"))
	is.True(strings.Contains(r.message, "act"))
}

func TestExportImportCommands(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	_, err := sc.add(&shellcmd{args: []string{"catos"}})
	is.NoErr(err)
	_, err = sc.play(&shellcmd{args: []string{"cat"}})
	is.NoErr(err)

	r, err := sc.export(&shellcmd{cmd: "export"})
	is.NoErr(err)
	blob := r.message

	sc2 := testController(t)
	r, err = sc2.importState(&shellcmd{args: []string{blob}})
	is.NoErr(err)
	is.Equal(sc2.state.Words(), []string{"cat"})
	is.Equal(sc2.state.PoolSnapshot().TilesOn(), "os")
	// same lexicon on both sides, so no wordlist note
	is.True(!strings.Contains(r.message, "different wordlist"))

	_, err = sc2.importState(&shellcmd{args: []string{"%%%"}})
	is.True(errors.Is(err, game.ErrBadSnapshot))
}

func TestExportToFileAndImport(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	_, err := sc.add(&shellcmd{args: []string{"dog"}})
	is.NoErr(err)

	path := filepath.Join(t.TempDir(), "state.txt")
	r, err := sc.export(&shellcmd{args: []string{path}})
	is.NoErr(err)
	is.True(strings.Contains(r.message, path))

	sc2 := testController(t)
	_, err = sc2.importState(&shellcmd{args: []string{path}})
	is.NoErr(err)
	is.Equal(sc2.state.PoolSnapshot().TilesOn(), "dgo")
}

func TestDrawAndBag(t *testing.T) {
	is := is.New(t)
	sc := testController(t)

	_, err := sc.draw(&shellcmd{args: []string{"5"}})
	is.NoErr(err)
	is.Equal(sc.state.PoolSnapshot().NumTiles(), 5)
	is.Equal(sc.bag.TilesRemaining(), sc.dist.NumTotalTiles()-5)

	r, err := sc.bagState(&shellcmd{cmd: "bag"})
	is.NoErr(err)
	is.True(strings.Contains(r.message, "tiles unseen"))

	// a reset rebuilds the bag from what is visible
	_, err = sc.bagState(&shellcmd{args: []string{"reset"}})
	is.NoErr(err)
	is.Equal(sc.bag.TilesRemaining(), sc.dist.NumTotalTiles()-5)

	_, err = sc.draw(&shellcmd{args: []string{"x"}})
	is.True(err != nil)
}

func TestHistCommand(t *testing.T) {
	is := is.New(t)
	sc := testController(t)

	_, err := sc.hist(&shellcmd{cmd: "hist"})
	is.True(err != nil)

	_, err = sc.add(&shellcmd{args: []string{"catos"}})
	is.NoErr(err)
	_, err = sc.possible(&shellcmd{cmd: "possible"})
	is.NoErr(err)

	r, err := sc.hist(&shellcmd{cmd: "hist"})
	is.NoErr(err)
	is.True(strings.Contains(r.message, "playable words"))
}

func TestQueryLogFile(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	logPath := filepath.Join(t.TempDir(), "queries.yml")

	_, err := sc.queryLog(&shellcmd{args: []string{logPath}})
	is.NoErr(err)
	_, err = sc.add(&shellcmd{args: []string{"cat"}})
	is.NoErr(err)
	_, err = sc.possible(&shellcmd{cmd: "possible"})
	is.NoErr(err)
	_, err = sc.queryLog(&shellcmd{args: []string{"stop"}})
	is.NoErr(err)

	data, err := os.ReadFile(logPath)
	is.NoErr(err)
	is.True(strings.Contains(string(data), "kind: possible"))
	is.True(strings.Contains(string(data), "pool: act"))
	is.True(strings.Contains(string(data), "word: act"))
}

func TestAliasExpansion(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	sc.aliases["g"] = "gen"

	is.Equal(sc.expandAlias("g"), "gen")
	is.Equal(sc.expandAlias("g -max 2"), "gen -max 2")
	is.Equal(sc.expandAlias("pool"), "pool")
}

func TestSetCommand(t *testing.T) {
	is := is.New(t)
	sc := testController(t)

	r, err := sc.set(&shellcmd{cmd: "set"})
	is.NoErr(err)
	is.True(strings.Contains(r.message, "data-path: testdata"))

	r, err = sc.set(&shellcmd{args: []string{"threads", "2"}})
	is.NoErr(err)
	is.Equal(r.message, "set threads to 2")
	is.Equal(sc.config.GetInt(config.ConfigThreads), 2)

	_, err = sc.set(&shellcmd{args: []string{"bogus", "x"}})
	is.True(err != nil)

	_, err = sc.set(&shellcmd{args: []string{"threads", "zero"}})
	is.True(err != nil)
}

func TestNoLexiconErrors(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigDataPath, "testdata")
	dist, err := tiles.EnglishLetterDistribution()
	is.NoErr(err)
	sc := &ShellController{
		config:  cfg,
		aliases: map[string]string{},
		state:   game.NewState(),
		dist:    dist,
	}

	_, err = sc.possible(&shellcmd{cmd: "possible"})
	is.True(errors.Is(err, errNoLexicon))
	_, err = sc.play(&shellcmd{args: []string{"cat"}})
	is.True(errors.Is(err, errNoLexicon))
	_, err = sc.check(&shellcmd{args: []string{"cat"}})
	is.True(errors.Is(err, errNoLexicon))
}

func TestLexicaCommand(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	r, err := sc.lexica(&shellcmd{cmd: "lexica"})
	is.NoErr(err)
	is.True(strings.Contains(r.message, "* small"))
}

func TestLexiconInfoCommand(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	r, err := sc.lexiconInfo(&shellcmd{cmd: "lexicon"})
	is.NoErr(err)
	is.True(strings.Contains(r.message, "lexicon: small"))
	is.True(strings.Contains(r.message, "words: 15"))
}

func TestHelpTopics(t *testing.T) {
	is := is.New(t)
	r, err := usage("standard")
	is.NoErr(err)
	is.True(strings.Contains(r.message, "grabble"))

	r, err = usageTopic("play")
	is.NoErr(err)
	is.True(strings.Contains(r.message, "steal"))

	_, err = usageTopic("frobnicate")
	is.True(err != nil)
}

func TestExecutorUnknownCommand(t *testing.T) {
	is := is.New(t)
	sc := testController(t)
	_, err := sc.executor(&shellcmd{cmd: "frobnicate"})
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "not found"))
}
