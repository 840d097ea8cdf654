package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/grabble/automatic"
	"github.com/domino14/grabble/config"
	"github.com/domino14/grabble/game"
	"github.com/domino14/grabble/lexicon"
	"github.com/domino14/grabble/tiles"
	"github.com/domino14/grabble/wordgen"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong option syntax")
	errGrabbleBusy       = errors.New("please wait for the current operation to finish")
	errNoLexicon         = errors.New("no lexicon is loaded; use the `load` command first")
	errNoBoardWords      = errors.New("there are no words on the board yet")
)

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

// extractFields splits a command line into the command, its positional
// arguments, and -key value option pairs. Every option requires a
// value.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}

	lastWasOption := false
	lastOption := ""
	for _, field := range fields[1:] {
		if strings.HasPrefix(field, "-") {
			lastWasOption = true
			lastOption = field[1:]
			continue
		}
		if lastWasOption {
			options[lastOption] = append(options[lastOption], field)
			lastWasOption = false
		} else {
			args = append(args, field)
		}
	}
	if lastWasOption {
		return nil, errWrongOptionSyntax
	}

	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

type ShellController struct {
	l        *readline.Instance
	config   *config.Config
	execPath string

	aliases map[string]string

	state *game.State
	lex   *lexicon.Lexicon
	dist  *tiles.LetterDistribution
	gen   *wordgen.Generator
	bag   *tiles.Bag

	// last pool-word query, kept around for the hist command
	lastPossible []wordgen.Candidate

	logFile *os.File

	autoplayCtx    context.Context
	autoplayCancel context.CancelFunc
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config, execPath string) *ShellController {
	dist, err := tiles.EnglishLetterDistribution()
	if err != nil {
		panic(err)
	}

	sc := &ShellController{
		config:   cfg,
		execPath: execPath,
		aliases:  map[string]string{},
		state:    game.NewState(),
		dist:     dist,
	}
	for name, command := range cfg.GetStringMapString(config.ConfigAliases) {
		sc.aliases[name] = command
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mgrabble>\033[0m ",
		HistoryFile:     filepath.Join(os.TempDir(), "readline-grabble.tmp"),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
		AutoComplete:        NewShellCompleter(sc),
	})
	if err != nil {
		panic(err)
	}
	sc.l = l

	defaultLex := cfg.GetString(config.ConfigDefaultLexicon)
	if defaultLex != "" {
		lex, err := lexicon.Get(cfg, defaultLex)
		if err != nil {
			log.Warn().Err(err).Str("lexicon", defaultLex).
				Msg("could not preload the default lexicon")
		} else {
			sc.setLexicon(lex)
		}
	}
	return sc
}

// setLexicon swaps the active lexicon and rebuilds everything derived
// from it. An empty board adopts the new lexicon's fingerprint; a
// board with words keeps the fingerprint it was checked under.
func (sc *ShellController) setLexicon(lex *lexicon.Lexicon) {
	sc.lex = lex
	sc.gen = wordgen.NewGenerator(lex, sc.dist, sc.config.GetInt(config.ConfigThreads))
	if sc.state.NumWords() == 0 || sc.state.LexiconFingerprint() == 0 {
		sc.state.SetLexiconFingerprint(lex.Fingerprint())
	}
	log.Debug().Str("lexicon", lex.Name()).Int("words", lex.NumWords()).
		Msg("lexicon selected")
}

func (sc *ShellController) showMessage(msg string) {
	writeln(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// autoplaying reports whether a background game runner is going.
func (sc *ShellController) autoplaying() bool {
	return automatic.IsPlaying.Value() > 0
}

// expandAlias rewrites the leading command word if the user defined an
// alias for it. Expansion happens once; aliases do not chain.
func (sc *ShellController) expandAlias(line string) string {
	name, rest, _ := strings.Cut(line, " ")
	command, ok := sc.aliases[name]
	if !ok {
		return line
	}
	log.Debug().Str("alias", name).Str("command", command).Msg("expanding alias")
	if rest == "" {
		return command
	}
	return command + " " + rest
}

func (sc *ShellController) executor(cmd *shellcmd) (*Response, error) {
	switch cmd.cmd {
	case "lexica":
		return sc.lexica(cmd)
	case "load":
		return sc.load(cmd)
	case "lexicon":
		return sc.lexiconInfo(cmd)
	case "add":
		return sc.add(cmd)
	case "delete", "remove":
		return sc.delete(cmd)
	case "pool":
		return sc.pool(cmd)
	case "words":
		return sc.words(cmd)
	case "gen":
		return sc.generate(cmd)
	case "possible":
		return sc.possible(cmd)
	case "potential":
		return sc.potential(cmd)
	case "steals":
		return sc.steals(cmd)
	case "infer":
		return sc.infer(cmd)
	case "play":
		return sc.play(cmd)
	case "check":
		return sc.check(cmd)
	case "score":
		return sc.score(cmd)
	case "draw":
		return sc.draw(cmd)
	case "bag":
		return sc.bagState(cmd)
	case "hist":
		return sc.hist(cmd)
	case "export":
		return sc.export(cmd)
	case "import":
		return sc.importState(cmd)
	case "log":
		return sc.queryLog(cmd)
	case "script":
		return sc.script(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	case "set":
		return sc.set(cmd)
	case "setconfig":
		return sc.setConfig(cmd)
	case "alias":
		return sc.alias(cmd)
	case "help":
		return sc.help(cmd)
	default:
		return nil, fmt.Errorf("command %v not found", strconv.Quote(cmd.cmd))
	}
}

func (sc *ShellController) execLine(line string) {
	line = sc.expandAlias(line)
	cmd, err := extractFields(line)
	if err != nil {
		if errors.Is(err, errNoData) {
			return
		}
		sc.showError(err)
		return
	}
	resp, err := sc.executor(cmd)
	if err != nil {
		sc.showError(err)
		return
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "exit" || line == "quit" || line == "bye" {
			sig <- syscall.SIGINT
			break
		}
		sc.execLine(line)
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Execute runs a single command line; used when the binary is invoked
// with arguments instead of interactively. The caller signals the
// shutdown.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	defer sc.l.Close()
	sc.execLine(line)
}

func (sc *ShellController) Cleanup() {
	if sc.autoplayCancel != nil {
		sc.autoplayCancel()
	}
	if sc.logFile != nil {
		err := sc.logFile.Close()
		if err != nil {
			log.Err(err).Msg("closing query log")
		}
	}
}
