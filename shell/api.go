package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/grabble/automatic"
	"github.com/domino14/grabble/config"
	"github.com/domino14/grabble/game"
	"github.com/domino14/grabble/lexicon"
	"github.com/domino14/grabble/tiles"
	"github.com/domino14/grabble/wordgen"
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) Int(key string) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) Bool(key string) bool {
	v := c[key]
	if len(v) == 0 {
		return false
	}
	return strings.ToLower(v[0]) == "true"
}

func (c CmdOptions) StringArray(key string) []string {
	return c[key]
}

func msg(message string) *Response {
	return &Response{message: message}
}

func candidateTable(cands []wordgen.Candidate) string {
	var sb strings.Builder
	sb.WriteString("     Word             Score\n")
	for i, c := range cands {
		fmt.Fprintf(&sb, "%3d: %-17s%d\n", i+1, c.Word, c.Score)
	}
	return sb.String()
}

// perWordTable renders one candidate table per board word, in board
// order. Words whose slice is empty get the note instead of a table.
func perWordTable(order []string, res map[string][]wordgen.Candidate, emptyNote string) string {
	var sb strings.Builder
	for _, w := range order {
		fmt.Fprintf(&sb, "%v:\n", w)
		cands := res[w]
		if len(cands) == 0 {
			sb.WriteString("  (" + emptyNote + ")\n")
			continue
		}
		sb.WriteString(candidateTable(cands))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (sc *ShellController) poolDisplay() string {
	pool := sc.state.PoolSnapshot()
	if pool.Empty() {
		return "the pool is empty"
	}
	plural := "s"
	if pool.NumTiles() == 1 {
		plural = ""
	}
	return fmt.Sprintf("pool: %v (%d tile%s)", pool.TilesOn(), pool.NumTiles(), plural)
}

func (sc *ShellController) stateDisplay() string {
	var sb strings.Builder
	sb.WriteString(sc.poolDisplay())
	words := sc.state.Words()
	if len(words) > 0 {
		fmt.Fprintf(&sb, "\nwords: %v", strings.Join(words, " "))
	}
	return sb.String()
}

func (sc *ShellController) lexica(cmd *shellcmd) (*Response, error) {
	names, err := lexicon.List(sc.config)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return msg("no wordlists found in " + sc.config.WordlistPath()), nil
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "wordlists in %v:\n", sc.config.WordlistPath())
	for _, name := range names {
		marker := "  "
		if sc.lex != nil && name == sc.lex.Name() {
			marker = "* "
		}
		sb.WriteString(marker + name + "\n")
	}
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("need the name, path, or URL of a wordlist")
	}
	if sc.autoplaying() {
		return nil, errGrabbleBusy
	}
	src := cmd.args[0]
	var lex *lexicon.Lexicon
	var err error
	switch {
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		lex, err = sc.loadRemote(src)
	case strings.ContainsRune(src, os.PathSeparator) || strings.HasSuffix(src, ".txt"):
		lex, err = lexicon.LoadLexicon(sc.config, src)
	default:
		lex, err = lexicon.Get(sc.config, src)
	}
	if err != nil {
		return nil, err
	}

	warn := ""
	fp := sc.state.LexiconFingerprint()
	if sc.state.NumWords() > 0 && fp != 0 && fp != lex.Fingerprint() {
		warn = "Note: the words on the board were checked against a different wordlist.\n"
	}
	sc.setLexicon(lex)
	return msg(fmt.Sprintf("%vLoaded %v (%d words)", warn, lex.Name(), lex.NumWords())), nil
}

// loadRemote downloads a wordlist into the wordlist directory, then
// loads it like any local one.
func (sc *ShellController) loadRemote(url string) (*lexicon.Lexicon, error) {
	name := strings.TrimSuffix(path.Base(url), ".txt")
	if name == "" || name == "." || name == "/" {
		return nil, fmt.Errorf("cannot derive a wordlist name from %v", url)
	}
	log.Info().Str("url", url).Str("name", name).Msg("fetching remote wordlist")
	var body []byte
	err := retry.Do(
		func() error {
			resp, err := http.Get(url)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("fetching %v: %v", url, resp.Status)
			}
			body, err = io.ReadAll(resp.Body)
			return err
		},
		retry.Attempts(3),
		retry.Delay(time.Second),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}
	dir := sc.config.WordlistPath()
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if err = os.WriteFile(filepath.Join(dir, name+".txt"), body, 0o644); err != nil {
		return nil, err
	}
	return lexicon.Reload(sc.config, name)
}

func (sc *ShellController) lexiconInfo(cmd *shellcmd) (*Response, error) {
	if sc.lex == nil {
		return nil, errNoLexicon
	}
	return msg(fmt.Sprintf("lexicon: %v\nwords: %d\nfingerprint: %x",
		sc.lex.Name(), sc.lex.NumWords(), sc.lex.Fingerprint())), nil
}

func (sc *ShellController) add(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("which letters should go into the pool?")
	}
	letters := strings.Join(cmd.args, "")
	if err := sc.state.AddLetters(letters); err != nil {
		return nil, err
	}
	sc.bag = nil
	return msg(sc.poolDisplay()), nil
}

func (sc *ShellController) delete(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("which letters should leave the pool?")
	}
	letters := strings.Join(cmd.args, "")
	if err := sc.state.DeleteLetters(letters); err != nil {
		return nil, err
	}
	sc.bag = nil
	return msg(sc.poolDisplay()), nil
}

func (sc *ShellController) pool(cmd *shellcmd) (*Response, error) {
	return msg(sc.poolDisplay()), nil
}

func (sc *ShellController) words(cmd *shellcmd) (*Response, error) {
	words := sc.state.Words()
	if len(words) == 0 {
		return msg("no words on the board"), nil
	}
	var sb strings.Builder
	total := 0
	for i, w := range words {
		s := wordgen.Score(w)
		total += s
		fmt.Fprintf(&sb, "%3d: %-17s%d\n", i+1, w, s)
	}
	fmt.Fprintf(&sb, "total score: %d", total)
	return msg(sb.String()), nil
}

func (sc *ShellController) generate(cmd *shellcmd) (*Response, error) {
	if sc.lex == nil {
		return nil, errNoLexicon
	}
	pool := sc.state.PoolSnapshot()
	words := sc.state.Words()
	possible := sc.gen.PossibleWords(pool)
	sc.lastPossible = possible

	var sb strings.Builder
	sb.WriteString(sc.poolDisplay() + "\n")
	sb.WriteString("from the pool alone:\n")
	if len(possible) == 0 {
		sb.WriteString("  (nothing)\n")
	} else {
		sb.WriteString(candidateTable(possible))
	}
	var steals map[string][]wordgen.Candidate
	if len(words) > 0 {
		steals = sc.gen.StealWords(words, pool)
		sb.WriteString("steals:\n")
		sb.WriteString(perWordTable(words, steals, "no steals") + "\n")
	}
	sc.writeQueryLog("gen", possible, steals)
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}

func (sc *ShellController) possible(cmd *shellcmd) (*Response, error) {
	if sc.lex == nil {
		return nil, errNoLexicon
	}
	pool := sc.state.PoolSnapshot()
	cands := sc.gen.PossibleWords(pool)
	sc.lastPossible = cands
	sc.writeQueryLog("possible", cands, nil)
	if len(cands) == 0 {
		return msg(fmt.Sprintf("nothing can be made from the pool (%v)", pool.TilesOn())), nil
	}
	return msg(strings.TrimRight(candidateTable(cands), "\n")), nil
}

func (sc *ShellController) potential(cmd *shellcmd) (*Response, error) {
	if sc.lex == nil {
		return nil, errNoLexicon
	}
	words := sc.state.Words()
	if len(words) == 0 {
		return nil, errNoBoardWords
	}
	res := sc.gen.PotentialWords(words, sc.state.PoolSnapshot())
	sc.writeQueryLog("potential", nil, res)
	return msg(perWordTable(words, res, "no single-letter extensions")), nil
}

func (sc *ShellController) steals(cmd *shellcmd) (*Response, error) {
	if sc.lex == nil {
		return nil, errNoLexicon
	}
	words := sc.state.Words()
	if len(words) == 0 {
		return nil, errNoBoardWords
	}
	res := sc.gen.StealWords(words, sc.state.PoolSnapshot())
	sc.writeQueryLog("steals", nil, res)
	return msg(perWordTable(words, res, "no steals")), nil
}

func (sc *ShellController) infer(cmd *shellcmd) (*Response, error) {
	if sc.lex == nil {
		return nil, errNoLexicon
	}
	maxLetters, err := cmd.options.IntDefault("max", wordgen.DefaultMaxHypotheses)
	if err != nil {
		return nil, err
	}
	pool := sc.state.PoolSnapshot()
	res := sc.gen.InferredWords(sc.state.Words(), pool, maxLetters)
	sc.writeQueryLog("infer", nil, res)
	if len(res) == 0 {
		return msg("no hypothetical letter opens anything up"), nil
	}
	var sb strings.Builder
	for _, c := range sc.dist.ByFrequency() {
		cands, ok := res[string(c)]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "with a drawn %c:\n", c)
		sb.WriteString(candidateTable(cands))
	}
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 || len(cmd.args) > 2 {
		return nil, errors.New("usage: play <word> [stolen-word]")
	}
	if sc.lex == nil {
		return nil, errNoLexicon
	}
	word := strings.ToLower(cmd.args[0])
	base := ""
	if len(cmd.args) == 2 {
		base = strings.ToLower(cmd.args[1])
	}
	if !sc.lex.HasWord(word) {
		return nil, fmt.Errorf("%v is not a word in %v", word, sc.lex.Name())
	}
	if err := sc.state.Play(word, base); err != nil {
		return nil, err
	}
	score := wordgen.Score(word)
	pts := "points"
	if score == 1 {
		pts = "point"
	}
	verb := "played"
	if base != "" {
		verb = "stole " + base + " into"
	}
	return msg(fmt.Sprintf("%v %v for %d %v\n%v", verb, word, score, pts, sc.stateDisplay())), nil
}

func (sc *ShellController) check(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("please provide a word or space-separated list of words to check")
	}
	if sc.lex == nil {
		return nil, errNoLexicon
	}
	playValid := true
	wordsFriendly := []string{}
	for _, w := range cmd.args {
		wordFriendly := strings.Trim(strings.ToLower(w), ",")
		wordsFriendly = append(wordsFriendly, wordFriendly)
		if !sc.lex.HasWord(wordFriendly) {
			playValid = false
		}
	}
	validStr := "VALID"
	if !playValid {
		validStr = "INVALID"
	}
	return msg(fmt.Sprintf("The play (%v) is %v in %v",
		strings.Join(wordsFriendly, ","), validStr, sc.lex.Name())), nil
}

func (sc *ShellController) score(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("please provide one or more words to score")
	}
	lines := lo.Map(cmd.args, func(w string, _ int) string {
		w = strings.ToLower(w)
		line := fmt.Sprintf("%v: %d", w, wordgen.Score(w))
		if sc.lex != nil && !sc.lex.HasWord(w) {
			line += " (not in " + sc.lex.Name() + ")"
		}
		return line
	})
	return msg(strings.Join(lines, "\n")), nil
}

// ensureBag builds a bag holding the full distribution minus every
// tile already visible in the pool or on the board.
func (sc *ShellController) ensureBag() error {
	if sc.bag != nil {
		return nil
	}
	bag := tiles.NewBag(sc.dist)
	visible := sc.state.PoolSnapshot().TilesOn() + strings.Join(sc.state.Words(), "")
	if visible != "" {
		if err := bag.RemoveTiles(visible); err != nil {
			return fmt.Errorf("the board does not fit the tile distribution: %w", err)
		}
	}
	bag.Shuffle()
	sc.bag = bag
	return nil
}

func (sc *ShellController) draw(cmd *shellcmd) (*Response, error) {
	n := 1
	if len(cmd.args) > 0 {
		var err error
		n, err = strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, err
		}
		if n < 1 {
			return nil, errors.New("draw at least one tile")
		}
	}
	if err := sc.ensureBag(); err != nil {
		return nil, err
	}
	drawn, err := sc.bag.Draw(n)
	if err != nil {
		return nil, err
	}
	if err := sc.state.AddLetters(string(drawn)); err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("drew %v\n%v", string(drawn), sc.poolDisplay())), nil
}

func (sc *ShellController) bagState(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) > 0 {
		if cmd.args[0] != "reset" {
			return nil, errors.New("the only argument to bag is `reset`")
		}
		sc.bag = nil
	}
	if err := sc.ensureBag(); err != nil {
		return nil, err
	}
	unseen := tiles.NewPool()
	for _, c := range sc.bag.Peek() {
		unseen.Add(c)
	}
	return msg(fmt.Sprintf("%d tiles unseen: %v",
		sc.bag.TilesRemaining(), unseen.TilesOn())), nil
}

func (sc *ShellController) hist(cmd *shellcmd) (*Response, error) {
	if len(sc.lastPossible) == 0 {
		return nil, errors.New("no word list to plot; run `possible` or `gen` first")
	}
	lengths := lo.Map(sc.lastPossible, func(c wordgen.Candidate, _ int) float64 {
		return float64(len(c.Word))
	})
	if lo.Min(lengths) == lo.Max(lengths) {
		return msg(fmt.Sprintf("all %d playable words are %d letters long",
			len(lengths), int(lengths[0]))), nil
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "lengths of %d playable words:\n", len(lengths))
	h := histogram.Hist(9, lengths)
	if err := histogram.Fprint(&buf, h, histogram.Linear(40)); err != nil {
		return nil, err
	}
	return msg(strings.TrimRight(buf.String(), "\n")), nil
}

func (sc *ShellController) export(cmd *shellcmd) (*Response, error) {
	blob, err := sc.state.Export()
	if err != nil {
		return nil, err
	}
	if len(cmd.args) > 0 {
		filename := cmd.args[0]
		if err := os.WriteFile(filename, []byte(blob+"\n"), 0o644); err != nil {
			return nil, err
		}
		return msg("saved the game state to " + filename), nil
	}
	return msg(blob), nil
}

func (sc *ShellController) importState(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("please provide a state blob or a file containing one")
	}
	blob := cmd.args[0]
	if data, err := os.ReadFile(blob); err == nil {
		blob = string(data)
	}
	st, err := game.ImportState(blob)
	if err != nil {
		return nil, err
	}
	warn := ""
	if sc.lex != nil {
		if st.LexiconFingerprint() == 0 {
			st.SetLexiconFingerprint(sc.lex.Fingerprint())
		} else if st.LexiconFingerprint() != sc.lex.Fingerprint() {
			warn = "Note: this state was saved with a different wordlist than " +
				sc.lex.Name() + ".\n"
			log.Warn().Msg("imported state fingerprint differs from the loaded lexicon")
		}
	}
	sc.state = st
	sc.bag = nil
	sc.lastPossible = nil
	return msg(warn + sc.stateDisplay()), nil
}

type queryLogEntry struct {
	Time    string                         `yaml:"time"`
	Kind    string                         `yaml:"kind"`
	Pool    string                         `yaml:"pool"`
	Words   []string                       `yaml:"words,omitempty"`
	Found   []wordgen.Candidate            `yaml:"found,omitempty"`
	PerWord map[string][]wordgen.Candidate `yaml:"perWord,omitempty"`
}

func (sc *ShellController) writeQueryLog(kind string, found []wordgen.Candidate,
	perWord map[string][]wordgen.Candidate) {

	if sc.logFile == nil {
		return
	}
	entry := queryLogEntry{
		Time:    time.Now().Format(time.RFC3339),
		Kind:    kind,
		Pool:    sc.state.PoolSnapshot().TilesOn(),
		Words:   sc.state.Words(),
		Found:   found,
		PerWord: perWord,
	}
	out, err := yaml.Marshal(entry)
	if err != nil {
		log.Err(err).Msg("marshalling query log entry")
		return
	}
	if _, err = sc.logFile.WriteString("---\n" + string(out)); err != nil {
		log.Err(err).Msg("writing query log entry")
	}
}

func (sc *ShellController) queryLog(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		if sc.logFile == nil {
			return msg("query logging is off; use `log <filename>` to start"), nil
		}
		return msg("logging queries to " + sc.logFile.Name()), nil
	}
	if cmd.args[0] == "stop" {
		if sc.logFile == nil {
			return nil, errors.New("query logging is not on")
		}
		name := sc.logFile.Name()
		if err := sc.logFile.Close(); err != nil {
			return nil, err
		}
		sc.logFile = nil
		return msg("stopped logging to " + name), nil
	}
	if sc.logFile != nil {
		return nil, errors.New("already logging to " + sc.logFile.Name() +
			"; run `log stop` first")
	}
	f, err := os.Create(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.logFile = f
	return msg("logging queries to " + f.Name()), nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	return sc.handleAutoplay(cmd.args, cmd.options)
}

func (sc *ShellController) handleAutoplay(args []string, options CmdOptions) (*Response, error) {
	if len(args) > 0 {
		if args[0] != "stop" {
			return nil, errors.New("the only argument to autoplay is `stop`")
		}
		if !sc.autoplaying() {
			return nil, errors.New("autoplay is not running")
		}
		sc.autoplayCancel()
		return msg("stopping the game runner..."), nil
	}
	if sc.autoplaying() {
		return nil, errGrabbleBusy
	}
	numGames, err := options.IntDefault("games", 1000)
	if err != nil {
		return nil, err
	}
	threads, err := options.IntDefault("threads", sc.config.GetInt(config.ConfigThreads))
	if err != nil {
		return nil, err
	}
	opts := automatic.Options{
		Lexicon:  options.String("lexicon"),
		NumGames: numGames,
		Threads:  threads,
		LogFile:  options.String("file"),
		SeedFile: options.String("seedfile"),
	}
	sc.autoplayCtx, sc.autoplayCancel = context.WithCancel(context.Background())
	go func() {
		summary, err := automatic.Run(sc.autoplayCtx, sc.config, opts)
		if err != nil {
			sc.showError(err)
			return
		}
		sc.showMessage(summary.String())
	}()
	return msg("automatic game runner started; `autoplay stop` cancels it"), nil
}

var settableKeys = []string{
	config.ConfigDataPath,
	config.ConfigDefaultLexicon,
	config.ConfigThreads,
	config.ConfigDebug,
}

// Set applies a session setting and returns the value it ended up
// with. Settings changed here are not persisted; see setconfig.
func (sc *ShellController) Set(key string, values []string) (string, error) {
	if !lo.Contains(settableKeys, key) {
		return "", fmt.Errorf("cannot set the key %v", key)
	}
	value := strings.Join(values, " ")
	switch key {
	case config.ConfigThreads:
		t, err := strconv.Atoi(value)
		if err != nil {
			return "", err
		}
		if t < 1 {
			return "", errors.New("threads must be a positive number")
		}
		sc.config.Set(key, t)
		if sc.lex != nil {
			sc.gen = wordgen.NewGenerator(sc.lex, sc.dist, t)
		}
	case config.ConfigDebug:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return "", err
		}
		sc.config.Set(key, b)
		lvl := zerolog.InfoLevel
		if b {
			lvl = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(lvl)
	default:
		sc.config.Set(key, value)
	}
	return value, nil
}

func (sc *ShellController) settingsDisplay() string {
	settings := sc.config.SanitizedSettings()
	keys := lo.Keys(settings)
	sort.Strings(keys)
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%v: %v\n", k, settings[k])
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return msg(sc.settingsDisplay()), nil
	}
	opt := cmd.args[0]
	if len(cmd.args) == 1 {
		val := sc.config.Get(opt)
		if val == nil {
			return nil, fmt.Errorf("there is no setting named %v", opt)
		}
		return msg(fmt.Sprintf("%v", val)), nil
	}
	ret, err := sc.Set(opt, cmd.args[1:])
	if err != nil {
		return nil, err
	}
	return msg("set " + opt + " to " + ret), nil
}

func (sc *ShellController) setConfig(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil || len(cmd.args) < 2 {
		return nil, errors.New("usage: setconfig <key> <value>")
	}
	key := cmd.args[0]
	value := cmd.args[1]

	sc.config.Set(key, value)
	err := sc.config.Write()
	if err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}
	return msg(fmt.Sprintf("set config %s to %s and saved to file", key, value)), nil
}

func (sc *ShellController) alias(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		if len(sc.aliases) == 0 {
			return msg("No aliases defined"), nil
		}
		names := lo.Keys(sc.aliases)
		sort.Strings(names)

		var result strings.Builder
		result.WriteString("Defined aliases:\n")
		for _, name := range names {
			fmt.Fprintf(&result, "  %s = %s\n", name, sc.aliases[name])
		}
		return msg(strings.TrimRight(result.String(), "\n")), nil
	}

	subcommand := cmd.args[0]

	switch subcommand {
	case "set":
		if len(cmd.args) < 3 {
			return nil, errors.New("usage: alias set <name> <command>")
		}
		name := cmd.args[1]

		// Reconstruct the full command from args and options
		commandParts := cmd.args[2:]
		for opt, values := range cmd.options {
			for _, val := range values {
				commandParts = append(commandParts, "-"+opt, val)
			}
		}
		command := strings.Join(commandParts, " ")

		sc.aliases[name] = command
		sc.config.Set(config.ConfigAliases, sc.aliases)
		err := sc.config.Write()
		if err != nil {
			return nil, fmt.Errorf("failed to save alias: %w", err)
		}
		return msg(fmt.Sprintf("Alias '%s' set to: %s", name, command)), nil

	case "delete", "remove", "rm":
		if len(cmd.args) < 2 {
			return nil, errors.New("usage: alias delete <name>")
		}
		name := cmd.args[1]

		if _, exists := sc.aliases[name]; !exists {
			return nil, fmt.Errorf("alias '%s' not found", name)
		}
		delete(sc.aliases, name)
		sc.config.Set(config.ConfigAliases, sc.aliases)
		err := sc.config.Write()
		if err != nil {
			return nil, fmt.Errorf("failed to save config: %w", err)
		}
		return msg(fmt.Sprintf("Alias '%s' deleted", name)), nil

	case "show":
		if len(cmd.args) < 2 {
			return nil, errors.New("usage: alias show <name>")
		}
		name := cmd.args[1]

		if command, exists := sc.aliases[name]; exists {
			return msg(fmt.Sprintf("%s = %s", name, command)), nil
		}
		return nil, fmt.Errorf("alias '%s' not found", name)

	case "list":
		return sc.alias(&shellcmd{cmd: "alias"})

	default:
		return nil, fmt.Errorf("unknown subcommand '%s'. Valid: set, delete, show, list", subcommand)
	}
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return usage("standard")
	}
	return usageTopic(cmd.args[0])
}
