package automatic

// Data collection for solitaire self-play: queue games across worker
// goroutines, aggregate per-game metrics, optionally log every play to
// a CSV file.

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/grabble/config"
	"github.com/domino14/grabble/lexicon"
	"github.com/domino14/grabble/stats"
	"github.com/domino14/grabble/tiles"
)

var (
	GamesPlayed *expvar.Int
	IsPlaying   *expvar.Int
)

func init() {
	GamesPlayed = expvar.NewInt("gamesPlayed")
	IsPlaying = expvar.NewInt("isPlaying")
}

const logFileHeader = "gameID,turn,pool,play,base,score,totalscore,wordsonboard,tilesinbag\n"

type Options struct {
	Lexicon  string
	NumGames int
	Threads  int
	LogFile  string
	SeedFile string
}

// Summary aggregates results across every finished game.
type Summary struct {
	Games       int
	WordsPlayed stats.Statistic
	GameScore   stats.Statistic
	TilesLeft   stats.Statistic
}

func (s *Summary) String() string {
	lowW, highW := s.WordsPlayed.ConfidenceInterval(95)
	lowP, highP := s.GameScore.ConfidenceInterval(95)
	return fmt.Sprintf(
		"%d games: %.1f words per game (95%% CI %.1f to %.1f), "+
			"%.1f points (95%% CI %.1f to %.1f), %.1f tiles left over",
		s.Games, s.WordsPlayed.Mean(), lowW, highW,
		s.GameScore.Mean(), lowP, highP, s.TilesLeft.Mean())
}

// Run plays opts.NumGames solitaire games and blocks until they're
// done or ctx is canceled. Canceling stops feeding new games; games in
// flight finish and are counted.
func Run(ctx context.Context, cfg *config.Config, opts Options) (*Summary, error) {
	if IsPlaying.Value() > 0 {
		return nil, errors.New("games are already being played, please wait till complete")
	}
	if opts.NumGames < 1 {
		return nil, errors.New("need at least one game")
	}
	threads := opts.Threads
	if threads < 1 {
		threads = runtime.NumCPU()
	}
	lexName := opts.Lexicon
	if lexName == "" {
		lexName = cfg.GetString(config.ConfigDefaultLexicon)
	}
	lex, err := lexicon.Get(cfg, lexName)
	if err != nil {
		return nil, err
	}
	ld, err := tiles.EnglishLetterDistribution()
	if err != nil {
		return nil, err
	}

	var seeds [][32]byte
	if opts.SeedFile != "" {
		seeds, err = LoadSeeds(opts.SeedFile)
		if err != nil {
			return nil, err
		}
		if len(seeds) < opts.NumGames {
			return nil, fmt.Errorf("seed file has %d seeds, need %d", len(seeds), opts.NumGames)
		}
	} else {
		seeds, err = GenerateSeeds(opts.NumGames)
		if err != nil {
			return nil, err
		}
	}

	var logChan chan string
	var logWg sync.WaitGroup
	if opts.LogFile != "" {
		logfile, err := os.Create(opts.LogFile)
		if err != nil {
			return nil, err
		}
		logChan = make(chan string, 100)
		logWg.Add(1)
		go func() {
			defer logWg.Done()
			logfile.WriteString(logFileHeader)
			for msg := range logChan {
				logfile.WriteString(msg)
			}
			logfile.Close()
		}()
	}

	log.Debug().Int("games", opts.NumGames).Int("threads", threads).
		Str("lexicon", lexName).Msg("starting autoplay")
	GamesPlayed.Set(0)

	type job struct {
		n    int
		seed [32]byte
	}
	jobs := make(chan job, 100)
	results := make(chan GameResult, 100)
	var wg sync.WaitGroup
	wg.Add(threads)
	for i := 0; i < threads; i++ {
		go func() {
			defer wg.Done()
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			r := NewGameRunner(logChan, lex, ld)
			for j := range jobs {
				res, err := r.PlayGame(fmt.Sprintf("g%05d", j.n), j.seed)
				if err != nil {
					log.Err(err).Int("game", j.n).Msg("game failed")
					continue
				}
				results <- res
				GamesPlayed.Add(1)
			}
		}()
	}

	go func() {
	gameLoop:
		for i := 0; i < opts.NumGames; i++ {
			select {
			case jobs <- job{n: i + 1, seed: seeds[i]}:
			case <-ctx.Done():
				log.Info().Msg("got stop signal, winding down")
				break gameLoop
			}
		}
		close(jobs)
		wg.Wait()
		close(results)
		if logChan != nil {
			close(logChan)
		}
	}()

	summary := &Summary{}
	for res := range results {
		summary.Games++
		summary.WordsPlayed.Push(float64(res.Words))
		summary.GameScore.Push(float64(res.Score))
		summary.TilesLeft.Push(float64(res.TilesLeft))
	}
	logWg.Wait()
	return summary, nil
}
