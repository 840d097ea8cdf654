package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/grabble/cache"
	"github.com/domino14/grabble/config"
)

const (
	CacheKeyPrefix = "lexicon:"
)

// CacheLoadFunc is the function that loads an object into the global cache.
func CacheLoadFunc(cfg *config.Config, key string) (interface{}, error) {
	lexiconName := strings.TrimPrefix(key, CacheKeyPrefix)
	return LoadLexicon(cfg, filepath.Join(cfg.WordlistPath(), lexiconName+".txt"))
}

func LoadLexicon(cfg *config.Config, filename string) (*Lexicon, error) {
	log.Debug().Msgf("Loading %v ...", filename)
	file, err := cache.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	lexfile := filepath.Base(filename)
	lexname, found := strings.CutSuffix(lexfile, ".txt")
	if !found {
		return nil, errors.New("filename not in correct format")
	}
	return ScanLexicon(file, lexname)
}

// Get loads a named lexicon from the cache or from a file.
func Get(cfg *config.Config, name string) (*Lexicon, error) {
	key := CacheKeyPrefix + name
	obj, err := cache.Load(cfg, key, CacheLoadFunc)
	if err != nil {
		return nil, err
	}
	ret, ok := obj.(*Lexicon)
	if !ok {
		return nil, errors.New("could not read lexicon from file")
	}
	return ret, nil
}

// Reload drops any cached copy and rebuilds the lexicon from disk.
func Reload(cfg *config.Config, name string) (*Lexicon, error) {
	cache.Expire(CacheKeyPrefix + name)
	return Get(cfg, name)
}

// List returns the names of the wordlists available on disk, in
// filename order.
func List(cfg *config.Config) ([]string, error) {
	entries, err := os.ReadDir(cfg.WordlistPath())
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if name, found := strings.CutSuffix(entry.Name(), ".txt"); found {
			names = append(names, name)
		}
	}
	return names, nil
}
