package lexicon

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/grabble/cache"
	"github.com/domino14/grabble/config"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigDataPath, "testdata")
	return cfg
}

func TestGet(t *testing.T) {
	is := is.New(t)
	cache.CreateGlobalObjectCache()
	cfg := testConfig()
	lex, err := Get(cfg, "small")
	is.NoErr(err)
	is.Equal(lex.Name(), "small")
	is.True(lex.HasWord("tack"))

	again, err := Get(cfg, "small")
	is.NoErr(err)
	is.True(lex == again) // second load hits the cache
}

func TestGetMissing(t *testing.T) {
	is := is.New(t)
	cache.CreateGlobalObjectCache()
	cfg := testConfig()
	_, err := Get(cfg, "nonexistent")
	is.True(err != nil)
}

func TestReload(t *testing.T) {
	is := is.New(t)
	cache.CreateGlobalObjectCache()
	cfg := testConfig()
	lex, err := Get(cfg, "pets")
	is.NoErr(err)
	again, err := Reload(cfg, "pets")
	is.NoErr(err)
	is.True(lex != again)
	is.Equal(lex.Fingerprint(), again.Fingerprint())
}

func TestList(t *testing.T) {
	is := is.New(t)
	cfg := testConfig()
	names, err := List(cfg)
	is.NoErr(err)
	is.Equal(names, []string{"pets", "small"})
}
