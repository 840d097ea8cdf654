package cache

import (
	"io/fs"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/grabble/config"
)

// The cache is a package used for large objects that we only want to
// build once per process; lexicon indexes and letter distributions,
// for example. Keys carry a per-type prefix so different object kinds
// can share the one cache.

type cache struct {
	sync.Mutex
	objects map[string]interface{}
}

type loadFunc func(cfg *config.Config, key string) (interface{}, error)

// GlobalObjectCache is our global object cache, of course.
var GlobalObjectCache *cache

func (c *cache) load(cfg *config.Config, key string, loadFunc loadFunc) error {
	log.Debug().Str("key", key).Msg("loading into cache")

	obj, err := loadFunc(cfg, key)
	if err != nil {
		return err
	}
	c.objects[key] = obj

	return nil
}

func (c *cache) get(cfg *config.Config, key string, loadFunc loadFunc) (interface{}, error) {

	var ok bool
	var obj interface{}
	c.Lock()
	defer c.Unlock()
	if obj, ok = c.objects[key]; !ok {
		err := c.load(cfg, key, loadFunc)
		if err != nil {
			return nil, err
		}
		return c.objects[key], nil
	}
	log.Debug().Str("key", key).Msg("getting obj from cache")

	return obj, nil
}

func (c *cache) expire(key string) {
	c.Lock()
	defer c.Unlock()
	delete(c.objects, key)
}

func CreateGlobalObjectCache() {
	GlobalObjectCache = &cache{objects: make(map[string]interface{})}
}

func Load(cfg *config.Config, name string, loadFunc loadFunc) (interface{}, error) {
	if GlobalObjectCache == nil {
		CreateGlobalObjectCache()
	}
	return GlobalObjectCache.get(cfg, name, loadFunc)
}

// Expire drops a cached object so the next Load rebuilds it. Used when
// a wordlist file changes on disk underneath us.
func Expire(name string) {
	if GlobalObjectCache == nil {
		return
	}
	GlobalObjectCache.expire(name)
}

// Open opens a data file for a cache load function.
func Open(filename string) (fs.File, error) {
	log.Debug().Str("filename", filename).Msg("cache-open")
	return os.Open(filename)
}
