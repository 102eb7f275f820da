package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordsearch/config"
)

// The cache holds objects that are expensive to build and are reused between
// generations in the same process, such as word lists read from disk while
// the shell is running.

type cache struct {
	sync.Mutex
	objects map[string]any
}

type LoadFunc func(cfg *config.Config, key string) (any, error)

// GlobalObjectCache is created lazily on the first Load.
var GlobalObjectCache *cache

func (c *cache) get(cfg *config.Config, key string, loadFunc LoadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	log.Debug().Str("key", key).Msg("loading into cache")
	obj, err := loadFunc(cfg, key)
	if err != nil {
		return nil, err
	}
	c.objects[key] = obj
	return obj, nil
}

func CreateGlobalObjectCache() {
	GlobalObjectCache = &cache{objects: make(map[string]any)}
}

// Load returns the object cached under key, calling loadFunc to build it
// if it isn't cached yet. Failed loads are not cached.
func Load(cfg *config.Config, key string, loadFunc LoadFunc) (any, error) {
	if GlobalObjectCache == nil {
		CreateGlobalObjectCache()
	}
	return GlobalObjectCache.get(cfg, key, loadFunc)
}

// Evict drops key from the cache so the next Load rebuilds it.
func Evict(key string) {
	if GlobalObjectCache == nil {
		return
	}
	GlobalObjectCache.Lock()
	defer GlobalObjectCache.Unlock()
	delete(GlobalObjectCache.objects, key)
}
