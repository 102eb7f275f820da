package cache

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordsearch/config"
)

func TestLoadCachesObjects(t *testing.T) {
	is := is.New(t)
	CreateGlobalObjectCache()
	cfg := config.DefaultConfig()
	calls := 0
	loader := func(cfg *config.Config, key string) (any, error) {
		calls++
		return []string{key}, nil
	}

	obj, err := Load(cfg, "animals", loader)
	is.NoErr(err)
	is.Equal(obj.([]string), []string{"animals"})
	_, err = Load(cfg, "animals", loader)
	is.NoErr(err)
	is.Equal(calls, 1)

	Evict("animals")
	_, err = Load(cfg, "animals", loader)
	is.NoErr(err)
	is.Equal(calls, 2)
}

func TestLoadErrorNotCached(t *testing.T) {
	is := is.New(t)
	CreateGlobalObjectCache()
	cfg := config.DefaultConfig()
	boom := errors.New("boom")
	calls := 0
	loader := func(cfg *config.Config, key string) (any, error) {
		calls++
		return nil, boom
	}
	_, err := Load(cfg, "k", loader)
	is.Equal(err, boom)
	_, err = Load(cfg, "k", loader)
	is.Equal(err, boom)
	is.Equal(calls, 2)
}
