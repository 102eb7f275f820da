package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/domino14/wordsearch/cache"
	"github.com/domino14/wordsearch/config"
)

// A List is a word list read from disk. Size is only set by puzzle files
// that ask for a particular grid dimension.
type List struct {
	Size  int      `yaml:"size,omitempty"`
	Words []string `yaml:"words"`
}

// ReadText reads one word per line. Blank lines and lines starting with #
// are skipped. Words are returned as written; Catalog normalizes them.
func ReadText(r io.Reader) (*List, error) {
	l := &List{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		l.Words = append(l.Words, word)
	}
	return l, scanner.Err()
}

// ReadYAML reads a puzzle file:
//
//	size: 12
//	words: [apple, banana, cherry]
func ReadYAML(r io.Reader) (*List, error) {
	l := &List{}
	if err := yaml.NewDecoder(r).Decode(l); err != nil {
		if err == io.EOF {
			return l, nil
		}
		return nil, err
	}
	return l, nil
}

// LoadFile reads a word list, choosing the format from the extension.
func LoadFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var l *List
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		l, err = ReadYAML(f)
	default:
		l, err = ReadText(f)
	}
	if err != nil {
		return nil, fmt.Errorf("reading word list %s: %w", path, err)
	}
	return l, nil
}

func cacheLoadFunc(cfg *config.Config, key string) (any, error) {
	return LoadFile(key)
}

// Load is LoadFile through the global object cache. The returned list is
// shared; callers must not modify it.
func Load(cfg *config.Config, path string) (*List, error) {
	obj, err := cache.Load(cfg, path, cacheLoadFunc)
	if err != nil {
		return nil, err
	}
	l, ok := obj.(*List)
	if !ok {
		return nil, fmt.Errorf("cache entry %s is not a word list", path)
	}
	return l, nil
}
