package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/wordsearch/config"
)

func TestNormalize(t *testing.T) {
	is := is.New(t)
	is.Equal(Normalize([]string{"ability", "", "Able", "ACT", ""}),
		[]string{"ABILITY", "ABLE", "ACT"})
	is.Equal(len(Normalize(nil)), 0)
}

func TestValidateCollectsEverything(t *testing.T) {
	is := is.New(t)
	err := Validate([]string{"AB", "A1", "ABCDEF", "123", "ABCDEFG"}, 5, StrictValidator{})
	var verr *ValidationError
	is.True(errors.As(err, &verr))
	is.True(errors.Is(err, ErrValidation))
	is.Equal(verr.Invalid, []string{"A1", "123"})
	is.Equal(verr.Oversize, []string{"ABCDEF", "ABCDEFG"})
	is.True(strings.Contains(err.Error(), "ABCDEF"))
	is.True(strings.Contains(err.Error(), "123"))
}

func TestValidateOK(t *testing.T) {
	is := is.New(t)
	is.NoErr(Validate([]string{"AB", "ABCDE"}, 5, nil))
}

func TestValidators(t *testing.T) {
	cases := []struct {
		word     string
		strict   bool
		contains bool
	}{
		{"ABLE", true, true},
		{"AB-LE", false, true},
		{"A1", false, true},
		{"123", false, false},
		{"-", false, false},
		{"ÉCOLE", false, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.strict, StrictValidator{}.Valid(c.word), c.word)
		assert.Equal(t, c.contains, ContainsValidator{}.Valid(c.word), c.word)
	}
	_, err := ValidatorFor("nope")
	assert.Error(t, err)
	v, err := ValidatorFor("contains")
	assert.NoError(t, err)
	assert.Equal(t, ContainsValidator{}, v)
}

func TestQueueOrders(t *testing.T) {
	is := is.New(t)
	words := []string{"ACT", "ABILITY", "ADD", "ABLE", "ABOUT"}
	is.Equal(Queue(words, OrderDescending), []string{"ADD", "ACT", "ABOUT", "ABLE", "ABILITY"})
	is.Equal(Queue(words, OrderAscending), []string{"ABILITY", "ABLE", "ABOUT", "ACT", "ADD"})
	is.Equal(Queue(words, OrderLongestFirst), []string{"ABILITY", "ABOUT", "ABLE", "ADD", "ACT"})
	is.Equal(Queue(words, OrderInput), words)
	// The input is left alone.
	is.Equal(words[0], "ACT")
}

func TestParseOrder(t *testing.T) {
	is := is.New(t)
	for _, o := range []Order{OrderDescending, OrderAscending, OrderLongestFirst, OrderInput} {
		parsed, err := ParseOrder(o.String())
		is.NoErr(err)
		is.Equal(parsed, o)
	}
	_, err := ParseOrder("random")
	is.True(err != nil)
}

func TestCatalog(t *testing.T) {
	is := is.New(t)
	q, err := Catalog([]string{"cat", "", "Dog", "ant"}, 5, nil, OrderDescending)
	is.NoErr(err)
	is.Equal(q, []string{"DOG", "CAT", "ANT"})

	q, err = Catalog([]string{"cat", "abcdef"}, 5, nil, OrderDescending)
	is.True(errors.Is(err, ErrValidation))
	is.Equal(q, nil)
}

func TestLoadText(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	is.NoErr(os.WriteFile(path, []byte("# animals\ncat\n\n  dog \nemu\n"), 0o644))

	l, err := LoadFile(path)
	is.NoErr(err)
	is.Equal(l.Words, []string{"cat", "dog", "emu"})
	is.Equal(l.Size, 0)
}

func TestLoadYAMLThroughCache(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "puzzle.yaml")
	is.NoErr(os.WriteFile(path, []byte("size: 8\nwords:\n  - apple\n  - pear\n"), 0o644))

	cfg := config.DefaultConfig()
	l, err := Load(cfg, path)
	is.NoErr(err)
	is.Equal(l.Size, 8)
	is.Equal(l.Words, []string{"apple", "pear"})

	// Second load comes from the cache even after the file is gone.
	is.NoErr(os.Remove(path))
	l2, err := Load(cfg, path)
	is.NoErr(err)
	is.Equal(l2, l)
}

func TestLoadMissingFile(t *testing.T) {
	is := is.New(t)
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	is.True(err != nil)
}
