package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordsearch/config"
	"github.com/domino14/wordsearch/generator"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"gen -log /tmp/log.yaml",
			&shellcmd{"gen", nil, CmdOptions{"log": {"/tmp/log.yaml"}}},
			nil},
		{"words cat dog",
			&shellcmd{"words", []string{"cat", "dog"}, CmdOptions{}},
			nil},
		{`show -delim ", "`,
			&shellcmd{"show", nil, CmdOptions{"delim": {", "}}},
			nil},
		{"seed -5",
			&shellcmd{"seed", []string{"-5"}, CmdOptions{}},
			nil},
		{"gen -log", nil, errWrongOptionSyntax},
	}
	for _, tc := range cases {
		cmd, err := extractFields(tc.line)
		is.Equal(cmd, tc.expCmd)
		is.Equal(err, tc.expErr)
	}
}

func newTestController(t *testing.T) (*ShellController, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	sc, err := newController(config.DefaultConfig(), &buf)
	if err != nil {
		t.Fatal(err)
	}
	return sc, &buf
}

func TestGenAndShow(t *testing.T) {
	is := is.New(t)
	sc, buf := newTestController(t)
	ctx := context.Background()

	is.NoErr(sc.Execute(ctx, "size 8"))
	is.NoErr(sc.Execute(ctx, "words cat dog"))
	is.NoErr(sc.Execute(ctx, "add bird cat"))
	is.Equal(sc.words, []string{"CAT", "DOG", "BIRD"})
	is.NoErr(sc.Execute(ctx, "seed 12"))

	buf.Reset()
	is.NoErr(sc.Execute(ctx, "gen"))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	is.Equal(len(lines), 8)
	is.Equal(len(strings.Fields(lines[0])), 8)
	is.Equal(len(sc.curPuzzle.Placed), 3)

	buf.Reset()
	is.NoErr(sc.Execute(ctx, "show -delim ''"))
	is.Equal(len(strings.Split(strings.TrimSpace(buf.String()), "\n")[0]), 8)

	buf.Reset()
	is.NoErr(sc.Execute(ctx, "placements"))
	is.True(strings.HasPrefix(buf.String(), "seed 12, 3 words"))

	// The same seed gives the same puzzle.
	first := sc.curPuzzle.String()
	is.NoErr(sc.Execute(ctx, "gen"))
	is.Equal(sc.curPuzzle.String(), first)
}

func TestSettings(t *testing.T) {
	is := is.New(t)
	sc, buf := newTestController(t)
	ctx := context.Background()

	is.True(sc.Execute(ctx, "size 3") != nil)
	is.NoErr(sc.Execute(ctx, "order longest"))
	is.Equal(sc.opts.Order.String(), "longest")
	is.True(sc.Execute(ctx, "order sideways") != nil)

	is.NoErr(sc.Execute(ctx, "entropy on"))
	is.True(sc.opts.Entropy)
	is.NoErr(sc.Execute(ctx, "seed 4"))
	is.True(!sc.opts.Entropy)

	buf.Reset()
	is.NoErr(sc.Execute(ctx, "clear"))
	is.NoErr(sc.Execute(ctx, "words"))
	is.Equal(buf.String(), "cleared\nno words\n")

	is.True(errors.Is(sc.Execute(ctx, "exit"), errExit))
	is.True(sc.Execute(ctx, "bogus") != nil)
	is.NoErr(sc.Execute(ctx, ""))
}

func TestGenErrors(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	ctx := context.Background()

	is.True(sc.Execute(ctx, "show") != nil)
	is.NoErr(sc.Execute(ctx, "size 5"))
	is.NoErr(sc.Execute(ctx, "words abcdef"))
	err := sc.Execute(ctx, "gen")
	is.True(err != nil)
	is.True(sc.curPuzzle == nil)
}

func TestLoadAndLog(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	ctx := context.Background()
	dir := t.TempDir()

	listPath := filepath.Join(dir, "list.yaml")
	is.NoErr(os.WriteFile(listPath, []byte("size: 12\nwords: [apple, pear, plum]\n"), 0o644))
	is.NoErr(sc.Execute(ctx, "load "+listPath))
	is.Equal(sc.opts.Size, 12)
	is.Equal(sc.words, []string{"APPLE", "PEAR", "PLUM"})

	logPath := filepath.Join(dir, "placements.yaml")
	is.NoErr(sc.Execute(ctx, "gen -log "+logPath))
	f, err := os.Open(logPath)
	is.NoErr(err)
	defer f.Close()
	entries, err := generator.ReadPlacementLog(f)
	is.NoErr(err)
	is.Equal(len(entries), 3)
}

func TestLoadRereadsFile(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "list.txt")

	is.NoErr(os.WriteFile(path, []byte("fig\n"), 0o644))
	is.NoErr(sc.Execute(ctx, "load "+path))
	is.Equal(sc.words, []string{"FIG"})

	is.NoErr(os.WriteFile(path, []byte("fig\nlime\n"), 0o644))
	is.NoErr(sc.Execute(ctx, "load "+path))
	is.Equal(sc.words, []string{"FIG", "LIME"})
}

func TestHelp(t *testing.T) {
	is := is.New(t)
	sc, buf := newTestController(t)
	ctx := context.Background()
	is.NoErr(sc.Execute(ctx, "help"))
	is.True(strings.Contains(buf.String(), "placements"))
	buf.Reset()
	is.NoErr(sc.Execute(ctx, "help order"))
	is.True(strings.Contains(buf.String(), "longest"))
	buf.Reset()
	is.NoErr(sc.Execute(ctx, "help nothing"))
	is.True(strings.Contains(buf.String(), "no help text"))
}

func TestCompleter(t *testing.T) {
	is := is.New(t)
	c := NewShellCompleter()

	line := []rune("pl")
	got, n := c.Do(line, len(line))
	is.Equal(n, 2)
	is.Equal(got, [][]rune{[]rune("acements ")})

	line = []rune("order l")
	got, n = c.Do(line, len(line))
	is.Equal(n, 1)
	is.Equal(got, [][]rune{[]rune("ongest ")})

	line = []rune("gen -")
	got, _ = c.Do(line, len(line))
	is.Equal(len(got), 2)
}
