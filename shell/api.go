package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/domino14/wordsearch/board"
	"github.com/domino14/wordsearch/cache"
	"github.com/domino14/wordsearch/generator"
	"github.com/domino14/wordsearch/wordlist"
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

func msg(message string) *Response {
	return &Response{message: message}
}

type handlerFunc func(ctx context.Context, cmd *shellcmd) (*Response, error)

func (sc *ShellController) commands() map[string]handlerFunc {
	return map[string]handlerFunc{
		"size":       sc.size,
		"words":      sc.setWords,
		"add":        sc.add,
		"clear":      sc.clear,
		"load":       sc.load,
		"seed":       sc.seed,
		"entropy":    sc.entropy,
		"order":      sc.order,
		"gen":        sc.gen,
		"show":       sc.show,
		"placements": sc.placements,
		"help":       sc.help,
		"exit":       sc.exit,
	}
}

func (sc *ShellController) size(ctx context.Context, cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(strconv.Itoa(sc.opts.Size)), nil
	}
	n, err := strconv.Atoi(cmd.args[0])
	if err != nil {
		return nil, err
	}
	if n < board.MinSize {
		return nil, fmt.Errorf("size must be at least %d", board.MinSize)
	}
	sc.opts.Size = n
	return msg("set size to " + strconv.Itoa(n)), nil
}

func (sc *ShellController) showWords() *Response {
	if len(sc.words) == 0 {
		return msg("no words")
	}
	return msg(fmt.Sprintf("%d words: %s", len(sc.words), strings.Join(sc.words, " ")))
}

func (sc *ShellController) setWords(ctx context.Context, cmd *shellcmd) (*Response, error) {
	if len(cmd.args) > 0 {
		sc.words = wordlist.Normalize(cmd.args)
	}
	return sc.showWords(), nil
}

func (sc *ShellController) add(ctx context.Context, cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: add WORD [WORD ...]")
	}
	sc.words = lo.Uniq(append(sc.words, wordlist.Normalize(cmd.args)...))
	return sc.showWords(), nil
}

func (sc *ShellController) clear(ctx context.Context, cmd *shellcmd) (*Response, error) {
	sc.words = nil
	sc.curPuzzle = nil
	return msg("cleared"), nil
}

func (sc *ShellController) load(ctx context.Context, cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: load FILE")
	}
	// Always re-read, so edits to the file show up.
	cache.Evict(cmd.args[0])
	list, err := wordlist.Load(sc.config, cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.words = wordlist.Normalize(list.Words)
	if list.Size > 0 {
		sc.opts.Size = list.Size
	}
	return sc.showWords(), nil
}

func (sc *ShellController) seed(ctx context.Context, cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		if sc.opts.Entropy {
			return msg("entropy on"), nil
		}
		return msg(strconv.FormatUint(sc.opts.Seed, 10)), nil
	}
	s, err := strconv.ParseUint(cmd.args[0], 10, 64)
	if err != nil {
		return nil, err
	}
	sc.opts.Seed = s
	sc.opts.Entropy = false
	return msg("set seed to " + cmd.args[0]), nil
}

func (sc *ShellController) entropy(ctx context.Context, cmd *shellcmd) (*Response, error) {
	if len(cmd.args) > 0 {
		switch strings.ToLower(cmd.args[0]) {
		case "on", "true":
			sc.opts.Entropy = true
		case "off", "false":
			sc.opts.Entropy = false
		default:
			return nil, errors.New("usage: entropy [on|off]")
		}
	}
	if sc.opts.Entropy {
		return msg("entropy on"), nil
	}
	return msg("entropy off"), nil
}

func (sc *ShellController) order(ctx context.Context, cmd *shellcmd) (*Response, error) {
	if len(cmd.args) > 0 {
		o, err := wordlist.ParseOrder(cmd.args[0])
		if err != nil {
			return nil, err
		}
		sc.opts.Order = o
	}
	return msg(sc.opts.Order.String()), nil
}

func (sc *ShellController) gen(ctx context.Context, cmd *shellcmd) (*Response, error) {
	opts := sc.opts
	if logPath := cmd.options.String("log"); logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		opts.LogStream = f
	}
	p, err := generator.New(opts).Generate(ctx, sc.words)
	if err != nil {
		return nil, err
	}
	sc.curPuzzle = p
	zerolog.Ctx(ctx).Debug().Uint64("seed", p.Seed).Int("placed", len(p.Placed)).Msg("shell-generated")
	return sc.show(ctx, cmd)
}

func (sc *ShellController) show(ctx context.Context, cmd *shellcmd) (*Response, error) {
	if sc.curPuzzle == nil {
		return nil, errors.New("no puzzle yet; run gen")
	}
	delim := sc.delim
	if d, ok := cmd.options["delim"]; ok {
		delim = d[0]
	}
	return msg(strings.TrimSuffix(sc.curPuzzle.ToDisplayText(delim), "\n")), nil
}

func (sc *ShellController) placements(ctx context.Context, cmd *shellcmd) (*Response, error) {
	if sc.curPuzzle == nil {
		return nil, errors.New("no puzzle yet; run gen")
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "seed %d, %d words\n", sc.curPuzzle.Seed, len(sc.curPuzzle.Placed))
	for i, pw := range sc.curPuzzle.Placed {
		fmt.Fprintf(&sb, "%3d. %-16s %-8v %v\n", i+1, pw.Word, pw.Anchor, pw.Dir)
	}
	return msg(strings.TrimSuffix(sb.String(), "\n")), nil
}

func (sc *ShellController) help(ctx context.Context, cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(usage()), nil
	}
	return msg(usageTopic(cmd.args[0])), nil
}

func (sc *ShellController) exit(ctx context.Context, cmd *shellcmd) (*Response, error) {
	return nil, errExit
}
