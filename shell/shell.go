package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordsearch/config"
	"github.com/domino14/wordsearch/generator"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errExit              = errors.New("exit requested")
)

type ShellController struct {
	l      *readline.Instance
	out    io.Writer
	config *config.Config

	words []string
	opts  generator.Options
	delim string

	curPuzzle *generator.Puzzle
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// newController builds a controller that writes to w, without a terminal.
func newController(cfg *config.Config, w io.Writer) (*ShellController, error) {
	opts, err := generator.OptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &ShellController{
		out:    w,
		config: cfg,
		opts:   opts,
		delim:  cfg.GetString(config.ConfigDelimiter),
	}, nil
}

func NewShellController(cfg *config.Config) (*ShellController, error) {
	sc, err := newController(cfg, os.Stdout)
	if err != nil {
		return nil, err
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32mwordsearch>\033[0m ",
		HistoryFile:     "/tmp/wordsearch_readline.tmp",
		AutoComplete:    NewShellCompleter(),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc.l = l
	sc.out = l.Stdout()
	return sc, nil
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// extractFields splits a line into a command, its positional arguments and
// its -option value pairs. Quoting follows shell rules.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := &shellcmd{cmd: fields[0], options: CmdOptions{}}
	for i := 1; i < len(fields); i++ {
		f := fields[i]
		if strings.HasPrefix(f, "-") && len(f) > 1 {
			if _, err := strconv.Atoi(f); err == nil {
				// A negative number is an argument, not an option.
				cmd.args = append(cmd.args, f)
				continue
			}
			if i == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			opt := strings.TrimPrefix(f, "-")
			cmd.options[opt] = append(cmd.options[opt], fields[i+1])
			i++
			continue
		}
		cmd.args = append(cmd.args, f)
	}
	return cmd, nil
}

func (sc *ShellController) standardModeSwitch(ctx context.Context, line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	handler, ok := sc.commands()[cmd.cmd]
	if !ok {
		log.Debug().Msgf("you said: %v", strconv.Quote(line))
		return nil, fmt.Errorf("unknown command %q; try help", cmd.cmd)
	}
	return handler(ctx, cmd)
}

// Execute runs a single command line and prints its result.
func (sc *ShellController) Execute(ctx context.Context, line string) error {
	resp, err := sc.standardModeSwitch(ctx, line)
	if err != nil {
		if errors.Is(err, errNoData) {
			return nil
		}
		return err
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
	return nil
}

func (sc *ShellController) Loop(ctx context.Context, sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		err = sc.Execute(ctx, line)
		if errors.Is(err, errExit) {
			sig <- syscall.SIGINT
			break
		}
		if err != nil {
			sc.showError(err)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
