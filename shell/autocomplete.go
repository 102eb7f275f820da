package shell

import (
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"
)

// ShellCompleter completes command names, options and a few argument values.
type ShellCompleter struct{}

func NewShellCompleter() *ShellCompleter {
	return &ShellCompleter{}
}

var commandNames = []string{
	"add", "clear", "entropy", "exit", "gen", "help", "load", "order",
	"placements", "seed", "show", "size", "words",
}

var commandOptions = map[string][]string{
	"gen":  {"-log", "-delim"},
	"show": {"-delim"},
}

var commandArgs = map[string][]string{
	"entropy": {"on", "off"},
	"order":   {"descending", "ascending", "longest", "input"},
	"help":    {"gen", "load", "order"},
}

// Do implements the readline.AutoCompleter interface.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string
	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		cmd := fields[0]
		if strings.HasPrefix(prefix, "-") {
			completions = commandOptions[cmd]
		} else {
			completions = slices.Concat(commandArgs[cmd], commandOptions[cmd])
		}
	}

	matches := lo.FilterMap(completions, func(s string, _ int) ([]rune, bool) {
		if !strings.HasPrefix(s, prefix) {
			return nil, false
		}
		return []rune(s[len(prefix):] + " "), true
	})
	return matches, len([]rune(prefix))
}
